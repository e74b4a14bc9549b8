package levelset_test

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/chazu/xylem/pkg/field"
	"github.com/chazu/xylem/pkg/levelset"
)

// approx2 reports whether two 2D points coincide within tol.
func approx2(a, b r2.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

// sameSegment reports whether two segments have the same endpoints,
// in either orientation.
func sameSegment(a, b levelset.Segment2, tol float64) bool {
	return (approx2(a[0], b[0], tol) && approx2(a[1], b[1], tol)) ||
		(approx2(a[0], b[1], tol) && approx2(a[1], b[0], tol))
}

func TestIsolineEmptyOnUniform(t *testing.T) {
	tests := []struct {
		name  string
		fill  float64
		level float64
	}{
		{"all above", 1, 0.5},
		{"all below", 0, 0.5},
		{"level below range", 1, -3},
		{"level above range", 1, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := field.NewGrid2(8, 6)
			g.Fill(tt.fill)
			segs := levelset.Isoline(g, tt.level)
			if len(segs) != 0 {
				t.Errorf("Isoline() returned %d segments, want 0", len(segs))
			}
		})
	}
}

func TestIsolineDegenerateGrid(t *testing.T) {
	tests := []struct {
		name   string
		nx, ny int
	}{
		{"single column", 1, 5},
		{"single row", 5, 1},
		{"single point", 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := field.NewGrid2(tt.nx, tt.ny)
			if segs := levelset.Isoline(g, 0.5); len(segs) != 0 {
				t.Errorf("Isoline() returned %d segments, want 0", len(segs))
			}
		})
	}
}

// TestIsolineSingleCorner checks the interpolated crossing for every
// single-corner-below configuration of one cell.
func TestIsolineSingleCorner(t *testing.T) {
	tests := []struct {
		name   string
		corner int
		want   levelset.Segment2
	}{
		{"corner 0", 0, levelset.Segment2{{X: 0.5, Y: 0}, {X: 0, Y: 0.5}}},
		{"corner 1", 1, levelset.Segment2{{X: 0.5, Y: 0}, {X: 1, Y: 0.5}}},
		{"corner 2", 2, levelset.Segment2{{X: 1, Y: 0.5}, {X: 0.5, Y: 1}}},
		{"corner 3", 3, levelset.Segment2{{X: 0.5, Y: 1}, {X: 0, Y: 0.5}}},
	}
	corners := [4][2]int{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := field.NewGrid2(2, 2)
			g.Fill(1)
			g.Set(corners[tt.corner][0], corners[tt.corner][1], 0)

			segs := levelset.Isoline(g, 0.5)
			if len(segs) != 1 {
				t.Fatalf("Isoline() returned %d segments, want 1", len(segs))
			}
			if !sameSegment(segs[0], tt.want, 1e-12) {
				t.Errorf("segment = %v, want %v", segs[0], tt.want)
			}
		})
	}
}

// TestIsolineOneSegmentPerCell surrounds a single low sample with high
// ones: each of the four cells holds exactly one corner below level
// and must emit exactly one segment.
func TestIsolineOneSegmentPerCell(t *testing.T) {
	g := field.NewGrid2(3, 3)
	g.Fill(1)
	g.Set(1, 1, 0)

	segs := levelset.Isoline(g, 0.5)
	if len(segs) != 4 {
		t.Fatalf("Isoline() returned %d segments, want 4", len(segs))
	}
	// Every endpoint sits halfway along a cell edge adjacent to the
	// low sample at (1,1).
	for i, s := range segs {
		for _, p := range s {
			d := math.Abs(p.X-1) + math.Abs(p.Y-1)
			if math.Abs(d-0.5) > 1e-12 {
				t.Errorf("segment %d endpoint %v not at a crossing around (1,1)", i, p)
			}
		}
	}
}

// TestIsolineSnapsCoincidentValues pins the epsilon guard: a corner
// value equal to the level snaps the crossing to that corner instead
// of dividing by a vanishing difference.
func TestIsolineSnapsCoincidentValues(t *testing.T) {
	g := field.NewGrid2(2, 2)
	g.Set(0, 0, 0)
	g.Set(1, 0, 0.5)
	g.Set(1, 1, 1)
	g.Set(0, 1, 1)

	segs := levelset.Isoline(g, 0.5)
	if len(segs) != 1 {
		t.Fatalf("Isoline() returned %d segments, want 1", len(segs))
	}
	want := levelset.Segment2{{X: 1, Y: 0}, {X: 0, Y: 0.5}}
	if !sameSegment(segs[0], want, 1e-12) {
		t.Errorf("segment = %v, want %v", segs[0], want)
	}
	for _, s := range segs {
		for _, p := range s {
			if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
				t.Errorf("non-finite endpoint %v", p)
			}
		}
	}
}

func TestIsolineTrimmed(t *testing.T) {
	g := waveGrid2(32, 24)
	segs := levelset.Isoline(g, 0.1)
	if len(segs) == 0 {
		t.Fatal("expected a non-empty contour")
	}
	if cap(segs) != len(segs) {
		t.Errorf("result capacity %d != length %d", cap(segs), len(segs))
	}
}

func TestIsolineParallelMatchesSerial(t *testing.T) {
	g := waveGrid2(64, 48)
	want := levelset.Isoline(g, 0.1)
	if len(want) == 0 {
		t.Fatal("expected a non-empty contour")
	}
	for _, workers := range []int{1, 2, 3, 7, 128} {
		got := levelset.IsolineParallel(g, 0.1, workers)
		if len(got) != len(want) {
			t.Fatalf("workers=%d: %d segments, want %d", workers, len(got), len(want))
		}
		for i := range got {
			if !sameSegment(got[i], want[i], 1e-9) {
				t.Fatalf("workers=%d: segment %d = %v, want %v", workers, i, got[i], want[i])
			}
		}
	}
}

// waveGrid2 builds a smooth test field with several contour crossings.
func waveGrid2(nx, ny int) *field.Grid2 {
	return field.Grid2FromFunc(nx, ny, func(ix, iy int) float64 {
		return math.Sin(float64(ix)*0.3) * math.Cos(float64(iy)*0.2)
	})
}
