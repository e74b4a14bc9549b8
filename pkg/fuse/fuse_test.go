package fuse_test

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/chazu/xylem/pkg/fuse"
)

// runFuse allocates the result arrays and runs Fuse.
func runFuse(pts []r3.Vec, codes []int32, tol float64) (flag, sel []int32) {
	flag = make([]int32, len(pts))
	sel = make([]int32, len(pts))
	fuse.Fuse(pts, codes, flag, sel, tol)
	return flag, sel
}

func TestFuseEmpty(t *testing.T) {
	fuse.Fuse(nil, nil, nil, nil, 0.1)
}

// TestFuseAxisTolerance pins the per-axis comparison: two points apart
// by eps on the z axis fuse exactly when eps does not exceed the
// tolerance.
func TestFuseAxisTolerance(t *testing.T) {
	tests := []struct {
		name     string
		eps, tol float64
		wantFlag []int32
		wantSel  []int32
	}{
		{"separation above tolerance", 1e-3, 1e-4, []int32{1, 1}, []int32{0, 1}},
		{"separation below tolerance", 1e-5, 1e-4, []int32{1, 0}, []int32{0, 0}},
		{"separation equal to tolerance", 1e-4, 1e-4, []int32{1, 0}, []int32{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := []r3.Vec{{}, {Z: tt.eps}}
			codes := []int32{7, 7}
			flag, sel := runFuse(pts, codes, tt.tol)
			for i := range flag {
				if flag[i] != tt.wantFlag[i] || sel[i] != tt.wantSel[i] {
					t.Errorf("point %d: flag=%d sel=%d, want flag=%d sel=%d",
						i, flag[i], sel[i], tt.wantFlag[i], tt.wantSel[i])
				}
			}
		})
	}
}

// TestFuseZeroTolerance checks that tol 0 fuses exact duplicates only.
func TestFuseZeroTolerance(t *testing.T) {
	pts := []r3.Vec{
		{X: 1, Y: 2, Z: 3},
		{X: 1, Y: 2, Z: 3},
		{X: 1, Y: 2, Z: 3 + 1e-12},
	}
	codes := []int32{0, 0, 0}
	flag, sel := runFuse(pts, codes, 0)

	wantFlag := []int32{1, 0, 1}
	wantSel := []int32{0, 0, 1}
	for i := range flag {
		if flag[i] != wantFlag[i] || sel[i] != wantSel[i] {
			t.Errorf("point %d: flag=%d sel=%d, want flag=%d sel=%d",
				i, flag[i], sel[i], wantFlag[i], wantSel[i])
		}
	}
}

// TestFuseChainOrder pins the documented scan order: a chain A-B-C
// where consecutive points are within tolerance but A and C are not
// still collapses onto A, because C finds B first and inherits B's
// representative.
func TestFuseChainOrder(t *testing.T) {
	pts := []r3.Vec{
		{X: 0},
		{X: 0.08},
		{X: 0.16},
	}
	codes := []int32{1, 1, 1}
	flag, sel := runFuse(pts, codes, 0.1)

	wantFlag := []int32{1, 0, 0}
	wantSel := []int32{0, 0, 0}
	for i := range flag {
		if flag[i] != wantFlag[i] || sel[i] != wantSel[i] {
			t.Errorf("point %d: flag=%d sel=%d, want flag=%d sel=%d",
				i, flag[i], sel[i], wantFlag[i], wantSel[i])
		}
	}
}

// TestFuseRespectsCodes checks that identical coordinates with
// different bucket codes never fuse.
func TestFuseRespectsCodes(t *testing.T) {
	pts := []r3.Vec{{X: 1}, {X: 1}}
	codes := []int32{1, 2}
	flag, sel := runFuse(pts, codes, 0.5)
	if flag[0] != 1 || flag[1] != 1 {
		t.Errorf("flags = %v, want both 1", flag)
	}
	if sel[0] != 0 || sel[1] != 1 {
		t.Errorf("sel = %v, want [0 1]", sel)
	}
}

// TestFuseIdempotent re-runs fusion on the surviving set: nothing
// further may fuse.
func TestFuseIdempotent(t *testing.T) {
	pts := []r3.Vec{
		{X: 0.0},
		{X: 0.01},
		{X: 0.5},
		{X: 0.51},
		{X: 2.0},
	}
	codes := []int32{0, 0, 0, 0, 0}
	flag, sel := runFuse(pts, codes, 0.05)

	var survivors []r3.Vec
	var survivorCodes []int32
	for i := range pts {
		if flag[i] == 1 {
			survivors = append(survivors, pts[i])
			survivorCodes = append(survivorCodes, codes[i])
		}
	}
	if len(survivors) != 3 {
		t.Fatalf("first pass kept %d points, want 3", len(survivors))
	}

	wantSel := []int32{0, 0, 1, 1, 2}
	for i := range sel {
		if sel[i] != wantSel[i] {
			t.Errorf("first pass sel[%d] = %d, want %d", i, sel[i], wantSel[i])
		}
	}

	flag2, sel2 := runFuse(survivors, survivorCodes, 0.05)
	for i := range flag2 {
		if flag2[i] != 1 {
			t.Errorf("second pass fused point %d", i)
		}
		if sel2[i] != int32(i) {
			t.Errorf("second pass sel[%d] = %d, want %d", i, sel2[i], i)
		}
	}
}

func TestCodesAndSortByCode(t *testing.T) {
	// Two tight clusters far apart plus one stray point.
	pts := []r3.Vec{
		{X: 10, Y: 10, Z: 10},
		{X: 0.001},
		{X: 10.001, Y: 10, Z: 10},
		{},
		{X: 5, Y: 5, Z: 5},
	}
	codes := fuse.Codes(pts, 4)
	if len(codes) != len(pts) {
		t.Fatalf("Codes() returned %d codes, want %d", len(codes), len(pts))
	}
	if codes[0] != codes[2] {
		t.Errorf("near-coincident points got codes %d and %d, want equal", codes[0], codes[2])
	}
	if codes[1] != codes[3] {
		t.Errorf("near-coincident points got codes %d and %d, want equal", codes[1], codes[3])
	}
	if codes[0] == codes[1] {
		t.Errorf("distant points share code %d", codes[0])
	}

	perm := fuse.SortByCode(pts, codes)
	for i := 1; i < len(codes); i++ {
		if codes[i-1] > codes[i] {
			t.Fatalf("codes not ascending after sort: %v", codes)
		}
	}
	seen := make(map[int32]bool)
	for _, p := range perm {
		if p < 0 || int(p) >= len(pts) || seen[p] {
			t.Fatalf("invalid permutation %v", perm)
		}
		seen[p] = true
	}

	flag, _ := runFuse(pts, codes, 0.01)
	kept := 0
	for _, f := range flag {
		kept += int(f)
	}
	if kept != 3 {
		t.Errorf("fusion kept %d points, want 3 (two pairs fused)", kept)
	}
}

func TestCodesDegenerate(t *testing.T) {
	// All points identical: a degenerate bounding box maps everything
	// to one bucket.
	pts := []r3.Vec{{X: 3}, {X: 3}, {X: 3}}
	codes := fuse.Codes(pts, 0)
	for i, c := range codes {
		if c != codes[0] {
			t.Errorf("code[%d] = %d, want %d", i, c, codes[0])
		}
	}
	if got := fuse.Codes(nil, 8); len(got) != 0 {
		t.Errorf("Codes(nil) returned %d codes, want 0", len(got))
	}
}
