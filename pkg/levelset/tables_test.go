package levelset

import (
	"math"
	"testing"
)

func TestSquareLineTableEntries(t *testing.T) {
	for ci, row := range squareLineTable {
		n := 0
		for ; n < 4 && row[n] >= 0; n++ {
			if row[n] > 3 {
				t.Errorf("case %d: edge %d out of range", ci, row[n])
			}
		}
		if n%2 != 0 {
			t.Errorf("case %d: %d cut edges, want a multiple of 2", ci, n)
		}
		for i := n; i < 4; i++ {
			if row[i] != -1 {
				t.Errorf("case %d: entry %d after terminator is %d, want -1", ci, i, row[i])
			}
		}
	}
}

// TestSquareLineTableComplement checks that mirrored case indices cut
// the same edges. Only the two ambiguous diagonal cases pair them
// differently.
func TestSquareLineTableComplement(t *testing.T) {
	edgeSet := func(row [4]int8) (m uint8) {
		for _, e := range row {
			if e >= 0 {
				m |= 1 << uint(e)
			}
		}
		return m
	}
	for ci := 0; ci < 16; ci++ {
		a, b := edgeSet(squareLineTable[ci]), edgeSet(squareLineTable[15-ci])
		if a != b {
			t.Errorf("cases %d and %d cut edge sets %04b and %04b", ci, 15-ci, a, b)
		}
	}
}

func TestCubeEdgeTableComplement(t *testing.T) {
	if cubeEdgeTable[0] != 0 || cubeEdgeTable[255] != 0 {
		t.Fatal("empty and full cases must cut no edges")
	}
	for ci := 0; ci < 256; ci++ {
		if cubeEdgeTable[ci] != cubeEdgeTable[255-ci] {
			t.Errorf("cases %d and %d cut masks %03x and %03x",
				ci, 255-ci, cubeEdgeTable[ci], cubeEdgeTable[255-ci])
		}
	}
}

// TestCubeTriTableConsistent checks every triangulation against the
// edge mask: triangles come in whole triples, reference valid edges,
// and use exactly the edges the mask declares cut.
func TestCubeTriTableConsistent(t *testing.T) {
	for ci := 0; ci < 256; ci++ {
		row := cubeTriTable[ci]
		var used uint16
		n := 0
		for ; n < 16 && row[n] >= 0; n++ {
			e := row[n]
			if e > 11 {
				t.Fatalf("case %d: edge %d out of range", ci, e)
			}
			used |= 1 << uint(e)
		}
		if n%3 != 0 {
			t.Errorf("case %d: %d vertices, want a multiple of 3", ci, n)
		}
		if used != cubeEdgeTable[ci] {
			t.Errorf("case %d: triangles use edges %03x, mask says %03x",
				ci, used, cubeEdgeTable[ci])
		}
	}
}

func TestTetCaseTables(t *testing.T) {
	if tetCaseTri[0] != 0 || tetCaseTri[8] != len(tetCaseEdges) {
		t.Fatalf("tetCaseTri bounds = %d..%d, want 0..%d",
			tetCaseTri[0], tetCaseTri[8], len(tetCaseEdges))
	}
	for c := 1; c < len(tetCaseTri); c++ {
		if tetCaseTri[c] < tetCaseTri[c-1] {
			t.Fatalf("tetCaseTri not monotone at %d", c)
		}
	}
	// Empty case cuts nothing, single-corner cases cut one triangle.
	if tetCaseTri[1] != 0 {
		t.Error("case 0 must produce no triangles")
	}
	for r, row := range tetCaseEdges {
		for k := 0; k < 6; k += 2 {
			a, b := row[k], row[k+1]
			if a < 0 || a > 3 || b < 0 || b > 3 || a == b {
				t.Errorf("row %d: corner pair (%d,%d) is not a tetra edge", r, a, b)
			}
		}
	}
}

// TestCubeTetsPartition checks the tetra decomposition: six
// tetrahedra over distinct cube corners whose volumes sum to the
// whole cell.
func TestCubeTetsPartition(t *testing.T) {
	vol := func(tet [4]int) float64 {
		var m [3][3]float64
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				m[i][j] = float64(cubeVerts[tet[i+1]][j] - cubeVerts[tet[0]][j])
			}
		}
		det := m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
			m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
			m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
		return math.Abs(det) / 6
	}
	total := 0.0
	for ti, tet := range cubeTets {
		for i := 0; i < 4; i++ {
			for j := i + 1; j < 4; j++ {
				if tet[i] == tet[j] {
					t.Fatalf("tetra %d repeats corner %d", ti, tet[i])
				}
			}
		}
		v := vol(tet)
		if v == 0 {
			t.Fatalf("tetra %d is degenerate", ti)
		}
		total += v
	}
	if math.Abs(total-1) > 1e-15 {
		t.Errorf("tetra volumes sum to %v, want 1", total)
	}
}
