package levelset

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/chazu/xylem/pkg/field"
)

// Algorithm selects the cell triangulation strategy of Isosurface.
type Algorithm int

const (
	// MarchingCubes classifies each cube cell directly through the
	// 256-entry case tables, emitting up to five triangles per cell.
	// Topologically ambiguous configurations resolve to the fixed
	// triangulation the table carries.
	MarchingCubes Algorithm = iota

	// MarchingTetrahedra splits each cube cell into six tetrahedra
	// and classifies them independently, emitting up to two triangles
	// per tetrahedron. Unambiguous and manifold within a cell, at
	// roughly twice the triangle count of MarchingCubes.
	MarchingTetrahedra
)

func (a Algorithm) String() string {
	switch a {
	case MarchingCubes:
		return "marching-cubes"
	case MarchingTetrahedra:
		return "marching-tetrahedra"
	}
	return "unknown"
}

// Isosurface extracts the level set of a 3D scalar volume as
// triangles.
//
// Cells are visited in row-major order (x fastest, z slowest). Cells
// entirely above or below the level contribute nothing. The returned
// slice is trimmed to the exact triangle count.
func Isosurface(g *field.Grid3, level float64, algo Algorithm) []r3.Triangle {
	if g == nil || g.Nx < 2 || g.Ny < 2 || g.Nz < 2 {
		return nil
	}
	// A-priori estimate: a surface through a volume crosses on the
	// order of one slab of cells, at two triangles each.
	tris := make([]r3.Triangle, 0, 2*g.Nx*g.Ny)

	var pos [8]r3.Vec
	var val [8]float64
	for iz := 0; iz < g.Nz-1; iz++ {
		for iy := 0; iy < g.Ny-1; iy++ {
			for ix := 0; ix < g.Nx-1; ix++ {
				for i, v := range cubeVerts {
					pos[i] = r3.Vec{
						X: float64(ix + v[0]),
						Y: float64(iy + v[1]),
						Z: float64(iz + v[2]),
					}
					val[i] = g.At(ix+v[0], iy+v[1], iz+v[2])
				}
				if algo == MarchingTetrahedra {
					tris = marchTets(tris, &pos, &val, level)
				} else {
					tris = marchCube(tris, &pos, &val, level)
				}
			}
		}
	}
	return trimTriangles(tris)
}

// marchCube classifies one cube cell through the 256-entry tables and
// appends its triangles.
func marchCube(dst []r3.Triangle, pos *[8]r3.Vec, val *[8]float64, level float64) []r3.Triangle {
	ci := 0
	for i := 0; i < 8; i++ {
		if val[i] < level {
			ci |= 1 << i
		}
	}
	edges := cubeEdgeTable[ci]
	if edges == 0 {
		return dst
	}

	var cut [12]r3.Vec
	for e := 0; e < 12; e++ {
		if edges&(1<<e) != 0 {
			a, b := cubeEdges[e][0], cubeEdges[e][1]
			cut[e] = interpEdge3(pos[a], pos[b], val[a], val[b], level)
		}
	}

	row := &cubeTriTable[ci]
	for i := 0; row[i] >= 0; i += 3 {
		dst = append(dst, r3.Triangle{cut[row[i]], cut[row[i+1]], cut[row[i+2]]})
	}
	return dst
}

// trimTriangles returns a buffer whose capacity equals its length.
func trimTriangles(tris []r3.Triangle) []r3.Triangle {
	if len(tris) == cap(tris) {
		return tris
	}
	out := make([]r3.Triangle, len(tris))
	copy(out, tris)
	return out
}
