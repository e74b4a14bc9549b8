// Package levelset extracts level sets from sampled scalar fields:
// isolines from 2D grids via marching squares, isosurfaces from 3D
// volumes via marching cubes or marching tetrahedra.
//
// All extraction is cell-local: each grid cell is classified by which
// of its corners lie below the level, a case table fixes the cut
// topology, and the crossing points are linearly interpolated along
// the cut edges. Emitted primitives are independent; coincident
// vertices across cells are repeated, and no linking into polylines
// or shared-vertex meshes is performed. Coordinates are in grid index
// space (unit spacing); mapping to world coordinates is up to the
// caller.
//
// A grid entirely above or entirely below the level yields an empty
// result. The extractors never return errors.
package levelset

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/chazu/xylem/pkg/field"
)

// Segment2 is a line segment between two points in grid index space.
type Segment2 [2]r2.Vec

// Isoline extracts the level set of a 2D scalar grid as line segments
// using a marching squares scan.
//
// Cells are visited in row-major order (x fastest). Each cell
// contributes up to two segments whose endpoints lie on the cell
// edges at the interpolated crossing positions. The returned slice is
// trimmed to the exact segment count.
func Isoline(g *field.Grid2, level float64) []Segment2 {
	if g == nil || g.Nx < 2 || g.Ny < 2 {
		return nil
	}
	// A-priori estimate: a contour through an ny×nx grid cuts on the
	// order of one cell row per column.
	segs := make([]Segment2, 0, g.Nx+g.Ny)

	var pos [4]r2.Vec
	var val [4]float64
	for iy := 0; iy < g.Ny-1; iy++ {
		for ix := 0; ix < g.Nx-1; ix++ {
			for i, v := range squareVerts {
				pos[i] = r2.Vec{X: float64(ix + v[0]), Y: float64(iy + v[1])}
				val[i] = g.At(ix+v[0], iy+v[1])
			}
			segs = marchSquare(segs, &pos, &val, level)
		}
	}
	return trimSegments(segs)
}

// marchSquare classifies one square cell and appends its segments.
func marchSquare(dst []Segment2, pos *[4]r2.Vec, val *[4]float64, level float64) []Segment2 {
	ci := 0
	for i := 0; i < 4; i++ {
		if val[i] < level {
			ci |= 1 << i
		}
	}
	row := &squareLineTable[ci]
	for i := 0; i < 4 && row[i] >= 0; i += 2 {
		var s Segment2
		for k := 0; k < 2; k++ {
			e := squareEdges[row[i+k]]
			s[k] = interpEdge2(pos[e[0]], pos[e[1]], val[e[0]], val[e[1]], level)
		}
		dst = append(dst, s)
	}
	return dst
}

// trimSegments returns a buffer whose capacity equals its length.
// Callers key off exact counts, so grown buffers are not handed back
// with spare capacity.
func trimSegments(segs []Segment2) []Segment2 {
	if len(segs) == cap(segs) {
		return segs
	}
	out := make([]Segment2, len(segs))
	copy(out, segs)
	return out
}
