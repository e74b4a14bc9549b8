// Package sdfgrid samples signed distance solids from the
// github.com/deadsy/sdfx CAD library onto scalar grids and meshes
// their zero level set with the extractors in pkg/levelset.
//
// This is the host-application path through the library: a modeling
// layer builds an sdf.SDF3, sdfgrid turns it into a scalar volume and
// hands the volume to the level-set extractor, and the resulting
// triangles come back as a flat-array mesh.
package sdfgrid

import (
	"errors"
	"fmt"
	"math"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/chazu/xylem"
	"github.com/chazu/xylem/pkg/field"
	"github.com/chazu/xylem/pkg/levelset"
	"github.com/chazu/xylem/pkg/mesh"
)

// DefaultCells is the sample resolution along the longest bounding
// box axis when the caller passes cells <= 0.
const DefaultCells = 200

// Sample evaluates the signed distance function of s on a regular
// grid covering its bounding box, with cells sample cells along the
// longest axis. The grid carries one cell of margin on every side so
// the zero level set never touches the grid boundary. It returns the
// grid together with the world-space origin and spacing mapping grid
// indices to coordinates: world = origin + step*index.
func Sample(s sdf.SDF3, cells int) (g *field.Grid3, origin r3.Vec, step float64, err error) {
	if s == nil {
		return nil, r3.Vec{}, 0, errors.New("sdfgrid: nil solid")
	}
	if cells <= 0 {
		cells = DefaultCells
	}

	bb := s.BoundingBox()
	size := bb.Max.Sub(bb.Min)
	longest := math.Max(size.X, math.Max(size.Y, size.Z))
	if longest <= 0 {
		return nil, r3.Vec{}, 0, fmt.Errorf("sdfgrid: degenerate bounding box %v", bb)
	}
	step = longest / float64(cells)

	// Sample planes per axis: enough cells to cover the extent, one
	// margin cell on each side, plus the closing plane.
	nx := int(math.Ceil(size.X/step)) + 3
	ny := int(math.Ceil(size.Y/step)) + 3
	nz := int(math.Ceil(size.Z/step)) + 3
	origin = r3.Vec{X: bb.Min.X - step, Y: bb.Min.Y - step, Z: bb.Min.Z - step}

	g = field.Grid3FromFunc(nx, ny, nz, func(ix, iy, iz int) float64 {
		return s.Evaluate(v3.Vec{
			X: origin.X + step*float64(ix),
			Y: origin.Y + step*float64(iy),
			Z: origin.Z + step*float64(iz),
		})
	})
	xylem.Logger().Debug("sdfgrid: sampled solid",
		"nx", nx, "ny", ny, "nz", nz, "step", step)
	return g, origin, step, nil
}

// Mesh extracts the surface of s as a triangle mesh: the zero level
// set of its signed distance field, sampled at the given resolution
// and triangulated with the given algorithm.
func Mesh(s sdf.SDF3, cells int, algo levelset.Algorithm) (*mesh.Mesh, error) {
	g, origin, step, err := Sample(s, cells)
	if err != nil {
		return nil, fmt.Errorf("sdfgrid: sampling failed: %w", err)
	}

	tris := levelset.Isosurface(g, 0, algo)
	for i := range tris {
		for j := 0; j < 3; j++ {
			tris[i][j] = r3.Add(origin, r3.Scale(step, tris[i][j]))
		}
	}
	return mesh.FromTriangles(tris), nil
}
