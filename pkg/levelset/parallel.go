package levelset

import (
	"runtime"
	"sync"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/chazu/xylem"
	"github.com/chazu/xylem/pkg/field"
)

// The parallel extractors split the grid into slabs of cells along
// the slowest axis, sharing one sample plane between neighbours, and
// extract the slabs concurrently. Slab results are shifted back into
// grid coordinates and concatenated in slab order, so the primitive
// sequence is identical to the serial scan; the shifted coordinate
// can differ from the serial value by one rounding of the final
// addition. Per-cell work has no cross-cell data dependency, which
// makes the split exact rather than approximate.

// IsosurfaceParallel is Isosurface distributed over workers
// goroutines. workers <= 0 selects GOMAXPROCS.
func IsosurfaceParallel(g *field.Grid3, level float64, algo Algorithm, workers int) []r3.Triangle {
	if g == nil || g.Nx < 2 || g.Ny < 2 || g.Nz < 2 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	spans := splitSpan(g.Nz-1, workers)
	if len(spans) <= 1 {
		return Isosurface(g, level, algo)
	}
	xylem.Logger().Debug("levelset: parallel isosurface",
		"slabs", len(spans), "nx", g.Nx, "ny", g.Ny, "nz", g.Nz)

	parts := make([][]r3.Triangle, len(spans))
	var wg sync.WaitGroup
	for i, s := range spans {
		wg.Add(1)
		go func(i int, s span) {
			defer wg.Done()
			// Cells s.lo..s.hi-1 need sample planes s.lo..s.hi.
			tris := Isosurface(g.Slab(s.lo, s.hi), level, algo)
			shift := float64(s.lo)
			for t := range tris {
				for v := 0; v < 3; v++ {
					tris[t][v].Z += shift
				}
			}
			parts[i] = tris
		}(i, s)
	}
	wg.Wait()

	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]r3.Triangle, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// IsolineParallel is Isoline distributed over workers goroutines.
// workers <= 0 selects GOMAXPROCS.
func IsolineParallel(g *field.Grid2, level float64, workers int) []Segment2 {
	if g == nil || g.Nx < 2 || g.Ny < 2 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	spans := splitSpan(g.Ny-1, workers)
	if len(spans) <= 1 {
		return Isoline(g, level)
	}
	xylem.Logger().Debug("levelset: parallel isoline",
		"slabs", len(spans), "nx", g.Nx, "ny", g.Ny)

	parts := make([][]Segment2, len(spans))
	var wg sync.WaitGroup
	for i, s := range spans {
		wg.Add(1)
		go func(i int, s span) {
			defer wg.Done()
			segs := Isoline(g.Rows(s.lo, s.hi), level)
			shift := float64(s.lo)
			for t := range segs {
				segs[t][0].Y += shift
				segs[t][1].Y += shift
			}
			parts[i] = segs
		}(i, s)
	}
	wg.Wait()

	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]Segment2, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// span is a half-open range of cell layers [lo, hi) along the split
// axis; hi doubles as the index of the last sample plane the slab
// needs.
type span struct {
	lo, hi int
}

// splitSpan partitions n cell layers into at most parts near-equal
// contiguous spans. Earlier spans receive the remainder, so the
// partition is deterministic.
func splitSpan(n, parts int) []span {
	if parts > n {
		parts = n
	}
	if parts < 1 {
		parts = 1
	}
	spans := make([]span, 0, parts)
	size := n / parts
	rem := n % parts
	lo := 0
	for i := 0; i < parts; i++ {
		hi := lo + size
		if i < rem {
			hi++
		}
		spans = append(spans, span{lo: lo, hi: hi})
		lo = hi
	}
	return spans
}
