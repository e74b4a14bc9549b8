// Package fuse merges points whose coordinates coincide within a
// tolerance.
//
// Fusion operates on a point sequence tagged with integer bucket
// codes: points that could possibly coincide must share a code, and
// the sequence must be sorted ascending by code with equal-code
// points adjacent. Codes and SortByCode produce such a sequence from
// raw coordinates; callers with their own spatial bucketing can skip
// them. Keeping buckets small is the caller's responsibility — the
// scan is O(k²) within a bucket of k points.
package fuse

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

// Fuse merges near-coincident points in a single forward scan.
//
// pts must be sorted ascending by codes (see SortByCode). flag and
// sel must have length len(pts); both are overwritten. On return,
// flag[i] is 1 for points that survive and 0 for points fused away.
// For a survivor, sel[i] is its new sequential id (0,1,2,… in scan
// order); for a fused point, sel[i] is the id of its representative.
//
// Point i fuses into the nearest preceding point j of equal code
// whose coordinates all lie within tol of i's, axis by axis. The
// per-axis comparison is a documented approximation of a Euclidean
// radius test. The scan order is part of the contract: permuting the
// input permutes the result. tol 0 fuses exact duplicates only.
func Fuse(pts []r3.Vec, codes []int32, flag, sel []int32, tol float64) {
	if len(pts) == 0 {
		return
	}
	flag[0], sel[0] = 1, 0
	next := int32(1)
	for i := 1; i < len(pts); i++ {
		flag[i], sel[i] = 1, 0
		for j := i - 1; j >= 0 && codes[i] == codes[j]; j-- {
			if math.Abs(pts[i].X-pts[j].X) <= tol &&
				math.Abs(pts[i].Y-pts[j].Y) <= tol &&
				math.Abs(pts[i].Z-pts[j].Z) <= tol {
				flag[i] = 0
				sel[i] = sel[j]
				break
			}
		}
		if flag[i] == 1 {
			sel[i] = next
			next++
		}
	}
}

// Codes assigns an integer bucket code to every point by uniform
// binning over the axis-aligned bounding box, nbins bins per axis.
// Points in the same bin share a code; only same-code points are
// candidates for fusion. nbins <= 0 picks a bin count from the point
// count so that buckets stay small on roughly uniform input.
func Codes(pts []r3.Vec, nbins int) []int32 {
	codes := make([]int32, len(pts))
	if len(pts) == 0 {
		return codes
	}
	if nbins <= 0 {
		nbins = int(math.Cbrt(float64(len(pts)))) + 1
	}

	min, max := pts[0], pts[0]
	for _, p := range pts[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		min.Z = math.Min(min.Z, p.Z)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
		max.Z = math.Max(max.Z, p.Z)
	}

	for i, p := range pts {
		bx := bin(p.X, min.X, max.X, nbins)
		by := bin(p.Y, min.Y, max.Y, nbins)
		bz := bin(p.Z, min.Z, max.Z, nbins)
		codes[i] = int32((bz*nbins+by)*nbins + bx)
	}
	return codes
}

// bin maps v in [lo,hi] to a bin in [0,n). A degenerate axis maps
// everything to bin 0.
func bin(v, lo, hi float64, n int) int {
	if hi <= lo {
		return 0
	}
	b := int(float64(n) * (v - lo) / (hi - lo))
	if b >= n {
		b = n - 1
	}
	return b
}

// SortByCode reorders pts and codes in place so that codes ascend
// with equal-code points adjacent, preserving the input order within
// a bucket. It returns the permutation applied: perm[k] is the
// original index of the point now at position k, letting callers map
// fusion results back to their own ordering.
func SortByCode(pts []r3.Vec, codes []int32) []int32 {
	perm := make([]int32, len(pts))
	for i := range perm {
		perm[i] = int32(i)
	}
	sort.SliceStable(perm, func(a, b int) bool {
		return codes[perm[a]] < codes[perm[b]]
	})

	sortedPts := make([]r3.Vec, len(pts))
	sortedCodes := make([]int32, len(codes))
	for k, p := range perm {
		sortedPts[k] = pts[p]
		sortedCodes[k] = codes[p]
	}
	copy(pts, sortedPts)
	copy(codes, sortedCodes)
	return perm
}
