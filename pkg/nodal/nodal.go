// Package nodal scatter-accumulates per-element nodal values onto
// shared global nodes.
package nodal

import "gonum.org/v1/gonum/floats"

// Sum accumulates element-node values onto global nodes.
//
// val holds nval values for each of the len(elems) element-node
// incidences, flattened row-major: the values of incidence i are
// val[i*nval : (i+1)*nval]. elems holds the global node id of each
// incidence. nnod is the number of global nodes; if negative it is
// inferred as the highest referenced id plus one. Node ids outside
// [0,nnod) are an unchecked precondition violation.
//
// Sum returns the per-node value sums (nnod*nval, same layout as val)
// and the per-node contribution counts. The pair is deliberately
// unreduced: averages are sum divided by count (see Average), and
// other reductions can be layered without recomputation.
func Sum(val []float64, elems []int32, nval, nnod int) ([]float64, []int32) {
	if nnod < 0 {
		nnod = 0
		for _, n := range elems {
			if int(n) >= nnod {
				nnod = int(n) + 1
			}
		}
	}
	sum := make([]float64, nnod*nval)
	cnt := make([]int32, nnod)
	for i, n := range elems {
		floats.Add(sum[int(n)*nval:(int(n)+1)*nval], val[i*nval:(i+1)*nval])
		cnt[n]++
	}
	return sum, cnt
}

// Average divides nodal sums by their contribution counts, returning
// the per-node mean values. Nodes with no contributions stay zero.
func Average(sum []float64, cnt []int32, nval int) []float64 {
	avg := make([]float64, len(sum))
	copy(avg, sum)
	for n, c := range cnt {
		if c > 1 {
			floats.Scale(1/float64(c), avg[n*nval:(n+1)*nval])
		}
	}
	return avg
}
