// Package direction groups near-parallel unit vectors and replaces
// each member with its cluster average.
package direction

import "gonum.org/v1/gonum/floats"

// Average clusters the n = len(vec)/ndim unit vectors stored
// row-major in vec, in place.
//
// A single greedy left-to-right pass takes the first unassigned
// vector as a seed and assigns every later unassigned vector whose
// dot product with the seed is at least tol to the seed's cluster.
// The cluster's vectors are then summed into the seed, divided by the
// member count (the average is not renormalized) and broadcast to
// every member. The pass continues from the next unassigned vector.
//
// The result depends on the input order; that is part of the
// contract, not an accident. tol 1 clusters exact duplicates only,
// tol -1 collapses everything into one cluster.
func Average(vec []float64, ndim int, tol float64) {
	average(len(vec)/ndim, tol, func(i int) []float64 {
		return vec[i*ndim : (i+1)*ndim]
	})
}

// AverageIndexed is Average applied to the sparse subset of rows
// selected by ind: position i of the pass reads and writes row
// ind[i]. Rows of vec not referenced by ind are untouched.
func AverageIndexed(vec []float64, ndim int, ind []int32, tol float64) {
	average(len(ind), tol, func(i int) []float64 {
		k := int(ind[i]) * ndim
		return vec[k : k+ndim]
	})
}

// average runs the greedy pass over n vectors accessed through at.
// par[i] holds the seed index of i's cluster, or -1 while unassigned.
func average(n int, tol float64, at func(int) []float64) {
	par := make([]int, n)
	for i := range par {
		par[i] = -1
	}

	j := 0
	for j < n {
		par[j] = j
		seed := at(j)

		// Mark the close directions. Comparisons use the seed's value
		// before averaging touches it.
		for i := j + 1; i < n; i++ {
			if par[i] < 0 && floats.Dot(seed, at(i)) >= tol {
				par[i] = j
			}
		}

		// Average the cluster into the seed.
		cnt := 1
		for i := j + 1; i < n; i++ {
			if par[i] == j {
				cnt++
				floats.Add(seed, at(i))
			}
		}
		floats.Scale(1/float64(cnt), seed)

		// Continue from the next unassigned vector.
		next := n
		for i := j + 1; i < n; i++ {
			if par[i] < 0 {
				next = i
				break
			}
		}
		j = next
	}

	// Broadcast cluster averages to the members.
	for i, p := range par {
		if p != i {
			copy(at(i), at(p))
		}
	}
}
