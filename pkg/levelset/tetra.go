package levelset

import "gonum.org/v1/gonum/spatial/r3"

// marchTets triangulates one cube cell through its six-tetrahedron
// decomposition and appends the triangles.
func marchTets(dst []r3.Triangle, pos *[8]r3.Vec, val *[8]float64, level float64) []r3.Triangle {
	for _, tet := range cubeTets {
		dst = marchTet(dst, pos, val, level, tet)
	}
	return dst
}

// marchTet classifies a single tetrahedron. tet holds the cube corner
// indices of its four vertices. Cases 8..15 mirror cases 7..0 with the
// edge traversal reversed, which keeps triangle orientation consistent
// across the inside/outside flip.
func marchTet(dst []r3.Triangle, pos *[8]r3.Vec, val *[8]float64, level float64, tet [4]int) []r3.Triangle {
	ti := 0
	for i := 0; i < 4; i++ {
		if val[tet[i]] < level {
			ti |= 1 << i
		}
	}
	ci := ti
	if ti >= 8 {
		ci = 15 - ti
	}

	for it := tetCaseTri[ci]; it < tetCaseTri[ci+1]; it++ {
		var tri r3.Triangle
		for k := 0; k < 6; k += 2 {
			l := k
			if ti >= 8 {
				l = 4 - k
			}
			a := tet[tetCaseEdges[it][l]]
			b := tet[tetCaseEdges[it][l+1]]
			tri[k/2] = interpEdge3(pos[a], pos[b], val[a], val[b], level)
		}
		dst = append(dst, tri)
	}
	return dst
}
