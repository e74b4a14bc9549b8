package levelset

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// interpEps guards edge interpolation against near-equal values.
// When the level coincides with an endpoint value, or the two
// endpoint values coincide, the crossing snaps to an endpoint
// instead of dividing by a vanishing difference.
const interpEps = 1e-5

// interpEdge2 returns the point where the level set cuts the edge
// p1-p2, linearly interpolated between the endpoint values v1 and v2.
func interpEdge2(p1, p2 r2.Vec, v1, v2, level float64) r2.Vec {
	if math.Abs(level-v1) < interpEps {
		return p1
	}
	if math.Abs(level-v2) < interpEps {
		return p2
	}
	if math.Abs(v1-v2) < interpEps {
		return p1
	}
	mu := (level - v1) / (v2 - v1)
	return r2.Add(p1, r2.Scale(mu, r2.Sub(p2, p1)))
}

// interpEdge3 is the 3D counterpart of interpEdge2.
func interpEdge3(p1, p2 r3.Vec, v1, v2, level float64) r3.Vec {
	if math.Abs(level-v1) < interpEps {
		return p1
	}
	if math.Abs(level-v2) < interpEps {
		return p2
	}
	if math.Abs(v1-v2) < interpEps {
		return p1
	}
	mu := (level - v1) / (v2 - v1)
	return r3.Add(p1, r3.Scale(mu, r3.Sub(p2, p1)))
}
