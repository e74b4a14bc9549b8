// Package mesh defines the flat-array triangle mesh exchanged at the
// library edge. Higher layers (renderers, file writers) consume these
// raw arrays; nothing in this library interprets them further.
package mesh

import "gonum.org/v1/gonum/spatial/r3"

// Mesh is a triangle mesh in flat arrays: vertices has 3 floats per
// vertex (x,y,z), normals has 3 floats per vertex, indices has 3
// uint32s per triangle.
type Mesh struct {
	Vertices []float32 `json:"vertices"` // [x0,y0,z0, x1,y1,z1, ...]
	Normals  []float32 `json:"normals"`  // [nx0,ny0,nz0, ...]
	Indices  []uint32  `json:"indices"`  // [i0,i1,i2, ...] triangles
}

// FromTriangles flattens a triangle soup into a Mesh. Vertices are
// repeated per triangle (no shared-vertex topology) and each vertex
// carries its face normal.
func FromTriangles(tris []r3.Triangle) *Mesh {
	m := &Mesh{
		Vertices: make([]float32, 0, len(tris)*9),
		Normals:  make([]float32, 0, len(tris)*9),
		Indices:  make([]uint32, 0, len(tris)*3),
	}
	for i, t := range tris {
		n := faceNormal(t)
		nx, ny, nz := float32(n.X), float32(n.Y), float32(n.Z)
		for j := 0; j < 3; j++ {
			v := t[j]
			m.Vertices = append(m.Vertices, float32(v.X), float32(v.Y), float32(v.Z))
			m.Normals = append(m.Normals, nx, ny, nz)
			m.Indices = append(m.Indices, uint32(i*3+j))
		}
	}
	return m
}

// faceNormal returns the unit normal of t, or the zero vector for a
// degenerate triangle.
func faceNormal(t r3.Triangle) r3.Vec {
	n := r3.Cross(r3.Sub(t[1], t[0]), r3.Sub(t[2], t[0]))
	if r3.Norm(n) == 0 {
		return r3.Vec{}
	}
	return r3.Unit(n)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}
