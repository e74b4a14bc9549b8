// Package xylem provides the low-level numerical kernels beneath a
// geometry-modeling application.
//
// The library converts sampled scalar fields into geometric primitives
// and performs array-level deduplication and aggregation on large point
// and element collections. It has no GUI, no persistence formats and no
// scene graph: callers pass explicitly shaped numeric arrays and scalar
// parameters, and receive freshly allocated, exactly sized numeric
// arrays back.
//
// The computational packages live under pkg/:
//
//   - pkg/field: dense rectangular scalar sample grids (2D and 3D)
//   - pkg/levelset: isoline (marching squares) and isosurface
//     (marching cubes, marching tetrahedra) extraction
//   - pkg/fuse: tolerance-based point fusion
//   - pkg/nodal: scatter-accumulation of element values onto nodes
//   - pkg/direction: greedy clustering and averaging of unit vectors
//   - pkg/mesh: flat-array triangle mesh exchange type
//   - pkg/sdfgrid: sampling of signed distance solids (deadsy/sdfx)
//     into grids and meshing of their zero level set
//
// Every operation is synchronous, deterministic and re-entrant:
// distinct invocations share no state and may run concurrently given
// distinct buffers. This root package only carries the library-wide
// logging hook; see SetLogger.
package xylem
