package render

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Renderer is a source of mesh triangles read in batches, in the style of
// io.Reader: ReadTriangles fills t with up to len(t) triangles and returns
// how many were read, then io.EOF once the mesh is drained.
type Renderer interface {
	ReadTriangles(t []r3.Triangle) (int, error)
}
