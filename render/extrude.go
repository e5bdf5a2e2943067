package render

import (
	"io"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// edgeTriangles is the number of mesh triangles per outline edge: one on
// each cap and two on the wall.
const edgeTriangles = 4

// prism streams the triangle mesh of a closed planar outline extruded
// along z.
type prism struct {
	outline   []r2.Vec
	height    float64
	edge      int // next outline edge to mesh
	unwritten triangleBuffer
}

// NewPrismRenderer returns a Renderer for the solid formed by extruding a
// closed planar outline from z=0 to z=height. The outline winds once about
// the origin, which lets both caps mesh as triangle fans centered on the
// extrusion axis, and is implicitly closed, last point joined to first.
// Clockwise outlines are reversed so the mesh is always emitted with
// outward normals. NewPrismRenderer panics if the outline has fewer than
// 3 points, contains a non-finite point or touches the origin, or if the
// height is not positive.
func NewPrismRenderer(outline []r2.Vec, height float64) *prism {
	if len(outline) < 3 {
		panic("outline must have at least 3 points")
	}
	if !(height > 0) {
		panic("extrusion height must be positive")
	}
	verts := make([]r2.Vec, len(outline))
	copy(verts, outline)
	for _, p := range verts {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			panic("outline point is not finite")
		}
		if p.X == 0 && p.Y == 0 {
			panic("outline touches the origin")
		}
	}
	if signedArea(verts) < 0 {
		for i, j := 0, len(verts)-1; i < j; i, j = i+1, j-1 {
			verts[i], verts[j] = verts[j], verts[i]
		}
	}
	return &prism{
		outline:   verts,
		height:    height,
		unwritten: triangleBuffer{buf: make([]r3.Triangle, 0, edgeTriangles)},
	}
}

// ReadTriangles writes mesh triangles into dst. It returns the number of
// triangles written and io.EOF once the mesh is drained.
func (pr *prism) ReadTriangles(dst []r3.Triangle) (n int, err error) {
	if len(dst) == 0 {
		panic("cannot write to empty triangle slice")
	}
	if pr.unwritten.Len() > 0 {
		n += pr.unwritten.Read(dst[n:])
		if n == len(dst) {
			return n, nil
		}
	}
	if pr.edge == len(pr.outline) && pr.unwritten.Len() == 0 && n == 0 {
		// Mesh fully emitted.
		return 0, io.EOF
	}
	var quad [edgeTriangles]r3.Triangle
	for pr.edge < len(pr.outline) {
		pr.meshEdge(&quad, pr.edge)
		pr.edge++
		written := copy(dst[n:], quad[:])
		n += written
		if written < edgeTriangles {
			// Buffer filled mid-edge, keep the remainder for next call.
			pr.unwritten.Write(quad[written:])
			break
		}
		if n == len(dst) {
			break
		}
	}
	return n, err
}

// meshEdge meshes outline edge i into quad: the bottom and top cap fan
// triangles joining the edge to the extrusion axis and the two wall
// triangles joining the caps.
func (pr *prism) meshEdge(quad *[edgeTriangles]r3.Triangle, i int) {
	a := pr.outline[i]
	b := pr.outline[(i+1)%len(pr.outline)]
	var (
		bottomA = r3.Vec{X: a.X, Y: a.Y}
		bottomB = r3.Vec{X: b.X, Y: b.Y}
		topA    = r3.Vec{X: a.X, Y: a.Y, Z: pr.height}
		topB    = r3.Vec{X: b.X, Y: b.Y, Z: pr.height}
		axis0   = r3.Vec{}
		axis1   = r3.Vec{Z: pr.height}
	)
	// Wound so normals point down on the bottom cap, up on the top cap
	// and radially outward on the wall.
	quad[0] = r3.Triangle{axis0, bottomB, bottomA}
	quad[1] = r3.Triangle{axis1, topA, topB}
	quad[2] = r3.Triangle{bottomA, bottomB, topB}
	quad[3] = r3.Triangle{bottomA, topB, topA}
}

// signedArea returns twice the signed area of the closed polygon, positive
// for counterclockwise winding.
func signedArea(outline []r2.Vec) float64 {
	var sum float64
	for i, p := range outline {
		q := outline[(i+1)%len(outline)]
		sum += p.X*q.Y - p.Y*q.X
	}
	return sum
}
