package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Planar isometries about the origin. Both transforms preserve length,
// so applying them to a contour never changes the radial distance of
// its points from the origin.

// Rotate returns a rotated counterclockwise about the origin by alpha radians.
func Rotate(a r2.Vec, alpha float64) r2.Vec {
	sin, cos := math.Sincos(alpha)
	return r2.Vec{
		X: a.X*cos - a.Y*sin,
		Y: a.X*sin + a.Y*cos,
	}
}

// Mirror returns a reflected across the line through the origin at
// theta radians from the x axis.
func Mirror(a r2.Vec, theta float64) r2.Vec {
	m := PolarToXY(1, theta)
	sca := r2.Dot(a, m)
	return r2.Vec{
		X: 2*sca*m.X - a.X,
		Y: 2*sca*m.Y - a.Y,
	}
}
