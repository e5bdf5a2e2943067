package gasket

import (
	"fmt"
	"runtime/debug"

	"github.com/soypat/gasket/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Star gaskets
//
// The full star outline is assembled from the half-jag trace of a Profile.
// Each (s, c) sample maps to the plane at radius s and angle c/(2*N*s),
// its swept arc scaled down to the half-jag's share of the circle before
// dividing by the radius. The resulting open curve runs from the jag base
// out to the jag tip. One jag is the curve followed by its mirror image
// across the jag's bisector, and the star is that jag repeated N times
// around the origin. The outline is emitted counterclockwise and closes
// implicitly, last point back to first.

// Params describe a single star gasket.
type Params struct {
	// Radius of the pad proper, R. Must be positive.
	Radius float64
	// Height of the felt the pad is cut from. Must not be negative.
	Height float64
	// Overlap is the fraction of Radius taken up by the jags, in (0,1].
	Overlap float64
	// Recovery is the fraction of the overlap used to recover compression,
	// in (0,1].
	Recovery float64
	// Samples is the count of evenly spaced radial samples per half-jag.
	Samples int
	// Jags is the number of star points N.
	Jags int
}

// Profile returns the half-jag profile of p. It panics like NewProfile
// on out of range parameters.
func (p Params) Profile() Profile {
	return NewProfile(p.Radius, p.Height, p.Overlap, p.Recovery)
}

type starErr struct {
	panicObj interface{}
	stack    string
}

func (s *starErr) Error() string {
	return fmt.Sprintf("%s", s.panicObj)
}

// MustStar returns the closed outline of the star gasket described by p,
// counterclockwise with 2*Jags*kappa points where kappa is the length of
// the half-jag trace. It panics on out of range parameters.
func MustStar(p Params) []r2.Vec {
	q := p.Profile()
	sc := q.Trace(p.Samples, p.Jags)
	return expand(edge(sc, p.Jags), p.Jags)
}

// Star is like MustStar but returns an error instead of panicking.
func Star(p Params) (contour []r2.Vec, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &starErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return MustStar(p), err
}

// edge maps a half-jag trace into the plane. The swept arc is scaled down
// to the half-jag's share of the circle before converting to an angle at
// radius s, so consecutive jags meet without overlap.
func edge(sc []Sample, jags int) d2.Set {
	frac := 0.5 / float64(jags)
	xy := make(d2.Set, len(sc))
	for i, sample := range sc {
		xy[i] = d2.PolarToXY(sample.S, sample.C*frac/sample.S)
	}
	return xy
}

// expand assembles the closed star outline from one half-jag edge using
// the star's N-fold rotational symmetry and each jag's mirror symmetry
// about its bisector.
func expand(side d2.Set, jags int) []r2.Vec {
	points := len(side)
	dalpha := tau / float64(jags)
	xy := make([]r2.Vec, 0, 2*jags*points)
	for n := 0; n < jags; n++ {
		alpha := float64(n) * dalpha
		bisector := (float64(n) + 0.5) * dalpha
		// Tip to base along the jag's leading edge.
		for i := points - 1; i >= 0; i-- {
			xy = append(xy, d2.Rotate(side[i], alpha))
		}
		// Base back to tip along the trailing edge, mirrored.
		for i := 0; i < points; i++ {
			xy = append(xy, d2.Mirror(d2.Rotate(side[i], alpha), bisector))
		}
	}
	return xy
}
