package gasket_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/soypat/gasket"
	"github.com/soypat/gasket/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

var referenceParams = gasket.Params{
	Radius:   10,
	Height:   1,
	Overlap:  0.3,
	Recovery: 0.5,
	Samples:  5,
	Jags:     6,
}

func diff(t *testing.T, want, got interface{}, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func TestStarReference(t *testing.T) {
	p := referenceParams
	star, err := gasket.Star(p)
	if err != nil {
		t.Fatal(err)
	}
	q := p.Profile()
	kappa := len(q.Trace(p.Samples, p.Jags))
	if got, want := len(star), 2*p.Jags*kappa; got != want {
		t.Fatalf("outline has %d points, want %d", got, want)
	}
	// Every point sits between the pad body and the jag tips.
	for i, pt := range star {
		if math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) {
			t.Fatalf("point %d is not finite: %v", i, pt)
		}
		r := r2.Norm(pt)
		if r < q.S1-1e-9 || r > q.S3+1e-9 {
			t.Errorf("point %d at radius %g, want within [%g, %g]", i, r, q.S1, q.S3)
		}
	}
	// The jag base sits on the first jag's bisector at the pad body
	// radius: a closed form independent of the sampling.
	base := star[kappa-1]
	bisector := math.Pi / float64(p.Jags)
	want := r2.Vec{X: q.S1 * math.Cos(bisector), Y: q.S1 * math.Sin(bisector)}
	if !d2.EqualWithin(base, want, 1e-9) {
		t.Errorf("jag base at %v, want %v", base, want)
	}
}

func TestStarMatchesMustStar(t *testing.T) {
	star, err := gasket.Star(referenceParams)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, gasket.MustStar(referenceParams), star)
}

func TestStarRotationalSymmetry(t *testing.T) {
	p := referenceParams
	star := gasket.MustStar(p)
	kappa := len(star) / (2 * p.Jags)
	block := 2 * kappa
	dalpha := 2 * math.Pi / float64(p.Jags)
	// Rotating the outline by one jag's angle reproduces the outline
	// advanced by one jag block.
	rotated := make([]r2.Vec, len(star))
	for i, pt := range star {
		rotated[i] = d2.Rotate(pt, dalpha)
	}
	shifted := make([]r2.Vec, 0, len(star))
	shifted = append(shifted, star[block:]...)
	shifted = append(shifted, star[:block]...)
	diff(t, shifted, rotated, cmpopts.EquateApprox(0, 1e-9))
}

func TestStarMirrorSymmetry(t *testing.T) {
	p := referenceParams
	star := gasket.MustStar(p)
	block := len(star) / p.Jags
	bisector := math.Pi / float64(p.Jags)
	// Each jag is its own mirror image about its bisector: the first
	// block reads the same backwards after reflecting.
	for j := 0; j < block; j++ {
		got := d2.Mirror(star[j], bisector)
		want := star[block-1-j]
		if !d2.EqualWithin(got, want, 1e-9) {
			t.Fatalf("mirrored point %d = %v, want %v", j, got, want)
		}
	}
}

func TestStarCounterclockwise(t *testing.T) {
	star := gasket.MustStar(referenceParams)
	// Shoelace sum of a counterclockwise polygon is positive.
	var sum float64
	for i, p := range star {
		q := star[(i+1)%len(star)]
		sum += p.X*q.Y - p.Y*q.X
	}
	if sum <= 0 {
		t.Errorf("signed area %g, want positive", sum/2)
	}
}

func TestStarRejectsDegenerate(t *testing.T) {
	base := referenceParams
	for _, tc := range []struct {
		name   string
		mutate func(*gasket.Params)
	}{
		{name: "zero radius", mutate: func(p *gasket.Params) { p.Radius = 0 }},
		{name: "NaN radius", mutate: func(p *gasket.Params) { p.Radius = math.NaN() }},
		{name: "negative height", mutate: func(p *gasket.Params) { p.Height = -1 }},
		{name: "zero overlap", mutate: func(p *gasket.Params) { p.Overlap = 0 }},
		{name: "overlap above one", mutate: func(p *gasket.Params) { p.Overlap = 2 }},
		{name: "zero recovery", mutate: func(p *gasket.Params) { p.Recovery = 0 }},
		{name: "zero samples", mutate: func(p *gasket.Params) { p.Samples = 0 }},
		{name: "zero jags", mutate: func(p *gasket.Params) { p.Jags = 0 }},
	} {
		p := base
		tc.mutate(&p)
		if _, err := gasket.Star(p); err == nil {
			t.Errorf("%s: Star accepted %+v", tc.name, p)
		}
	}
}

func TestStarSingleJag(t *testing.T) {
	p := referenceParams
	p.Jags = 1
	star, err := gasket.Star(p)
	if err != nil {
		t.Fatal(err)
	}
	kappa := len(p.Profile().Trace(p.Samples, p.Jags))
	if len(star) != 2*kappa {
		t.Fatalf("single jag outline has %d points, want %d", len(star), 2*kappa)
	}
}
