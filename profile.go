package gasket

import "math"

// Jag profiles
//
// A star gasket is cut from a circular felt pad of radius R whose rim is
// split into N jags so the pad can compress into a smaller opening and
// recover its seal. The rim geometry of a single half-jag is described in
// an unrolled coordinate pair (s, c): s is the distance traveled radially
// outward from the pad center and c is the total arc length swept around
// the circumference after traveling s. Three regimes make up the profile:
// the solid pad body, where a full turn tau*s is swept; the recovery zone,
// where swept arc is traded away steeply as the felt overlap is consumed;
// and the tip zone, where the remaining arc unwinds at one turn per unit
// radius until the jag comes to a point.

// Region labels one of the three radial regimes of a jag profile.
type Region int

const (
	// RegionPad is the solid pad body, s < S1.
	RegionPad Region = iota
	// RegionRecovery is the compressed overlap recovery zone, S1 <= s < S2.
	RegionRecovery
	// RegionTip is the outer overlap out to the jag tip, s >= S2.
	RegionTip
)

func (r Region) String() string {
	switch r {
	case RegionPad:
		return "pad"
	case RegionRecovery:
		return "recovery"
	case RegionTip:
		return "tip"
	}
	return "unknown"
}

// Profile is the piecewise linear map from radial distance s to swept arc
// length c for one half-jag. The breakpoints satisfy S1 < S2 <= S3 and the
// map is continuous at both.
type Profile struct {
	// S1 is where the solid pad body ends and jags begin.
	S1 float64
	// S2 is where the recovery zone hands over to the jag tip.
	S2 float64
	// S3 is the radial extent of the jag tips.
	S3 float64

	// arc1 and arc2 anchor the recovery and tip branches on the previous
	// branch endpoint so the profile is continuous at S1 and S2.
	arc1, arc2 float64
	// slope is the arc lost per unit radius inside the recovery zone.
	slope float64
}

// NewProfile returns the half-jag profile of a pad of the given radius
// cut from felt of thickness height. overlap is the fraction of the
// radius taken up by the jags and recovery the fraction of that overlap
// used to recover compression, both in (0,1]. NewProfile panics if any
// parameter is out of range.
func NewProfile(radius, height, overlap, recovery float64) Profile {
	if !(radius > 0) {
		panic("pad radius must be positive")
	}
	if !(height >= 0) {
		panic("felt height must not be negative")
	}
	if !(overlap > 0 && overlap <= 1) {
		panic("overlap fraction must be in (0,1]")
	}
	if !(recovery > 0 && recovery <= 1) {
		panic("recovery fraction must be in (0,1]")
	}
	q := Profile{
		S1: radius + height,
		S2: radius*(1+recovery*overlap) + height,
		S3: radius*(1+overlap) + height,
	}
	q.arc1 = tau * q.S1
	q.slope = tau * (height + radius*recovery*overlap) / (radius * recovery * overlap)
	q.arc2 = q.arc1 - q.slope*(q.S2-q.S1)
	return q
}

// Region returns the regime containing radial distance s.
func (q Profile) Region(s float64) Region {
	switch {
	case s < q.S1:
		return RegionPad
	case s < q.S2:
		return RegionRecovery
	}
	return RegionTip
}

// Arc returns the arc length swept after traveling radial distance s.
// It panics if s is negative.
func (q Profile) Arc(s float64) float64 {
	if !(s >= 0) {
		panic("radial distance must not be negative")
	}
	switch q.Region(s) {
	case RegionPad:
		return tau * s
	case RegionRecovery:
		return q.arc1 - q.slope*(s-q.S1)
	}
	return q.arc2 - tau*(s-q.S2)
}

// Sample is one (s, c) sample of a half-jag contour.
type Sample struct {
	// S is the radial distance traveled from the pad center.
	S float64
	// C is the arc length swept after traveling S.
	C float64
}

// Trace discretizes the profile into the half-jag sample sequence.
// samples is the count of evenly spaced radial samples sweeping S1 to S3
// and jags the number of jags the star will carry, which sizes the tail:
// after the radial sweep the trace keeps s pinned at the sweep's end while
// c winds down toward the jag tip, stepping by twice the radial pitch
// times the jag count. The returned sequence is never shorter than samples
// and its c values are strictly decreasing.
func (q Profile) Trace(samples, jags int) []Sample {
	if samples <= 0 {
		panic("radial sample count must be positive")
	}
	if jags <= 0 {
		panic("jag count must be positive")
	}
	k := samples
	n := float64(jags)
	ds := (q.S3 - q.S1) / float64(k)
	kappa := int(math.Floor(float64(k) + q.Arc(q.S3)/(ds*n*2)))
	if kappa < k {
		panic("tip winding fell below the radial sweep")
	}
	sc := make([]Sample, 0, kappa)
	for i := 0; i < k; i++ {
		s := q.S1 + ds*float64(i)
		sc = append(sc, Sample{S: s, C: q.Arc(s)})
	}
	s := q.S1 + ds*float64(k)
	c := q.Arc(s)
	for i := k; i < kappa; i++ {
		sc = append(sc, Sample{S: s, C: c - ds*2*n*float64(i-k)})
	}
	return sc
}
