package gasket

import (
	"errors"
	"fmt"
	"io"
	"math"
)

// Jags returns the number of star points needed so that no jag takes up
// more than maxArc of the pad's outer circumference. It panics if radius
// or maxArc is not positive.
func Jags(radius, maxArc float64) int {
	if !(radius > 0) {
		panic("pad radius must be positive")
	}
	if !(maxArc > 0) {
		panic("jag circumference limit must be positive")
	}
	return int(math.Ceil(tau * radius / maxArc))
}

// Config holds the run-wide scalars shared by every gasket of a job.
type Config struct {
	// Resolution is the radial sampling pitch. A pad of radius R is traced
	// with R/Resolution radial samples per half-jag.
	Resolution float64
	// Height of the felt stock the pads are cut from.
	Height float64
	// MaxArc limits each jag's share of the outer circumference and so
	// sets the jag count, see Jags.
	MaxArc float64
	// MinRadius is the pad radius that must survive after the jags are
	// fully compressed. It limits the overlap depth to R-MinRadius.
	MinRadius float64
	// MaxOverlap is the absolute cap on the overlap depth.
	MaxOverlap float64
	// Recovery is the recovery fraction handed to every pad.
	Recovery float64
}

// Params derives the star parameters for a single pad radius. The overlap
// fraction becomes min(radius-MinRadius, MaxOverlap)/radius and the sample
// count radius/Resolution, truncated.
func (c Config) Params(radius float64) (Params, error) {
	if !(radius > 0) {
		return Params{}, fmt.Errorf("pad radius %g must be positive", radius)
	}
	if !(c.Resolution > 0) {
		return Params{}, errors.New("sampling resolution must be positive")
	}
	if !(c.Height >= 0) {
		return Params{}, errors.New("felt height must not be negative")
	}
	if !(c.MaxArc > 0) {
		return Params{}, errors.New("jag circumference limit must be positive")
	}
	if !(c.MaxOverlap > 0) {
		return Params{}, errors.New("overlap depth limit must be positive")
	}
	if !(c.Recovery > 0 && c.Recovery <= 1) {
		return Params{}, fmt.Errorf("recovery fraction %g must be in (0,1]", c.Recovery)
	}
	samples := int(radius / c.Resolution)
	if samples <= 0 {
		return Params{}, fmt.Errorf("pad radius %g below sampling resolution %g", radius, c.Resolution)
	}
	overlap := math.Min(radius-c.MinRadius, c.MaxOverlap) / radius
	if !(overlap > 0) {
		return Params{}, fmt.Errorf("pad radius %g does not clear the minimum radius %g", radius, c.MinRadius)
	}
	if overlap > 1 {
		return Params{}, fmt.Errorf("overlap depth %g exceeds the pad radius %g", overlap*radius, radius)
	}
	return Params{
		Radius:   radius,
		Height:   c.Height,
		Overlap:  overlap,
		Recovery: c.Recovery,
		Samples:  samples,
		Jags:     Jags(radius, c.MaxArc),
	}, nil
}

// ReadJob reads a gasket job from r. A job is whitespace separated text:
// six scalars naming the run configuration in the order resolution, felt
// height, max jag circumference, minimum compressed radius, max overlap
// depth and recovery fraction, followed by one pad radius per gasket until
// the stream ends.
func ReadJob(r io.Reader) (Config, []float64, error) {
	var c Config
	_, err := fmt.Fscan(r, &c.Resolution, &c.Height, &c.MaxArc, &c.MinRadius, &c.MaxOverlap, &c.Recovery)
	if err != nil {
		return Config{}, nil, fmt.Errorf("reading job configuration: %w", err)
	}
	var radii []float64
	for {
		var radius float64
		_, err = fmt.Fscan(r, &radius)
		if err == io.EOF {
			break
		}
		if err != nil {
			return Config{}, nil, fmt.Errorf("reading pad radius %d: %w", len(radii)+1, err)
		}
		radii = append(radii, radius)
	}
	return c, radii, nil
}
