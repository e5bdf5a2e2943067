// Command gasket generates star shaped felt gasket outlines ready for
// cutting from a plain text job file.
//
// Usage:
//
//	gasket [flags] job.txt
//
// The job file holds six whitespace separated scalars naming the run
// configuration (sampling resolution, felt height, max jag circumference,
// minimum compressed radius, max overlap depth, recovery fraction)
// followed by one pad radius per gasket:
//
//	0.1 1 5 2 3 0.5
//	10 12.5 20
//
// For every radius R the command writes an SVG cutting path named after
// the radius with one decimal, 10.0.svg and so on. Flags add a solid STL
// of the extruded pad and a raster preview next to each SVG.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/soypat/gasket"
	"github.com/soypat/gasket/render"
)

var (
	outDir  = flag.String("o", ".", "output `directory` for generated files")
	inches  = flag.Bool("in", false, "job lengths are inches, output millimetres")
	withSTL = flag.Bool("stl", false, "also write R.stl, the pad extruded to the felt height")
	pngSize = flag.Int("png", 0, "also write R.png previews of the given pixel `size`")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("gasket: ")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: gasket [flags] job.txt")
		flag.PrintDefaults()
		os.Exit(2)
	}
	fp, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	cfg, radii, err := gasket.ReadJob(fp)
	fp.Close()
	if err != nil {
		log.Fatal(err)
	}
	if len(radii) == 0 {
		log.Fatal("job lists no pad radii")
	}
	if *inches {
		toMillimetres(&cfg, radii)
	}
	for _, radius := range radii {
		if err := generate(cfg, radius); err != nil {
			log.Fatalf("R = %g: %v", radius, err)
		}
	}
}

// toMillimetres rescales an inch denominated job in place. Recovery is a
// fraction and carries no unit.
func toMillimetres(cfg *gasket.Config, radii []float64) {
	cfg.Resolution *= gasket.MillimetresPerInch
	cfg.Height *= gasket.MillimetresPerInch
	cfg.MaxArc *= gasket.MillimetresPerInch
	cfg.MinRadius *= gasket.MillimetresPerInch
	cfg.MaxOverlap *= gasket.MillimetresPerInch
	for i := range radii {
		radii[i] *= gasket.MillimetresPerInch
	}
}

func generate(cfg gasket.Config, radius float64) error {
	fmt.Printf("Generating star for R = %g\n", radius)
	params, err := cfg.Params(radius)
	if err != nil {
		return err
	}
	star, err := gasket.Star(params)
	if err != nil {
		return err
	}
	name := filepath.Join(*outDir, strconv.FormatFloat(radius, 'f', 1, 64))
	if err := render.CreateSVG(name+".svg", star); err != nil {
		return err
	}
	if *withSTL {
		if params.Height <= 0 {
			return errors.New("cannot extrude pad, felt height is zero")
		}
		if err := render.CreateSTL(name+".stl", render.NewPrismRenderer(star, params.Height)); err != nil {
			return err
		}
	}
	if *pngSize > 0 {
		if err := render.CreatePNG(name+".png", star, *pngSize); err != nil {
			return err
		}
	}
	return nil
}
