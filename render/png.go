package render

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/soypat/gasket/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// CreatePNG rasterizes the closed outline to a square PNG of size pixels
// at path, stroked black on white. The outline is centered and scaled to
// fit with a small margin, y axis pointing up.
func CreatePNG(path string, outline []r2.Vec, size int) error {
	if len(outline) < 3 {
		return errors.New("outline must have at least 3 points")
	}
	if size < 16 {
		return errors.New("image size below 16 pixels")
	}
	bb := d2.Set(outline).Bounds()
	extent := bb.Size()
	long := math.Max(extent.X, extent.Y)
	if !(long > 0) {
		return errors.New("outline has no extent")
	}
	const marginFrac = 0.02
	scale := float64(size) * (1 - 2*marginFrac) / long
	center := bb.Center()
	half := float64(size) / 2
	toPixel := func(p r2.Vec) (x, y float64) {
		return half + (p.X-center.X)*scale, half - (p.Y-center.Y)*scale
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	gc := draw2dimg.NewGraphicContext(img)
	gc.SetStrokeColor(color.Black)
	gc.SetLineWidth(1)
	x, y := toPixel(outline[0])
	gc.MoveTo(x, y)
	for _, p := range outline[1:] {
		x, y = toPixel(p)
		gc.LineTo(x, y)
	}
	gc.Close()
	gc.Stroke()
	return draw2dimg.SaveToPngFile(path, img)
}
