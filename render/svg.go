package render

import (
	"bufio"
	"errors"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/soypat/gasket/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	// strokeStyle is the hairline cutting stroke applied to the outline
	// group. Plotter and laser software reads near zero stroke widths as
	// cut paths.
	strokeStyle = "fill:none;stroke:#000000;stroke-opacity:1;stroke-width:0.1"
	// svgMargin keeps the stroke clear of the document edge.
	svgMargin = 1.0
)

// CreateSVG writes the closed outline to path as an SVG document.
func CreateSVG(path string, outline []r2.Vec) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := WriteSVG(bw, outline); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteSVG writes the closed outline to w as an SVG document: one path
// traced with line commands inside a hairline stroked group, the document
// viewBox fitted around the outline.
func WriteSVG(w io.Writer, outline []r2.Vec) error {
	if len(outline) < 3 {
		return errors.New("outline must have at least 3 points")
	}
	bb := d2.Set(outline).Bounds().Enlarge(d2.Elem(2 * svgMargin))
	minx := int(math.Floor(bb.Min.X))
	miny := int(math.Floor(bb.Min.Y))
	width := int(math.Ceil(bb.Max.X)) - minx
	height := int(math.Ceil(bb.Max.Y)) - miny
	canvas := svg.New(w)
	canvas.Startview(width, height, minx, miny, width, height)
	canvas.Gstyle(strokeStyle)
	canvas.Path(PathData(outline), `id="path1"`)
	canvas.Gend()
	canvas.End()
	return nil
}

// PathData returns the outline as closed SVG path data, a move command
// followed by line commands and a closing Z.
func PathData(outline []r2.Vec) string {
	var b strings.Builder
	b.Grow(24 * len(outline))
	b.WriteString("M ")
	writePoint(&b, outline[0])
	for _, p := range outline[1:] {
		b.WriteString(" L ")
		writePoint(&b, p)
	}
	b.WriteString(" Z")
	return b.String()
}

func writePoint(b *strings.Builder, p r2.Vec) {
	b.WriteString(strconv.FormatFloat(p.X, 'f', -1, 64))
	b.WriteByte(' ')
	b.WriteString(strconv.FormatFloat(p.Y, 'f', -1, 64))
}
