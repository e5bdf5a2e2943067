package render_test

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/soypat/gasket/internal/d2"
	"github.com/soypat/gasket/render"
)

func TestWriteSVG(t *testing.T) {
	outline := referenceOutline(t)
	var b bytes.Buffer
	if err := render.WriteSVG(&b, outline); err != nil {
		t.Fatal(err)
	}
	doc := b.String()
	for _, want := range []string{
		`viewBox="`,
		"fill:none;stroke:#000000;stroke-opacity:1;stroke-width:0.1",
		`id="path1"`,
		"M ",
		" Z",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}
	if !strings.Contains(doc, render.PathData(outline)) {
		t.Error("document missing the outline path data")
	}
	// The viewBox must cover the outline's bounding box.
	i := strings.Index(doc, `viewBox="`)
	if i < 0 {
		t.Fatal("document has no viewBox")
	}
	var minx, miny, width, height int
	if _, err := fmt.Sscanf(doc[i:], `viewBox="%d %d %d %d"`, &minx, &miny, &width, &height); err != nil {
		t.Fatalf("cannot parse viewBox: %v", err)
	}
	bb := d2.Set(outline).Bounds()
	if float64(minx) > bb.Min.X || float64(miny) > bb.Min.Y ||
		float64(minx+width) < bb.Max.X || float64(miny+height) < bb.Max.Y {
		t.Errorf("viewBox %d %d %d %d does not cover the outline bounds %+v",
			minx, miny, width, height, bb)
	}
	// The document must parse as XML.
	dec := xml.NewDecoder(strings.NewReader(doc))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("document is not well formed: %v", err)
		}
	}
}

func TestPathData(t *testing.T) {
	outline := referenceOutline(t)
	d := render.PathData(outline)
	if !strings.HasPrefix(d, "M ") {
		t.Errorf("path data starts with %q, want move command", d[:2])
	}
	if !strings.HasSuffix(d, " Z") {
		t.Error("path data does not close")
	}
	if got, want := strings.Count(d, "L"), len(outline)-1; got != want {
		t.Errorf("path data has %d line commands, want %d", got, want)
	}
}

func TestCreateSVG(t *testing.T) {
	const path = "star_create.svg"
	defer os.Remove(path)
	outline := referenceOutline(t)
	if err := render.CreateSVG(path, outline); err != nil {
		t.Fatal(err)
	}
	onDisk, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err := render.WriteSVG(&b, outline); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(onDisk, b.Bytes()) {
		t.Error("CreateSVG and WriteSVG output mismatch")
	}
}

func TestWriteSVGDegenerate(t *testing.T) {
	var b bytes.Buffer
	if err := render.WriteSVG(&b, referenceOutline(t)[:2]); err == nil {
		t.Error("two point outline accepted")
	}
}
