package render_test

import (
	"bytes"
	"io"
	"math"
	"os"
	"testing"

	"github.com/fogleman/fauxgl"
	"github.com/soypat/gasket/render"
)

func TestSTLCreateWriteRead(t *testing.T) {
	const path = "star_roundtrip.stl"
	defer os.Remove(path)
	outline := referenceOutline(t)
	err := render.CreateSTL(path, render.NewPrismRenderer(outline, referenceHeight))
	if err != nil {
		t.Fatal(err)
	}
	fp, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	bfile, err := io.ReadAll(fp)
	if err != nil {
		t.Fatal(err)
	}
	model, err := render.RenderAll(render.NewPrismRenderer(outline, referenceHeight))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(model), 4*len(outline); got != want {
		t.Errorf("mesh has %d triangles, want %d (4 per outline edge)", got, want)
	}
	var b bytes.Buffer
	err = render.WriteSTL(&b, model)
	if err != nil {
		t.Fatal(err)
	}
	if b.Len() != len(bfile) {
		t.Fatal("WriteSTL and CreateSTL output length mismatch")
	}
	if !bytes.Equal(b.Bytes(), bfile) {
		t.Fatal("WriteSTL and CreateSTL output mismatch")
	}
}

func TestSTLLoadsInViewer(t *testing.T) {
	const path = "star_viewer.stl"
	defer os.Remove(path)
	outline := referenceOutline(t)
	err := render.CreateSTL(path, render.NewPrismRenderer(outline, referenceHeight))
	if err != nil {
		t.Fatal(err)
	}
	mesh, err := fauxgl.LoadSTL(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(mesh.Triangles), 4*len(outline); got != want {
		t.Errorf("viewer loaded %d triangles, want %d", got, want)
	}
	// The mesh must span the felt height and the jag tip diameter.
	box := mesh.BoundingBox()
	if math.Abs(box.Max.Z-box.Min.Z-referenceHeight) > 1e-5 {
		t.Errorf("mesh height %g, want %g", box.Max.Z-box.Min.Z, referenceHeight)
	}
}

func TestWriteSTLEmpty(t *testing.T) {
	var b bytes.Buffer
	if err := render.WriteSTL(&b, nil); err == nil {
		t.Error("empty model accepted")
	}
}
