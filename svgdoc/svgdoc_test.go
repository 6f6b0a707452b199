package svgdoc

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/grafigo/render"
)

func TestWriteProducesPathRectAndText(t *testing.T) {
	elems := []render.Element{
		{PathData: []string{"M 0,0", "L 9,0"}, Ident: "line1", Attrs: []render.Attr{{Name: "stroke", Value: "black", Kind: render.ColorKind}}},
		{Rect: &render.Rect{X: 0, Y: 0, Width: 18, Height: 24}, Ident: "box1"},
		{IsText: true, TextAt: render.Vec{X: 1, Y: 2}, Content: "hi"},
	}
	var buf bytes.Buffer
	if err := (XMLWriter{}).Write(&buf, elems, 100, 50); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"<svg", `viewBox="0 0 100 50"`, "<path", `d="M 0,0 L 9,0"`, "<rect", `width="18"`, "<text", "hi"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestWriteEmptyElementsStillProducesValidRoot(t *testing.T) {
	var buf bytes.Buffer
	if err := (XMLWriter{}).Write(&buf, nil, 10, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Errorf("expected an <svg> root even with no elements")
	}
}
