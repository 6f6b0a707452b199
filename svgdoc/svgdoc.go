/*
Package svgdoc assembles a minimal SVG document around the drawing
commands render.TableRenderer produces. Intentionally thin: full SVG
document assembly (gradients, defs, nested groups, styling) is out of
scope, so this package only wraps path/rect/text elements in an <svg>
root with a computed viewBox.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package svgdoc

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/grafigo/render"
)

// Writer assembles a stream of render.Element values into an SVG
// document. Kept as an interface, not a concrete function, so a caller
// wanting a different document shape (e.g. one embedding a <style>
// block) can supply its own implementation without touching render.
type Writer interface {
	Write(w io.Writer, elems []render.Element, width, height float64) error
}

// XMLWriter is the default Writer: one encoding/xml-driven pass producing
// a single <svg> root holding one <path>/<rect>/<text> per Element.
type XMLWriter struct{}

type svgDoc struct {
	XMLName xml.Name  `xml:"svg"`
	XMLNS   string    `xml:"xmlns,attr"`
	Width   float64   `xml:"width,attr"`
	Height  float64   `xml:"height,attr"`
	ViewBox string    `xml:"viewBox,attr"`
	Paths   []svgPath `xml:"path"`
	Rects   []svgRect `xml:"rect"`
	Texts   []svgText `xml:"text"`
}

type svgPath struct {
	D      string `xml:"d,attr"`
	Ident  string `xml:"id,attr,omitempty"`
	Stroke string `xml:"stroke,attr,omitempty"`
	Fill   string `xml:"fill,attr,omitempty"`
	Extra  string `xml:"style,attr,omitempty"`
}

type svgRect struct {
	X, Y, Width, Height float64
	Ident               string `xml:"id,attr,omitempty"`
	Stroke              string `xml:"stroke,attr,omitempty"`
	Fill                string `xml:"fill,attr,omitempty"`
}

// MarshalXML flattens svgRect's X/Y/Width/Height into the <rect> element's
// own x/y/width/height attributes — a plain struct tag can't do this since
// the field names collide with svgPath's unrelated attribute set, so the
// geometry fields are written out by hand here.
func (r svgRect) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Attr = append(start.Attr,
		xml.Attr{Name: xml.Name{Local: "x"}, Value: fmt.Sprintf("%g", r.X)},
		xml.Attr{Name: xml.Name{Local: "y"}, Value: fmt.Sprintf("%g", r.Y)},
		xml.Attr{Name: xml.Name{Local: "width"}, Value: fmt.Sprintf("%g", r.Width)},
		xml.Attr{Name: xml.Name{Local: "height"}, Value: fmt.Sprintf("%g", r.Height)},
	)
	if r.Ident != "" {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "id"}, Value: r.Ident})
	}
	if r.Stroke != "" {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "stroke"}, Value: r.Stroke})
	}
	if r.Fill != "" {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "fill"}, Value: r.Fill})
	}
	return e.EncodeElement(struct{}{}, start)
}

type svgText struct {
	X, Y    float64
	Content string `xml:",chardata"`
	Ident   string `xml:"id,attr,omitempty"`
}

func (t svgText) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Attr = append(start.Attr,
		xml.Attr{Name: xml.Name{Local: "x"}, Value: fmt.Sprintf("%g", t.X)},
		xml.Attr{Name: xml.Name{Local: "y"}, Value: fmt.Sprintf("%g", t.Y)},
	)
	if t.Ident != "" {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "id"}, Value: t.Ident})
	}
	return e.EncodeElement(t.Content, start)
}

// Write renders elems into a single <svg> document sized width×height,
// written to w.
func (XMLWriter) Write(w io.Writer, elems []render.Element, width, height float64) error {
	doc := svgDoc{
		XMLNS:   "http://www.w3.org/2000/svg",
		Width:   width,
		Height:  height,
		ViewBox: fmt.Sprintf("0 0 %g %g", width, height),
	}
	for _, el := range elems {
		switch {
		case el.Rect != nil:
			doc.Rects = append(doc.Rects, svgRect{
				X: el.Rect.X, Y: el.Rect.Y, Width: el.Rect.Width, Height: el.Rect.Height,
				Ident:  el.Ident,
				Stroke: attrValue(el.Attrs, "stroke"),
				Fill:   attrValue(el.Attrs, "fill"),
			})
		case el.IsText:
			doc.Texts = append(doc.Texts, svgText{X: el.TextAt.X, Y: el.TextAt.Y, Content: el.Content, Ident: el.Ident})
		default:
			doc.Paths = append(doc.Paths, svgPath{
				D:      strings.Join(el.PathData, " "),
				Ident:  el.Ident,
				Stroke: attrValue(el.Attrs, "stroke"),
				Fill:   attrValue(el.Attrs, "fill"),
			})
		}
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("svgdoc: writing header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("svgdoc: encoding document: %w", err)
	}
	return nil
}

func attrValue(attrs []render.Attr, name string) string {
	for _, a := range attrs {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}
