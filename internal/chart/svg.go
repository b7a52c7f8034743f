package chart

import (
	"bytes"
	"fmt"
	"strings"
)

// SVGSurface is a vector Surface that accumulates draw operations into
// an SVG document. Being resolution independent it ignores the device
// pixel ratio.
type SVGSurface struct {
	w, h  float64
	defs  bytes.Buffer
	body  bytes.Buffer
	path  strings.Builder
	grads map[[2]Color]string
}

// NewSVGSurface creates a vector surface of the given logical size.
func NewSVGSurface(width, height int) *SVGSurface {
	s := &SVGSurface{
		w:     float64(width),
		h:     float64(height),
		grads: make(map[[2]Color]string),
	}
	fmt.Fprintf(&s.body, "<rect width='100%%' height='100%%' fill='%s'/>", svgColor(backgroundColor))
	return s
}

func (s *SVGSurface) Size() (float64, float64) { return s.w, s.h }

func (s *SVGSurface) MoveTo(x, y float64) {
	fmt.Fprintf(&s.path, "M%.2f %.2f ", x, y)
}

func (s *SVGSurface) LineTo(x, y float64) {
	fmt.Fprintf(&s.path, "L%.2f %.2f ", x, y)
}

func (s *SVGSurface) QuadTo(cx, cy, x, y float64) {
	fmt.Fprintf(&s.path, "Q%.2f %.2f %.2f %.2f ", cx, cy, x, y)
}

func (s *SVGSurface) Stroke(c Color, width float64) {
	if s.path.Len() == 0 {
		return
	}
	fmt.Fprintf(&s.body, "<path d='%s' fill='none' stroke='%s' stroke-width='%.1f' stroke-linejoin='round'/>",
		strings.TrimSpace(s.path.String()), svgColor(c), width)
	s.path.Reset()
}

func (s *SVGSurface) FillRect(x, y, w, h float64, top, bottom Color) {
	fill := svgColor(top)
	if top != bottom {
		fill = fmt.Sprintf("url(#%s)", s.gradientID(top, bottom))
	}
	fmt.Fprintf(&s.body, "<rect x='%.2f' y='%.2f' width='%.2f' height='%.2f' fill='%s'/>", x, y, w, h, fill)
}

func (s *SVGSurface) FillText(text string, x, y float64, c Color, ax, ay float64) {
	anchor := "middle"
	switch {
	case ax < 0.25:
		anchor = "start"
	case ax > 0.75:
		anchor = "end"
	}
	baseline := "middle"
	switch {
	case ay < 0.25:
		baseline = "hanging"
	case ay > 0.75:
		baseline = "auto"
	}
	fmt.Fprintf(&s.body,
		"<text x='%.2f' y='%.2f' fill='%s' font-family='Inter, sans-serif' font-size='11' text-anchor='%s' dominant-baseline='%s'>%s</text>",
		x, y, svgColor(c), anchor, baseline, escapeText(text))
}

// gradientID registers (once) a vertical fade def for the color pair.
func (s *SVGSurface) gradientID(top, bottom Color) string {
	key := [2]Color{top, bottom}
	if id, ok := s.grads[key]; ok {
		return id
	}
	id := fmt.Sprintf("grad%d", len(s.grads))
	s.grads[key] = id
	fmt.Fprintf(&s.defs,
		"<linearGradient id='%s' x1='0' y1='0' x2='0' y2='1'><stop offset='0' stop-color='%s'/><stop offset='1' stop-color='%s'/></linearGradient>",
		id, svgColor(top), svgColor(bottom))
	return id
}

// Bytes assembles the final SVG document.
func (s *SVGSurface) Bytes() []byte {
	var out bytes.Buffer
	fmt.Fprintf(&out, "<svg xmlns='http://www.w3.org/2000/svg' width='%.0f' height='%.0f' viewBox='0 0 %.0f %.0f'>",
		s.w, s.h, s.w, s.h)
	if s.defs.Len() > 0 {
		out.WriteString("<defs>")
		out.Write(s.defs.Bytes())
		out.WriteString("</defs>")
	}
	out.Write(s.body.Bytes())
	out.WriteString("</svg>")
	return out.Bytes()
}

func svgColor(c Color) string {
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", c.R, c.G, c.B, float64(c.A)/255)
}

func escapeText(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
