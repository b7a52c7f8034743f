package chart

import (
	"image/color"
	"io"

	"github.com/fogleman/gg"
)

// ImageSurface is a raster Surface backed by an in-memory canvas.
// The device pixel ratio is applied once here: the backing image is
// ratio times larger than the logical size and every draw call is
// scaled up, so exported pixels stay crisp on high-density displays.
type ImageSurface struct {
	dc   *gg.Context
	w, h float64
}

var (
	backgroundColor = Color{R: 11, G: 15, B: 23, A: 255}
)

// NewImageSurface creates a raster surface of the given logical size.
func NewImageSurface(width, height int, pixelRatio float64) *ImageSurface {
	if pixelRatio < 1 {
		pixelRatio = 1
	}
	dc := gg.NewContext(int(float64(width)*pixelRatio), int(float64(height)*pixelRatio))
	dc.SetColor(toNRGBA(backgroundColor))
	dc.Clear()
	dc.Scale(pixelRatio, pixelRatio)
	return &ImageSurface{dc: dc, w: float64(width), h: float64(height)}
}

func (s *ImageSurface) Size() (float64, float64) { return s.w, s.h }

func (s *ImageSurface) MoveTo(x, y float64) { s.dc.MoveTo(x, y) }

func (s *ImageSurface) LineTo(x, y float64) { s.dc.LineTo(x, y) }

func (s *ImageSurface) QuadTo(cx, cy, x, y float64) { s.dc.QuadraticTo(cx, cy, x, y) }

func (s *ImageSurface) Stroke(c Color, width float64) {
	s.dc.SetColor(toNRGBA(c))
	s.dc.SetLineWidth(width)
	s.dc.Stroke()
}

func (s *ImageSurface) FillRect(x, y, w, h float64, top, bottom Color) {
	if top == bottom {
		s.dc.SetColor(toNRGBA(top))
	} else {
		grad := gg.NewLinearGradient(x, y, x, y+h)
		grad.AddColorStop(0, toNRGBA(top))
		grad.AddColorStop(1, toNRGBA(bottom))
		s.dc.SetFillStyle(grad)
	}
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.Fill()
}

func (s *ImageSurface) FillText(text string, x, y float64, c Color, ax, ay float64) {
	s.dc.SetColor(toNRGBA(c))
	// gg anchors text by its baseline; ay=1 keeps the glyph box above y.
	s.dc.DrawStringAnchored(text, x, y, ax, 1-ay)
}

// EncodePNG serializes the surface exactly as drawn.
func (s *ImageSurface) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

// SavePNG writes the surface to a raster image file.
func (s *ImageSurface) SavePNG(path string) error {
	return s.dc.SavePNG(path)
}

func toNRGBA(c Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
