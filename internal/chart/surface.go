package chart

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// Surface is the minimal drawing target the renderer needs. MoveTo,
// LineTo and QuadTo accumulate a path that the next Stroke consumes.
// Device-pixel-ratio scaling is a backend concern, applied once at
// surface construction; the renderer always works in logical units.
type Surface interface {
	// Size returns the logical width and height of the surface.
	Size() (w, h float64)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	// QuadTo appends a quadratic curve to (x, y) with control point (cx, cy).
	QuadTo(cx, cy, x, y float64)
	// Stroke draws the accumulated path and resets it.
	Stroke(c Color, width float64)

	// FillRect fills a rectangle with a vertical top-to-bottom fade.
	// Pass the same color twice for a solid fill.
	FillRect(x, y, w, h float64, top, bottom Color)

	// FillText draws s anchored at (x, y); ax and ay select the anchor
	// point within the text box, 0 meaning left/top and 1 right/bottom.
	FillText(s string, x, y float64, c Color, ax, ay float64)
}
