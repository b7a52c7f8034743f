package chart

import (
	"math"

	"github.com/dustin/go-humanize"

	"PriceTrend/internal/model"
)

// Plot region insets. The left and bottom margins reserve room for the
// price and date labels.
const (
	marginLeft   = 56.0
	marginRight  = 16.0
	marginTop    = 16.0
	marginBottom = 28.0

	gridlineCount = 5
	maxXLabels    = 8

	markerSize = 3.0
)

var (
	colorGrid      = Color{R: 31, G: 40, B: 55, A: 255}
	colorAxisText  = Color{R: 148, G: 163, B: 184, A: 255}
	colorLine      = Color{R: 89, G: 166, B: 255, A: 255}
	colorMarker    = Color{R: 89, G: 166, B: 255, A: 255}
	colorBarTop    = Color{R: 89, G: 166, B: 255, A: 70}
	colorBarBottom = Color{R: 89, G: 166, B: 255, A: 8}
	colorNoData    = Color{R: 148, G: 163, B: 184, A: 255}
)

// noDataText is the placeholder drawn when there is nothing to plot.
const noDataText = "No price data available"

type plotRegion struct {
	left, top, width, height float64
}

func (p plotRegion) bottom() float64 { return p.top + p.height }

// Render draws the full trend visualization onto the surface: gridlines
// with price labels, decimated date labels, a faded bar underlay, the
// smoothed trend line and a marker per sample. A nil or empty series
// produces the no-data placeholder instead of a blank canvas.
func Render(sfc Surface, s *model.PriceSeries, st *model.SeriesStatistics) {
	if s.Len() == 0 || st == nil {
		RenderPlaceholder(sfc)
		return
	}

	w, h := sfc.Size()
	plot := plotRegion{
		left:   marginLeft,
		top:    marginTop,
		width:  w - marginLeft - marginRight,
		height: h - marginTop - marginBottom,
	}

	drawGrid(sfc, plot, st)
	drawXLabels(sfc, plot, s)

	pts := plotPoints(plot, s, st)
	drawBars(sfc, plot, pts)
	drawCurve(sfc, pts)
	drawMarkers(sfc, pts)
}

// RenderPlaceholder draws the explicit "no data" state.
func RenderPlaceholder(sfc Surface) {
	w, h := sfc.Size()
	sfc.FillText(noDataText, w/2, h/2, colorNoData, 0.5, 0.5)
}

type point struct {
	x, y float64
}

// plotPoints maps every sample into plot coordinates.
//
// y = top + height - ((price - min) / range) * height, except that a
// degenerate series maps every point to the vertical center: with no
// variation there is nothing to scale against, and a centered flat line
// is the defined behavior rather than a divide by zero.
func plotPoints(plot plotRegion, s *model.PriceSeries, st *model.SeriesStatistics) []point {
	n := s.Len()
	pts := make([]point, n)
	for i, sample := range s.Samples {
		pts[i] = point{
			x: xForIndex(plot, i, n),
			y: yForPrice(plot, sample.Price, st),
		}
	}
	return pts
}

func yForPrice(plot plotRegion, price float64, st *model.SeriesStatistics) float64 {
	if st.IsDegenerate {
		return plot.top + plot.height/2
	}
	return plot.top + plot.height - ((price-st.Min)/st.Range)*plot.height
}

// xForIndex spaces samples uniformly across the plot width. A single
// sample sits at the horizontal center.
func xForIndex(plot plotRegion, i, n int) float64 {
	if n == 1 {
		return plot.left + plot.width/2
	}
	return plot.left + float64(i)/float64(n-1)*plot.width
}

// drawGrid draws the fixed number of horizontal gridlines, evenly spaced
// in price-space from max down to min, each labeled on the left.
func drawGrid(sfc Surface, plot plotRegion, st *model.SeriesStatistics) {
	for g := 0; g < gridlineCount; g++ {
		frac := float64(g) / float64(gridlineCount-1)
		y := plot.top + plot.height*frac
		price := st.Max - st.Range*frac

		sfc.MoveTo(plot.left, y)
		sfc.LineTo(plot.left+plot.width, y)
		sfc.Stroke(colorGrid, 1)

		sfc.FillText(formatAxisPrice(price), plot.left-6, y, colorAxisText, 1, 0.5)
	}
}

// drawXLabels draws every step-th date label, where step scales with the
// series length so at most maxXLabels labels appear regardless of how
// many samples the series has.
func drawXLabels(sfc Surface, plot plotRegion, s *model.PriceSeries) {
	n := s.Len()
	step := labelStep(n)
	for i := 0; i < n; i += step {
		x := xForIndex(plot, i, n)
		sfc.FillText(s.Samples[i].Label, x, plot.bottom()+6, colorAxisText, 0.5, 0)
	}
}

// labelStep returns the decimation interval ceil(n / maxXLabels).
func labelStep(n int) int {
	step := (n + maxXLabels - 1) / maxXLabels
	if step < 1 {
		step = 1
	}
	return step
}

// drawBars renders the faded vertical bar under each sample, from the
// plot floor up to the sample's mapped position.
func drawBars(sfc Surface, plot plotRegion, pts []point) {
	bw := plot.width / float64(len(pts)) * 0.6
	if bw < 1 {
		bw = 1
	}
	for _, p := range pts {
		height := plot.bottom() - p.y
		if height <= 0 {
			continue
		}
		sfc.FillRect(p.x-bw/2, p.y, bw, height, colorBarTop, colorBarBottom)
	}
}

// drawCurve strokes the smoothed trend line: each segment is a quadratic
// curve into the midpoint of the adjacent pair, with the earlier sample
// as control point. The curve passes through every midpoint and lands
// exactly on the first and last samples.
func drawCurve(sfc Surface, pts []point) {
	if len(pts) < 2 {
		return
	}
	sfc.MoveTo(pts[0].x, pts[0].y)
	for i := 1; i < len(pts); i++ {
		mx := (pts[i-1].x + pts[i].x) / 2
		my := (pts[i-1].y + pts[i].y) / 2
		sfc.QuadTo(pts[i-1].x, pts[i-1].y, mx, my)
	}
	sfc.LineTo(pts[len(pts)-1].x, pts[len(pts)-1].y)
	sfc.Stroke(colorLine, 2)
}

func drawMarkers(sfc Surface, pts []point) {
	for _, p := range pts {
		sfc.FillRect(p.x-markerSize/2, p.y-markerSize/2, markerSize, markerSize, colorMarker, colorMarker)
	}
}

// formatAxisPrice abbreviates gridline prices to thousands: 12500
// becomes "12.5k", 950 stays "950".
func formatAxisPrice(v float64) string {
	if math.Abs(v) >= 1000 {
		return humanize.FtoaWithDigits(v/1000, 1) + "k"
	}
	return humanize.FtoaWithDigits(v, 0)
}
