package chart

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"PriceTrend/internal/calculator"
	"PriceTrend/internal/model"
)

func TestImageSurface_EncodesPNG(t *testing.T) {
	samples := []model.PriceSample{
		{Time: time.Now().AddDate(0, 0, -2), Label: "Aug 29", Price: 1000},
		{Time: time.Now().AddDate(0, 0, -1), Label: "Aug 30", Price: 1200},
		{Time: time.Now(), Label: "Aug 31", Price: 950},
	}
	s := &model.PriceSeries{ProductID: "p1", Samples: samples, CurrentPrice: 950}
	st, err := calculator.Compute(s)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}

	sfc := NewImageSurface(300, 150, 2)
	Render(sfc, s, st)

	var buf bytes.Buffer
	if err := sfc.EncodePNG(&buf); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	// PNG signature
	if !bytes.HasPrefix(buf.Bytes(), []byte{0x89, 'P', 'N', 'G'}) {
		t.Error("output is not a PNG")
	}
}

func TestImageSurface_SavePNG(t *testing.T) {
	sfc := NewImageSurface(40, 20, 1)
	RenderPlaceholder(sfc)
	path := filepath.Join(t.TempDir(), "chart.png")
	if err := sfc.SavePNG(path); err != nil {
		t.Fatalf("save png: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !bytes.HasPrefix(data, []byte{0x89, 'P', 'N', 'G'}) {
		t.Error("file is not a PNG")
	}
}

func TestImageSurface_PixelRatioScalesBacking(t *testing.T) {
	sfc := NewImageSurface(300, 150, 2)
	if w, h := sfc.Size(); w != 300 || h != 150 {
		t.Errorf("logical size must stay 300x150, got %.0fx%.0f", w, h)
	}
	img := sfc.dc.Image()
	b := img.Bounds()
	if b.Dx() != 600 || b.Dy() != 300 {
		t.Errorf("backing image must be scaled by the pixel ratio, got %dx%d", b.Dx(), b.Dy())
	}
}
