package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"PriceTrend/internal/chart"
	"PriceTrend/internal/model"
	"PriceTrend/internal/series"
	"PriceTrend/internal/strategy"
)

// noDataResponse is the explicit placeholder payload the UI shell maps
// to its "no chart available" state.
type noDataResponse struct {
	State     string `json:"state"`
	ProductID string `json:"product_id"`
}

// handleChart serves /chart/{productID}.{png|svg|json}.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/chart/")
	dot := strings.LastIndexByte(name, '.')
	if dot <= 0 {
		http.NotFound(w, r)
		return
	}
	productID, ext := name[:dot], name[dot+1:]

	srs, st, err := s.collector.Collect(r.Context(), productID)
	switch {
	case err == nil:
	case errors.Is(err, series.ErrEmptySeries), errors.Is(err, series.ErrMalformedPayload):
		// Engine-internal conditions degrade to the placeholder state,
		// never to a 5xx or a garbled chart.
		s.writeNoData(w, productID, ext)
		return
	default:
		zap.L().Error("collect failed", zap.String("product", productID), zap.Error(err))
		http.Error(w, "upstream price history unavailable", http.StatusBadGateway)
		return
	}

	verdict := strategy.Score(st)

	switch ext {
	case "json":
		writeJSON(w, http.StatusOK, &model.RenderPayload{
			ProductID:  productID,
			Statistics: *st,
			Verdict:    *verdict,
		})
	case "png":
		sfc := chart.NewImageSurface(s.chartWidth, s.chartHeight, s.pixelRatio)
		chart.Render(sfc, srs, st)
		w.Header().Set("Content-Type", "image/png")
		if err := sfc.EncodePNG(w); err != nil {
			zap.L().Error("encode png", zap.Error(err))
		}
	case "svg":
		sfc := chart.NewSVGSurface(s.chartWidth, s.chartHeight)
		chart.Render(sfc, srs, st)
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Write(sfc.Bytes())
	default:
		http.NotFound(w, r)
	}
}

func (s *Server) writeNoData(w http.ResponseWriter, productID, ext string) {
	switch ext {
	case "json":
		writeJSON(w, http.StatusOK, &noDataResponse{State: "no_data", ProductID: productID})
	case "png":
		sfc := chart.NewImageSurface(s.chartWidth, s.chartHeight, s.pixelRatio)
		chart.RenderPlaceholder(sfc)
		w.Header().Set("Content-Type", "image/png")
		sfc.EncodePNG(w)
	case "svg":
		sfc := chart.NewSVGSurface(s.chartWidth, s.chartHeight)
		chart.RenderPlaceholder(sfc)
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Write(sfc.Bytes())
	default:
		http.Error(w, "404 page not found", http.StatusNotFound)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("encode json response", zap.Error(err))
	}
}
