package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rsharan/jyotish/pkg/buildinfo"
	"github.com/rsharan/jyotish/pkg/chart"
	"github.com/rsharan/jyotish/pkg/errors"
	"github.com/rsharan/jyotish/pkg/observability"
	"github.com/rsharan/jyotish/pkg/render/aspectgraph"
	"github.com/rsharan/jyotish/pkg/store"
)

// compute runs chart.Compute with engine hooks around it.
func compute(ctx context.Context, in chart.Input) (*chart.Chart, error) {
	observability.Engine().OnComputeStart(ctx, len(in.Bodies))
	start := time.Now()
	c, err := chart.Compute(in)
	observability.Engine().OnComputeComplete(ctx, len(in.Bodies), time.Since(start), err)
	return c, err
}

// chartResponse is the POST /v1/charts envelope. ID is set only when
// the chart was persisted.
type chartResponse struct {
	ID        string          `json:"id,omitempty"`
	InputHash string          `json:"input_hash"`
	Cached    bool            `json:"cached"`
	Chart     json.RawMessage `json:"chart"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"version": buildinfo.Version,
		"commit":  buildinfo.Commit,
		"built":   buildinfo.Date,
	})
}

// handleComputeChart computes a chart from the posted input. Identical
// inputs are served from the cache; ?save=1 persists the result.
func (s *Server) handleComputeChart(w http.ResponseWriter, r *http.Request) {
	var in chart.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode chart input"))
		return
	}

	hash, err := chart.InputHash(in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	save := r.URL.Query().Get("save") == "1"
	key := s.keyer.ChartKey(hash)

	resp := chartResponse{InputHash: hash}
	if data, ok, err := s.cache.Get(r.Context(), key); err == nil && ok {
		observability.Cache().OnCacheHit(r.Context(), "chart")
		resp.Cached = true
		resp.Chart = data
	} else {
		observability.Cache().OnCacheMiss(r.Context(), "chart")
	}

	var computed *chart.Chart
	if resp.Chart == nil || save {
		computed, err = compute(r.Context(), in)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
	}
	if resp.Chart == nil {
		var buf bytes.Buffer
		if err := chart.WriteJSON(computed, &buf); err != nil {
			s.writeError(w, r, err)
			return
		}
		resp.Chart = buf.Bytes()
		if err := s.cache.Set(r.Context(), key, resp.Chart, s.ttl); err != nil {
			s.logger.Warn("cache chart", "key", key, "err", err)
		} else {
			observability.Cache().OnCacheSet(r.Context(), "chart", len(resp.Chart))
		}
	}

	if save {
		if s.store == nil {
			s.writeError(w, r, errors.New(errors.ErrCodeUnsupported, "chart persistence is not configured"))
			return
		}
		rec, err := store.NewRecord(in, computed)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		if err := s.store.Save(r.Context(), rec); err != nil {
			s.writeError(w, r, err)
			return
		}
		resp.ID = rec.ID
		w.Header().Set("Location", "/v1/charts/"+rec.ID)
		writeJSON(w, http.StatusCreated, resp)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// recordResponse exposes a persisted record with its blobs inlined.
type recordResponse struct {
	store.Record
	Input json.RawMessage `json:"input"`
	Chart json.RawMessage `json:"chart"`
}

func (s *Server) handleGetChart(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, r, errors.New(errors.ErrCodeUnsupported, "chart persistence is not configured"))
		return
	}
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, recordResponse{Record: rec, Input: rec.Input, Chart: rec.Chart})
}

func (s *Server) handleListCharts(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, r, errors.New(errors.ErrCodeUnsupported, "chart persistence is not configured"))
		return
	}
	limit := 20
	if q := r.URL.Query().Get("limit"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 1 {
			s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "invalid limit %q", q))
			return
		}
		limit = n
	}
	recs, err := s.store.List(r.Context(), limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if recs == nil {
		recs = []store.Record{}
	}
	writeJSON(w, http.StatusOK, recs)
}

// handleAspectGraph renders a saved chart's aspect network as DOT, SVG
// or PNG. Rendered artifacts are cached by input hash and format.
func (s *Server) handleAspectGraph(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, r, errors.New(errors.ErrCodeUnsupported, "chart persistence is not configured"))
		return
	}
	format := chi.URLParam(r, "format")
	var contentType string
	switch format {
	case "dot":
		contentType = "text/vnd.graphviz"
	case "svg":
		contentType = "image/svg+xml"
	case "png":
		contentType = "image/png"
	default:
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidFormat, "unsupported graph format %q", format))
		return
	}

	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	key := s.keyer.ArtifactKey(rec.InputHash, format)
	if data, ok, err := s.cache.Get(r.Context(), key); err == nil && ok {
		w.Header().Set("Content-Type", contentType)
		w.Write(data)
		return
	}

	var in chart.Input
	if err := json.Unmarshal(rec.Input, &in); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "decode stored input"))
		return
	}
	c, err := compute(r.Context(), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	dot := aspectgraph.ToDOT(c.Aspects, aspectgraph.Options{Detailed: true})
	var data []byte
	observability.Engine().OnRenderStart(r.Context(), format)
	start := time.Now()
	switch format {
	case "dot":
		data = []byte(dot)
	case "svg":
		data, err = aspectgraph.RenderSVG(r.Context(), dot)
	case "png":
		data, err = aspectgraph.RenderPNG(r.Context(), dot)
	}
	observability.Engine().OnRenderComplete(r.Context(), format, time.Since(start), err)
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "render aspect graph"))
		return
	}

	if err := s.cache.Set(r.Context(), key, data, s.ttl); err != nil {
		s.logger.Warn("cache artifact", "key", key, "err", err)
	}
	w.Header().Set("Content-Type", contentType)
	w.Write(data)
}

// writeJSON writes v as an indented JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(v) //nolint:errcheck // headers already sent
}

// errorResponse is the JSON error body.
type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// writeError maps an error code to an HTTP status and writes the body.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := statusFor(code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err)
	}
	writeJSON(w, status, errorResponse{Code: code, Message: errors.UserMessage(err)})
}

func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidLongitude,
		errors.ErrCodeInvalidBody, errors.ErrCodeInvalidTimezone,
		errors.ErrCodeInvalidSystem, errors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeChartNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	case errors.ErrCodeStorage:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
