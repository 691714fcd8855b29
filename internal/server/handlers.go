package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/euncover/euncover/internal/dashboard"
	"github.com/euncover/euncover/internal/dataset"
)

// ErrorResponse is a JSON error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := s.ctrl.Render(r.Context(), r.URL.Query().Get("mep"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	if err := dashboard.WriteHTML(&buf, page, s.page); err != nil {
		s.log.Error("rendering page", "request_id", RequestID(r.Context()), "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleNetwork(w http.ResponseWriter, r *http.Request) {
	sel, err := dashboard.ParseSelection(r.URL.Query().Get("mep"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	html, err := s.ctrl.NetworkHTML(r.Context(), sel)
	if err != nil {
		http.Error(w, err.Error(), networkStatus(err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(html))
}

// networkStatus maps a network lookup failure to an HTTP status.
func networkStatus(err error) int {
	switch {
	case errors.Is(err, dashboard.ErrUnknownSelection):
		return http.StatusBadRequest
	case errors.Is(err, dataset.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, dataset.ErrMissing), errors.Is(err, dataset.ErrMalformed):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) handleAPI(w http.ResponseWriter, r *http.Request) {
	page, err := s.ctrl.Render(r.Context(), r.URL.Query().Get("mep"))
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	s.writeJSON(w, http.StatusOK, page)
}

func (s *Server) handleAsset(w http.ResponseWriter, r *http.Request) {
	path, ok := s.assets[r.PathValue("name")]
	if !ok {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, path)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		s.log.Error("encoding response", "error", err)
	}
}
