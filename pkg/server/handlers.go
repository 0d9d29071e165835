package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/releaseorder/pkg/buildinfo"
	errs "github.com/matzehuels/releaseorder/pkg/errors"
	pkgio "github.com/matzehuels/releaseorder/pkg/io"
	"github.com/matzehuels/releaseorder/pkg/observability"
)

type orderResponse struct {
	RunID string   `json:"run_id"`
	Order []string `json:"order"`
}

type cyclesResponse struct {
	RunID  string     `json:"run_id"`
	Error  string     `json:"error"`
	Cycles [][]string `json:"cycles"`
}

type errorResponse struct {
	Error string    `json:"error"`
	Code  errs.Code `json:"code,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, buildinfo.Get())
}

func (s *Server) handleOrder(w http.ResponseWriter, r *http.Request) {
	format, err := requestFormat(r)
	if err != nil {
		writeError(w, http.StatusUnsupportedMediaType, err)
		return
	}

	body := http.MaxBytesReader(w, r.Body, s.settings.MaxBodyBytes)
	defer body.Close()

	var m pkgio.Manifest
	if err := pkgio.Decode(body, format, &m); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, errs.New(errs.ErrCodeInvalidInput, "request body exceeds %d bytes", maxErr.Limit))
			return
		}
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := m.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	if len(m.Items) > s.settings.MaxItems {
		writeError(w, http.StatusRequestEntityTooLarge, errs.New(errs.ErrCodeInvalidInput, "manifest has %d items, limit is %d", len(m.Items), s.settings.MaxItems))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.settings.OrderTimeout)
	defer cancel()
	result, err := s.runner.Order(ctx, &m)
	if errors.Is(err, context.DeadlineExceeded) {
		writeError(w, http.StatusServiceUnavailable, errs.Wrap(errs.ErrCodeTimeout, err, "ordering exceeded %s", s.settings.OrderTimeout))
		return
	}
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	if result.HasCycles() {
		writeJSON(w, http.StatusConflict, cyclesResponse{
			RunID:  result.RunID,
			Error:  fmt.Sprintf("%d reference cycle(s)", len(result.Cycles)),
			Cycles: result.CyclePaths(),
		})
		return
	}
	writeJSON(w, http.StatusOK, orderResponse{RunID: result.RunID, Order: result.Order})
}

func requestFormat(r *http.Request) (pkgio.Format, error) {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return pkgio.FormatJSON, nil
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return "", errs.Wrap(errs.ErrCodeInvalidFormat, err, "content type")
	}
	switch mt {
	case "application/json":
		return pkgio.FormatJSON, nil
	case "application/yaml", "application/x-yaml", "text/yaml":
		return pkgio.FormatYAML, nil
	case "application/toml":
		return pkgio.FormatTOML, nil
	}
	return "", errs.New(errs.ErrCodeInvalidFormat, "unsupported content type %q", mt)
}

func statusFor(err error) int {
	switch errs.GetCode(err) {
	case errs.ErrCodeUnknownReference, errs.ErrCodeDuplicateName, errs.ErrCodeInvalidManifest, errs.ErrCodeInvalidInput:
		return http.StatusUnprocessableEntity
	case errs.ErrCodeCycleDetected:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, status int, err error) {
	resp := errorResponse{Error: err.Error(), Code: errs.GetCode(err)}
	if status == http.StatusInternalServerError {
		resp.Error = "internal error"
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// logRequests logs each request and reports it to the HTTP hooks.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hooks := observability.HTTP()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			took := time.Since(start)
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			hooks.OnResponse(r.Context(), r.Method, r.URL.Path, status, took)
			s.logger.Info("request",
				"id", middleware.GetReqID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"bytes", ww.BytesWritten(),
				"took", took)
		}()
		next.ServeHTTP(ww, r)
	})
}
