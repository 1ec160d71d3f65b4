package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"

	"github.com/kdduha/explain-camera/backend/internal/apperr"
	"github.com/kdduha/explain-camera/backend/internal/metrics"
	"github.com/kdduha/explain-camera/backend/internal/middleware"
	"github.com/kdduha/explain-camera/backend/internal/models"
)

const (
	ServiceName    = "Explain This Camera API"
	ServiceVersion = "1.0.0"
)

type analyzeService interface {
	Analyze(ctx context.Context, req *models.AnalyzeRequest) (*models.AnalyzeResponse, error)
}

type AnalyzeHandler struct {
	service      analyzeService
	logger       zerolog.Logger
	maxBodyBytes int64
}

func NewAnalyzeHandler(service analyzeService, logger zerolog.Logger, maxBodyBytes int64) *AnalyzeHandler {
	return &AnalyzeHandler{
		service:      service,
		logger:       logger.With().Str("component", "analyze-handler").Logger(),
		maxBodyBytes: maxBodyBytes,
	}
}

// Root godoc
// @Summary Service metadata
// @Tags meta
// @Produce json
// @Success 200 {object} models.ServiceInfo
// @Router / [get]
func (h *AnalyzeHandler) Root(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, models.ServiceInfo{
		Service: ServiceName,
		Status:  "running",
		Version: ServiceVersion,
		Endpoints: map[string]string{
			"/analyze": "POST - Analyze image with adaptive explanation",
			"/modes":   "GET - List available explanation modes",
		},
	})
}

// Modes godoc
// @Summary List explanation modes
// @Tags meta
// @Produce json
// @Success 200 {object} models.ModesResponse
// @Router /modes [get]
func (h *AnalyzeHandler) Modes(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, models.ModesResponse{Modes: models.ModeInfos()})
}

// Analyze godoc
// @Summary Explain a photo
// @Description Explain what is on a photo for the selected audience. Image is sent as base64 string in JSON, optionally with a data URI prefix.
// @Tags analyze
// @Accept json
// @Produce json
// @Param request body models.AnalyzeRequest true "Analyze request"
// @Success 200 {object} models.AnalyzeResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /analyze [post]
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeError(w, r, apperr.BadRequest(fmt.Sprintf("request body too large (max %d bytes)", tooLarge.Limit), nil), "")
			return
		}
		h.writeError(w, r, apperr.BadRequest("failed to read request body", err), "")
		return
	}

	var req models.AnalyzeRequest
	if err := sonic.Unmarshal(raw, &req); err != nil {
		h.writeError(w, r, apperr.BadRequest("invalid JSON", err), "")
		return
	}

	if err := req.Validate(); err != nil {
		h.writeError(w, r, apperr.BadRequest("request validation failed", err), string(req.Mode))
		return
	}

	resp, err := h.service.Analyze(r.Context(), &req)
	if err != nil {
		h.writeError(w, r, err, string(req.Mode))
		return
	}

	metrics.AnalyzeTotal(string(req.Mode), "success")
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *AnalyzeHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// writeError is the single place where failures become HTTP statuses.
func (h *AnalyzeHandler) writeError(w http.ResponseWriter, r *http.Request, err error, mode string) {
	status := apperr.Status(err)
	kind := apperr.KindOf(err)

	event := h.logger.Warn()
	if status >= http.StatusInternalServerError {
		event = h.logger.Error()
	}
	event.Err(err).
		Str("request_id", middleware.RequestIDFromContext(r.Context())).
		Str("kind", kind.String()).
		Int("status", status).
		Msg("analyze failed")

	if !models.Mode(mode).Valid() {
		mode = "unknown"
	}
	metrics.AnalyzeTotal(mode, kind.String())

	h.writeJSON(w, status, models.ErrorResponse{Detail: err.Error()})
}

func (h *AnalyzeHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := sonic.Marshal(v)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to encode response")
		http.Error(w, fmt.Sprintf("failed to encode: %s", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
