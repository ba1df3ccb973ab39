package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/qrforge/qrforge-go/internal/middleware"
	"github.com/qrforge/qrforge-go/internal/model"
	"github.com/qrforge/qrforge-go/internal/qr"
	"github.com/qrforge/qrforge-go/internal/service"
)

const (
	msgGenerateFailed = "Server error during QR generation."
	msgDownloadFailed = "Server error."

	defaultMaxBodyBytes     = 1 << 20 // 1MB
	defaultDownloadFilename = "qrforge.png"
)

// GeneratorOptions configures a GeneratorHandler.
type GeneratorOptions struct {
	MaxBodyBytes     int64
	DownloadFilename string
	Logger           *slog.Logger
}

// GeneratorHandler handles HTTP requests for QR code generation.
type GeneratorHandler struct {
	service  *service.GeneratorService
	maxBody  int64
	filename string
	log      *slog.Logger
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService, opts GeneratorOptions) *GeneratorHandler {
	h := &GeneratorHandler{
		service:  svc,
		maxBody:  opts.MaxBodyBytes,
		filename: opts.DownloadFilename,
		log:      opts.Logger,
	}
	if h.maxBody <= 0 {
		h.maxBody = defaultMaxBodyBytes
	}
	if h.filename == "" {
		h.filename = defaultDownloadFilename
	}
	if h.log == nil {
		h.log = slog.Default()
	}
	return h
}

// HandleGenerate handles POST /api/generate requests.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Preview(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err, msgGenerateFailed)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDownload handles POST /api/download requests.
func (h *GeneratorHandler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	g, err := h.service.Generate(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err, msgDownloadFailed)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(g.PNG)))
	w.WriteHeader(http.StatusOK)
	w.Write(g.PNG)
}

func (h *GeneratorHandler) decode(w http.ResponseWriter, r *http.Request) (model.GenerateRequest, bool) {
	var req model.GenerateRequest
	if r.Body == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return req, false
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBody)
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return req, false
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return req, false
	}
	return req, true
}

// writeError maps a service error onto the two-tier API error shape.
// Validation messages pass through; anything else is logged and hidden.
func (h *GeneratorHandler) writeError(w http.ResponseWriter, r *http.Request, err error, opaque string) {
	if qr.IsValidationError(err) {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	id, _ := middleware.RequestIDFromContext(r.Context())
	h.log.ErrorContext(r.Context(), "qr generation error",
		"path", r.URL.Path,
		"request_id", id,
		"error", err,
	)
	writeJSON(w, http.StatusInternalServerError, errorResponse(opaque))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) model.ErrorResponse {
	return model.ErrorResponse{Success: false, Error: msg}
}
