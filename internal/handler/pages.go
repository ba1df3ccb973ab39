package handler

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/qrforge/qrforge-go/internal/qr"
)

//go:embed templates/*.html
var templateFS embed.FS

// PagesHandler serves the HTML front end.
type PagesHandler struct {
	tmpl     *template.Template
	defaults qr.Options
	log      *slog.Logger
}

type pageData struct {
	Title     string
	Defaults  qr.Options
	Levels    []qr.ErrorCorrection
	MinSize   int
	MaxSize   int
	MaxMargin int
}

// NewPagesHandler parses the embedded templates.
func NewPagesHandler(defaults qr.Options, log *slog.Logger) (*PagesHandler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}
	return &PagesHandler{tmpl: tmpl, defaults: defaults, log: log}, nil
}

// HandleIndex handles GET / requests.
func (h *PagesHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "index.html", "QRForge")
}

// HandleGenerator handles GET /generator requests.
func (h *PagesHandler) HandleGenerator(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "generator.html", "QRForge · Generator")
}

func (h *PagesHandler) render(w http.ResponseWriter, r *http.Request, name, title string) {
	data := pageData{
		Title:     title,
		Defaults:  h.defaults,
		Levels:    []qr.ErrorCorrection{qr.LevelLow, qr.LevelMedium, qr.LevelQuartile, qr.LevelHigh},
		MinSize:   qr.MinSize,
		MaxSize:   qr.MaxSize,
		MaxMargin: qr.MaxMargin,
	}

	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		h.log.ErrorContext(r.Context(), "render page", "template", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
