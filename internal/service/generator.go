package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/qrforge/qrforge-go/internal/model"
	"github.com/qrforge/qrforge-go/internal/qr"
)

// ErrGeneration wraps every failure that is not caused by user input.
var ErrGeneration = errors.New("qr generation failed")

const pngDataURIPrefix = "data:image/png;base64,"

// Generation is the outcome of a successful generation.
type Generation struct {
	PNG             []byte
	DataString      string
	CharCount       int
	ErrorCorrection qr.ErrorCorrection
}

// GeneratorService handles QR code generation business logic.
type GeneratorService struct {
	encoder  qr.Encoder
	defaults qr.Options
}

// NewGeneratorService creates a new GeneratorService. A zero level, size
// or color in defaults is replaced by the qr.DefaultOptions value; a zero
// margin is kept.
func NewGeneratorService(enc qr.Encoder, defaults qr.Options) *GeneratorService {
	return &GeneratorService{
		encoder:  enc,
		defaults: withFallbacks(defaults),
	}
}

// Generate validates req, builds its payload and renders it as PNG.
// Errors satisfying qr.IsValidationError are caused by the request;
// everything else wraps ErrGeneration.
func (s *GeneratorService) Generate(ctx context.Context, req model.GenerateRequest) (Generation, error) {
	size, ok := req.Size.Int(s.defaults.Size)
	if !ok {
		return Generation{}, qr.ErrSizeNotInteger
	}
	margin, ok := req.Margin.Int(s.defaults.Margin)
	if !ok {
		return Generation{}, qr.ErrMarginNotInteger
	}
	level := qr.ParseErrorCorrection(req.ErrorCorrection, s.defaults.ErrorCorrection)

	mode := req.Mode
	if mode == "" {
		mode = string(qr.ModeURL)
	}
	data, err := qr.BuildDataString(mode, req.Data)
	if err != nil {
		return Generation{}, err
	}

	fg, err := qr.ParseHexColor(stringOrDefault(req.FgColor, s.defaults.Foreground))
	if err != nil {
		return Generation{}, fmt.Errorf("%w: foreground: %w", ErrGeneration, err)
	}
	bg, err := qr.ParseHexColor(stringOrDefault(req.BgColor, s.defaults.Background))
	if err != nil {
		return Generation{}, fmt.Errorf("%w: background: %w", ErrGeneration, err)
	}

	png, err := s.encoder.Encode(ctx, data, qr.RenderParams{
		ErrorCorrection: level,
		ModuleSize:      qr.ClampSize(size),
		Margin:          qr.ClampMargin(margin),
		Foreground:      fg.Color(),
		Background:      bg.Color(),
	})
	if err != nil {
		return Generation{}, fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	return Generation{
		PNG:             png,
		DataString:      data,
		CharCount:       utf8.RuneCountInString(data),
		ErrorCorrection: level,
	}, nil
}

// Preview generates a code and packages it for inline display.
func (s *GeneratorService) Preview(ctx context.Context, req model.GenerateRequest) (model.GenerateResponse, error) {
	g, err := s.Generate(ctx, req)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Success:         true,
		Image:           pngDataURIPrefix + base64.StdEncoding.EncodeToString(g.PNG),
		DataString:      g.DataString,
		CharCount:       g.CharCount,
		ErrorCorrection: string(g.ErrorCorrection),
	}, nil
}

func withFallbacks(o qr.Options) qr.Options {
	d := qr.DefaultOptions()
	if !o.ErrorCorrection.Valid() {
		o.ErrorCorrection = d.ErrorCorrection
	}
	if o.Size == 0 {
		o.Size = d.Size
	}
	if o.Foreground == "" {
		o.Foreground = d.Foreground
	}
	if o.Background == "" {
		o.Background = d.Background
	}
	return o
}

// stringOrDefault returns s, or the fallback if s is empty.
func stringOrDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
