package qr

import (
	"bytes"
	"context"
	"fmt"
	"image/color"

	"github.com/yeqown/go-qrcode/v2"
	"github.com/yeqown/go-qrcode/writer/standard"
)

// RenderParams describes how a payload is drawn.
type RenderParams struct {
	ErrorCorrection ErrorCorrection
	// ModuleSize is the edge length of one module in pixels.
	ModuleSize int
	// Margin is the quiet zone width in modules.
	Margin     int
	Foreground color.Color
	Background color.Color
}

// Encoder turns a payload into an image.
type Encoder interface {
	Encode(ctx context.Context, data string, p RenderParams) ([]byte, error)
}

// PNGEncoder renders symbols as PNG using go-qrcode. The smallest symbol
// version that fits the payload at the requested level is chosen.
type PNGEncoder struct{}

// NewPNGEncoder creates a new PNGEncoder.
func NewPNGEncoder() *PNGEncoder {
	return &PNGEncoder{}
}

// Encode renders data into PNG bytes.
func (e *PNGEncoder) Encode(ctx context.Context, data string, p RenderParams) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	size := ClampSize(p.ModuleSize)
	margin := ClampMargin(p.Margin)
	fg, bg := p.Foreground, p.Background
	if fg == nil {
		fg = color.Black
	}
	if bg == nil {
		bg = color.White
	}

	qrc, err := qrcode.NewWith(data, p.ErrorCorrection.encodeOption())
	if err != nil {
		return nil, fmt.Errorf("qr: encode payload: %w", err)
	}

	buf := &pngBuffer{}
	w := standard.NewWithWriter(buf,
		standard.WithBuiltinImageEncoder(standard.PNG_FORMAT),
		standard.WithQRWidth(uint8(size)),
		standard.WithBorderWidth(margin*size),
		standard.WithFgColor(fg),
		standard.WithBgColor(bg),
	)
	if err := qrc.Save(w); err != nil {
		return nil, fmt.Errorf("qr: render png: %w", err)
	}

	return buf.Bytes(), nil
}

// pngBuffer adapts bytes.Buffer to the io.WriteCloser the standard
// writer expects.
type pngBuffer struct {
	bytes.Buffer
}

func (b *pngBuffer) Close() error { return nil }
