package qr

import (
	"strings"

	"github.com/yeqown/go-qrcode/v2"
)

// ErrorCorrection is one of the four standard QR error-correction levels.
type ErrorCorrection string

const (
	LevelLow      ErrorCorrection = "L" // ~7% recovery
	LevelMedium   ErrorCorrection = "M" // ~15% recovery
	LevelQuartile ErrorCorrection = "Q" // ~25% recovery
	LevelHigh     ErrorCorrection = "H" // ~30% recovery
)

// Valid reports whether l is one of the standard levels.
func (l ErrorCorrection) Valid() bool {
	switch l {
	case LevelLow, LevelMedium, LevelQuartile, LevelHigh:
		return true
	}
	return false
}

// ParseErrorCorrection resolves a user supplied level. Anything that is
// not a standard level silently resolves to fallback, and an invalid
// fallback resolves to LevelMedium.
func ParseErrorCorrection(s string, fallback ErrorCorrection) ErrorCorrection {
	l := ErrorCorrection(strings.ToUpper(strings.TrimSpace(s)))
	if l.Valid() {
		return l
	}
	if fallback.Valid() {
		return fallback
	}
	return LevelMedium
}

func (l ErrorCorrection) encodeOption() qrcode.EncodeOption {
	switch l {
	case LevelLow:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionLow)
	case LevelQuartile:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionQuart)
	case LevelHigh:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionHighest)
	default:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionMedium)
	}
}
