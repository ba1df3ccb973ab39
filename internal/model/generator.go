package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// GenerateRequest represents a QR code generation request. It is shared
// by the preview and download endpoints.
type GenerateRequest struct {
	Mode            string            `json:"mode"`
	ErrorCorrection string            `json:"errorCorrection"`
	Size            IntParam          `json:"size"`
	Margin          IntParam          `json:"margin"`
	FgColor         string            `json:"fgColor"`
	BgColor         string            `json:"bgColor"`
	Data            map[string]string `json:"data"`
}

// GenerateResponse represents a successful preview response.
type GenerateResponse struct {
	Success         bool   `json:"success"`
	Image           string `json:"image"`
	DataString      string `json:"dataString"`
	CharCount       int    `json:"charCount"`
	ErrorCorrection string `json:"errorCorrection"`
}

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// IntParam holds an integer parameter exactly as the client sent it.
// Browsers post both numbers and numeric strings, so parsing is deferred
// until the value is used.
type IntParam struct {
	raw json.RawMessage
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *IntParam) UnmarshalJSON(b []byte) error {
	p.raw = append(p.raw[:0], b...)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (p IntParam) MarshalJSON() ([]byte, error) {
	if p.IsZero() {
		return []byte("null"), nil
	}
	return p.raw, nil
}

// IsZero reports whether the parameter was absent or null.
func (p IntParam) IsZero() bool {
	return len(p.raw) == 0 || bytes.Equal(p.raw, []byte("null"))
}

// Int returns the parameter as an int, or fallback when it is absent.
// ok is false when a value was sent but is not an integer. Fractional
// numbers are truncated; numeric strings must hold a whole number.
func (p IntParam) Int(fallback int) (n int, ok bool) {
	if p.IsZero() {
		return fallback, true
	}

	var s string
	if err := json.Unmarshal(p.raw, &s); err == nil {
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, false
		}
		return v, true
	}

	var f float64
	if err := json.Unmarshal(p.raw, &f); err != nil {
		return 0, false
	}
	f = math.Trunc(f)
	switch {
	case f > math.MaxInt32:
		return math.MaxInt32, true
	case f < math.MinInt32:
		return math.MinInt32, true
	}
	return int(f), true
}

// NewIntParam builds an IntParam holding n.
func NewIntParam(n int) IntParam {
	return IntParam{raw: json.RawMessage(strconv.Itoa(n))}
}
