package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/qrforge/qrforge-go/internal/qr"
)

type Config struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	Env             string        `env:"ENV" envDefault:"development"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	MaxBodyBytes    int64         `env:"MAX_BODY_BYTES" envDefault:"1048576"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	QR QRConfig
}

// QRConfig holds the generation defaults applied to every request.
type QRConfig struct {
	ErrorCorrection  string `env:"QR_DEFAULT_EC" envDefault:"M"`
	Size             int    `env:"QR_DEFAULT_SIZE" envDefault:"10"`
	Margin           int    `env:"QR_DEFAULT_MARGIN" envDefault:"4"`
	Foreground       string `env:"QR_DEFAULT_FG" envDefault:"#000000"`
	Background       string `env:"QR_DEFAULT_BG" envDefault:"#ffffff"`
	DownloadFilename string `env:"QR_DOWNLOAD_FILENAME" envDefault:"qrforge.png"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if !qr.ErrorCorrection(strings.ToUpper(c.QR.ErrorCorrection)).Valid() {
		return fmt.Errorf("QR_DEFAULT_EC must be one of L, M, Q, H, got %q", c.QR.ErrorCorrection)
	}
	if _, err := qr.ParseHexColor(c.QR.Foreground); err != nil {
		return fmt.Errorf("QR_DEFAULT_FG: %w", err)
	}
	if _, err := qr.ParseHexColor(c.QR.Background); err != nil {
		return fmt.Errorf("QR_DEFAULT_BG: %w", err)
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("MAX_BODY_BYTES must be positive, got %d", c.MaxBodyBytes)
	}
	return nil
}

// IsProduction reports whether the service runs in production.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// QROptions converts the QR defaults into generation options. Size and
// margin defaults are clamped into their valid ranges.
func (c Config) QROptions() qr.Options {
	return qr.Options{
		ErrorCorrection: qr.ParseErrorCorrection(c.QR.ErrorCorrection, qr.LevelMedium),
		Size:            qr.ClampSize(c.QR.Size),
		Margin:          qr.ClampMargin(c.QR.Margin),
		Foreground:      c.QR.Foreground,
		Background:      c.QR.Background,
	}
}

// SlogLevel maps LOG_LEVEL onto a slog.Level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}
