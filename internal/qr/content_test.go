package qr

import (
	"errors"
	"strings"
	"testing"
)

func TestBuildDataString_URL(t *testing.T) {
	got, err := BuildDataString("url", map[string]string{"url": "  https://example.com  "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "https://example.com" {
		t.Errorf("expected trimmed url, got %q", got)
	}
}

func TestBuildDataString_TextKeepsInnerWhitespace(t *testing.T) {
	got, err := BuildDataString("text", map[string]string{"text": "\thello\n  world "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hello\n  world" {
		t.Errorf("expected %q, got %q", "hello\n  world", got)
	}
}

func TestBuildDataString_RequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mode   string
		fields map[string]string
		want   error
	}{
		{"url missing", "url", nil, ErrURLRequired},
		{"url blank", "url", map[string]string{"url": "   "}, ErrURLRequired},
		{"text blank", "text", map[string]string{"text": "\n\t"}, ErrTextRequired},
		{"wifi no ssid", "wifi", map[string]string{"password": "secret"}, ErrSSIDRequired},
		{"wifi blank ssid", "wifi", map[string]string{"ssid": "  "}, ErrSSIDRequired},
		{"vcard no name", "vcard", map[string]string{"phone": "123"}, ErrNameRequired},
		{"vcard blank names", "vcard", map[string]string{"first": " ", "last": " "}, ErrNameRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildDataString(tt.mode, tt.fields)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if !IsValidationError(err) {
				t.Errorf("expected a validation error, got %T", err)
			}
		})
	}
}

func TestBuildDataString_WiFi(t *testing.T) {
	got, err := BuildDataString("wifi", map[string]string{
		"ssid":       "Home",
		"password":   "secret",
		"encryption": "WPA",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "WIFI:T:WPA;S:Home;P:secret;;" {
		t.Errorf("unexpected wifi payload %q", got)
	}
}

func TestBuildDataString_WiFiDefaults(t *testing.T) {
	got, err := BuildDataString("wifi", map[string]string{"ssid": " Cafe "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "WIFI:T:WPA;S:Cafe;P:;;" {
		t.Errorf("unexpected wifi payload %q", got)
	}
}

func TestBuildDataString_WiFiEscapesReservedCharacters(t *testing.T) {
	got, err := BuildDataString("wifi", map[string]string{
		"ssid":     `My;Net,"5G"`,
		"password": `a:b\c `,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `WIFI:T:WPA;S:My\;Net\,\"5G\";P:a\:b\\c ;;`
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestBuildDataString_VCard(t *testing.T) {
	got, err := BuildDataString("vcard", map[string]string{"first": "Jane", "last": "Doe"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := strings.Join([]string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"FN:Jane Doe",
		"N:Doe;Jane",
		"TEL:",
		"EMAIL:",
		"URL:",
		"END:VCARD",
	}, "\n")
	if got != want {
		t.Errorf("unexpected vcard:\n%s\nwant:\n%s", got, want)
	}
}

func TestBuildDataString_VCardSingleName(t *testing.T) {
	got, err := BuildDataString("vcard", map[string]string{"last": "Doe", "phone": " +1 555 0100 "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, line := range []string{"FN:Doe\n", "N:Doe;\n", "TEL:+1 555 0100\n"} {
		if !strings.Contains(got, line) {
			t.Errorf("expected %q in vcard %q", line, got)
		}
	}
}

func TestBuildDataString_VCardEscaping(t *testing.T) {
	got, err := BuildDataString("vcard", map[string]string{
		"first": "Ann;Marie",
		"last":  "Smith, Jr.",
		"email": "ann@example.com\nEND:VCARD",
		"url":   "https://example.com/a;b",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, line := range []string{
		`FN:Ann\;Marie Smith\, Jr.`,
		`N:Smith\, Jr.;Ann\;Marie`,
		"EMAIL:ann@example.com END:VCARD\n",
		"URL:https://example.com/a;b\n",
	} {
		if !strings.Contains(got, line) {
			t.Errorf("expected %q in vcard %q", line, got)
		}
	}
	if strings.Count(got, "END:VCARD") != 2 || !strings.HasSuffix(got, "\nEND:VCARD") {
		t.Errorf("expected a single terminating END:VCARD line, got %q", got)
	}
}

func TestBuildDataString_UnknownMode(t *testing.T) {
	_, err := BuildDataString("sms", map[string]string{"text": "hi"})
	var merr *UnknownModeError
	if !errors.As(err, &merr) {
		t.Fatalf("expected UnknownModeError, got %v", err)
	}
	if err.Error() != "Unknown mode: sms" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !IsValidationError(err) {
		t.Error("expected unknown mode to be a validation error")
	}
}

func TestParseContent_Modes(t *testing.T) {
	for _, mode := range []Mode{ModeURL, ModeText, ModeWiFi, ModeVCard} {
		c, err := ParseContent(string(mode), nil)
		if err != nil {
			t.Fatalf("ParseContent(%q) unexpected error: %v", mode, err)
		}
		if c.Mode() != mode {
			t.Errorf("ParseContent(%q).Mode() = %q", mode, c.Mode())
		}
	}
}
