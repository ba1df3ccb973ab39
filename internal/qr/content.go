package qr

import "strings"

// Mode identifies the kind of payload encoded into a QR symbol.
type Mode string

const (
	ModeURL   Mode = "url"
	ModeText  Mode = "text"
	ModeWiFi  Mode = "wifi"
	ModeVCard Mode = "vcard"
)

// DefaultWiFiEncryption is used when a Wi-Fi payload names no encryption.
const DefaultWiFiEncryption = "WPA"

// Content is a typed QR payload. Each mode has its own implementation
// carrying only the fields that mode understands.
type Content interface {
	Mode() Mode
	// DataString validates the content and returns the text encoded
	// into the symbol.
	DataString() (string, error)
}

// URL is a link payload.
type URL struct {
	URL string
}

func (URL) Mode() Mode { return ModeURL }

func (c URL) DataString() (string, error) {
	u := strings.TrimSpace(c.URL)
	if u == "" {
		return "", ErrURLRequired
	}
	return u, nil
}

// Text is a free-form text payload.
type Text struct {
	Text string
}

func (Text) Mode() Mode { return ModeText }

func (c Text) DataString() (string, error) {
	t := strings.TrimSpace(c.Text)
	if t == "" {
		return "", ErrTextRequired
	}
	return t, nil
}

// WiFi is a network join payload in the WIFI: URI scheme understood by
// mobile camera apps.
type WiFi struct {
	SSID       string
	Password   string
	Encryption string
}

func (WiFi) Mode() Mode { return ModeWiFi }

func (c WiFi) DataString() (string, error) {
	ssid := strings.TrimSpace(c.SSID)
	if ssid == "" {
		return "", ErrSSIDRequired
	}
	enc := strings.TrimSpace(c.Encryption)
	if enc == "" {
		enc = DefaultWiFiEncryption
	}

	var b strings.Builder
	b.WriteString("WIFI:T:")
	b.WriteString(enc)
	b.WriteString(";S:")
	b.WriteString(wifiEscaper.Replace(ssid))
	b.WriteString(";P:")
	b.WriteString(wifiEscaper.Replace(c.Password))
	b.WriteString(";;")
	return b.String(), nil
}

// VCard is a contact card payload rendered as vCard 3.0.
type VCard struct {
	First string
	Last  string
	Phone string
	Email string
	URL   string
}

func (VCard) Mode() Mode { return ModeVCard }

func (c VCard) DataString() (string, error) {
	first := strings.TrimSpace(c.First)
	last := strings.TrimSpace(c.Last)
	if first == "" && last == "" {
		return "", ErrNameRequired
	}

	fullName := strings.TrimSpace(first + " " + last)
	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"FN:" + vcardEscaper.Replace(fullName),
		"N:" + vcardEscaper.Replace(last) + ";" + vcardEscaper.Replace(first),
		"TEL:" + singleLine(c.Phone),
		"EMAIL:" + singleLine(c.Email),
		"URL:" + singleLine(c.URL),
		"END:VCARD",
	}
	return strings.Join(lines, "\n"), nil
}

var (
	// Reserved characters of the WIFI: scheme.
	wifiEscaper = strings.NewReplacer(
		`\`, `\\`,
		`;`, `\;`,
		`,`, `\,`,
		`:`, `\:`,
		`"`, `\"`,
	)

	// RFC 2426 text value escaping.
	vcardEscaper = strings.NewReplacer(
		`\`, `\\`,
		`;`, `\;`,
		`,`, `\,`,
		"\r\n", `\n`,
		"\n", `\n`,
		"\r", `\n`,
	)

	lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")
)

// singleLine keeps uri-typed vCard values on one property line.
func singleLine(s string) string {
	return lineBreaks.Replace(strings.TrimSpace(s))
}

// ParseContent turns a mode tag and its loosely typed field mapping into
// a Content value. Unknown keys are ignored; missing keys read as empty.
func ParseContent(mode string, fields map[string]string) (Content, error) {
	switch Mode(mode) {
	case ModeURL:
		return URL{URL: fields["url"]}, nil
	case ModeText:
		return Text{Text: fields["text"]}, nil
	case ModeWiFi:
		return WiFi{
			SSID:       fields["ssid"],
			Password:   fields["password"],
			Encryption: fields["encryption"],
		}, nil
	case ModeVCard:
		return VCard{
			First: fields["first"],
			Last:  fields["last"],
			Phone: fields["phone"],
			Email: fields["email"],
			URL:   fields["url"],
		}, nil
	default:
		return nil, &UnknownModeError{Mode: mode}
	}
}

// BuildDataString builds the symbol payload for mode from fields.
func BuildDataString(mode string, fields map[string]string) (string, error) {
	c, err := ParseContent(mode, fields)
	if err != nil {
		return "", err
	}
	return c.DataString()
}
