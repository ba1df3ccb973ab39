package qr

import "testing"

func TestClampSize(t *testing.T) {
	tests := map[int]int{-3: 1, 0: 1, 1: 1, 10: 10, 20: 20, 21: 20, 999: 20}
	for in, want := range tests {
		if got := ClampSize(in); got != want {
			t.Errorf("ClampSize(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestClampMargin(t *testing.T) {
	tests := map[int]int{-5: 0, 0: 0, 4: 4, 10: 10, 11: 10, 1000: 10}
	for in, want := range tests {
		if got := ClampMargin(in); got != want {
			t.Errorf("ClampMargin(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestParseErrorCorrection(t *testing.T) {
	tests := []struct {
		in       string
		fallback ErrorCorrection
		want     ErrorCorrection
	}{
		{"L", LevelMedium, LevelLow},
		{"Q", LevelMedium, LevelQuartile},
		{"h", LevelMedium, LevelHigh},
		{"X", LevelMedium, LevelMedium},
		{"", LevelHigh, LevelHigh},
		{"X", "bogus", LevelMedium},
	}

	for _, tt := range tests {
		if got := ParseErrorCorrection(tt.in, tt.fallback); got != tt.want {
			t.Errorf("ParseErrorCorrection(%q, %q) = %q, want %q", tt.in, tt.fallback, got, tt.want)
		}
	}
}

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	if o.ErrorCorrection != LevelMedium || o.Size != 10 || o.Margin != 4 {
		t.Errorf("unexpected defaults %+v", o)
	}
	if o.Foreground != "#000000" || o.Background != "#ffffff" {
		t.Errorf("unexpected default colors %+v", o)
	}
}
