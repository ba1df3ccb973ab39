package qr

// Module scale and quiet zone bounds, in modules.
const (
	MinSize   = 1
	MaxSize   = 20
	MinMargin = 0
	MaxMargin = 10
)

// Options holds the generation defaults applied when a request leaves a
// parameter unset.
type Options struct {
	ErrorCorrection ErrorCorrection
	Size            int
	Margin          int
	Foreground      string
	Background      string
}

// DefaultOptions returns the stock defaults: level M, 10px modules, a
// 4 module quiet zone, black on white.
func DefaultOptions() Options {
	return Options{
		ErrorCorrection: LevelMedium,
		Size:            10,
		Margin:          4,
		Foreground:      "#000000",
		Background:      "#ffffff",
	}
}

// ClampSize bounds a module scale to [MinSize, MaxSize].
func ClampSize(n int) int {
	return clamp(n, MinSize, MaxSize)
}

// ClampMargin bounds a quiet zone width to [MinMargin, MaxMargin].
func ClampMargin(n int) int {
	return clamp(n, MinMargin, MaxMargin)
}

func clamp(n, lo, hi int) int {
	return max(lo, min(hi, n))
}
