// Package config carries the resolved render settings from the CLI
// into the engine.
package config

// Config is one render run: input window, match data, output target
// and encoder settings.
type Config struct {
	InputPath string
	MatchPath string
	Output    string

	// Optional render window in seconds. End 0 means the full video.
	Start float64
	End   float64

	ShowScoreboard    bool
	ShowNotifications bool
	ShowLineups       bool

	// QR badge for a highlights page, empty disables it.
	QRContent string

	XMargin int
	YMargin int

	Workers      int
	VideoEncoder string
	Quality      int
	ShowStats    bool
	BuildVersion string
}

// RenderParams is the frame geometry the engine settles on after
// probing the input.
type RenderParams struct {
	Width    int
	Height   int
	FPS      int
	Duration float64
	Start    float64
	End      float64
}
