// Package overlay builds the timed graphic layers that get composited
// over match footage: the persistent scoreboard, goal and custom
// notifications, team lineup boards and the optional QR badge. Layers
// carry their own animation functions and render themselves onto a
// frame canvas.
package overlay

import "image/color"

// Resolution buckets drive responsive sizing. The bucket follows the
// source video width, not the overlay size.
type Resolution string

const (
	ResLow    Resolution = "low"    // width <= 720
	ResMedium Resolution = "medium" // width <= 1280
	ResHigh   Resolution = "high"
)

const (
	lowResThreshold    = 720
	mediumResThreshold = 1280
)

// ResolutionFor picks the bucket for a video width.
func ResolutionFor(width int) Resolution {
	switch {
	case width <= lowResThreshold:
		return ResLow
	case width <= mediumResThreshold:
		return ResMedium
	default:
		return ResHigh
	}
}

// Dimensions are the scoreboard box sizes for one resolution bucket.
type Dimensions struct {
	ScoreboardHeight int
	TeamBoxWidth     int
	ScoreBoxWidth    int
	AccentWidth      int
	TextMargin       int
	TeamFontSize     float64
	ScoreFontSize    float64
}

var dimensions = map[Resolution]Dimensions{
	ResLow:    {ScoreboardHeight: 36, TeamBoxWidth: 100, ScoreBoxWidth: 80, AccentWidth: 4, TextMargin: 10, TeamFontSize: 16, ScoreFontSize: 24},
	ResMedium: {ScoreboardHeight: 46, TeamBoxWidth: 120, ScoreBoxWidth: 100, AccentWidth: 5, TextMargin: 20, TeamFontSize: 20, ScoreFontSize: 30},
	ResHigh:   {ScoreboardHeight: 58, TeamBoxWidth: 160, ScoreBoxWidth: 140, AccentWidth: 6, TextMargin: 20, TeamFontSize: 28, ScoreFontSize: 40},
}

// DimensionsFor returns the scoreboard sizing for a bucket.
func DimensionsFor(res Resolution) Dimensions {
	return dimensions[res]
}

// LineupDimensions are the lineup board sizes for one bucket.
type LineupDimensions struct {
	TeamFontSize     float64
	PlayerFontSize   float64
	DirectorFontSize float64
	Width            int
	NumberBoxWidth   int
}

var lineupDimensions = map[Resolution]LineupDimensions{
	ResLow:    {TeamFontSize: 24, PlayerFontSize: 18, DirectorFontSize: 20, Width: 350, NumberBoxWidth: 40},
	ResMedium: {TeamFontSize: 30, PlayerFontSize: 22, DirectorFontSize: 26, Width: 400, NumberBoxWidth: 50},
	ResHigh:   {TeamFontSize: 38, PlayerFontSize: 28, DirectorFontSize: 32, Width: 500, NumberBoxWidth: 60},
}

// LineupDimensionsFor returns the lineup sizing for a bucket.
func LineupDimensionsFor(res Resolution) LineupDimensions {
	return lineupDimensions[res]
}

// Style holds every color and timing default an overlay render uses.
// Zero values are never meaningful, always start from DefaultStyle.
type Style struct {
	XMargin int
	YMargin int

	TeamBoxColor   color.RGBA
	ScoreBoxColor  color.RGBA
	TeamTextColor  color.RGBA
	ScoreTextColor color.RGBA

	NotificationBackground        color.RGBA
	NotificationTextColor         color.RGBA
	NotificationDisplayDuration   float64
	NotificationAnimationDuration float64

	LineupNameBoxColor      color.RGBA
	LineupNumberBoxColor    color.RGBA
	LineupTeamTextColor     color.RGBA
	LineupPlayerTextColor   color.RGBA
	LineupDirectorTextColor color.RGBA
	LineupDisplayDuration   float64
	LineupAnimationDuration float64
	LineupStaggerDelay      float64
}

// DefaultStyle is the broadcast look: dark purple team boxes, a teal
// score box, gold notifications.
func DefaultStyle() Style {
	purple := color.RGBA{R: 40, G: 0, B: 70, A: 255}
	teal := color.RGBA{R: 56, G: 226, B: 196, A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black := color.RGBA{A: 255}

	return Style{
		XMargin: 10,
		YMargin: 10,

		TeamBoxColor:   purple,
		ScoreBoxColor:  teal,
		TeamTextColor:  white,
		ScoreTextColor: black,

		NotificationBackground:        color.RGBA{R: 255, G: 215, A: 255},
		NotificationTextColor:         white,
		NotificationDisplayDuration:   3.0,
		NotificationAnimationDuration: 3.0,

		LineupNameBoxColor:      teal,
		LineupNumberBoxColor:    purple,
		LineupTeamTextColor:     white,
		LineupPlayerTextColor:   white,
		LineupDirectorTextColor: white,
		LineupDisplayDuration:   8.0,
		LineupAnimationDuration: 0.5,
		LineupStaggerDelay:      0.2,
	}
}

// WithMargins returns a copy positioned at the given screen margins.
func (s Style) WithMargins(x, y int) Style {
	s.XMargin = x
	s.YMargin = y
	return s
}

// WithNotificationTiming returns a copy with custom notification
// defaults. Non-positive values keep the current ones.
func (s Style) WithNotificationTiming(display, animation float64) Style {
	if display > 0 {
		s.NotificationDisplayDuration = display
	}
	if animation > 0 {
		s.NotificationAnimationDuration = animation
	}
	return s
}

// WithLineupTiming returns a copy with custom lineup defaults.
// Non-positive values keep the current ones.
func (s Style) WithLineupTiming(display, animation, stagger float64) Style {
	if display > 0 {
		s.LineupDisplayDuration = display
	}
	if animation > 0 {
		s.LineupAnimationDuration = animation
	}
	if stagger > 0 {
		s.LineupStaggerDelay = stagger
	}
	return s
}
