package overlay

import (
	"fmt"
	"image/color"

	"github.com/orhanbalci/scorecast/internal/anim"
	"github.com/orhanbalci/scorecast/internal/easing"
	"github.com/orhanbalci/scorecast/internal/media"
)

// NotificationSpec is one scheduled notification. Zero durations fall
// back to the style defaults, a zero Background falls back to the gold
// default.
type NotificationSpec struct {
	Time              float64
	Text              string
	Background        color.RGBA
	TextColor         color.RGBA
	DisplayDuration   float64
	AnimationDuration float64
}

// NotificationLayer builds a notification that drops down from behind
// the score box, holds, and slides back up. The base position matches
// the score box so the card is fully hidden before the drop.
func NotificationLayer(spec NotificationSpec, style Style, dims Dimensions) (Layer, error) {
	display := spec.DisplayDuration
	if display <= 0 {
		display = style.NotificationDisplayDuration
	}
	slide := spec.AnimationDuration
	if slide <= 0 {
		slide = style.NotificationAnimationDuration
	}

	background := spec.Background
	if background.A == 0 {
		background = style.NotificationBackground
	}
	textColor := spec.TextColor
	if textColor.A == 0 {
		textColor = style.NotificationTextColor
	}

	text, err := media.DrawText(spec.Text, dims.ScoreFontSize, textColor, media.FontBold)
	if err != nil {
		return Layer{}, fmt.Errorf("notification %q: %w", spec.Text, err)
	}

	content := media.Composite([]media.Positioned{
		{Element: media.DrawRect(dims.ScoreBoxWidth, dims.ScoreboardHeight, background)},
		{Element: text, X: (dims.ScoreBoxWidth - text.Width) / 2, Y: (dims.ScoreboardHeight - text.Height) / 2},
	}, dims.ScoreBoxWidth, dims.ScoreboardHeight)

	base := anim.Point{
		X: float64(style.XMargin + dims.TeamBoxWidth),
		Y: float64(style.YMargin),
	}

	return Layer{
		Name:     fmt.Sprintf("notification %q", spec.Text),
		Start:    spec.Time,
		Duration: anim.SlideDownUpDuration(slide, display),
		Z:        ZNotification,
		Content:  content,
		Position: anim.SlideDownUp(base, float64(dims.ScoreboardHeight), slide, display, easing.OutBounce),
	}, nil
}

// GoalNotification is the auto-generated card for a scoring event,
// colored with the scoring team's accent.
func GoalNotification(at float64, teamColor color.RGBA, style Style, dims Dimensions) (Layer, error) {
	return NotificationLayer(NotificationSpec{
		Time:       at,
		Text:       "GOAL",
		Background: teamColor,
	}, style, dims)
}
