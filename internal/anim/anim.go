// Package anim builds the time-parameterized property functions that
// drive overlay motion. Every generator returns a pure function of
// local clip time: before the animation window it reports the
// pre-state, inside the window it eases between states, and at or past
// the end of the window it reports the resolved end state without
// extrapolating.
package anim

import (
	"github.com/orhanbalci/scorecast/internal/easing"
)

// Point is a position on the canvas in pixels. Fractional values are
// kept until the final blit so easing stays smooth at low resolutions.
type Point struct {
	X, Y float64
}

// PositionFunc reports an element position for a local time sample.
type PositionFunc func(t float64) Point

// OpacityFunc reports opacity in [0,1] for a local time sample.
type OpacityFunc func(t float64) float64

// ScaleFunc reports a uniform scale factor for a local time sample.
type ScaleFunc func(t float64) float64

// StaticPosition pins an element to a fixed point.
func StaticPosition(p Point) PositionFunc {
	return func(float64) Point { return p }
}

// FadeIn eases opacity from 0 to 1 over duration.
func FadeIn(duration float64, e easing.Func) OpacityFunc {
	if e == nil {
		e = easing.Linear
	}
	return func(t float64) float64 {
		if t >= duration {
			return 1
		}
		if t <= 0 {
			return 0
		}
		return e(t / duration)
	}
}

// FadeOut eases opacity from 1 to 0 over the last duration seconds of
// a clip lasting total seconds.
func FadeOut(total, duration float64, e easing.Func) OpacityFunc {
	if e == nil {
		e = easing.Linear
	}
	start := total - duration
	return func(t float64) float64 {
		if t < start {
			return 1
		}
		progress := clamp01((t - start) / duration)
		return 1 - e(progress)
	}
}

// SlideInFromTop moves an element of the given height down into its
// final position, starting fully above it.
func SlideInFromTop(final Point, height, duration float64, e easing.Func) PositionFunc {
	if e == nil {
		e = easing.OutQuad
	}
	return func(t float64) Point {
		if t >= duration {
			return final
		}
		progress := e(clamp01(t / duration))
		return Point{X: final.X, Y: final.Y - height*(1-progress)}
	}
}

// SlideInFromBottom moves an element up from the bottom canvas edge.
func SlideInFromBottom(final Point, canvasHeight, duration float64, e easing.Func) PositionFunc {
	if e == nil {
		e = easing.OutQuad
	}
	return func(t float64) Point {
		if t >= duration {
			return final
		}
		progress := e(clamp01(t / duration))
		return Point{X: final.X, Y: canvasHeight + (final.Y-canvasHeight)*progress}
	}
}

// SlideInFromLeft moves an element of the given width in from the left
// canvas edge.
func SlideInFromLeft(final Point, width, duration float64, e easing.Func) PositionFunc {
	if e == nil {
		e = easing.OutQuad
	}
	return func(t float64) Point {
		if t >= duration {
			return final
		}
		progress := e(clamp01(t / duration))
		return Point{X: final.X - width*(1-progress), Y: final.Y}
	}
}

// SlideInFromRight moves an element in from the right canvas edge.
func SlideInFromRight(final Point, canvasWidth, duration float64, e easing.Func) PositionFunc {
	if e == nil {
		e = easing.OutQuad
	}
	return func(t float64) Point {
		if t >= duration {
			return final
		}
		progress := e(clamp01(t / duration))
		return Point{X: canvasWidth + (final.X-canvasWidth)*progress, Y: final.Y}
	}
}

// SlideOutToTop moves an element of the given height up out of view
// during the last duration seconds of a clip lasting total seconds.
func SlideOutToTop(base Point, height, total, duration float64, e easing.Func) PositionFunc {
	if e == nil {
		e = easing.InQuad
	}
	start := total - duration
	return func(t float64) Point {
		if t < start {
			return base
		}
		progress := e(clamp01((t - start) / duration))
		return Point{X: base.X, Y: base.Y - height*progress}
	}
}

// SlideOutToBottom moves an element down past the bottom canvas edge
// during the last duration seconds.
func SlideOutToBottom(base Point, canvasHeight, total, duration float64, e easing.Func) PositionFunc {
	if e == nil {
		e = easing.InQuad
	}
	start := total - duration
	return func(t float64) Point {
		if t < start {
			return base
		}
		progress := e(clamp01((t - start) / duration))
		return Point{X: base.X, Y: base.Y + (canvasHeight-base.Y)*progress}
	}
}

// ZoomIn grows an element from scaleStart to full size over duration.
func ZoomIn(duration, scaleStart float64, e easing.Func) ScaleFunc {
	if e == nil {
		e = easing.OutCubic
	}
	return func(t float64) float64 {
		if t >= duration {
			return 1
		}
		progress := e(clamp01(t / duration))
		return scaleStart + (1-scaleStart)*progress
	}
}

// ZoomOut shrinks an element to scaleEnd during the last duration
// seconds of a clip lasting total seconds.
func ZoomOut(total, duration, scaleEnd float64, e easing.Func) ScaleFunc {
	if e == nil {
		e = easing.InCubic
	}
	start := total - duration
	return func(t float64) float64 {
		if t < start {
			return 1
		}
		progress := e(clamp01((t - start) / duration))
		return 1 - (1-scaleEnd)*progress
	}
}

// BounceIn is a slide-in from the top with bounce easing, used for
// celebratory entrances.
func BounceIn(final Point, height, duration float64, e easing.Func) PositionFunc {
	if e == nil {
		e = easing.OutBounce
	}
	return SlideInFromTop(final, height, duration, e)
}

// Pulse swells an element to scaleMax and back, for score changes.
func Pulse(duration, scaleMax float64, e easing.Func) ScaleFunc {
	if e == nil {
		e = easing.Pulse
	}
	return func(t float64) float64 {
		if t >= duration {
			return 1
		}
		progress := e(clamp01(t / duration))
		return 1 + (scaleMax-1)*progress
	}
}

// SlideDownUp moves an element down by its own height, holds, then
// slides it back up. The three phases partition
// [0, 2*slideDuration+pauseDuration] exactly.
func SlideDownUp(base Point, height, slideDuration, pauseDuration float64, e easing.Func) PositionFunc {
	if e == nil {
		e = easing.InOutQuad
	}
	return func(t float64) Point {
		switch {
		case t <= slideDuration:
			progress := e(clamp01(t / slideDuration))
			return Point{X: base.X, Y: base.Y + height*progress}
		case t <= slideDuration+pauseDuration:
			return Point{X: base.X, Y: base.Y + height}
		default:
			upStart := slideDuration + pauseDuration
			// Clamp so float time samples past the window cannot overshoot.
			progress := clamp01((t - upStart) / slideDuration)
			return Point{X: base.X, Y: base.Y + height*(1-e(progress))}
		}
	}
}

// SlideDownUpDuration is the total window covered by SlideDownUp.
func SlideDownUpDuration(slideDuration, pauseDuration float64) float64 {
	return 2*slideDuration + pauseDuration
}

// NotificationSequence drops an element of the given height in from
// above, holds it for displayDuration, then lifts it back out. The
// returned positions are offsets from the element base position.
func NotificationSequence(height, slideDuration, displayDuration float64, entrance, exit easing.Func) PositionFunc {
	if entrance == nil {
		entrance = easing.OutBounce
	}
	if exit == nil {
		exit = easing.InBack
	}
	return func(t float64) Point {
		switch {
		case t <= slideDuration:
			progress := entrance(clamp01(t / slideDuration))
			return Point{Y: -height * (1 - progress)}
		case t <= slideDuration+displayDuration:
			return Point{}
		default:
			exitStart := slideDuration + displayDuration
			progress := clamp01((t - exitStart) / slideDuration)
			return Point{Y: -height * exit(progress)}
		}
	}
}

// NotificationDuration is the total window covered by
// NotificationSequence.
func NotificationDuration(slideDuration, displayDuration float64) float64 {
	return 2*slideDuration + displayDuration
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
