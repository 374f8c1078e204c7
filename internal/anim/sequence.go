package anim

import (
	"github.com/orhanbalci/scorecast/internal/easing"
)

// Window is the absolute time span of one animation segment.
type Window struct {
	Start    float64
	Duration float64
}

// End reports the absolute end time of the window.
func (w Window) End() float64 { return w.Start + w.Duration }

// Segment is one step of a combined animation: an explicit record of
// what runs, for how long, and with which curve.
type Segment struct {
	Name     string
	Duration float64
	Easing   easing.Func
}

// Sequence lays segments out strictly one after another: each window
// starts when the previous one ends. The running offset accumulates in
// input order, so later segments also render on top when composited.
func Sequence(segments []Segment) []Window {
	windows := make([]Window, len(segments))
	current := 0.0
	for i, s := range segments {
		windows[i] = Window{Start: current, Duration: s.Duration}
		current += s.Duration
	}
	return windows
}

// SequenceDuration is the total span of a sequential composition.
func SequenceDuration(segments []Segment) float64 {
	total := 0.0
	for _, s := range segments {
		total += s.Duration
	}
	return total
}

// Staggered lays n equal segments out with a fixed per-index delay:
// window i starts at i*stagger regardless of how long the previous
// segment runs.
func Staggered(n int, stagger, duration float64) []Window {
	windows := make([]Window, n)
	for i := range windows {
		windows[i] = Window{Start: float64(i) * stagger, Duration: duration}
	}
	return windows
}

// StaggerSpan is the time by which the last of n staggered entrances
// has finished: (n-1)*stagger + duration.
func StaggerSpan(n int, stagger, duration float64) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n-1)*stagger + duration
}

// RowParams describes one staggered lineup row. Rows wait for their
// index delay, slide in, hold until every row has entered and the
// shared display window has elapsed, then all exit together.
type RowParams struct {
	StartX            float64 // off-screen resting position
	Final             Point
	Delay             float64 // index * stagger
	AnimDuration      float64
	TotalAnimationTime float64 // StaggerSpan over all rows
	DisplayDuration   float64
	Entrance          easing.Func
	Exit              easing.Func
}

// RowPosition builds the four-phase wait/slide-in/hold/slide-out
// position function for a lineup row. The exit phase is anchored to
// TotalAnimationTime+DisplayDuration, not to the row's own entrance,
// so all visible rows leave simultaneously.
func RowPosition(p RowParams) PositionFunc {
	if p.Entrance == nil {
		p.Entrance = easing.OutBounce
	}
	if p.Exit == nil {
		p.Exit = easing.InQuad
	}
	exitStart := p.TotalAnimationTime + p.DisplayDuration
	return func(t float64) Point {
		switch {
		case t < p.Delay:
			return Point{X: p.StartX, Y: p.Final.Y}
		case t < p.Delay+p.AnimDuration:
			progress := p.Entrance((t - p.Delay) / p.AnimDuration)
			return Point{X: p.StartX + (p.Final.X-p.StartX)*progress, Y: p.Final.Y}
		case t < exitStart:
			return p.Final
		default:
			progress := clamp01((t - exitStart) / p.AnimDuration)
			eased := p.Exit(progress)
			return Point{X: p.Final.X + (p.StartX-p.Final.X)*eased, Y: p.Final.Y}
		}
	}
}

// RowTimelineDuration is the full lifetime of a staggered row group:
// entrance cascade, shared hold, shared exit.
func RowTimelineDuration(n int, stagger, animDuration, displayDuration float64) float64 {
	return StaggerSpan(n, stagger, animDuration) + displayDuration + animDuration
}
