package overlay

import (
	"image"
	"sort"

	"github.com/orhanbalci/scorecast/internal/anim"
	"github.com/orhanbalci/scorecast/internal/media"
)

// Z bands keep the stacking order stable no matter which order layers
// were scheduled in: lineups under notifications under the scoreboard.
const (
	ZLineup       = 10
	ZNotification = 20
	ZScoreboard   = 30
)

// Layer is one scheduled overlay graphic. Content is rasterized once,
// the animation functions run per frame in the layer's local time.
type Layer struct {
	Name     string
	Start    float64
	Duration float64
	Z        int
	Content  media.Element

	// Animation functions take local time t in [0, Duration].
	// Nil means static position, full opacity, unit scale.
	Position anim.PositionFunc
	Opacity  anim.OpacityFunc
	Scale    anim.ScaleFunc

	// Static placement used when Position is nil.
	X, Y float64
}

// End is the absolute time the layer leaves the frame.
func (l *Layer) End() float64 {
	return l.Start + l.Duration
}

// ActiveAt reports whether the layer contributes to the frame at
// absolute time t. The start instant is inclusive, the end exclusive.
func (l *Layer) ActiveAt(t float64) bool {
	return t >= l.Start && t < l.End()
}

// Draw renders the layer onto dst for absolute time t. Inactive layers
// draw nothing.
func (l *Layer) Draw(dst *image.RGBA, t float64) {
	if !l.ActiveAt(t) {
		return
	}
	local := t - l.Start

	x, y := l.X, l.Y
	if l.Position != nil {
		p := l.Position(local)
		x, y = p.X, p.Y
	}

	opacity := 1.0
	if l.Opacity != nil {
		opacity = l.Opacity(local)
	}

	scale := 1.0
	if l.Scale != nil {
		scale = l.Scale(local)
	}

	media.Blit(dst, l.Content, x, y, opacity, scale)
}

// SortLayers orders layers for rendering: by Z band, then by start
// time so later layers inside a band draw on top. The sort is stable.
func SortLayers(layers []Layer) {
	sort.SliceStable(layers, func(i, j int) bool {
		if layers[i].Z != layers[j].Z {
			return layers[i].Z < layers[j].Z
		}
		return layers[i].Start < layers[j].Start
	})
}

// RenderFrame clears the canvas and draws every active layer for
// absolute time t. Layers must already be sorted.
func RenderFrame(canvas *image.RGBA, layers []Layer, t float64) {
	media.Clear(canvas)
	for i := range layers {
		layers[i].Draw(canvas, t)
	}
}

// TimelineEnd is the latest layer end, useful for sanity checks
// against the video duration.
func TimelineEnd(layers []Layer) float64 {
	var end float64
	for i := range layers {
		if e := layers[i].End(); e > end {
			end = e
		}
	}
	return end
}
