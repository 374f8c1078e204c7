package overlay

import (
	"fmt"
	"image"
	"image/draw"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/orhanbalci/scorecast/internal/anim"
	"github.com/orhanbalci/scorecast/internal/media"
)

const qrFadeDuration = 0.8

// QRBadgeLayer renders a QR code in the bottom right corner, fading in
// and out. Used to point viewers at a highlights or club page URL.
func QRBadgeLayer(url string, size int, videoWidth, videoHeight int, start, duration float64, style Style) (Layer, error) {
	q, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return Layer{}, fmt.Errorf("qr badge for %q: %w", url, err)
	}

	src := q.Image(size)
	rgba := image.NewRGBA(src.Bounds())
	draw.Draw(rgba, rgba.Bounds(), src, src.Bounds().Min, draw.Src)
	content := media.Element{Image: rgba, Width: rgba.Bounds().Dx(), Height: rgba.Bounds().Dy()}

	fade := qrFadeDuration
	if duration < 2*fade {
		fade = duration / 2
	}

	in := anim.FadeIn(fade, nil)
	out := anim.FadeOut(duration, fade, nil)

	return Layer{
		Name:     "qr badge",
		Start:    start,
		Duration: duration,
		Z:        ZNotification,
		Content:  content,
		X:        float64(videoWidth - content.Width - style.XMargin),
		Y:        float64(videoHeight - content.Height - style.YMargin),
		Opacity: func(t float64) float64 {
			return in(t) * out(t)
		},
	}, nil
}
