package media

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Font weights available to overlays. Bold is the scoreboard default,
// matching the Arial-Bold styling of broadcast graphics.
const (
	FontBold    = "bold"
	FontRegular = "regular"
)

var (
	fontMu    sync.Mutex
	parsed    = map[string]*opentype.Font{}
	faceCache = map[string]font.Face{}
)

func loadFont(weight string) (*opentype.Font, error) {
	if f, ok := parsed[weight]; ok {
		return f, nil
	}

	var data []byte
	switch weight {
	case FontRegular:
		data = goregular.TTF
	case FontBold, "":
		data = gobold.TTF
	default:
		return nil, fmt.Errorf("unknown font weight: %s", weight)
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded font: %w", err)
	}
	parsed[weight] = f
	return f, nil
}

func face(weight string, size float64) (font.Face, error) {
	key := fmt.Sprintf("%s-%.1f", weight, size)
	if f, ok := faceCache[key]; ok {
		return f, nil
	}

	parsedFont, err := loadFont(weight)
	if err != nil {
		return nil, err
	}

	f, err := opentype.NewFace(parsedFont, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	faceCache[key] = f
	return f, nil
}

// DrawText rasterizes a single text label and reports its measured
// size, so callers can center it the way they would a TextClip.
func DrawText(text string, size float64, c color.Color, weight string) (Element, error) {
	fontMu.Lock()
	defer fontMu.Unlock()

	f, err := face(weight, size)
	if err != nil {
		return Element{}, err
	}

	metrics := f.Metrics()
	width := font.MeasureString(f, text).Ceil()
	height := (metrics.Ascent + metrics.Descent).Ceil()
	if width < 1 {
		width = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: f,
		Dot:  fixed.Point26_6{X: 0, Y: metrics.Ascent},
	}
	drawer.DrawString(text)

	return Element{Image: img, Width: width, Height: height}, nil
}
