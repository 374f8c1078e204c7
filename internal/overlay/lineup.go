package overlay

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/orhanbalci/scorecast/internal/anim"
	"github.com/orhanbalci/scorecast/internal/media"
	"github.com/orhanbalci/scorecast/internal/timeline"
)

// LineupSpec is one scheduled lineup board. Zero durations fall back
// to the style defaults.
type LineupSpec struct {
	Time              float64
	Team              TeamInfo
	Players           []timeline.Player
	Director          string
	DisplayDuration   float64
	AnimationDuration float64
	StaggerDelay      float64
}

// rowOffscreenMargin pushes the resting position past the canvas edge
// so wide rows never peek in before their entrance.
const rowOffscreenMargin = 100

// LineupLayers builds the staggered row layers for one lineup board:
// a team header, one row per player, and a technical director footer.
// Rows cascade in left to right, hold together, and exit together.
func LineupLayers(spec LineupSpec, style Style, videoWidth, videoHeight int) ([]Layer, error) {
	display := spec.DisplayDuration
	if display <= 0 {
		display = style.LineupDisplayDuration
	}
	animDuration := spec.AnimationDuration
	if animDuration <= 0 {
		animDuration = style.LineupAnimationDuration
	}
	stagger := spec.StaggerDelay
	if stagger <= 0 {
		stagger = style.LineupStaggerDelay
	}

	res := ResolutionFor(videoWidth)
	dims := DimensionsFor(res)
	lineup := LineupDimensionsFor(res)

	itemHeight := dims.ScoreboardHeight
	nameBoxWidth := lineup.Width - lineup.NumberBoxWidth - dims.AccentWidth

	totalItems := 1 + len(spec.Players) + 1
	totalHeight := totalItems * itemHeight
	boardX := float64(videoWidth-lineup.Width) / 2
	boardY := float64(videoHeight-totalHeight) / 2

	totalAnimationTime := anim.StaggerSpan(totalItems, stagger, animDuration)
	totalDuration := anim.RowTimelineDuration(totalItems, stagger, animDuration, display)
	startX := boardX - float64(lineup.Width) - rowOffscreenMargin

	row := func(index int, content media.Element, name string) Layer {
		final := anim.Point{X: boardX, Y: boardY + float64(index*itemHeight)}
		return Layer{
			Name:     name,
			Start:    spec.Time,
			Duration: totalDuration,
			Z:        ZLineup,
			Content:  content,
			Position: anim.RowPosition(anim.RowParams{
				StartX:             startX,
				Final:              final,
				Delay:              float64(index) * stagger,
				AnimDuration:       animDuration,
				TotalAnimationTime: totalAnimationTime,
				DisplayDuration:    display,
			}),
		}
	}

	layers := make([]Layer, 0, totalItems)

	header, err := lineupItem(lineupItemSpec{
		number:     "",
		name:       strings.ToUpper(spec.Team.Name),
		fontSize:   lineup.TeamFontSize,
		textColor:  style.LineupTeamTextColor,
		numberBox:  lineup.NumberBoxWidth,
		nameBox:    nameBoxWidth,
		height:     itemHeight,
		accent:     spec.Team.Accent,
		accentW:    dims.AccentWidth,
		textMargin: dims.TextMargin,
	}, style)
	if err != nil {
		return nil, err
	}
	layers = append(layers, row(0, header, fmt.Sprintf("lineup header %s", spec.Team.Name)))

	for i, p := range spec.Players {
		name := FormatName(p.Name)
		if p.Position != "" {
			name = fmt.Sprintf("%s (%s)", name, p.Position)
		}
		item, err := lineupItem(lineupItemSpec{
			number:     strconv.Itoa(p.Number),
			name:       name,
			fontSize:   lineup.PlayerFontSize,
			textColor:  style.LineupPlayerTextColor,
			numberBox:  lineup.NumberBoxWidth,
			nameBox:    nameBoxWidth,
			height:     itemHeight,
			accent:     spec.Team.Accent,
			accentW:    dims.AccentWidth,
			textMargin: dims.TextMargin,
		}, style)
		if err != nil {
			return nil, fmt.Errorf("lineup player %q: %w", p.Name, err)
		}
		layers = append(layers, row(1+i, item, fmt.Sprintf("lineup player %d", p.Number)))
	}

	footer, err := lineupItem(lineupItemSpec{
		number:     "TD",
		name:       FormatName(spec.Director),
		fontSize:   lineup.DirectorFontSize,
		textColor:  style.LineupDirectorTextColor,
		numberBox:  lineup.NumberBoxWidth,
		nameBox:    nameBoxWidth,
		height:     itemHeight,
		accent:     spec.Team.Accent,
		accentW:    dims.AccentWidth,
		textMargin: dims.TextMargin,
	}, style)
	if err != nil {
		return nil, err
	}
	layers = append(layers, row(totalItems-1, footer, fmt.Sprintf("lineup director %s", spec.Director)))

	return layers, nil
}

type lineupItemSpec struct {
	number     string
	name       string
	fontSize   float64
	textColor  color.RGBA
	numberBox  int
	nameBox    int
	height     int
	accent     color.RGBA
	accentW    int
	textMargin int
}

// lineupItem rasterizes one row: accent bar, number box, name box.
func lineupItem(spec lineupItemSpec, style Style) (media.Element, error) {
	totalWidth := spec.numberBox + spec.nameBox + spec.accentW

	items := []media.Positioned{
		{Element: media.DrawRect(totalWidth, spec.height, style.LineupNumberBoxColor)},
		{Element: media.DrawRect(spec.accentW, spec.height, spec.accent)},
		{Element: media.DrawRect(spec.numberBox, spec.height, style.LineupNameBoxColor), X: spec.accentW},
	}

	if spec.number != "" {
		numberText, err := media.DrawText(spec.number, spec.fontSize, color.RGBA{A: 255}, media.FontBold)
		if err != nil {
			return media.Element{}, err
		}
		items = append(items, media.Positioned{
			Element: numberText,
			X:       spec.accentW + (spec.numberBox-numberText.Width)/2,
			Y:       (spec.height - numberText.Height) / 2,
		})
	}

	nameText, err := media.DrawText(spec.name, spec.fontSize, spec.textColor, media.FontBold)
	if err != nil {
		return media.Element{}, err
	}
	items = append(items, media.Positioned{
		Element: nameText,
		X:       spec.accentW + spec.numberBox + spec.textMargin,
		Y:       (spec.height - nameText.Height) / 2,
	})

	return media.Composite(items, totalWidth, spec.height), nil
}
