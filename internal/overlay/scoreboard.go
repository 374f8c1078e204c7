package overlay

import (
	"fmt"
	"image/color"

	"github.com/orhanbalci/scorecast/internal/media"
	"github.com/orhanbalci/scorecast/internal/timeline"
)

// TeamInfo is the display identity of one side.
type TeamInfo struct {
	Name   string
	Accent color.RGBA
}

// BuildScoreboard rasterizes one scoreboard state: two team boxes with
// accent bars on the outer edges and a centered score box between
// them.
func BuildScoreboard(style Style, dims Dimensions, team1, team2 TeamInfo, score1, score2 int) (media.Element, error) {
	totalWidth := dims.TeamBoxWidth + dims.ScoreBoxWidth + dims.TeamBoxWidth
	height := dims.ScoreboardHeight

	team1Text, err := media.DrawText(team1.Name, dims.TeamFontSize, style.TeamTextColor, media.FontBold)
	if err != nil {
		return media.Element{}, err
	}
	team2Text, err := media.DrawText(team2.Name, dims.TeamFontSize, style.TeamTextColor, media.FontBold)
	if err != nil {
		return media.Element{}, err
	}
	scoreText, err := media.DrawText(fmt.Sprintf("%d - %d", score1, score2), dims.ScoreFontSize, style.ScoreTextColor, media.FontBold)
	if err != nil {
		return media.Element{}, err
	}

	teamTextY := (height - team1Text.Height) / 2
	scoreBoxX := dims.TeamBoxWidth
	team2BoxX := dims.TeamBoxWidth + dims.ScoreBoxWidth

	items := []media.Positioned{
		{Element: media.DrawRect(dims.TeamBoxWidth, height, style.TeamBoxColor), X: 0, Y: 0},
		{Element: media.DrawRect(dims.TeamBoxWidth, height, style.TeamBoxColor), X: team2BoxX, Y: 0},
		{Element: media.DrawRect(dims.ScoreBoxWidth, height, style.ScoreBoxColor), X: scoreBoxX, Y: 0},
		{Element: team1Text, X: dims.AccentWidth + dims.TextMargin, Y: teamTextY},
		{Element: team2Text, X: team2BoxX + dims.TextMargin, Y: teamTextY},
		{Element: scoreText, X: scoreBoxX + (dims.ScoreBoxWidth-scoreText.Width)/2, Y: (height - scoreText.Height) / 2},
		{Element: media.DrawRect(dims.AccentWidth, height, team1.Accent), X: 0, Y: 0},
		{Element: media.DrawRect(dims.AccentWidth, height, team2.Accent), X: totalWidth - dims.AccentWidth, Y: 0},
	}

	return media.Composite(items, totalWidth, height), nil
}

// ScoreboardLayers builds one static layer per score timeline segment.
// The last segment runs to the end of the video.
func ScoreboardLayers(style Style, dims Dimensions, team1, team2 TeamInfo, entries []timeline.ScoreEntry, videoDuration float64) ([]Layer, error) {
	layers := make([]Layer, 0, len(entries))
	for i, entry := range entries {
		duration := timeline.SegmentDuration(entries, i, videoDuration)
		if duration <= 0 {
			continue
		}

		content, err := BuildScoreboard(style, dims, team1, team2, entry.Team1, entry.Team2)
		if err != nil {
			return nil, fmt.Errorf("scoreboard %d-%d: %w", entry.Team1, entry.Team2, err)
		}

		layers = append(layers, Layer{
			Name:     fmt.Sprintf("scoreboard %d-%d", entry.Team1, entry.Team2),
			Start:    entry.Seconds,
			Duration: duration,
			Z:        ZScoreboard,
			Content:  content,
			X:        float64(style.XMargin),
			Y:        float64(style.YMargin),
		})
	}
	return layers, nil
}
