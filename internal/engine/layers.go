package engine

import (
	"fmt"

	"github.com/orhanbalci/scorecast/internal/config"
	"github.com/orhanbalci/scorecast/internal/overlay"
	"github.com/orhanbalci/scorecast/internal/timeline"
)

const (
	qrBadgeDuration = 15.0
	qrBadgeScale    = 3
)

// BuildLayers turns a match description into the full sorted layer
// schedule for a render window. Layer times stay in absolute video
// time, the frame loop samples them directly.
func BuildLayers(match *timeline.Match, cfg *config.Config, params config.RenderParams) ([]overlay.Layer, error) {
	style := overlay.DefaultStyle().WithMargins(cfg.XMargin, cfg.YMargin)
	res := overlay.ResolutionFor(params.Width)
	dims := overlay.DimensionsFor(res)

	team1Color, err := overlay.ParseColor(match.Team1.Color)
	if err != nil {
		return nil, fmt.Errorf("team1: %w", err)
	}
	team2Color, err := overlay.ParseColor(match.Team2.Color)
	if err != nil {
		return nil, fmt.Errorf("team2: %w", err)
	}
	team1 := overlay.TeamInfo{Name: match.Team1.Name, Accent: team1Color}
	team2 := overlay.TeamInfo{Name: match.Team2.Name, Accent: team2Color}

	entries, err := timeline.BuildScoreTimeline(match.GoalEvents())
	if err != nil {
		return nil, err
	}

	var layers []overlay.Layer

	if cfg.ShowScoreboard {
		scoreLayers, err := overlay.ScoreboardLayers(style, dims, team1, team2, entries, params.End)
		if err != nil {
			return nil, err
		}
		layers = append(layers, scoreLayers...)
	}

	if cfg.ShowNotifications {
		if len(match.Notifications) > 0 {
			// Custom notifications replace the auto goal cards.
			for _, n := range match.Notifications {
				background, err := overlay.ParseColorDefault(n.Color, style.NotificationBackground)
				if err != nil {
					return nil, fmt.Errorf("notification %q: %w", n.Text, err)
				}
				textColor, err := overlay.ParseColorDefault(n.TextColor, style.NotificationTextColor)
				if err != nil {
					return nil, fmt.Errorf("notification %q: %w", n.Text, err)
				}
				layer, err := overlay.NotificationLayer(overlay.NotificationSpec{
					Time:              n.Time.Seconds,
					Text:              n.Text,
					Background:        background,
					TextColor:         textColor,
					DisplayDuration:   n.DisplayDuration,
					AnimationDuration: n.AnimationDuration,
				}, style, dims)
				if err != nil {
					return nil, err
				}
				layers = append(layers, layer)
			}
		} else {
			for i := 1; i < len(entries); i++ {
				scorer := entries[i].ScoringTeam(entries[i-1])
				accent := team1.Accent
				if scorer == 2 {
					accent = team2.Accent
				}
				layer, err := overlay.GoalNotification(entries[i].Seconds, accent, style, dims)
				if err != nil {
					return nil, err
				}
				layers = append(layers, layer)
			}
		}
	}

	if cfg.ShowLineups {
		for _, l := range match.Lineups {
			team := team1
			if l.Team == 2 {
				team = team2
			}
			rows, err := overlay.LineupLayers(overlay.LineupSpec{
				Time:              l.Time.Seconds,
				Team:              team,
				Players:           l.Players,
				Director:          l.Director,
				DisplayDuration:   l.DisplayDuration,
				AnimationDuration: l.AnimationDuration,
				StaggerDelay:      l.StaggerDelay,
			}, style, params.Width, params.Height)
			if err != nil {
				return nil, err
			}
			layers = append(layers, rows...)
		}
	}

	if cfg.QRContent != "" {
		start := params.End - qrBadgeDuration
		duration := qrBadgeDuration
		if start < params.Start {
			start = params.Start
			duration = params.End - params.Start
		}
		badge, err := overlay.QRBadgeLayer(cfg.QRContent, dims.ScoreboardHeight*qrBadgeScale,
			params.Width, params.Height, start, duration, style)
		if err != nil {
			return nil, err
		}
		layers = append(layers, badge)
	}

	overlay.SortLayers(layers)
	return layers, nil
}
