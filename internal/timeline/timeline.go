// Package timeline turns a match event list into the ordered schedule
// the overlay renderer consumes: a running score timeline plus timed
// notification and lineup windows.
package timeline

import (
	"fmt"
	"sort"
)

// GoalEvent is a single scored goal. Team is 1 or 2.
type GoalEvent struct {
	Seconds float64
	Team    int
}

// ScoreEntry is one state of the running score: from Seconds onward
// the match stands Team1-Team2.
type ScoreEntry struct {
	Seconds float64
	Team1   int
	Team2   int
}

// ScoringTeam reports which side produced this entry relative to the
// previous one, or 0 for the baseline.
func (e ScoreEntry) ScoringTeam(prev ScoreEntry) int {
	if e.Team1 > prev.Team1 {
		return 1
	}
	if e.Team2 > prev.Team2 {
		return 2
	}
	return 0
}

// BuildScoreTimeline sorts goals by time (stable, so goals sharing a
// timestamp keep their input order) and accumulates per-team counters.
// The result always begins with the implicit 0-0 baseline.
func BuildScoreTimeline(goals []GoalEvent) ([]ScoreEntry, error) {
	sorted := make([]GoalEvent, len(goals))
	copy(sorted, goals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Seconds < sorted[j].Seconds
	})

	entries := []ScoreEntry{{Seconds: 0, Team1: 0, Team2: 0}}
	team1, team2 := 0, 0
	for _, g := range sorted {
		switch g.Team {
		case 1:
			team1++
		case 2:
			team2++
		default:
			return nil, fmt.Errorf("goal at %s references unknown team %d", FormatTime(g.Seconds), g.Team)
		}
		entries = append(entries, ScoreEntry{Seconds: g.Seconds, Team1: team1, Team2: team2})
	}

	return entries, nil
}

// SegmentDuration reports how long entry i of the timeline stays on
// screen: until the next entry, or until videoDuration for the last.
func SegmentDuration(entries []ScoreEntry, i int, videoDuration float64) float64 {
	if i < len(entries)-1 {
		return entries[i+1].Seconds - entries[i].Seconds
	}
	return videoDuration - entries[i].Seconds
}
