package timeline

import (
	"math"
	"testing"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		in      any
		want    float64
		wantErr bool
	}{
		{"05:00", 300, false},
		{"08:20", 500, false},
		{"01:02:03", 3723, false},
		{"330", 330, false},
		{"12.5", 12.5, false},
		{330, 330, false},
		{330.0, 330, false},
		{"90:30", 5430, false}, // minutes beyond 59 stay legal
		{"bad", 0, true},
		{"1:2:3:4", 0, true},
		{"", 0, true},
		{"-1:-2", 0, true},
		{nil, 0, true},
	}

	for _, tt := range tests {
		got, err := ParseTime(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseTime(%v): expected error, got %v", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTime(%v): unexpected error: %v", tt.in, err)
			continue
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ParseTime(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "00:00:00"},
		{330, "00:05:30"},
		{3723, "01:02:03"},
		{3723.9, "01:02:03"},
	}

	for _, tt := range tests {
		if got := FormatTime(tt.in); got != tt.want {
			t.Errorf("FormatTime(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildScoreTimeline(t *testing.T) {
	// Unordered input must come out sorted with running scores and the
	// implicit 0-0 baseline.
	goals := []GoalEvent{
		{Seconds: 500, Team: 1}, // "08:20"
		{Seconds: 300, Team: 2}, // "05:00"
	}

	entries, err := BuildScoreTimeline(goals)
	if err != nil {
		t.Fatalf("BuildScoreTimeline failed: %v", err)
	}

	want := []ScoreEntry{
		{Seconds: 0, Team1: 0, Team2: 0},
		{Seconds: 300, Team1: 0, Team2: 1},
		{Seconds: 500, Team1: 1, Team2: 1},
	}

	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, entries[i], want[i])
		}
	}
}

func TestBuildScoreTimelineStableTieBreak(t *testing.T) {
	goals := []GoalEvent{
		{Seconds: 100, Team: 2},
		{Seconds: 100, Team: 1},
	}

	entries, err := BuildScoreTimeline(goals)
	if err != nil {
		t.Fatalf("BuildScoreTimeline failed: %v", err)
	}

	// Input order preserved: team 2 increments first.
	if entries[1].Team2 != 1 || entries[1].Team1 != 0 {
		t.Errorf("first tied goal = %+v, want team 2 first", entries[1])
	}
	if entries[2].Team1 != 1 || entries[2].Team2 != 1 {
		t.Errorf("second tied goal = %+v, want 1-1", entries[2])
	}
}

func TestBuildScoreTimelineRejectsUnknownTeam(t *testing.T) {
	_, err := BuildScoreTimeline([]GoalEvent{{Seconds: 10, Team: 3}})
	if err == nil {
		t.Fatal("expected error for team 3")
	}
}

func TestSegmentDuration(t *testing.T) {
	entries := []ScoreEntry{
		{Seconds: 0},
		{Seconds: 300},
		{Seconds: 500},
	}

	if got := SegmentDuration(entries, 0, 900); got != 300 {
		t.Errorf("segment 0 duration = %v, want 300", got)
	}
	if got := SegmentDuration(entries, 1, 900); got != 200 {
		t.Errorf("segment 1 duration = %v, want 200", got)
	}
	// Last segment extends to end of video.
	if got := SegmentDuration(entries, 2, 900); got != 400 {
		t.Errorf("segment 2 duration = %v, want 400", got)
	}
}

func TestScoringTeam(t *testing.T) {
	prev := ScoreEntry{Team1: 1, Team2: 1}
	if got := (ScoreEntry{Team1: 2, Team2: 1}).ScoringTeam(prev); got != 1 {
		t.Errorf("ScoringTeam = %d, want 1", got)
	}
	if got := (ScoreEntry{Team1: 1, Team2: 2}).ScoringTeam(prev); got != 2 {
		t.Errorf("ScoringTeam = %d, want 2", got)
	}
	if got := prev.ScoringTeam(prev); got != 0 {
		t.Errorf("ScoringTeam = %d, want 0", got)
	}
}
