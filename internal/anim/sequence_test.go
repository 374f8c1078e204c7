package anim

import (
	"math"
	"testing"

	"github.com/orhanbalci/scorecast/internal/easing"
)

func TestSequence(t *testing.T) {
	segments := []Segment{
		{Name: "fade", Duration: 0.5},
		{Name: "slide", Duration: 0.8},
		{Name: "pulse", Duration: 0.3},
	}

	windows := Sequence(segments)
	if len(windows) != 3 {
		t.Fatalf("expected 3 windows, got %d", len(windows))
	}

	wantStarts := []float64{0, 0.5, 1.3}
	for i, w := range windows {
		if math.Abs(w.Start-wantStarts[i]) > eps {
			t.Errorf("window %d starts at %v, want %v", i, w.Start, wantStarts[i])
		}
	}

	if got := SequenceDuration(segments); math.Abs(got-1.6) > eps {
		t.Errorf("sequence duration = %v, want 1.6", got)
	}
	if got := windows[2].End(); math.Abs(got-1.6) > eps {
		t.Errorf("last window ends at %v, want 1.6", got)
	}
}

func TestStaggeredIndependentOfDuration(t *testing.T) {
	// Starts depend only on index, never on the previous segment's span.
	windows := Staggered(3, 0.2, 0.5)

	wantStarts := []float64{0, 0.2, 0.4}
	for i, w := range windows {
		if math.Abs(w.Start-wantStarts[i]) > eps {
			t.Errorf("window %d starts at %v, want %v", i, w.Start, wantStarts[i])
		}
		if w.Duration != 0.5 {
			t.Errorf("window %d duration = %v, want 0.5", i, w.Duration)
		}
	}

	if got := StaggerSpan(3, 0.2, 0.5); math.Abs(got-0.9) > eps {
		t.Errorf("stagger span = %v, want 0.9", got)
	}
}

func TestRowPositionPhases(t *testing.T) {
	// n=3 rows, stagger=0.2, anim=0.5. Row index 2 begins sliding at
	// t=0.4; everyone exits together at
	// total_animation_time + display_duration.
	totalAnim := StaggerSpan(3, 0.2, 0.5) // 0.9
	p := RowParams{
		StartX:             -500,
		Final:              Point{X: 0, Y: 120},
		Delay:              2 * 0.2,
		AnimDuration:       0.5,
		TotalAnimationTime: totalAnim,
		DisplayDuration:    6.0,
		Entrance:           easing.Linear,
		Exit:               easing.Linear,
	}
	pos := RowPosition(p)

	if got := pos(0.39); got.X != -500 {
		t.Errorf("row still waiting at 0.39, X = %v, want -500", got.X)
	}
	if got := pos(0.4 + 0.25); math.Abs(got.X-(-250)) > eps {
		t.Errorf("row half-entered, X = %v, want -250", got.X)
	}
	if got := pos(0.9); got != p.Final {
		t.Errorf("row settled = %+v, want %+v", got, p.Final)
	}

	// Holds through the shared display window even though this row's
	// own entrance finished at 0.9.
	exitStart := totalAnim + 6.0
	if got := pos(exitStart - 0.01); got != p.Final {
		t.Errorf("row left early at %v: %+v", exitStart-0.01, got)
	}
	if got := pos(exitStart + 0.25); math.Abs(got.X-(-250)) > eps {
		t.Errorf("row half-exited, X = %v, want -250", got.X)
	}
	if got := pos(exitStart + 0.5); math.Abs(got.X-(-500)) > eps {
		t.Errorf("row fully exited, X = %v, want -500", got.X)
	}
	// Clamp past the exit window.
	if got := pos(exitStart + 2); math.Abs(got.X-(-500)) > eps {
		t.Errorf("row overshot after window, X = %v", got.X)
	}
}

func TestRowTimelineDuration(t *testing.T) {
	got := RowTimelineDuration(13, 0.2, 0.5, 8.0)
	want := 12*0.2 + 0.5 + 8.0 + 0.5
	if math.Abs(got-want) > eps {
		t.Errorf("timeline duration = %v, want %v", got, want)
	}
}
