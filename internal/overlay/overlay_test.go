package overlay

import (
	"image"
	"image/color"
	"testing"

	"github.com/orhanbalci/scorecast/internal/media"
	"github.com/orhanbalci/scorecast/internal/timeline"
)

func TestResolutionFor(t *testing.T) {
	tests := []struct {
		width int
		want  Resolution
	}{
		{640, ResLow},
		{720, ResLow},
		{721, ResMedium},
		{1280, ResMedium},
		{1281, ResHigh},
		{1920, ResHigh},
	}
	for _, tt := range tests {
		if got := ResolutionFor(tt.width); got != tt.want {
			t.Errorf("ResolutionFor(%d) = %s, want %s", tt.width, got, tt.want)
		}
	}
}

func TestDimensionsTables(t *testing.T) {
	low := DimensionsFor(ResLow)
	high := DimensionsFor(ResHigh)
	if low.ScoreboardHeight != 36 || low.TeamBoxWidth != 100 || low.ScoreBoxWidth != 80 || low.AccentWidth != 4 {
		t.Errorf("unexpected low dimensions: %+v", low)
	}
	if high.ScoreboardHeight != 58 || high.ScoreFontSize != 40 {
		t.Errorf("unexpected high dimensions: %+v", high)
	}
	if LineupDimensionsFor(ResMedium).Width != 400 {
		t.Errorf("unexpected medium lineup width")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#A50044", color.RGBA{R: 0xA5, G: 0, B: 0x44, A: 255}, false},
		{"FEBE10", color.RGBA{R: 0xFE, G: 0xBE, B: 0x10, A: 255}, false},
		{"white", color.RGBA{R: 255, G: 255, B: 255, A: 255}, false},
		{"Black", color.RGBA{A: 255}, false},
		{"#FFF", color.RGBA{}, true},
		{"#GGGGGG", color.RGBA{}, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseColor(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseColor(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestFormatName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"john doe", "John DOE"},
		{"jean claude van damme", "Jean Claude Van DAMME"},
		{"ronaldinho", "RONALDINHO"},
		{"  önder özen ", "Önder ÖZEN"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := FormatName(tt.in); got != tt.want {
			t.Errorf("FormatName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLayerActiveWindow(t *testing.T) {
	l := Layer{Start: 10, Duration: 5}
	if !l.ActiveAt(10) {
		t.Error("start instant should be active")
	}
	if !l.ActiveAt(14.99) {
		t.Error("inside window should be active")
	}
	if l.ActiveAt(15) {
		t.Error("end instant should be inactive")
	}
	if l.ActiveAt(9.99) {
		t.Error("before window should be inactive")
	}
}

func TestSortLayersZBands(t *testing.T) {
	layers := []Layer{
		{Name: "score", Z: ZScoreboard, Start: 0},
		{Name: "notif", Z: ZNotification, Start: 5},
		{Name: "lineup", Z: ZLineup, Start: 20},
		{Name: "notif-early", Z: ZNotification, Start: 1},
	}
	SortLayers(layers)

	wantOrder := []string{"lineup", "notif-early", "notif", "score"}
	for i, want := range wantOrder {
		if layers[i].Name != want {
			t.Fatalf("position %d = %s, want %s (%+v)", i, layers[i].Name, want, layers)
		}
	}
}

func TestBuildScoreboard(t *testing.T) {
	style := DefaultStyle()
	dims := DimensionsFor(ResMedium)
	team1 := TeamInfo{Name: "AFKA", Accent: color.RGBA{R: 0xA5, B: 0x44, A: 255}}
	team2 := TeamInfo{Name: "AFYON", Accent: color.RGBA{R: 0xFE, G: 0xBE, B: 0x10, A: 255}}

	el, err := BuildScoreboard(style, dims, team1, team2, 2, 1)
	if err != nil {
		t.Fatal(err)
	}

	wantWidth := 2*dims.TeamBoxWidth + dims.ScoreBoxWidth
	if el.Width != wantWidth || el.Height != dims.ScoreboardHeight {
		t.Fatalf("unexpected size %dx%d, want %dx%d", el.Width, el.Height, wantWidth, dims.ScoreboardHeight)
	}

	// Left edge is team 1 accent, center is the teal score box.
	if got := el.Image.RGBAAt(1, dims.ScoreboardHeight/2); got != team1.Accent {
		t.Errorf("left accent pixel = %+v, want %+v", got, team1.Accent)
	}
	if got := el.Image.RGBAAt(wantWidth-2, dims.ScoreboardHeight/2); got != team2.Accent {
		t.Errorf("right accent pixel = %+v, want %+v", got, team2.Accent)
	}
	if got := el.Image.RGBAAt(dims.TeamBoxWidth+2, 2); got != style.ScoreBoxColor {
		t.Errorf("score box pixel = %+v, want %+v", got, style.ScoreBoxColor)
	}
}

func TestScoreboardLayers(t *testing.T) {
	style := DefaultStyle()
	dims := DimensionsFor(ResLow)
	team := TeamInfo{Name: "A", Accent: color.RGBA{R: 255, A: 255}}

	entries := []timeline.ScoreEntry{
		{Seconds: 0, Team1: 0, Team2: 0},
		{Seconds: 300, Team1: 0, Team2: 1},
		{Seconds: 500, Team1: 1, Team2: 1},
	}

	layers, err := ScoreboardLayers(style, dims, team, team, entries, 3000)
	if err != nil {
		t.Fatal(err)
	}
	if len(layers) != 3 {
		t.Fatalf("expected 3 layers, got %d", len(layers))
	}
	if layers[0].Duration != 300 {
		t.Errorf("segment 0 duration = %v, want 300", layers[0].Duration)
	}
	if layers[2].Start != 500 || layers[2].Duration != 2500 {
		t.Errorf("last segment should run to video end: %+v", layers[2])
	}
	for _, l := range layers {
		if l.Z != ZScoreboard {
			t.Errorf("scoreboard layer in wrong band: %d", l.Z)
		}
	}
}

func TestNotificationLayerTiming(t *testing.T) {
	style := DefaultStyle()
	dims := DimensionsFor(ResMedium)

	layer, err := NotificationLayer(NotificationSpec{
		Time:              120,
		Text:              "GOLL!",
		DisplayDuration:   3,
		AnimationDuration: 1.2,
	}, style, dims)
	if err != nil {
		t.Fatal(err)
	}

	if layer.Start != 120 {
		t.Errorf("start = %v, want 120", layer.Start)
	}
	if want := 2*1.2 + 3.0; layer.Duration != want {
		t.Errorf("duration = %v, want %v", layer.Duration, want)
	}
	if layer.Z != ZNotification {
		t.Errorf("wrong z band: %d", layer.Z)
	}

	// Hidden behind the score box at t=0, fully dropped mid-pause.
	base := layer.Position(0)
	wantX := float64(style.XMargin + dims.TeamBoxWidth)
	if base.X != wantX || base.Y != float64(style.YMargin) {
		t.Errorf("base position = %+v", base)
	}
	mid := layer.Position(1.2 + 1.5)
	if mid.Y != float64(style.YMargin+dims.ScoreboardHeight) {
		t.Errorf("pause position = %+v", mid)
	}
	end := layer.Position(layer.Duration)
	if end.Y != float64(style.YMargin) {
		t.Errorf("end position = %+v", end)
	}
}

func TestNotificationDefaults(t *testing.T) {
	style := DefaultStyle()
	dims := DimensionsFor(ResLow)

	layer, err := NotificationLayer(NotificationSpec{Time: 10, Text: "GOAL"}, style, dims)
	if err != nil {
		t.Fatal(err)
	}
	want := 2*style.NotificationAnimationDuration + style.NotificationDisplayDuration
	if layer.Duration != want {
		t.Errorf("default duration = %v, want %v", layer.Duration, want)
	}

	// Background defaults to gold when unset.
	if got := layer.Content.Image.RGBAAt(1, 1); got != style.NotificationBackground {
		t.Errorf("background = %+v, want %+v", got, style.NotificationBackground)
	}
}

func TestLineupLayers(t *testing.T) {
	style := DefaultStyle()
	players := []timeline.Player{
		{Number: 1, Name: "önder özen", Position: "GK"},
		{Number: 9, Name: "süleyman demirel", Position: "ST"},
	}

	layers, err := LineupLayers(LineupSpec{
		Time:              5,
		Team:              TeamInfo{Name: "afka", Accent: color.RGBA{R: 0xA5, B: 0x44, A: 255}},
		Players:           players,
		Director:          "ramazan üçkuyulu",
		DisplayDuration:   6,
		AnimationDuration: 0.4,
		StaggerDelay:      0.15,
	}, style, 1280, 720)
	if err != nil {
		t.Fatal(err)
	}

	// Header + 2 players + director.
	if len(layers) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(layers))
	}

	totalAnim := 3*0.15 + 0.4
	wantDuration := totalAnim + 6 + 0.4
	for i, l := range layers {
		if l.Start != 5 {
			t.Errorf("row %d start = %v, want 5", i, l.Start)
		}
		if diff := l.Duration - wantDuration; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("row %d duration = %v, want %v", i, l.Duration, wantDuration)
		}
		if l.Z != ZLineup {
			t.Errorf("row %d wrong z band: %d", i, l.Z)
		}
	}

	// Rows share one final X and exit together: everything is still at
	// rest mid-hold and every row has left by the end of the window.
	hold := totalAnim + 1.0
	restX := layers[0].Position(hold).X
	for i, l := range layers {
		if got := l.Position(hold).X; got != restX {
			t.Errorf("row %d hold position x = %v, want %v", i, got, restX)
		}
		if got := l.Position(wantDuration).X; got >= 0 {
			t.Errorf("row %d should be off-screen at end, x = %v", i, got)
		}
	}

	// Staggered entrances: row 2 is still waiting off-screen just
	// before its 0.30s delay while row 0 has already landed.
	if got := layers[2].Position(0.29).X; got >= 0 {
		t.Errorf("row 2 moved before its delay: x = %v", got)
	}
	if got := layers[0].Position(0.41).X; got != restX {
		t.Errorf("row 0 should have landed: x = %v, want %v", got, restX)
	}
}

func rectElement(w, h int, c color.RGBA) media.Element {
	return media.DrawRect(w, h, c)
}

func TestQRBadgeLayer(t *testing.T) {
	style := DefaultStyle()
	layer, err := QRBadgeLayer("https://example.com/highlights", 160, 1920, 1080, 30, 10, style)
	if err != nil {
		t.Fatal(err)
	}

	if layer.Start != 30 || layer.Duration != 10 {
		t.Errorf("unexpected window: %+v", layer)
	}
	if layer.X+float64(layer.Content.Width) > 1920 || layer.Y+float64(layer.Content.Height) > 1080 {
		t.Errorf("badge out of frame: x=%v y=%v", layer.X, layer.Y)
	}
	if layer.Opacity(0) != 0 {
		t.Errorf("should start invisible, got %v", layer.Opacity(0))
	}
	if layer.Opacity(5) != 1 {
		t.Errorf("should be opaque mid-window, got %v", layer.Opacity(5))
	}
	if got := layer.Opacity(10); got > 1e-9 {
		t.Errorf("should end invisible, got %v", got)
	}
}

func TestRenderFrameLayering(t *testing.T) {
	red := Layer{
		Name: "under", Start: 0, Duration: 10, Z: ZLineup,
		Content: rectElement(4, 4, color.RGBA{R: 255, A: 255}),
	}
	blue := Layer{
		Name: "over", Start: 0, Duration: 10, Z: ZScoreboard,
		Content: rectElement(4, 4, color.RGBA{B: 255, A: 255}),
	}

	layers := []Layer{blue, red}
	SortLayers(layers)

	canvas := image.NewRGBA(image.Rect(0, 0, 8, 8))
	RenderFrame(canvas, layers, 5)

	if got := canvas.RGBAAt(1, 1); got.B != 255 {
		t.Errorf("higher z band should win: %+v", got)
	}

	// Outside every window the canvas stays clear.
	RenderFrame(canvas, layers, 50)
	if got := canvas.RGBAAt(1, 1); got.A != 0 {
		t.Errorf("canvas should be clear outside windows: %+v", got)
	}
}
