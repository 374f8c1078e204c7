package roster

import (
	"testing"

	"github.com/orhanbalci/scorecast/internal/timeline"
)

func TestParseLines(t *testing.T) {
	lines := []string{
		"AFKA",
		"",
		"1 Önder Özen (GK)",
		"7 Şükrü Karadirek (CM)",
		"9 Süleyman Demirel (ST)",
		"10 Yusuf Uyar",
		"TD Ramazan Üçkuyulu",
	}

	sheet, err := ParseLines(lines)
	if err != nil {
		t.Fatal(err)
	}

	if sheet.TeamName != "AFKA" {
		t.Errorf("team name = %q", sheet.TeamName)
	}
	if sheet.Director != "Ramazan Üçkuyulu" {
		t.Errorf("director = %q", sheet.Director)
	}
	if len(sheet.Players) != 4 {
		t.Fatalf("players = %d, want 4", len(sheet.Players))
	}

	first := sheet.Players[0]
	if first.Number != 1 || first.Name != "Önder Özen" || first.Position != "GK" {
		t.Errorf("first player = %+v", first)
	}
	// Position is optional.
	if sheet.Players[3].Position != "" {
		t.Errorf("player without position parsed as %+v", sheet.Players[3])
	}
}

func TestParseLinesUnknownPosition(t *testing.T) {
	lines := []string{"1 Some Player (QB)"}
	if _, err := ParseLines(lines); err == nil {
		t.Fatal("expected error for unknown position")
	}
}

func TestParseLinesEmptySheet(t *testing.T) {
	if _, err := ParseLines([]string{"AFKA", "no players here"}); err == nil {
		t.Fatal("expected error when no players found")
	}
}

func TestSheetLineup(t *testing.T) {
	sheet := &Sheet{
		TeamName: "AFKA",
		Players:  []timeline.Player{{Number: 1, Name: "Önder Özen", Position: "GK"}},
		Director: "Ramazan Üçkuyulu",
	}

	lineup := sheet.Lineup(1, 5)
	if lineup.Team != 1 || lineup.Time.Seconds != 5 {
		t.Errorf("lineup scheduling = %+v", lineup)
	}
	if len(lineup.Players) != 1 || lineup.Director != "Ramazan Üçkuyulu" {
		t.Errorf("lineup content = %+v", lineup)
	}
}
