// Package roster imports team sheets from PDF documents. Clubs hand
// over starting lineups as printed sheets, this pulls the text out and
// turns recognizable lines into lineup entries.
package roster

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/gen2brain/go-fitz"

	"github.com/orhanbalci/scorecast/internal/timeline"
)

// Sheet is the parsed content of one team sheet.
type Sheet struct {
	TeamName string
	Players  []timeline.Player
	Director string
}

// playerLine matches "7 Şükrü Karadirek (CM)" with an optional
// position suffix.
var playerLine = regexp.MustCompile(`^(\d{1,2})\s+(.+?)(?:\s+\(([A-Z]{1,3})\))?$`)

// directorLine matches "TD Ramazan Üçkuyulu".
var directorLine = regexp.MustCompile(`^TD\s+(.+)$`)

// ReadSheet extracts a team sheet from a PDF. All pages are scanned,
// the first non-matching leading line becomes the team name.
func ReadSheet(path string) (*Sheet, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open team sheet %s: %w", path, err)
	}
	defer doc.Close()

	var lines []string
	for page := 0; page < doc.NumPage(); page++ {
		text, err := doc.Text(page)
		if err != nil {
			return nil, fmt.Errorf("failed to read page %d of %s: %w", page, path, err)
		}
		lines = append(lines, strings.Split(text, "\n")...)
	}

	sheet, err := ParseLines(lines)
	if err != nil {
		return nil, fmt.Errorf("team sheet %s: %w", path, err)
	}
	return sheet, nil
}

// ParseLines builds a sheet from raw text lines. Lines that match
// neither a player nor a director entry before any player has been
// seen are treated as the team name, later ones are ignored.
func ParseLines(lines []string) (*Sheet, error) {
	sheet := &Sheet{}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if m := directorLine.FindStringSubmatch(line); m != nil {
			sheet.Director = strings.TrimSpace(m[1])
			continue
		}

		if m := playerLine.FindStringSubmatch(line); m != nil {
			number, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			position := m[3]
			if position != "" && !timeline.IsValidPosition(position) {
				return nil, fmt.Errorf("player %s has unknown position %q", m[2], position)
			}
			sheet.Players = append(sheet.Players, timeline.Player{
				Number:   number,
				Name:     strings.TrimSpace(m[2]),
				Position: position,
			})
			continue
		}

		if sheet.TeamName == "" && len(sheet.Players) == 0 {
			sheet.TeamName = line
		}
	}

	if len(sheet.Players) == 0 {
		return nil, fmt.Errorf("no player entries found")
	}
	return sheet, nil
}

// Lineup converts a sheet into a match file lineup for the given side
// and kickoff display time.
func (s *Sheet) Lineup(team int, at float64) timeline.Lineup {
	return timeline.Lineup{
		Time:     timeline.Clock{Seconds: at},
		Team:     team,
		Players:  s.Players,
		Director: s.Director,
	}
}
