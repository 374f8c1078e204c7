package timeline

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Match is the on-disk description of everything to overlay: the two
// teams, the goals, and any custom notifications or lineup boards.
type Match struct {
	Version       string         `yaml:"version"`
	Team1         Team           `yaml:"team1"`
	Team2         Team           `yaml:"team2"`
	Goals         []Goal         `yaml:"goals"`
	Notifications []Notification `yaml:"notifications,omitempty"`
	Lineups       []Lineup       `yaml:"lineups,omitempty"`
}

// Team names a side and its accent color (hex).
type Team struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

// Goal is a scored goal at a clock time.
type Goal struct {
	Time Clock `yaml:"time"`
	Team int   `yaml:"team"`
}

// Notification is a custom banner; zero durations fall back to the
// style defaults.
type Notification struct {
	Time              Clock   `yaml:"time"`
	Text              string  `yaml:"text"`
	Color             string  `yaml:"color,omitempty"`
	TextColor         string  `yaml:"text_color,omitempty"`
	DisplayDuration   float64 `yaml:"display_duration,omitempty"`
	AnimationDuration float64 `yaml:"animation_duration,omitempty"`
}

// Player is one lineup row.
type Player struct {
	Number   int    `yaml:"number"`
	Name     string `yaml:"name"`
	Position string `yaml:"position,omitempty"`
}

// Lineup is a team sheet shown at a clock time.
type Lineup struct {
	Time              Clock    `yaml:"time"`
	Team              int      `yaml:"team"`
	Players           []Player `yaml:"players"`
	Director          string   `yaml:"director"`
	DisplayDuration   float64  `yaml:"display_duration,omitempty"`
	AnimationDuration float64  `yaml:"animation_duration,omitempty"`
	StaggerDelay      float64  `yaml:"stagger_delay,omitempty"`
}

// Clock is a point in match time. It unmarshals from "MM:SS",
// "HH:MM:SS" or plain seconds, and marshals back as HH:MM:SS.
type Clock struct {
	Seconds float64
}

func (c *Clock) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("time must be a scalar, got %v", node.Tag)
	}
	sec, err := ParseTimeString(node.Value)
	if err != nil {
		return err
	}
	c.Seconds = sec
	return nil
}

func (c Clock) MarshalYAML() (any, error) {
	return FormatTime(c.Seconds), nil
}

// ReadMatch reads and validates a match file.
func ReadMatch(path string) (*Match, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var match Match
	if err := yaml.Unmarshal(data, &match); err != nil {
		return nil, fmt.Errorf("failed to parse match file %s: %w", path, err)
	}

	if err := match.Validate(); err != nil {
		return nil, err
	}

	return &match, nil
}

// WriteMatch writes a match file.
func WriteMatch(match *Match, path string) error {
	data, err := yaml.Marshal(match)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate fails fast on anything the renderer could not act on.
func (m *Match) Validate() error {
	for i, g := range m.Goals {
		if g.Team != 1 && g.Team != 2 {
			return fmt.Errorf("goal %d: team must be 1 or 2, got %d", i+1, g.Team)
		}
	}
	for i, l := range m.Lineups {
		if l.Team != 1 && l.Team != 2 {
			return fmt.Errorf("lineup %d: team must be 1 or 2, got %d", i+1, l.Team)
		}
		for _, p := range l.Players {
			if p.Position != "" && !IsValidPosition(p.Position) {
				return fmt.Errorf("lineup %d: unknown position %q for %s", i+1, p.Position, p.Name)
			}
		}
	}
	return nil
}

// GoalEvents converts the goal list to timeline events.
func (m *Match) GoalEvents() []GoalEvent {
	events := make([]GoalEvent, len(m.Goals))
	for i, g := range m.Goals {
		events[i] = GoalEvent{Seconds: g.Time.Seconds, Team: g.Team}
	}
	return events
}

// TeamFor returns the team record for side 1 or 2.
func (m *Match) TeamFor(side int) Team {
	if side == 1 {
		return m.Team1
	}
	return m.Team2
}
