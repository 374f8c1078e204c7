package overlay

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

var namedColors = map[string]color.RGBA{
	"white": {R: 255, G: 255, B: 255, A: 255},
	"black": {A: 255},
	"red":   {R: 255, A: 255},
	"green": {G: 128, A: 255},
	"blue":  {B: 255, A: 255},
	"gold":  {R: 255, G: 215, A: 255},
}

// ParseColor accepts "#RRGGBB" hex or a small set of CSS names.
func ParseColor(s string) (color.RGBA, error) {
	if c, ok := namedColors[strings.ToLower(strings.TrimSpace(s))]; ok {
		return c, nil
	}

	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: expected #RRGGBB or a named color", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}, nil
}

// ParseColorDefault parses a color, falling back when the value is
// empty.
func ParseColorDefault(s string, fallback color.RGBA) (color.RGBA, error) {
	if strings.TrimSpace(s) == "" {
		return fallback, nil
	}
	return ParseColor(s)
}

// FormatName renders a player name the lineup way: given names in
// title case, surname in upper case. "john doe" becomes "John DOE",
// a single word is treated as a surname.
func FormatName(full string) string {
	parts := strings.Fields(full)
	switch len(parts) {
	case 0:
		return full
	case 1:
		return strings.ToUpper(parts[0])
	}

	formatted := make([]string, 0, len(parts))
	for _, p := range parts[:len(parts)-1] {
		formatted = append(formatted, titleCase(p))
	}
	formatted = append(formatted, strings.ToUpper(parts[len(parts)-1]))
	return strings.Join(formatted, " ")
}

func titleCase(word string) string {
	runes := []rune(strings.ToLower(word))
	if len(runes) == 0 {
		return word
	}
	runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
	return string(runes)
}
