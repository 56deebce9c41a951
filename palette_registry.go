package neatjson

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pkt.systems/neatjson/internal/palette"
)

const (
	paletteDefaultName = "default"
	paletteNoneName    = "none"
)

var paletteRegistry = map[string]palette.Palette{
	paletteDefaultName: palette.OneDark,
	"one-dark":         palette.OneDark,
	"dracula":          palette.Dracula,
	"gruvbox-light":    palette.GruvboxLight,
}

// PaletteNames returns the sorted list of palette names, including "none".
func PaletteNames() []string {
	names := make([]string, 0, len(paletteRegistry)+1)
	for name := range paletteRegistry {
		names = append(names, name)
	}
	names = append(names, paletteNoneName)
	sort.Strings(names)
	return names
}

// ResolvePalette maps a palette name to styles bound to the renderer. An
// empty name selects the default scheme; "none" disables coloring. Unknown
// names are rejected with the list of valid ones.
func ResolvePalette(name string, renderer *lipgloss.Renderer) (ColorPalette, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = paletteDefaultName
	}
	if key == paletteNoneName {
		return NoColorPalette(renderer), nil
	}
	p, ok := paletteRegistry[key]
	if !ok {
		return ColorPalette{}, fmt.Errorf("unknown palette %q (use one of: %s)", name, strings.Join(PaletteNames(), ", "))
	}
	return styledPalette(renderer, p), nil
}
