package renderer

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/polysketch/internal/renderer/backend"
)

// Theme maps scene element kinds to backend styles.
type Theme struct {
	Finished backend.Style
	Current  backend.Style
	Preview  backend.Style
	Toolbar  backend.Style
	Status   backend.Style
}

// DefaultTheme uses terminal default colors except for the in-progress and
// preview geometry, which need to stand apart from finished work.
func DefaultTheme() Theme {
	return Theme{
		Finished: backend.DefaultStyle(),
		Current:  backend.Style{Foreground: backend.RGB(0xff, 0x5f, 0x5f), Background: backend.ColorDefault},
		Preview:  backend.Style{Foreground: backend.RGB(0x80, 0x80, 0x80), Background: backend.ColorDefault},
		Toolbar:  backend.Style{Foreground: backend.ColorDefault, Background: backend.ColorDefault, Bold: true},
		Status:   backend.DefaultStyle(),
	}
}

// ThemeFromHex builds a theme from hex color strings such as "#ff5f5f".
// An empty string keeps the terminal default for that element.
func ThemeFromHex(finished, current, preview, toolbar, status string) (Theme, error) {
	theme := DefaultTheme()

	entries := []struct {
		name  string
		hex   string
		style *backend.Style
	}{
		{"finished", finished, &theme.Finished},
		{"current", current, &theme.Current},
		{"preview", preview, &theme.Preview},
		{"toolbar", toolbar, &theme.Toolbar},
		{"status", status, &theme.Status},
	}

	for _, e := range entries {
		if e.hex == "" {
			continue
		}
		c, err := colorful.Hex(e.hex)
		if err != nil {
			return Theme{}, fmt.Errorf("parsing %s color %q: %w", e.name, e.hex, err)
		}
		r, g, b := c.RGB255()
		e.style.Foreground = backend.RGB(r, g, b)
	}

	return theme, nil
}

// styleFor returns the style for a segment kind.
func (t Theme) styleFor(kind SegmentKind) backend.Style {
	switch kind {
	case SegmentCurrent:
		return t.Current
	case SegmentPreview:
		return t.Preview
	default:
		return t.Finished
	}
}
