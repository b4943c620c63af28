package renderer

import "github.com/dshills/polysketch/internal/renderer/backend"

// vertexRune marks polyline vertices.
const vertexRune = '+'

// Renderer rasterizes scenes onto a backend.
type Renderer struct {
	backend backend.Backend
	theme   Theme
}

// New creates a renderer for the given backend.
func New(b backend.Backend, theme Theme) *Renderer {
	return &Renderer{backend: b, theme: theme}
}

// Draw rasterizes the scene and makes the frame visible. Segments draw first,
// then vertices on top of them, then the toolbar and status line over
// whatever geometry reaches those rows.
func (r *Renderer) Draw(scene Scene) {
	r.backend.Clear()

	for _, seg := range scene.Segments {
		style := r.theme.styleFor(seg.Kind)
		for _, c := range lineCells(seg.From, seg.To) {
			r.setClipped(c.x, c.y, c.r, style, scene)
		}
	}

	for _, v := range scene.Vertices {
		style := r.theme.styleFor(v.Kind)
		style.Bold = true
		r.setClipped(round(v.At.X), round(v.At.Y), vertexRune, style, scene)
	}

	for _, b := range scene.Buttons {
		r.writeString(b.Rect.X, b.Rect.Y, b.Label, r.theme.Toolbar)
	}
	if scene.Height > 1 {
		r.writeString(0, scene.Height-1, scene.Status, r.theme.Status)
	}

	r.backend.Show()
}

func (r *Renderer) setClipped(x, y int, ch rune, style backend.Style, scene Scene) {
	if x < 0 || x >= scene.Width || y < 0 || y >= scene.Height {
		return
	}
	r.backend.SetContent(x, y, ch, style)
}

func (r *Renderer) writeString(x, y int, s string, style backend.Style) {
	for i, ch := range s {
		r.backend.SetContent(x+i, y, ch, style)
	}
}
