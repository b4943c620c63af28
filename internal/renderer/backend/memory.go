package backend

import "sync"

// Memory is an in-memory Backend for tests. Cells written with SetContent
// become visible to accessors after Show, mirroring a double-buffered
// terminal.
type Memory struct {
	mu     sync.Mutex
	width  int
	height int
	back   [][]rune
	styles [][]Style
	shown  [][]rune
	shows  int

	events chan Event
}

// NewMemory creates a memory backend with the given dimensions.
func NewMemory(width, height int) *Memory {
	m := &Memory{
		width:  width,
		height: height,
		events: make(chan Event, 64),
	}
	m.back = newGrid(width, height)
	m.shown = newGrid(width, height)
	m.styles = make([][]Style, height)
	for y := range m.styles {
		m.styles[y] = make([]Style, width)
	}
	return m
}

func newGrid(width, height int) [][]rune {
	g := make([][]rune, height)
	for y := range g {
		g[y] = make([]rune, width)
		for x := range g[y] {
			g[y][x] = ' '
		}
	}
	return g
}

func (m *Memory) Init() error { return nil }
func (m *Memory) Fini()       {}

func (m *Memory) Size() (int, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.width, m.height
}

func (m *Memory) SetContent(x, y int, r rune, style Style) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.back[y][x] = r
	m.styles[y][x] = style
}

func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.back = newGrid(m.width, m.height)
}

func (m *Memory) Show() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for y := range m.back {
		copy(m.shown[y], m.back[y])
	}
	m.shows++
}

func (m *Memory) PollEvent() Event {
	return <-m.events
}

func (m *Memory) PostQuit() {
	m.events <- Event{Type: EventQuit}
}

// Post queues an event for PollEvent.
func (m *Memory) Post(ev Event) {
	m.events <- ev
}

// Rune returns the visible rune at the given cell.
func (m *Memory) Rune(x, y int) rune {
	m.mu.Lock()
	defer m.mu.Unlock()
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.shown[y][x]
}

// StyleAt returns the style last written to the given cell.
func (m *Memory) StyleAt(x, y int) Style {
	m.mu.Lock()
	defer m.mu.Unlock()
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return Style{}
	}
	return m.styles[y][x]
}

// Row returns the visible row as a string.
func (m *Memory) Row(y int) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if y < 0 || y >= m.height {
		return ""
	}
	return string(m.shown[y])
}

// ShowCount returns how many frames have been made visible.
func (m *Memory) ShowCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.shows
}
