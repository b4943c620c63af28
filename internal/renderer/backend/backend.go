// Package backend provides the terminal abstraction for the renderer.
package backend

import "time"

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	EventQuit
)

// Key represents a keyboard key. Printable characters use KeyRune with the
// Rune field set.
type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyEscape
	KeyEnter
	KeyCtrlC
)

// MouseButton represents a mouse button involved in an event.
type MouseButton int

const (
	ButtonNone MouseButton = iota
	ButtonPrimary
	ButtonSecondary
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields
	Key  Key
	Rune rune

	// Mouse event fields. Button is ButtonNone for pure motion.
	MouseX, MouseY int
	Button         MouseButton

	// Resize event fields
	Width, Height int

	// When is the event timestamp, used for click sequencing.
	When time.Time
}

// Color is a 24-bit RGB color. ColorDefault selects the terminal default.
type Color int32

// ColorDefault selects the terminal's default color.
const ColorDefault Color = -1

// RGB constructs a color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color(int32(r)<<16 | int32(g)<<8 | int32(b))
}

// Style describes cell appearance.
type Style struct {
	Foreground Color
	Background Color
	Bold       bool
}

// DefaultStyle uses the terminal's own colors.
func DefaultStyle() Style {
	return Style{Foreground: ColorDefault, Background: ColorDefault}
}

// Backend abstracts the terminal so the renderer and the application loop can
// be tested against an in-memory implementation.
type Backend interface {
	// Init prepares the terminal for drawing and input.
	Init() error

	// Fini restores the terminal to its previous state.
	Fini()

	// Size returns the terminal dimensions in cells.
	Size() (width, height int)

	// SetContent places a rune at the given cell.
	SetContent(x, y int, r rune, style Style)

	// Clear erases the pending frame.
	Clear()

	// Show makes the pending frame visible.
	Show()

	// PollEvent blocks until the next event is available.
	PollEvent() Event

	// PostQuit wakes PollEvent with an EventQuit, unblocking the event
	// loop for shutdown.
	PostQuit()
}
