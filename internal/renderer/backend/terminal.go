package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Terminal implements Backend using tcell for terminal output.
type Terminal struct {
	screen tcell.Screen

	mu          sync.Mutex
	lastButtons tcell.ButtonMask
}

// NewTerminal creates a new terminal backend.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// Init prepares the terminal and enables mouse reporting, which the drawing
// surface depends on.
func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnableMouse()
	return nil
}

func (t *Terminal) Fini() {
	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

func (t *Terminal) SetContent(x, y int, r rune, style Style) {
	t.screen.SetContent(x, y, r, nil, convertStyle(style))
}

func (t *Terminal) Clear() {
	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.screen.Show()
}

// PollEvent blocks for the next terminal event and converts it. Unknown tcell
// events come back as EventNone; callers skip those.
func (t *Terminal) PollEvent() Event {
	switch ev := t.screen.PollEvent().(type) {
	case *tcell.EventKey:
		return convertKeyEvent(ev)
	case *tcell.EventMouse:
		return t.convertMouseEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		return Event{Type: EventResize, Width: w, Height: h, When: ev.When()}
	case *tcell.EventInterrupt:
		return Event{Type: EventQuit}
	default:
		return Event{Type: EventNone}
	}
}

func (t *Terminal) PostQuit() {
	t.screen.PostEventWait(tcell.NewEventInterrupt(nil))
}

func convertKeyEvent(ev *tcell.EventKey) Event {
	out := Event{Type: EventKey, When: ev.When()}
	switch ev.Key() {
	case tcell.KeyRune:
		out.Key = KeyRune
		out.Rune = ev.Rune()
	case tcell.KeyEscape:
		out.Key = KeyEscape
	case tcell.KeyEnter:
		out.Key = KeyEnter
	case tcell.KeyCtrlC:
		out.Key = KeyCtrlC
	default:
		out.Key = KeyNone
	}
	return out
}

// convertMouseEvent reports button presses as transitions: tcell delivers the
// full button state on every mouse event, so a press is a button present now
// that was absent on the previous event.
func (t *Terminal) convertMouseEvent(ev *tcell.EventMouse) Event {
	t.mu.Lock()
	defer t.mu.Unlock()

	x, y := ev.Position()
	buttons := ev.Buttons()
	pressed := buttons &^ t.lastButtons
	t.lastButtons = buttons

	out := Event{Type: EventMouse, MouseX: x, MouseY: y, When: ev.When()}
	switch {
	case pressed&tcell.ButtonPrimary != 0:
		out.Button = ButtonPrimary
	case pressed&tcell.ButtonSecondary != 0:
		out.Button = ButtonSecondary
	default:
		out.Button = ButtonNone
	}
	return out
}

func convertStyle(s Style) tcell.Style {
	style := tcell.StyleDefault
	if s.Foreground != ColorDefault {
		style = style.Foreground(tcell.NewHexColor(int32(s.Foreground)))
	}
	if s.Background != ColorDefault {
		style = style.Background(tcell.NewHexColor(int32(s.Background)))
	}
	if s.Bold {
		style = style.Bold(true)
	}
	return style
}
