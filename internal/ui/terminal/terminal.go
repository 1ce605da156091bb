// Package terminal implements the ui contract on a tcell screen: raw mode
// and alternate screen lifecycle, bounded input polling, key decoding through
// the keymap, and the render projection of the editor state.
package terminal

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/quill/internal/editor"
	"github.com/dshills/quill/internal/keymap"
	"github.com/dshills/quill/internal/ui"
)

// defaultPollTimeout bounds PollInput so the driver loop stays responsive to
// cooperative cancellation without busy-spinning.
const defaultPollTimeout = 250 * time.Millisecond

// Terminal is a tcell-backed front end. New acquires the terminal (raw mode,
// alternate screen); Finish releases it.
type Terminal struct {
	screen  tcell.Screen
	keymap  *keymap.Keymap
	events  chan tcell.Event
	quit    chan struct{}
	timeout time.Duration

	mu       sync.Mutex
	finished bool
}

// Option configures a Terminal.
type Option func(*Terminal)

// WithScreen injects a screen, letting tests run against
// tcell.NewSimulationScreen.
func WithScreen(s tcell.Screen) Option {
	return func(t *Terminal) { t.screen = s }
}

// WithPollTimeout overrides the input poll timeout.
func WithPollTimeout(d time.Duration) Option {
	return func(t *Terminal) { t.timeout = d }
}

// New acquires the terminal and starts the event pump. The caller must
// arrange for Finish to run on every exit path and OnPanic during unwind.
func New(km *keymap.Keymap, opts ...Option) (*Terminal, error) {
	t := &Terminal{keymap: km, timeout: defaultPollTimeout}
	for _, opt := range opts {
		opt(t)
	}
	if t.keymap == nil {
		t.keymap = keymap.Default()
	}
	if t.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, &ui.InitError{Component: "screen", Err: err}
		}
		t.screen = screen
	}
	if err := t.screen.Init(); err != nil {
		return nil, &ui.InitError{Component: "screen", Err: err}
	}

	t.events = make(chan tcell.Event, 16)
	t.quit = make(chan struct{})
	go t.screen.ChannelEvents(t.events, t.quit)

	return t, nil
}

// PollInput waits up to the poll timeout for an event and decodes it.
// Timeouts report the no-op input.
func (t *Terminal) PollInput() (editor.Input, error) {
	timer := time.NewTimer(t.timeout)
	defer timer.Stop()

	select {
	case ev, ok := <-t.events:
		if !ok {
			// Event pump stopped; the loop is shutting down.
			return editor.None(), nil
		}
		return t.decode(ev)
	case <-timer.C:
		return editor.None(), nil
	}
}

// decode classifies a terminal event into an editor input.
func (t *Terminal) decode(ev tcell.Event) (editor.Input, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.decodeKey(ev)
	case *tcell.EventResize:
		t.screen.Sync()
		return editor.None(), nil
	default:
		return editor.None(), &ui.UnrecognizedInputError{Event: fmt.Sprintf("%T", ev)}
	}
}

// decodeKey resolves a key event through the keymap. Printable runes with no
// binding insert themselves; everything else unclassified is a hard failure.
func (t *Terminal) decodeKey(ev *tcell.EventKey) (editor.Input, error) {
	chord, r, printable := chordFor(ev)
	if chord != "" {
		if intent, ok := t.keymap.Resolve(chord); ok {
			if in, ok := keymap.InputForIntent(intent); ok {
				return in, nil
			}
		}
	}
	if printable {
		return editor.InsertChar(r), nil
	}
	return editor.None(), &ui.UnrecognizedInputError{Event: ev.Name()}
}

// Finish stops the event pump and restores the terminal. Extra calls are
// no-ops.
func (t *Terminal) Finish() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.finished {
		return nil
	}
	t.finished = true
	close(t.quit)
	t.screen.Fini()
	return nil
}

// OnPanic restores the terminal during unwind. Fini is synchronous and safe
// to repeat, so no coordination with Finish is needed here.
func (t *Terminal) OnPanic() {
	t.screen.Fini()
}
