package notifications

import (
	"fmt"
	"io"
	"sync"

	"github.com/thenoetrevino/shsenroll/internal/config"
	"github.com/thenoetrevino/shsenroll/internal/services/student"
)

// Terminal writes notification banners to a writer, normally stderr.
// It is safe for concurrent use.
type Terminal struct {
	mu      sync.Mutex
	w       io.Writer
	colors  config.ColorScheme
	inline  bool
	muted   bool
	emitted int
}

// NewTerminal creates a notifier writing banners in the given colors
func NewTerminal(w io.Writer, colors config.ColorScheme) *Terminal {
	return &Terminal{w: w, colors: colors}
}

// Notify implements student.Notifier
func (t *Terminal) Notify(kind student.Kind, title, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.emitted++
	if t.muted {
		return
	}

	if t.inline {
		fmt.Fprintln(t.w, RenderInline(t.colors, kind, title, message))
		return
	}
	fmt.Fprintln(t.w, Render(t.colors, kind, title, message))
}

// SetMuted suppresses output while still counting notifications.
// Machine readable output modes mute the terminal.
func (t *Terminal) SetMuted(muted bool) {
	t.mu.Lock()
	t.muted = muted
	t.mu.Unlock()
}

// SetInline switches between banners and single line output
func (t *Terminal) SetInline(inline bool) {
	t.mu.Lock()
	t.inline = inline
	t.mu.Unlock()
}

// Reset clears the emitted count
func (t *Terminal) Reset() {
	t.mu.Lock()
	t.emitted = 0
	t.mu.Unlock()
}

// Emitted reports how many notifications arrived since the last Reset
func (t *Terminal) Emitted() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.emitted
}

var _ student.Notifier = (*Terminal)(nil)
