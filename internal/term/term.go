// Package term presents frames on a terminal.
package term

import (
	"bufio"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/gogpu/termcube"
)

// Terminal writes frames to an ANSI terminal. Each frame is written with
// a single flush: clear screen, cursor home, then the grid.
type Terminal struct {
	w   *bufio.Writer
	out *termenv.Output
	tty bool
}

// New creates a Terminal writing to w. When w is a terminal, Start switches
// to the alternate screen and hides the cursor.
func New(w io.Writer) *Terminal {
	bw := bufio.NewWriter(w)
	return &Terminal{
		w:   bw,
		out: termenv.NewOutput(bw, termenv.WithProfile(termenv.TrueColor)),
		tty: IsTerminal(w),
	}
}

// IsTerminal reports whether w is a terminal device.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Start prepares the terminal for animation.
func (t *Terminal) Start() error {
	if t.tty {
		t.out.AltScreen()
		t.out.HideCursor()
	}
	termcube.Logger().Debug("term: start", "tty", t.tty)
	return t.w.Flush()
}

// Present implements scene.Sink.
func (t *Terminal) Present(s *termcube.Screen) error {
	t.out.ClearScreen()
	if err := s.Render(t.w); err != nil {
		return err
	}
	return t.w.Flush()
}

// Stop restores the cursor and the main screen.
func (t *Terminal) Stop() error {
	if t.tty {
		t.out.ShowCursor()
		t.out.ExitAltScreen()
	}
	termcube.Logger().Debug("term: stop")
	return t.w.Flush()
}
