// Package ssh adapts gliderlabs SSH sessions into tcell terminals so the
// crawl can be served remotely. Each connection gets its own Tty and screen.
package ssh

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// Tty implements tcell.Tty on top of a gliderlabs SSH session: reads come
// from the client's keyboard, writes go back down the channel, and window
// changes arrive on the session's resize channel.
type Tty struct {
	session gossh.Session
	mu      sync.Mutex
	window  gossh.Window
	winCh   <-chan gossh.Window
	cb      func() // resize callback registered by tcell
}

// NewTty wraps an SSH session as a tcell Tty. pty carries the initial window
// size; winCh delivers every later resize.
func NewTty(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *Tty {
	return &Tty{
		session: s,
		window:  pty.Window,
		winCh:   winCh,
	}
}

// Read pulls raw input bytes from the client.
func (t *Tty) Read(b []byte) (int, error) { return t.session.Read(b) }

// Write sends rendered output to the client.
func (t *Tty) Write(b []byte) (int, error) { return t.session.Write(b) }

// Close closes the SSH channel.
func (t *Tty) Close() error { return t.session.Close() }

// Start is a no-op, the SSH channel is already open.
func (t *Tty) Start() error { return nil }

// Stop is a no-op, the channel belongs to the server handler goroutine.
func (t *Tty) Stop() error { return nil }

// Drain is a no-op, SSH writes are not buffered here.
func (t *Tty) Drain() error { return nil }

// WindowSize reports the client terminal's current dimensions.
func (t *Tty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers the callback tcell wants invoked on window changes
// and starts draining the resize channel for the life of the session.
func (t *Tty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.cb = cb
	t.mu.Unlock()

	go func() {
		for win := range t.winCh {
			t.mu.Lock()
			t.window = win
			localCb := t.cb
			t.mu.Unlock()
			if localCb != nil {
				localCb()
			}
		}
	}()
}
