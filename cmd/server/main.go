// wireframe-crawler-server serves the maze over SSH. Every connection gets
// its own single-player expedition on a private copy of the floors. Build:
//
//	go build -o wireframe-crawler-server ./cmd/server
//
// Usage:
//
//	./wireframe-crawler-server [--port 2222] [--key server_host_key]
//
// Connect:
//
//	ssh -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"

	"wireframe-crawler/internal/game"
	internalssh "wireframe-crawler/internal/ssh"
)

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	flag.Parse()

	signer := loadOrCreateHostKey(*keyFile)

	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Accept any authentication — appropriate for a private home server.
		// Add gossh.PublicKeyAuth or gossh.PasswordAuth options for real auth.
		HostSigners: []gossh.Signer{signer},
	}

	log.Printf("wireframe-crawler SSH server listening on :%d", *port)
	log.Printf("Connect with:  ssh -p %d -o StrictHostKeyChecking=no localhost", *port)
	log.Fatal(srv.ListenAndServe())
}

// handleSession runs one expedition for one connection, blocking until the
// player quits or disconnects.
func handleSession(s gossh.Session) {
	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}

	termName := sessionTerm(s.Environ())

	// Create a tcell screen backed by this SSH session. TERM must be set in
	// the process environment before NewTerminfoScreenFromTty.
	tty := internalssh.NewTty(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", termName)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}

	// Each session plays on its own copy of the floors: door state, explored
	// tiles, and emptied chests are per-player.
	levels, err := game.LoadLevels()
	if err != nil {
		screen.Fini()
		fmt.Fprintf(s, "Level load failed: %v\n", err)
		return
	}
	g, err := game.NewWithScreen(screen, levels)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(s, "Game setup failed: %v\n", err)
		return
	}
	g.Run()
}

// termMu serializes os.Setenv("TERM") across concurrent session setups.
var termMu sync.Mutex

// allowedTerms whitelists the TERM values a client may request. Anything
// else falls back to xterm-256color rather than feeding arbitrary strings
// into the terminfo lookup.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode-256color": true,
}

// sessionTerm extracts the client's TERM from the session environment,
// filtered through the whitelist.
func sessionTerm(environ []string) string {
	for _, env := range environ {
		if strings.HasPrefix(env, "TERM=") {
			if t := env[5:]; allowedTerms[t] {
				return t
			}
			break
		}
	}
	return "xterm-256color"
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string) gossh.Signer {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Printf("Loaded host key from %s", path)
			return signer
		}
	}

	log.Printf("Generating new ed25519 host key → %s", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		log.Fatalf("generate host key: %v", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		log.Fatalf("create signer: %v", err)
	}
	// Persist for next run (non-fatal if it fails).
	if pemBlock, err := xssh.MarshalPrivateKey(key, "wireframe-crawler server"); err == nil {
		_ = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0600)
	}
	return signer
}
