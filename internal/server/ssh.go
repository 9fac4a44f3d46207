package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync/atomic"
	"unicode/utf8"

	"github.com/gliderlabs/ssh"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"dungeon-delve/internal/game"
	"dungeon-delve/internal/render"
)

// SSHServer wraps the SSH listener and game loop integration.
type SSHServer struct {
	gameLoop *game.GameLoop
	addr     string
	hostKey  string
}

// NewSSHServer creates a new SSH server bound to the given address.
func NewSSHServer(addr string, hostKey string, gl *game.GameLoop) *SSHServer {
	return &SSHServer{
		gameLoop: gl,
		addr:     addr,
		hostKey:  hostKey,
	}
}

// Start listens for SSH connections until ctx is cancelled.
func (s *SSHServer) Start(ctx context.Context) error {
	server := &ssh.Server{
		Addr:    s.addr,
		Handler: s.handleSession,
	}

	if err := server.SetOption(ssh.HostKeyFile(s.hostKey)); err != nil {
		return fmt.Errorf("set host key: %w", err)
	}

	go func() {
		<-ctx.Done()
		server.Close()
	}()

	log.Printf("SSH server listening on %s", s.addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}
	return nil
}

var titleCase = cases.Title(language.English)

// displayName normalises an SSH username into a player name.
func displayName(user string) string {
	if user == "" {
		return "Anonymous"
	}
	return titleCase.String(user)
}

func (s *SSHServer) handleSession(sess ssh.Session) {
	_, winCh, ok := sess.Pty()
	if !ok {
		fmt.Fprintln(sess, "Error: PTY required. Use: ssh -t ...")
		return
	}

	username := displayName(sess.User())

	// Register with game loop (username = identity)
	playerID, renderCh, err := s.gameLoop.AddPlayer(username)
	if err != nil {
		log.Printf("Player %s rejected: %v", username, err)
		fmt.Fprintln(sess, "Could not start an expedition, try again later.")
		return
	}

	log.Printf("Player connected: %s (%s)", username, playerID)
	defer func() {
		s.gameLoop.RemovePlayer(playerID)
		log.Printf("Player disconnected: %s (%s)", username, playerID)
	}()

	io.WriteString(sess, render.EnableAltScreen())
	io.WriteString(sess, render.HideCursor())
	io.WriteString(sess, render.ClearScreen())
	defer func() {
		io.WriteString(sess, render.ShowCursor())
		io.WriteString(sess, render.DisableAltScreen())
	}()

	inputCh := s.gameLoop.InputChan()
	quitCh := make(chan struct{})

	// Goroutine: read input
	go func() {
		buf := make([]byte, 64)
		for {
			n, err := sess.Read(buf)
			if err != nil {
				close(quitCh)
				return
			}
			for _, ev := range parseInput(buf[:n]) {
				if ev.Action == game.ActionQuit {
					close(quitCh)
					return
				}
				ev.PlayerID = playerID
				select {
				case inputCh <- ev:
				default:
				}
			}
		}
	}()

	// Goroutine: a resize leaves stale text behind, so clear on the next frame
	var resized atomic.Bool
	go func() {
		for range winCh {
			resized.Store(true)
		}
	}()

	for {
		select {
		case <-quitCh:
			return
		case snap, ok := <-renderCh:
			if !ok {
				return
			}
			if resized.Swap(false) {
				io.WriteString(sess, render.ClearScreen())
			}
			io.WriteString(sess, render.Frame(snap))
		}
	}
}

// parseInput converts raw bytes into input events.
// Handles WASD, arrow key escape sequences, f/g, digits, Q, and Ctrl-C.
func parseInput(data []byte) []game.InputEvent {
	var events []game.InputEvent
	add := func(a game.Action, index int) {
		events = append(events, game.InputEvent{Action: a, Index: index})
	}

	i := 0
	for i < len(data) {
		// Check for escape sequences (arrow keys)
		if i+2 < len(data) && data[i] == 0x1b && data[i+1] == '[' {
			switch data[i+2] {
			case 'A':
				add(game.ActionNorth, 0)
			case 'B':
				add(game.ActionSouth, 0)
			case 'C':
				add(game.ActionEast, 0)
			case 'D':
				add(game.ActionWest, 0)
			}
			i += 3
			continue
		}

		r, size := utf8.DecodeRune(data[i:])
		switch {
		case r == 'w' || r == 'W':
			add(game.ActionNorth, 0)
		case r == 's' || r == 'S':
			add(game.ActionSouth, 0)
		case r == 'a' || r == 'A':
			add(game.ActionWest, 0)
		case r == 'd' || r == 'D':
			add(game.ActionEast, 0)
		case r == 'f' || r == 'F' || r == ' ':
			add(game.ActionFight, 0)
		case r == 'g' || r == 'G':
			add(game.ActionGrab, 0)
		case r >= '1' && r <= '9':
			add(game.ActionUse, int(r-'1'))
		case r == 'q' || r == 'Q' || r == 3: // 3 is Ctrl-C
			add(game.ActionQuit, 0)
		}
		i += size
	}
	return events
}
