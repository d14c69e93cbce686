// Copyright © 2025 Goterm contributors
// SPDX-License-Identifier: MIT
//
// File: term/term.go
// Summary: PTY session: child shell lifecycle and byte plumbing between
// the pseudo-terminal and the decoder.
// Usage: Owned by the program entry point; one session per terminal.

package term

import (
	"io"
	"log"
	"os"
	"os/exec"
	"sync"
	"syscall"

	"github.com/creack/pty"
	"github.com/gdamore/tcell/v2"

	"github.com/sergev/goterm/parser"
)

// Session runs a child shell on a pseudo-terminal and keeps a virtual
// terminal in sync with its output.
type Session struct {
	command string
	termEnv string
	width   int
	height  int

	cmd    *exec.Cmd
	pty    *os.File
	vterm  *parser.VTerm
	parser *parser.Parser

	mu        sync.Mutex
	dirtyRows map[int]bool
	stop      chan struct{}
	refresh   chan<- struct{}
	wg        sync.WaitGroup
}

// NewSession prepares a session running command with TERM set to
// termEnv. Run starts the child.
func NewSession(command, termEnv string) *Session {
	s := &Session{
		command:   command,
		termEnv:   termEnv,
		width:     80,
		height:    24,
		dirtyRows: make(map[int]bool),
		stop:      make(chan struct{}),
	}
	s.vterm = parser.NewVTerm(s.width, s.height)
	s.parser = parser.NewParser(s.vterm)
	return s
}

// SetRefreshNotifier registers a channel signalled whenever the grid
// changes. Sends are non-blocking; a full channel is skipped.
func (s *Session) SetRefreshNotifier(ch chan<- struct{}) {
	s.refresh = ch
}

func (s *Session) notifyRefresh() {
	if s.refresh == nil {
		return
	}
	select {
	case s.refresh <- struct{}{}:
	default:
	}
}

// Run starts the child shell and pumps its output through the decoder
// until the child exits or the session is stopped.
func (s *Session) Run() error {
	s.mu.Lock()
	cols, rows := s.width, s.height
	cmd := exec.Command(s.command)
	cmd.Env = append(os.Environ(), "TERM="+s.termEnv)
	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: uint16(rows),
		Cols: uint16(cols),
	})
	if err != nil {
		s.mu.Unlock()
		log.Printf("Session: Failed to start %q on a pty: %v", s.command, err)
		return err
	}
	s.pty = ptmx
	s.cmd = cmd
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer ptmx.Close()

		buf := make([]byte, 4096)
		for {
			select {
			case <-s.stop:
				return
			default:
			}

			n, err := ptmx.Read(buf)
			if n > 0 {
				s.mu.Lock()
				for _, row := range s.parser.ProcessInput(buf[:n]) {
					s.dirtyRows[row] = true
				}
				s.mu.Unlock()
				s.notifyRefresh()
			}
			if err != nil {
				if err != io.EOF {
					log.Printf("Session: Error reading from pty: %v", err)
				}
				return
			}
		}
	}()

	return cmd.Wait()
}

// HandleKey encodes a key event and writes it to the child. Events with
// no encoding write nothing.
func (s *Session) HandleKey(ev *tcell.EventKey) {
	s.mu.Lock()
	ptmx := s.pty
	s.mu.Unlock()
	if ptmx == nil {
		return
	}

	key, ok := translateKey(ev)
	if !ok {
		return
	}
	if data := key.Encode(); len(data) > 0 {
		if _, err := ptmx.Write(data); err != nil {
			log.Printf("Session: Error writing to pty: %v", err)
		}
	}
}

// Resize propagates a new window size to the grid and the child tty.
// The decoder state survives; a resize may land mid-sequence.
func (s *Session) Resize(cols, rows int) {
	if cols <= 0 || rows <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.width = cols
	s.height = rows
	s.vterm.Resize(cols, rows)
	for _, row := range s.vterm.TakeDirtyRows() {
		s.dirtyRows[row] = true
	}

	if s.pty != nil {
		if err := pty.Setsize(s.pty, &pty.Winsize{
			Rows: uint16(rows),
			Cols: uint16(cols),
		}); err != nil {
			log.Printf("Session: Failed to resize pty: %v", err)
		}
	}
}

// TakeDirtyRows returns the rows changed since the last call.
func (s *Session) TakeDirtyRows() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.dirtyRows) == 0 {
		return nil
	}
	rows := make([]int, 0, len(s.dirtyRows))
	for row := range s.dirtyRows {
		rows = append(rows, row)
	}
	s.dirtyRows = make(map[int]bool)
	return rows
}

// Cursor returns the cursor position as (col, row).
func (s *Session) Cursor() (x, y int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vterm.Cursor()
}

// Stop terminates the child and releases the pty.
func (s *Session) Stop() {
	select {
	case <-s.stop:
	default:
		close(s.stop)
	}
	s.mu.Lock()
	ptmx, cmd := s.pty, s.cmd
	s.mu.Unlock()
	if ptmx != nil {
		ptmx.Close()
	}
	if cmd != nil && cmd.Process != nil {
		cmd.Process.Signal(syscall.SIGTERM)
	}
}
