// Copyright © 2025 Goterm contributors
// SPDX-License-Identifier: MIT
//
// File: cmd/goterm/main.go
// Summary: Program entry point: screen lifecycle and event loop.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	xterm "golang.org/x/term"

	"github.com/sergev/goterm/config"
	"github.com/sergev/goterm/term"
)

func main() {
	flag.Parse()

	cfg := config.Load()
	if args := flag.Args(); len(args) > 0 {
		cfg.Shell = strings.Join(args, " ")
	}

	if !xterm.IsTerminal(int(os.Stdin.Fd())) {
		log.Fatal("goterm: stdin is not a terminal")
	}

	if err := run(cfg); err != nil {
		log.Fatalf("goterm: %v", err)
	}
}

func run(cfg config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()
	screen.Clear()

	sess := term.NewSession(cfg.Shell, cfg.Term)
	width, height := screen.Size()
	sess.Resize(width, height)

	refresh := make(chan struct{}, 1)
	sess.SetRefreshNotifier(refresh)

	runErr := make(chan error, 1)
	go func() {
		runErr <- sess.Run()
		// Wake the event loop so it notices the child is gone.
		screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()
	defer sess.Stop()

	go func() {
		for range refresh {
			screen.PostEvent(tcell.NewEventInterrupt(nil))
		}
	}()

	drawAll := func() {
		sess.TakeDirtyRows()
		buffer := sess.Render()
		for y := range buffer {
			drawRow(screen, buffer[y], y)
		}
		showCursor(screen, sess)
		screen.Show()
	}

	drawDirty := func() {
		buffer := sess.Render()
		for _, y := range sess.TakeDirtyRows() {
			if y >= 0 && y < len(buffer) {
				drawRow(screen, buffer[y], y)
			}
		}
		showCursor(screen, sess)
		screen.Show()
	}

	drawAll()

	for {
		select {
		case err := <-runErr:
			return err
		default:
		}

		ev := screen.PollEvent()
		switch tev := ev.(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			drawDirty()
		case *tcell.EventResize:
			w, h := tev.Size()
			sess.Resize(w, h)
			screen.Sync()
			drawAll()
		case *tcell.EventKey:
			sess.HandleKey(tev)
		}
	}
}

// showCursor positions the hardware cursor, hiding it while the
// logical cursor rests past the right margin.
func showCursor(screen tcell.Screen, sess *term.Session) {
	x, y := sess.Cursor()
	w, _ := screen.Size()
	if x >= w {
		screen.HideCursor()
		return
	}
	screen.ShowCursor(x, y)
}

// drawRow paints one grid row, skipping the shadow columns of wide
// runes.
func drawRow(screen tcell.Screen, row []term.Cell, y int) {
	for x, cell := range row {
		if cell.Ch == 0 {
			continue
		}
		screen.SetContent(x, y, cell.Ch, nil, cell.Style)
	}
}
