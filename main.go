package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/term"

	"scrollsh/command"
	"scrollsh/config"
	"scrollsh/histdb"
	"scrollsh/shell"
	"scrollsh/tui"
)

func main() {
	os.Exit(run())
}

func run() int {
	// The terminal owns stdout, so logging goes to a file.
	if dir, err := config.Root(); err == nil {
		if err := os.MkdirAll(dir, 0o755); err == nil {
			logFile, err := os.OpenFile(filepath.Join(dir, "scrollsh.log"),
				os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err == nil {
				defer logFile.Close()
				log.SetOutput(logFile)
			}
		}
	}
	log.Println("scrollsh starting")

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "scrollsh: stdin is not a terminal")
		return 1
	}

	cfg := config.Load()

	screen, err := tui.NewScreen(cfg.SyntaxStyle)
	if err != nil {
		log.Printf("terminal init failed: %v", err)
		fmt.Fprintf(os.Stderr, "scrollsh: %v\n", err)
		return 1
	}
	defer screen.Fini()

	dir, err := os.Getwd()
	if err != nil {
		dir = string(os.PathSeparator)
	}

	sess := shell.NewSession(screen, command.NewBashRunner(),
		shell.CurrentUser(), shell.CurrentHost(), dir)
	sess.SetPollTimeout(time.Duration(cfg.PollTimeoutMs) * time.Millisecond)

	if store, err := histdb.Open(cfg.HistoryPath); err != nil {
		log.Printf("[HISTORY] %v, continuing with in-memory history", err)
	} else {
		defer store.Close()
		if entries, err := store.Recent(cfg.HistoryLimit); err != nil {
			log.Printf("[HISTORY] load failed: %v", err)
		} else {
			sess.PreloadHistory(entries)
		}
		sess.SetHistoryStore(store)
	}

	if err := sess.Run(); err != nil {
		log.Printf("session error: %v", err)
		return 1
	}
	log.Println("scrollsh stopped cleanly")
	return 0
}
