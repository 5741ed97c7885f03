// Command feed scrolls through a large generated message log with a
// recycling tableview, either interactively or as a single rendered frame.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kungfusheep/tableview"
	"github.com/kungfusheep/tableview/termhost"
)

func main() {
	var (
		configPath = flag.String("config", "", "layout configuration file (TOML)")
		count      = flag.Int("count", 10000, "number of items")
		seed       = flag.Int64("seed", 1, "seed for generated messages")
		grid       = flag.Bool("grid", false, "lay items out as a wrapping grid")
		dump       = flag.Bool("dump", false, "render one frame to stdout and exit")
		logPath    = flag.String("log", "", "write debug logs to this file")
	)
	flag.Parse()

	cfg := tableview.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = tableview.LoadConfig(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	if *grid {
		cfg.Wrap = true
		cfg.SpacingX, cfg.SpacingY = 1, 1
	}

	var opts []tableview.Option
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		opts = append(opts, tableview.WithLogger(slog.New(
			slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)))
	}

	m := newModel(cfg, newFeed(*count, *seed), opts...)

	if *dump {
		w, h := 80, 24
		if fd := int(os.Stdout.Fd()); termhost.IsTerminal(fd) {
			if tw, th, err := termhost.TerminalSize(fd); err == nil {
				w, h = tw, th
			}
		}
		if err := m.resize(w, h); err != nil {
			log.Fatal(err)
		}
		fmt.Println(m.View())
		return
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}
