package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"scrollseg/internal/collector"
	"scrollseg/internal/config"
	"scrollseg/ui/tui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The alternate screen owns stdout, so logs go to a file or nowhere.
	logger := log.New(io.Discard, "", 0)
	if cfg.Demo.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Demo.LogFile), 0o755); err != nil {
			return fmt.Errorf("create log dir: %w", err)
		}
		f, err := tea.LogToFile(cfg.Demo.LogFile, "scrollseg")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logger = log.Default()
	}

	var provider collector.StatsProvider = collector.NewSystemCollector(cfg.Demo.Collector())
	return tui.Start(cfg, provider, logger)
}
