package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"putscope/internal/config"
	"putscope/internal/logger"
	"putscope/internal/putio"
)

func main() {
	if err := logger.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not initialize log file: %v\n", err)
	}
	defer logger.Close()

	cfg := config.Load()
	if cfg.OAuthToken == "" {
		path, _ := config.Path()
		fmt.Fprintln(os.Stderr, "No put.io OAuth token configured.")
		fmt.Fprintf(os.Stderr, "Set oauth_token in %s or export PUTIO_OAUTH_TOKEN.\n", path)
		os.Exit(1)
	}

	client := putio.NewClient(cfg.OAuthToken, cfg.BaseURL)
	logger.Info("starting")

	p := tea.NewProgram(initialModel(cfg, client), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("fatal: %v", err)
		log.Fatal(err)
	}
}
