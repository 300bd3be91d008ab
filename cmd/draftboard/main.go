package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"draftboard/internal/config"
	"draftboard/internal/source"
	"draftboard/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	src := resolveSource(cfg)

	p := tea.NewProgram(tui.New(cfg, src), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

func resolveSource(cfg config.Config) source.Source {
	if url := strings.TrimSpace(cfg.Source.URL); url != "" {
		timeout := time.Duration(cfg.Source.TimeoutSeconds) * time.Second
		return source.NewHTTPSource(url, nil, timeout)
	}
	return source.NewFileSource(cfg.Source.Path)
}
