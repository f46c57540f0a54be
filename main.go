package main

import (
	"context"
	"fmt"
	"log"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/tavlaboard/tavla/internal/config"
	"github.com/tavlaboard/tavla/internal/database"
	"github.com/tavlaboard/tavla/internal/events"
	"github.com/tavlaboard/tavla/internal/logging"
	"github.com/tavlaboard/tavla/internal/tui"
)

func main() {
	if err := logging.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	// Initialize database, seeding the configured columns
	db, err := database.InitDB(ctx, cfg.BoardColumns())
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Create repository wrapping the database
	repo := database.NewRepository(db)

	// In-process event bus for change notifications
	bus := events.NewBus()
	defer bus.Close()

	// Create initial TUI model with repository
	model := tui.InitialModel(ctx, repo, cfg, bus)

	// Create and run Bubble Tea program
	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		log.Fatal(err)
	}
}
