package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/Krish2786/LegalMind-AI/internal/app"
	"github.com/Krish2786/LegalMind-AI/internal/config"
	"github.com/Krish2786/LegalMind-AI/internal/legalmind"
	"github.com/Krish2786/LegalMind-AI/internal/store"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `legalmind init` to create a config file", err)
	}
	return cfg, nil
}

// buildApp wires the remote client and the local store into an App. The
// returned close function releases the database.
func buildApp(cfg *config.Config) (*app.App, func() error, error) {
	dbPath := filepath.Join(cfg.DataDir, "legalmind.db")
	database, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}

	timeout := time.Duration(cfg.RequestTimeoutSeconds) * time.Second
	client := legalmind.NewClient(cfg.ServiceURL, timeout)

	return app.New(client, store.NewStore(database)), database.Close, nil
}
