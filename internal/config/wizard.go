package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/Krish2786/LegalMind-AI/internal/legalmind"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .legalmind.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to legalmind! Let's configure the client.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Analysis service URL.
	urlPrompt := promptui.Prompt{
		Label:   "Analysis service URL",
		Default: cfg.ServiceURL,
		Validate: func(s string) error {
			if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
				return fmt.Errorf("must start with http:// or https://")
			}
			return nil
		},
	}
	serviceURL, err := urlPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("service URL: %w", err)
	}
	cfg.ServiceURL = strings.TrimRight(serviceURL, "/")

	// 2. Model selection.
	modelPrompt := promptui.Select{
		Label: "Select analysis model",
		Items: legalmind.AllowedModels,
	}
	_, model, err := modelPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("model selection: %w", err)
	}
	cfg.Model = model

	// 3. Local web UI port.
	portPrompt := promptui.Prompt{
		Label:   "Local web UI port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			p, err := strconv.Atoi(s)
			if err != nil || p < 1 || p > 65535 {
				return fmt.Errorf("must be a port number")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 4. Data directory.
	dataPrompt := promptui.Prompt{
		Label:   "Data directory (saved analyses and history)",
		Default: cfg.DataDir,
	}
	dataDir, err := dataPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data directory: %w", err)
	}
	cfg.DataDir = dataDir

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(".legalmind.yml"); err != nil {
		return nil, err
	}

	fmt.Println()
	fmt.Println("Configuration written to .legalmind.yml")
	fmt.Println("Run `legalmind serve` to open the browser client, or")
	fmt.Println("`legalmind analyze <file.pdf>` for a one-shot analysis.")
	return cfg, nil
}
