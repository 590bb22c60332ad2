package config

import "github.com/Krish2786/LegalMind-AI/internal/legalmind"

// DefaultConfig returns the configuration used when no file or environment
// overrides are present.
func DefaultConfig() *Config {
	return &Config{
		ServiceURL:            "http://localhost:5000",
		Model:                 legalmind.DefaultModel,
		Prompt:                "Explain this document in simple terms and point out anything risky.",
		DataDir:               ".legalmind",
		Port:                  8080,
		RequestTimeoutSeconds: 120,
	}
}
