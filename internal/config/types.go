package config

// Config is the top-level legalmind configuration, corresponding to
// .legalmind.yml.
type Config struct {
	// ServiceURL is the base URL of the remote LegalMind analysis service.
	ServiceURL string `yaml:"service_url" koanf:"service_url"`

	// Model selects the analysis model on the remote service.
	Model string `yaml:"model" koanf:"model"`

	// Prompt is the default free-text analysis instruction sent with each
	// upload when none is given on the command line.
	Prompt string `yaml:"prompt" koanf:"prompt"`

	// DataDir holds the local SQLite database (saved views and history).
	DataDir string `yaml:"data_dir" koanf:"data_dir"`

	// Port is the local web UI port.
	Port int `yaml:"port" koanf:"port"`

	// RequestTimeoutSeconds bounds each call to the remote service at the
	// HTTP transport level. Zero disables the bound.
	RequestTimeoutSeconds int `yaml:"request_timeout_seconds" koanf:"request_timeout_seconds"`
}
