package config

import "github.com/kelseyhightower/envconfig"

// Config holds application configuration loaded from environment variables.
type Config struct {
	Port            int    `envconfig:"PORT" default:"8080"`
	LogLevel        string `envconfig:"LOG_LEVEL" default:"info"`
	DatabaseURL     string `envconfig:"DATABASE_URL" required:"true"`
	BaseURL         string `envconfig:"BASE_URL" default:"http://127.0.0.1:8080"`
	RoundManifest   string `envconfig:"ROUND_MANIFEST" default:"round1.yaml"`
	FilesDir        string `envconfig:"FILES_DIR" default:"files"`
	OperatorKeyHash string `envconfig:"OPERATOR_KEY_HASH" default:""`
	BcryptCost      int    `envconfig:"BCRYPT_COST" default:"12"`
	Version         string `envconfig:"VERSION" default:"dev"`
}

// Load reads configuration from environment variables into a Config struct.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SubmitURL returns the public answer-submission endpoint.
func (c *Config) SubmitURL() string { return c.BaseURL + "/submit" }

// QuestionsURL returns the public question-listing endpoint.
func (c *Config) QuestionsURL() string { return c.BaseURL + "/questions" }

// HintURL returns the public hint endpoint.
func (c *Config) HintURL() string { return c.BaseURL + "/hint" }

// FileURL returns the public artifact-download endpoint.
func (c *Config) FileURL() string { return c.BaseURL + "/file" }

// InstructionsURL returns the public instructions endpoint.
func (c *Config) InstructionsURL() string { return c.BaseURL + "/instructions" }
