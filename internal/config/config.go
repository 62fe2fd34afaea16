package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	configFileName = "config.yaml"
	defaultDirName = ".kanseitabi"

	defaultModel          = "gpt-4o-mini"
	defaultTimeoutSeconds = 30
	defaultCurrency       = "¥"
)

// Config carries the app settings. Values resolve in order: built-in
// defaults, then config.yaml in the data directory, then environment
// (a .env file in the working directory is honored). A malformed config
// file is ignored the same way a corrupt collection is: defaults win,
// the app never refuses to start.
type Config struct {
	DataDir string `yaml:"-"`
	APIKey  string `yaml:"-"`

	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"assistant_timeout_seconds"`
	Currency       string `yaml:"currency"`
}

// Load resolves the configuration. overrideDir, when non-empty, wins over
// the KANSEITABI_HOME env var and the default ~/.kanseitabi.
func Load(overrideDir string) Config {
	_ = godotenv.Load()

	dir := overrideDir
	if dir == "" {
		dir = os.Getenv("KANSEITABI_HOME")
	}
	if dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, defaultDirName)
		} else {
			dir = defaultDirName
		}
	}

	cfg := Config{
		DataDir:        dir,
		Model:          defaultModel,
		TimeoutSeconds: defaultTimeoutSeconds,
		Currency:       defaultCurrency,
	}

	if b, err := os.ReadFile(filepath.Join(dir, configFileName)); err == nil {
		var file Config
		if yaml.Unmarshal(b, &file) == nil {
			if file.Model != "" {
				cfg.Model = file.Model
			}
			if file.TimeoutSeconds > 0 {
				cfg.TimeoutSeconds = file.TimeoutSeconds
			}
			if file.Currency != "" {
				cfg.Currency = file.Currency
			}
		}
	}

	cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	return cfg
}

// AssistantTimeout bounds a single assistant request.
func (c Config) AssistantTimeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
