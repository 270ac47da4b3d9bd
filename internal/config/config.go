// Package config resolves the configuration directory and loads settings
// from config.yaml, GROCERY_* environment variables and command-line flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application directory name.
	AppName = "grocery"

	// FileName is the optional settings file inside Dir.
	FileName = "config.yaml"

	// LogFileName is where the structured log is written.
	LogFileName = "grocery.log"

	DefaultMessengerURL = "whatsapp://send"
	DefaultEmailSubject = "Grocery List"
	DefaultTheme        = "classic"
	DefaultLogLevel     = "info"
)

// Share configures the share handoff.
type Share struct {
	// MessengerURL is the deep link the text is appended to as ?text=.
	MessengerURL string `yaml:"messenger_url"`

	EmailSubject string `yaml:"email_subject"`

	// ClipboardFallback copies the text to the clipboard when neither
	// handoff could be started.
	ClipboardFallback bool `yaml:"clipboard_fallback"`
}

// Config holds settings and the directory they came from.
type Config struct {
	// Dir is the configuration directory path.
	Dir string `yaml:"-"`

	Theme    string `yaml:"theme"`
	LogLevel string `yaml:"log_level"`
	NoColor  bool   `yaml:"no_color"`
	Share    Share  `yaml:"share"`
}

// Default returns the built-in settings rooted at dir.
func Default(dir string) *Config {
	return &Config{
		Dir:      dir,
		Theme:    DefaultTheme,
		LogLevel: DefaultLogLevel,
		Share: Share{
			MessengerURL: DefaultMessengerURL,
			EmailSubject: DefaultEmailSubject,
		},
	}
}

// Load reads config.yaml from configDir (or the default directory when
// empty) and applies environment overrides. A missing file is not an error.
func Load(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := Default(dir)

	b, err := os.ReadFile(cfg.Path())
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfg.Path(), err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.fillDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := strings.TrimSpace(os.Getenv("GROCERY_THEME")); v != "" {
		c.Theme = v
	}
	if v := strings.TrimSpace(os.Getenv("GROCERY_LOG_LEVEL")); v != "" {
		c.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv("GROCERY_MESSENGER_URL")); v != "" {
		c.Share.MessengerURL = v
	}
	if v := strings.TrimSpace(os.Getenv("GROCERY_EMAIL_SUBJECT")); v != "" {
		c.Share.EmailSubject = v
	}
	if v, ok, err := envBool("GROCERY_CLIPBOARD_FALLBACK"); err != nil {
		return err
	} else if ok {
		c.Share.ClipboardFallback = v
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		c.NoColor = true
	}
	return nil
}

// fillDefaults restores defaults for keys a config file set to "".
func (c *Config) fillDefaults() {
	if strings.TrimSpace(c.Theme) == "" {
		c.Theme = DefaultTheme
	}
	if strings.TrimSpace(c.LogLevel) == "" {
		c.LogLevel = DefaultLogLevel
	}
	if strings.TrimSpace(c.Share.MessengerURL) == "" {
		c.Share.MessengerURL = DefaultMessengerURL
	}
	if strings.TrimSpace(c.Share.EmailSubject) == "" {
		c.Share.EmailSubject = DefaultEmailSubject
	}
}

func envBool(key string) (value, ok bool, err error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return false, false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false, fmt.Errorf("%s: %w", key, err)
	}
	return v, true, nil
}

// DefaultConfigDir returns $XDG_CONFIG_HOME/grocery, falling back to
// $HOME/.config/grocery.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// Path returns the config file path.
func (c *Config) Path() string {
	return filepath.Join(c.Dir, FileName)
}

// LogPath returns the log file path.
func (c *Config) LogPath() string {
	return filepath.Join(c.Dir, LogFileName)
}

// EnsureDir creates the config directory with mode 0700.
func (c *Config) EnsureDir() error {
	if err := os.MkdirAll(c.Dir, 0o700); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	return nil
}
