// Package config loads reader configuration from defaults, a YAML file and
// VERSE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"verse-tui/internal/logging"
	"verse-tui/internal/source"
)

const appName = "verse-tui"

// Book load timeouts used when source.timeout is 0. A book load fetches every
// chapter, one request each for the http source.
const (
	localLoadTimeout = 15 * time.Second
	httpLoadTimeout  = 3 * time.Minute
)

type Config struct {
	Source SourceConfig `mapstructure:"source" yaml:"source"`
	Theme  string       `mapstructure:"theme" yaml:"theme"`
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
}

type SourceConfig struct {
	Kind        string        `mapstructure:"kind" yaml:"kind"`
	Path        string        `mapstructure:"path" yaml:"path"`
	Table       string        `mapstructure:"table" yaml:"table"`
	Translation string        `mapstructure:"translation" yaml:"translation"`
	BaseURL     string        `mapstructure:"base_url" yaml:"base_url"`
	Timeout     time.Duration `mapstructure:"timeout" yaml:"timeout"`
	Retries     uint          `mapstructure:"retries" yaml:"retries"`
}

type LogConfig struct {
	Level   string `mapstructure:"level" yaml:"level"`
	File    string `mapstructure:"file" yaml:"file"`
	Journal bool   `mapstructure:"journal" yaml:"journal"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Source: SourceConfig{
			Kind:        string(source.KindSQLite),
			Table:       source.DefaultTable,
			Translation: "KJV",
			BaseURL:     source.DefaultBaseURL,
			Retries:     3,
		},
		Theme: "catppuccin-mocha",
		Log: LogConfig{
			Level: "info",
			File:  filepath.Join(CacheDir(), appName+".log"),
		},
	}
}

// ConfigDir is where config.yaml is looked up after the working directory.
func ConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "."+appName)
	}
	return filepath.Join(dir, appName)
}

// CacheDir holds the log file and downloaded translations.
func CacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), appName)
	}
	return filepath.Join(dir, appName)
}

// TranslationsDir is where `download` stores translation files.
func TranslationsDir() string {
	return filepath.Join(CacheDir(), "translations")
}

// Validate checks values that would otherwise fail late.
func (c *Config) Validate() error {
	switch source.Kind(c.Source.Kind) {
	case source.KindSQLite, source.KindJSON, source.KindHTTP:
	default:
		return fmt.Errorf("source.kind must be sqlite, json or http, got %q", c.Source.Kind)
	}
	if c.Source.Timeout < 0 {
		return fmt.Errorf("source.timeout must not be negative, got %s", c.Source.Timeout)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// SourceOptions resolves the text source settings, filling in the default
// path for the selected kind.
func (c *Config) SourceOptions(logger *slog.Logger) source.Options {
	path := c.Source.Path
	if path == "" {
		switch source.Kind(c.Source.Kind) {
		case source.KindJSON:
			path = source.TranslationPath(TranslationsDir(), c.Source.Translation)
		case source.KindSQLite:
			path = besideExecutable("ASV.db")
		}
	}
	return source.Options{
		Kind:        source.Kind(c.Source.Kind),
		Path:        path,
		Table:       c.Source.Table,
		Translation: c.Source.Translation,
		BaseURL:     c.Source.BaseURL,
		Retries:     c.Source.Retries,
		Logger:      logger,
	}
}

// LoadTimeout bounds one whole book load, all chapters included. Without an
// explicit source.timeout it depends on the source kind.
func (c *Config) LoadTimeout() time.Duration {
	if c.Source.Timeout > 0 {
		return c.Source.Timeout
	}
	if source.Kind(c.Source.Kind) == source.KindHTTP {
		return httpLoadTimeout
	}
	return localLoadTimeout
}

// Label names the text being read: the translation, or the table prefix for
// a database ("ASV_verses" -> "ASV").
func (c *Config) Label() string {
	if source.Kind(c.Source.Kind) == source.KindSQLite {
		return strings.TrimSuffix(c.Source.Table, "_verses")
	}
	return c.Source.Translation
}

func (c *Config) LogOptions() logging.Options {
	return logging.Options{Level: c.Log.Level, File: c.Log.File, Journal: c.Log.Journal}
}

func besideExecutable(name string) string {
	exe, err := os.Executable()
	if err != nil {
		return name
	}
	return filepath.Join(filepath.Dir(exe), name)
}

// Manager handles loading and hot-reloading configuration.
type Manager struct {
	v         *viper.Viper
	mu        sync.RWMutex
	config    *Config
	callbacks []func(*Config)
}

// NewManager loads configuration. cfgFile may be empty, in which case
// config.yaml is searched for in . and ConfigDir().
func NewManager(cfgFile string) (*Manager, error) {
	cm := &Manager{v: viper.New()}

	if err := cm.initViper(cfgFile); err != nil {
		return nil, err
	}

	cfg, err := cm.load()
	if err != nil {
		return nil, err
	}
	cm.config = cfg

	return cm, nil
}

func (cm *Manager) initViper(cfgFile string) error {
	v := cm.v
	d := DefaultConfig()
	v.SetDefault("source.kind", d.Source.Kind)
	v.SetDefault("source.path", d.Source.Path)
	v.SetDefault("source.table", d.Source.Table)
	v.SetDefault("source.translation", d.Source.Translation)
	v.SetDefault("source.base_url", d.Source.BaseURL)
	v.SetDefault("source.timeout", d.Source.Timeout)
	v.SetDefault("source.retries", d.Source.Retries)
	v.SetDefault("theme", d.Theme)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.journal", d.Log.Journal)

	// VERSE_SOURCE_KIND, VERSE_LOG_LEVEL, ...
	v.SetEnvPrefix("VERSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(ConfigDir())
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return nil
}

func (cm *Manager) load() (*Config, error) {
	var cfg Config
	if err := cm.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Get returns the current configuration.
func (cm *Manager) Get() *Config {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.config
}

// File returns the config file in use, or "" when running on defaults.
func (cm *Manager) File() string {
	return cm.v.ConfigFileUsed()
}

// OnChange registers a callback for config changes.
func (cm *Manager) OnChange(fn func(*Config)) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.callbacks = append(cm.callbacks, fn)
}

// WatchConfig reloads the file when it changes and notifies callbacks.
// Invalid edits are logged and ignored.
func (cm *Manager) WatchConfig(logger *slog.Logger) {
	if cm.File() == "" {
		return
	}
	cm.v.OnConfigChange(func(e fsnotify.Event) {
		cfg, err := cm.load()
		if err != nil {
			logger.Warn("ignoring config change", "file", e.Name, "error", err)
			return
		}
		logger.Info("config reloaded", "file", e.Name, "op", e.Op.String())

		cm.mu.Lock()
		cm.config = cfg
		callbacks := make([]func(*Config), len(cm.callbacks))
		copy(callbacks, cm.callbacks)
		cm.mu.Unlock()

		for _, fn := range callbacks {
			fn(cfg)
		}
	})
	cm.v.WatchConfig()
}
