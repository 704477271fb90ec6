package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/jask/nyfeval/internal/catalog"
)

// Config holds application configuration.
type Config struct {
	Receipts ReceiptsConfig `mapstructure:"receipts"`
	UI       UIConfig       `mapstructure:"ui"`
	Log      LogConfig      `mapstructure:"log"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
}

// ReceiptsConfig holds the sqlite ledger settings. An empty path disables recording.
type ReceiptsConfig struct {
	Path string `mapstructure:"path"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	CurrencySymbol string `mapstructure:"currency_symbol"`
	Locale         string `mapstructure:"locale"`
}

// LogConfig holds slog settings. An empty path discards logs in the TUI.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// CatalogConfig optionally replaces the built-in projects.
type CatalogConfig struct {
	Projects []ProjectConfig `mapstructure:"projects"`
}

type ProjectConfig struct {
	Title       string `mapstructure:"title"`
	Description string `mapstructure:"description"`
	Request     int64  `mapstructure:"request"`
}

// DefaultPath is where Load looks when neither an explicit path nor NYFEVAL_CONFIG
// is given.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "nyfeval", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix NYFEVAL_.
// path wins over NYFEVAL_CONFIG; a missing default file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("receipts.path", "")
	v.SetDefault("ui.currency_symbol", "$")
	v.SetDefault("ui.locale", "en-US")
	v.SetDefault("log.path", "")
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("NYFEVAL_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Dir(DefaultPath()))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("NYFEVAL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to path (or the default location), creating the
// directory if needed.
func Save(cfg Config, path string) error {
	if path == "" {
		path = os.Getenv("NYFEVAL_CONFIG")
	}
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("receipts.path", cfg.Receipts.Path)
	v.Set("ui.currency_symbol", cfg.UI.CurrencySymbol)
	v.Set("ui.locale", cfg.UI.Locale)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	if len(cfg.Catalog.Projects) > 0 {
		projects := make([]map[string]any, 0, len(cfg.Catalog.Projects))
		for _, p := range cfg.Catalog.Projects {
			projects = append(projects, map[string]any{
				"title":       p.Title,
				"description": p.Description,
				"request":     p.Request,
			})
		}
		v.Set("catalog.projects", projects)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// BuildCatalog returns the configured catalog, or the built-in one when no projects
// are configured.
func (c Config) BuildCatalog() (*catalog.Catalog, error) {
	if len(c.Catalog.Projects) == 0 {
		return catalog.Default(), nil
	}
	projects := make([]catalog.Project, 0, len(c.Catalog.Projects))
	for _, p := range c.Catalog.Projects {
		projects = append(projects, catalog.Project{
			Title:       strings.TrimSpace(p.Title),
			Description: strings.TrimSpace(p.Description),
			Request:     p.Request,
		})
	}
	cat, err := catalog.New(projects)
	if err != nil {
		return nil, fmt.Errorf("catalog config: %w", err)
	}
	return cat, nil
}
