package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tavlaboard/tavla/internal/models"
	"github.com/tavlaboard/tavla/internal/types"
)

// Config represents the application configuration.
// Columns are configuration data: the board core only needs the set of valid
// column keys and their display order.
type Config struct {
	Columns []ColumnConfig `yaml:"columns"`
	Theme   Theme          `yaml:"theme"`
}

// ColumnConfig declares one board column
type ColumnConfig struct {
	Key  string `yaml:"key"`
	Name string `yaml:"name"`
}

// DefaultColumns returns the standard four-column board layout
func DefaultColumns() []ColumnConfig {
	return []ColumnConfig{
		{Key: "todo", Name: "To Do"},
		{Key: "waiting", Name: "Waiting"},
		{Key: "doing", Name: "In Progress"},
		{Key: "done", Name: "Done"},
	}
}

// Load loads config from ~/.tavla/config.yaml.
// Returns default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		cfg := &Config{Columns: DefaultColumns(), Theme: DefaultTheme()}
		return cfg, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := &Config{Columns: DefaultColumns(), Theme: DefaultTheme()}
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save saves the config to ~/.tavla/config.yaml
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// BoardColumns converts the configured columns into model values,
// assigning display positions in declaration order.
func (c *Config) BoardColumns() []*models.Column {
	columns := make([]*models.Column, 0, len(c.Columns))
	for i, cc := range c.Columns {
		columns = append(columns, &models.Column{
			Key:      types.ColumnID(cc.Key),
			Name:     cc.Name,
			Position: i,
		})
	}
	return columns
}

func (c *Config) applyDefaults() {
	if len(c.Columns) == 0 {
		c.Columns = DefaultColumns()
	}
	c.Theme.applyDefaults()
}

func (c *Config) validate() error {
	seen := make(map[string]bool, len(c.Columns))
	for _, cc := range c.Columns {
		if cc.Key == "" {
			return fmt.Errorf("column %q has no key", cc.Name)
		}
		if seen[cc.Key] {
			return fmt.Errorf("duplicate column key %q", cc.Key)
		}
		seen[cc.Key] = true
	}
	return nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".tavla", "config.yaml"), nil
}
