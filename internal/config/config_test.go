package config

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestApplyDefaultsFillsEmptyConfig(t *testing.T) {
	var cfg Config
	cfg.applyDefaults()

	if len(cfg.Columns) != 4 {
		t.Fatalf("Expected 4 default columns, got %d", len(cfg.Columns))
	}
	if cfg.Columns[0].Key != "todo" {
		t.Errorf("Expected first column todo, got %s", cfg.Columns[0].Key)
	}
	if cfg.Theme.Background == "" {
		t.Error("Expected theme defaults applied")
	}
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := Config{
		Columns: []ColumnConfig{{Key: "inbox", Name: "Inbox"}},
		Theme:   Theme{Background: "#000000"},
	}
	cfg.applyDefaults()

	if len(cfg.Columns) != 1 || cfg.Columns[0].Key != "inbox" {
		t.Errorf("Expected configured columns preserved, got %+v", cfg.Columns)
	}
	if cfg.Theme.Background != "#000000" {
		t.Errorf("Expected configured background preserved, got %s", cfg.Theme.Background)
	}
	if cfg.Theme.Muted == "" {
		t.Error("Expected unset theme fields defaulted")
	}
}

func TestValidateRejectsDuplicateKeys(t *testing.T) {
	cfg := Config{Columns: []ColumnConfig{
		{Key: "todo", Name: "To Do"},
		{Key: "todo", Name: "Also To Do"},
	}}

	if err := cfg.validate(); err == nil {
		t.Error("Expected error for duplicate column keys")
	}
}

func TestValidateRejectsMissingKey(t *testing.T) {
	cfg := Config{Columns: []ColumnConfig{{Name: "Nameless"}}}

	if err := cfg.validate(); err == nil {
		t.Error("Expected error for column without key")
	}
}

func TestBoardColumnsAssignsPositions(t *testing.T) {
	cfg := Config{Columns: DefaultColumns()}

	columns := cfg.BoardColumns()
	for i, col := range columns {
		if col.Position != i {
			t.Errorf("Expected column %s at position %d, got %d", col.Key, i, col.Position)
		}
	}
}

func TestConfigParsesYAML(t *testing.T) {
	data := []byte(`
columns:
  - key: backlog
    name: Backlog
  - key: done
    name: Done
theme:
  background: "#101010"
`)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("Failed to parse config: %v", err)
	}
	cfg.applyDefaults()

	if len(cfg.Columns) != 2 {
		t.Fatalf("Expected 2 columns, got %d", len(cfg.Columns))
	}
	if cfg.Columns[0].Key != "backlog" || cfg.Columns[1].Name != "Done" {
		t.Errorf("Unexpected columns: %+v", cfg.Columns)
	}
	if cfg.Theme.Background != "#101010" {
		t.Errorf("Expected configured background, got %s", cfg.Theme.Background)
	}
}
