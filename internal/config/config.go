package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/wahlandcase/attuned.changelog/internal/issues"
	"github.com/wahlandcase/attuned.changelog/internal/models"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const fileName = "attcl.toml"

type Config struct {
	FallbackLabel        string        `toml:"fallback_label" yaml:"fallback_label"`
	UntaggedName         string        `toml:"untagged_name" yaml:"untagged_name"`
	IgnoreCommitsPattern string        `toml:"ignore_commits_pattern" yaml:"ignore_commits_pattern"`
	Template             string        `toml:"template" yaml:"template"`
	Jira                 JiraConfig    `toml:"jira" yaml:"jira"`
	Issues               []IssueConfig `toml:"issues" yaml:"issues"`

	// Compiled regex from IgnoreCommitsPattern (not serialized)
	ignoreRegex *regexp.Regexp
}

type JiraConfig struct {
	Pattern string `toml:"pattern" yaml:"pattern"`
	Server  string `toml:"server" yaml:"server"`
}

type IssueConfig struct {
	Name    string `toml:"name" yaml:"name"`
	Pattern string `toml:"pattern" yaml:"pattern"`
	Link    string `toml:"link,omitempty" yaml:"link,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		FallbackLabel: "No issue",
		UntaggedName:  "Unreleased",
		Jira: JiraConfig{
			Pattern: `\b[A-Z][A-Z0-9]+-[0-9]+\b`,
		},
		Issues: []IssueConfig{
			{
				Name:    "GitHub",
				Pattern: `#([0-9]+)`,
			},
		},
	}
}

// Path returns the default config file location
func Path() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, fileName), nil
}

// Load reads the config at path. An empty path means the default location,
// which is created with defaults if it does not exist yet.
func Load(path string) (*Config, error) {
	if path != "" {
		return loadFile(path)
	}

	path, err := Path()
	if err != nil {
		return compiled(DefaultConfig())
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg, err := compiled(DefaultConfig())
		if err != nil {
			return nil, err
		}
		_ = cfg.Save(path) // Best effort save
		return cfg, nil
	}

	return loadFile(path)
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Issues from the file replace the default list instead of extending it
	cfg := DefaultConfig()
	cfg.Issues = nil

	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = toml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return compiled(cfg)
}

func compiled(cfg *Config) (*Config, error) {
	if err := cfg.compileRegex(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) compileRegex() error {
	// Empty pattern = nothing ignored
	if c.IgnoreCommitsPattern == "" {
		c.ignoreRegex = nil
		return nil
	}
	re, err := regexp.Compile(c.IgnoreCommitsPattern)
	if err != nil {
		return fmt.Errorf("invalid ignore_commits_pattern %q: %w", c.IgnoreCommitsPattern, err)
	}
	c.ignoreRegex = re
	return nil
}

// IgnoreRegex returns the compiled ignore pattern (nil if disabled)
func (c *Config) IgnoreRegex() *regexp.Regexp {
	return c.ignoreRegex
}

// IssuePatterns returns the configured patterns followed by the Jira pattern.
// Patterns are not validated here; Classify reports invalid ones.
func (c *Config) IssuePatterns() []models.IssuePattern {
	custom := make([]models.IssuePattern, 0, len(c.Issues))
	for _, i := range c.Issues {
		custom = append(custom, models.NewIssuePattern(i.Name, i.Pattern, i.Link))
	}
	return issues.Patterns(custom, issues.Tracker{
		Pattern: c.Jira.Pattern,
		Server:  strings.TrimSuffix(c.Jira.Server, "/"),
	})
}

// Save writes the config to path, in YAML if the extension asks for it
func (c *Config) Save(path string) error {
	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	var data []byte
	var err error
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = toml.Marshal(c)
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// TemplatePath returns the custom template path with ~ expanded
func (c *Config) TemplatePath() string {
	return expandTilde(c.Template)
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func expandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
