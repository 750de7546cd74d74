package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/folioboard"
	ConfigFileName    = "folioboard.yml"
)

// FolioConfig holds all FolioBoard configuration settings
type FolioConfig struct {
	// SessionTokenTTL is the session token lifetime in seconds
	SessionTokenTTL int `yaml:"session_token_ttl" json:"session_token_ttl"`

	// APIListLimitMax is the maximum number of results for listing requests
	APIListLimitMax int `yaml:"api_list_limit_max" json:"api_list_limit_max"`

	// APIListLimitDefault is the page size when the request does not ask
	APIListLimitDefault int `yaml:"api_list_limit_default" json:"api_list_limit_default"`

	// AuditEnabled toggles audit event emission
	AuditEnabled bool `yaml:"audit_enabled" json:"audit_enabled"`

	// BlogUnsafeHTML allows raw HTML through the markdown renderer
	BlogUnsafeHTML bool `yaml:"blog_unsafe_html" json:"blog_unsafe_html"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Global singleton config
var (
	globalConfig *FolioConfig
	configMu     sync.RWMutex
)

// Get returns the global configuration, loading it if necessary
func Get() *FolioConfig {
	configMu.RLock()
	if globalConfig != nil {
		configMu.RUnlock()
		return globalConfig
	}
	configMu.RUnlock()

	configMu.Lock()
	defer configMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			// Return defaults on error
			globalConfig = newDefault()
		} else {
			globalConfig = cfg
		}
	}
	return globalConfig
}

// Reload reloads the configuration from file and environment
func Reload() error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	configMu.Lock()
	globalConfig = cfg
	configMu.Unlock()
	return nil
}

// newDefault returns a config with default values
func newDefault() *FolioConfig {
	return &FolioConfig{
		SessionTokenTTL:     86400,
		APIListLimitMax:     100,
		APIListLimitDefault: 20,
		AuditEnabled:        true,
		BlogUnsafeHTML:      false,
		sources:             make(map[string]string),
	}
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values.
func Load() (*FolioConfig, error) {
	config := newDefault()

	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	configPath := os.Getenv("FOLIOBOARD_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig FolioConfig
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	config.applyEnvConfig()

	return config, nil
}

func attributeNames() []string {
	return []string{
		"session_token_ttl", "api_list_limit_max", "api_list_limit_default",
		"audit_enabled", "blog_unsafe_html",
	}
}

func (c *FolioConfig) applyFileConfig(file *FolioConfig) {
	if file.SessionTokenTTL != 0 {
		c.SessionTokenTTL = file.SessionTokenTTL
		c.sources["session_token_ttl"] = "file"
	}
	if file.APIListLimitMax != 0 {
		c.APIListLimitMax = file.APIListLimitMax
		c.sources["api_list_limit_max"] = "file"
	}
	if file.APIListLimitDefault != 0 {
		c.APIListLimitDefault = file.APIListLimitDefault
		c.sources["api_list_limit_default"] = "file"
	}
	if file.BlogUnsafeHTML {
		c.BlogUnsafeHTML = true
		c.sources["blog_unsafe_html"] = "file"
	}
}

func (c *FolioConfig) applyEnvConfig() {
	if val := os.Getenv("FOLIOBOARD_SESSION_TOKEN_TTL"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.SessionTokenTTL = i
			c.sources["session_token_ttl"] = "environment"
		}
	}
	if val := os.Getenv("FOLIOBOARD_API_LIST_LIMIT_MAX"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.APIListLimitMax = i
			c.sources["api_list_limit_max"] = "environment"
		}
	}
	if val := os.Getenv("FOLIOBOARD_API_LIST_LIMIT_DEFAULT"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.APIListLimitDefault = i
			c.sources["api_list_limit_default"] = "environment"
		}
	}
	if val := os.Getenv("FOLIOBOARD_AUDIT_ENABLED"); val != "" {
		c.AuditEnabled = val == "true" || val == "1"
		c.sources["audit_enabled"] = "environment"
	}
	if val := os.Getenv("FOLIOBOARD_BLOG_UNSAFE_HTML"); val != "" {
		c.BlogUnsafeHTML = val == "true" || val == "1"
		c.sources["blog_unsafe_html"] = "environment"
	}
}

// ConfigFilePath returns the path to the config file
func (c *FolioConfig) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *FolioConfig) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// FormatText renders the configuration as aligned text, one attribute per
// line with its value and source.
func (c *FolioConfig) FormatText() string {
	lines := []struct {
		name  string
		value interface{}
	}{
		{"session_token_ttl", c.SessionTokenTTL},
		{"api_list_limit_max", c.APIListLimitMax},
		{"api_list_limit_default", c.APIListLimitDefault},
		{"audit_enabled", c.AuditEnabled},
		{"blog_unsafe_html", c.BlogUnsafeHTML},
	}

	out := fmt.Sprintf("Config file: %s\n\n", c.configFilePath)
	for _, line := range lines {
		out += fmt.Sprintf("%-24v %-10v (%s)\n", line.name, line.value, c.Source(line.name))
	}
	return out
}

// FormatJSON renders the configuration attributes as JSON.
func (c *FolioConfig) FormatJSON() (string, error) {
	attrs := map[string]interface{}{
		"session_token_ttl":      c.SessionTokenTTL,
		"api_list_limit_max":     c.APIListLimitMax,
		"api_list_limit_default": c.APIListLimitDefault,
		"audit_enabled":          c.AuditEnabled,
		"blog_unsafe_html":       c.BlogUnsafeHTML,
	}
	out, err := json.MarshalIndent(attrs, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// SessionTTL returns the session token TTL as a duration
func (c *FolioConfig) SessionTTL() time.Duration {
	return time.Duration(c.SessionTokenTTL) * time.Second
}

// ClampLimit resolves a requested page size against the configured bounds.
func (c *FolioConfig) ClampLimit(requested int) int {
	if requested <= 0 {
		return c.APIListLimitDefault
	}
	if requested > c.APIListLimitMax {
		return c.APIListLimitMax
	}
	return requested
}
