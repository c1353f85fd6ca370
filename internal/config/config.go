package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iancoleman/strcase"
	"gopkg.in/yaml.v3"
)

// Key casing policies applied to output object keys.
const (
	CasingOriginal = "original"
	CasingCamel    = "camel"
	CasingPascal   = "pascal"
	CasingSnake    = "snake"
	CasingKebab    = "kebab"
)

// Config represents the complete configuration for xml2object
type Config struct {
	Keys     KeysConfig     `yaml:"keys"`
	Coercion CoercionConfig `yaml:"coercion"`
	Output   OutputConfig   `yaml:"output"`
	Dev      DevConfig      `yaml:"dev"`
}

// KeysConfig controls how XML names become JSON object keys
type KeysConfig struct {
	// TextKey is the reserved key holding the text content of an element
	// that cannot collapse to a bare scalar (it also carries attributes,
	// or it is the document root).
	TextKey string `yaml:"text_key"`
	// AttributePrefix is prepended to attribute keys. Empty by default;
	// set to "@" for mxj-style output.
	AttributePrefix string `yaml:"attribute_prefix"`
	// Casing is one of original, camel, pascal, snake, kebab.
	Casing string `yaml:"casing"`
	// Mappings overrides individual keys before casing is considered.
	Mappings map[string]string `yaml:"mappings"`
}

// CoercionConfig controls scalar type inference on leaf text and attributes
type CoercionConfig struct {
	Booleans bool `yaml:"booleans"`
	Numbers  bool `yaml:"numbers"`
}

// OutputConfig controls JSON rendering
type OutputConfig struct {
	// Indent is the number of spaces per level; zero emits compact JSON.
	Indent int `yaml:"indent"`
}

// DevConfig contains development/debug options
type DevConfig struct {
	Debug   bool `yaml:"debug"`
	Verbose bool `yaml:"verbose"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Keys: KeysConfig{
			TextKey:         "#text",
			AttributePrefix: "",
			Casing:          CasingOriginal,
			Mappings:        make(map[string]string),
		},
		Coercion: CoercionConfig{
			Booleans: true,
			Numbers:  true,
		},
		Output: OutputConfig{
			Indent: 2,
		},
		Dev: DevConfig{
			Debug:   false,
			Verbose: false,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults
	cfg := NewConfig()

	// Parse YAML
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that configured values are usable
func (c *Config) Validate() error {
	switch c.Keys.Casing {
	case CasingOriginal, CasingCamel, CasingPascal, CasingSnake, CasingKebab:
	default:
		return fmt.Errorf("invalid key casing %q: must be one of original, camel, pascal, snake, kebab", c.Keys.Casing)
	}
	if c.Keys.TextKey == "" {
		return fmt.Errorf("keys.text_key must not be empty")
	}
	if c.Output.Indent < 0 {
		return fmt.Errorf("output.indent must not be negative")
	}
	return nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".xml2object.yml", ".xml2object.yaml", "xml2object.yml", "xml2object.yaml"}

	// Start from current directory
	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		// Move up one directory
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

// GetKeyName returns the JSON object key for an XML name, applying mapping
// overrides first and then the configured casing policy
func (c *Config) GetKeyName(xmlName string) string {
	// Check custom mappings first
	if mapped, exists := c.Keys.Mappings[xmlName]; exists {
		return mapped
	}

	switch c.Keys.Casing {
	case CasingCamel:
		return strcase.ToLowerCamel(xmlName)
	case CasingPascal:
		return strcase.ToCamel(xmlName)
	case CasingSnake:
		return strcase.ToSnake(xmlName)
	case CasingKebab:
		return strcase.ToKebab(xmlName)
	}

	// Return original name
	return xmlName
}
