package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_DefaultValues(t *testing.T) {
	cfg := NewConfig()

	// Test default values
	assert.Equal(t, "#text", cfg.Keys.TextKey)
	assert.Equal(t, "", cfg.Keys.AttributePrefix)
	assert.Equal(t, CasingOriginal, cfg.Keys.Casing)
	assert.True(t, cfg.Coercion.Booleans)
	assert.True(t, cfg.Coercion.Numbers)
	assert.Equal(t, 2, cfg.Output.Indent)
	assert.False(t, cfg.Dev.Debug)
}

func TestConfig_LoadFromYAML(t *testing.T) {
	yamlContent := `
keys:
  text_key: "_value"
  attribute_prefix: "@"
  casing: "snake"
  mappings:
    "FirstName": "first"
coercion:
  booleans: true
  numbers: false
output:
  indent: 4
dev:
  debug: true
`

	// Create temp file
	tmpFile, err := os.CreateTemp("", "config_test_*.yml")
	require.NoError(t, err)
	defer func() { _ = os.Remove(tmpFile.Name()) }()

	_, err = tmpFile.WriteString(yamlContent)
	require.NoError(t, err)
	_ = tmpFile.Close()

	cfg, err := LoadConfig(tmpFile.Name())
	require.NoError(t, err)

	assert.Equal(t, "_value", cfg.Keys.TextKey)
	assert.Equal(t, "@", cfg.Keys.AttributePrefix)
	assert.Equal(t, CasingSnake, cfg.Keys.Casing)
	assert.Equal(t, "first", cfg.Keys.Mappings["FirstName"])
	assert.True(t, cfg.Coercion.Booleans)
	assert.False(t, cfg.Coercion.Numbers)
	assert.Equal(t, 4, cfg.Output.Indent)
	assert.True(t, cfg.Dev.Debug)
}

func TestConfig_LoadPartialYAMLKeepsDefaults(t *testing.T) {
	yamlContent := `
keys:
  attribute_prefix: "@"
`
	tmpFile, err := os.CreateTemp("", "config_test_*.yml")
	require.NoError(t, err)
	defer func() { _ = os.Remove(tmpFile.Name()) }()

	_, err = tmpFile.WriteString(yamlContent)
	require.NoError(t, err)
	_ = tmpFile.Close()

	cfg, err := LoadConfig(tmpFile.Name())
	require.NoError(t, err)

	assert.Equal(t, "@", cfg.Keys.AttributePrefix)
	// Untouched sections keep their defaults
	assert.Equal(t, "#text", cfg.Keys.TextKey)
	assert.True(t, cfg.Coercion.Numbers)
	assert.Equal(t, 2, cfg.Output.Indent)
}

func TestConfig_LoadInvalidCasing(t *testing.T) {
	yamlContent := `
keys:
  casing: "shouting"
`
	tmpFile, err := os.CreateTemp("", "config_test_*.yml")
	require.NoError(t, err)
	defer func() { _ = os.Remove(tmpFile.Name()) }()

	_, err = tmpFile.WriteString(yamlContent)
	require.NoError(t, err)
	_ = tmpFile.Close()

	_, err = LoadConfig(tmpFile.Name())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid key casing")
}

func TestConfig_LoadMissingFile(t *testing.T) {
	_, err := LoadConfig("/nonexistent/config.yml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestConfig_Validate(t *testing.T) {
	cfg := NewConfig()
	cfg.Keys.TextKey = ""
	assert.Error(t, cfg.Validate())

	cfg = NewConfig()
	cfg.Output.Indent = -1
	assert.Error(t, cfg.Validate())

	cfg = NewConfig()
	assert.NoError(t, cfg.Validate())
}

func TestConfig_GetKeyName(t *testing.T) {
	tests := []struct {
		name     string
		casing   string
		mappings map[string]string
		input    string
		expected string
	}{
		{"original keeps input", CasingOriginal, nil, "FirstName", "FirstName"},
		{"camel", CasingCamel, nil, "first-name", "firstName"},
		{"pascal", CasingPascal, nil, "first_name", "FirstName"},
		{"snake", CasingSnake, nil, "FirstName", "first_name"},
		{"kebab", CasingKebab, nil, "FirstName", "first-name"},
		{"mapping overrides casing", CasingSnake, map[string]string{"FirstName": "fn"}, "FirstName", "fn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			cfg.Keys.Casing = tt.casing
			if tt.mappings != nil {
				cfg.Keys.Mappings = tt.mappings
			}
			assert.Equal(t, tt.expected, cfg.GetKeyName(tt.input))
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "xml2object-config")
	require.NoError(t, err)
	defer func() { _ = os.RemoveAll(tempDir) }()

	configPath := filepath.Join(tempDir, ".xml2object.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("output:\n  indent: 4\n"), 0644))

	// Search starts in a nested directory and walks up to find the file
	nested := filepath.Join(tempDir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))

	originalDir, err := os.Getwd()
	require.NoError(t, err)
	defer func() { _ = os.Chdir(originalDir) }()
	require.NoError(t, os.Chdir(nested))

	found := FindConfigFile()
	require.NotEmpty(t, found)

	// Resolve symlinks before comparing; temp dirs are often symlinked
	wantPath, err := filepath.EvalSymlinks(configPath)
	require.NoError(t, err)
	gotPath, err := filepath.EvalSymlinks(found)
	require.NoError(t, err)
	assert.Equal(t, wantPath, gotPath)
}
