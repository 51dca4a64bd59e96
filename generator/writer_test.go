package generator

import (
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func TestBaseName(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"schemas/moodle-4.5.json", "moodle-4.5"},
		{"moodle.json", "moodle"},
		{"/abs/path/site-schema.json", "site-schema"},
		{"noext", "noext"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, BaseName(tc.path), "BaseName(%q)", tc.path)
	}
}

func TestWriteFiles(t *testing.T) {
	result := testGenerate(t)
	dir := filepath.Join(t.TempDir(), "out")

	require.NoError(t, result.WriteFiles(dir, "moodle-4.5"))

	jsonData, err := os.ReadFile(filepath.Join(dir, "moodle-4.5.openapi.json"))
	require.NoError(t, err)
	assert.True(t, len(jsonData) > 0 && jsonData[len(jsonData)-1] == '\n',
		"JSON output should end with a newline")

	var jsonDoc map[string]any
	require.NoError(t, json.Unmarshal(jsonData, &jsonDoc))
	assert.Equal(t, "3.1.0", jsonDoc["openapi"])

	yamlData, err := os.ReadFile(filepath.Join(dir, "moodle-4.5.openapi.yaml"))
	require.NoError(t, err)

	var yamlDoc map[string]any
	require.NoError(t, yaml.Unmarshal(yamlData, &yamlDoc))
	assert.Equal(t, "3.1.0", yamlDoc["openapi"])

	// Both renderings must describe the same paths.
	jsonPaths, ok := jsonDoc["paths"].(map[string]any)
	require.True(t, ok)
	yamlPaths, ok := yamlDoc["paths"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, len(jsonPaths), len(yamlPaths))
	for path := range jsonPaths {
		assert.Contains(t, yamlPaths, path)
	}
}
