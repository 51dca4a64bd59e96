package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/mwstools/mwstools/yamlenc"
)

// Output files are written with restrictive permissions; generated specs can
// reference internal site layouts.
const outputFileMode = 0o600

// BaseName derives the artifact base name from an input schema path:
// the file name with its extension stripped.
// Example: "schemas/moodle-4.5.json" -> "moodle-4.5"
func BaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// WriteFiles writes the generated OpenAPI document to outputDir as both
// <baseName>.openapi.json and <baseName>.openapi.yaml. The directory is
// created if it doesn't exist.
func (r *Result) WriteFiles(outputDir, baseName string) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	jsonData, err := json.MarshalIndent(r.Document, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling OpenAPI document: %w", err)
	}
	jsonData = append(jsonData, '\n')
	jsonPath := filepath.Join(outputDir, baseName+".openapi.json")
	if err := os.WriteFile(jsonPath, jsonData, outputFileMode); err != nil {
		return fmt.Errorf("failed to write file %s: %w", jsonPath, err)
	}

	yamlData, err := yamlenc.Marshal(r.Document)
	if err != nil {
		return fmt.Errorf("rendering OpenAPI document as YAML: %w", err)
	}
	yamlPath := filepath.Join(outputDir, baseName+".openapi.yaml")
	if err := os.WriteFile(yamlPath, yamlData, outputFileMode); err != nil {
		return fmt.Errorf("failed to write file %s: %w", yamlPath, err)
	}

	return nil
}
