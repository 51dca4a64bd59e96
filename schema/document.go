package schema

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
)

// Service identifies a built-in web service a function is exposed through.
type Service struct {
	ShortName string `json:"shortname"`
	Name      string `json:"name"`
}

// Function describes one remote web service function. Constructed by the
// external extraction step and never mutated afterward.
type Function struct {
	Name          string    `json:"name"`
	ClassName     string    `json:"classname,omitempty"`
	MethodName    string    `json:"methodname,omitempty"`
	Description   string    `json:"description,omitempty"`
	Type          string    `json:"type,omitempty"` // "read" or "write"
	AJAX          bool      `json:"ajax,omitempty"`
	LoginRequired bool      `json:"loginRequired,omitempty"`
	Capabilities  string    `json:"capabilities,omitempty"`
	Services      []Service `json:"services,omitempty"`
	Parameters    *Value    `json:"parameters,omitempty"`
	Returns       *Value    `json:"returns,omitempty"`
}

// Document is one extracted schema document: all remote functions for a
// single Moodle version.
type Document struct {
	MoodleVersion string     `json:"moodleVersion"`
	MoodleRelease string     `json:"moodleRelease"`
	GeneratedAt   string     `json:"generatedAt"` // ISO-8601
	Functions     []Function `json:"functions"`
}

// Parse decodes a schema document from JSON.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing schema document: %w", err)
	}
	return &doc, nil
}

// Load reads and decodes a schema document from a file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema document: %w", err)
	}
	return Parse(data)
}
