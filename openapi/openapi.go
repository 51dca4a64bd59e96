// Package openapi provides the subset of the OpenAPI Specification 3.1
// object model emitted by the mwstools generator.
//
// Reference: https://spec.openapis.org/oas/v3.1.0.html
//
// Maps whose key order matters for reproducible output (paths, component
// schemas, schema properties) use insertion-ordered maps; both JSON and
// YAML rendering preserve that order.
package openapi

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Document represents an OpenAPI 3.1 document.
type Document struct {
	OpenAPI    string                                    `json:"openapi"` // e.g. "3.1.0"
	Info       *Info                                     `json:"info"`
	Servers    []*Server                                 `json:"servers,omitempty"`
	Tags       []*Tag                                    `json:"tags,omitempty"`
	Paths      *orderedmap.OrderedMap[string, *PathItem] `json:"paths,omitempty"`
	Components *Components                               `json:"components,omitempty"`
	Security   []SecurityRequirement                     `json:"security,omitempty"`
}

// Info provides metadata about the API.
type Info struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Version     string `json:"version"`
}

// Server describes a server hosting the API.
type Server struct {
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// Tag adds metadata to a tag used by operations.
type Tag struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// PathItem describes the operations available on a single path.
// The Moodle REST protocol is POST-only, so only that method is modeled.
type PathItem struct {
	Post *Operation `json:"post,omitempty"`
}

// Operation describes a single API operation on a path.
type Operation struct {
	OperationID string                                    `json:"operationId,omitempty"`
	Summary     string                                    `json:"summary,omitempty"`
	Description string                                    `json:"description,omitempty"`
	Tags        []string                                  `json:"tags,omitempty"`
	RequestBody *RequestBody                              `json:"requestBody,omitempty"`
	Responses   *orderedmap.OrderedMap[string, *Response] `json:"responses,omitempty"`
}

// RequestBody describes a request body.
type RequestBody struct {
	Description string                `json:"description,omitempty"`
	Required    bool                  `json:"required,omitempty"`
	Content     map[string]*MediaType `json:"content,omitempty"`
}

// MediaType provides a schema for a media type.
type MediaType struct {
	Schema *Schema `json:"schema,omitempty"`
}

// Response describes a single response from an operation.
type Response struct {
	Description string                `json:"description"`
	Content     map[string]*MediaType `json:"content,omitempty"`
}

// Components holds reusable objects.
type Components struct {
	Schemas         *orderedmap.OrderedMap[string, *Schema] `json:"schemas,omitempty"`
	SecuritySchemes map[string]*SecurityScheme              `json:"securitySchemes,omitempty"`
}

// SecurityScheme defines a security scheme usable by operations.
type SecurityScheme struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Name        string `json:"name,omitempty"`
	In          string `json:"in,omitempty"`
}

// SecurityRequirement lists required security schemes.
type SecurityRequirement map[string][]string

// Schema represents the JSON Schema subset the generator emits.
type Schema struct {
	Ref                  string                                  `json:"$ref,omitempty"`
	Type                 string                                  `json:"type,omitempty"`
	Description          string                                  `json:"description,omitempty"`
	Default              any                                     `json:"default,omitempty"`
	Nullable             bool                                    `json:"nullable,omitempty"`
	Items                *Schema                                 `json:"items,omitempty"`
	Properties           *orderedmap.OrderedMap[string, *Schema] `json:"properties,omitempty"`
	Required             []string                                `json:"required,omitempty"`
	AdditionalProperties any                                     `json:"additionalProperties,omitempty"` // *Schema or bool
}

// NewSchemaMap returns an empty insertion-ordered schema map.
func NewSchemaMap() *orderedmap.OrderedMap[string, *Schema] {
	return orderedmap.New[string, *Schema]()
}

// NewPathMap returns an empty insertion-ordered path map.
func NewPathMap() *orderedmap.OrderedMap[string, *PathItem] {
	return orderedmap.New[string, *PathItem]()
}

// NewResponseMap returns an empty insertion-ordered response map.
func NewResponseMap() *orderedmap.OrderedMap[string, *Response] {
	return orderedmap.New[string, *Response]()
}

// SchemaRef returns a $ref schema pointing at the named component schema.
func SchemaRef(name string) *Schema {
	return &Schema{Ref: "#/components/schemas/" + name}
}

// PermissiveObject returns the open object schema used for shapes the
// extractor could not describe.
func PermissiveObject() *Schema {
	return &Schema{Type: "object", AdditionalProperties: true}
}
