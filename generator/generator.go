package generator

import (
	"fmt"
	"time"

	"github.com/mwstools/mwstools/internal/naming"
	"github.com/mwstools/mwstools/openapi"
	"github.com/mwstools/mwstools/schema"
	"github.com/mwstools/mwstools/wserrors"
)

// Default document metadata used when the Generator fields are left empty.
const (
	defaultTitle     = "Moodle Web Services API"
	defaultServerURL = "https://moodle.example.com"

	// restPath is the fixed REST endpoint path all functions are served from.
	restPath = "/webservice/rest/server.php"

	// exceptionSchemaName is the shared error response component schema.
	exceptionSchemaName = "Exception"

	formMediaType = "application/x-www-form-urlencoded"
	jsonMediaType = "application/json"
)

// Generator transforms schema documents into OpenAPI documents.
type Generator struct {
	// Title overrides the generated document title.
	// If empty, defaults to "Moodle Web Services API".
	Title string

	// ServerURL is the base URL recorded in the servers section.
	// If empty, a placeholder URL is used.
	ServerURL string
}

// New creates a Generator with default settings.
func New() *Generator {
	return &Generator{}
}

// Stats contains statistical information about a generated document.
type Stats struct {
	// FunctionCount is the number of remote functions transformed
	FunctionCount int
	// SchemaCount is the number of component schemas synthesized
	SchemaCount int
	// TagCount is the number of distinct tags derived
	TagCount int
}

// Result contains the outcome of one generation run.
type Result struct {
	// Document is the generated OpenAPI 3.1 document
	Document *openapi.Document
	// Stats contains counts describing the generated document
	Stats Stats
	// Issues are non-fatal observations about the input schema, such as
	// unknown shapes mapped to permissive objects
	Issues []string
	// GenerateTime is the time taken to build the document
	GenerateTime time.Duration
}

// Generate builds an OpenAPI 3.1 document from an extracted schema document.
// It is deterministic: paths, component schemas, and properties retain the
// input document's order, and tags are deduplicated and sorted.
func (g *Generator) Generate(doc *schema.Document) (*Result, error) {
	if doc == nil {
		return nil, &wserrors.ValidationError{Field: "document", Message: "must not be nil"}
	}

	start := time.Now()

	schemas := openapi.NewSchemaMap()
	schemas.Set(exceptionSchemaName, exceptionSchema())

	paths := openapi.NewPathMap()
	tagSet := make(map[string]bool)
	var issues []string

	for i := range doc.Functions {
		fn := &doc.Functions[i]
		pascal := naming.ToPascalCase(fn.Name)
		requestName := pascal + "Request"
		responseName := pascal + "Response"

		schemas.Set(requestName, requestSchema(fn.Parameters))
		schemas.Set(responseName, responseSchema(fn.Returns))

		if n := countUnknown(fn.Parameters) + countUnknown(fn.Returns); n > 0 {
			issues = append(issues, fmt.Sprintf(
				"%s: %d unknown-shape node(s) mapped to permissive objects", fn.Name, n))
		}

		tag := naming.TagForFunction(fn.Name)
		tagSet[tag] = true

		paths.Set("/functions/"+fn.Name, &openapi.PathItem{
			Post: g.operation(fn, tag, requestName, responseName),
		})
	}

	out := &openapi.Document{
		OpenAPI: "3.1.0",
		Info:    g.info(doc),
		Servers: []*openapi.Server{{
			URL:         g.serverURL(),
			Description: "Moodle site",
		}},
		Tags:  buildTags(tagSet),
		Paths: paths,
		Components: &openapi.Components{
			Schemas: schemas,
			SecuritySchemes: map[string]*openapi.SecurityScheme{
				"apiKey": {
					Type:        "apiKey",
					In:          "query",
					Name:        "wstoken",
					Description: "Moodle web service token",
				},
			},
		},
		Security: []openapi.SecurityRequirement{{"apiKey": {}}},
	}

	return &Result{
		Document: out,
		Stats: Stats{
			FunctionCount: len(doc.Functions),
			SchemaCount:   schemas.Len(),
			TagCount:      len(tagSet),
		},
		Issues:       issues,
		GenerateTime: time.Since(start),
	}, nil
}

// countUnknown walks a value tree and counts nodes whose kind the mapping
// cannot represent faithfully.
func countUnknown(v *schema.Value) int {
	if v == nil {
		return 0
	}
	switch v.Kind {
	case schema.KindScalar:
		return 0
	case schema.KindArray:
		return countUnknown(v.Items)
	case schema.KindObject:
		n := 0
		if v.Properties != nil {
			for pair := v.Properties.Oldest(); pair != nil; pair = pair.Next() {
				n += countUnknown(pair.Value)
			}
		}
		return n
	default:
		return 1
	}
}

func (g *Generator) info(doc *schema.Document) *openapi.Info {
	title := g.Title
	if title == "" {
		title = defaultTitle
	}
	description := "Web service API for Moodle " + doc.MoodleRelease +
		". Generated from the function schema extracted at " + doc.GeneratedAt + "."
	return &openapi.Info{
		Title:       title,
		Description: description,
		Version:     doc.MoodleVersion,
	}
}

func (g *Generator) serverURL() string {
	base := g.ServerURL
	if base == "" {
		base = defaultServerURL
	}
	return base + restPath
}

func (g *Generator) operation(fn *schema.Function, tag, requestName, responseName string) *openapi.Operation {
	responses := openapi.NewResponseMap()
	responses.Set("200", &openapi.Response{
		Description: "Successful response",
		Content: map[string]*openapi.MediaType{
			jsonMediaType: {Schema: openapi.SchemaRef(responseName)},
		},
	})
	responses.Set("400", &openapi.Response{
		Description: "Invalid parameter or request error",
		Content: map[string]*openapi.MediaType{
			jsonMediaType: {Schema: openapi.SchemaRef(exceptionSchemaName)},
		},
	})
	responses.Set("401", &openapi.Response{
		Description: "Authentication failed",
		Content: map[string]*openapi.MediaType{
			jsonMediaType: {Schema: openapi.SchemaRef(exceptionSchemaName)},
		},
	})

	return &openapi.Operation{
		OperationID: naming.ToCamelCase(fn.Name),
		Summary:     fn.Name,
		Description: operationDescription(fn),
		Tags:        []string{tag},
		RequestBody: &openapi.RequestBody{
			Required: true,
			Content: map[string]*openapi.MediaType{
				formMediaType: {Schema: openapi.SchemaRef(requestName)},
			},
		},
		Responses: responses,
	}
}

func operationDescription(fn *schema.Function) string {
	desc := fn.Description
	if fn.Capabilities != "" {
		if desc != "" {
			desc += " "
		}
		desc += "Required capabilities: " + fn.Capabilities + "."
	}
	return desc
}

// requestSchema maps a function's parameters tree, or synthesizes an empty
// object schema for functions that take none.
func requestSchema(parameters *schema.Value) *openapi.Schema {
	if parameters == nil {
		return &openapi.Schema{Type: "object"}
	}
	return valueSchema(parameters)
}

// responseSchema maps a function's returns tree, or synthesizes a nullable
// empty object for functions that return nothing.
func responseSchema(returns *schema.Value) *openapi.Schema {
	if returns == nil {
		return &openapi.Schema{Type: "object", Nullable: true}
	}
	return valueSchema(returns)
}

// valueSchema recursively maps one schema.Value node to its OpenAPI schema.
// Unrecognized shapes map to a permissive open object rather than failing:
// the extractor sees plugin-defined structures this generator cannot know.
func valueSchema(v *schema.Value) *openapi.Schema {
	if v == nil {
		return openapi.PermissiveObject()
	}

	switch v.Kind {
	case schema.KindScalar:
		s := &openapi.Schema{
			Type:        v.Type,
			Description: v.Description,
			Nullable:    v.Nullable,
		}
		if v.HasDefault {
			s.Default = v.Default
		}
		return s

	case schema.KindArray:
		items := openapi.PermissiveObject()
		if v.Items != nil {
			items = valueSchema(v.Items)
		}
		return &openapi.Schema{
			Type:        "array",
			Description: v.Description,
			Items:       items,
		}

	case schema.KindObject:
		// Zero declared properties means the extractor saw an unknown
		// shape, not an empty one.
		if v.PropertyCount() == 0 {
			s := openapi.PermissiveObject()
			s.Description = v.Description
			return s
		}
		properties := openapi.NewSchemaMap()
		var required []string
		for pair := v.Properties.Oldest(); pair != nil; pair = pair.Next() {
			properties.Set(pair.Key, valueSchema(pair.Value))
			if pair.Value != nil && pair.Value.Required {
				required = append(required, pair.Key)
			}
		}
		return &openapi.Schema{
			Type:        "object",
			Description: v.Description,
			Properties:  properties,
			Required:    required,
		}

	default:
		return openapi.PermissiveObject()
	}
}

// exceptionSchema is the shared shape of Moodle error responses.
func exceptionSchema() *openapi.Schema {
	properties := openapi.NewSchemaMap()
	properties.Set("message", &openapi.Schema{
		Type:        "string",
		Description: "Human-readable error message",
	})
	properties.Set("errorcode", &openapi.Schema{
		Type:        "string",
		Description: "Moodle error code",
	})
	properties.Set("exception", &openapi.Schema{
		Type:        "string",
		Description: "Server-side exception class name",
	})
	properties.Set("debuginfo", &openapi.Schema{
		Type:        "string",
		Description: "Additional debugging detail when site debugging is enabled",
	})
	return &openapi.Schema{
		Type:        "object",
		Description: "Error response returned by the web service endpoint",
		Properties:  properties,
		Required:    []string{"message"},
	}
}
