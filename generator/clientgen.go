package generator

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/mwstools/mwstools/internal/naming"
	"github.com/mwstools/mwstools/schema"
	"github.com/mwstools/mwstools/wserrors"
)

// clientTemplate renders one thin wrapper method per remote function.
// The wrappers are mechanical: all typing beyond the function name lives in
// the generated OpenAPI document.
var clientTemplate = template.Must(template.New("client").Parse(`// Code generated by mwstools. DO NOT EDIT.

package {{.Package}}

import (
	"context"

	"github.com/mwstools/mwstools/client"
	"github.com/mwstools/mwstools/params"
)

// Service wraps a client with one method per web service function.
type Service struct {
	c *client.Client
}

// NewService returns a Service backed by c.
func NewService(c *client.Client) *Service {
	return &Service{c: c}
}
{{range .Functions}}
// {{.GoName}} calls the {{.Name}} web service function.{{if .Comment}}
//
// {{.Comment}}{{end}}
func (s *Service) {{.GoName}}(ctx context.Context, p *params.Values) (*client.CallResult, error) {
	return s.c.Call(ctx, {{printf "%q" .Name}}, p)
}
{{end}}`))

type clientTemplateData struct {
	Package   string
	Functions []clientTemplateFunction
}

type clientTemplateFunction struct {
	Name    string
	GoName  string
	Comment string
}

// GenerateClient renders a Go source file with a typed wrapper method for
// every function in doc, formatted with goimports.
func (g *Generator) GenerateClient(doc *schema.Document, packageName string) ([]byte, error) {
	if doc == nil {
		return nil, &wserrors.ValidationError{Field: "document", Message: "must not be nil"}
	}
	if packageName == "" {
		packageName = "mws"
	}

	data := clientTemplateData{Package: packageName}
	for i := range doc.Functions {
		fn := &doc.Functions[i]
		data.Functions = append(data.Functions, clientTemplateFunction{
			Name:    fn.Name,
			GoName:  naming.ToPascalCase(fn.Name),
			Comment: commentText(fn.Description),
		})
	}

	var buf bytes.Buffer
	if err := clientTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering client template: %w", err)
	}

	formatted, err := imports.Process(packageName+".go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting generated client: %w", err)
	}
	return formatted, nil
}

// commentText flattens an extracted description into a single doc-comment
// line. Extracted descriptions can carry embedded markup and newlines that
// would break the generated source.
func commentText(description string) string {
	flat := strings.Join(strings.Fields(description), " ")
	return strings.TrimSpace(flat)
}
