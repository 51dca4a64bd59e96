package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mwstools/mwstools/generator"
	"github.com/mwstools/mwstools/schema"
)

type generateOpenAPIInput struct {
	SchemaPath string `json:"schema_path"           jsonschema:"Path to the extracted function schema document (JSON)"`
	OutputDir  string `json:"output_dir"            jsonschema:"Directory to write the generated OpenAPI files to"`
	BaseName   string `json:"base_name,omitempty"   jsonschema:"Base name for output files (default: schema file name without extension)"`
	Title      string `json:"title,omitempty"       jsonschema:"Document title override"`
	ServerURL  string `json:"server_url,omitempty"  jsonschema:"Moodle site base URL recorded in the servers section"`
}

type generateOpenAPIOutput struct {
	OutputDir     string   `json:"output_dir"`
	Files         []string `json:"files"`
	FunctionCount int      `json:"function_count"`
	SchemaCount   int      `json:"schema_count"`
	TagCount      int      `json:"tag_count"`
	Issues        []string `json:"issues,omitempty"`
	GenerateTime  string   `json:"generate_time"`
}

func handleGenerateOpenAPI(_ context.Context, _ *mcp.CallToolRequest, input generateOpenAPIInput) (*mcp.CallToolResult, generateOpenAPIOutput, error) {
	if input.SchemaPath == "" {
		return errResult(fmt.Errorf("schema_path is required")), generateOpenAPIOutput{}, nil
	}
	if input.OutputDir == "" {
		return errResult(fmt.Errorf("output_dir is required")), generateOpenAPIOutput{}, nil
	}

	doc, err := schema.Load(input.SchemaPath)
	if err != nil {
		return errResult(err), generateOpenAPIOutput{}, nil
	}

	g := generator.New()
	g.Title = input.Title
	g.ServerURL = input.ServerURL

	result, err := g.Generate(doc)
	if err != nil {
		return errResult(err), generateOpenAPIOutput{}, nil
	}

	baseName := input.BaseName
	if baseName == "" {
		baseName = generator.BaseName(input.SchemaPath)
	}
	if err := result.WriteFiles(input.OutputDir, baseName); err != nil {
		return errResult(fmt.Errorf("failed to write generated files: %w", err)), generateOpenAPIOutput{}, nil
	}

	output := generateOpenAPIOutput{
		OutputDir: input.OutputDir,
		Files: []string{
			baseName + ".openapi.json",
			baseName + ".openapi.yaml",
		},
		FunctionCount: result.Stats.FunctionCount,
		SchemaCount:   result.Stats.SchemaCount,
		TagCount:      result.Stats.TagCount,
		Issues:        result.Issues,
		GenerateTime:  result.GenerateTime.String(),
	}
	return nil, output, nil
}
