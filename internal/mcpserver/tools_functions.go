package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mwstools/mwstools/internal/naming"
	"github.com/mwstools/mwstools/schema"
)

// defaultListLimit caps list_functions output when no limit is given.
const defaultListLimit = 100

type listFunctionsInput struct {
	SchemaPath string `json:"schema_path"       jsonschema:"Path to the extracted function schema document (JSON)"`
	Prefix     string `json:"prefix,omitempty"  jsonschema:"Only list functions whose name starts with this prefix"`
	Offset     int    `json:"offset,omitempty"  jsonschema:"Number of matching functions to skip"`
	Limit      int    `json:"limit,omitempty"   jsonschema:"Maximum number of functions to return (default 100)"`
}

type functionSummary struct {
	Name        string `json:"name"`
	Tag         string `json:"tag"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}

type listFunctionsOutput struct {
	MoodleVersion string            `json:"moodle_version"`
	MoodleRelease string            `json:"moodle_release"`
	TotalCount    int               `json:"total_count"`
	MatchCount    int               `json:"match_count"`
	Functions     []functionSummary `json:"functions"`
}

func handleListFunctions(_ context.Context, _ *mcp.CallToolRequest, input listFunctionsInput) (*mcp.CallToolResult, listFunctionsOutput, error) {
	if input.SchemaPath == "" {
		return errResult(fmt.Errorf("schema_path is required")), listFunctionsOutput{}, nil
	}

	doc, err := schema.Load(input.SchemaPath)
	if err != nil {
		return errResult(err), listFunctionsOutput{}, nil
	}

	var matches []functionSummary
	for i := range doc.Functions {
		fn := &doc.Functions[i]
		if input.Prefix != "" && !strings.HasPrefix(fn.Name, input.Prefix) {
			continue
		}
		matches = append(matches, functionSummary{
			Name:        fn.Name,
			Tag:         naming.TagForFunction(fn.Name),
			Type:        fn.Type,
			Description: fn.Description,
		})
	}

	output := listFunctionsOutput{
		MoodleVersion: doc.MoodleVersion,
		MoodleRelease: doc.MoodleRelease,
		TotalCount:    len(doc.Functions),
		MatchCount:    len(matches),
		Functions:     paginate(matches, input.Offset, input.Limit),
	}
	return nil, output, nil
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to defaultListLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
