// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes mwstools capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mwstools/mwstools"
)

const serverInstructions = `mwstools MCP server — explores Moodle web service schemas, calls site functions, and generates OpenAPI documents.

Configuration: Site credentials default from MWSTOOLS_* environment variables set in your MCP client config; per-request fields override them.

Key settings:
- MWSTOOLS_BASE_URL — default Moodle site base URL for call_function
- MWSTOOLS_TOKEN — default web service token for call_function
- MWSTOOLS_TIMEOUT_MS — default per-call timeout in milliseconds (default: 30000)

Schemas: list_functions and generate_openapi read an extracted function schema document (JSON) from a local path.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "mwstools", Version: mwstools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_functions",
		Description: "List web service functions declared in an extracted schema document. Filter by name prefix (e.g. core_course_ or mod_assign_) to narrow large schemas. Returns name, component tag, and description per function; use offset/limit to paginate.",
	}, handleListFunctions)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "call_function",
		Description: "Call one web service function on a Moodle site and return its JSON result. Parameters are given as a JSON object and encoded with the bracketed form convention (ids[0], options[sort]). Site base URL and token default from MWSTOOLS_BASE_URL and MWSTOOLS_TOKEN env vars. Application-level errors are returned with their error code, exception name, and debug info.",
	}, handleCallFunction)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_openapi",
		Description: "Generate an OpenAPI 3.1 document from an extracted schema document and write it to output_dir as both JSON and YAML. Returns the generated file names and document statistics. Title and server URL are optional overrides.",
	}, handleGenerateOpenAPI)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
