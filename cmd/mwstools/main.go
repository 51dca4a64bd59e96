package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/mwstools/mwstools"
	"github.com/mwstools/mwstools/client"
	"github.com/mwstools/mwstools/generator"
	"github.com/mwstools/mwstools/internal/mcpserver"
	"github.com/mwstools/mwstools/params"
	"github.com/mwstools/mwstools/schema"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("mwstools v%s\n", mwstools.Version())
	case "help", "-h", "--help":
		printUsage()
	case "generate":
		if err := handleGenerate(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "genclient":
		if err := handleGenClient(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "call":
		if err := handleCall(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := handleMCP(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

// generateFlags contains flags for the generate command
type generateFlags struct {
	outputDir string
	baseName  string
	title     string
	serverURL string
}

func setupGenerateFlags() (*flag.FlagSet, *generateFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags := &generateFlags{}

	fs.StringVar(&flags.outputDir, "o", ".", "output directory for generated files")
	fs.StringVar(&flags.baseName, "base-name", "", "base name for output files (default: schema file name without extension)")
	fs.StringVar(&flags.title, "title", "", "document title override")
	fs.StringVar(&flags.serverURL, "server-url", "", "Moodle site base URL recorded in the servers section")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: mwstools generate [flags] <schema.json>\n\n")
		_, _ = fmt.Fprintf(output, "Generate an OpenAPI 3.1 document from an extracted function schema.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  mwstools generate moodle-4.5.json\n")
		_, _ = fmt.Fprintf(output, "  mwstools generate -o ./api -server-url https://moodle.example.edu moodle-4.5.json\n")
	}

	return fs, flags
}

func handleGenerate(args []string) error {
	fs, flags := setupGenerateFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("generate command requires exactly one schema file path")
	}

	schemaPath := fs.Arg(0)

	doc, err := schema.Load(schemaPath)
	if err != nil {
		return err
	}

	g := generator.New()
	g.Title = flags.title
	g.ServerURL = flags.serverURL

	result, err := g.Generate(doc)
	if err != nil {
		return fmt.Errorf("generating OpenAPI document: %w", err)
	}

	baseName := flags.baseName
	if baseName == "" {
		baseName = generator.BaseName(schemaPath)
	}
	if err := result.WriteFiles(flags.outputDir, baseName); err != nil {
		return err
	}

	fmt.Printf("Moodle Web Services OpenAPI Generator\n")
	fmt.Printf("=====================================\n\n")
	fmt.Printf("mwstools version: %s\n", mwstools.Version())
	fmt.Printf("Schema: %s\n", schemaPath)
	fmt.Printf("Moodle Release: %s\n", doc.MoodleRelease)
	fmt.Printf("Functions: %d\n", result.Stats.FunctionCount)
	fmt.Printf("Component Schemas: %d\n", result.Stats.SchemaCount)
	fmt.Printf("Tags: %d\n", result.Stats.TagCount)
	fmt.Printf("Generate Time: %v\n\n", result.GenerateTime)

	if len(result.Issues) > 0 {
		fmt.Printf("Issues:\n")
		for _, issue := range result.Issues {
			fmt.Printf("  - %s\n", issue)
		}
		fmt.Println()
	}

	fmt.Printf("Wrote %s/%s.openapi.json\n", flags.outputDir, baseName)
	fmt.Printf("Wrote %s/%s.openapi.yaml\n", flags.outputDir, baseName)
	return nil
}

// genClientFlags contains flags for the genclient command
type genClientFlags struct {
	output      string
	packageName string
}

func setupGenClientFlags() (*flag.FlagSet, *genClientFlags) {
	fs := flag.NewFlagSet("genclient", flag.ContinueOnError)
	flags := &genClientFlags{}

	fs.StringVar(&flags.output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.packageName, "package", "mws", "package name for the generated code")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: mwstools genclient [flags] <schema.json>\n\n")
		_, _ = fmt.Fprintf(output, "Generate a Go wrapper with one typed method per web service function.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  mwstools genclient moodle-4.5.json\n")
		_, _ = fmt.Fprintf(output, "  mwstools genclient -package moodle -o moodle/service.go moodle-4.5.json\n")
	}

	return fs, flags
}

func handleGenClient(args []string) error {
	fs, flags := setupGenClientFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("genclient command requires exactly one schema file path")
	}

	doc, err := schema.Load(fs.Arg(0))
	if err != nil {
		return err
	}

	src, err := generator.New().GenerateClient(doc, flags.packageName)
	if err != nil {
		return err
	}

	if flags.output == "" {
		fmt.Print(string(src))
		return nil
	}
	if err := os.WriteFile(flags.output, src, 0o600); err != nil {
		return fmt.Errorf("failed to write file %s: %w", flags.output, err)
	}
	fmt.Printf("Wrote %s (%d functions)\n", flags.output, len(doc.Functions))
	return nil
}

// kvFlags collects repeated key=value flag occurrences.
type kvFlags []string

func (f *kvFlags) String() string { return strings.Join(*f, ",") }

func (f *kvFlags) Set(value string) error {
	*f = append(*f, value)
	return nil
}

// callFlags contains flags for the call command
type callFlags struct {
	baseURL    string
	token      string
	timeout    time.Duration
	paramsJSON string
	paramsFile string
	paramKVs   kvFlags
}

func setupCallFlags() (*flag.FlagSet, *callFlags) {
	fs := flag.NewFlagSet("call", flag.ContinueOnError)
	flags := &callFlags{}

	fs.StringVar(&flags.baseURL, "url", os.Getenv("MWSTOOLS_BASE_URL"), "Moodle site base URL (default: MWSTOOLS_BASE_URL env var)")
	fs.StringVar(&flags.token, "token", os.Getenv("MWSTOOLS_TOKEN"), "web service token (default: MWSTOOLS_TOKEN env var)")
	fs.DurationVar(&flags.timeout, "timeout", client.DefaultTimeout, "per-call timeout")
	fs.StringVar(&flags.paramsJSON, "params", "", "function parameters as a JSON object")
	fs.StringVar(&flags.paramsFile, "params-file", "", "read function parameters from a JSON file")
	fs.Var(&flags.paramKVs, "param", "single key=value parameter; repeatable, applied after -params")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: mwstools call [flags] <function>\n\n")
		_, _ = fmt.Fprintf(output, "Call one web service function and print its JSON result.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  mwstools call -url https://moodle.example.edu -token $TOKEN core_webservice_get_site_info\n")
		_, _ = fmt.Fprintf(output, "  mwstools call -params '{\"ids\":[42]}' core_course_get_courses\n")
	}

	return fs, flags
}

func handleCall(args []string) error {
	fs, flags := setupCallFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("call command requires exactly one function name")
	}

	function := fs.Arg(0)

	p, err := loadParams(flags)
	if err != nil {
		return err
	}

	c, err := client.New(flags.baseURL, flags.token, client.WithTimeout(flags.timeout))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := c.Call(ctx, function, p)
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning [%s]: %s\n", w.WarningCode, w.Message)
	}

	pretty, err := json.MarshalIndent(json.RawMessage(result.Data), "", "  ")
	if err != nil {
		return fmt.Errorf("formatting response: %w", err)
	}
	fmt.Println(string(pretty))
	return nil
}

func loadParams(flags *callFlags) (*params.Values, error) {
	if flags.paramsJSON != "" && flags.paramsFile != "" {
		return nil, fmt.Errorf("-params and -params-file are mutually exclusive")
	}

	raw := []byte(flags.paramsJSON)
	if flags.paramsFile != "" {
		data, err := os.ReadFile(flags.paramsFile)
		if err != nil {
			return nil, fmt.Errorf("reading params file: %w", err)
		}
		raw = data
	}
	if len(raw) == 0 && len(flags.paramKVs) == 0 {
		return nil, nil
	}

	p := params.New()
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, p); err != nil {
			return nil, fmt.Errorf("parsing params: %w", err)
		}
	}
	for _, kv := range flags.paramKVs {
		key, value, found := strings.Cut(kv, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid -param %q: expected key=value", kv)
		}
		p.Set(key, value)
	}
	return p, nil
}

func handleMCP() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return mcpserver.Run(ctx)
}

func printUsage() {
	fmt.Println(`mwstools - Moodle Web Services Tools

Usage:
  mwstools <command> [options]

Commands:
  generate    Generate an OpenAPI 3.1 document from an extracted function schema
  genclient   Generate a typed Go wrapper for the functions in a schema
  call        Call one web service function and print its JSON result
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  mwstools generate moodle-4.5.json
  mwstools generate -o ./api -server-url https://moodle.example.edu moodle-4.5.json
  mwstools genclient -package moodle -o moodle/service.go moodle-4.5.json
  mwstools call -url https://moodle.example.edu -token $TOKEN core_webservice_get_site_info
  mwstools mcp

Run 'mwstools <command> --help' for more information on a command.`)
}
