// Package mwstools provides tools for working with Moodle Web Services:
// a typed runtime client and an OpenAPI 3.1 generator for extracted
// function-schema documents.
//
// # Overview
//
// The library consists of the following packages:
//
//   - schema: Parse extracted Moodle function-schema documents
//   - generator: Transform a schema document into an OpenAPI 3.1 document
//     and generate typed Go client wrappers
//   - openapi: Document model for the generated OpenAPI subset
//   - client: Call Moodle Web Service functions over the REST protocol
//   - params: Encode nested parameter trees into the flat bracketed
//     form encoding the REST endpoint expects
//   - wserrors: Structured error types shared across the library
//   - yamlenc: Minimal YAML emitter for generated OpenAPI documents
//
// # Quick Start
//
// Call a web service function:
//
//	import (
//		"github.com/mwstools/mwstools/client"
//		"github.com/mwstools/mwstools/params"
//	)
//
//	c, err := client.New("https://moodle.example.edu", token)
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := c.Call(ctx, "core_course_get_courses", params.New())
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Generate an OpenAPI document from an extracted schema:
//
//	import (
//		"github.com/mwstools/mwstools/generator"
//		"github.com/mwstools/mwstools/schema"
//	)
//
//	doc, err := schema.Load("moodle-4.5.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := generator.New().Generate(doc)
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = result.WriteFiles("out", "moodle-4.5")
//
// # Error Handling
//
// All failures surface as one of the structured types in the wserrors
// package and can be distinguished with errors.Is and errors.As. Nothing
// in this library retries or swallows a failure; every error reaches the
// caller as a single attempt outcome.
//
// # Command-Line Interface
//
// In addition to the library packages, mwstools provides a command-line
// interface:
//
//	# Generate OpenAPI artifacts from an extracted schema document
//	mwstools generate -o out moodle-4.5.json
//
//	# Call a web service function ad hoc
//	mwstools call -url https://moodle.example.edu -token $TOKEN core_webservice_get_site_info
//
//	# Serve library capabilities as MCP tools over stdio
//	mwstools mcp
//
// Install the CLI:
//
//	go install github.com/mwstools/mwstools/cmd/mwstools@latest
package mwstools
