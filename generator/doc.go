// Package generator transforms extracted Moodle function-schema documents
// into OpenAPI 3.1 documents and typed Go client wrappers.
//
// The transformation is a pure function of its input: given the same schema
// document, the generated OpenAPI document is byte-identical, including the
// order of paths, component schemas, and object properties.
//
// Basic usage:
//
//	doc, err := schema.Load("moodle-4.5.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := generator.New().Generate(doc)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := result.WriteFiles("out", "moodle-4.5"); err != nil {
//		log.Fatal(err)
//	}
package generator
