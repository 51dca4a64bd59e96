package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCaser capitalizes the first letter of a segment without lowering
// the rest, so already-cased input survives conversion.
var titleCaser = cases.Title(language.English, cases.NoLower)

// isSeparator reports whether r separates name segments.
// Moodle function names use underscores; hyphen, dot and slash are
// accepted for file-derived names.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || r == '/'
}

// ToPascalCase converts a separator-delimited string to PascalCase.
// Example: "core_course_get_courses" -> "CoreCourseGetCourses"
func ToPascalCase(s string) string {
	if s == "" {
		return ""
	}

	var result strings.Builder
	for _, segment := range strings.FieldsFunc(s, isSeparator) {
		result.WriteString(titleCaser.String(segment))
	}
	return result.String()
}

// ToCamelCase converts a string to camelCase.
// Like PascalCase but with the first letter lowercase.
// Example: "core_course_get_courses" -> "coreCourseGetCourses"
func ToCamelCase(s string) string {
	pascal := ToPascalCase(s)
	if pascal == "" {
		return ""
	}
	runes := []rune(pascal)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// TagForFunction derives the grouping tag for a web service function name:
// the first two underscore-delimited segments, or the first segment alone
// if there is only one.
// Example: "core_course_get_courses" -> "core_course"
// Example: "gradereport" -> "gradereport"
func TagForFunction(name string) string {
	segments := strings.SplitN(name, "_", 3)
	if len(segments) >= 2 {
		return segments[0] + "_" + segments[1]
	}
	return segments[0]
}
