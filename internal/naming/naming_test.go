package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "moodle function name",
			input:    "core_course_get_courses",
			expected: "CoreCourseGetCourses",
		},
		{
			name:     "single segment",
			input:    "gradereport",
			expected: "Gradereport",
		},
		{
			name:     "hyphen separated",
			input:    "api-client",
			expected: "ApiClient",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "consecutive separators",
			input:    "core__course",
			expected: "CoreCourse",
		},
		{
			name:     "already cased segments survive",
			input:    "mod_SCORM_get",
			expected: "ModSCORMGet",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToPascalCase(tt.input), "ToPascalCase(%q)", tt.input)
		})
	}
}

func TestToCamelCase(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "moodle function name",
			input:    "core_course_get_courses",
			expected: "coreCourseGetCourses",
		},
		{
			name:     "single segment",
			input:    "gradereport",
			expected: "gradereport",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToCamelCase(tt.input), "ToCamelCase(%q)", tt.input)
		})
	}
}

func TestTagForFunction(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "four segments",
			input:    "core_course_get_courses",
			expected: "core_course",
		},
		{
			name:     "two segments",
			input:    "core_course",
			expected: "core_course",
		},
		{
			name:     "single segment",
			input:    "gradereport",
			expected: "gradereport",
		},
		{
			name:     "mod plugin",
			input:    "mod_assign_get_assignments",
			expected: "mod_assign",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TagForFunction(tt.input), "TagForFunction(%q)", tt.input)
		})
	}
}
