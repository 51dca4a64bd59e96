package generator

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwstools/mwstools/schema"
)

func TestGenerateClient(t *testing.T) {
	doc, err := schema.Parse([]byte(testDocument))
	require.NoError(t, err)

	src, err := New().GenerateClient(doc, "moodle")
	require.NoError(t, err)
	code := string(src)

	assert.True(t, strings.HasPrefix(code, "// Code generated by mwstools. DO NOT EDIT."))
	assert.Contains(t, code, "package moodle")
	assert.Contains(t, code, "func NewService(c *client.Client) *Service")
	assert.Contains(t, code,
		`func (s *Service) CoreCourseGetCourses(ctx context.Context, p *params.Values) (*client.CallResult, error)`)
	assert.Contains(t, code, `s.c.Call(ctx, "core_course_get_courses", p)`)
	assert.Contains(t, code, "// CoreCourseGetCourses calls the core_course_get_courses web service function.")
	assert.Contains(t, code, "// Return course details")

	// Output must be valid Go.
	fset := token.NewFileSet()
	_, err = parser.ParseFile(fset, "moodle.go", src, parser.ParseComments)
	require.NoError(t, err)
}

func TestGenerateClient_DefaultPackage(t *testing.T) {
	doc, err := schema.Parse([]byte(testDocument))
	require.NoError(t, err)

	src, err := New().GenerateClient(doc, "")
	require.NoError(t, err)
	assert.Contains(t, string(src), "package mws")
}

func TestGenerateClient_NilDocument(t *testing.T) {
	_, err := New().GenerateClient(nil, "moodle")
	require.Error(t, err)
}

func TestCommentText(t *testing.T) {
	assert.Equal(t, "", commentText(""))
	assert.Equal(t, "a b c", commentText("  a\n b\t\tc "))
}
