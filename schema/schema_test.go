package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `{
	"moodleVersion": "4.5",
	"moodleRelease": "4.5+ (Build: 20241108)",
	"generatedAt": "2024-11-08T09:30:00Z",
	"functions": [
		{
			"name": "core_course_get_courses",
			"classname": "core_course_external",
			"methodname": "get_courses",
			"description": "Return course details",
			"type": "read",
			"ajax": true,
			"capabilities": "moodle/course:view",
			"services": [{"shortname": "moodle_mobile_app", "name": "Moodle mobile web service"}],
			"parameters": {
				"kind": "object",
				"properties": {
					"options": {
						"kind": "object",
						"description": "options - operator OR is used",
						"properties": {
							"ids": {
								"kind": "array",
								"description": "List of course id.",
								"items": {"kind": "scalar", "type": "integer", "required": true}
							}
						}
					}
				}
			},
			"returns": {
				"kind": "array",
				"items": {
					"kind": "object",
					"properties": {
						"id": {"kind": "scalar", "type": "integer", "required": true, "description": "course id"},
						"fullname": {"kind": "scalar", "type": "string", "required": true},
						"summary": {"kind": "scalar", "type": "string", "nullable": true, "default": ""}
					}
				}
			}
		}
	]
}`

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(sampleDocument))
	require.NoError(t, err)

	assert.Equal(t, "4.5", doc.MoodleVersion)
	assert.Equal(t, "4.5+ (Build: 20241108)", doc.MoodleRelease)
	assert.Equal(t, "2024-11-08T09:30:00Z", doc.GeneratedAt)
	require.Len(t, doc.Functions, 1)

	fn := doc.Functions[0]
	assert.Equal(t, "core_course_get_courses", fn.Name)
	assert.Equal(t, "core_course_external", fn.ClassName)
	assert.Equal(t, "get_courses", fn.MethodName)
	assert.Equal(t, "read", fn.Type)
	assert.True(t, fn.AJAX)
	require.Len(t, fn.Services, 1)
	assert.Equal(t, "moodle_mobile_app", fn.Services[0].ShortName)
}

func TestParse_ValueKinds(t *testing.T) {
	doc, err := Parse([]byte(sampleDocument))
	require.NoError(t, err)

	fn := doc.Functions[0]

	require.NotNil(t, fn.Parameters)
	assert.Equal(t, KindObject, fn.Parameters.Kind)

	options, ok := fn.Parameters.Properties.Get("options")
	require.True(t, ok)
	assert.Equal(t, KindObject, options.Kind)

	ids, ok := options.Properties.Get("ids")
	require.True(t, ok)
	assert.Equal(t, KindArray, ids.Kind)
	require.NotNil(t, ids.Items)
	assert.Equal(t, KindScalar, ids.Items.Kind)
	assert.Equal(t, "integer", ids.Items.Type)
	assert.True(t, ids.Items.Required)

	require.NotNil(t, fn.Returns)
	assert.Equal(t, KindArray, fn.Returns.Kind)
}

func TestParse_PropertyOrderPreserved(t *testing.T) {
	doc, err := Parse([]byte(sampleDocument))
	require.NoError(t, err)

	row := doc.Functions[0].Returns.Items
	require.Equal(t, KindObject, row.Kind)

	var names []string
	for pair := row.Properties.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	assert.Equal(t, []string{"id", "fullname", "summary"}, names,
		"property order must match the source document")
}

func TestParse_Defaults(t *testing.T) {
	doc, err := Parse([]byte(sampleDocument))
	require.NoError(t, err)

	row := doc.Functions[0].Returns.Items

	summary, ok := row.Properties.Get("summary")
	require.True(t, ok)
	assert.True(t, summary.HasDefault)
	assert.Equal(t, "", summary.Default)
	assert.True(t, summary.Nullable)

	id, ok := row.Properties.Get("id")
	require.True(t, ok)
	assert.False(t, id.HasDefault, "no default declared")
}

func TestParse_UnknownKindFallsBack(t *testing.T) {
	doc, err := Parse([]byte(`{
		"moodleVersion": "4.5",
		"moodleRelease": "4.5",
		"generatedAt": "2024-11-08T09:30:00Z",
		"functions": [{"name": "odd_one", "parameters": {"kind": "mystery"}}]
	}`))
	require.NoError(t, err)
	assert.Equal(t, KindUnknown, doc.Functions[0].Parameters.Kind)
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := Parse([]byte(`{not json`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing schema document")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("testdata/does-not-exist.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading schema document")
}

func TestValue_PropertyCount(t *testing.T) {
	doc, err := Parse([]byte(sampleDocument))
	require.NoError(t, err)

	assert.Equal(t, 1, doc.Functions[0].Parameters.PropertyCount())
	assert.Equal(t, 0, doc.Functions[0].Returns.PropertyCount(), "arrays have no properties")

	var nilValue *Value
	assert.Equal(t, 0, nilValue.PropertyCount())
}

func TestValue_MarshalRoundTrip(t *testing.T) {
	doc, err := Parse([]byte(sampleDocument))
	require.NoError(t, err)

	data, err := doc.Functions[0].Returns.MarshalJSON()
	require.NoError(t, err)

	var again Value
	require.NoError(t, again.UnmarshalJSON(data))
	assert.Equal(t, KindArray, again.Kind)

	var names []string
	for pair := again.Items.Properties.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	assert.Equal(t, []string{"id", "fullname", "summary"}, names,
		"marshalling must preserve property order")
}
