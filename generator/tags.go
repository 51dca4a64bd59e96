package generator

import (
	"github.com/mwstools/mwstools/internal/maputil"
	"github.com/mwstools/mwstools/openapi"
)

// tagDescriptions assigns human-readable descriptions to well-known
// component tags. Tags absent from the table get a generated fallback.
var tagDescriptions = map[string]string{
	"core_badges":      "Badge functions",
	"core_calendar":    "Calendar and event functions",
	"core_cohort":      "Cohort management functions",
	"core_comment":     "Comment functions",
	"core_competency":  "Competency framework functions",
	"core_completion":  "Activity and course completion functions",
	"core_course":      "Course and course content functions",
	"core_enrol":       "Enrolment functions",
	"core_files":       "File management functions",
	"core_grades":      "Grade functions",
	"core_grading":     "Advanced grading functions",
	"core_group":       "Group and grouping functions",
	"core_message":     "Messaging and notification functions",
	"core_notes":       "Note functions",
	"core_rating":      "Rating functions",
	"core_role":        "Role assignment functions",
	"core_tag":         "Tag functions",
	"core_user":        "User account functions",
	"core_webservice":  "Web service introspection functions",
	"enrol_manual":     "Manual enrolment functions",
	"enrol_self":       "Self enrolment functions",
	"gradereport_user": "User grade report functions",
	"mod_assign":       "Assignment activity functions",
	"mod_book":         "Book activity functions",
	"mod_chat":         "Chat activity functions",
	"mod_choice":       "Choice activity functions",
	"mod_data":         "Database activity functions",
	"mod_feedback":     "Feedback activity functions",
	"mod_forum":        "Forum activity functions",
	"mod_glossary":     "Glossary activity functions",
	"mod_lesson":       "Lesson activity functions",
	"mod_quiz":         "Quiz activity functions",
	"mod_scorm":        "SCORM activity functions",
	"mod_wiki":         "Wiki activity functions",
	"mod_workshop":     "Workshop activity functions",
	"tool_mobile":      "Mobile admin tool functions",
}

// describeTag returns the fixed description for a tag, or a generated one
// for tags outside the lookup table.
func describeTag(tag string) string {
	if desc, ok := tagDescriptions[tag]; ok {
		return desc
	}
	return "Functions provided by the " + tag + " component"
}

// buildTags deduplicates and sorts the collected tag set.
func buildTags(tagSet map[string]bool) []*openapi.Tag {
	names := maputil.SortedKeys(tagSet)
	tags := make([]*openapi.Tag, 0, len(names))
	for _, name := range names {
		tags = append(tags, &openapi.Tag{Name: name, Description: describeTag(name)})
	}
	return tags
}
