package mwstools

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestVersion verifies that Version() returns the version variable.
// In normal builds, this is set via ldflags by GoReleaser.
// In development, it defaults to "dev".
func TestVersion(t *testing.T) {
	result := Version()

	assert.NotEmpty(t, result, "Version() should not return empty string")

	// We can't assert an exact value since it changes per build, but we can
	// verify it is either "dev" or a semantic version.
	assert.True(t,
		result == "dev" || strings.HasPrefix(result, "v"),
		"Version() should be 'dev' or start with 'v', got: %s", result)
}

// TestUserAgent verifies that UserAgent() returns a properly formatted User-Agent string.
func TestUserAgent(t *testing.T) {
	result := UserAgent()

	assert.NotEmpty(t, result, "UserAgent() should not return empty string")
	assert.True(t, strings.HasPrefix(result, "mwstools/"),
		"UserAgent() should start with 'mwstools/', got: %s", result)

	version := Version()
	assert.Equal(t, "mwstools/"+version, result,
		"UserAgent() should be 'mwstools/%s', got: %s", version, result)
}

// TestUserAgentFormat verifies that the UserAgent string is safe for HTTP headers.
func TestUserAgentFormat(t *testing.T) {
	userAgent := UserAgent()

	assert.NotContains(t, userAgent, " ", "UserAgent() should not contain spaces")
	assert.NotContains(t, userAgent, "\t", "UserAgent() should not contain tabs")
	assert.NotContains(t, userAgent, "\n", "UserAgent() should not contain newlines")
	assert.NotContains(t, userAgent, "\r", "UserAgent() should not contain carriage returns")
}
