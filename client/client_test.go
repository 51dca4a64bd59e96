package client

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwstools/mwstools/wserrors"
)

func TestNew_Validation(t *testing.T) {
	t.Run("missing base URL", func(t *testing.T) {
		_, err := New("", "token")
		var verr *wserrors.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "baseUrl", verr.Field)
	})

	t.Run("base URL of only slashes", func(t *testing.T) {
		_, err := New("///", "token")
		var verr *wserrors.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "baseUrl", verr.Field)
	})

	t.Run("missing token", func(t *testing.T) {
		_, err := New("https://moodle.example.com", "")
		var verr *wserrors.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "token", verr.Field)
	})
}

func TestNew_Defaults(t *testing.T) {
	c, err := New("https://moodle.example.com", "token")
	require.NoError(t, err)
	assert.Equal(t, DefaultTimeout, c.Timeout())
	assert.Equal(t, "https://moodle.example.com/webservice/rest/server.php", c.Endpoint())
}

func TestNew_TrimsTrailingSlashes(t *testing.T) {
	c, err := New("https://moodle.example.com///", "token")
	require.NoError(t, err)
	assert.Equal(t, "https://moodle.example.com", c.BaseURL())
	assert.Equal(t, "https://moodle.example.com/webservice/rest/server.php", c.Endpoint())
}

func TestNew_Options(t *testing.T) {
	hc := &http.Client{}
	c, err := New("https://moodle.example.com", "token",
		WithHTTPClient(hc),
		WithTimeout(5*time.Second),
		WithLogger(NewSlogAdapter(nil)))
	require.NoError(t, err)
	assert.Same(t, hc, c.httpClient)
	assert.Equal(t, 5*time.Second, c.Timeout())

	t.Run("non-positive timeout keeps default", func(t *testing.T) {
		c, err := New("https://moodle.example.com", "token", WithTimeout(0))
		require.NoError(t, err)
		assert.Equal(t, DefaultTimeout, c.Timeout())
	})

	t.Run("nil overrides are ignored", func(t *testing.T) {
		c, err := New("https://moodle.example.com", "token",
			WithHTTPClient(nil), WithLogger(nil))
		require.NoError(t, err)
		assert.NotNil(t, c.httpClient)
		assert.NotNil(t, c.logger)
	})
}

func TestUserAgent(t *testing.T) {
	c, err := New("https://moodle.example.com", "token")
	require.NoError(t, err)
	assert.Contains(t, c.userAgent(), "mwstools/")
}
