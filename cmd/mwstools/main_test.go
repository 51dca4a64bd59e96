package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwstools/mwstools/params"
)

func TestLoadParams(t *testing.T) {
	t.Run("none given", func(t *testing.T) {
		p, err := loadParams(&callFlags{})
		require.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("JSON object", func(t *testing.T) {
		p, err := loadParams(&callFlags{paramsJSON: `{"ids":[42],"sort":"fullname"}`})
		require.NoError(t, err)
		assert.Equal(t, "ids%5B0%5D=42&sort=fullname", params.EncodeForm(p))
	})

	t.Run("repeated key=value", func(t *testing.T) {
		p, err := loadParams(&callFlags{paramKVs: kvFlags{"courseid=7", "groupid=2"}})
		require.NoError(t, err)
		assert.Equal(t, "courseid=7&groupid=2", params.EncodeForm(p))
	})

	t.Run("key=value overrides JSON", func(t *testing.T) {
		p, err := loadParams(&callFlags{
			paramsJSON: `{"courseid":1}`,
			paramKVs:   kvFlags{"courseid=7"},
		})
		require.NoError(t, err)
		assert.Equal(t, "courseid=7", params.EncodeForm(p))
	})

	t.Run("malformed key=value", func(t *testing.T) {
		_, err := loadParams(&callFlags{paramKVs: kvFlags{"courseid"}})
		require.Error(t, err)
	})

	t.Run("mutually exclusive sources", func(t *testing.T) {
		_, err := loadParams(&callFlags{paramsJSON: `{}`, paramsFile: "p.json"})
		require.Error(t, err)
	})
}
