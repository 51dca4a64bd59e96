package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name     string
		build    func() *Values
		expected []Pair
	}{
		{
			name: "scalars encode literally",
			build: func() *Values {
				return New().
					Set("id", 42).
					Set("name", "Algebra I").
					Set("ratio", 1.5)
			},
			expected: []Pair{
				{"id", "42"},
				{"name", "Algebra I"},
				{"ratio", "1.5"},
			},
		},
		{
			name: "booleans encode as 1 and 0",
			build: func() *Values {
				return New().Set("visible", true).Set("hidden", false)
			},
			expected: []Pair{
				{"visible", "1"},
				{"hidden", "0"},
			},
		},
		{
			name: "nil values are omitted entirely",
			build: func() *Values {
				return New().Set("flag", true).Set("missing", nil)
			},
			expected: []Pair{
				{"flag", "1"},
			},
		},
		{
			name: "array of objects is index keyed",
			build: func() *Values {
				return New().Set("a", []any{
					New().Set("x", 1),
					New().Set("x", 2),
				})
			},
			expected: []Pair{
				{"a[0][x]", "1"},
				{"a[1][x]", "2"},
			},
		},
		{
			name: "array of scalars",
			build: func() *Values {
				return New().Set("ids", []int{6, 7, 9})
			},
			expected: []Pair{
				{"ids[0]", "6"},
				{"ids[1]", "7"},
				{"ids[2]", "9"},
			},
		},
		{
			name: "nested arrays recurse",
			build: func() *Values {
				return New().Set("grid", []any{[]any{1, 2}, []any{3}})
			},
			expected: []Pair{
				{"grid[0][0]", "1"},
				{"grid[0][1]", "2"},
				{"grid[1][0]", "3"},
			},
		},
		{
			name: "nested objects use subkey brackets",
			build: func() *Values {
				return New().Set("options", New().
					Set("ids", []any{6}).
					Set("sort", "name"))
			},
			expected: []Pair{
				{"options[ids][0]", "6"},
				{"options[sort]", "name"},
			},
		},
		{
			name: "plain map iterates in sorted key order",
			build: func() *Values {
				return New().Set("criteria", map[string]any{"z": 1, "a": 2})
			},
			expected: []Pair{
				{"criteria[a]", "2"},
				{"criteria[z]", "1"},
			},
		},
		{
			name: "unrepresentable values are skipped",
			build: func() *Values {
				return New().
					Set("fn", func() {}).
					Set("ok", "yes")
			},
			expected: []Pair{
				{"ok", "yes"},
			},
		},
		{
			name: "empty values encodes to nothing",
			build: func() *Values {
				return New()
			},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Encode(tt.build()))
		})
	}
}

func TestEncode_OnePairPerTerminalScalar(t *testing.T) {
	// Every reachable terminal scalar yields exactly one pair; nil branches
	// yield none.
	v := New().
		Set("a", []any{New().Set("x", 1).Set("y", nil), New().Set("x", 2)}).
		Set("b", New().Set("c", New().Set("d", "deep"))).
		Set("skip", nil)

	pairs := Encode(v)
	require.Len(t, pairs, 3)
	assert.Equal(t, []Pair{
		{"a[0][x]", "1"},
		{"a[1][x]", "2"},
		{"b[c][d]", "deep"},
	}, pairs)
}

func TestEncode_InsertionOrderPreserved(t *testing.T) {
	v := New().Set("z", 1).Set("a", 2).Set("m", 3)
	pairs := Encode(v)
	keys := make([]string, len(pairs))
	for i, p := range pairs {
		keys[i] = p.Key
	}
	assert.Equal(t, []string{"z", "a", "m"}, keys, "order must follow insertion, not sorting")
}

func TestEncode_NilValues(t *testing.T) {
	assert.Nil(t, Encode(nil))
}

func TestEncodeForm(t *testing.T) {
	t.Run("escapes keys and values", func(t *testing.T) {
		v := New().Set("options", New().Set("name", "a & b"))
		assert.Equal(t, "options%5Bname%5D=a+%26+b", EncodeForm(v))
	})

	t.Run("joins pairs in order", func(t *testing.T) {
		v := New().Set("b", 1).Set("a", 2)
		assert.Equal(t, "b=1&a=2", EncodeForm(v))
	})

	t.Run("empty values", func(t *testing.T) {
		assert.Equal(t, "", EncodeForm(New()))
	})
}

func TestFromMap(t *testing.T) {
	v := FromMap(map[string]any{"z": 1, "a": 2})
	assert.Equal(t, []Pair{{"a", "2"}, {"z", "1"}}, Encode(v), "FromMap inserts keys sorted")
}
