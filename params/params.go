// Package params encodes nested parameter trees into the flat bracketed
// key/value form the Moodle REST endpoint expects.
//
// A nested tree such as
//
//	params.New().Set("options", params.New().Set("ids", []any{6, 7}))
//
// encodes to the flat pairs
//
//	options[ids][0]=6
//	options[ids][1]=7
//
// Encoding preserves the insertion order of [Values]; the remote endpoint
// can be order-sensitive for repeated array keys. Values the encoder cannot
// represent are skipped silently rather than rejected: the endpoint treats
// absent keys as absent parameters, so leniency here is deliberate.
//
// Input trees must be acyclic. The encoder performs no cycle detection;
// encoding a cyclic value is undefined behavior.
package params

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/mwstools/mwstools/internal/maputil"
)

// Values is an insertion-ordered mapping of parameter names to values.
//
// Permitted value types: nil, bool, string, integer and float kinds,
// json.Number, []any and typed scalar slices, *Values, ordered maps, and
// map[string]any (iterated in sorted key order for determinism). Anything
// else is skipped during encoding.
type Values struct {
	om *orderedmap.OrderedMap[string, any]
}

// New returns an empty Values.
func New() *Values {
	return &Values{om: orderedmap.New[string, any]()}
}

// FromMap builds a Values from a plain map, inserting keys in sorted order
// so the result is deterministic.
func FromMap(m map[string]any) *Values {
	v := New()
	for _, k := range maputil.SortedKeys(m) {
		v.Set(k, m[k])
	}
	return v
}

// Set stores value under key, appending the key if new and keeping its
// original position if already present. Returns v for chaining.
func (v *Values) Set(key string, value any) *Values {
	v.om.Set(key, value)
	return v
}

// Get returns the value stored under key.
func (v *Values) Get(key string) (any, bool) {
	return v.om.Get(key)
}

// Has reports whether key is present.
func (v *Values) Has(key string) bool {
	_, ok := v.om.Get(key)
	return ok
}

// Len returns the number of top-level keys.
func (v *Values) Len() int {
	return v.om.Len()
}

// Each calls fn for every key/value pair in insertion order.
func (v *Values) Each(fn func(key string, value any)) {
	for pair := v.om.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// MarshalJSON renders v as a JSON object preserving key order.
func (v *Values) MarshalJSON() ([]byte, error) {
	if v.om == nil {
		return []byte("{}"), nil
	}
	return v.om.MarshalJSON()
}

// UnmarshalJSON parses a JSON object into v preserving key order. Nested
// objects decode as ordered maps, so they re-encode in document order.
func (v *Values) UnmarshalJSON(data []byte) error {
	if v.om == nil {
		v.om = orderedmap.New[string, any]()
	}
	return v.om.UnmarshalJSON(data)
}

// Pair is one flat encoded key/value entry.
type Pair struct {
	Key   string
	Value string
}

// Encode flattens v into ordered key/value pairs suitable for a URL-encoded
// form body. One pair is produced per terminal scalar reachable in the tree;
// nil values and unrepresentable values produce no pair.
func Encode(v *Values) []Pair {
	if v == nil {
		return nil
	}
	var pairs []Pair
	v.Each(func(key string, value any) {
		pairs = encodeValue(key, value, pairs)
	})
	return pairs
}

// EncodeForm flattens v and renders it as an application/x-www-form-urlencoded
// request body, preserving pair order.
func EncodeForm(v *Values) string {
	pairs := Encode(v)
	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

// encodeValue appends the flat pairs for one value under key.
func encodeValue(key string, value any, pairs []Pair) []Pair {
	switch val := value.(type) {
	case nil:
		return pairs
	case bool:
		if val {
			return append(pairs, Pair{key, "1"})
		}
		return append(pairs, Pair{key, "0"})
	case string:
		return append(pairs, Pair{key, val})
	case json.Number:
		return append(pairs, Pair{key, val.String()})
	case int:
		return append(pairs, Pair{key, strconv.Itoa(val)})
	case int8:
		return append(pairs, Pair{key, strconv.FormatInt(int64(val), 10)})
	case int16:
		return append(pairs, Pair{key, strconv.FormatInt(int64(val), 10)})
	case int32:
		return append(pairs, Pair{key, strconv.FormatInt(int64(val), 10)})
	case int64:
		return append(pairs, Pair{key, strconv.FormatInt(val, 10)})
	case uint:
		return append(pairs, Pair{key, strconv.FormatUint(uint64(val), 10)})
	case uint8:
		return append(pairs, Pair{key, strconv.FormatUint(uint64(val), 10)})
	case uint16:
		return append(pairs, Pair{key, strconv.FormatUint(uint64(val), 10)})
	case uint32:
		return append(pairs, Pair{key, strconv.FormatUint(uint64(val), 10)})
	case uint64:
		return append(pairs, Pair{key, strconv.FormatUint(val, 10)})
	case float32:
		return append(pairs, Pair{key, strconv.FormatFloat(float64(val), 'f', -1, 32)})
	case float64:
		return append(pairs, Pair{key, strconv.FormatFloat(val, 'f', -1, 64)})
	case []any:
		for i, el := range val {
			pairs = encodeValue(indexKey(key, i), el, pairs)
		}
		return pairs
	case []string:
		for i, el := range val {
			pairs = encodeValue(indexKey(key, i), el, pairs)
		}
		return pairs
	case []int:
		for i, el := range val {
			pairs = encodeValue(indexKey(key, i), el, pairs)
		}
		return pairs
	case []int64:
		for i, el := range val {
			pairs = encodeValue(indexKey(key, i), el, pairs)
		}
		return pairs
	case []float64:
		for i, el := range val {
			pairs = encodeValue(indexKey(key, i), el, pairs)
		}
		return pairs
	case []bool:
		for i, el := range val {
			pairs = encodeValue(indexKey(key, i), el, pairs)
		}
		return pairs
	case *Values:
		if val == nil {
			return pairs
		}
		val.Each(func(sub string, subValue any) {
			pairs = encodeValue(subKey(key, sub), subValue, pairs)
		})
		return pairs
	case *orderedmap.OrderedMap[string, any]:
		if val == nil {
			return pairs
		}
		for pair := val.Oldest(); pair != nil; pair = pair.Next() {
			pairs = encodeValue(subKey(key, pair.Key), pair.Value, pairs)
		}
		return pairs
	case map[string]any:
		for _, sub := range maputil.SortedKeys(val) {
			pairs = encodeValue(subKey(key, sub), val[sub], pairs)
		}
		return pairs
	default:
		// Unrepresentable value: skipped, not rejected.
		return pairs
	}
}

func indexKey(key string, i int) string {
	return fmt.Sprintf("%s[%d]", key, i)
}

func subKey(key, sub string) string {
	return key + "[" + sub + "]"
}
