// Package yamlenc renders generated OpenAPI documents as YAML text.
//
// This is a minimal structural serializer covering only the value shapes
// the generator produces: mappings, lists, and scalars. It is not a general
// YAML encoder and its output is not guaranteed to round-trip through a
// general YAML parser for pathological inputs; it exists so the generated
// artifacts are readable by humans and standard tooling without pulling a
// full YAML dependency into the emit path.
package yamlenc

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/mwstools/mwstools/internal/maputil"
)

// Marshal renders v as YAML text.
//
// Mappings render as "key: value" lines with two-space indentation per
// nesting level; empty mappings and lists render inline as {} and [].
// Values that are not already generic trees (structs, typed maps) are
// normalized through their JSON form with object key order preserved.
func Marshal(v any) ([]byte, error) {
	node, err := normalize(v)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	switch t := node.(type) {
	case *orderedmap.OrderedMap[string, any]:
		if t.Len() == 0 {
			buf.WriteString("{}\n")
		} else {
			writeMapping(&buf, t, 0)
		}
	case []any:
		if len(t) == 0 {
			buf.WriteString("[]\n")
		} else {
			writeList(&buf, t, 0)
		}
	default:
		buf.WriteString(scalarString(node))
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// normalize converts v into the generic tree the writer understands:
// scalars, []any, and *orderedmap.OrderedMap[string, any].
func normalize(v any) (any, error) {
	switch t := v.(type) {
	case nil, bool, string, json.Number,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return t, nil
	case []any:
		out := make([]any, len(t))
		for i, el := range t {
			n, err := normalize(el)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	case *orderedmap.OrderedMap[string, any]:
		out := orderedmap.New[string, any]()
		for pair := t.Oldest(); pair != nil; pair = pair.Next() {
			n, err := normalize(pair.Value)
			if err != nil {
				return nil, err
			}
			out.Set(pair.Key, n)
		}
		return out, nil
	case map[string]any:
		out := orderedmap.New[string, any]()
		for _, k := range maputil.SortedKeys(t) {
			n, err := normalize(t[k])
			if err != nil {
				return nil, err
			}
			out.Set(k, n)
		}
		return out, nil
	default:
		// Structs and typed maps take the JSON round trip; ordered maps in
		// the source marshal in insertion order and decode back ordered.
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("normalizing value for YAML output: %w", err)
		}
		return decodeTree(data)
	}
}

// decodeTree decodes JSON bytes into the generic tree, keeping object key
// order.
func decodeTree(data []byte) (any, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		om := orderedmap.New[string, any]()
		if err := json.Unmarshal(trimmed, om); err != nil {
			return nil, fmt.Errorf("decoding value for YAML output: %w", err)
		}
		return normalize(om)
	}
	var generic any
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	if err := dec.Decode(&generic); err != nil {
		return nil, fmt.Errorf("decoding value for YAML output: %w", err)
	}
	return normalize(generic)
}

func writeMapping(buf *bytes.Buffer, m *orderedmap.OrderedMap[string, any], indent int) {
	pad := strings.Repeat("  ", indent)
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		writeEntry(buf, pad, pair.Key, pair.Value, indent+1)
	}
}

func writeList(buf *bytes.Buffer, items []any, indent int) {
	pad := strings.Repeat("  ", indent)
	itemPad := strings.Repeat("  ", indent+1)
	for _, el := range items {
		switch t := el.(type) {
		case *orderedmap.OrderedMap[string, any]:
			if t.Len() == 0 {
				buf.WriteString(pad + "- {}\n")
				continue
			}
			// First key shares the dash line; the rest align beneath it.
			first := true
			for pair := t.Oldest(); pair != nil; pair = pair.Next() {
				if first {
					writeEntry(buf, pad+"- ", pair.Key, pair.Value, indent+2)
					first = false
				} else {
					writeEntry(buf, itemPad, pair.Key, pair.Value, indent+2)
				}
			}
		case []any:
			if len(t) == 0 {
				buf.WriteString(pad + "- []\n")
				continue
			}
			buf.WriteString(pad + "-\n")
			writeList(buf, t, indent+1)
		default:
			buf.WriteString(pad + "- " + scalarString(el) + "\n")
		}
	}
}

// writeEntry writes one "key: value" entry. prefix is the already-built
// line prefix (indentation, or indentation plus a list dash); childIndent
// is the nesting level for block children.
func writeEntry(buf *bytes.Buffer, prefix, key string, value any, childIndent int) {
	k := keyString(key)
	switch t := value.(type) {
	case *orderedmap.OrderedMap[string, any]:
		if t.Len() == 0 {
			buf.WriteString(prefix + k + ": {}\n")
			return
		}
		buf.WriteString(prefix + k + ":\n")
		writeMapping(buf, t, childIndent)
	case []any:
		if len(t) == 0 {
			buf.WriteString(prefix + k + ": []\n")
			return
		}
		buf.WriteString(prefix + k + ":\n")
		writeList(buf, t, childIndent)
	default:
		buf.WriteString(prefix + k + ": " + scalarString(value) + "\n")
	}
}

func keyString(k string) string {
	if needsQuote(k) {
		return quote(k)
	}
	return k
}

func scalarString(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(t)
	case string:
		if needsQuote(t) {
			return quote(t)
		}
		return t
	case json.Number:
		return t.String()
	case int:
		return strconv.Itoa(t)
	case int8:
		return strconv.FormatInt(int64(t), 10)
	case int16:
		return strconv.FormatInt(int64(t), 10)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case uint8:
		return strconv.FormatUint(uint64(t), 10)
	case uint16:
		return strconv.FormatUint(uint64(t), 10)
	case uint32:
		return strconv.FormatUint(uint64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float32:
		return strconv.FormatFloat(float64(t), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// reservedWords are plain scalars YAML would interpret as something other
// than the literal string.
var reservedWords = map[string]bool{
	"true":  true,
	"false": true,
	"null":  true,
	"yes":   true,
	"no":    true,
}

func needsQuote(s string) bool {
	if s == "" {
		return true
	}
	if strings.ContainsAny(s, ":#\"\n") {
		return true
	}
	if s != strings.TrimSpace(s) {
		return true
	}
	if s[0] >= '0' && s[0] <= '9' {
		return true
	}
	return reservedWords[strings.ToLower(s)]
}

func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return `"` + s + `"`
}
