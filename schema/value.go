package schema

import (
	"bytes"

	json "github.com/goccy/go-json"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Kind discriminates the variants of a Value.
type Kind string

const (
	// KindScalar is a terminal typed value.
	KindScalar Kind = "scalar"
	// KindObject is a structure with named, ordered properties.
	KindObject Kind = "object"
	// KindArray is a homogeneous list.
	KindArray Kind = "array"
	// KindUnknown is a value whose shape the extractor could not determine.
	KindUnknown Kind = "unknown"
)

// Value describes one node of a remote function's parameter or return shape.
// Exactly one variant applies, selected by Kind; fields of other variants
// are zero.
type Value struct {
	// Kind selects the variant.
	Kind Kind

	// Type is the declared scalar type tag (scalar kind only). The
	// extractor emits OpenAPI-compatible tags such as "integer",
	// "string", "boolean" and "number"; they are passed through 1:1.
	Type string

	// Description documents the node, if the extractor found one.
	Description string

	// Required marks this node as required within its enclosing object.
	Required bool

	// Default is the declared default value (scalar kind only).
	// HasDefault distinguishes an explicit null default from no default.
	Default    any
	HasDefault bool

	// Nullable marks a scalar that accepts null.
	Nullable bool

	// Properties holds an object's named children in source order.
	Properties *orderedmap.OrderedMap[string, *Value]

	// Items describes an array's element shape; nil when undeclared.
	Items *Value
}

// rawValue is the JSON wire form of Value.
type rawValue struct {
	Kind        Kind                                   `json:"kind"`
	Type        string                                 `json:"type,omitempty"`
	Description string                                 `json:"description,omitempty"`
	Required    bool                                   `json:"required,omitempty"`
	Default     json.RawMessage                        `json:"default,omitempty"`
	Nullable    bool                                   `json:"nullable,omitempty"`
	Properties  *orderedmap.OrderedMap[string, *Value] `json:"properties,omitempty"`
	Items       *Value                                 `json:"items,omitempty"`
}

// marshalValue mirrors rawValue with a decoded default for output.
type marshalValue struct {
	Kind        Kind                                   `json:"kind"`
	Type        string                                 `json:"type,omitempty"`
	Description string                                 `json:"description,omitempty"`
	Required    bool                                   `json:"required,omitempty"`
	Default     any                                    `json:"default,omitempty"`
	Nullable    bool                                   `json:"nullable,omitempty"`
	Properties  *orderedmap.OrderedMap[string, *Value] `json:"properties,omitempty"`
	Items       *Value                                 `json:"items,omitempty"`
}

// UnmarshalJSON decodes a Value, preserving object property order.
// A missing or unrecognized kind decodes as KindUnknown rather than failing.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw rawValue
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch raw.Kind {
	case KindScalar, KindObject, KindArray:
		v.Kind = raw.Kind
	default:
		v.Kind = KindUnknown
	}

	v.Type = raw.Type
	v.Description = raw.Description
	v.Required = raw.Required
	v.Nullable = raw.Nullable
	v.Properties = raw.Properties
	v.Items = raw.Items

	if len(raw.Default) > 0 {
		v.HasDefault = true
		dec := json.NewDecoder(bytes.NewReader(raw.Default))
		dec.UseNumber()
		if err := dec.Decode(&v.Default); err != nil {
			return err
		}
	}
	return nil
}

// MarshalJSON encodes a Value in its wire form, preserving property order.
func (v *Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(marshalValue{
		Kind:        v.Kind,
		Type:        v.Type,
		Description: v.Description,
		Required:    v.Required,
		Default:     v.Default,
		Nullable:    v.Nullable,
		Properties:  v.Properties,
		Items:       v.Items,
	})
}

// PropertyCount returns the number of declared properties for an object
// Value, or 0 for other kinds.
func (v *Value) PropertyCount() int {
	if v == nil || v.Properties == nil {
		return 0
	}
	return v.Properties.Len()
}
