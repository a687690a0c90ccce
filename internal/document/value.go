package document

import (
	"strconv"
)

// Kind identifies the shape of a Value
type Kind int

const (
	// NullKind is an explicit null (`~`, `null` or an empty value)
	NullKind Kind = iota
	// ScalarKind is a string, number, boolean or date
	ScalarKind
	// MappingKind is an ordered set of key/value pairs
	MappingKind
	// SequenceKind is an ordered list of values
	SequenceKind
)

// String returns a human-readable name for the kind
func (k Kind) String() string {
	switch k {
	case NullKind:
		return "null"
	case ScalarKind:
		return "scalar"
	case MappingKind:
		return "mapping"
	case SequenceKind:
		return "sequence"
	default:
		return "unknown"
	}
}

// Value is one node of a parsed document. Mapping keys keep their document order.
type Value struct {
	Kind Kind
	// Text is the scalar exactly as written in the source (unquoted)
	Text string
	// Tag is the resolved YAML tag of a scalar, e.g. "!!str" or "!!int"
	Tag   string
	Keys  []string
	Items []*Value
	Line  int

	fields map[string]*Value
}

// Get returns the value stored under key. It is safe to call on nil and on
// non-mapping values, which have no keys.
func (v *Value) Get(key string) (*Value, bool) {
	if v == nil || v.Kind != MappingKind {
		return nil, false
	}
	child, ok := v.fields[key]
	return child, ok
}

// Has reports whether a mapping contains key, regardless of its value
func (v *Value) Has(key string) bool {
	_, ok := v.Get(key)
	return ok
}

// IsNull reports whether the value is absent or an explicit null
func (v *Value) IsNull() bool {
	return v == nil || v.Kind == NullKind
}

// IsScalar reports whether the value is a non-null scalar
func (v *Value) IsScalar() bool {
	return v != nil && v.Kind == ScalarKind
}

// IsMapping reports whether the value is a mapping
func (v *Value) IsMapping() bool {
	return v != nil && v.Kind == MappingKind
}

// IsSequence reports whether the value is a sequence
func (v *Value) IsSequence() bool {
	return v != nil && v.Kind == SequenceKind
}

// Len returns the number of keys or items; scalars and nulls have length 0
func (v *Value) Len() int {
	switch {
	case v.IsMapping():
		return len(v.Keys)
	case v.IsSequence():
		return len(v.Items)
	default:
		return 0
	}
}

// Interface converts the value into plain Go values (map[string]any, []any,
// string, int64, float64, bool, nil) for JSON-oriented consumers.
func (v *Value) Interface() any {
	if v == nil {
		return nil
	}
	switch v.Kind {
	case ScalarKind:
		return v.scalarInterface()
	case MappingKind:
		m := make(map[string]any, len(v.Keys))
		for _, k := range v.Keys {
			m[k] = v.fields[k].Interface()
		}
		return m
	case SequenceKind:
		items := make([]any, len(v.Items))
		for i, item := range v.Items {
			items[i] = item.Interface()
		}
		return items
	default:
		return nil
	}
}

func (v *Value) scalarInterface() any {
	switch v.Tag {
	case "!!int":
		if n, err := strconv.ParseInt(v.Text, 0, 64); err == nil {
			return n
		}
	case "!!float":
		if f, err := strconv.ParseFloat(v.Text, 64); err == nil {
			return f
		}
	case "!!bool":
		if b, err := strconv.ParseBool(v.Text); err == nil {
			return b
		}
	}
	return v.Text
}
