package model

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// FieldType is the closed set of ION form field kinds. The zero value is
// FieldTypeString.
type FieldType int

const (
	FieldTypeString FieldType = iota
	FieldTypeDate
	FieldTypeDateTime
	FieldTypeInteger
	FieldTypeNumber
	FieldTypeDecimal
	FieldTypeArray
	FieldTypeSet
)

var fieldTypeNames = [...]string{
	FieldTypeString:   "string",
	FieldTypeDate:     "date",
	FieldTypeDateTime: "datetime",
	FieldTypeInteger:  "integer",
	FieldTypeNumber:   "number",
	FieldTypeDecimal:  "decimal",
	FieldTypeArray:    "array",
	FieldTypeSet:      "set",
}

// ParseFieldType resolves an ION type name, ignoring case. "date-time" is
// accepted as an alias of "datetime".
func ParseFieldType(name string) (FieldType, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "date-time" {
		normalized = "datetime"
	}
	for idx, candidate := range fieldTypeNames {
		if candidate == normalized {
			return FieldType(idx), nil
		}
	}
	return FieldTypeString, fmt.Errorf("model: unknown field type %q", name)
}

// String returns the ION name of the type.
func (t FieldType) String() string {
	if t < 0 || int(t) >= len(fieldTypeNames) {
		return fmt.Sprintf("FieldType(%d)", int(t))
	}
	return fieldTypeNames[t]
}

// Valid reports whether t is one of the declared kinds.
func (t FieldType) Valid() bool {
	return t >= 0 && int(t) < len(fieldTypeNames)
}

// IsMultiValued reports whether fields of this type accept several values, in
// which case MinSize/MaxSize apply.
func (t FieldType) IsMultiValued() bool {
	return t == FieldTypeArray || t == FieldTypeSet
}

// MarshalText implements encoding.TextMarshaler.
func (t FieldType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("model: invalid field type %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *FieldType) UnmarshalText(text []byte) error {
	parsed, err := ParseFieldType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// UnmarshalYAML decodes the type from its ION name.
func (t *FieldType) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	return t.UnmarshalText([]byte(name))
}
