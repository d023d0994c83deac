package model

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/invopop/jsonschema"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/goliatone/go-ionform/pkg/ion"
)

// Form is an ION form: an ordered list of fields plus the meta link telling
// clients where and how to submit it.
type Form struct {
	ion.Resource `yaml:",inline"`
	Fields       []Field `json:"fields" yaml:"fields"`
}

// NewForm returns a form holding fields. The field list is never nil.
func NewForm(fields ...Field) Form {
	return Form{Fields: append([]Field{}, fields...)}
}

// Field returns the last field named name. Later fields win, matching how
// CompileSchema resolves duplicate names.
func (f Form) Field(name string) (Field, bool) {
	for idx := len(f.Fields) - 1; idx >= 0; idx-- {
		if f.Fields[idx].Name == name {
			return f.Fields[idx], true
		}
	}
	return Field{}, false
}

// String returns the JSON form, omitting unset members.
func (f Form) String() string {
	return jsonString(f)
}

// CompileSchema translates the fields into a JSON Schema object that can
// validate submissions of the form. Each field becomes a property (a later
// field with the same name replaces an earlier one) and fields marked required
// are listed once in Required.
func (f Form) CompileSchema() *jsonschema.Schema {
	schema := &jsonschema.Schema{
		Type:       "object",
		Properties: orderedmap.New[string, *jsonschema.Schema](),
		Required:   []string{},
	}

	seen := make(map[string]struct{})
	for _, field := range f.Fields {
		schema.Properties.Set(field.Name, compileField(field))

		if field.Required != nil && *field.Required {
			if _, ok := seen[field.Name]; !ok {
				seen[field.Name] = struct{}{}
				schema.Required = append(schema.Required, field.Name)
			}
		}
	}

	return schema
}

// CompileSchemaJSON marshals the compiled schema.
func (f Form) CompileSchemaJSON() ([]byte, error) {
	return json.Marshal(f.CompileSchema())
}

func compileField(field Field) *jsonschema.Schema {
	prop := &jsonschema.Schema{Type: schemaType(field.Type)}
	if field.Description != nil {
		prop.Description = *field.Description
	}
	if field.Enabled != nil {
		prop.ReadOnly = !*field.Enabled
		if *field.Enabled {
			// ReadOnly is omitted when false; Extras keeps the explicit value.
			prop.Extras = map[string]any{"readOnly": false}
		}
	}
	if field.Pattern != nil {
		prop.Pattern = *field.Pattern
	}
	if field.Max != nil && finite(*field.Max) {
		prop.Maximum = jsonNumber(*field.Max)
	}
	if field.Min != nil && finite(*field.Min) {
		prop.Minimum = jsonNumber(*field.Min)
	}
	if field.MaxLength != nil && *field.MaxLength >= 0 {
		prop.MaxLength = lengthPtr(*field.MaxLength)
	}
	if field.MinLength != nil && *field.MinLength >= 0 {
		prop.MinLength = lengthPtr(*field.MinLength)
	}
	return prop
}

func schemaType(t FieldType) string {
	switch t {
	case FieldTypeDecimal, FieldTypeNumber:
		return "number"
	case FieldTypeInteger:
		return "integer"
	default:
		return "string"
	}
}

func jsonNumber(v float64) json.Number {
	return json.Number(strconv.FormatFloat(v, 'f', -1, 64))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func lengthPtr(v int) *uint64 {
	n := uint64(v)
	return &n
}
