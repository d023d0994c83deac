package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Option is one selectable value of a field. Options are immutable values
// compared structurally.
type Option struct {
	Label string `json:"label" yaml:"label"`
	Value any    `json:"value" yaml:"value"`
}

// NewOption returns an option with the supplied label and value.
func NewOption(label string, value any) Option {
	return Option{Label: label, Value: value}
}

// String returns the JSON form of the option.
func (o Option) String() string {
	return jsonString(o)
}

// Field models one named, typed and constrained value slot of a form, after
// the ION form field member set. Nil members are "not specified". Field does
// not validate anything; consumers decide what the constraints mean.
type Field struct {
	Name        string    `json:"name,omitempty" yaml:"name,omitempty"`
	Label       string    `json:"label,omitempty" yaml:"label,omitempty"`
	Description *string   `json:"description,omitempty" yaml:"description,omitempty"`
	Placeholder *string   `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Pattern     *string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Type        FieldType `json:"type" yaml:"type"`
	Enabled     *bool     `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Required    *bool     `json:"required,omitempty" yaml:"required,omitempty"`
	Secret      *bool     `json:"secret,omitempty" yaml:"secret,omitempty"`
	Min         *float64  `json:"min,omitempty" yaml:"min,omitempty"`
	Max         *float64  `json:"max,omitempty" yaml:"max,omitempty"`
	MinLength   *int      `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength   *int      `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	// MinSize and MaxSize only apply to multi-valued types (Array, Set).
	MinSize *int `json:"minSize,omitempty" yaml:"minSize,omitempty"`
	MaxSize *int `json:"maxSize,omitempty" yaml:"maxSize,omitempty"`

	options []Option
}

// Options returns a copy of the field options, nil when none were set.
func (f Field) Options() []Option {
	if f.options == nil {
		return nil
	}
	return append([]Option{}, f.options...)
}

// SetOptions stores a copy of opts. Any non-nil slice switches the field to
// FieldTypeArray whatever its previous type; nil clears the options only.
func (f *Field) SetOptions(opts []Option) {
	if opts == nil {
		f.options = nil
		return
	}
	f.options = append([]Option{}, opts...)
	f.Type = FieldTypeArray
}

// WithOptions returns a copy of f with opts applied through SetOptions.
func (f Field) WithOptions(opts []Option) Field {
	f.SetOptions(opts)
	return f
}

// Clone returns a deep copy of f; no pointer member or option slice is
// shared with f.
func (f Field) Clone() Field {
	out := f
	out.Description = clonePtr(f.Description)
	out.Placeholder = clonePtr(f.Placeholder)
	out.Pattern = clonePtr(f.Pattern)
	out.Enabled = clonePtr(f.Enabled)
	out.Required = clonePtr(f.Required)
	out.Secret = clonePtr(f.Secret)
	out.Min = clonePtr(f.Min)
	out.Max = clonePtr(f.Max)
	out.MinLength = clonePtr(f.MinLength)
	out.MaxLength = clonePtr(f.MaxLength)
	out.MinSize = clonePtr(f.MinSize)
	out.MaxSize = clonePtr(f.MaxSize)
	out.options = f.Options()
	return out
}

// fieldMembers has the exported members of Field but none of its methods, so
// the codecs below can reuse the struct tags without recursing.
type fieldMembers Field

type fieldJSON struct {
	fieldMembers
	Options []Option `json:"options,omitempty"`
}

type fieldYAML struct {
	fieldMembers `yaml:",inline"`
	Options      []Option `yaml:"options,omitempty"`
}

// MarshalJSON includes the private options.
func (f Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(fieldJSON{fieldMembers: fieldMembers(f), Options: f.options})
}

// UnmarshalJSON decodes a field; options go through SetOptions so a decoded
// field with options is always an array field.
func (f *Field) UnmarshalJSON(data []byte) error {
	var payload fieldJSON
	if err := json.Unmarshal(data, &payload); err != nil {
		return err
	}
	*f = Field(payload.fieldMembers)
	f.SetOptions(payload.Options)
	return nil
}

// MarshalYAML includes the private options.
func (f Field) MarshalYAML() (any, error) {
	return fieldYAML{fieldMembers: fieldMembers(f), Options: f.options}, nil
}

// UnmarshalYAML mirrors UnmarshalJSON.
func (f *Field) UnmarshalYAML(node *yaml.Node) error {
	var payload fieldYAML
	if err := node.Decode(&payload); err != nil {
		return err
	}
	*f = Field(payload.fieldMembers)
	f.SetOptions(payload.Options)
	return nil
}

// String returns the JSON form of the field.
func (f Field) String() string {
	return jsonString(f)
}

func jsonString(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(data)
}
