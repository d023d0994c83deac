package model

// Attribute is the declarative metadata attached to a struct field, either
// through the `form` struct tag or an attribute overlay document. Every
// member records whether it was explicitly set, so "secret=false" overrides a
// default while an absent member leaves it alone.
type Attribute struct {
	Type        Optional[FieldType] `json:"type" yaml:"type"`
	Enabled     Optional[bool]      `json:"enabled" yaml:"enabled"`
	Required    Optional[bool]      `json:"required" yaml:"required"`
	Secret      Optional[bool]      `json:"secret" yaml:"secret"`
	Min         Optional[float64]   `json:"min" yaml:"min"`
	Max         Optional[float64]   `json:"max" yaml:"max"`
	MinLength   Optional[int]       `json:"minLength" yaml:"minLength"`
	MaxLength   Optional[int]       `json:"maxLength" yaml:"maxLength"`
	MinSize     Optional[int]       `json:"minSize" yaml:"minSize"`
	MaxSize     Optional[int]       `json:"maxSize" yaml:"maxSize"`
	Description Optional[string]    `json:"description" yaml:"description"`
	Pattern     Optional[string]    `json:"pattern" yaml:"pattern"`
	Label       Optional[string]    `json:"label" yaml:"label"`
	Placeholder Optional[string]    `json:"placeholder" yaml:"placeholder"`
	Relations   []string            `json:"rel" yaml:"rel"`
}

// NewAttribute returns an attribute with nothing set and an empty relation
// list.
func NewAttribute() Attribute {
	return Attribute{Relations: []string{}}
}

func (a Attribute) IsTypeSet() bool        { return a.Type.IsSet() }
func (a Attribute) IsEnabledSet() bool     { return a.Enabled.IsSet() }
func (a Attribute) IsRequiredSet() bool    { return a.Required.IsSet() }
func (a Attribute) IsSecretSet() bool      { return a.Secret.IsSet() }
func (a Attribute) IsMinSet() bool         { return a.Min.IsSet() }
func (a Attribute) IsMaxSet() bool         { return a.Max.IsSet() }
func (a Attribute) IsMinLengthSet() bool   { return a.MinLength.IsSet() }
func (a Attribute) IsMaxLengthSet() bool   { return a.MaxLength.IsSet() }
func (a Attribute) IsMinSizeSet() bool     { return a.MinSize.IsSet() }
func (a Attribute) IsMaxSizeSet() bool     { return a.MaxSize.IsSet() }
func (a Attribute) IsDescriptionSet() bool { return a.Description.IsSet() }
func (a Attribute) IsPatternSet() bool     { return a.Pattern.IsSet() }
func (a Attribute) IsLabelSet() bool       { return a.Label.IsSet() }
func (a Attribute) IsPlaceholderSet() bool { return a.Placeholder.IsSet() }

// IsZero reports whether no member is set and no relation is declared.
func (a Attribute) IsZero() bool {
	return !a.Type.IsSet() && !a.Enabled.IsSet() && !a.Required.IsSet() &&
		!a.Secret.IsSet() && !a.Min.IsSet() && !a.Max.IsSet() &&
		!a.MinLength.IsSet() && !a.MaxLength.IsSet() && !a.MinSize.IsSet() &&
		!a.MaxSize.IsSet() && !a.Description.IsSet() && !a.Pattern.IsSet() &&
		!a.Label.IsSet() && !a.Placeholder.IsSet() && len(a.Relations) == 0
}

// Merge returns a copy of a with every member set in other applied on top.
// Relations are appended.
func (a Attribute) Merge(other Attribute) Attribute {
	out := a
	overlay(&out.Type, other.Type)
	overlay(&out.Enabled, other.Enabled)
	overlay(&out.Required, other.Required)
	overlay(&out.Secret, other.Secret)
	overlay(&out.Min, other.Min)
	overlay(&out.Max, other.Max)
	overlay(&out.MinLength, other.MinLength)
	overlay(&out.MaxLength, other.MaxLength)
	overlay(&out.MinSize, other.MinSize)
	overlay(&out.MaxSize, other.MaxSize)
	overlay(&out.Description, other.Description)
	overlay(&out.Pattern, other.Pattern)
	overlay(&out.Label, other.Label)
	overlay(&out.Placeholder, other.Placeholder)
	out.Relations = append(append([]string{}, a.Relations...), other.Relations...)
	return out
}

func overlay[T any](dst *Optional[T], src Optional[T]) {
	if src.IsSet() {
		*dst = src
	}
}

// Apply writes the attribute onto field. Set members overwrite the field;
// Pattern is always copied, so an attribute without a pattern clears the
// field's pattern.
func (a Attribute) Apply(field *Field) {
	if a.Description.IsSet() {
		field.Description = a.Description.Ptr()
	}
	if a.Secret.IsSet() {
		field.Secret = a.Secret.Ptr()
	}
	if a.MinSize.IsSet() {
		field.MinSize = a.MinSize.Ptr()
	}
	field.Pattern = a.Pattern.Ptr()
	if a.Type.IsSet() {
		field.Type = a.Type.Value()
	}
	if a.Required.IsSet() {
		field.Required = a.Required.Ptr()
	}
	if a.Min.IsSet() {
		field.Min = a.Min.Ptr()
	}
	if a.Max.IsSet() {
		field.Max = a.Max.Ptr()
	}
	if a.MinLength.IsSet() {
		field.MinLength = a.MinLength.Ptr()
	}
	if a.MaxLength.IsSet() {
		field.MaxLength = a.MaxLength.Ptr()
	}
	if a.MaxSize.IsSet() {
		field.MaxSize = a.MaxSize.Ptr()
	}
	if a.Enabled.IsSet() {
		field.Enabled = a.Enabled.Ptr()
	}
	if a.Label.IsSet() {
		field.Label = a.Label.Value()
	}
	if a.Placeholder.IsSet() {
		field.Placeholder = a.Placeholder.Ptr()
	}
}
