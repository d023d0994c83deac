package model

// AttributeOverrides are supplied at the call site when adding a field and
// are applied after the declarative Attribute. A nil member is "not
// mentioned"; a non-nil member is applied even when it points at a zero
// value.
type AttributeOverrides struct {
	Type        *FieldType
	Enabled     *bool
	Required    *bool
	Secret      *bool
	Min         *float64
	Max         *float64
	MinLength   *int
	MaxLength   *int
	MinSize     *int
	MaxSize     *int
	Description *string
	Pattern     *string
	Label       *string
	Placeholder *string
}

// Apply writes the overrides onto field. Label always changes: it takes the
// override label, or the field name when no label override is given. A nil
// receiver leaves field untouched.
func (o *AttributeOverrides) Apply(field *Field) {
	if o == nil {
		return
	}
	if o.Min != nil {
		field.Min = clonePtr(o.Min)
	}
	if o.Secret != nil {
		field.Secret = clonePtr(o.Secret)
	}
	if o.Description != nil {
		field.Description = clonePtr(o.Description)
	}
	if o.Label != nil {
		field.Label = *o.Label
	} else {
		field.Label = field.Name
	}
	if o.Max != nil {
		field.Max = clonePtr(o.Max)
	}
	if o.Pattern != nil {
		field.Pattern = clonePtr(o.Pattern)
	}
	if o.MinLength != nil {
		field.MinLength = clonePtr(o.MinLength)
	}
	if o.MaxLength != nil {
		field.MaxLength = clonePtr(o.MaxLength)
	}
	if o.Type != nil {
		field.Type = *o.Type
	}
	if o.Enabled != nil {
		field.Enabled = clonePtr(o.Enabled)
	}
	if o.Required != nil {
		field.Required = clonePtr(o.Required)
	}
	if o.MinSize != nil {
		field.MinSize = clonePtr(o.MinSize)
	}
	if o.MaxSize != nil {
		field.MaxSize = clonePtr(o.MaxSize)
	}
	if o.Placeholder != nil {
		field.Placeholder = clonePtr(o.Placeholder)
	}
}

// Ptr returns a pointer to v. It keeps override literals short:
// &model.AttributeOverrides{Secret: model.Ptr(false)}.
func Ptr[T any](v T) *T {
	return &v
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
