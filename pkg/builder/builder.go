package builder

import (
	"reflect"

	"github.com/goliatone/go-ionform/internal/property"
	"github.com/goliatone/go-ionform/pkg/ion"
	"github.com/goliatone/go-ionform/pkg/model"
)

// Selector points at the field of T a form field describes. It receives a
// zero T and must return the address of one of its exported fields:
//
//	func(h *Hero) any { return &h.Nickname }
type Selector[T any] func(*T) any

// FormBuilder accumulates form fields describing the fields of T. It is not
// safe for concurrent use.
type FormBuilder[T any] struct {
	opts   options
	target reflect.Type
	fields []model.Field
}

// New returns an empty builder for T.
func New[T any](opts ...Option) *FormBuilder[T] {
	cfg := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &FormBuilder[T]{
		opts:   cfg,
		target: reflect.TypeOf((*T)(nil)).Elem(),
	}
}

// AddField adds a field for the property picked by selector. The field kind
// is inferred from the property's static type, then the property attributes
// and finally overrides are applied. The label always ends up as the property
// name and Enabled as the overrides' Enabled value.
//
// A selector that does not resolve to a field is skipped silently (logged at
// debug level) unless the builder was created WithStrictSelectors, in which
// case AddField panics with a *SelectorError.
func (b *FormBuilder[T]) AddField(selector Selector[T], overrides ...model.AttributeOverrides) *FormBuilder[T] {
	prop, err := property.Resolve((func(*T) any)(selector))
	if err != nil {
		selErr := &SelectorError{Op: "AddField", Target: b.target, Err: err}
		if b.opts.strict {
			panic(selErr)
		}
		b.opts.logger.Debug("form builder: skipping field", "target", b.target.String(), "error", err)
		return b
	}

	draft := model.Field{Name: prop.Name}
	override := mergeOverrides(overrides)
	b.shape(prop, &draft, override)

	draft.Label = draft.Name
	draft.Enabled = nil
	if override != nil && override.Enabled != nil {
		draft.Enabled = model.Ptr(*override.Enabled)
	}

	b.push(draft)
	return b
}

// AddOptions adds an array field offering options for the property picked by
// selector, with MaxSize set to the number of options. The attribute and
// override pipeline of AddField applies afterwards. An unresolvable selector
// is a programming error: AddOptions panics with a *SelectorError.
func (b *FormBuilder[T]) AddOptions(selector Selector[T], opts []model.Option, overrides ...model.AttributeOverrides) *FormBuilder[T] {
	prop, err := property.Resolve((func(*T) any)(selector))
	if err != nil {
		panic(&SelectorError{Op: "AddOptions", Target: b.target, Err: err})
	}

	if opts == nil {
		opts = []model.Option{}
	}
	draft := model.Field{Name: prop.Name, Label: prop.Name, Type: model.FieldTypeArray}
	draft.SetOptions(opts)
	draft.MaxSize = model.Ptr(len(opts))

	b.shape(prop, &draft, mergeOverrides(overrides))

	b.push(draft)
	return b
}

// AddStringOptions is AddOptions with options whose label and value are both
// the given string.
func (b *FormBuilder[T]) AddStringOptions(selector Selector[T], values []string, overrides ...model.AttributeOverrides) *FormBuilder[T] {
	opts := make([]model.Option, 0, len(values))
	for _, value := range values {
		opts = append(opts, model.NewOption(value, value))
	}
	return b.AddOptions(selector, opts, overrides...)
}

// Len returns the number of fields added so far.
func (b *FormBuilder[T]) Len() int {
	return len(b.fields)
}

// Build returns a form holding a copy of the accumulated fields and the meta
// link configured with WithMeta. The builder can keep adding fields
// afterwards without affecting the returned form.
func (b *FormBuilder[T]) Build() model.Form {
	fields := make([]model.Field, 0, len(b.fields))
	for _, field := range b.fields {
		fields = append(fields, field.Clone())
	}
	return model.Form{
		Resource: ion.Resource{Meta: b.opts.meta},
		Fields:   fields,
	}
}

// shape runs the inference, attribute and override stages on draft.
func (b *FormBuilder[T]) shape(prop property.Property, draft *model.Field, override *model.AttributeOverrides) {
	switch property.Classify(prop.Type) {
	case property.KindDateTime:
		draft.Type = model.FieldTypeDateTime
	case property.KindNumeric:
		draft.Type = model.FieldTypeInteger
	}

	if attr, ok := b.attribute(prop); ok {
		attr.Apply(draft)
	}

	override.Apply(draft)
}

// attribute merges the struct tag with the configured sources. ok is false
// when no source declares anything for the property.
func (b *FormBuilder[T]) attribute(prop property.Property) (model.Attribute, bool) {
	var (
		merged model.Attribute
		found  bool
	)

	if raw, ok := prop.Field.Tag.Lookup(b.opts.tagKey); ok && raw != "-" {
		attr, issues := ParseTag(raw)
		for _, issue := range issues {
			b.opts.logger.Debug("form builder: ignoring tag token", "target", b.target.String(), "field", prop.Name, "error", issue)
		}
		merged, found = attr, true
	}

	for _, src := range b.opts.sources {
		attr, ok := src.Attribute(b.target, prop.Field)
		if !ok {
			continue
		}
		if !found {
			merged, found = attr, true
			continue
		}
		merged = merged.Merge(attr)
	}

	return merged, found
}

// push freezes draft into the field list.
func (b *FormBuilder[T]) push(draft model.Field) {
	b.fields = append(b.fields, draft.Clone())
	b.opts.logger.Debug("form builder: added field", "target", b.target.String(), "field", draft.Name, "type", draft.Type.String())
}

// mergeOverrides folds several overrides into one, later non-nil members
// winning. It returns nil when none were supplied.
func mergeOverrides(overrides []model.AttributeOverrides) *model.AttributeOverrides {
	if len(overrides) == 0 {
		return nil
	}
	merged := overrides[0]
	for _, next := range overrides[1:] {
		mergeInto(&merged.Type, next.Type)
		mergeInto(&merged.Enabled, next.Enabled)
		mergeInto(&merged.Required, next.Required)
		mergeInto(&merged.Secret, next.Secret)
		mergeInto(&merged.Min, next.Min)
		mergeInto(&merged.Max, next.Max)
		mergeInto(&merged.MinLength, next.MinLength)
		mergeInto(&merged.MaxLength, next.MaxLength)
		mergeInto(&merged.MinSize, next.MinSize)
		mergeInto(&merged.MaxSize, next.MaxSize)
		mergeInto(&merged.Description, next.Description)
		mergeInto(&merged.Pattern, next.Pattern)
		mergeInto(&merged.Label, next.Label)
		mergeInto(&merged.Placeholder, next.Placeholder)
	}
	return &merged
}

func mergeInto[V any](dst **V, src *V) {
	if src != nil {
		*dst = src
	}
}
