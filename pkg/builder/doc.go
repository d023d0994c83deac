// Package builder assembles ION forms from Go struct types.
//
// A FormBuilder[T] adds one field per call, pointing at the struct field with
// a selector that returns its address:
//
//	form := builder.New[Hero](builder.WithMeta(ion.NewLink("/heroes", "create-form"))).
//		AddField(func(h *Hero) any { return &h.Nickname }).
//		AddField(func(h *Hero) any { return &h.RealName }, model.AttributeOverrides{Secret: model.Ptr(false)}).
//		AddStringOptions(func(h *Hero) any { return &h.Powers }, []string{"flight", "strength"}).
//		Build()
//
// Each field goes through three stages: the kind inferred from the Go type
// (time.Time becomes datetime, the common signed integers, floats and
// decimal128.Decimal become integer), the attribute declared in the `form`
// struct tag merged with any WithAttributeSource sources, and finally the
// call-site overrides.
package builder
