package property

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	errNilSelector   = errors.New("selector is nil")
	errNotStruct     = errors.New("target type is not a struct")
	errNotPointer    = errors.New("selector must return a pointer to a field")
	errNoFieldMatch  = errors.New("selector result is not a field of the target")
	errUnexported    = errors.New("selected field is not exported")
	errSelectorPanic = errors.New("selector panicked")
)

// Property is a resolved struct field.
type Property struct {
	// Name is the Go field name.
	Name string
	// Type is the declared static type of the field.
	Type reflect.Type
	// Field is the struct field, including its tags.
	Field reflect.StructField
	// Owner is the struct type that declares Field. It differs from the
	// selector's target type for promoted fields of embedded structs.
	Owner reflect.Type
}

// Resolve allocates a zero value of T, hands it to selector and matches the
// returned pointer against the addresses of T's exported fields, including
// fields promoted from embedded structs.
func Resolve[T any](selector func(*T) any) (prop Property, err error) {
	if selector == nil {
		return Property{}, errNilSelector
	}
	target := reflect.New(reflect.TypeOf((*T)(nil)).Elem())
	if target.Elem().Kind() != reflect.Struct {
		return Property{}, fmt.Errorf("%w: %s", errNotStruct, target.Elem().Type())
	}

	defer func() {
		if r := recover(); r != nil {
			prop, err = Property{}, fmt.Errorf("%w: %v", errSelectorPanic, r)
		}
	}()

	result := selector(target.Interface().(*T))
	if result == nil {
		return Property{}, errNotPointer
	}
	ptr := reflect.ValueOf(result)
	if ptr.Kind() != reflect.Pointer || ptr.IsNil() {
		return Property{}, fmt.Errorf("%w: got %T", errNotPointer, result)
	}

	found, ok := matchField(target.Elem(), ptr.Pointer(), ptr.Type().Elem())
	if !ok {
		return Property{}, errNoFieldMatch
	}
	if !found.Field.IsExported() {
		return Property{}, fmt.Errorf("%w: %s", errUnexported, found.Field.Name)
	}
	return found, nil
}

// matchField walks the fields of the addressable struct value v. Several
// fields can share an address (an embedded struct and its first field, or
// zero-sized fields), so the field type must match as well.
func matchField(v reflect.Value, addr uintptr, want reflect.Type) (Property, bool) {
	t := v.Type()
	var embedded []int
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		fv := v.Field(i)
		if fv.UnsafeAddr() == addr && sf.Type == want {
			return Property{Name: sf.Name, Type: sf.Type, Field: sf, Owner: t}, true
		}
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
			embedded = append(embedded, i)
		}
	}
	for _, i := range embedded {
		if prop, ok := matchField(v.Field(i), addr, want); ok {
			return prop, true
		}
	}
	return Property{}, false
}
