package property

import (
	"reflect"
	"time"

	"github.com/woodsbury/decimal128"
)

// Kind is the semantic category inferred from a field's static type.
type Kind int

const (
	KindOther Kind = iota
	KindDateTime
	KindNumeric
)

var (
	dateTimeTypes = typeSet(
		reflect.TypeOf(time.Time{}),
	)
	numericTypes = typeSet(
		reflect.TypeOf(int(0)),
		reflect.TypeOf(int16(0)),
		reflect.TypeOf(int32(0)),
		reflect.TypeOf(int64(0)),
		reflect.TypeOf(float32(0)),
		reflect.TypeOf(float64(0)),
		reflect.TypeOf(decimal128.Decimal{}),
	)
)

// typeSet indexes each type together with its pointer form, the nullable
// variant of a field in Go.
func typeSet(types ...reflect.Type) map[reflect.Type]struct{} {
	set := make(map[reflect.Type]struct{}, len(types)*2)
	for _, t := range types {
		set[t] = struct{}{}
		set[reflect.PointerTo(t)] = struct{}{}
	}
	return set
}

// Classify returns the semantic kind of t. The sets are closed: named types
// derived from int or time.Time are not recognised.
func Classify(t reflect.Type) Kind {
	if t == nil {
		return KindOther
	}
	if _, ok := dateTimeTypes[t]; ok {
		return KindDateTime
	}
	if _, ok := numericTypes[t]; ok {
		return KindNumeric
	}
	return KindOther
}
