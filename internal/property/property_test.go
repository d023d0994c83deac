package property

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/woodsbury/decimal128"
)

type audit struct {
	CreatedAt time.Time
	Revision  int64
}

type address struct {
	City string
}

type hero struct {
	audit
	Nickname  string
	RealName  *string
	Born      *time.Time
	Streak    int
	Ratio     float32
	Counter   uint8
	Home      address
	Tags      []string
	secretLog string
}

type duration int

func TestResolve(t *testing.T) {
	cases := []struct {
		name     string
		selector func(*hero) any
		want     string
		owner    reflect.Type
	}{
		{name: "first field after embedded", selector: func(h *hero) any { return &h.Nickname }, want: "Nickname"},
		{name: "pointer field", selector: func(h *hero) any { return &h.RealName }, want: "RealName"},
		{name: "slice field", selector: func(h *hero) any { return &h.Tags }, want: "Tags"},
		{name: "struct field", selector: func(h *hero) any { return &h.Home }, want: "Home"},
		{name: "promoted first field", selector: func(h *hero) any { return &h.CreatedAt }, want: "CreatedAt", owner: reflect.TypeOf(audit{})},
		{name: "promoted field", selector: func(h *hero) any { return &h.Revision }, want: "Revision", owner: reflect.TypeOf(audit{})},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			prop, err := Resolve(tc.selector)
			if err != nil {
				t.Fatalf("resolve: %v", err)
			}
			if prop.Name != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, prop.Name)
			}
			owner := tc.owner
			if owner == nil {
				owner = reflect.TypeOf(hero{})
			}
			if prop.Owner != owner {
				t.Fatalf("expected owner %s, got %s", owner, prop.Owner)
			}
		})
	}
}

func TestResolve_Rejects(t *testing.T) {
	outside := "outside"
	cases := []struct {
		name     string
		selector func(*hero) any
		want     error
	}{
		{name: "nil selector", selector: nil, want: errNilSelector},
		{name: "value instead of pointer", selector: func(h *hero) any { return h.Nickname }, want: errNotPointer},
		{name: "nil result", selector: func(h *hero) any { return nil }, want: errNotPointer},
		{name: "pointer outside target", selector: func(h *hero) any { return &outside }, want: errNoFieldMatch},
		{name: "nested field", selector: func(h *hero) any { return &h.Home.City }, want: errNoFieldMatch},
		{name: "whole target", selector: func(h *hero) any { return h }, want: errNoFieldMatch},
		{name: "unexported field", selector: func(h *hero) any { return &h.secretLog }, want: errUnexported},
		{name: "panicking selector", selector: func(h *hero) any { return *h.RealName }, want: errSelectorPanic},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Resolve(tc.selector)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestResolve_NonStructTarget(t *testing.T) {
	_, err := Resolve(func(d *duration) any { return d })
	if !errors.Is(err, errNotStruct) {
		t.Fatalf("expected errNotStruct, got %v", err)
	}
}

func TestClassify(t *testing.T) {
	cases := map[reflect.Type]Kind{
		reflect.TypeOf(time.Time{}):             KindDateTime,
		reflect.TypeOf(&time.Time{}):            KindDateTime,
		reflect.TypeOf(0):                       KindNumeric,
		reflect.TypeOf(new(int)):                KindNumeric,
		reflect.TypeOf(int16(0)):                KindNumeric,
		reflect.TypeOf(int32(0)):                KindNumeric,
		reflect.TypeOf(new(int64)):              KindNumeric,
		reflect.TypeOf(float32(0)):              KindNumeric,
		reflect.TypeOf(new(float64)):            KindNumeric,
		reflect.TypeOf(decimal128.Decimal{}):    KindNumeric,
		reflect.TypeOf(new(decimal128.Decimal)): KindNumeric,
		reflect.TypeOf(uint8(0)):                KindOther,
		reflect.TypeOf(duration(0)):             KindOther,
		reflect.TypeOf(""):                      KindOther,
		reflect.TypeOf([]int{}):                 KindOther,
		reflect.TypeOf(time.Duration(0)):        KindOther,
	}

	for typ, want := range cases {
		if got := Classify(typ); got != want {
			t.Fatalf("%s: expected %d, got %d", typ, want, got)
		}
	}
	if Classify(nil) != KindOther {
		t.Fatalf("expected nil type to be KindOther")
	}
}
