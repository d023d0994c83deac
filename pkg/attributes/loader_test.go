package attributes_test

import (
	"os"
	"reflect"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-ionform/pkg/attributes"
	"github.com/goliatone/go-ionform/pkg/builder"
	"github.com/goliatone/go-ionform/pkg/model"
)

type Hero struct {
	Nickname string
	RealName string `form:"secret=false,maxLength=40"`
}

func TestLoadFS(t *testing.T) {
	store, err := attributes.LoadFS(os.DirFS("testdata"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if diff := cmp.Diff([]string{"Hero", "Villain"}, store.Types()); diff != "" {
		t.Fatalf("types mismatch (-want +got):\n%s", diff)
	}

	realName, ok := store.Lookup("Hero", "RealName")
	if !ok {
		t.Fatalf("expected Hero.RealName")
	}
	if !realName.Secret.Value() || realName.Description.Value() != "Secret identity" {
		t.Fatalf("unexpected RealName attribute: %+v", realName)
	}

	nickname, _ := store.Lookup("Hero", "Nickname")
	if got := nickname.Label.Value(); got != "Alias" {
		t.Fatalf("expected sanitized label, got %q", got)
	}
	if diff := cmp.Diff([]string{"self", "search"}, nickname.Relations); diff != "" {
		t.Fatalf("relations mismatch (-want +got):\n%s", diff)
	}

	lair, _ := store.Lookup("Villain", "Lair")
	if lair.Type.Value() != model.FieldTypeSet || lair.MaxSize.Value() != 3 {
		t.Fatalf("unexpected Lair attribute: %+v", lair)
	}
	if got := lair.Placeholder.Value(); got != "Volcano & co" {
		t.Fatalf("expected entities decoded, got %q", got)
	}

	plan, _ := store.Lookup("Villain", "Plan")
	if !plan.IsSecretSet() || plan.Secret.Value() {
		t.Fatalf("expected explicit secret=false")
	}
	if plan.IsPatternSet() || plan.IsRequiredSet() {
		t.Fatalf("expected pattern and required unset")
	}
}

func TestLoadFS_Nil(t *testing.T) {
	store, err := attributes.LoadFS(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !store.Empty() {
		t.Fatalf("expected empty store")
	}
	if _, ok := store.Attribute(reflect.TypeOf(Hero{}), reflect.StructField{Name: "RealName"}); ok {
		t.Fatalf("expected no attribute")
	}
}

func TestLoadFS_Errors(t *testing.T) {
	cases := []struct {
		name string
		fsys fstest.MapFS
		want string
	}{
		{
			name: "duplicate field across files",
			fsys: fstest.MapFS{
				"a.yaml": {Data: []byte("types:\n  Hero:\n    RealName:\n      secret: true\n")},
				"b.json": {Data: []byte(`{"types":{"Hero":{"RealName":{"secret":false}}}}`)},
			},
			want: "duplicate field Hero.RealName",
		},
		{
			name: "empty file",
			fsys: fstest.MapFS{"a.yml": {Data: []byte("  \n")}},
			want: "is empty",
		},
		{
			name: "unknown field type",
			fsys: fstest.MapFS{"a.yaml": {Data: []byte("types:\n  Hero:\n    RealName:\n      type: blob\n")}},
			want: "unknown field type",
		},
		{
			name: "empty type name",
			fsys: fstest.MapFS{"a.json": {Data: []byte(`{"types":{" ":{"RealName":{}}}}`)}},
			want: "empty type name",
		},
		{
			name: "empty field name",
			fsys: fstest.MapFS{"a.json": {Data: []byte(`{"types":{"Hero":{"":{}}}}`)}},
			want: "empty field name",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := attributes.LoadFS(tc.fsys)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestLoadFS_SkipsOtherFiles(t *testing.T) {
	store, err := attributes.LoadFS(fstest.MapFS{
		"README.md":        {Data: []byte("# not an overlay")},
		"nested/hero.yaml": {Data: []byte("types:\n  Hero:\n    Nickname:\n      required: true\n")},
		"nested/notes.txt": {Data: []byte("types: nope")},
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff([]string{"Hero"}, store.Types()); diff != "" {
		t.Fatalf("types mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_QualifiedName(t *testing.T) {
	store, err := attributes.Parse([]byte(`{"types":{"attributes_test.Hero":{"Nickname":{"required":true}}}}`), "inline")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	field, _ := reflect.TypeOf(Hero{}).FieldByName("Nickname")
	attr, ok := store.Attribute(reflect.TypeOf(Hero{}), field)
	if !ok || !attr.Required.Value() {
		t.Fatalf("expected lookup by qualified name")
	}
}

func TestStore_AsBuilderSource(t *testing.T) {
	store, err := attributes.Parse([]byte("types:\n  Hero:\n    RealName:\n      secret: true\n      description: Kept off the record\n"), "inline.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	form := builder.New[Hero](builder.WithAttributeSource(store)).
		AddField(func(h *Hero) any { return &h.RealName }).
		Build()

	got := form.Fields[0]
	if got.Secret == nil || !*got.Secret {
		t.Fatalf("expected overlay secret to win over tag, got %v", got.Secret)
	}
	if got.MaxLength == nil || *got.MaxLength != 40 {
		t.Fatalf("expected tag maxLength to survive, got %v", got.MaxLength)
	}
	if got.Description == nil || *got.Description != "Kept off the record" {
		t.Fatalf("expected overlay description, got %v", got.Description)
	}
}
