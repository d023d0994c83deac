package model_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-ionform/pkg/ion"
	"github.com/goliatone/go-ionform/pkg/model"
)

func TestNewForm_DefaultsToEmptyFields(t *testing.T) {
	form := model.NewForm()

	if form.Fields == nil || len(form.Fields) != 0 {
		t.Fatalf("expected empty non-nil fields, got %#v", form.Fields)
	}
	if form.Meta != nil {
		t.Fatalf("expected nil meta, got %v", form.Meta)
	}
}

func TestCompileSchema_EmptyForm(t *testing.T) {
	schema := model.NewForm().CompileSchema()

	if schema.Properties.Len() != 0 {
		t.Fatalf("expected no properties, got %d", schema.Properties.Len())
	}
	if len(schema.Required) != 0 {
		t.Fatalf("expected no required names, got %v", schema.Required)
	}
	if schema.Type != "object" {
		t.Fatalf("expected object schema, got %q", schema.Type)
	}
}

func TestCompileSchema_MapsConstraints(t *testing.T) {
	form := model.NewForm(
		model.Field{Name: "Prop1", Required: model.Ptr(true), Pattern: model.Ptr("/d{3}")},
		model.Field{Name: "Prop2", Enabled: model.Ptr(false)},
		model.Field{Name: "Prop3", Max: model.Ptr(10.0), Type: model.FieldTypeDecimal},
	)

	schema := form.CompileSchema()

	if diff := cmp.Diff([]string{"Prop1"}, schema.Required); diff != "" {
		t.Fatalf("required mismatch (-want +got):\n%s", diff)
	}

	prop1, ok := schema.Properties.Get("Prop1")
	if !ok {
		t.Fatalf("expected Prop1 property")
	}
	if prop1.Pattern != "/d{3}" {
		t.Fatalf("expected Prop1 pattern /d{3}, got %q", prop1.Pattern)
	}

	prop2, ok := schema.Properties.Get("Prop2")
	if !ok {
		t.Fatalf("expected Prop2 property")
	}
	if !prop2.ReadOnly {
		t.Fatalf("expected Prop2 to be read only")
	}

	prop3, ok := schema.Properties.Get("Prop3")
	if !ok {
		t.Fatalf("expected Prop3 property")
	}
	if prop3.Maximum != json.Number("10") {
		t.Fatalf("expected Prop3 maximum 10, got %q", prop3.Maximum)
	}
	if prop3.Type != "number" {
		t.Fatalf("expected Prop3 type number, got %q", prop3.Type)
	}
}

func TestCompileSchema_PropertyDocument(t *testing.T) {
	form := model.NewForm(
		model.Field{
			Name:        "Nickname",
			Description: model.Ptr("Public name"),
			Enabled:     model.Ptr(true),
			MinLength:   model.Ptr(2),
			MaxLength:   model.Ptr(20),
		},
		model.Field{Name: "Age", Type: model.FieldTypeInteger, Min: model.Ptr(0.0), Max: model.Ptr(120.5)},
		model.Field{Name: "Born", Type: model.FieldTypeDateTime},
		model.Field{Name: "Ratio", Type: model.FieldTypeNumber},
	)

	got := compileToMap(t, form)

	want := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"Nickname": map[string]any{
				"type":        "string",
				"description": "Public name",
				"readOnly":    false,
				"minLength":   float64(2),
				"maxLength":   float64(20),
			},
			"Age": map[string]any{
				"type":    "integer",
				"minimum": float64(0),
				"maximum": 120.5,
			},
			"Born":  map[string]any{"type": "string"},
			"Ratio": map[string]any{"type": "number"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("schema mismatch (-want +got):\n%s", diff)
	}
}

func TestCompileSchema_TypeMapping(t *testing.T) {
	cases := map[model.FieldType]string{
		model.FieldTypeString:   "string",
		model.FieldTypeDate:     "string",
		model.FieldTypeDateTime: "string",
		model.FieldTypeInteger:  "integer",
		model.FieldTypeNumber:   "number",
		model.FieldTypeDecimal:  "number",
		model.FieldTypeArray:    "string",
		model.FieldTypeSet:      "string",
	}
	for fieldType, want := range cases {
		schema := model.NewForm(model.Field{Name: "value", Type: fieldType}).CompileSchema()
		prop, _ := schema.Properties.Get("value")
		if prop.Type != want {
			t.Fatalf("%s: expected %s, got %s", fieldType, want, prop.Type)
		}
	}
}

func TestCompileSchema_DuplicateNamesLastWins(t *testing.T) {
	form := model.NewForm(
		model.Field{Name: "Dup", Required: model.Ptr(true), Type: model.FieldTypeInteger},
		model.Field{Name: "Other"},
		model.Field{Name: "Dup", Required: model.Ptr(true), Type: model.FieldTypeNumber},
	)

	schema := form.CompileSchema()

	if schema.Properties.Len() != 2 {
		t.Fatalf("expected 2 properties, got %d", schema.Properties.Len())
	}
	dup, _ := schema.Properties.Get("Dup")
	if dup.Type != "number" {
		t.Fatalf("expected last Dup definition to win, got %s", dup.Type)
	}
	if diff := cmp.Diff([]string{"Dup"}, schema.Required); diff != "" {
		t.Fatalf("required mismatch (-want +got):\n%s", diff)
	}

	var order []string
	for pair := schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
		order = append(order, pair.Key)
	}
	if diff := cmp.Diff([]string{"Dup", "Other"}, order); diff != "" {
		t.Fatalf("property order mismatch (-want +got):\n%s", diff)
	}
}

func TestCompileSchema_RequiredFalseAddsNothing(t *testing.T) {
	schema := model.NewForm(
		model.Field{Name: "a", Required: model.Ptr(false)},
		model.Field{Name: "b"},
	).CompileSchema()

	if len(schema.Required) != 0 {
		t.Fatalf("expected no required names, got %v", schema.Required)
	}
}

func TestCompileSchema_DropsUnrepresentableBounds(t *testing.T) {
	form := model.NewForm(model.Field{
		Name:      "weird",
		MinLength: model.Ptr(-1),
		MaxLength: model.Ptr(-5),
		Max:       model.Ptr(math.Inf(1)),
		Min:       model.Ptr(math.NaN()),
	})

	if _, err := form.CompileSchemaJSON(); err != nil {
		t.Fatalf("expected schema to marshal, got %v", err)
	}
	prop, _ := form.CompileSchema().Properties.Get("weird")
	if prop.MinLength != nil || prop.MaxLength != nil || prop.Minimum != "" || prop.Maximum != "" {
		t.Fatalf("expected bounds to be dropped, got %+v", prop)
	}
}

func TestForm_FieldLookup(t *testing.T) {
	form := model.NewForm(
		model.Field{Name: "a", Label: "first"},
		model.Field{Name: "a", Label: "second"},
	)

	got, ok := form.Field("a")
	if !ok || got.Label != "second" {
		t.Fatalf("expected last field named a, got %v (%t)", got, ok)
	}
	if _, ok := form.Field("missing"); ok {
		t.Fatalf("expected lookup miss")
	}
}

func TestForm_StringIncludesMeta(t *testing.T) {
	form := model.NewForm(model.Field{Name: "Nickname", Label: "Nickname"})
	form.Meta = ion.NewLink("/heroes", "create-form")
	form.Meta.Method = "POST"

	var got map[string]any
	if err := json.Unmarshal([]byte(form.String()), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := map[string]any{
		"meta": map[string]any{
			"href":     "/heroes",
			"rel":      []any{"create-form"},
			"method":   "POST",
			"template": false,
		},
		"fields": []any{
			map[string]any{"name": "Nickname", "label": "Nickname", "type": "string"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("form json mismatch (-want +got):\n%s", diff)
	}
}

func compileToMap(t *testing.T, form model.Form) map[string]any {
	t.Helper()

	data, err := form.CompileSchemaJSON()
	if err != nil {
		t.Fatalf("compile schema: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal schema: %v", err)
	}
	return out
}

func TestCompileSchema_EnabledToReadOnly(t *testing.T) {
	form := model.NewForm(
		model.Field{Name: "On", Enabled: model.Ptr(true)},
		model.Field{Name: "Off", Enabled: model.Ptr(false)},
		model.Field{Name: "Unset"},
	)

	got := compileToMap(t, form)["properties"].(map[string]any)
	want := map[string]any{
		"On":    map[string]any{"type": "string", "readOnly": false},
		"Off":   map[string]any{"type": "string", "readOnly": true},
		"Unset": map[string]any{"type": "string"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("readOnly mapping mismatch (-want +got):\n%s", diff)
	}
}
