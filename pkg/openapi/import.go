package openapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-ionform/pkg/ion"
	"github.com/goliatone/go-ionform/pkg/model"
)

var methods = []string{
	http.MethodGet,
	http.MethodPut,
	http.MethodPost,
	http.MethodDelete,
	http.MethodPatch,
	http.MethodHead,
	http.MethodOptions,
	http.MethodTrace,
}

// requestMediaTypes are tried in order when picking the request body schema.
var requestMediaTypes = []string{
	"application/json",
	"application/x-www-form-urlencoded",
	"multipart/form-data",
}

// LoadForms parses an OpenAPI 3 document (JSON or YAML) and returns one form
// per operation with a request body, keyed by operationId or "method:path"
// when the operation has none.
func LoadForms(ctx context.Context, data []byte) (map[string]model.Form, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}

	forms := make(map[string]model.Form)
	if doc.Paths == nil {
		return forms, nil
	}
	for _, path := range doc.Paths.InMatchingOrder() {
		item := doc.Paths.Value(path)
		if item == nil {
			continue
		}
		for _, method := range methods {
			op := item.GetOperation(method)
			if op == nil || op.RequestBody == nil {
				continue
			}
			form, err := FormFromOperation(method, path, op)
			if err != nil {
				return nil, err
			}
			id := op.OperationID
			if id == "" {
				id = operationID(method, path)
			}
			forms[id] = form
		}
	}
	return forms, nil
}

// FormFromOperation turns the request body of op into a form whose meta link
// points at path with method.
func FormFromOperation(method, path string, op *openapi3.Operation) (model.Form, error) {
	if op == nil {
		return model.Form{}, errors.New("openapi: operation is nil")
	}
	schema := requestSchema(op.RequestBody)
	if schema == nil {
		return model.Form{}, fmt.Errorf("openapi: %s %s: request body has no schema", method, path)
	}

	meta := ion.NewLink(path, "form")
	meta.Method = strings.ToUpper(method)
	meta.Title = op.Summary

	form := model.NewForm(FieldsFromSchema(schema)...)
	form.Meta = meta
	return form, nil
}

// FieldsFromSchema maps the properties of an object schema onto form fields,
// in lexical property order.
func FieldsFromSchema(schema *openapi3.Schema) []model.Field {
	if schema == nil || len(schema.Properties) == 0 {
		return []model.Field{}
	}

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	fields := make([]model.Field, 0, len(schema.Properties))
	for _, name := range sortedKeys(schema.Properties) {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		field := fieldFromSchema(name, ref.Value)
		if required[name] {
			field.Required = model.Ptr(true)
		}
		fields = append(fields, field)
	}
	return fields
}

func fieldFromSchema(name string, src *openapi3.Schema) model.Field {
	field := model.Field{
		Name:  name,
		Label: name,
		Type:  fieldType(src),
	}
	if src.Title != "" {
		field.Label = src.Title
	}
	if src.Description != "" {
		field.Description = model.Ptr(src.Description)
	}
	if src.Pattern != "" {
		field.Pattern = model.Ptr(src.Pattern)
	}
	if src.ReadOnly {
		field.Enabled = model.Ptr(false)
	}
	if src.Min != nil {
		field.Min = model.Ptr(*src.Min)
	}
	if src.Max != nil {
		field.Max = model.Ptr(*src.Max)
	}
	if src.MinLength > 0 {
		field.MinLength = model.Ptr(int(src.MinLength))
	}
	if src.MaxLength != nil {
		field.MaxLength = model.Ptr(int(*src.MaxLength))
	}
	if src.MinItems > 0 {
		field.MinSize = model.Ptr(int(src.MinItems))
	}
	if src.MaxItems != nil {
		field.MaxSize = model.Ptr(int(*src.MaxItems))
	}
	if src.Format == "password" {
		field.Secret = model.Ptr(true)
	}

	enum := src.Enum
	if len(enum) == 0 && src.Items != nil && src.Items.Value != nil {
		enum = src.Items.Value.Enum
	}
	if len(enum) > 0 {
		options := make([]model.Option, 0, len(enum))
		for _, value := range enum {
			options = append(options, model.NewOption(fmt.Sprint(value), value))
		}
		multi := field.Type.IsMultiValued()
		field.SetOptions(options)
		if !multi && field.MaxSize == nil {
			field.MaxSize = model.Ptr(1)
		}
	}
	return field
}

func fieldType(src *openapi3.Schema) model.FieldType {
	switch {
	case src.Type == nil:
		return model.FieldTypeString
	case src.Type.Is(openapi3.TypeInteger):
		return model.FieldTypeInteger
	case src.Type.Is(openapi3.TypeNumber):
		return model.FieldTypeNumber
	case src.Type.Is(openapi3.TypeArray):
		if src.UniqueItems {
			return model.FieldTypeSet
		}
		return model.FieldTypeArray
	case src.Format == "date-time":
		return model.FieldTypeDateTime
	case src.Format == "date":
		return model.FieldTypeDate
	default:
		return model.FieldTypeString
	}
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.Schema {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range requestMediaTypes {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	for _, name := range sortedKeys(content) {
		if mt := content[name]; mt != nil && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}
