package openapi

import (
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/invopop/jsonschema"
)

// SchemaFromJSONSchema converts a compiled form schema into its OpenAPI
// equivalent. Only the keywords CompileSchema emits are carried over. An
// explicit readOnly false collapses into the OpenAPI default, which is also
// false. A nil schema yields nil.
func SchemaFromJSONSchema(src *jsonschema.Schema) *openapi3.Schema {
	if src == nil {
		return nil
	}

	out := &openapi3.Schema{
		Description: src.Description,
		Pattern:     src.Pattern,
		ReadOnly:    src.ReadOnly,
	}
	if src.Type != "" {
		out.Type = &openapi3.Types{src.Type}
	}
	if v, err := src.Minimum.Float64(); src.Minimum != "" && err == nil {
		out.Min = &v
	}
	if v, err := src.Maximum.Float64(); src.Maximum != "" && err == nil {
		out.Max = &v
	}
	if src.MinLength != nil {
		out.MinLength = *src.MinLength
	}
	if src.MaxLength != nil {
		v := *src.MaxLength
		out.MaxLength = &v
	}
	if len(src.Required) > 0 {
		out.Required = append([]string(nil), src.Required...)
	}
	if src.Properties != nil && src.Properties.Len() > 0 {
		out.Properties = make(openapi3.Schemas, src.Properties.Len())
		for pair := src.Properties.Oldest(); pair != nil; pair = pair.Next() {
			out.Properties[pair.Key] = openapi3.NewSchemaRef("", SchemaFromJSONSchema(pair.Value))
		}
	}
	return out
}
