package openapi

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-ionform/pkg/model"
)

// DefaultMethod is used for forms whose meta link carries no method.
const DefaultMethod = http.MethodPost

var errMissingHref = errors.New("openapi: form meta link has no href")

// OperationOption configures the operation generated for a form.
type OperationOption func(*operationOptions)

type operationOptions struct {
	id          string
	description string
	tags        []string
}

// WithOperationID sets the operationId of the generated operation.
func WithOperationID(id string) OperationOption {
	return func(opts *operationOptions) {
		opts.id = strings.TrimSpace(id)
	}
}

// WithDescription sets the operation description.
func WithDescription(description string) OperationOption {
	return func(opts *operationOptions) {
		opts.description = description
	}
}

// WithTags appends operation tags.
func WithTags(tags ...string) OperationOption {
	return func(opts *operationOptions) {
		opts.tags = append(opts.tags, tags...)
	}
}

// Operation describes the submission of form as an OpenAPI operation. The
// request body is the compiled form schema served as application/json; the
// summary is the meta link title.
func Operation(form model.Form, options ...OperationOption) (*openapi3.Operation, error) {
	var cfg operationOptions
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	schema := SchemaFromJSONSchema(form.CompileSchema())
	if schema == nil {
		return nil, errors.New("openapi: form compiled to an empty schema")
	}

	op := openapi3.NewOperation()
	op.OperationID = cfg.id
	op.Description = cfg.description
	op.Tags = append(op.Tags, cfg.tags...)
	if form.Meta != nil {
		op.Summary = form.Meta.Title
		if templated := form.Meta.Template(); templated != nil && *templated {
			for _, name := range pathParameters(form.Meta.Href) {
				param := openapi3.NewPathParameter(name).WithSchema(openapi3.NewStringSchema())
				op.Parameters = append(op.Parameters, &openapi3.ParameterRef{Value: param})
			}
		}
	}
	op.RequestBody = &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().WithRequired(true).WithJSONSchema(schema),
	}
	op.Responses = openapi3.NewResponses(
		openapi3.WithStatus(http.StatusOK, &openapi3.ResponseRef{
			Value: openapi3.NewResponse().WithDescription("Submission accepted"),
		}),
	)
	return op, nil
}

// Info names the generated document.
type Info struct {
	Title   string
	Version string
}

// Document builds an OpenAPI 3 document with one operation per form, keyed by
// the form's meta href and method. Every form needs a meta link with an href;
// two forms may not share a path and method.
func Document(info Info, forms ...model.Form) (*openapi3.T, error) {
	if strings.TrimSpace(info.Title) == "" {
		info.Title = "Forms"
	}
	if strings.TrimSpace(info.Version) == "" {
		info.Version = "1.0.0"
	}

	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info:    &openapi3.Info{Title: info.Title, Version: info.Version},
		Paths:   openapi3.NewPaths(),
	}

	for idx, form := range forms {
		if form.Meta == nil || strings.TrimSpace(form.Meta.Href) == "" {
			return nil, fmt.Errorf("openapi: form %d: %w", idx, errMissingHref)
		}
		path := operationPath(form.Meta.Href)
		method := formMethod(form)

		item := doc.Paths.Value(path)
		if item == nil {
			item = &openapi3.PathItem{}
			doc.Paths.Set(path, item)
		}
		if item.GetOperation(method) != nil {
			return nil, fmt.Errorf("openapi: duplicate operation %s %s", method, path)
		}

		op, err := Operation(form, WithOperationID(operationID(method, path)))
		if err != nil {
			return nil, fmt.Errorf("openapi: form %d: %w", idx, err)
		}
		item.SetOperation(method, op)
	}

	return doc, nil
}

// operationPath turns an href into an OpenAPI path key: the query part is
// dropped and a relative href is rooted at "/".
func operationPath(href string) string {
	path, _, _ := strings.Cut(strings.TrimSpace(href), "?")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}

func formMethod(form model.Form) string {
	if form.Meta == nil || strings.TrimSpace(form.Meta.Method) == "" {
		return DefaultMethod
	}
	return strings.ToUpper(strings.TrimSpace(form.Meta.Method))
}

// operationID derives a stable identifier such as "post:/heroes".
func operationID(method, path string) string {
	return strings.ToLower(method) + ":" + path
}

// pathParameters lists the {name} segments of a templated href in order of
// appearance, without duplicates. Query templates are ignored.
func pathParameters(href string) []string {
	path, _, _ := strings.Cut(href, "?")
	var names []string
	seen := make(map[string]bool)
	for {
		start := strings.IndexByte(path, '{')
		if start < 0 {
			return names
		}
		end := strings.IndexByte(path[start:], '}')
		if end < 0 {
			return names
		}
		name := strings.TrimSpace(path[start+1 : start+end])
		if name != "" && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
		path = path[start+end+1:]
	}
}

// sortedKeys returns the keys of m in lexical order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
