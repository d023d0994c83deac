package builder

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/goliatone/go-ionform/pkg/model"
)

// DefaultTagKey is the struct tag read by TagSource unless configured
// otherwise.
const DefaultTagKey = "form"

// AttributeSource supplies the declarative attribute of a struct field.
// target is the type handed to the builder; field may be promoted from an
// embedded struct.
type AttributeSource interface {
	Attribute(target reflect.Type, field reflect.StructField) (model.Attribute, bool)
}

// AttributeSourceFunc adapts a function into an AttributeSource.
type AttributeSourceFunc func(target reflect.Type, field reflect.StructField) (model.Attribute, bool)

// Attribute calls the underlying function.
func (fn AttributeSourceFunc) Attribute(target reflect.Type, field reflect.StructField) (model.Attribute, bool) {
	return fn(target, field)
}

// TagSource reads attributes from struct tags such as
//
//	RealName string `form:"secret,description='Secret identity, never shown',maxLength=64"`
//
// Malformed tokens are skipped.
type TagSource struct {
	Key string
}

// Attribute implements AttributeSource. A field without the tag, or with the
// tag set to "-", has no attribute.
func (s TagSource) Attribute(_ reflect.Type, field reflect.StructField) (model.Attribute, bool) {
	key := s.Key
	if key == "" {
		key = DefaultTagKey
	}
	raw, ok := field.Tag.Lookup(key)
	if !ok || strings.TrimSpace(raw) == "-" {
		return model.Attribute{}, false
	}
	attr, _ := ParseTag(raw)
	return attr, true
}

// ParseTag parses the comma separated tokens of a `form` tag. Tokens are
// either `key=value` or a bare boolean key (secret, required, enabled) meaning
// true. Values wrapped in single quotes may contain commas. Every token that
// cannot be applied is reported and skipped; the rest still apply.
func ParseTag(raw string) (model.Attribute, []error) {
	attr := model.NewAttribute()
	var issues []error

	for _, token := range splitTag(raw) {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		key, value, hasValue := strings.Cut(token, "=")
		key = strings.TrimSpace(key)
		value = unquote(strings.TrimSpace(value))
		if err := applyTagToken(&attr, key, value, hasValue); err != nil {
			issues = append(issues, fmt.Errorf("form tag %q: %w", token, err))
		}
	}

	return attr, issues
}

func applyTagToken(attr *model.Attribute, key, value string, hasValue bool) error {
	switch strings.ToLower(key) {
	case "secret":
		return setBool(&attr.Secret, value, hasValue)
	case "required":
		return setBool(&attr.Required, value, hasValue)
	case "enabled":
		return setBool(&attr.Enabled, value, hasValue)
	}

	if !hasValue {
		return fmt.Errorf("key %q needs a value", key)
	}

	switch strings.ToLower(key) {
	case "type":
		ft, err := model.ParseFieldType(value)
		if err != nil {
			return err
		}
		attr.Type = model.Some(ft)
	case "min":
		return setFloat(&attr.Min, value)
	case "max":
		return setFloat(&attr.Max, value)
	case "minlength":
		return setInt(&attr.MinLength, value)
	case "maxlength":
		return setInt(&attr.MaxLength, value)
	case "minsize":
		return setInt(&attr.MinSize, value)
	case "maxsize":
		return setInt(&attr.MaxSize, value)
	case "description":
		attr.Description = model.Some(value)
	case "pattern":
		attr.Pattern = model.Some(value)
	case "label":
		attr.Label = model.Some(value)
	case "placeholder":
		attr.Placeholder = model.Some(value)
	case "rel":
		for _, rel := range strings.Split(value, "|") {
			if rel = strings.TrimSpace(rel); rel != "" {
				attr.Relations = append(attr.Relations, rel)
			}
		}
	default:
		return fmt.Errorf("unknown key %q", key)
	}
	return nil
}

func setBool(dst *model.Optional[bool], value string, hasValue bool) error {
	if !hasValue {
		*dst = model.Some(true)
		return nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return err
	}
	*dst = model.Some(b)
	return nil
}

func setInt(dst *model.Optional[int], value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return err
	}
	*dst = model.Some(n)
	return nil
}

func setFloat(dst *model.Optional[float64], value string) error {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return err
	}
	*dst = model.Some(f)
	return nil
}

// splitTag splits on commas that are not inside single quotes.
func splitTag(raw string) []string {
	var (
		tokens  []string
		current strings.Builder
		quoted  bool
	)
	for _, r := range raw {
		switch {
		case r == '\'':
			quoted = !quoted
			current.WriteRune(r)
		case r == ',' && !quoted:
			tokens = append(tokens, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	return append(tokens, current.String())
}

func unquote(value string) string {
	if len(value) >= 2 && value[0] == '\'' && value[len(value)-1] == '\'' {
		return value[1 : len(value)-1]
	}
	return value
}
