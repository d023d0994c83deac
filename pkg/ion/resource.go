package ion

// Resource is the base of every ION document. Meta carries the link that
// describes the resource itself, for forms this is where and how the form is
// submitted.
type Resource struct {
	Meta *Link `json:"meta,omitempty" yaml:"meta,omitempty"`
}
