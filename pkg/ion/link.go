package ion

import (
	"encoding/json"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// templatePattern is the regexp equivalent of the glob `*{?*}*`: any prefix,
// a literal `{`, at least one character, a literal `}` and any suffix.
var templatePattern = regexp.MustCompile(`(?s)\{.+\}`)

// Link describes where and how a form (or any ION resource) is submitted. The
// relation set is kept private so duplicates can never be introduced.
type Link struct {
	Href   string
	Method string
	Title  string

	relations map[string]struct{}
}

// NewLink returns a link pointing at href with the supplied relations.
func NewLink(href string, rels ...string) *Link {
	link := &Link{Href: href}
	link.SetRelations(rels...)
	return link
}

// SetRelations replaces the relation set. Duplicates collapse and blank
// entries are dropped.
func (l *Link) SetRelations(rels ...string) {
	l.relations = nil
	l.AddRelations(rels...)
}

// AddRelations adds relations to the set.
func (l *Link) AddRelations(rels ...string) {
	for _, rel := range rels {
		rel = strings.TrimSpace(rel)
		if rel == "" {
			continue
		}
		if l.relations == nil {
			l.relations = make(map[string]struct{}, len(rels))
		}
		l.relations[rel] = struct{}{}
	}
}

// Relations returns the relation set sorted alphabetically.
func (l *Link) Relations() []string {
	if l == nil || len(l.relations) == 0 {
		return []string{}
	}
	out := make([]string, 0, len(l.relations))
	for rel := range l.relations {
		out = append(out, rel)
	}
	sort.Strings(out)
	return out
}

// HasRelation reports whether rel belongs to the relation set.
func (l *Link) HasRelation(rel string) bool {
	if l == nil {
		return false
	}
	_, ok := l.relations[rel]
	return ok
}

// Template reports whether Href is a URI template. It returns nil when Href is
// not set, since nothing can be said about a missing target.
func (l *Link) Template() *bool {
	if l == nil || l.Href == "" {
		return nil
	}
	templated := templatePattern.MatchString(l.Href)
	return &templated
}

type linkJSON struct {
	Href     string   `json:"href,omitempty"`
	Rel      []string `json:"rel,omitempty"`
	Method   string   `json:"method,omitempty"`
	Title    string   `json:"title,omitempty"`
	Template *bool    `json:"template,omitempty"`
}

// MarshalJSON encodes the link using ION member names.
func (l Link) MarshalJSON() ([]byte, error) {
	payload := linkJSON{
		Href:     l.Href,
		Method:   l.Method,
		Title:    l.Title,
		Template: l.Template(),
	}
	if rels := l.Relations(); len(rels) > 0 {
		payload.Rel = rels
	}
	return json.Marshal(payload)
}

// UnmarshalJSON decodes a link. The derived template member is ignored.
func (l *Link) UnmarshalJSON(data []byte) error {
	var payload linkJSON
	if err := json.Unmarshal(data, &payload); err != nil {
		return err
	}
	l.Href = payload.Href
	l.Method = payload.Method
	l.Title = payload.Title
	l.SetRelations(payload.Rel...)
	return nil
}

// UnmarshalYAML decodes a link from YAML using the same member names as JSON.
func (l *Link) UnmarshalYAML(node *yaml.Node) error {
	var payload struct {
		Href   string   `yaml:"href"`
		Rel    []string `yaml:"rel"`
		Method string   `yaml:"method"`
		Title  string   `yaml:"title"`
	}
	if err := node.Decode(&payload); err != nil {
		return err
	}
	l.Href = payload.Href
	l.Method = payload.Method
	l.Title = payload.Title
	l.SetRelations(payload.Rel...)
	return nil
}

// String returns the JSON form of the link, intended for logs.
func (l Link) String() string {
	data, err := json.Marshal(l)
	if err != nil {
		return "{}"
	}
	return string(data)
}
