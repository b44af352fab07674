package css

import "strings"

// Media builds an @media block: a media type, feature conditions joined
// with " and ", and the rules scoped inside the query.
type Media struct {
	mediaType  string
	conditions []string
	rules      []*Rule
}

// NewMedia creates an empty media query builder.
func NewMedia() *Media {
	return &Media{}
}

// Screen targets screen media.
func (m *Media) Screen() *Media { m.mediaType = "screen"; return m }

// Print targets print media.
func (m *Media) Print() *Media { m.mediaType = "print"; return m }

// All targets all media.
func (m *Media) All() *Media { m.mediaType = "all"; return m }

// Feature appends an arbitrary "(name: value)" condition.
func (m *Media) Feature(name, value string) *Media {
	m.conditions = append(m.conditions, "("+name+": "+value+")")
	return m
}

// MinWidth appends a (min-width: ...) condition.
func (m *Media) MinWidth(value string) *Media { return m.Feature("min-width", value) }

// MaxWidth appends a (max-width: ...) condition.
func (m *Media) MaxWidth(value string) *Media { return m.Feature("max-width", value) }

// Orientation appends an (orientation: ...) condition.
func (m *Media) Orientation(value string) *Media { return m.Feature("orientation", value) }

// PrefersColorScheme appends a (prefers-color-scheme: ...) condition.
func (m *Media) PrefersColorScheme(value string) *Media {
	return m.Feature("prefers-color-scheme", value)
}

// PrefersReducedMotion appends (prefers-reduced-motion: reduce).
func (m *Media) PrefersReducedMotion() *Media {
	return m.Feature("prefers-reduced-motion", "reduce")
}

// Query returns the @media header for the accumulated type and
// conditions, e.g. "@media screen and (min-width: 768px)".
func (m *Media) Query() string {
	parts := make([]string, 0, len(m.conditions)+1)
	if m.mediaType != "" {
		parts = append(parts, m.mediaType)
	}
	parts = append(parts, m.conditions...)
	return "@media " + strings.Join(parts, " and ")
}

// Rule adds a rule tree scoped inside the query and returns it for
// chaining, so properties and nested blocks attach to the new rule.
func (m *Media) Rule(selector string) *Rule {
	r := NewRule(selector)
	m.rules = append(m.rules, r)
	return r
}

// Render emits the full @media block with every scoped rule indented
// one level, blank lines separating consecutive rules.
func (m *Media) Render() string {
	var sb strings.Builder
	sb.WriteString(m.Query())
	sb.WriteString(" {\n")
	for i, r := range m.rules {
		if i > 0 {
			sb.WriteString("\n")
		}
		r.writeTo(&sb, 1)
	}
	sb.WriteString("}\n")
	return sb.String()
}
