package css

import "strings"

// Supports builds an @supports feature query: declaration and selector
// terms combined with and/or/not, plus the rules scoped inside.
type Supports struct {
	terms []string
	rules []*Rule
}

// NewSupports creates an empty feature query builder.
func NewSupports() *Supports {
	return &Supports{}
}

// Property appends a "(name: value)" support term.
func (s *Supports) Property(name, value string) *Supports {
	s.terms = append(s.terms, "("+name+": "+value+")")
	return s
}

// Selector appends a "selector(...)" support term.
func (s *Supports) Selector(sel string) *Supports {
	s.terms = append(s.terms, "selector("+sel+")")
	return s
}

// And inserts the "and" combinator before the next term.
func (s *Supports) And() *Supports {
	s.terms = append(s.terms, "and")
	return s
}

// Or inserts the "or" combinator before the next term.
func (s *Supports) Or() *Supports {
	s.terms = append(s.terms, "or")
	return s
}

// Not inserts the "not" operator before the next term.
func (s *Supports) Not() *Supports {
	s.terms = append(s.terms, "not")
	return s
}

// Raw appends a preassembled condition fragment verbatim, for callers
// that carry the whole condition as text.
func (s *Supports) Raw(term string) *Supports {
	s.terms = append(s.terms, term)
	return s
}

// Query returns the @supports header, e.g.
// "@supports (display: grid) and (gap: 1rem)".
func (s *Supports) Query() string {
	return "@supports " + strings.Join(s.terms, " ")
}

// Rule adds a rule tree scoped inside the query and returns it.
func (s *Supports) Rule(selector string) *Rule {
	r := NewRule(selector)
	s.rules = append(s.rules, r)
	return r
}

// Render emits the full @supports block with scoped rules indented one
// level.
func (s *Supports) Render() string {
	var sb strings.Builder
	sb.WriteString(s.Query())
	sb.WriteString(" {\n")
	for i, r := range s.rules {
		if i > 0 {
			sb.WriteString("\n")
		}
		r.writeTo(&sb, 1)
	}
	sb.WriteString("}\n")
	return sb.String()
}
