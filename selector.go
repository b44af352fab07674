package css

import "strings"

// Selector builds compound and complex CSS selectors from fragments.
// Fragment methods (Element, Class, Attr, ...) append to the current
// compound selector; combinator methods (Child, Descendant, ...) start
// the next one. Or starts a new comma-separated selector group.
type Selector struct {
	groups  []string
	current strings.Builder
}

// NewSelector creates an empty selector builder.
func NewSelector() *Selector {
	return &Selector{}
}

// Element appends a type selector (e.g. "div").
func (s *Selector) Element(name string) *Selector {
	s.current.WriteString(name)
	return s
}

// Class appends a class selector; the leading dot is added here.
func (s *Selector) Class(name string) *Selector {
	s.current.WriteString("." + name)
	return s
}

// ID appends an id selector; the leading hash is added here.
func (s *Selector) ID(name string) *Selector {
	s.current.WriteString("#" + name)
	return s
}

// Attr appends a presence attribute selector, [name].
func (s *Selector) Attr(name string) *Selector {
	s.current.WriteString("[" + name + "]")
	return s
}

// AttrEquals appends an exact-match attribute selector, [name="value"].
func (s *Selector) AttrEquals(name, value string) *Selector {
	s.current.WriteString("[" + name + `="` + value + `"]`)
	return s
}

// Pseudo appends a pseudo-class, e.g. Pseudo("hover") -> ":hover".
// Functional pseudo-classes pass the full text: Pseudo("nth-child(2n)").
func (s *Selector) Pseudo(name string) *Selector {
	s.current.WriteString(":" + name)
	return s
}

// PseudoElement appends a pseudo-element, e.g. "::before".
func (s *Selector) PseudoElement(name string) *Selector {
	s.current.WriteString("::" + name)
	return s
}

// Nesting appends the CSS nesting reference "&".
func (s *Selector) Nesting() *Selector {
	s.current.WriteString("&")
	return s
}

// Descendant starts the next compound selector after a space.
func (s *Selector) Descendant() *Selector { return s.combine(" ") }

// Child starts the next compound selector after ">".
func (s *Selector) Child() *Selector { return s.combine(" > ") }

// Adjacent starts the next compound selector after "+".
func (s *Selector) Adjacent() *Selector { return s.combine(" + ") }

// Sibling starts the next compound selector after "~".
func (s *Selector) Sibling() *Selector { return s.combine(" ~ ") }

func (s *Selector) combine(comb string) *Selector {
	s.current.WriteString(comb)
	return s
}

// Or closes the current selector and starts a new comma-separated one.
func (s *Selector) Or() *Selector {
	s.groups = append(s.groups, s.current.String())
	s.current.Reset()
	return s
}

// String returns the assembled selector list.
func (s *Selector) String() string {
	if len(s.groups) == 0 {
		return s.current.String()
	}
	all := append([]string{}, s.groups...)
	if s.current.Len() > 0 {
		all = append(all, s.current.String())
	}
	return strings.Join(all, ", ")
}

// Rule creates a root rule using the assembled selector.
func (s *Selector) Rule() *Rule {
	return NewRule(s.String())
}
