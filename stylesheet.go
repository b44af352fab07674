package css

import "strings"

// Fragment is any builder that serializes itself to CSS text. All
// builders in this package implement it.
type Fragment interface {
	Render() string
}

// rawFragment wraps pre-rendered CSS text so external fragments can be
// mixed into a stylesheet.
type rawFragment string

func (r rawFragment) Render() string { return string(r) }

// Stylesheet aggregates fragments in insertion order and renders them
// separated by single blank lines.
type Stylesheet struct {
	fragments []Fragment
}

// NewStylesheet creates an empty stylesheet.
func NewStylesheet() *Stylesheet {
	return &Stylesheet{}
}

// Add appends fragments and returns the stylesheet for chaining.
func (s *Stylesheet) Add(fragments ...Fragment) *Stylesheet {
	s.fragments = append(s.fragments, fragments...)
	return s
}

// AddRaw appends verbatim CSS text as a fragment. A trailing newline is
// added when missing so fragment separation stays uniform.
func (s *Stylesheet) AddRaw(text string) *Stylesheet {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	s.fragments = append(s.fragments, rawFragment(text))
	return s
}

// Len returns the number of fragments.
func (s *Stylesheet) Len() int { return len(s.fragments) }

// Render joins all fragment output with one blank line between
// fragments.
func (s *Stylesheet) Render() string {
	parts := make([]string, 0, len(s.fragments))
	for _, f := range s.fragments {
		parts = append(parts, f.Render())
	}
	return strings.Join(parts, "\n")
}
