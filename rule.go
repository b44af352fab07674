package css

import (
	"errors"
	"strings"
)

// ErrAtRoot is returned by Up when called on a rule that has no parent.
var ErrAtRoot = errors.New("css: already at root rule")

// Rule is a node in a tree of CSS rule blocks. It owns a selector (a
// literal selector, an at-rule header such as "@media (...)", or a
// nesting reference like "&:hover"), an ordered list of declarations,
// and an ordered list of child rules.
//
// Rules are created as children of an existing rule and are never
// re-parented, so a tree is acyclic by construction. A rule's depth is
// assigned once at creation and controls its indentation when rendered.
type Rule struct {
	selector string
	decls    []decl
	children []*Rule
	parent   *Rule // navigation only, never implies ownership
	depth    int
}

// NewRule creates a root rule with the given selector at depth 0.
func NewRule(selector string) *Rule {
	return &Rule{selector: selector}
}

// Selector returns the rule's selector text.
func (r *Rule) Selector() string { return r.selector }

// Depth returns the rule's indentation level (number of ancestors).
func (r *Rule) Depth() int { return r.depth }

// Prop appends a (name, value) declaration and returns the same rule,
// so property calls chain flatly before nesting. Declarations are kept
// in insertion order and never deduplicated: later declarations of the
// same name win downstream, per normal cascade semantics.
func (r *Rule) Prop(name, value string) *Rule {
	r.decls = append(r.decls, decl{name: name, value: value})
	return r
}

// Raw merges an externally-built flat style block into the rule. The
// input is split on ';', each fragment is trimmed, and empty fragments
// are skipped, so empty input and trailing semicolons are tolerated.
// Fragments are stored as already-formatted "name: value" lines and
// bypass the (name, value) pair form; no colon validation is performed.
func (r *Rule) Raw(block string) *Rule {
	for _, frag := range strings.Split(block, ";") {
		frag = strings.TrimSpace(frag)
		if frag == "" {
			continue
		}
		r.decls = append(r.decls, decl{value: frag, raw: true})
	}
	return r
}

// Nest creates a child rule with the given selector, appends it to this
// rule's children, and returns the child (not the receiver) so the
// caller continues building inside the child's context.
func (r *Rule) Nest(selector string) *Rule {
	child := &Rule{
		selector: selector,
		parent:   r,
		depth:    r.depth + 1,
	}
	r.children = append(r.children, child)
	return child
}

// NestAtRule nests a conditional at-rule block. The child's selector is
// synthesized as "@" + kind + " " + condition.
func (r *Rule) NestAtRule(kind, condition string) *Rule {
	return r.Nest("@" + kind + " " + condition)
}

// Media nests an @media block.
func (r *Rule) Media(condition string) *Rule {
	return r.NestAtRule("media", condition)
}

// Supports nests an @supports block.
func (r *Rule) Supports(condition string) *Rule {
	return r.NestAtRule("supports", condition)
}

// Container nests an @container block.
func (r *Rule) Container(condition string) *Rule {
	return r.NestAtRule("container", condition)
}

// Up returns the parent rule. It returns ErrAtRoot on a root rule so
// that navigation mistakes fail loudly instead of producing
// silently-wrong CSS.
func (r *Rule) Up() (*Rule, error) {
	if r.parent == nil {
		return nil, ErrAtRoot
	}
	return r.parent, nil
}

// Root walks parent links until it reaches the rule without a parent
// and returns it. Pure upward traversal, no mutation.
func (r *Rule) Root() *Rule {
	root := r
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// Render serializes this rule and every descendant into indented CSS
// nesting syntax. The rule's own stored depth is the base indentation
// unit, so rendering an unmodified tree twice yields identical output.
func (r *Rule) Render() string {
	var sb strings.Builder
	r.writeTo(&sb, r.depth)
	return sb.String()
}

// writeTo is the recursive serialization step. Output per rule: header,
// one line per declaration at depth+1, a blank line before each child
// block, then the closing brace at the header's indentation.
func (r *Rule) writeTo(sb *strings.Builder, depth int) {
	writeIndent(sb, depth)
	sb.WriteString(r.selector)
	sb.WriteString(" {\n")

	for _, d := range r.decls {
		d.writeLine(sb, depth+1)
	}

	for _, child := range r.children {
		sb.WriteString("\n")
		child.writeTo(sb, depth+1)
	}

	writeIndent(sb, depth)
	sb.WriteString("}\n")
}
