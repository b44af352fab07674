package css

import "strings"

// Logical builds a flat rule of logical (flow-relative) properties:
// margin, padding, inset, border and sizing in the inline/block axes.
type Logical struct {
	selector string
	decls    declList
}

// NewLogical creates a logical-properties builder for a selector.
func NewLogical(selector string) *Logical {
	return &Logical{selector: selector}
}

// MarginInline sets margin-inline.
func (l *Logical) MarginInline(value string) *Logical { return l.set("margin-inline", value) }

// MarginBlock sets margin-block.
func (l *Logical) MarginBlock(value string) *Logical { return l.set("margin-block", value) }

// MarginInlineStart sets margin-inline-start.
func (l *Logical) MarginInlineStart(value string) *Logical {
	return l.set("margin-inline-start", value)
}

// MarginInlineEnd sets margin-inline-end.
func (l *Logical) MarginInlineEnd(value string) *Logical {
	return l.set("margin-inline-end", value)
}

// PaddingInline sets padding-inline.
func (l *Logical) PaddingInline(value string) *Logical { return l.set("padding-inline", value) }

// PaddingBlock sets padding-block.
func (l *Logical) PaddingBlock(value string) *Logical { return l.set("padding-block", value) }

// InsetInline sets inset-inline.
func (l *Logical) InsetInline(value string) *Logical { return l.set("inset-inline", value) }

// InsetBlock sets inset-block.
func (l *Logical) InsetBlock(value string) *Logical { return l.set("inset-block", value) }

// InsetInlineStart sets inset-inline-start.
func (l *Logical) InsetInlineStart(value string) *Logical {
	return l.set("inset-inline-start", value)
}

// InsetBlockStart sets inset-block-start.
func (l *Logical) InsetBlockStart(value string) *Logical {
	return l.set("inset-block-start", value)
}

// InlineSize sets inline-size (the logical width).
func (l *Logical) InlineSize(value string) *Logical { return l.set("inline-size", value) }

// BlockSize sets block-size (the logical height).
func (l *Logical) BlockSize(value string) *Logical { return l.set("block-size", value) }

// MinInlineSize sets min-inline-size.
func (l *Logical) MinInlineSize(value string) *Logical { return l.set("min-inline-size", value) }

// MaxInlineSize sets max-inline-size.
func (l *Logical) MaxInlineSize(value string) *Logical { return l.set("max-inline-size", value) }

// BorderInline sets the border-inline shorthand.
func (l *Logical) BorderInline(value string) *Logical { return l.set("border-inline", value) }

// BorderBlock sets the border-block shorthand.
func (l *Logical) BorderBlock(value string) *Logical { return l.set("border-block", value) }

// BorderStartStartRadius sets border-start-start-radius.
func (l *Logical) BorderStartStartRadius(value string) *Logical {
	return l.set("border-start-start-radius", value)
}

// Property appends any other declaration, for mixing physical
// properties into the same block.
func (l *Logical) Property(name, value string) *Logical { return l.set(name, value) }

func (l *Logical) set(name, value string) *Logical {
	l.decls.add(name, value)
	return l
}

// Inline renders the declarations without braces, for Rule.Raw.
func (l *Logical) Inline() string { return l.decls.Inline() }

// Render emits the selector block.
func (l *Logical) Render() string {
	var sb strings.Builder
	l.decls.writeBlock(&sb, l.selector, 0)
	return sb.String()
}
