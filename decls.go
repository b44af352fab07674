package css

import "strings"

// indentUnit is two spaces per depth level.
const indentUnit = "  "

// decl is a single declaration line. Raw declarations hold an
// already-formatted "name: value" string in value.
type decl struct {
	name  string
	value string
	raw   bool
}

// writeLine emits the declaration at the given indentation depth,
// terminated by a semicolon.
func (d decl) writeLine(sb *strings.Builder, depth int) {
	writeIndent(sb, depth)
	if !d.raw {
		sb.WriteString(d.name)
		sb.WriteString(": ")
	}
	sb.WriteString(d.value)
	sb.WriteString(";\n")
}

func writeIndent(sb *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		sb.WriteString(indentUnit)
	}
}

// declList is the ordered declaration sequence shared by the flat
// builders. Insertion order is preserved; nothing is deduplicated.
type declList struct {
	decls []decl
}

func (l *declList) add(name, value string) {
	l.decls = append(l.decls, decl{name: name, value: value})
}

// writeBlock emits "selector { decls }" at the given depth. Empty
// blocks still render a valid pair of braces.
func (l *declList) writeBlock(sb *strings.Builder, selector string, depth int) {
	writeIndent(sb, depth)
	sb.WriteString(selector)
	sb.WriteString(" {\n")
	for _, d := range l.decls {
		d.writeLine(sb, depth+1)
	}
	writeIndent(sb, depth)
	sb.WriteString("}\n")
}

// Inline renders the declarations as a single "name: value; ..." line
// with no braces, for merging into Rule.Raw or HTML style attributes.
func (l *declList) Inline() string {
	parts := make([]string, 0, len(l.decls))
	for _, d := range l.decls {
		if d.raw {
			parts = append(parts, d.value)
			continue
		}
		parts = append(parts, d.name+": "+d.value)
	}
	return strings.Join(parts, "; ")
}
