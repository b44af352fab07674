package css

import "strings"

// Variables builds a design-token table: custom property declarations
// emitted in insertion order under a scope selector (":root" by
// default). Setting an existing token overwrites its value but keeps
// its original position, so token tables render deterministically.
type Variables struct {
	selector string
	names    []string
	values   map[string]string
}

// NewVariables creates an empty token table scoped to :root.
func NewVariables() *Variables {
	return &Variables{
		selector: ":root",
		values:   make(map[string]string),
	}
}

// Scope changes the selector the tokens are declared under.
func (v *Variables) Scope(selector string) *Variables {
	v.selector = selector
	return v
}

// Set declares a custom property. The "--" prefix is added when absent,
// so Set("brand", ...) and Set("--brand", ...) name the same token.
func (v *Variables) Set(name, value string) *Variables {
	name = normalizeVarName(name)
	if _, ok := v.values[name]; !ok {
		v.names = append(v.names, name)
	}
	v.values[name] = value
	return v
}

// Len returns the number of declared tokens.
func (v *Variables) Len() int { return len(v.names) }

// Render emits the scope block with one declaration per token, in
// insertion order.
func (v *Variables) Render() string {
	var sb strings.Builder
	sb.WriteString(v.selector)
	sb.WriteString(" {\n")
	for _, name := range v.names {
		sb.WriteString(indentUnit)
		sb.WriteString(name)
		sb.WriteString(": ")
		sb.WriteString(v.values[name])
		sb.WriteString(";\n")
	}
	sb.WriteString("}\n")
	return sb.String()
}

// Var returns a var() reference to the named token.
func Var(name string) string {
	return "var(" + normalizeVarName(name) + ")"
}

// VarDefault returns a var() reference with a fallback value.
func VarDefault(name, fallback string) string {
	return "var(" + normalizeVarName(name) + ", " + fallback + ")"
}

func normalizeVarName(name string) string {
	if strings.HasPrefix(name, "--") {
		return name
	}
	return "--" + name
}
