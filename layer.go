package css

import "strings"

// Layers builds cascade layer output: an ordered @layer declaration
// followed by one @layer block per named layer. Layer order is fixed by
// NewLayers and determines cascade priority.
type Layers struct {
	order  []string
	blocks map[string]*Layer
}

// Layer is a single named cascade layer holding rule trees.
type Layer struct {
	name  string
	rules []*Rule
}

// NewLayers declares the cascade layers in priority order
// (lowest first), e.g. NewLayers("reset", "base", "components").
func NewLayers(names ...string) *Layers {
	l := &Layers{
		order:  names,
		blocks: make(map[string]*Layer, len(names)),
	}
	for _, name := range names {
		l.blocks[name] = &Layer{name: name}
	}
	return l
}

// Declaration returns the ordering statement, "@layer a, b, c;".
func (l *Layers) Declaration() string {
	return "@layer " + strings.Join(l.order, ", ") + ";"
}

// Layer returns the named layer, appending it to the declared order if
// it was not part of NewLayers.
func (l *Layers) Layer(name string) *Layer {
	if block, ok := l.blocks[name]; ok {
		return block
	}
	block := &Layer{name: name}
	l.order = append(l.order, name)
	l.blocks[name] = block
	return block
}

// Rule adds a rule tree to the layer and returns it for chaining.
func (l *Layer) Rule(selector string) *Rule {
	r := NewRule(selector)
	l.rules = append(l.rules, r)
	return r
}

// Render emits the @layer declaration followed by one block per layer
// that holds rules. Empty layers are declared but emit no block.
func (l *Layers) Render() string {
	var sb strings.Builder
	sb.WriteString(l.Declaration())
	sb.WriteString("\n")

	for _, name := range l.order {
		block := l.blocks[name]
		if len(block.rules) == 0 {
			continue
		}
		sb.WriteString("\n@layer ")
		sb.WriteString(name)
		sb.WriteString(" {\n")
		for i, r := range block.rules {
			if i > 0 {
				sb.WriteString("\n")
			}
			r.writeTo(&sb, 1)
		}
		sb.WriteString("}\n")
	}

	return sb.String()
}
