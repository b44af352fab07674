// Package manifest compiles YAML stylesheet manifests into the css
// builders and renders them. A manifest describes design tokens,
// cascade layers, font faces, rule trees and conditional blocks; prop
// entries are lists, not maps, so declaration order survives parsing.
package manifest

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	css "github.com/oscar-osmig/Jweb-sub003"
)

// Manifest is the top-level YAML document. Section order in the
// rendered stylesheet is fixed: variables, font faces, layers, rules,
// media, supports, snap.
type Manifest struct {
	Variables *VariablesDoc   `yaml:"variables"`
	FontFaces []FontFaceDoc   `yaml:"fontfaces"`
	Layers    *LayersDoc      `yaml:"layers"`
	Rules     []RuleDoc       `yaml:"rules"`
	Media     []MediaDoc      `yaml:"media"`
	Supports  []SupportsDoc   `yaml:"supports"`
	Snap      []ScrollSnapDoc `yaml:"snap"`
}

// VariablesDoc declares a design-token table.
type VariablesDoc struct {
	Scope  string     `yaml:"scope"`
	Tokens []EntryDoc `yaml:"tokens"`
}

// EntryDoc is an ordered name/value pair.
type EntryDoc struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// FontFaceDoc declares one @font-face block.
type FontFaceDoc struct {
	Family  string   `yaml:"family"`
	Local   []string `yaml:"local"`
	Src     []SrcDoc `yaml:"src"`
	Weight  string   `yaml:"weight"`
	Style   string   `yaml:"style"`
	Display string   `yaml:"display"`
}

// SrcDoc is a single font source.
type SrcDoc struct {
	URL    string `yaml:"url"`
	Format string `yaml:"format"`
}

// LayersDoc declares cascade layers and their rules.
type LayersDoc struct {
	Order  []string   `yaml:"order"`
	Layers []LayerDoc `yaml:"layers"`
}

// LayerDoc holds the rules of one named layer.
type LayerDoc struct {
	Name  string    `yaml:"name"`
	Rules []RuleDoc `yaml:"rules"`
}

// RuleDoc is a node in a rule tree: either a selector or an at-rule
// header, plus ordered props, an optional raw block, and children.
type RuleDoc struct {
	Selector string     `yaml:"selector"`
	At       *AtDoc     `yaml:"at"`
	Props    []EntryDoc `yaml:"props"`
	Raw      string     `yaml:"raw"`
	Children []RuleDoc  `yaml:"children"`
}

// AtDoc names a conditional at-rule.
type AtDoc struct {
	Kind      string `yaml:"kind"`
	Condition string `yaml:"condition"`
}

// MediaDoc declares an @media block.
type MediaDoc struct {
	Type     string     `yaml:"type"`
	Features []EntryDoc `yaml:"features"`
	Rules    []RuleDoc  `yaml:"rules"`
}

// SupportsDoc declares an @supports block with a verbatim condition.
type SupportsDoc struct {
	Condition string    `yaml:"condition"`
	Rules     []RuleDoc `yaml:"rules"`
}

// ScrollSnapDoc declares a scroll-snap container and its items.
type ScrollSnapDoc struct {
	Container string        `yaml:"container"`
	Axis      string        `yaml:"axis"`
	Strict    string        `yaml:"strict"`
	Padding   string        `yaml:"padding"`
	Items     []SnapItemDoc `yaml:"items"`
}

// SnapItemDoc declares one snapping item.
type SnapItemDoc struct {
	Selector string `yaml:"selector"`
	Align    string `yaml:"align"`
	Stop     string `yaml:"stop"`
	Margin   string `yaml:"margin"`
}

// Load reads and parses a manifest file. Unknown YAML fields are
// rejected so manifest typos surface at load time.
func Load(path string) (*Manifest, error) {
	// #nosec G304 - path comes from caller-supplied glob patterns
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Parse(content, path)
}

// Parse parses manifest content; name is used in error messages.
func Parse(content []byte, name string) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		if err == io.EOF {
			return &Manifest{}, nil
		}
		return nil, fmt.Errorf("parse manifest %s: %w", name, err)
	}
	return &m, nil
}

// Build compiles the manifest into a stylesheet of builder fragments.
func (m *Manifest) Build() (*css.Stylesheet, error) {
	sheet := css.NewStylesheet()

	if m.Variables != nil {
		v := css.NewVariables()
		if m.Variables.Scope != "" {
			v.Scope(m.Variables.Scope)
		}
		for _, tok := range m.Variables.Tokens {
			v.Set(tok.Name, tok.Value)
		}
		sheet.Add(v)
	}

	for _, doc := range m.FontFaces {
		if doc.Family == "" {
			return nil, fmt.Errorf("fontface without family")
		}
		f := css.NewFontFace(doc.Family)
		for _, name := range doc.Local {
			f.Local(name)
		}
		for _, src := range doc.Src {
			f.Src(src.URL, src.Format)
		}
		if doc.Weight != "" {
			f.Weight(doc.Weight)
		}
		if doc.Style != "" {
			f.Style(doc.Style)
		}
		if doc.Display != "" {
			f.Display(doc.Display)
		}
		sheet.Add(f)
	}

	if m.Layers != nil {
		layers := css.NewLayers(m.Layers.Order...)
		for _, layerDoc := range m.Layers.Layers {
			layer := layers.Layer(layerDoc.Name)
			for _, ruleDoc := range layerDoc.Rules {
				if err := buildRule(ruleDoc, layer.Rule(ruleSelector(ruleDoc))); err != nil {
					return nil, fmt.Errorf("layer %s: %w", layerDoc.Name, err)
				}
			}
		}
		sheet.Add(layers)
	}

	for _, ruleDoc := range m.Rules {
		sel := ruleSelector(ruleDoc)
		if sel == "" {
			return nil, fmt.Errorf("top-level rule without selector")
		}
		root := css.NewRule(sel)
		if err := buildRule(ruleDoc, root); err != nil {
			return nil, err
		}
		sheet.Add(root)
	}

	for _, doc := range m.Media {
		media := css.NewMedia()
		switch doc.Type {
		case "screen":
			media.Screen()
		case "print":
			media.Print()
		case "all":
			media.All()
		case "":
		default:
			return nil, fmt.Errorf("unknown media type %q", doc.Type)
		}
		for _, feat := range doc.Features {
			media.Feature(feat.Name, feat.Value)
		}
		for _, ruleDoc := range doc.Rules {
			if err := buildRule(ruleDoc, media.Rule(ruleSelector(ruleDoc))); err != nil {
				return nil, err
			}
		}
		sheet.Add(media)
	}

	for _, doc := range m.Supports {
		if doc.Condition == "" {
			return nil, fmt.Errorf("supports block without condition")
		}
		sup := css.NewSupports().Raw(doc.Condition)
		for _, ruleDoc := range doc.Rules {
			if err := buildRule(ruleDoc, sup.Rule(ruleSelector(ruleDoc))); err != nil {
				return nil, err
			}
		}
		sheet.Add(sup)
	}

	for _, doc := range m.Snap {
		if doc.Container == "" {
			return nil, fmt.Errorf("snap block without container")
		}
		snap := css.NewScrollSnap(doc.Container)
		if doc.Axis != "" {
			strict := doc.Strict
			if strict == "" {
				strict = "mandatory"
			}
			snap.Type(doc.Axis, strict)
		}
		if doc.Padding != "" {
			snap.Padding(doc.Padding)
		}
		for _, item := range doc.Items {
			snapItem := snap.Item(item.Selector)
			if item.Align != "" {
				snapItem.Align(item.Align)
			}
			if item.Stop != "" {
				snapItem.Stop(item.Stop)
			}
			if item.Margin != "" {
				snapItem.Margin(item.Margin)
			}
		}
		sheet.Add(snap)
	}

	return sheet, nil
}

// ruleSelector resolves a rule doc's header: a literal selector, or a
// synthesized at-rule header when the at form is used.
func ruleSelector(doc RuleDoc) string {
	if doc.At != nil {
		return "@" + doc.At.Kind + " " + doc.At.Condition
	}
	return doc.Selector
}

// buildRule attaches props, raw blocks and children to an already
// created rule node, recursing into children.
func buildRule(doc RuleDoc, rule *css.Rule) error {
	if doc.Selector != "" && doc.At != nil {
		return fmt.Errorf("rule %q: selector and at are mutually exclusive", doc.Selector)
	}

	for _, prop := range doc.Props {
		rule.Prop(prop.Name, prop.Value)
	}
	if doc.Raw != "" {
		rule.Raw(doc.Raw)
	}

	for _, childDoc := range doc.Children {
		sel := ruleSelector(childDoc)
		if sel == "" {
			return fmt.Errorf("child of %q without selector or at", rule.Selector())
		}
		if err := buildRule(childDoc, rule.Nest(sel)); err != nil {
			return err
		}
	}

	return nil
}
