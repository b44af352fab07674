package css

import "strings"

// FontFace builds a single @font-face declaration block. Src and Local
// accumulate sources that render as one comma-separated src
// declaration, in call order; other setters append plain declarations.
type FontFace struct {
	sources []string
	decls   declList
}

// NewFontFace creates a font-face builder for the given family name.
func NewFontFace(family string) *FontFace {
	f := &FontFace{}
	f.decls.add("font-family", `"`+family+`"`)
	return f
}

// Src appends a url(...) source with an optional format hint.
func (f *FontFace) Src(url, format string) *FontFace {
	src := "url(" + url + ")"
	if format != "" {
		src += ` format("` + format + `")`
	}
	f.sources = append(f.sources, src)
	return f
}

// Local appends a local(...) source.
func (f *FontFace) Local(name string) *FontFace {
	f.sources = append(f.sources, `local("`+name+`")`)
	return f
}

// Weight sets font-weight; ranges like "100 900" pass through as-is.
func (f *FontFace) Weight(value string) *FontFace {
	f.decls.add("font-weight", value)
	return f
}

// Style sets font-style.
func (f *FontFace) Style(value string) *FontFace {
	f.decls.add("font-style", value)
	return f
}

// Display sets font-display.
func (f *FontFace) Display(value string) *FontFace {
	f.decls.add("font-display", value)
	return f
}

// UnicodeRange sets unicode-range.
func (f *FontFace) UnicodeRange(value string) *FontFace {
	f.decls.add("unicode-range", value)
	return f
}

// Stretch sets font-stretch.
func (f *FontFace) Stretch(value string) *FontFace {
	f.decls.add("font-stretch", value)
	return f
}

// Render emits the @font-face block. The src declaration follows
// font-family and joins all sources with commas.
func (f *FontFace) Render() string {
	var sb strings.Builder
	sb.WriteString("@font-face {\n")
	for i, d := range f.decls.decls {
		d.writeLine(&sb, 1)
		if i == 0 && len(f.sources) > 0 {
			decl{name: "src", value: strings.Join(f.sources, ", ")}.writeLine(&sb, 1)
		}
	}
	sb.WriteString("}\n")
	return sb.String()
}
