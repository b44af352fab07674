package css

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFontFaceRender(t *testing.T) {
	f := NewFontFace("Inter").
		Local("Inter").
		Src("/fonts/inter.woff2", "woff2").
		Src("/fonts/inter.woff", "woff").
		Weight("100 900").
		Style("normal").
		Display("swap")

	want := `@font-face {
  font-family: "Inter";
  src: local("Inter"), url(/fonts/inter.woff2) format("woff2"), url(/fonts/inter.woff) format("woff");
  font-weight: 100 900;
  font-style: normal;
  font-display: swap;
}
`
	require.Equal(t, want, f.Render())
}

func TestFontFaceSrcWithoutFormat(t *testing.T) {
	f := NewFontFace("Mono").Src("/fonts/mono.ttf", "")
	want := "@font-face {\n  font-family: \"Mono\";\n  src: url(/fonts/mono.ttf);\n}\n"
	require.Equal(t, want, f.Render())
}

func TestFontFaceUnicodeRange(t *testing.T) {
	f := NewFontFace("Latin").
		Src("/fonts/latin.woff2", "woff2").
		UnicodeRange("U+0000-00FF")

	require.Contains(t, f.Render(), "  unicode-range: U+0000-00FF;\n")
}

func TestScrollSnapRender(t *testing.T) {
	s := NewScrollSnap(".carousel").
		Overflow("overflow-x", "scroll").
		Type("x", "mandatory").
		Padding("1rem").
		Behavior("smooth")
	s.Item(".carousel > img").Align("center").Stop("always")
	s.Item(".carousel > .ad").Align("start").Margin("0.5rem")

	want := `.carousel {
  overflow-x: scroll;
  scroll-snap-type: x mandatory;
  scroll-padding: 1rem;
  scroll-behavior: smooth;
}

.carousel > img {
  scroll-snap-align: center;
  scroll-snap-stop: always;
}

.carousel > .ad {
  scroll-snap-align: start;
  scroll-margin: 0.5rem;
}
`
	require.Equal(t, want, s.Render())
}

func TestScrollSnapContainerOnly(t *testing.T) {
	s := NewScrollSnap(".strip").Type("y", "proximity")
	require.Equal(t, ".strip {\n  scroll-snap-type: y proximity;\n}\n", s.Render())
}

func TestLogicalRender(t *testing.T) {
	l := NewLogical(".article").
		MarginBlock("1rem").
		PaddingInline("2rem").
		MaxInlineSize("65ch").
		BorderInline("1px solid gray")

	want := `.article {
  margin-block: 1rem;
  padding-inline: 2rem;
  max-inline-size: 65ch;
  border-inline: 1px solid gray;
}
`
	require.Equal(t, want, l.Render())
}

func TestLogicalInline(t *testing.T) {
	l := NewLogical("").MarginInlineStart("auto").InlineSize("50%")
	require.Equal(t, "margin-inline-start: auto; inline-size: 50%", l.Inline())
}

func TestLogicalInlineFeedsRuleRaw(t *testing.T) {
	flat := NewLogical("").PaddingBlock("0.5rem").InsetInlineStart("0")
	r := NewRule(".toast").Raw(flat.Inline())

	require.Equal(t, ".toast {\n  padding-block: 0.5rem;\n  inset-inline-start: 0;\n}\n", r.Render())
}
