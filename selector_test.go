package css

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectorString(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Selector
		want  string
	}{
		{
			name:  "single class",
			build: func() *Selector { return NewSelector().Class("btn") },
			want:  ".btn",
		},
		{
			name: "compound element class pseudo",
			build: func() *Selector {
				return NewSelector().Element("a").Class("nav-link").Pseudo("hover")
			},
			want: "a.nav-link:hover",
		},
		{
			name: "id with attribute",
			build: func() *Selector {
				return NewSelector().ID("main").AttrEquals("data-theme", "dark")
			},
			want: `#main[data-theme="dark"]`,
		},
		{
			name: "presence attribute",
			build: func() *Selector {
				return NewSelector().Element("input").Attr("disabled")
			},
			want: "input[disabled]",
		},
		{
			name: "child combinator",
			build: func() *Selector {
				return NewSelector().Class("menu").Child().Element("li")
			},
			want: ".menu > li",
		},
		{
			name: "descendant combinator",
			build: func() *Selector {
				return NewSelector().Class("card").Descendant().Element("p")
			},
			want: ".card p",
		},
		{
			name: "adjacent and sibling",
			build: func() *Selector {
				return NewSelector().Element("h2").Adjacent().Element("p").Sibling().Element("ul")
			},
			want: "h2 + p ~ ul",
		},
		{
			name: "pseudo element",
			build: func() *Selector {
				return NewSelector().Class("quote").PseudoElement("before")
			},
			want: ".quote::before",
		},
		{
			name: "functional pseudo class",
			build: func() *Selector {
				return NewSelector().Element("li").Pseudo("nth-child(2n)")
			},
			want: "li:nth-child(2n)",
		},
		{
			name: "nesting reference",
			build: func() *Selector {
				return NewSelector().Nesting().Pseudo("focus-visible")
			},
			want: "&:focus-visible",
		},
		{
			name: "comma group",
			build: func() *Selector {
				return NewSelector().Element("h1").Or().Element("h2").Or().Element("h3")
			},
			want: "h1, h2, h3",
		},
		{
			name: "trailing Or without new fragment",
			build: func() *Selector {
				return NewSelector().Class("a").Or()
			},
			want: ".a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.build().String())
		})
	}
}

func TestSelectorRule(t *testing.T) {
	r := NewSelector().Class("btn").Pseudo("active").Rule().Prop("opacity", "0.8")
	require.Equal(t, ".btn:active {\n  opacity: 0.8;\n}\n", r.Render())
}
