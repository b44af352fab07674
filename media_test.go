package css

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMediaQuery(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Media
		want  string
	}{
		{
			name:  "type only",
			build: func() *Media { return NewMedia().Print() },
			want:  "@media print",
		},
		{
			name:  "single feature",
			build: func() *Media { return NewMedia().MinWidth("768px") },
			want:  "@media (min-width: 768px)",
		},
		{
			name: "type and features",
			build: func() *Media {
				return NewMedia().Screen().MinWidth("768px").MaxWidth("1024px")
			},
			want: "@media screen and (min-width: 768px) and (max-width: 1024px)",
		},
		{
			name:  "orientation",
			build: func() *Media { return NewMedia().All().Orientation("landscape") },
			want:  "@media all and (orientation: landscape)",
		},
		{
			name:  "prefers color scheme",
			build: func() *Media { return NewMedia().PrefersColorScheme("dark") },
			want:  "@media (prefers-color-scheme: dark)",
		},
		{
			name:  "prefers reduced motion",
			build: func() *Media { return NewMedia().PrefersReducedMotion() },
			want:  "@media (prefers-reduced-motion: reduce)",
		},
		{
			name:  "custom feature",
			build: func() *Media { return NewMedia().Feature("resolution", "2dppx") },
			want:  "@media (resolution: 2dppx)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.build().Query())
		})
	}
}

func TestMediaRender(t *testing.T) {
	m := NewMedia().Screen().MaxWidth("600px")
	m.Rule(".sidebar").Prop("display", "none")
	m.Rule(".content").Prop("width", "100%")

	want := `@media screen and (max-width: 600px) {
  .sidebar {
    display: none;
  }

  .content {
    width: 100%;
  }
}
`
	require.Equal(t, want, m.Render())
}

func TestMediaRenderNestedRule(t *testing.T) {
	m := NewMedia().PrefersColorScheme("dark")
	m.Rule(".card").Prop("background", "#111").
		Nest("&:hover").Prop("background", "#222")

	want := `@media (prefers-color-scheme: dark) {
  .card {
    background: #111;

    &:hover {
      background: #222;
    }
  }
}
`
	require.Equal(t, want, m.Render())
}

func TestSupportsQuery(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Supports
		want  string
	}{
		{
			name:  "single property",
			build: func() *Supports { return NewSupports().Property("display", "grid") },
			want:  "@supports (display: grid)",
		},
		{
			name: "and combination",
			build: func() *Supports {
				return NewSupports().Property("display", "grid").And().Property("gap", "1rem")
			},
			want: "@supports (display: grid) and (gap: 1rem)",
		},
		{
			name: "not operator",
			build: func() *Supports {
				return NewSupports().Not().Property("aspect-ratio", "1")
			},
			want: "@supports not (aspect-ratio: 1)",
		},
		{
			name: "or with selector term",
			build: func() *Supports {
				return NewSupports().Selector("h2 > p").Or().Property("display", "flex")
			},
			want: "@supports selector(h2 > p) or (display: flex)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.build().Query())
		})
	}
}

func TestSupportsRender(t *testing.T) {
	s := NewSupports().Property("display", "grid")
	s.Rule(".gallery").Prop("display", "grid").Prop("grid-template-columns", "repeat(3, 1fr)")

	want := `@supports (display: grid) {
  .gallery {
    display: grid;
    grid-template-columns: repeat(3, 1fr);
  }
}
`
	require.Equal(t, want, s.Render())
}
