// Package css provides fluent builders that emit CSS text: nested rule
// trees, selectors, media queries, feature queries, cascade layers,
// custom properties, logical properties, scroll-snap rules and
// @font-face declarations.
//
// # Nested rules
//
// Build a rule tree and render it as indented CSS nesting syntax:
//
//	rule := css.NewRule(".card").
//		Prop("padding", "1rem")
//	rule.Nest("&:hover").
//		Prop("color", "blue")
//	fmt.Print(rule.Render())
//
// # Stylesheets
//
// Combine builders into a single stylesheet fragment:
//
//	sheet := css.NewStylesheet().
//		Add(tokens, rule, media)
//	out := sheet.Render()
//
// # CLI Tool
//
// csskit compiles YAML stylesheet manifests to CSS and checks emitted
// files. Install with:
//
//	go install github.com/oscar-osmig/Jweb-sub003/cmd/csskit@latest
package css

// Builders come in two shapes, and the split is part of the contract:
//   - property setters (Prop, Raw, Set, Weight, ...) return the SAME
//     builder so declarations chain flatly;
//   - structural calls (Nest, NestAtRule, Layer, Item, ...) return the
//     NEW child handle so the chain continues inside the child.
//
// Every builder exposes Render() string and performs no CSS grammar
// validation: callers supply syntactically valid selectors and values.
