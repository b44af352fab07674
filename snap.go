package css

import "strings"

// ScrollSnap builds scroll-snap rules: container declarations plus one
// sub-block per snapping item, rendered as sibling rules.
type ScrollSnap struct {
	container string
	decls     declList
	items     []*SnapItem
}

// SnapItem holds the snap declarations for one child selector.
type SnapItem struct {
	selector string
	decls    declList
}

// NewScrollSnap creates a scroll-snap builder for a container selector.
func NewScrollSnap(container string) *ScrollSnap {
	return &ScrollSnap{container: container}
}

// Type sets scroll-snap-type, e.g. Type("x", "mandatory").
func (s *ScrollSnap) Type(axis, strictness string) *ScrollSnap {
	s.decls.add("scroll-snap-type", axis+" "+strictness)
	return s
}

// Padding sets scroll-padding on the container.
func (s *ScrollSnap) Padding(value string) *ScrollSnap {
	s.decls.add("scroll-padding", value)
	return s
}

// Behavior sets scroll-behavior on the container.
func (s *ScrollSnap) Behavior(value string) *ScrollSnap {
	s.decls.add("scroll-behavior", value)
	return s
}

// Overflow sets the overflow declaration that makes the container a
// scroll port, e.g. Overflow("overflow-x", "scroll").
func (s *ScrollSnap) Overflow(name, value string) *ScrollSnap {
	s.decls.add(name, value)
	return s
}

// Item adds a snapping child selector and returns its handle, so align
// and stop declarations attach to the item rather than the container.
func (s *ScrollSnap) Item(selector string) *SnapItem {
	item := &SnapItem{selector: selector}
	s.items = append(s.items, item)
	return item
}

// Align sets scroll-snap-align.
func (i *SnapItem) Align(value string) *SnapItem {
	i.decls.add("scroll-snap-align", value)
	return i
}

// Stop sets scroll-snap-stop.
func (i *SnapItem) Stop(value string) *SnapItem {
	i.decls.add("scroll-snap-stop", value)
	return i
}

// Margin sets scroll-margin.
func (i *SnapItem) Margin(value string) *SnapItem {
	i.decls.add("scroll-margin", value)
	return i
}

// Render emits the container rule followed by one rule per item,
// separated by blank lines.
func (s *ScrollSnap) Render() string {
	var sb strings.Builder
	s.decls.writeBlock(&sb, s.container, 0)
	for _, item := range s.items {
		sb.WriteString("\n")
		item.decls.writeBlock(&sb, item.selector, 0)
	}
	return sb.String()
}
