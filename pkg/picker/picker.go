// Package picker implements the selection state machine over an indexed
// option tree: wrap-around cursor movement, cascading multi-select
// propagation, and the output-shaping policies. It knows nothing about
// terminals; pkg/ui drives it and renders its state.
package picker

import (
	"github.com/vanderheijden86/pickpack/pkg/tree"
)

// Defaults for the construction-time options.
const (
	DefaultIndicator  = "*"
	DefaultBracketL   = "("
	DefaultBracketR   = ")"
	defaultHighlightF = "7" // ANSI white
	defaultHighlightB = "2" // ANSI green
)

type config struct {
	title              string
	rootName           string
	indicator          string
	brackets           bool
	bracketL, bracketR string
	defaultIndex       int
	multiselect        bool
	minSelection       int
	includeDescendants bool
	leavesOnly         bool
	mode               OutputMode
	highlightFg        string
	highlightBg        string
}

// Option configures a Picker at construction time.
type Option func(*config)

// WithTitle sets the title rendered above the option lines. Newlines
// split it into multiple title lines.
func WithTitle(title string) Option {
	return func(c *config) { c.title = title }
}

// WithRootName overrides the root node's display name. This also renames
// the synthetic "Select all" root of a wrapped flat list.
func WithRootName(name string) Option {
	return func(c *config) { c.rootName = name }
}

// WithIndicator sets the cursor indicator glyph (default "*").
func WithIndicator(glyph string) Option {
	return func(c *config) { c.indicator = glyph }
}

// WithBrackets sets the bracket pair drawn around the indicator
// (default "(" and ")").
func WithBrackets(left, right string) Option {
	return func(c *config) {
		c.brackets = true
		c.bracketL, c.bracketR = left, right
	}
}

// WithoutBrackets removes the brackets around the indicator.
func WithoutBrackets() Option {
	return func(c *config) { c.brackets = false }
}

// WithDefaultIndex places the cursor on the given index at start.
func WithDefaultIndex(index int) Option {
	return func(c *config) { c.defaultIndex = index }
}

// WithMultiselect enables selecting multiple entries with the select
// key; the session finalizes on enter only once at least min entries
// are selected.
func WithMultiselect(min int) Option {
	return func(c *config) {
		c.multiselect = true
		c.minSelection = min
	}
}

// WithIncludeDescendants makes single-select output include the whole
// subtree of the chosen node, node itself first.
func WithIncludeDescendants() Option {
	return func(c *config) { c.includeDescendants = true }
}

// WithLeavesOnly restricts output to leaf nodes. In single-select mode
// this requires WithIncludeDescendants.
func WithLeavesOnly() Option {
	return func(c *config) { c.leavesOnly = true }
}

// WithOutputMode sets the shape of the returned entries.
func WithOutputMode(mode OutputMode) Option {
	return func(c *config) { c.mode = mode }
}

// WithHighlight sets the foreground and background colors of the
// multiselect highlight. Values are lipgloss color strings (ANSI number
// or hex).
func WithHighlight(fg, bg string) Option {
	return func(c *config) {
		c.highlightFg, c.highlightBg = fg, bg
	}
}

// Picker holds one interactive session's selection state over an
// indexed tree. The tree shape is immutable for the Picker's lifetime;
// only the cursor and the selected set mutate.
type Picker struct {
	root   *tree.Node
	count  int
	cursor int
	// selected doubles as membership set and insertion-order record;
	// multiselect output is emitted in this order.
	selected []int
	cfg      config
}

func defaultConfig() config {
	return config{
		indicator:   DefaultIndicator,
		brackets:    true,
		bracketL:    DefaultBracketL,
		bracketR:    DefaultBracketR,
		mode:        NodeIndex,
		highlightFg: defaultHighlightF,
		highlightBg: defaultHighlightB,
	}
}

// New builds a Picker over a pre-built tree. The tree is indexed in
// place (pre-order, children in given order) and must be private to
// this Picker. All configuration errors surface here, before any
// terminal takeover.
func New(root *tree.Node, opts ...Option) (*Picker, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if root == nil {
		return nil, configErrorf("options should not be empty")
	}
	count := tree.AssignIndices(root)
	if cfg.rootName != "" {
		root.Name = cfg.rootName
	}

	if !cfg.multiselect && cfg.leavesOnly && !cfg.includeDescendants {
		return nil, configErrorf("leaves-only output in single-select mode requires include-descendants")
	}
	if cfg.defaultIndex < 0 || cfg.defaultIndex >= count {
		return nil, configErrorf("default index %d out of range [0,%d)", cfg.defaultIndex, count)
	}
	if cfg.multiselect && cfg.minSelection > count {
		return nil, configErrorf("minimum selection count %d exceeds the %d available options", cfg.minSelection, count)
	}
	if !cfg.mode.valid() {
		return nil, configErrorf("invalid output mode %q", cfg.mode.String())
	}

	return &Picker{
		root:   root,
		count:  count,
		cursor: cfg.defaultIndex,
		cfg:    cfg,
	}, nil
}

// FromItems builds a Picker from a flat ordered list of raw items. Each
// item passes through mapFn (nil falls back to wrapping the item's
// string form in a node); more than one mapped node gets a synthetic
// "Select all" root.
func FromItems[T any](items []T, mapFn func(T) *tree.Node, opts ...Option) (*Picker, error) {
	root, err := tree.FromItems(items, mapFn)
	if err != nil {
		return nil, configErrorf("options should not be empty")
	}
	return New(root, opts...)
}

// Root returns the indexed tree root.
func (p *Picker) Root() *tree.Node { return p.root }

// Count returns the total number of options (internal and leaf nodes).
func (p *Picker) Count() int { return p.count }

// Cursor returns the index the cursor is on.
func (p *Picker) Cursor() int { return p.cursor }

// Title returns the configured title ("" when absent).
func (p *Picker) Title() string { return p.cfg.title }

// Indicator returns the cursor glyph and its bracket pair; brackets is
// false when the glyph is drawn bare.
func (p *Picker) Indicator() (glyph, left, right string, brackets bool) {
	return p.cfg.indicator, p.cfg.bracketL, p.cfg.bracketR, p.cfg.brackets
}

// Multiselect reports whether multi-selection is enabled.
func (p *Picker) Multiselect() bool { return p.cfg.multiselect }

// MinSelection returns the minimum selection count for finalizing a
// multiselect session.
func (p *Picker) MinSelection() int { return p.cfg.minSelection }

// Highlight returns the configured multiselect highlight colors as
// lipgloss color strings.
func (p *Picker) Highlight() (fg, bg string) {
	return p.cfg.highlightFg, p.cfg.highlightBg
}

// Mode returns the configured output mode.
func (p *Picker) Mode() OutputMode { return p.cfg.mode }

// CanFinalize reports whether enter may end the session: always in
// single-select, at or above the minimum selection count in
// multiselect.
func (p *Picker) CanFinalize() bool {
	if !p.cfg.multiselect {
		return true
	}
	return len(p.selected) >= p.cfg.minSelection
}

// MoveUp decrements the cursor, wrapping to the last index below zero.
// Movement is pure index arithmetic; the tree's branching shape never
// matters.
func (p *Picker) MoveUp() {
	p.cursor--
	if p.cursor < 0 {
		p.cursor = p.count - 1
	}
}

// MoveDown increments the cursor, wrapping to zero past the last index.
func (p *Picker) MoveDown() {
	p.cursor++
	if p.cursor >= p.count {
		p.cursor = 0
	}
}

// IsSelected reports whether the given index is in the selected set.
func (p *Picker) IsSelected(index int) bool {
	for _, sel := range p.selected {
		if sel == index {
			return true
		}
	}
	return false
}

// SelectionCount returns the number of selected indices.
func (p *Picker) SelectionCount() int { return len(p.selected) }

// SelectedIndices returns the selected indices in insertion order.
func (p *Picker) SelectedIndices() []int {
	out := make([]int, len(p.selected))
	copy(out, p.selected)
	return out
}

// Toggle flips the selection of the node under the cursor and cascades
// the change through its relatives. No-op in single-select mode.
func (p *Picker) Toggle() {
	p.ToggleAt(p.cursor)
}

// ToggleAt flips the selection of the node at the given index.
//
// Selecting X selects X's whole subtree, then walks upward adding each
// ancestor whose direct children are now all selected, stopping at the
// first ancestor with an unselected child. Deselecting X deselects the
// subtree, then walks upward removing ancestors until one is found
// already unselected, and stops there without inspecting higher
// ancestors. The asymmetry is deliberate: a parent is selected exactly
// when its whole subtree is, so an already-unselected ancestor implies
// everything above it is consistent.
func (p *Picker) ToggleAt(index int) {
	if !p.cfg.multiselect {
		return
	}
	node := p.root.ByIndex(index)
	if node == nil {
		return
	}
	if p.IsSelected(index) {
		p.remove(index)
		p.unselectDescendants(node)
		p.unselectAncestors(node)
	} else {
		p.selected = append(p.selected, index)
		p.selectDescendants(node)
		p.selectAncestors(node)
	}
}

// remove deletes index from the selected set, reporting whether it was
// present.
func (p *Picker) remove(index int) bool {
	for i, sel := range p.selected {
		if sel == index {
			p.selected = append(p.selected[:i], p.selected[i+1:]...)
			return true
		}
	}
	return false
}

// selectDescendants adds every not-yet-selected node below n, pre-order.
func (p *Picker) selectDescendants(n *tree.Node) {
	for _, child := range n.Children {
		if !p.IsSelected(child.Index) {
			p.selected = append(p.selected, child.Index)
		}
		if len(child.Children) > 0 {
			p.selectDescendants(child)
		}
	}
}

// selectAncestors walks upward from n adding each ancestor whose direct
// children are all selected; the walk stops at the first ancestor with
// an unselected child.
func (p *Picker) selectAncestors(n *tree.Node) {
	for cur := n; cur.Parent != nil; {
		parent := cur.Parent
		for _, sibling := range parent.Children {
			if !p.IsSelected(sibling.Index) {
				return
			}
		}
		p.selected = append(p.selected, parent.Index)
		cur = parent
	}
}

// unselectDescendants removes every selected node below n.
func (p *Picker) unselectDescendants(n *tree.Node) {
	for _, child := range n.Children {
		p.remove(child.Index)
		if len(child.Children) > 0 {
			p.unselectDescendants(child)
		}
	}
}

// unselectAncestors walks upward from n removing ancestors until one is
// found already unselected, then stops immediately.
func (p *Picker) unselectAncestors(n *tree.Node) {
	for cur := n; cur.Parent != nil; {
		if !p.remove(cur.Parent.Index) {
			return
		}
		cur = cur.Parent
	}
}

// Selected returns the current selection shaped by the configured
// policies and output mode.
//
// Single-select returns the cursor node (plus its whole subtree with
// include-descendants, or its leaf descendants with leaves-only).
// Multiselect returns the selected entries in the order they were
// added; with leaves-only, each entry's leaf descendants, deduplicated
// across entries by node identity in first-seen order.
func (p *Picker) Selected() []Item {
	if p.cfg.multiselect {
		if p.cfg.leavesOnly {
			return shapeNodes(p.selectedLeaves(), p.cfg.mode)
		}
		nodes := make([]*tree.Node, 0, len(p.selected))
		for _, index := range p.selected {
			nodes = append(nodes, p.root.ByIndex(index))
		}
		return shapeNodes(nodes, p.cfg.mode)
	}

	node := p.root.ByIndex(p.cursor)
	switch {
	case p.cfg.leavesOnly:
		return shapeNodes(node.Leaves(), p.cfg.mode)
	case p.cfg.includeDescendants:
		return shapeNodes(node.Descendants(), p.cfg.mode)
	default:
		return shapeNodes([]*tree.Node{node}, p.cfg.mode)
	}
}

// selectedLeaves collects the leaf descendants of every selected index
// in insertion order, deduplicated by node identity.
func (p *Picker) selectedLeaves() []*tree.Node {
	seen := make(map[*tree.Node]bool)
	var leaves []*tree.Node
	for _, index := range p.selected {
		for _, leaf := range p.root.ByIndex(index).Leaves() {
			if !seen[leaf] {
				seen[leaf] = true
				leaves = append(leaves, leaf)
			}
		}
	}
	return leaves
}
