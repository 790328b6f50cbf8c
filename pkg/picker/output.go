package picker

import (
	"fmt"

	"github.com/vanderheijden86/pickpack/pkg/tree"
)

// OutputMode selects the shape of each returned selection entry. The
// four modes are consistent projections of one canonical (node, index)
// selection, never divergent data.
type OutputMode int

const (
	// NodeIndex returns the node together with its pre-order index.
	NodeIndex OutputMode = iota
	// NameIndex returns the node's name together with its index.
	NameIndex
	// NodeOnly returns the node without its index.
	NodeOnly
	// NameOnly returns just the node's name.
	NameOnly
)

func (m OutputMode) String() string {
	switch m {
	case NodeIndex:
		return "nodeindex"
	case NameIndex:
		return "nameindex"
	case NodeOnly:
		return "nodeonly"
	case NameOnly:
		return "nameonly"
	}
	return fmt.Sprintf("OutputMode(%d)", int(m))
}

func (m OutputMode) valid() bool {
	switch m {
	case NodeIndex, NameIndex, NodeOnly, NameOnly:
		return true
	}
	return false
}

// ParseOutputMode converts one of the four mode names into its
// OutputMode. Anything else is a ConfigError.
func ParseOutputMode(s string) (OutputMode, error) {
	switch s {
	case "nodeindex":
		return NodeIndex, nil
	case "nameindex":
		return NameIndex, nil
	case "nodeonly":
		return NodeOnly, nil
	case "nameonly":
		return NameOnly, nil
	}
	return 0, configErrorf("invalid output mode %q: must be nodeindex, nameindex, nodeonly, or nameonly", s)
}

// Item is one shaped selection entry. Node is nil for the name-shaped
// modes and Index is -1 for the modes that drop it; Name is always set.
type Item struct {
	Node  *tree.Node
	Name  string
	Index int
}

// shapeNode projects a canonical selection entry per the output mode.
func shapeNode(n *tree.Node, mode OutputMode) Item {
	switch mode {
	case NodeIndex:
		return Item{Node: n, Name: n.Name, Index: n.Index}
	case NameIndex:
		return Item{Name: n.Name, Index: n.Index}
	case NodeOnly:
		return Item{Node: n, Name: n.Name, Index: -1}
	case NameOnly:
		return Item{Name: n.Name, Index: -1}
	}
	// Modes are validated at construction.
	panic("picker: unknown output mode " + mode.String())
}

func shapeNodes(nodes []*tree.Node, mode OutputMode) []Item {
	items := make([]Item, len(nodes))
	for i, n := range nodes {
		items[i] = shapeNode(n, mode)
	}
	return items
}
