package tree

// Row pairs a node with the branch-glyph prefix that draws its position
// in the tree: "" for the root, then "├── "/"└── " with "│   " or
// "    " continuation segments for each intermediate ancestor.
type Row struct {
	Node   *Node
	Prefix string
}

// Rows returns the pre-order display rows for the subtree rooted at
// root. Row order matches Walk, so after AssignIndices the i-th row
// holds the node with index i.
func Rows(root *Node) []Row {
	rows := make([]Row, 0, root.Count())
	rows = append(rows, Row{Node: root})

	var walk func(n *Node, prefix string)
	walk = func(n *Node, prefix string) {
		for i, child := range n.Children {
			branch, continuation := "├── ", "│   "
			if i == len(n.Children)-1 {
				branch, continuation = "└── ", "    "
			}
			rows = append(rows, Row{Node: child, Prefix: prefix + branch})
			walk(child, prefix+continuation)
		}
	}
	walk(root, "")

	return rows
}
