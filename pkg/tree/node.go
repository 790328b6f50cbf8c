// Package tree implements the hierarchical option model the picker
// navigates: named nodes with ordered children, a non-owning parent
// back-reference, and a stable pre-order index assigned once after the
// tree is built. The children slices are the only ownership edges, so
// the structure is acyclic even though upward walks are possible.
package tree

import "fmt"

// Node is a labeled vertex in the option tree. Nodes are created once
// when the tree is built; the core never reparents or renames them
// (renaming the root is a one-time configuration step in the picker).
type Node struct {
	Name     string
	Children []*Node
	Parent   *Node // back-reference for upward walks, set by New
	Index    int   // pre-order position, -1 until AssignIndices runs
}

// New creates a node and wires the parent pointer of each child.
func New(name string, children ...*Node) *Node {
	n := &Node{Name: name, Children: children, Index: -1}
	for _, child := range children {
		child.Parent = n
	}
	return n
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Depth returns the number of ancestors above the node (0 for the root).
func (n *Node) Depth() int {
	d := 0
	for cur := n.Parent; cur != nil; cur = cur.Parent {
		d++
	}
	return d
}

// Count returns the total number of nodes in the subtree rooted at n,
// including n itself.
func (n *Node) Count() int {
	total := 1
	for _, child := range n.Children {
		total += child.Count()
	}
	return total
}

// CountLeaves returns the number of childless nodes under n (n itself
// counts when it is a leaf).
func (n *Node) CountLeaves() int {
	if n.IsLeaf() {
		return 1
	}
	total := 0
	for _, child := range n.Children {
		total += child.CountLeaves()
	}
	return total
}

// Walk visits the subtree rooted at n in pre-order: n first, then each
// child's subtree in declaration order. This is the canonical display
// and indexing order.
func (n *Node) Walk(visit func(*Node)) {
	visit(n)
	for _, child := range n.Children {
		child.Walk(visit)
	}
}

// Descendants returns n and every node below it, pre-order, n first.
func (n *Node) Descendants() []*Node {
	nodes := make([]*Node, 0, n.Count())
	n.Walk(func(node *Node) {
		nodes = append(nodes, node)
	})
	return nodes
}

// Leaves returns the leaf nodes of the subtree rooted at n, in
// pre-order. A childless n returns itself.
func (n *Node) Leaves() []*Node {
	var leaves []*Node
	n.Walk(func(node *Node) {
		if node.IsLeaf() {
			leaves = append(leaves, node)
		}
	})
	return leaves
}

// ByIndex finds the node with the given pre-order index in the subtree
// rooted at n, or nil when no such node exists.
func (n *Node) ByIndex(index int) *Node {
	var found *Node
	n.Walk(func(node *Node) {
		if found == nil && node.Index == index {
			found = node
		}
	})
	return found
}

// AssignIndices stamps every node under root with its pre-order index,
// 0..N-1, children visited in their given order. It returns N. Running
// it again on the same shape yields the same assignment.
func AssignIndices(root *Node) int {
	next := 0
	root.Walk(func(node *Node) {
		node.Index = next
		next++
	})
	return next
}

// DefaultRootName is the name given to the synthetic root when a flat
// list of more than one option is wrapped into a tree.
const DefaultRootName = "Select all"

// FromItems maps a flat ordered list of raw items into a tree. Each item
// passes through mapFn; a nil mapFn wraps fmt.Sprint(item) in a node.
// More than one mapped node gets a synthetic "Select all" root with the
// nodes as children in input order; exactly one becomes the root itself.
func FromItems[T any](items []T, mapFn func(T) *Node) (*Node, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("tree: no items to build from")
	}
	if mapFn == nil {
		mapFn = func(item T) *Node {
			return New(fmt.Sprint(item))
		}
	}
	nodes := make([]*Node, len(items))
	for i, item := range items {
		nodes[i] = mapFn(item)
	}
	if len(nodes) == 1 {
		return nodes[0], nil
	}
	return New(DefaultRootName, nodes...), nil
}
