package tree

import (
	"sort"

	"github.com/atomicstack/tmux-quick-actions/internal/action"
)

// NodeType identifies what a node represents.
type NodeType int

const (
	TypeCollection NodeType = iota
	TypeAction
	// TypeBack and TypeNextPage only exist inside a laid-out page.
	TypeBack
	TypeNextPage
)

func (t NodeType) String() string {
	switch t {
	case TypeCollection:
		return "collection"
	case TypeAction:
		return "action"
	case TypeBack:
		return "back"
	case TypeNextPage:
		return "next-page"
	default:
		return "unknown"
	}
}

// Node is a collection, an action, or a synthetic navigation button.
type Node struct {
	Name     string
	Path     string
	Type     NodeType
	Command  *action.Descriptor
	Children []*Node
	Parent   *Node
	Priority int
	// PageIndex survives revisits within one tree lifetime.
	PageIndex int

	ShowCheckmark bool
	Checked       bool
}

// IsRoot reports whether n has no parent.
func (n *Node) IsRoot() bool {
	return n != nil && n.Parent == nil
}

// Label is the text presented for the node.
func (n *Node) Label() string {
	switch n.Type {
	case TypeBack:
		return "Back"
	case TypeNextPage:
		return "Next"
	}
	return n.Name
}

func (n *Node) child(name string, kind NodeType) *Node {
	for _, c := range n.Children {
		if c.Name == name && c.Type == kind {
			return c
		}
	}
	return nil
}

// settle derives collection priorities from their descendants and sorts every
// level by (priority, name).
func (n *Node) settle() {
	if n.Type != TypeCollection {
		return
	}
	for i, c := range n.Children {
		c.settle()
		if i == 0 || c.Priority < n.Priority {
			n.Priority = c.Priority
		}
	}
	sortChildren(n.Children)
}

func sortChildren(children []*Node) {
	sort.SliceStable(children, func(i, j int) bool {
		a, b := children[i], children[j]
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.Type < b.Type
	})
}

func (n *Node) walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.walk(fn)
	}
}
