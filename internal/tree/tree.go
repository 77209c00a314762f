package tree

import (
	"errors"
	"sort"
	"strings"

	"github.com/atomicstack/tmux-quick-actions/internal/action"
	"github.com/atomicstack/tmux-quick-actions/internal/logging/events"
)

const (
	// DefaultMaxPerPage is the number of buttons a page holds, navigation included.
	DefaultMaxPerPage = 8
	// MinMaxPerPage leaves room for Back, NextPage and one item.
	MinMaxPerPage = 3

	rootLabel = "Root"
)

// ErrNotAction is returned when a non-action node is executed.
var ErrNotAction = errors.New("node is not an action")

// Source supplies the commands a tree is built from. *action.Registry
// satisfies it.
type Source interface {
	EnabledCommands() map[string]*action.Descriptor
	Execute(path string) error
	RefreshStates()
	State(path string) action.State
}

// Option configures a Tree.
type Option func(*Tree)

// WithMaxPerPage overrides the page capacity. Values below MinMaxPerPage are
// ignored.
func WithMaxPerPage(n int) Option {
	return func(t *Tree) {
		if n >= MinMaxPerPage {
			t.maxPerPage = n
		}
	}
}

// Tree projects the enabled commands of a Source into a paginated hierarchy.
// It is built lazily and rebuilt from scratch after Refresh.
type Tree struct {
	source     Source
	maxPerPage int
	root       *Node
	current    *Node
	// search is the synthetic results collection, outside the hierarchy.
	search *Node
}

// New constructs an unbuilt tree over src.
func New(src Source, opts ...Option) *Tree {
	t := &Tree{source: src, maxPerPage: DefaultMaxPerPage}
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}
	return t
}

// MaxPerPage reports the page capacity.
func (t *Tree) MaxPerPage() int {
	return t.maxPerPage
}

// Refresh discards the built tree; the next query rebuilds it.
func (t *Tree) Refresh() {
	t.root = nil
	t.current = nil
	t.search = nil
}

// Rebuild discards and immediately rebuilds the tree.
func (t *Tree) Rebuild() {
	t.Refresh()
	t.ensureBuilt()
}

// Root returns the root collection.
func (t *Tree) Root() *Node {
	t.ensureBuilt()
	return t.root
}

// Current returns the collection being shown.
func (t *Tree) Current() *Node {
	t.ensureBuilt()
	return t.current
}

func (t *Tree) ensureBuilt() {
	if t.root != nil {
		return
	}
	t.root = build(t.source)
	t.current = t.root
}

func build(src Source) *Node {
	root := &Node{Type: TypeCollection}
	commands := src.EnabledCommands()
	paths := make([]string, 0, len(commands))
	for path := range commands {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	actions, collections := 0, 0
	for _, path := range paths {
		d := commands[path]
		segments := action.SplitPath(path)
		parent := root
		for i, segment := range segments {
			last := i == len(segments)-1
			kind := TypeCollection
			if last {
				kind = TypeAction
			}
			node := parent.child(segment, kind)
			if node == nil {
				node = &Node{
					Name:   segment,
					Path:   strings.Join(segments[:i+1], action.Separator),
					Type:   kind,
					Parent: parent,
				}
				parent.Children = append(parent.Children, node)
				if last {
					actions++
				} else {
					collections++
				}
			}
			if last {
				node.Command = d
				node.Priority = d.Priority
				applyState(node, src.State(path))
			}
			parent = node
		}
	}
	root.settle()
	events.Tree.Build(actions, collections)
	return root
}

func applyState(n *Node, st action.State) {
	n.ShowCheckmark = st.ShowCheckmark()
	n.Checked = st.IsChecked()
}

// Find returns the node at path, preferring collections. The empty path is
// the root.
func (t *Tree) Find(path string) *Node {
	t.ensureBuilt()
	if path == "" {
		return t.root
	}
	node := t.root
	for _, segment := range action.SplitPath(path) {
		next := node.child(segment, TypeCollection)
		if next == nil {
			next = node.child(segment, TypeAction)
		}
		if next == nil {
			return nil
		}
		node = next
	}
	return node
}

// CurrentPath names the shown collection; the root is reported as "Root".
func (t *Tree) CurrentPath() string {
	t.ensureBuilt()
	if t.current.Path == "" {
		return rootLabel
	}
	return t.current.Path
}

// ExecuteAction runs the node's command. On success every command's state is
// recomputed, since one action can change how others are displayed.
func (t *Tree) ExecuteAction(n *Node) error {
	if n == nil || n.Type != TypeAction || n.Command == nil {
		return ErrNotAction
	}
	if err := t.source.Execute(n.Command.Path); err != nil {
		return err
	}
	t.RefreshStates()
	return nil
}

// RefreshStates recomputes command state and updates the checkmarks of every
// action node without rebuilding the hierarchy.
func (t *Tree) RefreshStates() {
	t.source.RefreshStates()
	if t.root == nil {
		return
	}
	t.refreshCheckmarks(t.root)
	if t.search != nil {
		t.refreshCheckmarks(t.search)
	}
}

func (t *Tree) refreshCheckmarks(from *Node) {
	from.walk(func(n *Node) {
		if n.Type == TypeAction && n.Command != nil {
			applyState(n, t.source.State(n.Command.Path))
		}
	})
}
