package tree

import "github.com/atomicstack/tmux-quick-actions/internal/logging/events"

// IsAtRoot reports whether the root collection is shown.
func (t *Tree) IsAtRoot() bool {
	t.ensureBuilt()
	return t.current == t.root
}

// PageIndex returns the current collection's page index.
func (t *Tree) PageIndex() int {
	t.ensureBuilt()
	return t.current.PageIndex
}

// SetPageIndex moves the current collection to index, clamped at zero.
func (t *Tree) SetPageIndex(index int) {
	t.ensureBuilt()
	if index < 0 {
		index = 0
	}
	t.current.PageIndex = index
}

// NavigateInto makes collection n current. Its page index is kept from the
// previous visit.
func (t *Tree) NavigateInto(n *Node) bool {
	t.ensureBuilt()
	if n == nil || n.Type != TypeCollection {
		return false
	}
	t.moveTo(n)
	return true
}

// NavigateToPath makes the collection at path current.
func (t *Tree) NavigateToPath(path string) bool {
	n := t.Find(path)
	if n == nil {
		return false
	}
	return t.NavigateInto(n)
}

// NavigateToRoot shows the root collection.
func (t *Tree) NavigateToRoot() {
	t.ensureBuilt()
	t.moveTo(t.root)
}

// CanNavigateBack mirrors NavigateBack without changing anything.
func (t *Tree) CanNavigateBack() bool {
	t.ensureBuilt()
	return t.current.PageIndex > 0 || t.current.Parent != nil
}

// NavigateBack returns to the first page, or to the parent when already
// there. It is a no-op on the first page of the root.
func (t *Tree) NavigateBack() bool {
	t.ensureBuilt()
	if t.current.PageIndex > 0 {
		t.current.PageIndex = 0
		events.Tree.Navigate(t.current.Path, t.current.Path, 0)
		return true
	}
	if t.current.Parent == nil {
		return false
	}
	t.moveTo(t.current.Parent)
	return true
}

// CanGoNextPage reports whether the current page shows a NextPage button.
func (t *Tree) CanGoNextPage() bool {
	t.ensureBuilt()
	return t.layout(t.current, t.current.PageIndex).next
}

// NextPage advances the current collection by one page.
func (t *Tree) NextPage() bool {
	if !t.CanGoNextPage() {
		return false
	}
	t.current.PageIndex++
	events.Tree.Navigate(t.current.Path, t.current.Path, t.current.PageIndex)
	return true
}

// PreviousPage steps the current collection back by one page.
func (t *Tree) PreviousPage() bool {
	t.ensureBuilt()
	if t.current.PageIndex == 0 {
		return false
	}
	t.current.PageIndex--
	events.Tree.Navigate(t.current.Path, t.current.Path, t.current.PageIndex)
	return true
}

func (t *Tree) moveTo(n *Node) {
	from := t.current.Path
	t.current = n
	events.Tree.Navigate(from, n.Path, n.PageIndex)
}
