package tree

import "github.com/atomicstack/tmux-quick-actions/internal/logging/events"

// Page is one laid-out screen of a collection.
type Page struct {
	Index   int
	Buttons []*Node
	HasBack bool
	HasNext bool
	// Start and Count locate the page's slice of the collection's children.
	Start int
	Count int
}

// Items returns the buttons that are neither Back nor NextPage.
func (p Page) Items() []*Node {
	start, end := 0, len(p.Buttons)
	if p.HasBack {
		start++
	}
	if p.HasNext {
		end--
	}
	if start > end {
		return nil
	}
	return p.Buttons[start:end]
}

type slots struct {
	back, next   bool
	start, shown int
}

// layout walks pages 0..page forward. The budget of each page depends on
// whether it needs Back and NextPage, so the start of page p cannot be derived
// by division.
func (t *Tree) layout(n *Node, page int) slots {
	total := len(n.Children)
	consumed := 0
	var out slots
	for p := 0; p <= page; p++ {
		back := !(p == 0 && n == t.root)
		available := t.maxPerPage
		if back {
			available--
		}
		remaining := total - consumed
		next := remaining > available
		if next {
			available--
		}
		shown := available
		if remaining < shown {
			shown = remaining
		}
		if shown < 0 {
			shown = 0
		}
		out = slots{back: back, next: next, start: consumed, shown: shown}
		consumed += shown
	}
	return out
}

// Page lays out the current collection at its own page index.
func (t *Tree) Page() Page {
	t.ensureBuilt()
	return t.PageAt(t.current, t.current.PageIndex)
}

// PageAt lays out page index of collection n.
func (t *Tree) PageAt(n *Node, index int) Page {
	t.ensureBuilt()
	if index < 0 {
		index = 0
	}
	s := t.layout(n, index)
	buttons := make([]*Node, 0, s.shown+2)
	if s.back {
		buttons = append(buttons, &Node{Name: "Back", Type: TypeBack, Parent: n})
	}
	for _, child := range n.Children[s.start : s.start+s.shown] {
		if child.Type == TypeAction && child.Command != nil {
			applyState(child, t.source.State(child.Command.Path))
		}
		buttons = append(buttons, child)
	}
	if s.next {
		buttons = append(buttons, &Node{Name: "Next", Type: TypeNextPage, Parent: n})
	}
	events.Tree.Page(n.Path, index, s.start, s.shown)
	return Page{
		Index:   index,
		Buttons: buttons,
		HasBack: s.back,
		HasNext: s.next,
		Start:   s.start,
		Count:   s.shown,
	}
}

// PageCount reports how many pages the current collection spans.
func (t *Tree) PageCount() int {
	t.ensureBuilt()
	count := 1
	for t.layout(t.current, count-1).next {
		count++
	}
	return count
}
