package tree

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/atomicstack/tmux-quick-actions/internal/logging/events"
)

const searchLabel = "Search"

// Search collects every action whose path fuzzily matches query into a
// synthetic collection under the root and makes it current. The results are
// ordered by match distance and paginate like any other collection.
func (t *Tree) Search(query string) *Node {
	t.ensureBuilt()
	var actions []*Node
	t.root.walk(func(n *Node) {
		if n.Type == TypeAction {
			actions = append(actions, n)
		}
	})
	paths := make([]string, len(actions))
	for i, n := range actions {
		paths[i] = n.Path
	}

	results := &Node{Name: searchLabel, Path: searchLabel, Type: TypeCollection, Parent: t.root}
	trimmed := strings.TrimSpace(query)
	var order []int
	if trimmed == "" {
		for i := range actions {
			order = append(order, i)
		}
	} else {
		ranks := fuzzy.RankFindNormalizedFold(trimmed, paths)
		sort.SliceStable(ranks, func(i, j int) bool {
			if ranks[i].Distance != ranks[j].Distance {
				return ranks[i].Distance < ranks[j].Distance
			}
			return ranks[i].OriginalIndex < ranks[j].OriginalIndex
		})
		for _, rank := range ranks {
			order = append(order, rank.OriginalIndex)
		}
	}
	for _, idx := range order {
		match := actions[idx]
		results.Children = append(results.Children, &Node{
			Name:          match.Path,
			Path:          match.Path,
			Type:          TypeAction,
			Command:       match.Command,
			Parent:        results,
			Priority:      match.Priority,
			ShowCheckmark: match.ShowCheckmark,
			Checked:       match.Checked,
		})
	}
	events.Search.Query(trimmed, len(results.Children))

	t.search = results
	t.moveTo(results)
	return results
}

// InSearch reports whether search results are shown.
func (t *Tree) InSearch() bool {
	return t.search != nil && t.current == t.search
}

// EndSearch drops the results collection and returns to the root.
func (t *Tree) EndSearch() {
	if t.search == nil {
		return
	}
	t.search = nil
	t.NavigateToRoot()
}
