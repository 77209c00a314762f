package events

import "github.com/atomicstack/tmux-quick-actions/internal/logging"

type TreeTracer struct{}

type SelectionTracer struct{}

type BackendTracer struct{}

var (
	Tree      = TreeTracer{}
	Selection = SelectionTracer{}
	Backend   = BackendTracer{}
)

func (TreeTracer) Build(actions, collections int) {
	logging.Trace("tree.build", map[string]interface{}{"actions": actions, "collections": collections})
}

func (TreeTracer) Navigate(from, to string, page int) {
	logging.Trace("tree.navigate", map[string]interface{}{"from": from, "to": to, "page": page})
}

func (TreeTracer) Page(path string, page, start, shown int) {
	logging.Trace("tree.page", map[string]interface{}{"path": path, "page": page, "start": start, "shown": shown})
}

func (SelectionTracer) Area(area string) {
	logging.Trace("selection.area", map[string]interface{}{"area": area})
}

func (SelectionTracer) Highlight(area string, index int) {
	logging.Trace("selection.highlight", map[string]interface{}{"area": area, "index": index})
}

func (BackendTracer) Snapshot(err error) {
	if err == nil {
		logging.Trace("backend.snapshot", nil)
		return
	}
	logging.Error(err)
	logging.Trace("backend.snapshot", map[string]interface{}{"error": err.Error()})
}
