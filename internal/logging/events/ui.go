package events

import "github.com/atomicstack/tmux-quick-actions/internal/logging"

type UITracer struct{}

type SearchTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Search  = SearchTracer{}
	Command = CommandTracer{}
)

func (UITracer) Open(path string, buttons int) {
	logging.Trace("menu.open", map[string]interface{}{"path": path, "buttons": buttons})
}

func (UITracer) Close(reason string) {
	logging.Trace("menu.close", map[string]interface{}{"reason": reason})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("menu.resize", map[string]interface{}{"width": width, "height": height})
}

func (SearchTracer) Start() {
	logging.Trace("search.start", nil)
}

func (SearchTracer) Query(query string, matches int) {
	logging.Trace("search.query", map[string]interface{}{"query": query, "matches": matches})
}

func (SearchTracer) Cancel() {
	logging.Trace("search.cancel", nil)
}

func (CommandTracer) Queue(gesture string) {
	logging.Trace("command.queue", map[string]interface{}{"gesture": gesture})
}

func (CommandTracer) Result(path string, closeMenu bool, err error) {
	payload := map[string]interface{}{"path": path, "close": closeMenu}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("command.result", payload)
}
