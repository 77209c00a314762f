package events

import "github.com/atomicstack/tmux-quick-actions/internal/logging"

type RegistryTracer struct{}

var Registry = RegistryTracer{}

func (RegistryTracer) Register(path, kind string, priority int) {
	logging.Trace("registry.register", map[string]interface{}{"path": path, "kind": kind, "priority": priority})
}

func (RegistryTracer) Reject(path string, err error) {
	logging.Errorf("rejected quick action %q: %v", path, err)
	logging.Trace("registry.reject", map[string]interface{}{"path": path, "error": err.Error()})
}

func (RegistryTracer) ValidatorFailed(path string, reason interface{}) {
	logging.Errorf("validator for %q failed: %v", path, reason)
	logging.Trace("registry.validator-failed", map[string]interface{}{"path": path, "reason": reason})
}

func (RegistryTracer) ActionFailed(path string, err error) {
	logging.Errorf("quick action %q failed: %v", path, err)
	logging.Trace("registry.action-failed", map[string]interface{}{"path": path, "error": err.Error()})
}

func (RegistryTracer) Executed(path string) {
	logging.Trace("registry.executed", map[string]interface{}{"path": path})
}

func (RegistryTracer) Recompute(total, enabled int) {
	logging.Trace("registry.recompute", map[string]interface{}{"total": total, "enabled": enabled})
}

func (RegistryTracer) ClearDynamic(removed int) {
	logging.Trace("registry.clear-dynamic", map[string]interface{}{"removed": removed})
}

func (RegistryTracer) HookFailed(index int, reason interface{}) {
	logging.Errorf("before-open hook %d failed: %v", index, reason)
	logging.Trace("registry.hook-failed", map[string]interface{}{"hook": index, "reason": reason})
}
