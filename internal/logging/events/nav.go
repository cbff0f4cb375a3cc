package events

import "github.com/atomicstack/wallpicker/internal/logging"

// NavTracer records directory navigation.
type NavTracer struct{}

var Nav = NavTracer{}

func (NavTracer) Cursor(path string, selected int) {
	logging.Trace("nav.cursor", map[string]interface{}{"path": path, "selected": selected})
}

func (NavTracer) Unselect(path string) {
	logging.Trace("nav.unselect", map[string]interface{}{"path": path})
}

func (NavTracer) Descend(from, to string, entries int) {
	logging.Trace("nav.descend", map[string]interface{}{"from": from, "to": to, "entries": entries})
}

func (NavTracer) Ascend(from, to string, entries int) {
	logging.Trace("nav.ascend", map[string]interface{}{"from": from, "to": to, "entries": entries})
}

func (NavTracer) ScanError(path string, err error) {
	if err == nil {
		return
	}
	logging.Trace("nav.scan.error", map[string]interface{}{"path": path, "error": err.Error()})
}
