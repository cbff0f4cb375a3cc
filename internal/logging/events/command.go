package events

import "github.com/atomicstack/wallpicker/internal/logging"

type CommandTracer struct{}

var Command = CommandTracer{}

func (CommandTracer) Queue(id, path string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "path": path})
}

func (CommandTracer) Skip(id, path string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "path": path})
}

func (CommandTracer) Result(id, path string, err error) {
	payload := map[string]interface{}{"id": id, "path": path}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("command.result", payload)
}
