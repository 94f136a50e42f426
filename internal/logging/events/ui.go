package events

import "github.com/atomicstack/hn-tui/internal/logging"

type UITracer struct{}

type NavTracer struct{}

type FetchTracer struct{}

type CommandTracer struct{}

type LinkTracer struct{}

var (
	UI      = UITracer{}
	Nav     = NavTracer{}
	Fetch   = FetchTracer{}
	Command = CommandTracer{}
	Link    = LinkTracer{}
)

func (UITracer) Focus(layer string, index int) {
	logging.Trace("ui.focus", map[string]interface{}{"layer": layer, "index": index})
}

func (UITracer) Enter(layer string, itemID int, title string) {
	logging.Trace("ui.enter", map[string]interface{}{"layer": layer, "item": itemID, "title": title})
}

func (UITracer) Key(layer, key string, handled bool) {
	logging.Trace("ui.key", map[string]interface{}{"layer": layer, "key": key, "handled": handled})
}

func (NavTracer) Push(id int, title string, transparent bool) {
	logging.Trace("nav.push", map[string]interface{}{"layer": id, "title": title, "transparent": transparent})
}

func (NavTracer) Pop(id int, title string) {
	logging.Trace("nav.pop", map[string]interface{}{"layer": id, "title": title})
}

func (NavTracer) ReplaceTop(oldID, newID int, title string) {
	logging.Trace("nav.replace-top", map[string]interface{}{"old": oldID, "new": newID, "title": title})
}

func (NavTracer) Replace(id int, title string) {
	logging.Trace("nav.replace", map[string]interface{}{"layer": id, "title": title})
}

func (FetchTracer) Start(op string, layer int, target string) {
	logging.Trace("fetch.start", map[string]interface{}{"op": op, "layer": layer, "target": target})
}

func (FetchTracer) Done(op string, layer int, count int) {
	logging.Trace("fetch.done", map[string]interface{}{"op": op, "layer": layer, "count": count})
}

func (FetchTracer) Error(op string, layer int, err error) {
	if err == nil {
		return
	}
	logging.Trace("fetch.error", map[string]interface{}{"op": op, "layer": layer, "error": err.Error()})
}

func (FetchTracer) Stale(op string, layer int) {
	logging.Trace("fetch.stale", map[string]interface{}{"op": op, "layer": layer})
}

func (CommandTracer) RawPush(layer, buffer string) {
	logging.Trace("command.raw.push", map[string]interface{}{"layer": layer, "buffer": buffer})
}

func (CommandTracer) RawClear(layer string) {
	logging.Trace("command.raw.clear", map[string]interface{}{"layer": layer})
}

func (CommandTracer) Goto(layer string, target int, applied bool) {
	logging.Trace("command.goto", map[string]interface{}{"layer": layer, "target": target, "applied": applied})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}

func (LinkTracer) Open(url string) {
	logging.Trace("link.open", map[string]interface{}{"url": url})
}

func (LinkTracer) OpenError(url string, err error) {
	logging.Trace("link.open.error", map[string]interface{}{"url": url, "error": err.Error()})
}

func (LinkTracer) Copy(url string) {
	logging.Trace("link.copy", map[string]interface{}{"url": url})
}
