package editor

// Lifecycle event names.
const (
	// EventReady fires exactly once, after initial data is loaded and
	// before Create returns.
	EventReady = "ready"
	// EventDestroy fires at the start of the base teardown, before
	// listeners are cleared.
	EventDestroy = "destroy"
)

type handler struct {
	fn   func()
	once bool
}

// emitter is a minimal synchronous event bus. Handlers run in registration
// order on the firing goroutine.
type emitter struct {
	handlers map[string][]handler
}

// On registers a handler for the named event. Plugins typically call this
// during Init, before ready fires.
func (em *emitter) On(name string, fn func()) { em.add(name, fn, false) }

// Once registers a handler that is deregistered after its first run.
func (em *emitter) Once(name string, fn func()) { em.add(name, fn, true) }

func (em *emitter) add(name string, fn func(), once bool) {
	if fn == nil {
		return
	}
	if em.handlers == nil {
		em.handlers = make(map[string][]handler)
	}
	em.handlers[name] = append(em.handlers[name], handler{fn: fn, once: once})
}

// Fire invokes all handlers registered for the named event. One-shot
// handlers are deregistered before their callback runs, so refiring from
// inside a handler cannot run it twice.
func (em *emitter) Fire(name string) {
	hs := em.handlers[name]
	if len(hs) == 0 {
		return
	}

	run := make([]handler, len(hs))
	copy(run, hs)

	kept := hs[:0]
	for _, h := range hs {
		if !h.once {
			kept = append(kept, h)
		}
	}
	em.handlers[name] = kept

	for _, h := range run {
		h.fn()
	}
}

// stopListening drops all handlers.
func (em *emitter) stopListening() {
	em.handlers = nil
}
