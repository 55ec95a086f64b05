package battle

// Event is a named notification with a plain-data payload. The presentation
// layer subscribes by name; nothing behavioral crosses this boundary.
type Event struct {
	Name    string
	Payload map[string]any
}

// Event names emitted by the manager.
const (
	EventBattleStart    = "battle.start"
	EventBattleEnd      = "battle.end"
	EventDamageDealt    = "damage.dealt"
	EventFainted        = "critter.fainted"
	EventSwitched       = "critter.switched"
	EventStatusApplied  = "status.applied"
	EventExpGained      = "exp.gained"
	EventCaptureSuccess = "capture.success"
	EventCaptureFailed  = "capture.failed"
	EventFleeSuccess    = "flee.success"
	EventFleeFailed     = "flee.failed"
	EventMoveLearnable  = "move.learnable"
	EventEvolutionReady = "evolution.available"
)

// Subscribe registers a handler for one event name. Handlers run
// synchronously on the battle goroutine, in registration order.
func (m *Manager) Subscribe(name string, fn func(Event)) {
	if fn == nil {
		return
	}
	m.subs[name] = append(m.subs[name], fn)
}

func (m *Manager) emit(name string, payload map[string]any) {
	for _, fn := range m.subs[name] {
		fn(Event{Name: name, Payload: payload})
	}
}
