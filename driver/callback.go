package driver

// Callback receives the ordered list of terminal tokens covered by a
// reduced rule's RHS (spec.md §6.3). Handlers observe whatever mutable
// state they close over; the runtime imposes no constraint beyond
// same-thread execution.
type Callback func(tokens []Token)

// CallbackRegistry maps a rule's callback identifier to its handler.
// Grounded on the teacher's driver/semantic_action.go ActionTable, which
// keyed handlers by the same kind of string identifier.
type CallbackRegistry struct {
	handlers map[string]Callback
}

// NewCallbackRegistry creates an empty registry.
func NewCallbackRegistry() *CallbackRegistry {
	return &CallbackRegistry{handlers: map[string]Callback{}}
}

// Register binds name to fn, replacing any prior binding.
func (r *CallbackRegistry) Register(name string, fn Callback) {
	r.handlers[name] = fn
}

func (r *CallbackRegistry) lookup(name string) (Callback, bool) {
	fn, ok := r.handlers[name]
	return fn, ok
}
