package landing

import (
	"fmt"

	"github.com/dmitrymomot/landingkit/handler"
)

// Counter operations accepted by POST /counter/{op}.
const (
	OpIncrement = "increment"
	OpDecrement = "decrement"
	OpReset     = "reset"
)

// CounterState is the counter's entire state. It travels in client signals,
// never in server memory; operations return a new value rather than mutating.
// Counts may go negative.
type CounterState struct {
	Count int `json:"count"`
}

// Apply returns the state after op; ok is false for unknown operations.
func (s CounterState) Apply(op string) (CounterState, bool) {
	switch op {
	case OpIncrement:
		return CounterState{Count: s.Count + 1}, true
	case OpDecrement:
		return CounterState{Count: s.Count - 1}, true
	case OpReset:
		return CounterState{}, true
	}
	return s, false
}

// counterRequest combines the operation from the path with the current count
// from client signals.
type counterRequest struct {
	Op    string `path:"op"`
	Count int    `json:"count"`
}

func (s *Service) counter(ctx handler.Context, req counterRequest) handler.Response {
	state, ok := CounterState{Count: req.Count}.Apply(req.Op)
	if !ok {
		return handler.Error(fmt.Errorf("%w: unknown counter operation %q", handler.ErrNotFound, req.Op))
	}
	return handler.Signals(state)
}
