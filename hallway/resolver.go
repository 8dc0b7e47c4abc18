package hallway

import "fmt"

// Resolver is the deterministic action-resolution function over a
// topology. It is pure: the same (state, action) pair always resolves to
// the same next state.
type Resolver struct {
	topo *Topology
}

func NewResolver(topo *Topology) *Resolver {
	return &Resolver{topo: topo}
}

// Resolve maps (state, action) to the deterministic next state. Stay is
// the identity, Forward follows the baked forward table, turns cycle the
// orientation within the cell. The terminal state absorbs every action.
// An action outside the defined set or a state outside [0, N) is a
// contract violation and reported as an error, never defaulted.
func (r *Resolver) Resolve(state int, action Action) (int, error) {
	if state < 0 || state >= r.topo.NumStates() {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidState, state, r.topo.NumStates())
	}
	switch action {
	case ActionStay:
		return state, nil
	case ActionForward:
		return r.topo.Forward(state), nil
	case ActionTurnRight, ActionTurnLeft, ActionTurnAround:
		return r.topo.Turn(state, action), nil
	}
	return 0, fmt.Errorf("%w: %d", ErrInvalidAction, int(action))
}

// Topology the resolver operates on
func (r *Resolver) Topology() *Topology {
	return r.topo
}
