package hallway

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// TransitionKernel is the full stochastic transition table
// P[action][state][nextState]. Rows are probability distributions:
// for every (action, state) the row sums to one. Terminal rows are the
// identity. Immutable after construction and safe to share across
// concurrently running simulators.
type TransitionKernel struct {
	topo     *Topology
	pSuccess float64
	p        [][][]float64
}

// NewTransitionKernel builds the kernel from the resolver and the
// actuation noise model: an intended non-Stay action executes with
// probability pSuccess; otherwise one of the four other actions
// (including Stay) executes instead, chosen uniformly. Stay is never
// perturbed. Probabilities of coinciding resolution targets accumulate.
func NewTransitionKernel(resolver *Resolver, pSuccess float64) (*TransitionKernel, error) {
	if pSuccess <= 0 || pSuccess > 1 {
		return nil, fmt.Errorf("pSuccess must be in (0, 1], got %v", pSuccess)
	}
	topo := resolver.Topology()
	n := topo.NumStates()

	p := make([][][]float64, NumActions)
	for a := range p {
		p[a] = make([][]float64, n)
		for s := range p[a] {
			p[a][s] = make([]float64, n)
		}
	}

	for _, t := range topo.TerminalStates() {
		for a := 0; a < NumActions; a++ {
			p[a][t][t] = 1
		}
	}

	pFail := (1 - pSuccess) / float64(NumActions-1)
	for _, s := range topo.NonTerminalStates() {
		p[ActionStay][s][s] = 1
		for _, a := range AllActions() {
			if a == ActionStay {
				continue
			}
			intended, err := resolver.Resolve(s, a)
			if err != nil {
				return nil, err
			}
			p[a][s][intended] += pSuccess
			for _, other := range AllActions() {
				if other == a {
					continue
				}
				executed, err := resolver.Resolve(s, other)
				if err != nil {
					return nil, err
				}
				p[a][s][executed] += pFail
			}
		}
	}

	return &TransitionKernel{topo: topo, pSuccess: pSuccess, p: p}, nil
}

// PSuccess is the actuation success probability the kernel was built with
func (k *TransitionKernel) PSuccess() float64 {
	return k.pSuccess
}

// Row is the next-state distribution for taking the action in the state.
// The returned slice is the kernel's own row and must not be modified.
func (k *TransitionKernel) Row(action Action, state int) ([]float64, error) {
	if !action.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAction, int(action))
	}
	if state < 0 || state >= k.topo.NumStates() {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidState, state, k.topo.NumStates())
	}
	return k.p[action][state], nil
}

// Sample draws a next state from the row for (action, state)
func (k *TransitionKernel) Sample(action Action, state int, rng *rand.Rand) (int, error) {
	row, err := k.Row(action, state)
	if err != nil {
		return 0, err
	}
	next, ok := sampleuv.NewWeighted(row, rng).Take()
	if !ok {
		return 0, fmt.Errorf("kernel row for action %s state %d has no mass", action, state)
	}
	return next, nil
}
