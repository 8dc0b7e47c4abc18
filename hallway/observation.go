package hallway

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// ObservationModel is the exact wall-sensing noise model. For ordinary
// states the observation is a 4-bit wall-pattern code where each
// perceived-wall bit is an independent Bernoulli draw: a present wall is
// perceived with probability pWallTrue, an absent wall is falsely
// perceived with probability pWallFalse. Distinguished states always
// emit their fixed out-of-band code. The exact distributions are
// precomputed per state; sampling agrees with them in distribution.
// Immutable after construction.
type ObservationModel struct {
	topo       *Topology
	pWallTrue  float64
	pWallFalse float64
	probs      [][]float64
}

func NewObservationModel(topo *Topology, pWallTrue, pWallFalse float64) (*ObservationModel, error) {
	if pWallTrue < 0 || pWallTrue > 1 {
		return nil, fmt.Errorf("pWallTrue must be in [0, 1], got %v", pWallTrue)
	}
	if pWallFalse < 0 || pWallFalse > 1 {
		return nil, fmt.Errorf("pWallFalse must be in [0, 1], got %v", pWallFalse)
	}
	m := &ObservationModel{
		topo:       topo,
		pWallTrue:  pWallTrue,
		pWallFalse: pWallFalse,
		probs:      make([][]float64, topo.NumStates()),
	}
	for s := 0; s < topo.NumStates(); s++ {
		m.probs[s] = m.computeProbs(s)
	}
	return m, nil
}

// computeProbs enumerates all 16 perception vectors and multiplies the
// per-direction Bernoulli likelihoods
func (m *ObservationModel) computeProbs(state int) []float64 {
	probs := make([]float64, m.topo.NumObservations())
	if code, ok := m.topo.DistinguishedCode(state); ok {
		probs[code] = 1
		return probs
	}
	walls := m.topo.Walls(state)
	for code := 0; code < NumWallPatterns; code++ {
		p := 1.0
		for d := 0; d < NumOrientations; d++ {
			perceived := code&(1<<d) != 0
			pSee := m.pWallFalse
			if walls[d] {
				pSee = m.pWallTrue
			}
			if perceived {
				p *= pSee
			} else {
				p *= 1 - pSee
			}
		}
		probs[code] = p
	}
	return probs
}

// Probs is the exact observation distribution for being in the state.
// The returned slice is the model's own row and must not be modified.
func (m *ObservationModel) Probs(state int) ([]float64, error) {
	if state < 0 || state >= m.topo.NumStates() {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidState, state, m.topo.NumStates())
	}
	return m.probs[state], nil
}

// Sample draws a concrete noisy observation for the true state by
// sampling the four perceived-wall bits independently. Distinguished
// states return their fixed code.
func (m *ObservationModel) Sample(state int, rng *rand.Rand) (Observation, error) {
	if state < 0 || state >= m.topo.NumStates() {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidState, state, m.topo.NumStates())
	}
	if code, ok := m.topo.DistinguishedCode(state); ok {
		return code, nil
	}
	walls := m.topo.Walls(state)
	var perceived [NumOrientations]bool
	for d := 0; d < NumOrientations; d++ {
		pSee := m.pWallFalse
		if walls[d] {
			pSee = m.pWallTrue
		}
		perceived[d] = rng.Float64() < pSee
	}
	return EncodeWalls(perceived), nil
}

// SampleCategorical draws an observation directly from the exact
// distribution instead of bit by bit. Equivalent to Sample in
// distribution; used to cross-check the two capabilities.
func (m *ObservationModel) SampleCategorical(state int, rng *rand.Rand) (Observation, error) {
	probs, err := m.Probs(state)
	if err != nil {
		return 0, err
	}
	o, ok := sampleuv.NewWeighted(probs, rng).Take()
	if !ok {
		return 0, fmt.Errorf("observation distribution for state %d has no mass", state)
	}
	return Observation(o), nil
}

// Table builds the action-conditioned observation table
// O[action][state][obs]: the probability of observing obs immediately
// after taking the action from the (pre-transition) state, i.e. the
// mixture of the per-state distributions weighted by the kernel row.
// Needed by external belief-update consumers, not by the simulator.
func (m *ObservationModel) Table(kernel *TransitionKernel) [][][]float64 {
	n := m.topo.NumStates()
	table := make([][][]float64, NumActions)
	for a := range table {
		table[a] = make([][]float64, n)
		for s := range table[a] {
			row := make([]float64, m.topo.NumObservations())
			kRow, err := kernel.Row(Action(a), s)
			if err != nil {
				// actions and states are enumerated in range
				panic(err)
			}
			for next, pNext := range kRow {
				if pNext == 0 {
					continue
				}
				for o, pObs := range m.probs[next] {
					row[o] += pNext * pObs
				}
			}
			table[a][s] = row
		}
	}
	return table
}
