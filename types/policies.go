package types

import (
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"
)

type Policy interface {
	UpdateIteration(int, *Trace)
	NextAction(int, Observation, []Action) (Action, bool)
	Update(int, Observation, Action, *StepResult)
	Reset()
}

// SoftMaxPolicy is a tabular Q-learning policy over observation hashes.
// The environment is partially observable, so the table is keyed by the
// last observation rather than the hidden state.
type SoftMaxPolicy struct {
	QTable map[string]map[string]float64
	alpha  float64
	gamma  float64
	rand   *rand.Rand
}

func NewSoftMaxPolicy(alpha, gamma float64, seed uint64) *SoftMaxPolicy {
	return &SoftMaxPolicy{
		QTable: make(map[string]map[string]float64),
		alpha:  alpha,
		gamma:  gamma,
		rand:   rand.New(rand.NewSource(seed)),
	}
}

var _ Policy = &SoftMaxPolicy{}

func (s *SoftMaxPolicy) Reset() {
	s.QTable = make(map[string]map[string]float64)
}

func (s *SoftMaxPolicy) UpdateIteration(_ int, _ *Trace) {

}

func (s *SoftMaxPolicy) NextAction(step int, obs Observation, actions []Action) (Action, bool) {
	obsHash := obs.Hash()

	if _, ok := s.QTable[obsHash]; !ok {
		s.QTable[obsHash] = make(map[string]float64)
	}

	for _, a := range actions {
		aName := a.Hash()
		if _, ok := s.QTable[obsHash][aName]; !ok {
			s.QTable[obsHash][aName] = 0
		}
	}

	sum := float64(0)
	weights := make([]float64, len(actions))
	vals := make([]float64, len(actions))

	for i, action := range actions {
		val := s.QTable[obsHash][action.Hash()]
		exp := math.Exp(val)
		vals[i] = exp
		sum += exp
	}

	for i, v := range vals {
		weights[i] = v / sum
	}
	i, ok := sampleuv.NewWeighted(weights, s.rand).Take()
	if !ok {
		return nil, false
	}
	return actions[i], true
}

func (s *SoftMaxPolicy) Update(step int, obs Observation, action Action, result *StepResult) {
	obsHash := obs.Hash()
	nextObsHash := result.Observation.Hash()
	actionKey := action.Hash()
	if _, ok := s.QTable[obsHash]; !ok {
		return
	}
	if _, ok := s.QTable[obsHash][actionKey]; !ok {
		return
	}
	curVal := s.QTable[obsHash][actionKey]
	max := float64(0)
	if _, ok := s.QTable[nextObsHash]; ok {
		for _, val := range s.QTable[nextObsHash] {
			if val > max {
				max = val
			}
		}
	}
	nextVal := (1-s.alpha)*curVal + s.alpha*(result.Reward+s.gamma*max)
	s.QTable[obsHash][actionKey] = nextVal
}

type RandomPolicy struct {
	rand *rand.Rand
}

var _ Policy = &RandomPolicy{}

func NewRandomPolicy() *RandomPolicy {
	return NewRandomPolicySeeded(uint64(time.Now().UnixNano()))
}

func NewRandomPolicySeeded(seed uint64) *RandomPolicy {
	return &RandomPolicy{
		rand: rand.New(rand.NewSource(seed)),
	}
}

func (r *RandomPolicy) Reset() {

}

func (r *RandomPolicy) UpdateIteration(_ int, _ *Trace) {

}

func (r *RandomPolicy) NextAction(step int, obs Observation, actions []Action) (Action, bool) {
	i := r.rand.Intn(len(actions))
	return actions[i], true
}

func (r *RandomPolicy) Update(_ int, _ Observation, _ Action, _ *StepResult) {}
