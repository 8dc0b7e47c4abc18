package hallway

import (
	"fmt"
	"time"

	"github.com/zeu5/hallway-pomdp/types"
	"golang.org/x/exp/rand"
)

// StepMode selects how Step advances the hidden state. Both modes are
// equivalent in distribution.
type StepMode int

const (
	// StepResample draws the success/failure of the intended action and
	// resolves the executed action deterministically, mirroring the
	// kernel's construction
	StepResample StepMode = iota
	// StepSampleKernel samples the next state directly from the
	// precomputed kernel row
	StepSampleKernel
)

// Config holds the construction parameters of a simulator
type Config struct {
	// PSuccess in (0, 1]: probability that a non-Stay action executes as
	// intended
	PSuccess float64
	// PWallTrue in [0, 1]: probability of perceiving a wall that is there
	PWallTrue float64
	// PWallFalse in [0, 1]: probability of perceiving a wall that is not
	PWallFalse float64
	// MaxSteps caps the episode length
	MaxSteps int
	Mode     StepMode
	// Seed for the simulator's own random source; ignored if Rand is set
	Seed uint64
	// Rand overrides the seeded source, for sharing or replaying streams
	Rand *rand.Rand
}

// DefaultConfig carries the reference parameters of the hallway domains
func DefaultConfig() Config {
	return Config{
		PSuccess:   0.8,
		PWallTrue:  0.9,
		PWallFalse: 0.05,
		MaxSteps:   100,
		Mode:       StepResample,
		Seed:       uint64(time.Now().UnixNano()),
	}
}

// Env is an episode simulator over a hallway topology. The topology,
// resolver, kernel and observation model are built once and immutable;
// the only mutable fields are the current state and step counter, owned
// by a single logical thread of control. Each Env owns its own random
// source, so independently seeded instances are reproducible.
type Env struct {
	topo     *Topology
	resolver *Resolver
	kernel   *TransitionKernel
	obsModel *ObservationModel
	cfg      Config
	rng      *rand.Rand
	rewards  []float64

	state   int
	steps   int
	started bool
	done    bool
}

var _ types.Environment = &Env{}

// NewEnv builds the full model stack for the map and a simulator over it
func NewEnv(data MapData, cfg Config) (*Env, error) {
	topo, err := NewTopology(data)
	if err != nil {
		return nil, err
	}
	return NewEnvWithTopology(topo, cfg)
}

// NewEnvWithTopology builds a simulator over an already-built topology
func NewEnvWithTopology(topo *Topology, cfg Config) (*Env, error) {
	if cfg.MaxSteps <= 0 {
		return nil, fmt.Errorf("maxSteps must be positive, got %d", cfg.MaxSteps)
	}
	resolver := NewResolver(topo)
	kernel, err := NewTransitionKernel(resolver, cfg.PSuccess)
	if err != nil {
		return nil, err
	}
	obsModel, err := NewObservationModel(topo, cfg.PWallTrue, cfg.PWallFalse)
	if err != nil {
		return nil, err
	}

	// reward depends only on the arrival state: 1 on terminal, else 0
	rewards := make([]float64, topo.NumStates())
	for _, t := range topo.TerminalStates() {
		rewards[t] = 1
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}
	return &Env{
		topo:     topo,
		resolver: resolver,
		kernel:   kernel,
		obsModel: obsModel,
		cfg:      cfg,
		rng:      rng,
		rewards:  rewards,
		state:    -1,
	}, nil
}

// Reset starts a new episode: the state is sampled uniformly from the
// non-terminal states, the step counter is zeroed, and a noisy
// observation of the initial state is returned.
func (e *Env) Reset() (types.Observation, error) {
	nonTerminal := e.topo.nonTerminal
	e.state = nonTerminal[e.rng.Intn(len(nonTerminal))]
	e.steps = 0
	e.started = true
	e.done = false
	return e.obsModel.Sample(e.state, e.rng)
}

// Step executes the action under the actuation noise model and returns
// the observation of, and reward for, the arrival state. A non-Stay
// action succeeds iff the draw is strictly below PSuccess; on failure
// one of the four other actions executes instead, uniformly. Stay is
// deterministic. Calling Step before the first Reset, or after the
// episode is done, returns ErrEpisodeNotReset.
func (e *Env) Step(action types.Action) (*types.StepResult, error) {
	a, ok := action.(Action)
	if !ok || !a.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAction, action)
	}
	if !e.started || e.done {
		return nil, ErrEpisodeNotReset
	}

	if a != ActionStay {
		next, err := e.advance(a)
		if err != nil {
			return nil, err
		}
		e.state = next
	}
	e.steps++
	e.done = e.topo.IsTerminal(e.state) || e.steps == e.cfg.MaxSteps-1

	obs, err := e.obsModel.Sample(e.state, e.rng)
	if err != nil {
		return nil, err
	}
	return &types.StepResult{
		Observation: obs,
		Reward:      e.rewards[e.state],
		Done:        e.done,
		Info:        map[string]interface{}{},
	}, nil
}

// advance draws the next hidden state for a non-Stay action
func (e *Env) advance(a Action) (int, error) {
	if e.cfg.Mode == StepSampleKernel {
		return e.kernel.Sample(a, e.state, e.rng)
	}
	executed := a
	if e.rng.Float64() >= e.cfg.PSuccess {
		// uniformly one of the other four actions, Stay included
		i := e.rng.Intn(NumActions - 1)
		executed = Action(i)
		if executed >= a {
			executed++
		}
	}
	return e.resolver.Resolve(e.state, executed)
}

// Actions lists the five actions of the domain
func (e *Env) Actions() []types.Action {
	actions := make([]types.Action, 0, NumActions)
	for _, a := range AllActions() {
		actions = append(actions, a)
	}
	return actions
}

// State is the current hidden state id; -1 before the first Reset
func (e *Env) State() int { return e.state }

// Steps taken in the current episode
func (e *Env) Steps() int { return e.steps }

// Done reports whether the current episode has ended
func (e *Env) Done() bool { return e.done }

// Reward for arriving in the given state
func (e *Env) Reward(state int) float64 { return e.rewards[state] }

// NumStates of the underlying topology
func (e *Env) NumStates() int { return e.topo.NumStates() }

// NumActions of the domain
func (e *Env) NumActions() int { return NumActions }

// NumObservations of the underlying topology
func (e *Env) NumObservations() int { return e.topo.NumObservations() }

// Topology the simulator runs on
func (e *Env) Topology() *Topology { return e.topo }

// Resolver of the simulator
func (e *Env) Resolver() *Resolver { return e.resolver }

// Kernel is the precomputed transition table
func (e *Env) Kernel() *TransitionKernel { return e.kernel }

// ObservationModel of the simulator
func (e *Env) ObservationModel() *ObservationModel { return e.obsModel }
