package types

// Environment is the reset/step boundary of a partially observable
// environment. Policies only ever see observations, never the true state.
type Environment interface {
	// Reset starts a new episode and returns the initial observation
	Reset() (Observation, error)
	// Step executes an action and advances the episode
	Step(Action) (*StepResult, error)
	// Actions possible in the environment
	Actions() []Action
}

// Observation emitted by the environment
type Observation interface {
	// Indexed by the Hash
	// Should be deterministic
	Hash() string
}

// An Action that a policy can take
type Action interface {
	// Index of the action
	// Should be deterministic
	Hash() string
}

// StepResult is the outcome of a single environment step
type StepResult struct {
	Observation Observation
	Reward      float64
	Done        bool
	Info        map[string]interface{}
}
