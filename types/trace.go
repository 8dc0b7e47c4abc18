package types

// TraceStep is one (action, observation, reward, done) tuple of an episode
type TraceStep struct {
	Action      Action
	Observation Observation
	Reward      float64
	Done        bool
}

// Trace of an episode: the initial observation followed by the steps taken
type Trace struct {
	initial Observation
	steps   []TraceStep
}

func NewTrace(initial Observation) *Trace {
	return &Trace{
		initial: initial,
		steps:   make([]TraceStep, 0),
	}
}

func (t *Trace) Initial() Observation {
	return t.initial
}

func (t *Trace) Append(action Action, obs Observation, reward float64, done bool) {
	t.steps = append(t.steps, TraceStep{
		Action:      action,
		Observation: obs,
		Reward:      reward,
		Done:        done,
	})
}

func (t *Trace) Len() int {
	return len(t.steps)
}

func (t *Trace) Get(i int) (TraceStep, bool) {
	if i >= len(t.steps) {
		return TraceStep{}, false
	}
	return t.steps[i], true
}

func (t *Trace) Last() (TraceStep, bool) {
	if len(t.steps) < 1 {
		return TraceStep{}, false
	}
	return t.steps[len(t.steps)-1], true
}

// TotalReward accumulated over the episode
func (t *Trace) TotalReward() float64 {
	total := 0.0
	for _, s := range t.steps {
		total += s.Reward
	}
	return total
}
