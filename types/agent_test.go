package types

import (
	"strconv"
	"testing"
)

type testObs int

func (o testObs) Hash() string { return strconv.Itoa(int(o)) }

type testAction string

func (a testAction) Hash() string { return string(a) }

// corridorEnv is a fully observable corridor of fixed length: "advance"
// moves one cell towards the end, "stay" does nothing, reaching the end
// pays 1 and ends the episode
type corridorEnv struct {
	length int
	pos    int
	resets int
}

var _ Environment = &corridorEnv{}

func (e *corridorEnv) Reset() (Observation, error) {
	e.pos = 0
	e.resets++
	return testObs(0), nil
}

func (e *corridorEnv) Step(a Action) (*StepResult, error) {
	if a.Hash() == "advance" {
		e.pos++
	}
	done := e.pos == e.length
	reward := 0.0
	if done {
		reward = 1
	}
	return &StepResult{
		Observation: testObs(e.pos),
		Reward:      reward,
		Done:        done,
		Info:        map[string]interface{}{},
	}, nil
}

func (e *corridorEnv) Actions() []Action {
	return []Action{testAction("stay"), testAction("advance")}
}

// alwaysAdvance is a fixed policy that picks the advancing action
type alwaysAdvance struct{}

var _ Policy = alwaysAdvance{}

func (alwaysAdvance) UpdateIteration(int, *Trace) {}
func (alwaysAdvance) NextAction(_ int, _ Observation, actions []Action) (Action, bool) {
	return actions[1], true
}
func (alwaysAdvance) Update(int, Observation, Action, *StepResult) {}
func (alwaysAdvance) Reset()                                       {}

type alwaysStay struct{}

var _ Policy = alwaysStay{}

func (alwaysStay) UpdateIteration(int, *Trace) {}
func (alwaysStay) NextAction(_ int, _ Observation, actions []Action) (Action, bool) {
	return actions[0], true
}
func (alwaysStay) Update(int, Observation, Action, *StepResult) {}
func (alwaysStay) Reset()                                       {}

func TestAgentStopsOnDone(t *testing.T) {
	env := &corridorEnv{length: 3}
	agent := NewAgent(&AgentConfig{
		Episodes:    2,
		Horizon:     10,
		Policy:      alwaysAdvance{},
		Environment: env,
	})
	if err := agent.Run(); err != nil {
		t.Fatal(err)
	}
	traces := agent.Traces()
	if len(traces) != 2 {
		t.Fatalf("expected 2 traces, got %d", len(traces))
	}
	if env.resets != 2 {
		t.Errorf("environment reset %d times, want 2", env.resets)
	}
	for i, trace := range traces {
		if trace.Len() != 3 {
			t.Errorf("trace %d length %d, want 3", i, trace.Len())
		}
		if trace.TotalReward() != 1 {
			t.Errorf("trace %d total reward %v, want 1", i, trace.TotalReward())
		}
		last, ok := trace.Last()
		if !ok || !last.Done {
			t.Errorf("trace %d does not end done", i)
		}
	}
}

func TestAgentHonorsHorizon(t *testing.T) {
	agent := NewAgent(&AgentConfig{
		Episodes:    1,
		Horizon:     7,
		Policy:      alwaysStay{},
		Environment: &corridorEnv{length: 3},
	})
	if err := agent.Run(); err != nil {
		t.Fatal(err)
	}
	trace := agent.Traces()[0]
	if trace.Len() != 7 {
		t.Errorf("trace length %d, want the horizon 7", trace.Len())
	}
	if trace.TotalReward() != 0 {
		t.Errorf("total reward %v, want 0", trace.TotalReward())
	}
}

func TestAgentOnStepHook(t *testing.T) {
	calls := 0
	agent := NewAgent(&AgentConfig{
		Episodes:    2,
		Horizon:     10,
		Policy:      alwaysAdvance{},
		Environment: &corridorEnv{length: 3},
		OnStep: func(env Environment, result *StepResult) {
			calls++
			if result == nil {
				t.Fatal("hook called with nil result")
			}
		},
	})
	if err := agent.Run(); err != nil {
		t.Fatal(err)
	}
	if calls != 6 {
		t.Errorf("hook called %d times, want 6", calls)
	}
}

func TestAgentWithRandomPolicy(t *testing.T) {
	agent := NewAgent(&AgentConfig{
		Episodes:    5,
		Horizon:     20,
		Policy:      NewRandomPolicySeeded(3),
		Environment: &corridorEnv{length: 3},
	})
	if err := agent.Run(); err != nil {
		t.Fatal(err)
	}
	for i, trace := range agent.Traces() {
		if trace.Len() > 20 {
			t.Errorf("trace %d overran the horizon: %d steps", i, trace.Len())
		}
	}
}
