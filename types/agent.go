package types

type AgentConfig struct {
	Episodes    int
	Horizon     int
	Policy      Policy
	Environment Environment
	// OnStep, if set, is invoked after every environment step with the
	// environment and the step result. Used by monitors and analyzers
	// that read the environment's public state.
	OnStep func(Environment, *StepResult)
}

// Agent configured with the corresponding policy and environment
type Agent struct {
	config *AgentConfig
	// collects the traces of the run
	// Only populated if the Run function is invoked
	traces      []*Trace
	policy      Policy
	environment Environment
}

// Instantiates a new Agent
func NewAgent(config *AgentConfig) *Agent {
	return &Agent{
		config:      config,
		traces:      make([]*Trace, config.Episodes),
		policy:      config.Policy,
		environment: config.Environment,
	}
}

// Run the agent for the specified number of episodes and horizon
func (a *Agent) Run() error {
	for i := 0; i < a.config.Episodes; i++ {
		trace, err := a.runEpisode(i)
		if err != nil {
			return err
		}
		a.traces[i] = trace
	}
	return nil
}

// Traces of the completed episodes
func (a *Agent) Traces() []*Trace {
	return a.traces
}

// run a single episode and return the resulting trace
func (a *Agent) runEpisode(episode int) (*Trace, error) {
	obs, err := a.environment.Reset()
	if err != nil {
		return nil, err
	}
	trace := NewTrace(obs)
	actions := a.environment.Actions()

	for i := 0; i < a.config.Horizon; i++ {
		nextAction, ok := a.policy.NextAction(i, obs, actions)
		if !ok {
			break
		}
		result, err := a.environment.Step(nextAction)
		if err != nil {
			return nil, err
		}
		a.policy.Update(i, obs, nextAction, result)
		if a.config.OnStep != nil {
			a.config.OnStep(a.environment, result)
		}

		trace.Append(nextAction, result.Observation, result.Reward, result.Done)
		obs = result.Observation
		if result.Done {
			break
		}
	}
	a.policy.UpdateIteration(episode, trace)

	return trace, nil
}
