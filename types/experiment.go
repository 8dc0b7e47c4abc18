package types

import (
	"encoding/json"
	"fmt"
	"path"

	"github.com/zeu5/hallway-pomdp/util"
)

// EpisodeResult summarizes a single completed episode
type EpisodeResult struct {
	Experiment  string  `json:"experiment"`
	Episode     int     `json:"episode"`
	Steps       int     `json:"steps"`
	TotalReward float64 `json:"total_reward"`
	ReachedGoal bool    `json:"reached_goal"`
}

// Reporter receives episode results as they complete
type Reporter interface {
	Report(EpisodeResult) error
}

// Experiment encapsulates a named policy/environment pair
type Experiment struct {
	Name        string
	Policy      Policy
	Environment Environment
	// OnStep is forwarded to the agent
	OnStep func(Environment, *StepResult)
}

// NewExperiment creates a new experiment instance
func NewExperiment(name string, policy Policy, environment Environment) *Experiment {
	return &Experiment{
		Name:        name,
		Policy:      policy,
		Environment: environment,
	}
}

// Summary of an experiment across all its episodes
type Summary struct {
	Experiment   string  `json:"experiment"`
	Episodes     int     `json:"episodes"`
	GoalReached  int     `json:"goal_reached"`
	AverageSteps float64 `json:"average_steps"`
}

// Comparison runs a set of experiments under the same episode and
// horizon budget and records their results
type Comparison struct {
	experiments []*Experiment
	episodes    int
	horizon     int
	savePath    string
	reporters   []Reporter
}

func NewComparison(episodes, horizon int, savePath string) *Comparison {
	return &Comparison{
		experiments: make([]*Experiment, 0),
		episodes:    episodes,
		horizon:     horizon,
		savePath:    savePath,
	}
}

func (c *Comparison) AddExperiment(e *Experiment) {
	c.experiments = append(c.experiments, e)
}

func (c *Comparison) AddReporter(r Reporter) {
	c.reporters = append(c.reporters, r)
}

// Run all the experiments sequentially and write a summary per experiment
func (c *Comparison) Run() error {
	summaries := make([]Summary, 0, len(c.experiments))
	for _, e := range c.experiments {
		fmt.Printf("Running experiment: %s\n", e.Name)
		summary, err := c.runExperiment(e)
		if err != nil {
			return fmt.Errorf("experiment %s: %w", e.Name, err)
		}
		fmt.Printf("%s: reached goal in %d/%d episodes, %.1f steps on average\n",
			e.Name, summary.GoalReached, summary.Episodes, summary.AverageSteps)
		summaries = append(summaries, summary)
	}
	if c.savePath != "" {
		bs, err := json.MarshalIndent(summaries, "", "  ")
		if err != nil {
			return err
		}
		return util.WriteToFile(path.Join(c.savePath, "summary.json"), string(bs))
	}
	return nil
}

func (c *Comparison) runExperiment(e *Experiment) (Summary, error) {
	agent := NewAgent(&AgentConfig{
		Episodes:    c.episodes,
		Horizon:     c.horizon,
		Policy:      e.Policy,
		Environment: e.Environment,
		OnStep:      e.OnStep,
	})
	if err := agent.Run(); err != nil {
		return Summary{}, err
	}

	summary := Summary{Experiment: e.Name, Episodes: c.episodes}
	totalSteps := 0
	for i, trace := range agent.Traces() {
		result := EpisodeResult{
			Experiment:  e.Name,
			Episode:     i,
			Steps:       trace.Len(),
			TotalReward: trace.TotalReward(),
			ReachedGoal: trace.TotalReward() > 0,
		}
		if result.ReachedGoal {
			summary.GoalReached++
		}
		totalSteps += result.Steps
		for _, r := range c.reporters {
			if err := r.Report(result); err != nil {
				return Summary{}, err
			}
		}
	}
	if c.episodes > 0 {
		summary.AverageSteps = float64(totalSteps) / float64(c.episodes)
	}
	return summary, nil
}
