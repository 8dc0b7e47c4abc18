package benchmarks

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/zeu5/hallway-pomdp/hallway"
	"github.com/zeu5/hallway-pomdp/monitor"
	"github.com/zeu5/hallway-pomdp/report"
	"github.com/zeu5/hallway-pomdp/types"
)

type hallwayFlags struct {
	pSuccess    float64
	pWallTrue   float64
	pWallFalse  float64
	monitorAddr string
	redisAddr   string
}

// runComparison runs a random and a softmax Q-learning policy against
// the given map and records summaries, visit heatmaps and, optionally,
// per-episode results to Redis
func runComparison(data hallway.MapData, flags *hallwayFlags) error {
	baseSeed := seed
	if baseSeed == 0 {
		baseSeed = uint64(time.Now().UnixNano())
	}

	topo, err := hallway.NewTopology(data)
	if err != nil {
		return err
	}

	comparison := types.NewComparison(episodes, horizon, saveFile)

	var redisReporter *report.RedisReporter
	if flags.redisAddr != "" {
		redisReporter = report.NewRedisReporter(context.Background(), flags.redisAddr, "hallway-pomdp:"+data.Name)
		comparison.AddReporter(redisReporter)
		defer redisReporter.Close()
	}

	counters := make(map[string]*hallway.VisitCounter)
	var mon *monitor.Server

	policies := []struct {
		name   string
		policy types.Policy
	}{
		{"Random", types.NewRandomPolicySeeded(baseSeed + 1)},
		{"SoftMax-Q", types.NewSoftMaxPolicy(0.3, 0.95, baseSeed+2)},
	}
	for i, p := range policies {
		cfg := hallway.DefaultConfig()
		cfg.PSuccess = flags.pSuccess
		cfg.PWallTrue = flags.pWallTrue
		cfg.PWallFalse = flags.pWallFalse
		cfg.MaxSteps = horizon
		cfg.Seed = baseSeed + uint64(10+i)
		env, err := hallway.NewEnvWithTopology(topo, cfg)
		if err != nil {
			return err
		}

		if flags.monitorAddr != "" && mon == nil {
			mon = monitor.NewServer(flags.monitorAddr, env)
			mon.Start()
		}

		counter := hallway.NewVisitCounter(topo)
		counters[p.name] = counter

		experiment := types.NewExperiment(p.name, p.policy, env)
		experiment.OnStep = stepHook(p.name, env, counter, mon)
		comparison.AddExperiment(experiment)
	}

	if err := comparison.Run(); err != nil {
		return err
	}
	if mon != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		mon.Stop(ctx)
	}

	for name, counter := range counters {
		if err := counter.Save(saveFile, data.Name+"_"+name); err != nil {
			return err
		}
	}
	fmt.Printf("Results saved under %s\n", saveFile)
	return nil
}

// stepHook feeds the visit counter and the monitor from the simulator's
// read-only accessors after every step
func stepHook(name string, env *hallway.Env, counter *hallway.VisitCounter, mon *monitor.Server) func(types.Environment, *types.StepResult) {
	episode := 0
	return func(_ types.Environment, result *types.StepResult) {
		counter.Observe(env.State())
		if mon != nil {
			cell, orientation := env.Topology().Decode(env.State())
			obs := -1
			if o, ok := result.Observation.(hallway.Observation); ok {
				obs = int(o)
			}
			mon.Publish(monitor.Snapshot{
				Experiment:  name,
				Episode:     episode,
				Step:        env.Steps(),
				State:       env.State(),
				Cell:        cell,
				Orientation: orientation.String(),
				Observation: obs,
				Reward:      result.Reward,
				Done:        result.Done,
			})
		}
		if result.Done {
			episode++
		}
	}
}

func hallwayRunFlags(cmd *cobra.Command) *hallwayFlags {
	flags := &hallwayFlags{}
	cmd.PersistentFlags().Float64Var(&flags.pSuccess, "p-success", 0.8, "Probability that a non-stay action succeeds")
	cmd.PersistentFlags().Float64Var(&flags.pWallTrue, "p-wall-true", 0.9, "Probability of seeing a wall that is there")
	cmd.PersistentFlags().Float64Var(&flags.pWallFalse, "p-wall-false", 0.05, "Probability of seeing a wall that is not there")
	cmd.PersistentFlags().StringVar(&flags.monitorAddr, "monitor", "", "Serve a read-only inspection API on this address")
	cmd.PersistentFlags().StringVar(&flags.redisAddr, "redis", "", "Push episode results to Redis at this address")
	return flags
}

func HallwayCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hallway",
		Short: "Compare policies on the small hallway domain",
	}
	flags := hallwayRunFlags(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runComparison(hallway.HallwayMap(), flags)
	}
	return cmd
}

func Hallway2Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hallway2",
		Short: "Compare policies on the large hallway domain",
	}
	flags := hallwayRunFlags(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runComparison(hallway.Hallway2Map(), flags)
	}
	return cmd
}
