package benchmarks

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"github.com/zeu5/hallway-pomdp/hallway"
)

// InspectCommand dumps the model tables of a map: state space sizes,
// per-cell layout and the worst row-sum deviation of the kernel and the
// observation table
func InspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [hallway|hallway2]",
		Short: "Print topology and model statistics for a map",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data hallway.MapData
			switch args[0] {
			case "hallway":
				data = hallway.HallwayMap()
			case "hallway2":
				data = hallway.Hallway2Map()
			default:
				return fmt.Errorf("unknown map %q", args[0])
			}

			env, err := hallway.NewEnv(data, hallway.DefaultConfig())
			if err != nil {
				return err
			}
			topo := env.Topology()
			fmt.Printf("map: %s\n", topo.Name())
			fmt.Printf("cells: %d  states: %d  actions: %d  observations: %d\n",
				topo.NumCells(), topo.NumStates(), env.NumActions(), topo.NumObservations())
			fmt.Printf("terminal states: %v\n", topo.TerminalStates())

			for c := 0; c < topo.NumCells(); c++ {
				row, col := topo.CellPos(c)
				s := topo.Encode(c, hallway.Up)
				if topo.IsTerminal(s) {
					fmt.Printf("cell %2d at (%d, %d) goal\n", c, row, col)
					continue
				}
				// at orientation Up the relative pattern is the absolute one
				walls := ""
				for d, name := range []string{"N", "E", "S", "W"} {
					if topo.Walls(s)[d] {
						walls += name
					}
				}
				fmt.Printf("cell %2d at (%d, %d) walls=%s\n", c, row, col, walls)
			}

			maxKernelDev := 0.0
			for _, a := range hallway.AllActions() {
				for s := 0; s < topo.NumStates(); s++ {
					row, err := env.Kernel().Row(a, s)
					if err != nil {
						return err
					}
					sum := 0.0
					for _, p := range row {
						sum += p
					}
					if dev := math.Abs(sum - 1); dev > maxKernelDev {
						maxKernelDev = dev
					}
				}
			}

			maxObsDev := 0.0
			table := env.ObservationModel().Table(env.Kernel())
			for a := range table {
				for s := range table[a] {
					sum := 0.0
					for _, p := range table[a][s] {
						sum += p
					}
					if dev := math.Abs(sum - 1); dev > maxObsDev {
						maxObsDev = dev
					}
				}
			}

			fmt.Printf("max kernel row-sum deviation: %g\n", maxKernelDev)
			fmt.Printf("max observation row-sum deviation: %g\n", maxObsDev)
			return nil
		},
	}
}
