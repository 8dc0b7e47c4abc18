package benchmarks

import "github.com/spf13/cobra"

var (
	episodes int
	horizon  int
	saveFile string
	seed     uint64
)

func GetRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use: "hallway-pomdp",
	}
	rootCommand.PersistentFlags().IntVarP(&episodes, "episodes", "e", 10000, "Number of episodes to run")
	rootCommand.PersistentFlags().IntVar(&horizon, "horizon", 100, "Horizon of each episode")
	rootCommand.PersistentFlags().StringVarP(&saveFile, "save", "s", "results", "Save the result data in the specified folder")
	rootCommand.PersistentFlags().Uint64Var(&seed, "seed", 0, "Base random seed (0 picks one from the clock)")
	// adding the subcommands here
	rootCommand.AddCommand(HallwayCommand())
	rootCommand.AddCommand(Hallway2Command())
	rootCommand.AddCommand(InspectCommand())
	return rootCommand
}
