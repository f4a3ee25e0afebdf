package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "stivalg",
	Short: "plan hiking and skiing routes over elevation terrain",
	Long: `stivalg plans a route across one or more waypoints, accounting
for the time cost of walking or skiing uphill and downhill, and routing
around barriers (fences, cliffs, water).

It reads its planning parameters from a JSON file, its terrain from an
elevation atlas, and writes the resulting route to a GPX track.`,
}

// Execute runs RootCmd; the child commands add themselves to it in their
// init functions. Called once by main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
