package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arl/stivalg"
)

// showCmd prints a planning parameters file's content in human-readable
// form, without running the planner.
var showCmd = &cobra.Command{
	Use:   "show PARAMS_FILE",
	Short: "print a planning parameters file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := (stivalg.JSONParamsStore{}).Load(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("waypoints: %d\n", len(p.Points))
		for i, c := range p.Points {
			fmt.Printf("  %d: e=%.2f n=%.2f\n", i, c.E, c.N)
		}
		fmt.Printf("barriers: %d\n", len(p.Barriers))
		fmt.Printf("grid_size_pass1: %g\n", p.GridSizePass1)
		fmt.Printf("grid_size_pass2: %g\n", p.GridSizePass2)
		fmt.Printf("covering_length: %g\n", p.CoveringLength)
		fmt.Printf("covering_width: %g\n", p.CoveringWidth)
		fmt.Printf("path_width_pass2: %g\n", p.PathWidthPass2)
		fmt.Printf("track_name: %s\n", p.TrackName)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}
