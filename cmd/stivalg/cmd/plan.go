package cmd

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/arl/stivalg"
	"github.com/arl/stivalg/internal/gpxio"
)

// planCmd represents the plan command.
var planCmd = &cobra.Command{
	Use:   "plan PARAMS_FILE ATLAS_FILE",
	Short: "compute a route and write it to a GPX track",
	Long: `Read planning parameters and an elevation atlas, compute the
route visiting the parameters' waypoints in order, and write the result
as a GPX 1.1 track.

Output defaults to the parameters file's output_fname field; it can be
overridden with --out.`,
	Args: cobra.ExactArgs(2),
	RunE: runPlan,
}

var planOutVal string

func init() {
	RootCmd.AddCommand(planCmd)
	planCmd.Flags().StringVar(&planOutVal, "out", "", "output GPX file (overrides output_fname)")
}

func runPlan(cmd *cobra.Command, args []string) error {
	paramsPath, atlasPath := args[0], args[1]

	params, err := (stivalg.JSONParamsStore{}).Load(paramsPath)
	if err != nil {
		return err
	}

	atlas, err := readGridJSON(atlasPath)
	if err != nil {
		return err
	}

	out := params.OutputFname
	if planOutVal != "" {
		out = planOutVal
	}
	if out == "" {
		return fmt.Errorf("stivalg: no output file: set output_fname in %s or pass --out", paramsPath)
	}

	path, err := stivalg.Plan(params, atlas)
	if err != nil {
		var unreachable *stivalg.UnreachableError
		if errors.As(err, &unreachable) {
			return fmt.Errorf("planning failed: %w", unreachable)
		}
		return fmt.Errorf("planning failed: %w", err)
	}

	printSummary(path, atlas)

	if err := (gpxio.Store{}).Write(out, params.TrackName, path, atlas); err != nil {
		return err
	}
	log.Printf("route written to %s", out)
	return nil
}

// printSummary prints the length, time, elevation gain and descent of
// path to standard output, the way original_source/src/path.rs's
// print_summary does.
func printSummary(path stivalg.Path, atlas stivalg.Atlas) {
	fmt.Printf("Length: %.1fm\n", path.Length())

	t := int(path.Time(atlas))
	switch {
	case t >= 3600:
		fmt.Printf("Time: %d hr %d min %d sec\n", t/3600, (t%3600)/60, t%60)
	case t >= 60:
		fmt.Printf("Time: %d min %d sec\n", t/60, t%60)
	default:
		fmt.Printf("Time: %d sec\n", t)
	}

	fmt.Printf("Total elevation gain: %.1fm\n", path.Gain(atlas))
	fmt.Printf("Total descent: %.1fm\n", path.Descent(atlas))
}
