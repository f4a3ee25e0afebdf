package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arl/stivalg"
	"github.com/arl/stivalg/internal/gpxio"
	"github.com/arl/stivalg/internal/terrain"
)

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:   "config FILE",
	Short: "create a planning parameters file",
	Long: `Create a planning parameters file in JSON format, prefilled with
default values.

If FILE is not provided, 'stivalg.json' is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := "stivalg.json"
		if len(args) >= 1 {
			path = args[0]
		}
		ok, err := confirmIfExists(path, fmt.Sprintf("file %s already exists, overwrite? [y/N]", path))
		if !ok {
			if err == nil {
				fmt.Println("aborted by user")
			} else {
				fmt.Println("aborted:", err)
			}
			return
		}
		if err := (stivalg.JSONParamsStore{}).Save(path, stivalg.NewParams()); err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("planning parameters written to %q\n", path)
	},
}

// configSetCmd sets a single knob in a parameters file in place.
var configSetCmd = &cobra.Command{
	Use:   "set PARAMS_FILE KEY VALUE",
	Short: "set a single planning parameter",
	Long:  `Update one numeric (or track_name) knob in a parameters file.`,
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := stivalg.JSONParamsStore{}
		p, err := store.Load(args[0])
		if err != nil {
			return err
		}
		if err := p.Set(args[1], args[2]); err != nil {
			return err
		}
		return store.Save(args[0], p)
	},
}

// configGenerateAtlasCmd writes a synthetic elevation atlas to a JSON
// grid file, for exercising the planner without a real elevation archive.
var configGenerateAtlasCmd = &cobra.Command{
	Use:   "generate-atlas FILE",
	Short: "write a synthetic elevation atlas",
	Long: `Write a synthetic flat, sloped or cliff elevation grid for use as
a stand-in Atlas during local testing. Kind is one of flat, slope, cliff.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var g *terrain.Grid
		switch atlasKindVal {
		case "flat":
			g = terrain.Flat(atlasSpanVal, atlasCellVal)
		case "slope":
			g = terrain.ConstantSlope(atlasSpanVal, atlasCellVal, atlasGradeVal)
		case "cliff":
			g = terrain.CliffStrip(atlasSpanVal, atlasCellVal, 0, atlasCellVal, 50)
		default:
			return fmt.Errorf("unknown atlas kind %q, want flat, slope or cliff", atlasKindVal)
		}
		return writeGridJSON(args[0], g)
	},
}

// configBarrierFromGpxCmd turns a GPX track into a barrier and appends it
// to a parameters file, the CLI's stand-in for the original's canvas
// click-to-draw barrier tool: each track point becomes one barrier point,
// added in order through a BarrierBuilder before being frozen.
var configBarrierFromGpxCmd = &cobra.Command{
	Use:   "barrier-from-gpx PARAMS_FILE GPX_FILE",
	Short: "add a barrier traced from a GPX track",
	Long: `Read a GPX track and add its points as a new barrier in a
planning parameters file.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := stivalg.JSONParamsStore{}
		p, err := store.Load(args[0])
		if err != nil {
			return err
		}

		points, err := (gpxio.Store{}).Read(args[1])
		if err != nil {
			return err
		}

		bb := stivalg.NewBarrierBuilder()
		for _, pt := range points {
			bb.AddPoint(pt)
		}
		if bb.Len() < 2 {
			return fmt.Errorf("stivalg: %s has fewer than two track points, cannot form a barrier", args[1])
		}

		p.Barriers = append(p.Barriers, bb.Build())
		if err := store.Save(args[0], p); err != nil {
			return err
		}
		fmt.Printf("barrier with %d points added to %q\n", bb.Len(), args[0])
		return nil
	},
}

var (
	atlasKindVal  string
	atlasSpanVal  float64
	atlasCellVal  float64
	atlasGradeVal float64
)

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGenerateAtlasCmd)
	configCmd.AddCommand(configBarrierFromGpxCmd)

	configGenerateAtlasCmd.Flags().StringVar(&atlasKindVal, "kind", "flat", "flat, slope or cliff")
	configGenerateAtlasCmd.Flags().Float64Var(&atlasSpanVal, "span", 500, "half-span of the generated grid, in metres")
	configGenerateAtlasCmd.Flags().Float64Var(&atlasCellVal, "cell", 5, "cell size of the generated grid, in metres")
	configGenerateAtlasCmd.Flags().Float64Var(&atlasGradeVal, "grade", 0.2, "grade for --kind=slope, rise over run")
}
