package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/arl/stivalg"
	"github.com/arl/stivalg/internal/terrain"
)

// gridJSON is the on-disk representation of a terrain.Grid, used by
// `stivalg config generate-atlas` and loaded back by `stivalg plan`.
type gridJSON struct {
	Width         int32         `json:"width"`
	Height        int32         `json:"height"`
	Cs            float64       `json:"cs"`
	Origin        stivalg.Coord `json:"origin"`
	Heights       []float64     `json:"heights"`
}

func writeGridJSON(path string, g *terrain.Grid) error {
	gj := gridJSON{Width: g.Width, Height: g.Height, Cs: g.Cs, Origin: g.Origin, Heights: g.Heights}
	data, err := json.MarshalIndent(gj, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	fmt.Printf("atlas written to %q (%dx%d cells, %.1fm)\n", path, gj.Width, gj.Height, gj.Cs)
	return nil
}

func readGridJSON(path string) (*terrain.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("stivalg: reading atlas: %w", err)
	}
	var gj gridJSON
	if err := json.Unmarshal(data, &gj); err != nil {
		return nil, fmt.Errorf("stivalg: decoding atlas: %w", err)
	}
	g := terrain.NewGrid(gj.Width, gj.Height, gj.Cs, gj.Origin)
	copy(g.Heights, gj.Heights)
	return g, nil
}
