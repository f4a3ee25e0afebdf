package stivalg

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Default values for Params fields, per spec.md §3.
const (
	DefaultGridSizePass1   = 25.0
	DefaultGridSizePass2   = 1.0
	DefaultCoveringLength  = 1.1
	DefaultCoveringWidth   = 1.1
	DefaultPathWidthPass2  = 1000.0
	DefaultTrackName       = "stivalg"
)

// Params is the planner's configuration: the ordered waypoints to route
// between, the barriers the route must avoid, and the graph-building
// knobs from spec.md §3.
type Params struct {
	Points         []Coord   `json:"points"`
	Barriers       []Barrier `json:"barriers"`
	GridSizePass1  float64   `json:"grid_size_pass1"`
	GridSizePass2  float64   `json:"grid_size_pass2"`
	CoveringLength float64   `json:"covering_length"`
	CoveringWidth  float64   `json:"covering_width"`
	PathWidthPass2 float64   `json:"path_width_pass2"`
	ParamsFname    string    `json:"params_fname"`
	OutputFname    string    `json:"output_fname"`
	TrackName      string    `json:"track_name"`
}

// NewParams returns a Params with spec.md's documented defaults and no
// waypoints or barriers.
func NewParams() Params {
	return Params{
		GridSizePass1:  DefaultGridSizePass1,
		GridSizePass2:  DefaultGridSizePass2,
		CoveringLength: DefaultCoveringLength,
		CoveringWidth:  DefaultCoveringWidth,
		PathWidthPass2: DefaultPathWidthPass2,
		TrackName:      DefaultTrackName,
	}
}

// MarshalJSON renders a Barrier as a bare array of coordinates
// (original_source/src/barrier.rs marks the Rust type #[serde(transparent)]).
func (b Barrier) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.points)
}

func (b *Barrier) UnmarshalJSON(data []byte) error {
	var pts []Coord
	if err := json.Unmarshal(data, &pts); err != nil {
		return err
	}
	if len(pts) < 2 {
		return fmt.Errorf("stivalg: a barrier needs at least two points, got %d", len(pts))
	}
	b.points = pts
	return nil
}

// applyDefaults fills in zero-valued knobs with spec.md's defaults, the
// way serde's `#[serde(default = "...")]` does on the Rust side.
func (p *Params) applyDefaults() {
	if p.GridSizePass1 == 0 {
		p.GridSizePass1 = DefaultGridSizePass1
	}
	if p.GridSizePass2 == 0 {
		p.GridSizePass2 = DefaultGridSizePass2
	}
	if p.CoveringLength == 0 {
		p.CoveringLength = DefaultCoveringLength
	}
	if p.CoveringWidth == 0 {
		p.CoveringWidth = DefaultCoveringWidth
	}
	if p.PathWidthPass2 == 0 {
		p.PathWidthPass2 = DefaultPathWidthPass2
	}
	if p.TrackName == "" {
		p.TrackName = DefaultTrackName
	}
}

// ParamsStore loads and saves Params. JSONParamsStore is the only
// implementation shipped by this module.
type ParamsStore interface {
	Load(path string) (Params, error)
	Save(path string, p Params) error
}

// JSONParamsStore persists Params as JSON, matching
// original_source/src/params.rs's from_file/write_params.
type JSONParamsStore struct{}

// Load reads and decodes Params from path, applying defaults for any
// omitted knob.
func (JSONParamsStore) Load(path string) (Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("stivalg: reading params: %w", err)
	}
	var p Params
	if err := json.Unmarshal(data, &p); err != nil {
		return Params{}, fmt.Errorf("stivalg: decoding params: %w", err)
	}
	p.applyDefaults()
	p.ParamsFname = path
	return p, nil
}

// Save writes p to path in JSON. path must end in ".json".
func (JSONParamsStore) Save(path string, p Params) error {
	if !strings.HasSuffix(path, ".json") {
		return fmt.Errorf("stivalg: params filename %q must end with .json", path)
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("stivalg: encoding params: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("stivalg: writing params: %w", err)
	}
	return nil
}

// Set assigns the named numeric knob (or "track_name") from its string
// representation, mirroring original_source/src/params.rs's Params::set.
// It is the backing implementation of `stivalg config set KEY VALUE`.
func (p *Params) Set(name, value string) error {
	switch name {
	case "grid_size_pass1":
		return p.setFloat(&p.GridSizePass1, value)
	case "grid_size_pass2":
		return p.setFloat(&p.GridSizePass2, value)
	case "covering_length":
		return p.setFloat(&p.CoveringLength, value)
	case "covering_width":
		return p.setFloat(&p.CoveringWidth, value)
	case "path_width_pass2":
		return p.setFloat(&p.PathWidthPass2, value)
	case "track_name":
		p.TrackName = value
		return nil
	default:
		return fmt.Errorf("stivalg: invalid parameter %q", name)
	}
}

func (p *Params) setFloat(dst *float64, value string) error {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("stivalg: invalid value %q: %w", value, err)
	}
	*dst = f
	return nil
}
