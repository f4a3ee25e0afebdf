package stivalg

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsRoundTripsThroughJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "params.json")

	p := NewParams()
	p.Points = []Coord{{0, 0}, {100, 50}}
	p.Barriers = []Barrier{NewBarrier([]Coord{{10, 10}, {20, 20}})}
	p.TrackName = "ridge walk"

	store := JSONParamsStore{}
	require.NoError(t, store.Save(path, p))

	got, err := store.Load(path)
	require.NoError(t, err)

	assert.Equal(t, p.Points, got.Points)
	assert.Equal(t, p.Barriers[0].Points(), got.Barriers[0].Points())
	assert.Equal(t, "ridge walk", got.TrackName)
}

func TestParamsSaveRejectsNonJSONSuffix(t *testing.T) {
	dir := t.TempDir()
	err := (JSONParamsStore{}).Save(filepath.Join(dir, "params.txt"), NewParams())
	assert.Error(t, err)
}

func TestParamsLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "params.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"points":[{"e":0,"n":0},{"e":1,"n":1}]}`), 0o644))

	p, err := (JSONParamsStore{}).Load(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultGridSizePass1, p.GridSizePass1)
	assert.Equal(t, DefaultTrackName, p.TrackName)
}

func TestParamsSet(t *testing.T) {
	p := NewParams()

	require.NoError(t, p.Set("grid_size_pass1", "10.5"))
	assert.Equal(t, 10.5, p.GridSizePass1)

	require.NoError(t, p.Set("track_name", "powder day"))
	assert.Equal(t, "powder day", p.TrackName)

	assert.Error(t, p.Set("grid_size_pass1", "not-a-number"))
	assert.Error(t, p.Set("nonexistent_knob", "1"))
}

func TestBarrierJSONIsTransparentArray(t *testing.T) {
	b := NewBarrier([]Coord{{1, 2}, {3, 4}})
	p := NewParams()
	p.Points = []Coord{{0, 0}, {1, 1}}
	p.Barriers = []Barrier{b}

	dir := t.TempDir()
	path := filepath.Join(dir, "p.json")
	require.NoError(t, (JSONParamsStore{}).Save(path, p))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw struct {
		Barriers []json.RawMessage `json:"barriers"`
	}
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw.Barriers, 1)

	var points []Coord
	require.NoError(t, json.Unmarshal(raw.Barriers[0], &points))
	assert.Equal(t, b.Points(), points)
}
