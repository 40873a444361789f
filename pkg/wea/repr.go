package wea

import (
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/solarsim/wea/pkg/series"
	"github.com/solarsim/wea/pkg/sunpath"
)

type weaJSON struct {
	Location                    sunpath.Location `json:"location"`
	DirectNormalIrradiance      *series.Series   `json:"direct_normal_irradiance"`
	DiffuseHorizontalIrradiance *series.Series   `json:"diffuse_horizontal_irradiance"`
	Timestep                    int              `json:"timestep"`
	IsLeapYear                  bool             `json:"is_leap_year"`
}

// MarshalJSON serializes the structured representation of the Wea. The
// round-trip through UnmarshalJSON is exact.
func (w *Wea) MarshalJSON() ([]byte, error) {
	return json.Marshal(weaJSON{
		Location:                    w.Location,
		DirectNormalIrradiance:      w.directNormal,
		DiffuseHorizontalIrradiance: w.diffuseHorizontal,
		Timestep:                    w.timestep,
		IsLeapYear:                  w.isLeapYear,
	})
}

// UnmarshalJSON restores a Wea, re-validating the annual length invariant on
// both series.
func (w *Wea) UnmarshalJSON(data []byte) error {
	var raw weaJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.DirectNormalIrradiance == nil || raw.DiffuseHorizontalIrradiance == nil {
		return fmt.Errorf("wea requires both irradiance series")
	}
	built, err := New(raw.Location, raw.DirectNormalIrradiance,
		raw.DiffuseHorizontalIrradiance, raw.Timestep, raw.IsLeapYear)
	if err != nil {
		return err
	}
	*w = *built
	return nil
}

// snapshot is the compact binary form of a Wea: the timestamp grid is fully
// determined by timestep and the leap-year flag, so only the values travel.
type snapshot struct {
	Location          sunpath.Location `msgpack:"location"`
	DirectNormal      []float64        `msgpack:"direct_normal"`
	DiffuseHorizontal []float64        `msgpack:"diffuse_horizontal"`
	Timestep          int              `msgpack:"timestep"`
	IsLeapYear        bool             `msgpack:"is_leap_year"`
}

// Snapshot encodes the Wea as a compact msgpack blob, suitable for caching
// generated annual series between runs.
func (w *Wea) Snapshot() ([]byte, error) {
	return msgpack.Marshal(snapshot{
		Location:          w.Location,
		DirectNormal:      w.directNormal.Values(),
		DiffuseHorizontal: w.diffuseHorizontal.Values(),
		Timestep:          w.timestep,
		IsLeapYear:        w.isLeapYear,
	})
}

// FromSnapshot decodes a msgpack blob produced by Snapshot.
func FromSnapshot(data []byte) (*Wea, error) {
	var snap snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode wea snapshot: %w", err)
	}
	return FromValues(snap.Location, snap.DirectNormal, snap.DiffuseHorizontal,
		snap.Timestep, snap.IsLeapYear)
}
