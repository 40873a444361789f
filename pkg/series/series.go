package series

import (
	"encoding/json"
	"fmt"

	"gonum.org/v1/gonum/interp"

	"github.com/solarsim/wea/pkg/caltime"
)

// Series is an ordered sequence of numeric samples, each paired with a
// timestamp, carrying exactly one Header. Two series built over the same
// timestamp grid are co-indexed; consumers rely on that holding by
// construction.
type Series struct {
	header    *Header
	values    []float64
	datetimes []caltime.DateTime
}

// New returns an empty series carrying the given header.
func New(header *Header) *Series {
	return &Series{header: header}
}

// FromPairs builds a series from parallel value/timestamp slices.
func FromPairs(header *Header, values []float64, datetimes []caltime.DateTime) (*Series, error) {
	if len(values) != len(datetimes) {
		return nil, fmt.Errorf("series values (%d) and datetimes (%d) must pair up",
			len(values), len(datetimes))
	}
	s := New(header)
	s.values = append(s.values, values...)
	s.datetimes = append(s.datetimes, datetimes...)
	return s, nil
}

// Append adds one sample.
func (s *Series) Append(value float64, dt caltime.DateTime) {
	s.values = append(s.values, value)
	s.datetimes = append(s.datetimes, dt)
}

// Len returns the number of samples.
func (s *Series) Len() int { return len(s.values) }

// Header returns the series header.
func (s *Series) Header() *Header { return s.header }

// Value returns the sample value at index i.
func (s *Series) Value(i int) float64 { return s.values[i] }

// Datetime returns the timestamp at index i.
func (s *Series) Datetime(i int) caltime.DateTime { return s.datetimes[i] }

// Values returns a copy of all sample values.
func (s *Series) Values() []float64 {
	out := make([]float64, len(s.values))
	copy(out, s.values)
	return out
}

// Datetimes returns a copy of all timestamps.
func (s *Series) Datetimes() []caltime.DateTime {
	out := make([]caltime.DateTime, len(s.datetimes))
	copy(out, s.datetimes)
	return out
}

// HOYs returns the hour-of-year of every sample.
func (s *Series) HOYs() []float64 {
	out := make([]float64, len(s.datetimes))
	for i, dt := range s.datetimes {
		out[i] = dt.HOY()
	}
	return out
}

// Duplicate returns an independent copy of the series and its header.
func (s *Series) Duplicate() *Series {
	dup := New(s.header.Duplicate())
	dup.values = append(dup.values, s.values...)
	dup.datetimes = append(dup.datetimes, s.datetimes...)
	return dup
}

// InterpolateToTimestep linearly interpolates the series onto the annual
// 60/timestep-minute grid. The series' analysis period must span the whole
// year, and the requested timestep must be a finer multiple of the series'
// own. Samples beyond the last source timestamp hold its value.
func (s *Series) InterpolateToTimestep(timestep int) (*Series, error) {
	if !s.header.Period().IsAnnual() {
		return nil, fmt.Errorf("analysis period %s does not span the year", s.header.Period())
	}
	cur := s.header.Period().Timestep
	if cur < 1 {
		cur = 1
	}
	if timestep <= cur || timestep%cur != 0 {
		return nil, fmt.Errorf("timestep %d is not a finer multiple of the series timestep %d",
			timestep, cur)
	}
	if s.Len() < 2 {
		return nil, fmt.Errorf("series must hold at least 2 samples to interpolate, got %d", s.Len())
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(s.HOYs(), s.values); err != nil {
		return nil, fmt.Errorf("fit interpolant: %w", err)
	}

	leap := s.header.Period().IsLeapYear
	n := caltime.HourCount(leap) * timestep
	header := s.header.Duplicate()
	period := header.Period()
	period.Timestep = timestep
	header.SetPeriod(period)

	out := New(header)
	for i := 0; i < n; i++ {
		hoy := float64(i) / float64(timestep)
		out.Append(pl.Predict(hoy), caltime.FromHOY(hoy, leap))
	}
	return out, nil
}

type seriesJSON struct {
	Header *Header   `json:"header"`
	Values []float64 `json:"values"`
	MOYs   []float64 `json:"moys"`
}

// MarshalJSON serializes the header, values and timestamps (as minutes of the
// year).
func (s *Series) MarshalJSON() ([]byte, error) {
	moys := make([]float64, len(s.datetimes))
	for i, dt := range s.datetimes {
		moys[i] = dt.MOY()
	}
	return json.Marshal(seriesJSON{Header: s.header, Values: s.values, MOYs: moys})
}

// UnmarshalJSON restores a series; timestamps are rebuilt from their minute
// of the year using the header's leap-year flag.
func (s *Series) UnmarshalJSON(data []byte) error {
	var raw seriesJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Header == nil {
		return fmt.Errorf("series is missing its header")
	}
	if len(raw.Values) != len(raw.MOYs) {
		return fmt.Errorf("series values (%d) and moys (%d) must pair up",
			len(raw.Values), len(raw.MOYs))
	}
	leap := raw.Header.Period().IsLeapYear
	datetimes := make([]caltime.DateTime, len(raw.MOYs))
	for i, moy := range raw.MOYs {
		datetimes[i] = caltime.FromMOY(moy, leap)
	}
	s.header = raw.Header
	s.values = raw.Values
	s.datetimes = datetimes
	return nil
}
