// Package wea assembles annual solar irradiance series: paired direct-normal
// and diffuse-horizontal values for every timestep of a year, constructed
// from raw samples, a native irradiance file, observed weather, or one of
// several sky models, and serialized to the line-oriented WEA text format.
package wea

import (
	"fmt"
	"math"

	"github.com/solarsim/wea/pkg/caltime"
	"github.com/solarsim/wea/pkg/quantity"
	"github.com/solarsim/wea/pkg/series"
	"github.com/solarsim/wea/pkg/sunpath"
)

// Wea holds one year of paired direct-normal and diffuse-horizontal solar
// irradiance over a location. Both series always satisfy
// len == timestep * hours-in-year and share one timestamp grid; the only way
// to replace a series is through a validating setter.
type Wea struct {
	Location sunpath.Location

	directNormal      *series.Series
	diffuseHorizontal *series.Series
	timestep          int
	isLeapYear        bool
}

// New builds a Wea from two already-assembled irradiance series, validating
// the annual length invariant on both.
func New(loc sunpath.Location, directNormal, diffuseHorizontal *series.Series, timestep int, isLeapYear bool) (*Wea, error) {
	if timestep < 1 {
		timestep = 1
	}
	w := &Wea{Location: loc, timestep: timestep, isLeapYear: isLeapYear}
	if err := w.SetDirectNormalIrradiance(directNormal); err != nil {
		return nil, err
	}
	if err := w.SetDiffuseHorizontalIrradiance(diffuseHorizontal); err != nil {
		return nil, err
	}
	return w, nil
}

// FromValues builds a Wea from flat slices of direct-normal and
// diffuse-horizontal irradiance. Each slice must hold timestep *
// hours-in-year samples; values are paired with timestamps on the
// 60/timestep-minute grid, offset by 30 minutes at timestep 1 so each hourly
// value sits at its hour's midpoint.
func FromValues(loc sunpath.Location, directNormal, diffuseHorizontal []float64, timestep int, isLeapYear bool) (*Wea, error) {
	if timestep < 1 {
		timestep = 1
	}
	if err := checkAnnual("direct normal irradiance", len(directNormal), timestep, isLeapYear); err != nil {
		return nil, err
	}
	if err := checkAnnual("diffuse horizontal irradiance", len(diffuseHorizontal), timestep, isLeapYear); err != nil {
		return nil, err
	}

	dates := annualDatetimes(timestep, isLeapYear)
	dn, dh, err := emptyIrradianceSeries(loc, timestep, isLeapYear)
	if err != nil {
		return nil, err
	}
	for i, dt := range dates {
		dn.Append(directNormal[i], dt)
		dh.Append(diffuseHorizontal[i], dt)
	}
	return New(loc, dn, dh, timestep, isLeapYear)
}

// Timestep returns the number of samples per hour.
func (w *Wea) Timestep() int { return w.timestep }

// IsLeapYear reports whether the series represent a leap year.
func (w *Wea) IsLeapYear() bool { return w.isLeapYear }

// DirectNormalIrradiance returns the direct-normal series.
func (w *Wea) DirectNormalIrradiance() *series.Series { return w.directNormal }

// DiffuseHorizontalIrradiance returns the diffuse-horizontal series.
func (w *Wea) DiffuseHorizontalIrradiance() *series.Series { return w.diffuseHorizontal }

// Datetimes returns the shared timestamp grid.
func (w *Wea) Datetimes() []caltime.DateTime { return w.directNormal.Datetimes() }

// HOYs returns the hour-of-year of every sample.
func (w *Wea) HOYs() []float64 { return w.directNormal.HOYs() }

// SetDirectNormalIrradiance replaces the direct-normal series after
// re-checking the annual length invariant.
func (w *Wea) SetDirectNormalIrradiance(s *series.Series) error {
	if s == nil {
		return fmt.Errorf("direct normal irradiance series is required")
	}
	if err := checkAnnual("direct normal irradiance", s.Len(), w.timestep, w.isLeapYear); err != nil {
		return err
	}
	w.directNormal = s
	return nil
}

// SetDiffuseHorizontalIrradiance replaces the diffuse-horizontal series after
// re-checking the annual length invariant.
func (w *Wea) SetDiffuseHorizontalIrradiance(s *series.Series) error {
	if s == nil {
		return fmt.Errorf("diffuse horizontal irradiance series is required")
	}
	if err := checkAnnual("diffuse horizontal irradiance", s.Len(), w.timestep, w.isLeapYear); err != nil {
		return err
	}
	w.diffuseHorizontal = s
	return nil
}

// IrradianceAt returns the direct-normal and diffuse-horizontal values for a
// point in time.
func (w *Wea) IrradianceAt(month, day, hour int) (directNormal, diffuseHorizontal float64, err error) {
	dt := caltime.DateTime{Month: month, Day: day, Hour: hour, IsLeapYear: w.isLeapYear}
	return w.IrradianceAtHOY(dt.HOY())
}

// IrradianceAtHOY returns the direct-normal and diffuse-horizontal values for
// an hour of the year.
func (w *Wea) IrradianceAtHOY(hoy float64) (directNormal, diffuseHorizontal float64, err error) {
	i := int(hoy * float64(w.timestep))
	if i < 0 || i >= w.directNormal.Len() {
		return 0, 0, fmt.Errorf("hour of year %g is outside the annual range", hoy)
	}
	return w.directNormal.Value(i), w.diffuseHorizontal.Value(i), nil
}

// GlobalHorizontalIrradiance derives the global horizontal irradiance at each
// timestep: diffuse + direct * sin(sun altitude).
func (w *Wea) GlobalHorizontalIrradiance() *series.Series {
	out := w.derivedSeries(quantity.GlobalHorizontalIrradiance)
	for i := 0; i < w.directNormal.Len(); i++ {
		dt := w.directNormal.Datetime(i)
		sun := sunpath.SunAt(w.Location, dt)
		glob := w.diffuseHorizontal.Value(i) +
			w.directNormal.Value(i)*math.Sin(degToRad(sun.Altitude))
		out.Append(glob, dt)
	}
	return out
}

// DirectHorizontalIrradiance derives the direct irradiance on a horizontal
// surface at each timestep: direct * sin(sun altitude). Note the stored
// direct series is NORMAL, not horizontal.
func (w *Wea) DirectHorizontalIrradiance() *series.Series {
	out := w.derivedSeries(quantity.DirectHorizontalIrradiance)
	for i := 0; i < w.directNormal.Len(); i++ {
		dt := w.directNormal.Datetime(i)
		sun := sunpath.SunAt(w.Location, dt)
		out.Append(w.directNormal.Value(i)*math.Sin(degToRad(sun.Altitude)), dt)
	}
	return out
}

func (w *Wea) derivedSeries(q *quantity.Quantity) *series.Series {
	h, err := series.NewHeader(q, "W/m2", caltime.Annual(w.timestep, w.isLeapYear),
		map[string]any{"city": w.Location.City})
	if err != nil {
		// W/m2 is always legal for the irradiance quantities.
		panic(err)
	}
	return series.New(h)
}

// checkAnnual enforces the annual length invariant and builds the diagnostic
// hint when the actual length is an exact multiple of the hour count.
func checkAnnual(name string, actual, timestep int, isLeapYear bool) error {
	hours := caltime.HourCount(isLeapYear)
	expected := timestep * hours
	if actual == expected {
		return nil
	}
	e := &AnnualLengthError{Name: name, Timestep: timestep, Expected: expected, Actual: actual}
	if actual > 0 && actual%hours == 0 {
		e.SuggestedTimestep = actual / hours
	}
	return e
}

// annualDatetimes generates the shared timestamp grid: 60/timestep-minute
// intervals, shifted 30 minutes at timestep 1 to put each hourly value at
// the hour's midpoint.
func annualDatetimes(timestep int, isLeapYear bool) []caltime.DateTime {
	n := caltime.HourCount(isLeapYear) * timestep
	dates := make([]caltime.DateTime, n)
	for i := 0; i < n; i++ {
		dates[i] = caltime.FromMOY(60.0*float64(i)/float64(timestep), isLeapYear)
		if timestep == 1 {
			dates[i] = dates[i].AddMinutes(30)
		}
	}
	return dates
}

// emptyIrradianceSeries returns the empty direct-normal and
// diffuse-horizontal series stamped with their headers.
func emptyIrradianceSeries(loc sunpath.Location, timestep int, isLeapYear bool) (*series.Series, *series.Series, error) {
	period := caltime.Annual(timestep, isLeapYear)
	dnh, err := series.NewHeader(quantity.DirectNormalIrradiance, "W/m2", period,
		map[string]any{"city": loc.City})
	if err != nil {
		return nil, nil, err
	}
	dhh, err := series.NewHeader(quantity.DiffuseHorizontalIrradiance, "W/m2", period,
		map[string]any{"city": loc.City})
	if err != nil {
		return nil, nil, err
	}
	return series.New(dnh), series.New(dhh), nil
}

func degToRad(deg float64) float64 { return deg * math.Pi / 180.0 }
