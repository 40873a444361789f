package wea

import (
	"fmt"

	"github.com/solarsim/wea/pkg/skymodel"
	"github.com/solarsim/wea/pkg/sunpath"
)

// FromASHRAEClearSky builds a Wea from the original ASHRAE Clear Sky model.
// skyClearness scales the model output uniformly; pass 1.0 for the model
// default. The original model tends to overestimate irradiance compared to
// the revised Tau model but needs no monthly optical depths.
func FromASHRAEClearSky(loc sunpath.Location, skyClearness float64, timestep int, isLeapYear bool) (*Wea, error) {
	if skyClearness == 0 {
		skyClearness = 1.0
	}
	return fromMonthlySkyModel(loc, timestep, isLeapYear,
		func(month int, altitudes []float64) ([]float64, []float64) {
			return skymodel.ASHRAEClearSky(altitudes, month, skyClearness)
		})
}

// FromASHRAERevisedClearSky builds a Wea from the ASHRAE Revised Clear Sky
// ("Tau") model. Both optical-depth slices must hold exactly 12 non-nil
// values, one per calendar month; the first missing month fails with a
// MissingDataError, beam values checked before diffuse.
func FromASHRAERevisedClearSky(loc sunpath.Location, tauBeam, tauDiffuse []*float64, timestep int, isLeapYear bool) (*Wea, error) {
	beam, err := checkMonthly(tauBeam, "beam optical depth")
	if err != nil {
		return nil, err
	}
	diffuse, err := checkMonthly(tauDiffuse, "diffuse optical depth")
	if err != nil {
		return nil, err
	}
	return fromMonthlySkyModel(loc, timestep, isLeapYear,
		func(month int, altitudes []float64) ([]float64, []float64) {
			return skymodel.ASHRAERevisedClearSky(altitudes, beam[month-1], diffuse[month-1])
		})
}

// SummarySource is the monthly-optical-depth collaborator: a parsed summary
// file exposing two 12-element optical-depth sequences, possibly with gaps.
type SummarySource interface {
	Location() sunpath.Location
	MonthlyTauBeam() []*float64
	MonthlyTauDiffuse() []*float64
}

// FromSummarySource builds a Tau-model Wea from a monthly summary
// collaborator.
func FromSummarySource(src SummarySource, timestep int, isLeapYear bool) (*Wea, error) {
	return FromASHRAERevisedClearSky(src.Location(), src.MonthlyTauBeam(),
		src.MonthlyTauDiffuse(), timestep, isLeapYear)
}

func checkMonthly(values []*float64, field string) ([]float64, error) {
	if len(values) != 12 {
		return nil, fmt.Errorf("%s requires 12 monthly values, got %d", field, len(values))
	}
	out := make([]float64, 12)
	for i, v := range values {
		if v == nil {
			return nil, &MissingDataError{Field: field, Month: i + 1}
		}
		out[i] = *v
	}
	return out, nil
}

// fromMonthlySkyModel runs a per-month sky model over the whole year: sun
// altitudes are computed for every timestep, bucketed by calendar month,
// evaluated per month, and scattered back into chronological order.
func fromMonthlySkyModel(loc sunpath.Location, timestep int, isLeapYear bool,
	eval func(month int, altitudes []float64) ([]float64, []float64)) (*Wea, error) {

	if timestep < 1 {
		timestep = 1
	}
	dates := annualDatetimes(timestep, isLeapYear)

	var monthAltitudes [12][]float64
	var monthIndices [12][]int
	for i, dt := range dates {
		sun := sunpath.SunAt(loc, dt)
		m := dt.Month - 1
		monthAltitudes[m] = append(monthAltitudes[m], sun.Altitude)
		monthIndices[m] = append(monthIndices[m], i)
	}

	directNormal := make([]float64, len(dates))
	diffuseHorizontal := make([]float64, len(dates))
	for m := 0; m < 12; m++ {
		dir, dif := eval(m+1, monthAltitudes[m])
		for j, i := range monthIndices[m] {
			directNormal[i] = dir[j]
			diffuseHorizontal[i] = dif[j]
		}
	}
	return FromValues(loc, directNormal, diffuseHorizontal, timestep, isLeapYear)
}
