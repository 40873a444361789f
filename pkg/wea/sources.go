package wea

import (
	"fmt"

	"github.com/solarsim/wea/pkg/series"
	"github.com/solarsim/wea/pkg/sunpath"
)

// WeatherSource is the hourly observational weather collaborator: a parsed
// weather file exposing named annual series at its native hourly timestep.
// The radiation series feed the irradiance path directly; the climate series
// feed the Zhang-Huang regression for stations without radiation sensors.
type WeatherSource interface {
	Location() sunpath.Location
	DirectNormalRadiation() *series.Series
	DiffuseHorizontalRadiation() *series.Series
	TotalSkyCover() *series.Series
	RelativeHumidity() *series.Series
	DryBulbTemperature() *series.Series
	WindSpeed() *series.Series
	AtmosphericStationPressure() *series.Series
}

// FromWeatherSource builds a Wea from the radiation series of an hourly
// observational weather source. At the source's native timestep the hourly
// values are used as-is, shifted 30 minutes to the hour midpoint. At a finer
// timestep both series are linearly interpolated, and every interpolated
// instant whose sun altitude is at or below the horizon is forced to zero:
// interpolation otherwise leaks irradiance into night-time instants.
//
// The source is hourly by definition, so the result never represents a leap
// year.
func FromWeatherSource(src WeatherSource, timestep int) (*Wea, error) {
	if timestep < 1 {
		timestep = 1
	}
	loc := src.Location()
	directNormal := src.DirectNormalRadiation()
	diffuseHorizontal := src.DiffuseHorizontalRadiation()

	if timestep == 1 {
		return FromValues(loc, directNormal.Values(), diffuseHorizontal.Values(), 1, false)
	}

	dnFine, err := directNormal.InterpolateToTimestep(timestep)
	if err != nil {
		return nil, fmt.Errorf("interpolate direct normal radiation: %w", err)
	}
	dhFine, err := diffuseHorizontal.InterpolateToTimestep(timestep)
	if err != nil {
		return nil, fmt.Errorf("interpolate diffuse horizontal radiation: %w", err)
	}

	dn := dnFine.Values()
	dh := dhFine.Values()
	for i, dt := range annualDatetimes(timestep, false) {
		if sun := sunpath.SunAt(loc, dt); !sun.IsUp() {
			dn[i] = 0
			dh[i] = 0
		}
	}
	return FromValues(loc, dn, dh, timestep, false)
}

// FromWeatherSourceZhangHuang builds a Wea from a weather source that lacks
// usable radiation series, estimating irradiance from its climate series via
// the Zhang-Huang regression. The source's units are normalized through the
// quantity framework before feeding the model.
func FromWeatherSourceZhangHuang(src WeatherSource) (*Wea, error) {
	cloudCover, err := inUnit(src.TotalSkyCover(), "fraction")
	if err != nil {
		return nil, fmt.Errorf("total sky cover: %w", err)
	}
	relativeHumidity, err := inUnit(src.RelativeHumidity(), "%")
	if err != nil {
		return nil, fmt.Errorf("relative humidity: %w", err)
	}
	dryBulb, err := inUnit(src.DryBulbTemperature(), "C")
	if err != nil {
		return nil, fmt.Errorf("dry bulb temperature: %w", err)
	}
	windSpeed, err := inUnit(src.WindSpeed(), "m/s")
	if err != nil {
		return nil, fmt.Errorf("wind speed: %w", err)
	}
	pressure, err := inUnit(src.AtmosphericStationPressure(), "Pa")
	if err != nil {
		return nil, fmt.Errorf("atmospheric station pressure: %w", err)
	}
	return FromZhangHuang(src.Location(), cloudCover, relativeHumidity, dryBulb,
		windSpeed, pressure, 1, false)
}

// inUnit returns a series' values converted to the requested unit. Series
// with no declared unit are assumed to already carry it.
func inUnit(s *series.Series, unit string) ([]float64, error) {
	from := s.Header().Unit()
	if from == "" || from == unit {
		return s.Values(), nil
	}
	return s.Header().Quantity().Convert(s.Values(), unit, from)
}
