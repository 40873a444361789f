package wea

import (
	"github.com/solarsim/wea/pkg/skymodel"
	"github.com/solarsim/wea/pkg/sunpath"
)

const seaLevelPressure = 101325.0

// FromZhangHuang builds a Wea from observed climate using the Zhang-Huang
// regression. cloudCover is a 0-1 sky fraction, relativeHumidity a 0-100
// percentage, dryBulbTemperature in Celsius, windSpeed in m/s. All series
// must hold timestep * hours-in-year samples. atmosphericPressure (Pa) is
// optional; nil uses uniform sea-level pressure.
//
// The regression reads the dry-bulb temperature three hours before each
// instant; for the first samples of the year that lookup wraps to the end of
// the series (late Dec-31).
func FromZhangHuang(loc sunpath.Location, cloudCover, relativeHumidity, dryBulbTemperature,
	windSpeed, atmosphericPressure []float64, timestep int, isLeapYear bool) (*Wea, error) {

	if timestep < 1 {
		timestep = 1
	}
	inputs := []struct {
		name   string
		values []float64
	}{
		{"cloud cover", cloudCover},
		{"relative humidity", relativeHumidity},
		{"dry bulb temperature", dryBulbTemperature},
		{"wind speed", windSpeed},
	}
	for _, in := range inputs {
		if err := checkAnnual(in.name, len(in.values), timestep, isLeapYear); err != nil {
			return nil, err
		}
	}
	n := len(cloudCover)
	if atmosphericPressure == nil {
		atmosphericPressure = make([]float64, n)
		for i := range atmosphericPressure {
			atmosphericPressure[i] = seaLevelPressure
		}
	} else if err := checkAnnual("atmospheric pressure", len(atmosphericPressure), timestep, isLeapYear); err != nil {
		return nil, err
	}

	dates := annualDatetimes(timestep, isLeapYear)
	altitudes := make([]float64, n)
	doys := make([]int, n)
	dryBulbT3Hrs := make([]float64, n)
	for i, dt := range dates {
		sun := sunpath.SunAt(loc, dt)
		altitudes[i] = sun.Altitude
		doys[i] = sun.DOY
		dryBulbT3Hrs[i] = dryBulbTemperature[(i-3*timestep+n)%n]
	}

	directNormal, diffuseHorizontal := skymodel.ZhangHuangSplit(
		altitudes, doys, cloudCover, relativeHumidity, dryBulbTemperature,
		dryBulbT3Hrs, windSpeed, atmosphericPressure)

	return FromValues(loc, directNormal, diffuseHorizontal, timestep, isLeapYear)
}
