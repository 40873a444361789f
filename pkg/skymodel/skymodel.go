// Package skymodel implements idealized-sky and regression models for solar
// radiation: the original ASHRAE Clear Sky, the ASHRAE Revised Clear Sky
// ("Tau" model) and the Zhang-Huang regression with its DISC direct/diffuse
// split.
package skymodel

import "math"

// Monthly apparent solar irradiation at air mass m = 0 (W/m2) and the
// matching atmospheric extinction coefficients for the original ASHRAE Clear
// Sky model.
var (
	monthlyA = [12]float64{1202, 1187, 1164, 1130, 1106, 1092, 1093, 1107, 1136, 1166, 1190, 1204}
	monthlyB = [12]float64{0.141, 0.142, 0.149, 0.164, 0.177, 0.185, 0.186, 0.182, 0.165, 0.152, 0.144, 0.141}
)

// ASHRAEClearSky evaluates the original ASHRAE Clear Sky model for a list of
// solar altitudes (degrees) in the given month (1-12). skyClearness scales
// the output uniformly; 1.0 is the model default. Night-time altitudes yield
// zero.
func ASHRAEClearSky(altitudes []float64, month int, skyClearness float64) (dirNorm, difHoriz []float64) {
	dirNorm = make([]float64, len(altitudes))
	difHoriz = make([]float64, len(altitudes))
	a, b := monthlyA[month-1], monthlyB[month-1]
	for i, alt := range altitudes {
		if alt <= 0 {
			continue
		}
		dir := a / math.Exp(b/math.Sin(degToRad(alt)))
		if math.IsInf(dir, 0) || math.IsNaN(dir) {
			// very small altitudes overflow the exponent
			continue
		}
		dirNorm[i] = dir * skyClearness
		difHoriz[i] = 0.17 * dir * math.Sin(degToRad(alt)) * skyClearness
	}
	return dirNorm, difHoriz
}

// ASHRAERevisedClearSky evaluates the ASHRAE Revised Clear Sky ("Tau") model
// for a list of solar altitudes (degrees) given the month's beam and diffuse
// optical depths.
func ASHRAERevisedClearSky(altitudes []float64, tauBeam, tauDiffuse float64) (dirNorm, difHoriz []float64) {
	dirNorm = make([]float64, len(altitudes))
	difHoriz = make([]float64, len(altitudes))

	ab := 1.219 - 0.043*tauBeam - 0.151*tauDiffuse - 0.204*tauBeam*tauDiffuse
	ad := 0.202 + 0.852*tauBeam - 0.007*tauDiffuse - 0.357*tauBeam*tauDiffuse
	for i, alt := range altitudes {
		if alt <= 0 {
			continue
		}
		airMass := RelativeAirmassKastenYoung(alt)
		dirNorm[i] = 1415 * math.Exp(-tauBeam*math.Pow(airMass, ab))
		difHoriz[i] = 1415 * math.Exp(-tauDiffuse*math.Pow(airMass, ad))
	}
	return dirNorm, difHoriz
}

// Zhang-Huang regression constants.
const (
	zhC0     = 0.5598
	zhC1     = 0.4982
	zhC2     = -0.6762
	zhC3     = 0.02842
	zhC4     = -0.00317
	zhC5     = 0.014
	zhDCoeff = -17.853
	zhKCoeff = 0.843
)

// ZhangHuang estimates global horizontal irradiance (W/m2) from observed
// climate. cloudCover is a 0-1 sky fraction, relativeHumidity a 0-100
// percentage, temperatures in Celsius, windSpeed in m/s. dryBulbT3Hrs is the
// dry-bulb temperature three hours before the instant of interest. irr0 is
// the extraterrestrial solar constant to use.
func ZhangHuang(altitude, cloudCover, relativeHumidity, dryBulb, dryBulbT3Hrs, windSpeed, irr0 float64) float64 {
	if altitude <= 0 {
		return 0
	}
	sinAlt := math.Sin(degToRad(altitude))
	glob := ((irr0*sinAlt*(zhC0+zhC1*cloudCover+zhC2*cloudCover*cloudCover+
		zhC3*(dryBulb-dryBulbT3Hrs)+zhC4*relativeHumidity+zhC5*windSpeed) + zhDCoeff) / zhKCoeff)
	if glob < 0 {
		return 0
	}
	return glob
}

// ZhangHuangSplit runs the Zhang-Huang regression per timestep and splits the
// resulting global irradiance into direct normal and diffuse horizontal
// components with the DISC model. All slices must be equal length.
func ZhangHuangSplit(altitudes []float64, doys []int, cloudCover, relativeHumidity,
	dryBulb, dryBulbT3Hrs, windSpeed, pressure []float64) (dirNorm, difHoriz []float64) {

	dirNorm = make([]float64, len(altitudes))
	difHoriz = make([]float64, len(altitudes))
	for i, alt := range altitudes {
		irr0 := ExtraterrestrialRadiation(doys[i], 1366.1)
		ghi := ZhangHuang(alt, cloudCover[i], relativeHumidity[i], dryBulb[i],
			dryBulbT3Hrs[i], windSpeed[i], irr0)
		if ghi <= 0 {
			continue
		}
		dni, _, _ := DISC(ghi, alt, doys[i], pressure[i])
		if dni < 0 {
			dni = 0
		}
		dirNorm[i] = dni
		if dhi := ghi - dni*math.Sin(degToRad(alt)); dhi > 0 {
			difHoriz[i] = dhi
		}
	}
	return dirNorm, difHoriz
}

// DISC estimates direct normal irradiance from global horizontal irradiance
// through empirical relationships between the global and direct clearness
// indices. It returns the direct normal irradiance, the clearness index and
// the absolute airmass; altitudes of 3 degrees or less return zeros.
func DISC(ghi, altitude float64, doy int, pressure float64) (dni, kt, am float64) {
	const (
		minAltitude = 3.0
		maxAirmass  = 12.0
	)
	if altitude <= minAltitude {
		return 0, 0, 0
	}

	i0 := ExtraterrestrialRadiation(doy, 1370.0)
	kt = ClearnessIndex(ghi, altitude, i0)

	am = RelativeAirmassKasten(altitude)
	am = AbsoluteAirmass(am, pressure)
	if am > maxAirmass {
		am = maxAirmass
	}

	kt2 := kt * kt
	kt3 := kt2 * kt
	var a, b, c float64
	if kt <= 0.6 {
		a = 0.512 - 1.56*kt + 2.286*kt2 - 2.222*kt3
		b = 0.37 + 0.962*kt
		c = -0.28 + 0.932*kt - 2.048*kt2
	} else {
		a = -5.743 + 21.77*kt - 27.49*kt2 + 11.56*kt3
		b = 41.4 - 118.5*kt + 66.05*kt2 + 31.9*kt3
		c = -47.01 + 184.2*kt - 222.0*kt2 + 73.81*kt3
	}
	deltaKn := a + b*math.Exp(c*am)
	knc := 0.866 - 0.122*am + 0.0121*am*am - 0.000653*am*am*am + 1.4e-05*am*am*am*am
	dni = (knc - deltaKn) * i0
	return dni, kt, am
}

// ExtraterrestrialRadiation returns the radiation incident at the top of the
// atmosphere on the given day of the year, using the Spencer correction for
// the earth-sun distance.
func ExtraterrestrialRadiation(doy int, solarConstant float64) float64 {
	b := (2.0 * math.Pi / 365.0) * float64(doy-1)
	rOverR0Sqrd := 1.00011 + 0.034221*math.Cos(b) + 0.00128*math.Sin(b) +
		0.000719*math.Cos(2*b) + 7.7e-05*math.Sin(2*b)
	return solarConstant * rOverR0Sqrd
}

// ClearnessIndex is the ratio of global to extraterrestrial irradiance on a
// horizontal plane, floored at sin(altitude) = 0.065 and capped at 1.
func ClearnessIndex(ghi, altitude, extraRadiation float64) float64 {
	const minSinAltitude = 0.065
	sinAlt := math.Sin(degToRad(altitude))
	i0h := extraRadiation * math.Max(sinAlt, minSinAltitude)
	kt := ghi / i0h
	if kt < 0 {
		return 0
	}
	if kt > 1 {
		return 1
	}
	return kt
}

// RelativeAirmassKastenYoung returns the relative airmass at sea level for a
// sun altitude in degrees using the Kasten-Young 1989 formula. Altitudes at
// or below the horizon return 0.
func RelativeAirmassKastenYoung(altitude float64) float64 {
	if altitude < 0 {
		return 0
	}
	return 1.0 / (math.Sin(degToRad(altitude)) +
		0.50572*math.Pow(6.07995+altitude, -1.6364))
}

// RelativeAirmassKasten is the older Kasten 1966 airmass formula, used by the
// DISC model.
func RelativeAirmassKasten(altitude float64) float64 {
	if altitude < 0 {
		return 0
	}
	return 1.0 / (math.Sin(degToRad(altitude)) +
		0.15*math.Pow(3.885+altitude, -1.253))
}

// AbsoluteAirmass corrects a relative airmass for site pressure in Pa.
func AbsoluteAirmass(airmassRelative, pressure float64) float64 {
	return airmassRelative * pressure / 101325.0
}

// HorizontalInfrared returns the horizontal infrared radiation intensity
// (W/m2) from opaque sky cover in tenths (0-10) and dry-bulb/dew-point
// temperatures in Celsius.
func HorizontalInfrared(skyCover, dryBulb, dewPoint float64) float64 {
	const sigma = 5.6697e-8

	dbK := dryBulb + 273.15
	dpK := dewPoint + 273.15
	skyEmiss := (0.787 + 0.764*math.Log(dpK/273.15)) *
		(1 + 0.022*skyCover - 0.0035*skyCover*skyCover + 0.00028*skyCover*skyCover*skyCover)
	return skyEmiss * sigma * dbK * dbK * dbK * dbK
}

// SkyTemperature converts a horizontal infrared intensity (W/m2) to a sky
// temperature in Celsius. sourceEmissivity is 1 for an unobstructed sky.
func SkyTemperature(horizIR, sourceEmissivity float64) float64 {
	const sigma = 5.6697e-8
	return math.Pow(horizIR/(sourceEmissivity*sigma), 0.25) - 273.15
}

func degToRad(deg float64) float64 { return deg * math.Pi / 180.0 }
