package quantity

// The quantity definitions below are data, not types: each family builds one
// conversion table and its named variants share it.

func buildTemperature() *Quantity {
	q := &Quantity{
		Name:         "Temperature",
		Abbreviation: "T",
		Units:        []string{"C", "F", "K"},
		SIUnits:      []string{"C", "K"},
		IPUnits:      []string{"F"},
		Min:          -273.15,
		Max:          unbounded,
		PointInTime:  true,
	}
	q.toCanonical = map[string]convFunc{
		"C": identity,
		"F": func(v float64) float64 { return (v - 32.0) * 5.0 / 9.0 },
		"K": func(v float64) float64 { return v - 273.15 },
	}
	q.fromCanonical = map[string]convFunc{
		"C": identity,
		"F": func(v float64) float64 { return v*9.0/5.0 + 32.0 },
		"K": func(v float64) float64 { return v + 273.15 },
	}
	return q
}

func buildEnergyFlux() *Quantity {
	q := &Quantity{
		Name:         "Energy Flux",
		Abbreviation: "J",
		Units:        []string{"W/m2", "Btu/h-ft2", "kW/m2", "kBtu/h-ft2", "W/ft2", "met"},
		SIUnits:      []string{"W/m2", "kW/m2", "met"},
		IPUnits:      []string{"Btu/h-ft2", "kBtu/h-ft2", "met"},
		Min:          -unbounded,
		Max:          unbounded,
	}
	q.toCanonical = map[string]convFunc{
		"W/m2":       identity,
		"Btu/h-ft2":  func(v float64) float64 { return v * 3.15459075 },
		"kW/m2":      func(v float64) float64 { return v * 1000 },
		"kBtu/h-ft2": func(v float64) float64 { return v * 3154.59075 },
		"W/ft2":      func(v float64) float64 { return v * 10.7639 },
		"met":        func(v float64) float64 { return v * 58.2 },
	}
	q.fromCanonical = map[string]convFunc{
		"W/m2":       identity,
		"Btu/h-ft2":  func(v float64) float64 { return v / 3.15459075 },
		"kW/m2":      func(v float64) float64 { return v / 1000 },
		"kBtu/h-ft2": func(v float64) float64 { return v / 3154.59075 },
		"W/ft2":      func(v float64) float64 { return v / 10.7639 },
		"met":        func(v float64) float64 { return v / 58.2 },
	}
	// kilo-scale units pair with each other across systems.
	q.siSelect = map[string]string{"kBtu/h-ft2": "kW/m2"}
	q.ipSelect = map[string]string{"kW/m2": "kBtu/h-ft2"}
	return q
}

func buildSpeed() *Quantity {
	q := &Quantity{
		Name:         "Speed",
		Abbreviation: "v",
		Units:        []string{"m/s", "mph", "km/h", "knot", "ft/s"},
		SIUnits:      []string{"m/s", "km/h"},
		IPUnits:      []string{"mph", "ft/s"},
		Min:          0,
		Max:          unbounded,
		PointInTime:  true,
	}
	q.toCanonical = map[string]convFunc{
		"m/s":  identity,
		"mph":  func(v float64) float64 { return v / 2.23694 },
		"km/h": func(v float64) float64 { return v / 3.6 },
		"knot": func(v float64) float64 { return v / 1.94384 },
		"ft/s": func(v float64) float64 { return v / 3.28084 },
	}
	q.fromCanonical = map[string]convFunc{
		"m/s":  identity,
		"mph":  func(v float64) float64 { return v * 2.23694 },
		"km/h": func(v float64) float64 { return v * 3.6 },
		"knot": func(v float64) float64 { return v * 1.94384 },
		"ft/s": func(v float64) float64 { return v * 3.28084 },
	}
	return q
}

func buildPercentage() *Quantity {
	q := &Quantity{
		Name:         "Percentage",
		Abbreviation: "Pct",
		Units:        []string{"%", "fraction", "tenths", "thousandths"},
		SIUnits:      []string{"%", "fraction", "tenths", "thousandths"},
		IPUnits:      []string{"%", "fraction", "tenths", "thousandths"},
		Min:          -unbounded,
		Max:          unbounded,
		PointInTime:  true,
	}
	q.toCanonical = map[string]convFunc{
		"%":           identity,
		"fraction":    func(v float64) float64 { return v * 100 },
		"tenths":      func(v float64) float64 { return v * 10 },
		"thousandths": func(v float64) float64 { return v / 10 },
	}
	q.fromCanonical = map[string]convFunc{
		"%":           identity,
		"fraction":    func(v float64) float64 { return v / 100 },
		"tenths":      func(v float64) float64 { return v / 10 },
		"thousandths": func(v float64) float64 { return v * 10 },
	}
	return q
}

func buildPressure() *Quantity {
	q := &Quantity{
		Name:         "Pressure",
		Abbreviation: "P",
		Units:        []string{"Pa", "inHg", "atm", "bar", "Torr", "psi"},
		SIUnits:      []string{"Pa", "bar"},
		IPUnits:      []string{"inHg", "psi"},
		Min:          0,
		Max:          unbounded,
		PointInTime:  true,
	}
	q.toCanonical = map[string]convFunc{
		"Pa":   identity,
		"inHg": func(v float64) float64 { return v * 3386.39 },
		"atm":  func(v float64) float64 { return v * 101325 },
		"bar":  func(v float64) float64 { return v * 100000 },
		"Torr": func(v float64) float64 { return v * 133.322 },
		"psi":  func(v float64) float64 { return v * 6894.76 },
	}
	q.fromCanonical = map[string]convFunc{
		"Pa":   identity,
		"inHg": func(v float64) float64 { return v / 3386.39 },
		"atm":  func(v float64) float64 { return v / 101325 },
		"bar":  func(v float64) float64 { return v / 100000 },
		"Torr": func(v float64) float64 { return v / 133.322 },
		"psi":  func(v float64) float64 { return v / 6894.76 },
	}
	return q
}

func irradianceVariant(base *Quantity, name, abbreviation string) *Quantity {
	v := base.variant(name, abbreviation)
	v.Min = 0
	v.MissingValue = missing(9999)
	return v
}

// Temperature quantities.
var (
	Temperature                  = register(buildTemperature())
	DryBulbTemperature           = register(withMissing(Temperature.variant("Dry Bulb Temperature", "DBT"), 99.9))
	DewPointTemperature          = register(withMissing(Temperature.variant("Dew Point Temperature", "DPT"), 99.9))
	SkyTemperature               = register(Temperature.variant("Sky Temperature", "Tsky"))
	AirTemperature               = register(Temperature.variant("Air Temperature", "Tair"))
	RadiantTemperature           = register(Temperature.variant("Radiant Temperature", "Trad"))
	OperativeTemperature         = register(Temperature.variant("Operative Temperature", "To"))
	MeanRadiantTemperature       = register(Temperature.variant("Mean Radiant Temperature", "MRT"))
	StandardEffectiveTemperature = register(Temperature.variant("Standard Effective Temperature", "SET"))
	UniversalThermalClimateIndex = register(Temperature.variant("Universal Thermal Climate Index", "UTCI"))
)

// Energy flux / irradiance quantities.
var (
	EnergyFlux                 = register(buildEnergyFlux())
	Irradiance                 = register(irradianceVariant(EnergyFlux, "Irradiance", "Qsolar"))
	GlobalHorizontalIrradiance = register(irradianceVariant(EnergyFlux, "Global Horizontal Irradiance", "GHIr"))
	DirectNormalIrradiance     = register(irradianceVariant(EnergyFlux, "Direct Normal Irradiance", "DNIr"))
	DiffuseHorizontalIrradiance = register(
		irradianceVariant(EnergyFlux, "Diffuse Horizontal Irradiance", "DHIr"))
	DirectHorizontalIrradiance = register(
		irradianceVariant(EnergyFlux, "Direct Horizontal Irradiance", "DHIr"))
)

// Climate observation quantities consumed by the irradiance regressions.
var (
	Speed            = register(buildSpeed())
	WindSpeed        = register(withMissing(Speed.variant("Wind Speed", "WS"), 999))
	Percentage       = register(buildPercentage())
	RelativeHumidity = register(withMissing(boundedVariant(Percentage, "Relative Humidity", "RH", 0, 100), 999))
	TotalSkyCover    = register(withMissing(boundedVariant(Percentage, "Total Sky Cover", "CC", 0, 100), 99))
	Pressure         = register(buildPressure())
	AtmosphericStationPressure = register(
		withMissing(Pressure.variant("Atmospheric Station Pressure", "Patm"), 999999))
)

func withMissing(q *Quantity, sentinel float64) *Quantity {
	q.MissingValue = missing(sentinel)
	return q
}

func boundedVariant(base *Quantity, name, abbreviation string, min, max float64) *Quantity {
	v := base.variant(name, abbreviation)
	v.Min, v.Max = min, max
	return v
}
