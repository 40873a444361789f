package quantity

import (
	"errors"
	"math"
	"sort"
	"strings"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestTemperatureConvert(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		in       float64
		want     float64
	}{
		{"freezing C to F", "C", "F", 0, 32},
		{"boiling C to F", "C", "F", 100, 212},
		{"body F to C", "F", "C", 98.6, 37},
		{"absolute zero K to C", "K", "C", 0, -273.15},
		{"freezing C to K", "C", "K", 0, 273.15},
		{"F to K routes through C", "F", "K", 32, 273.15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Temperature.Convert([]float64{tt.in}, tt.to, tt.from)
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			if !almostEqual(got[0], tt.want, 1e-9) {
				t.Errorf("Convert(%v %s -> %s) = %v, want %v", tt.in, tt.from, tt.to, got[0], tt.want)
			}
		})
	}
}

func TestConvertUnsupportedUnit(t *testing.T) {
	_, err := Temperature.Convert([]float64{20}, "R", "C")
	var uerr *UnsupportedUnitError
	if !errors.As(err, &uerr) {
		t.Fatalf("Convert() error = %v, want *UnsupportedUnitError", err)
	}
	if uerr.Unit != "R" {
		t.Errorf("UnsupportedUnitError.Unit = %q, want %q", uerr.Unit, "R")
	}
}

func TestEnergyFluxConvert(t *testing.T) {
	got, err := EnergyFlux.Convert([]float64{1}, "W/m2", "Btu/h-ft2")
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if !almostEqual(got[0], 3.15459075, 1e-9) {
		t.Errorf("1 Btu/h-ft2 = %v W/m2, want 3.15459075", got[0])
	}

	got, err = EnergyFlux.Convert([]float64{2000}, "kW/m2", "W/m2")
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if !almostEqual(got[0], 2, 1e-12) {
		t.Errorf("2000 W/m2 = %v kW/m2, want 2", got[0])
	}
}

func TestToSIAndToIP(t *testing.T) {
	// An SI unit passes through untouched.
	vals := []float64{20, 25}
	out, unit, err := Temperature.ToSI(vals, "C")
	if err != nil {
		t.Fatalf("ToSI() error = %v", err)
	}
	if unit != "C" {
		t.Errorf("ToSI unit = %q, want C", unit)
	}
	if &out[0] != &vals[0] {
		t.Error("ToSI on an SI unit should not copy the slice")
	}

	out, unit, err = Temperature.ToIP([]float64{0}, "C")
	if err != nil {
		t.Fatalf("ToIP() error = %v", err)
	}
	if unit != "F" || !almostEqual(out[0], 32, 1e-9) {
		t.Errorf("ToIP(0 C) = %v %s, want 32 F", out[0], unit)
	}

	// kilo-scale flux units pair with each other across systems.
	_, unit, err = EnergyFlux.ToIP([]float64{1}, "kW/m2")
	if err != nil {
		t.Fatalf("ToIP() error = %v", err)
	}
	if unit != "kBtu/h-ft2" {
		t.Errorf("ToIP(kW/m2) unit = %q, want kBtu/h-ft2", unit)
	}
	_, unit, err = EnergyFlux.ToSI([]float64{1}, "kBtu/h-ft2")
	if err != nil {
		t.Fatalf("ToSI() error = %v", err)
	}
	if unit != "kW/m2" {
		t.Errorf("ToSI(kBtu/h-ft2) unit = %q, want kW/m2", unit)
	}
}

func TestCheckUnit(t *testing.T) {
	if err := Irradiance.CheckUnit("W/m2"); err != nil {
		t.Errorf("CheckUnit(W/m2) = %v, want nil", err)
	}
	if err := Irradiance.CheckUnit(""); err != nil {
		t.Errorf("CheckUnit(\"\") = %v, want nil", err)
	}
	err := Irradiance.CheckUnit("lux")
	var ierr *InvalidUnitError
	if !errors.As(err, &ierr) {
		t.Fatalf("CheckUnit(lux) = %v, want *InvalidUnitError", err)
	}
}

func TestIsInRange(t *testing.T) {
	ok, err := Temperature.IsInRange([]float64{-300}, "C")
	if err != nil {
		t.Fatalf("IsInRange() error = %v", err)
	}
	if ok {
		t.Error("-300 C should be out of range")
	}

	// Missing sentinels are skipped.
	ok, err = DryBulbTemperature.IsInRange([]float64{99.9, 21.5}, "C")
	if err != nil {
		t.Fatalf("IsInRange() error = %v", err)
	}
	if !ok {
		t.Error("sentinel 99.9 should be skipped by range checks")
	}

	// Bounds convert with the values.
	ok, err = Temperature.IsInRange([]float64{-500}, "F")
	if err != nil {
		t.Fatalf("IsInRange() error = %v", err)
	}
	if ok {
		t.Error("-500 F is below absolute zero")
	}
	ok, err = RelativeHumidity.IsInRange([]float64{0.5}, "fraction")
	if err != nil {
		t.Fatalf("IsInRange() error = %v", err)
	}
	if !ok {
		t.Error("0.5 fraction is a legal relative humidity")
	}
}

func TestVariantsShareConversions(t *testing.T) {
	got, err := DirectNormalIrradiance.Convert([]float64{1}, "W/m2", "kW/m2")
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if !almostEqual(got[0], 1000, 1e-12) {
		t.Errorf("variant conversion = %v, want 1000", got[0])
	}
	if DirectNormalIrradiance.Min != 0 {
		t.Errorf("irradiance Min = %v, want 0", DirectNormalIrradiance.Min)
	}
	if !DirectNormalIrradiance.IsMissing(9999) {
		t.Error("9999 should be the irradiance missing sentinel")
	}
	if Temperature.MissingValue != nil {
		t.Error("base Temperature should carry no missing sentinel")
	}
}

func TestLookup(t *testing.T) {
	q, err := Lookup("Direct Normal Irradiance")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if q != DirectNormalIrradiance {
		t.Error("Lookup should return the registered definition")
	}

	_, err = Lookup("Banana Equivalent Dose")
	var kerr *UnknownQuantityError
	if !errors.As(err, &kerr) {
		t.Fatalf("Lookup() error = %v, want *UnknownQuantityError", err)
	}
	// A failed lookup names the registered quantities.
	if len(kerr.Known) == 0 {
		t.Error("UnknownQuantityError.Known should list the registry")
	}
	if !strings.Contains(kerr.Error(), "Temperature") {
		t.Errorf("error %q should name the registered quantities", kerr.Error())
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if !sort.StringsAreSorted(names) {
		t.Errorf("Names() = %v, want sorted", names)
	}
	found := false
	for _, n := range names {
		if n == "Direct Normal Irradiance" {
			found = true
		}
	}
	if !found {
		t.Error("Names() should include the irradiance presets")
	}
}
