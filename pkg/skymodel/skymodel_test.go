package skymodel

import (
	"math"
	"testing"
)

func TestASHRAEClearSky(t *testing.T) {
	dni, dhi := ASHRAEClearSky([]float64{90, 30, -10}, 6, 1.0)

	// At zenith in June: A/exp(B) = 1092/exp(0.185).
	want := 1092 / math.Exp(0.185)
	if math.Abs(dni[0]-want) > 1e-6 {
		t.Errorf("zenith direct normal = %v, want %v", dni[0], want)
	}
	if math.Abs(dhi[0]-0.17*want) > 1e-6 {
		t.Errorf("zenith diffuse horizontal = %v, want %v", dhi[0], 0.17*want)
	}

	// Diffuse scales with sin(altitude).
	wantDif := 0.17 * dni[1] * math.Sin(30*math.Pi/180)
	if math.Abs(dhi[1]-wantDif) > 1e-6 {
		t.Errorf("30 deg diffuse horizontal = %v, want %v", dhi[1], wantDif)
	}

	// Night-time altitudes yield zero.
	if dni[2] != 0 || dhi[2] != 0 {
		t.Errorf("night sample = (%v, %v), want zeros", dni[2], dhi[2])
	}

	// skyClearness scales the output uniformly.
	half, _ := ASHRAEClearSky([]float64{90}, 6, 0.5)
	if math.Abs(half[0]-dni[0]/2) > 1e-9 {
		t.Errorf("half clearness direct normal = %v, want %v", half[0], dni[0]/2)
	}
}

func TestASHRAERevisedClearSky(t *testing.T) {
	// Typical optical depths for a temperate site.
	dni, dhi := ASHRAERevisedClearSky([]float64{90, 20, 0}, 0.3, 2.4)

	// Near zenith the airmass is ~1, so dni ~ 1415*exp(-tauBeam).
	want := 1415 * math.Exp(-0.3)
	if math.Abs(dni[0]-want) > 5 {
		t.Errorf("zenith direct normal = %v, want ~%v", dni[0], want)
	}
	if dhi[0] <= 0 || dhi[0] >= dni[0] {
		t.Errorf("zenith diffuse = %v, want positive and below direct %v", dhi[0], dni[0])
	}

	// Lower sun means more airmass, less beam.
	if dni[1] >= dni[0] {
		t.Errorf("direct at 20 deg (%v) should be below zenith (%v)", dni[1], dni[0])
	}
	if dni[2] != 0 || dhi[2] != 0 {
		t.Errorf("horizon sample = (%v, %v), want zeros", dni[2], dhi[2])
	}
}

func TestZhangHuang(t *testing.T) {
	irr0 := ExtraterrestrialRadiation(172, 1366.1)

	clear := ZhangHuang(60, 0, 40, 28, 24, 2, irr0)
	overcast := ZhangHuang(60, 1, 90, 20, 20, 2, irr0)
	if clear <= 0 {
		t.Fatalf("clear-sky global = %v, want positive", clear)
	}
	if overcast >= clear {
		t.Errorf("overcast global (%v) should be below clear (%v)", overcast, clear)
	}

	if got := ZhangHuang(-5, 0, 40, 28, 24, 2, irr0); got != 0 {
		t.Errorf("night global = %v, want 0", got)
	}
	// The regression floors at zero rather than returning negatives.
	if got := ZhangHuang(0.1, 1, 100, 10, 25, 0, irr0); got < 0 {
		t.Errorf("regression returned a negative irradiance %v", got)
	}
}

func TestDISC(t *testing.T) {
	dni, kt, am := DISC(800, 60, 172, 101325)
	if kt <= 0 || kt > 1 {
		t.Errorf("clearness index = %v, want in (0, 1]", kt)
	}
	if am <= 0 || am > 12 {
		t.Errorf("airmass = %v, want in (0, 12]", am)
	}
	if dni <= 0 || dni > 1100 {
		t.Errorf("direct normal = %v, want a plausible daytime value", dni)
	}

	// Low sun returns zeros.
	dni, kt, am = DISC(500, 3, 172, 101325)
	if dni != 0 || kt != 0 || am != 0 {
		t.Errorf("below-threshold altitude = (%v, %v, %v), want zeros", dni, kt, am)
	}

	// Less global means less direct.
	hi, _, _ := DISC(900, 60, 172, 101325)
	lo, _, _ := DISC(300, 60, 172, 101325)
	if lo >= hi {
		t.Errorf("direct normal for ghi 300 (%v) should be below ghi 900 (%v)", lo, hi)
	}
}

func TestExtraterrestrialRadiation(t *testing.T) {
	perihelion := ExtraterrestrialRadiation(1, 1366.1)
	aphelion := ExtraterrestrialRadiation(185, 1366.1)
	if perihelion <= aphelion {
		t.Errorf("early January (%v) should exceed early July (%v)", perihelion, aphelion)
	}
	if perihelion < 1400 || perihelion > 1420 {
		t.Errorf("perihelion radiation = %v, want ~1412", perihelion)
	}
	if aphelion < 1315 || aphelion > 1335 {
		t.Errorf("aphelion radiation = %v, want ~1322", aphelion)
	}
}

func TestClearnessIndex(t *testing.T) {
	if got := ClearnessIndex(700, 60, 1400); math.Abs(got-700/(1400*math.Sin(math.Pi/3))) > 1e-9 {
		t.Errorf("clearness index = %v", got)
	}
	if got := ClearnessIndex(5000, 60, 1400); got != 1 {
		t.Errorf("clearness index cap = %v, want 1", got)
	}
	if got := ClearnessIndex(-10, 60, 1400); got != 0 {
		t.Errorf("clearness index floor = %v, want 0", got)
	}
	// The sin(altitude) floor keeps twilight indices finite.
	low := ClearnessIndex(50, 0.5, 1400)
	if math.IsInf(low, 0) || low > 1 {
		t.Errorf("twilight clearness index = %v", low)
	}
}

func TestAirmass(t *testing.T) {
	if got := RelativeAirmassKastenYoung(90); math.Abs(got-1) > 0.01 {
		t.Errorf("zenith airmass = %v, want ~1", got)
	}
	if got := RelativeAirmassKastenYoung(30); got < 1.9 || got > 2.1 {
		t.Errorf("airmass at 30 deg = %v, want ~2", got)
	}
	if got := RelativeAirmassKastenYoung(-1); got != 0 {
		t.Errorf("below-horizon airmass = %v, want 0", got)
	}
	if got := RelativeAirmassKasten(90); math.Abs(got-1) > 0.01 {
		t.Errorf("Kasten zenith airmass = %v, want ~1", got)
	}
	if got := AbsoluteAirmass(2, 101325.0/2); math.Abs(got-1) > 1e-9 {
		t.Errorf("absolute airmass at half pressure = %v, want 1", got)
	}
}

func TestHorizontalInfraredAndSkyTemperature(t *testing.T) {
	clear := HorizontalInfrared(0, 20, 10)
	cloudy := HorizontalInfrared(10, 20, 10)
	if clear <= 0 {
		t.Fatalf("clear-sky infrared = %v, want positive", clear)
	}
	if cloudy <= clear {
		t.Errorf("overcast infrared (%v) should exceed clear (%v)", cloudy, clear)
	}

	// A blackbody at 10 C reads back as a 10 C sky.
	const sigma = 5.6697e-8
	bbK := 10 + 273.15
	hir := sigma * bbK * bbK * bbK * bbK
	if got := SkyTemperature(hir, 1); math.Abs(got-10) > 1e-9 {
		t.Errorf("SkyTemperature round trip = %v, want 10", got)
	}

	// A clear sky is colder than the air beneath it.
	if got := SkyTemperature(clear, 1); got >= 20 {
		t.Errorf("clear sky temperature = %v, want below the 20 C dry bulb", got)
	}
}
