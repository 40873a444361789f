package sunpath

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"

	"github.com/solarsim/wea/pkg/caltime"
)

// Sun is the position of the sun at one instant. Altitude and Azimuth are in
// degrees; azimuth is measured clockwise from north.
type Sun struct {
	Altitude float64
	Azimuth  float64
	DOY      int
	Datetime caltime.DateTime
}

// IsUp reports whether the sun is above the horizon.
func (s Sun) IsUp() bool { return s.Altitude > 0 }

// Nominal years used to anchor year-agnostic timestamps: any pairing of a
// non-leap and a leap year works, the solar coordinates differ negligibly.
const (
	nominalYear     = 2017
	nominalLeapYear = 2016
)

func degToRad(deg float64) float64 { return deg * math.Pi / 180.0 }
func radToDeg(rad float64) float64 { return rad * 180.0 / math.Pi }
func fixAngle(a float64) float64   { return a - 360.0*math.Floor(a/360.0) }

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

// SunAt returns the sun's position over loc at the given local timestamp.
func SunAt(loc Location, dt caltime.DateTime) Sun {
	year := nominalYear
	if dt.IsLeapYear {
		year = nominalLeapYear
	}
	local := time.Date(year, time.Month(dt.Month), dt.Day, dt.Hour, dt.Minute, 0, 0, time.UTC)
	t := local.Add(-time.Duration(loc.TimeZone * float64(time.Hour)))

	jd := julian.TimeToJD(t)
	T := (jd - 2451545.0) / 36525.0

	// Solar coordinates (NOAA low-accuracy series).
	L0 := fixAngle(280.46646 + T*(36000.76983+T*0.0003032))
	M := fixAngle(357.52911 + T*(35999.05029-T*0.0001537))
	e := 0.016708634 - T*(0.000042037+T*0.0000001267)
	C := math.Sin(degToRad(M))*(1.914602-T*(0.004817+T*0.000014)) +
		math.Sin(degToRad(2*M))*(0.019993-T*0.000101) +
		math.Sin(degToRad(3*M))*0.000289
	sunLong := L0 + C
	omega := 125.04 - 1934.136*T
	lambda := sunLong - 0.00569 - 0.00478*math.Sin(degToRad(omega))
	eps0 := 23 + (26+(21.448-T*(46.815+T*(0.00059-T*0.001813)))/60)/60
	declRad := math.Asin(math.Sin(degToRad(eps0)) * math.Sin(degToRad(lambda)))

	// Equation of time in minutes.
	y := math.Tan(degToRad(eps0)/2) * math.Tan(degToRad(eps0)/2)
	eqTimeMin := radToDeg(y*math.Sin(degToRad(2*L0))-
		2*e*math.Sin(degToRad(M))+
		4*e*y*math.Sin(degToRad(M))*math.Cos(degToRad(2*L0))-
		0.5*y*y*math.Sin(degToRad(4*L0))-
		1.25*e*e*math.Sin(degToRad(2*M))) * 4

	// Hour angle from true solar time.
	utcMin := float64(t.Hour()*60+t.Minute()) + float64(t.Second())/60.0
	timeOffset := 4*loc.Longitude + eqTimeMin
	tst := utcMin + timeOffset
	ha := tst/4 - 180
	haRad := degToRad(ha)

	latRad := degToRad(loc.Latitude)
	cosZen := clamp(math.Sin(latRad)*math.Sin(declRad)+
		math.Cos(latRad)*math.Cos(declRad)*math.Cos(haRad), -1, 1)
	zenRad := math.Acos(cosZen)
	zenDeg := radToDeg(zenRad)
	// Approximate atmospheric refraction near the horizon.
	elDeg := 90 - zenDeg + 0.5667

	azDeg := 0.0
	azDen := math.Cos(latRad) * math.Sin(zenRad)
	if azDen != 0 {
		azNum := math.Sin(declRad) - math.Sin(latRad)*cosZen
		azDeg = radToDeg(math.Acos(clamp(azNum/azDen, -1, 1)))
		if ha > 0 {
			azDeg = 360 - azDeg
		}
	}

	return Sun{
		Altitude: elDeg,
		Azimuth:  azDeg,
		DOY:      dt.DOY(),
		Datetime: dt,
	}
}
