package wea

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/solarsim/wea/pkg/quantity"
	"github.com/solarsim/wea/pkg/series"
	"github.com/solarsim/wea/pkg/sunpath"
)

// Reflectance is a ground reflectance fraction (0-1).
type Reflectance float64

// Named surface-albedo presets.
const (
	ReflectanceUrban      Reflectance = 0.18
	ReflectanceGrass      Reflectance = 0.20
	ReflectanceFreshGrass Reflectance = 0.26
	ReflectanceSoil       Reflectance = 0.17
	ReflectanceSand       Reflectance = 0.40
	ReflectanceSnow       Reflectance = 0.65
	ReflectanceFreshSnow  Reflectance = 0.75
	ReflectanceAsphalt    Reflectance = 0.12
	ReflectanceConcrete   Reflectance = 0.30
	ReflectanceSea        Reflectance = 0.06
)

var albedoPresets = map[string]Reflectance{
	"urban":       ReflectanceUrban,
	"grass":       ReflectanceGrass,
	"fresh grass": ReflectanceFreshGrass,
	"soil":        ReflectanceSoil,
	"sand":        ReflectanceSand,
	"snow":        ReflectanceSnow,
	"fresh snow":  ReflectanceFreshSnow,
	"asphalt":     ReflectanceAsphalt,
	"concrete":    ReflectanceConcrete,
	"sea":         ReflectanceSea,
}

// ReflectanceFromString resolves a named surface-albedo preset, or parses a
// literal fraction.
func ReflectanceFromString(s string) (Reflectance, error) {
	if r, ok := albedoPresets[strings.ToLower(strings.TrimSpace(s))]; ok {
		return r, nil
	}
	var v float64
	if _, err := fmt.Sscanf(strings.TrimSpace(s), "%g", &v); err == nil {
		return Reflectance(v), nil
	}
	names := make([]string, 0, len(albedoPresets))
	for name := range albedoPresets {
		names = append(names, name)
	}
	return 0, fmt.Errorf("unknown ground reflectance %q; use a fraction or one of: %s",
		s, strings.Join(names, ", "))
}

// DirectionalIrradiance projects the year of irradiance onto a surface
// facing the given altitude and azimuth (degrees). The default orientation,
// altitude 90, faces straight up and reproduces the global horizontal
// irradiance.
//
// The direct contribution reaches the surface only while the sun is above
// the horizon and within 90 degrees of the surface normal. The diffuse
// contribution assumes an isotropic sky dome unless isotropic is false, in
// which case a horizon-brightening weight shifts diffuse irradiance toward
// the solar disc. The reflected contribution scales the global horizontal
// irradiance by the ground reflectance and the fraction of the ground the
// surface sees.
//
// Returns the total, direct, diffuse and reflected series, co-indexed with
// the Wea.
func (w *Wea) DirectionalIrradiance(altitude, azimuth float64, ground Reflectance, isotropic bool) (total, direct, diffuse, reflected *series.Series) {
	normal := polToCart(degToRad(azimuth), degToRad(altitude))
	sinSrfAlt := math.Sin(degToRad(altitude))

	total = w.derivedSeries(quantity.Irradiance)
	direct = w.derivedSeries(quantity.Irradiance)
	diffuse = w.derivedSeries(quantity.Irradiance)
	reflected = w.derivedSeries(quantity.Irradiance)

	for i := 0; i < w.directNormal.Len(); i++ {
		dt := w.directNormal.Datetime(i)
		dnr := w.directNormal.Value(i)
		dhr := w.diffuseHorizontal.Value(i)

		sun := sunpath.SunAt(w.Location, dt)
		sunVec := polToCart(degToRad(sun.Azimuth), degToRad(sun.Altitude))
		cosAngle := clampUnit(r3.Cos(sunVec, normal))
		angle := math.Acos(cosAngle)

		srfDir := 0.0
		if sun.IsUp() && angle < math.Pi/2 {
			srfDir = dnr * cosAngle
		}

		var srfDif float64
		if isotropic {
			srfDif = dhr * (sinSrfAlt/2 + 0.5)
		} else {
			y := math.Max(0.45, 0.55+0.437*cosAngle+0.313*cosAngle*cosAngle)
			tilt := degToRad(math.Abs(90 - altitude))
			srfDif = dhr * (y*math.Sin(tilt) + math.Cos(tilt))
		}

		glob := dhr + dnr*math.Sin(degToRad(sun.Altitude))
		srfRef := glob * float64(ground) * (0.5 - sinSrfAlt/2)

		direct.Append(srfDir, dt)
		diffuse.Append(srfDif, dt)
		reflected.Append(srfRef, dt)
		total.Append(srfDir+srfDif+srfRef, dt)
	}
	return total, direct, diffuse, reflected
}

// polToCart converts polar coordinates (radians) to a unit vector. North is
// +Y, east is +X, up is +Z.
func polToCart(phi, theta float64) r3.Vec {
	mult := math.Cos(theta)
	return r3.Vec{
		X: math.Sin(phi) * mult,
		Y: math.Cos(phi) * mult,
		Z: math.Sin(theta),
	}
}

func clampUnit(v float64) float64 {
	return math.Min(1, math.Max(-1, v))
}
