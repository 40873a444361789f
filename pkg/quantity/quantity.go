// Package quantity describes physical quantities, their legal units and the
// conversion arithmetic between them.
//
// A Quantity is a data record, not a class hierarchy: named variants of the
// same physical measurable (e.g. dry-bulb vs. dew-point temperature) share
// one conversion table and differ only in abbreviation, valid range and
// missing-value sentinel.
package quantity

import "math"

type convFunc func(float64) float64

// Quantity identifies one physical measurable.
//
// Units[0] is the canonical unit; every other legal unit has a bidirectional
// conversion path to it. Min and Max bound physically possible values in the
// canonical unit.
type Quantity struct {
	Name         string
	Abbreviation string
	Units        []string
	SIUnits      []string
	IPUnits      []string
	Min          float64
	Max          float64
	PointInTime  bool
	Cumulative   bool

	// MissingValue is the sentinel downstream file collaborators use for
	// absent samples of this quantity, when one is defined.
	MissingValue *float64

	toCanonical   map[string]convFunc
	fromCanonical map[string]convFunc

	// Preferred conversion targets for ToSI/ToIP when the natural partner of
	// a unit is not the first entry of the target side (e.g. kW/m2 pairs
	// with kBtu/h-ft2 rather than Btu/h-ft2).
	siSelect map[string]string
	ipSelect map[string]string
}

// Canonical returns the canonical unit of the quantity.
func (q *Quantity) Canonical() string {
	return q.Units[0]
}

// IsUnitAcceptable reports whether unit is legal for this quantity. The empty
// string is always acceptable: it stands for "no unit declared".
func (q *Quantity) IsUnitAcceptable(unit string) bool {
	if unit == "" {
		return true
	}
	for _, u := range q.Units {
		if u == unit {
			return true
		}
	}
	return false
}

// CheckUnit is the strict form of IsUnitAcceptable. It returns an
// InvalidUnitError naming the legal choices when unit is not acceptable.
func (q *Quantity) CheckUnit(unit string) error {
	if q.IsUnitAcceptable(unit) {
		return nil
	}
	return &InvalidUnitError{Quantity: q.Name, Unit: unit, Legal: q.Units}
}

// Convert converts values from fromUnit to toUnit. Both units must be legal
// for the quantity or an UnsupportedUnitError is returned. Conversion always
// routes through the canonical unit.
func (q *Quantity) Convert(values []float64, toUnit, fromUnit string) ([]float64, error) {
	from, ok := q.toCanonical[fromUnit]
	if !ok {
		return nil, &UnsupportedUnitError{Quantity: q.Name, Unit: fromUnit, Legal: q.Units}
	}
	to, ok := q.fromCanonical[toUnit]
	if !ok {
		return nil, &UnsupportedUnitError{Quantity: q.Name, Unit: toUnit, Legal: q.Units}
	}
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = to(from(v))
	}
	return out, nil
}

// ToSI converts values to the SI side of the quantity and returns the
// resulting unit. Values already carried in an SI unit pass through
// unchanged, not copied.
func (q *Quantity) ToSI(values []float64, fromUnit string) ([]float64, string, error) {
	return q.toSide(values, fromUnit, q.SIUnits, q.siSelect)
}

// ToIP converts values to the IP (imperial) side of the quantity and returns
// the resulting unit. Values already carried in an IP unit pass through
// unchanged, not copied.
func (q *Quantity) ToIP(values []float64, fromUnit string) ([]float64, string, error) {
	return q.toSide(values, fromUnit, q.IPUnits, q.ipSelect)
}

func (q *Quantity) toSide(values []float64, fromUnit string, side []string, sel map[string]string) ([]float64, string, error) {
	if !q.IsUnitAcceptable(fromUnit) || fromUnit == "" {
		return nil, "", &UnsupportedUnitError{Quantity: q.Name, Unit: fromUnit, Legal: q.Units}
	}
	for _, u := range side {
		if u == fromUnit {
			return values, fromUnit, nil
		}
	}
	if len(side) == 0 {
		return values, fromUnit, nil
	}
	target := side[0]
	if sel != nil {
		if t, ok := sel[fromUnit]; ok {
			target = t
		}
	}
	out, err := q.Convert(values, target, fromUnit)
	if err != nil {
		return nil, "", err
	}
	return out, target, nil
}

// IsInRange reports whether every value lies within the physically possible
// range of the quantity. Values are interpreted in unit, or in the canonical
// unit when unit is empty. Missing-value sentinels are skipped.
func (q *Quantity) IsInRange(values []float64, unit string) (bool, error) {
	min, max := q.Min, q.Max
	if unit != "" && unit != q.Canonical() {
		if err := q.CheckUnit(unit); err != nil {
			return false, err
		}
		lo, err := q.Convert([]float64{q.Min}, unit, q.Canonical())
		if err != nil {
			return false, err
		}
		hi, err := q.Convert([]float64{q.Max}, unit, q.Canonical())
		if err != nil {
			return false, err
		}
		min, max = lo[0], hi[0]
		if min > max {
			min, max = max, min
		}
	}
	for _, v := range values {
		if q.MissingValue != nil && v == *q.MissingValue {
			continue
		}
		if v < min || v > max {
			return false, nil
		}
	}
	return true, nil
}

// IsMissing reports whether value is the quantity's missing-value sentinel.
func (q *Quantity) IsMissing(value float64) bool {
	return q.MissingValue != nil && value == *q.MissingValue
}

func (q *Quantity) String() string {
	return q.Name
}

// variant clones the quantity's identity metadata around its shared
// conversion tables.
func (q *Quantity) variant(name, abbreviation string) *Quantity {
	v := *q
	v.Name = name
	v.Abbreviation = abbreviation
	v.MissingValue = nil
	return &v
}

func identity(v float64) float64 { return v }

func missing(v float64) *float64 { return &v }

var unbounded = math.Inf(1)
