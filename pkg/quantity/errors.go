package quantity

import (
	"fmt"
	"strings"
)

// UnsupportedUnitError indicates a conversion was requested between units not
// defined for the quantity.
type UnsupportedUnitError struct {
	Quantity string
	Unit     string
	Legal    []string
}

func (e *UnsupportedUnitError) Error() string {
	return fmt.Sprintf("unit %q is not supported for %s; choose from %s",
		e.Unit, e.Quantity, strings.Join(e.Legal, ", "))
}

// InvalidUnitError indicates a unit is illegal for the quantity it was bound
// to.
type InvalidUnitError struct {
	Quantity string
	Unit     string
	Legal    []string
}

func (e *InvalidUnitError) Error() string {
	return fmt.Sprintf("%q is not an acceptable unit for %s; choose from %s",
		e.Unit, e.Quantity, strings.Join(e.Legal, ", "))
}

// UnknownQuantityError indicates a registry lookup for a quantity name that
// was never registered. Known lists the registered names.
type UnknownQuantityError struct {
	Name  string
	Known []string
}

func (e *UnknownQuantityError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("unknown quantity %q", e.Name)
	}
	return fmt.Sprintf("unknown quantity %q; registered quantities: %s",
		e.Name, strings.Join(e.Known, ", "))
}
