package wea

import "fmt"

// AnnualLengthError indicates a series does not hold the number of samples an
// annual series at the given timestep requires. When the actual length is an
// exact multiple of the hour count, SuggestedTimestep carries the timestep
// that would have matched.
type AnnualLengthError struct {
	Name              string
	Timestep          int
	Expected          int
	Actual            int
	SuggestedTimestep int
}

func (e *AnnualLengthError) Error() string {
	msg := fmt.Sprintf("for timestep %d, %d samples of %s are expected; %d provided",
		e.Timestep, e.Expected, e.Name, e.Actual)
	if e.SuggestedTimestep > 0 {
		msg += fmt.Sprintf(" (did you forget to set the timestep to %d?)", e.SuggestedTimestep)
	}
	return msg
}

// MissingDataError indicates a required monthly input was absent.
type MissingDataError struct {
	Field string
	Month int
}

func (e *MissingDataError) Error() string {
	return fmt.Sprintf("missing %s for month %d", e.Field, e.Month)
}
