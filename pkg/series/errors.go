package series

import "fmt"

// FormatError indicates malformed textual input: a compact header string or a
// weather-data file that does not match its expected layout. It wraps the
// underlying parse failure.
type FormatError struct {
	Input string
	Err   error
}

func (e *FormatError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("malformed input %q", e.Input)
	}
	return fmt.Sprintf("malformed input %q: %v", e.Input, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
