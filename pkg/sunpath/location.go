// Package sunpath computes solar position for a location and a nominal-year
// timestamp.
package sunpath

import "fmt"

// Location is a site on earth. Longitude is positive east, TimeZone is the
// UTC offset in hours, Elevation is in meters.
type Location struct {
	City      string  `json:"city"`
	Country   string  `json:"country,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	TimeZone  float64 `json:"time_zone"`
	Elevation float64 `json:"elevation"`
}

func (l Location) String() string {
	return fmt.Sprintf("%s (%.2f, %.2f)", l.City, l.Latitude, l.Longitude)
}
