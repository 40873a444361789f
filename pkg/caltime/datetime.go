// Package caltime provides nominal-year calendar arithmetic for annual
// climate series: a month/day/hour timestamp with hour-of-year indexing, and
// the analysis window that scopes a series in time.
package caltime

import "fmt"

var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// DateTime is a point in a nominal year. It has no year component: annual
// series are year-agnostic, distinguished only by the leap-year flag.
type DateTime struct {
	Month      int `json:"month"`
	Day        int `json:"day"`
	Hour       int `json:"hour"`
	Minute     int `json:"minute"`
	IsLeapYear bool `json:"is_leap_year,omitempty"`
}

func daysInMonth(month int, leap bool) int {
	if month == 2 && leap {
		return 29
	}
	return monthDays[month-1]
}

// HourCount returns the number of hours in a nominal year.
func HourCount(isLeapYear bool) int {
	if isLeapYear {
		return 8784
	}
	return 8760
}

// FromMOY builds a DateTime from a minute of the year.
func FromMOY(moy float64, isLeapYear bool) DateTime {
	return FromHOY(moy/60.0, isLeapYear)
}

// FromHOY builds a DateTime from an hour of the year, 0 at Jan-1 00:00.
func FromHOY(hoy float64, isLeapYear bool) DateTime {
	totalMinutes := int(hoy*60 + 0.5)
	doy := totalMinutes / 1440
	minuteOfDay := totalMinutes % 1440

	month := 1
	for doy >= daysInMonth(month, isLeapYear) {
		doy -= daysInMonth(month, isLeapYear)
		month++
	}
	return DateTime{
		Month:      month,
		Day:        doy + 1,
		Hour:       minuteOfDay / 60,
		Minute:     minuteOfDay % 60,
		IsLeapYear: isLeapYear,
	}
}

// DOY returns the day of the year, 1 at Jan-1.
func (dt DateTime) DOY() int {
	doy := dt.Day
	for m := 1; m < dt.Month; m++ {
		doy += daysInMonth(m, dt.IsLeapYear)
	}
	return doy
}

// HOY returns the hour of the year, 0 at Jan-1 00:00.
func (dt DateTime) HOY() float64 {
	return float64((dt.DOY()-1)*24+dt.Hour) + float64(dt.Minute)/60.0
}

// MOY returns the minute of the year.
func (dt DateTime) MOY() float64 {
	return dt.HOY() * 60.0
}

// FloatHour returns the hour of the day as a decimal.
func (dt DateTime) FloatHour() float64 {
	return float64(dt.Hour) + float64(dt.Minute)/60.0
}

// AddMinutes returns the DateTime shifted forward by the given number of
// minutes, wrapping across the year boundary.
func (dt DateTime) AddMinutes(minutes int) DateTime {
	yearMinutes := HourCount(dt.IsLeapYear) * 60
	moy := (int(dt.MOY()+0.5) + minutes) % yearMinutes
	if moy < 0 {
		moy += yearMinutes
	}
	return FromMOY(float64(moy), dt.IsLeapYear)
}

func (dt DateTime) String() string {
	return fmt.Sprintf("%d %s %02d:%02d", dt.Day, monthNames[dt.Month-1], dt.Hour, dt.Minute)
}
