package caltime

import (
	"fmt"
	"strings"
)

// AnalysisPeriod scopes an annual series in time: a month/day span, an hour
// band, the samples-per-hour timestep, and the leap-year flag. The canonical
// text form is "1/1 to 12/31 between 0 to 23 @1", with a trailing "*" for
// leap years.
type AnalysisPeriod struct {
	StMonth    int  `json:"st_month"`
	StDay      int  `json:"st_day"`
	StHour     int  `json:"st_hour"`
	EndMonth   int  `json:"end_month"`
	EndDay     int  `json:"end_day"`
	EndHour    int  `json:"end_hour"`
	Timestep   int  `json:"timestep"`
	IsLeapYear bool `json:"is_leap_year,omitempty"`
}

// Annual returns the full-year analysis period at the given timestep.
func Annual(timestep int, isLeapYear bool) AnalysisPeriod {
	if timestep < 1 {
		timestep = 1
	}
	return AnalysisPeriod{
		StMonth: 1, StDay: 1, StHour: 0,
		EndMonth: 12, EndDay: 31, EndHour: 23,
		Timestep:   timestep,
		IsLeapYear: isLeapYear,
	}
}

// IsAnnual reports whether the period spans the entire year at all hours.
func (p AnalysisPeriod) IsAnnual() bool {
	return p.StMonth == 1 && p.StDay == 1 && p.StHour == 0 &&
		p.EndMonth == 12 && p.EndDay == 31 && p.EndHour == 23
}

func (p AnalysisPeriod) String() string {
	leap := ""
	if p.IsLeapYear {
		leap = "*"
	}
	return fmt.Sprintf("%d/%d to %d/%d between %d to %d @%d%s",
		p.StMonth, p.StDay, p.EndMonth, p.EndDay, p.StHour, p.EndHour, p.Timestep, leap)
}

// ParsePeriod is the inverse of String.
func ParsePeriod(s string) (AnalysisPeriod, error) {
	var p AnalysisPeriod
	trimmed := strings.TrimSpace(s)
	if strings.HasSuffix(trimmed, "*") {
		p.IsLeapYear = true
		trimmed = strings.TrimSuffix(trimmed, "*")
	}
	_, err := fmt.Sscanf(trimmed, "%d/%d to %d/%d between %d to %d @%d",
		&p.StMonth, &p.StDay, &p.EndMonth, &p.EndDay, &p.StHour, &p.EndHour, &p.Timestep)
	if err != nil {
		return AnalysisPeriod{}, fmt.Errorf("parse analysis period %q: %w", s, err)
	}
	if err := p.validate(); err != nil {
		return AnalysisPeriod{}, err
	}
	return p, nil
}

func (p AnalysisPeriod) validate() error {
	if p.StMonth < 1 || p.StMonth > 12 || p.EndMonth < 1 || p.EndMonth > 12 {
		return fmt.Errorf("analysis period month out of range: %s", p)
	}
	if p.StDay < 1 || p.StDay > 31 || p.EndDay < 1 || p.EndDay > 31 {
		return fmt.Errorf("analysis period day out of range: %s", p)
	}
	if p.StHour < 0 || p.StHour > 23 || p.EndHour < 0 || p.EndHour > 23 {
		return fmt.Errorf("analysis period hour out of range: %s", p)
	}
	if p.Timestep < 1 {
		return fmt.Errorf("analysis period timestep must be >= 1: %s", p)
	}
	return nil
}
