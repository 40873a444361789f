package wea

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/solarsim/wea/internal/log"
	"github.com/solarsim/wea/pkg/series"
	"github.com/solarsim/wea/pkg/sunpath"
)

// FromFile builds a Wea from a native WEA text file: five fixed header lines
// (place, latitude, longitude, time_zone, site_elevation), a units line, then
// one data line per sample whose last two whitespace-separated integers are
// the direct-normal and diffuse-horizontal irradiance. Longitude and time
// zone are stored sign-negated in the file (time zone in 15-degrees-per-hour
// units).
func FromFile(path string, timestep int, isLeapYear bool) (*Wea, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open wea file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	if !scanner.Scan() {
		return nil, &series.FormatError{Input: path, Err: fmt.Errorf("empty file")}
	}
	first := scanner.Text()
	if !strings.HasPrefix(first, "place") {
		return nil, &series.FormatError{Input: first,
			Err: fmt.Errorf("%s is not a valid wea file: missing place header", path)}
	}

	var loc sunpath.Location
	loc.City = strings.Join(strings.Fields(first)[1:], " ")

	readHeaderValue := func(name string) (float64, error) {
		if !scanner.Scan() {
			return 0, &series.FormatError{Input: path,
				Err: fmt.Errorf("truncated header: missing %s line", name)}
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			return 0, &series.FormatError{Input: scanner.Text(),
				Err: fmt.Errorf("empty %s line", name)}
		}
		v, err := strconv.ParseFloat(fields[len(fields)-1], 64)
		if err != nil {
			return 0, &series.FormatError{Input: scanner.Text(), Err: err}
		}
		return v, nil
	}

	if loc.Latitude, err = readHeaderValue("latitude"); err != nil {
		return nil, err
	}
	lon, err := readHeaderValue("longitude")
	if err != nil {
		return nil, err
	}
	loc.Longitude = -lon
	tz, err := readHeaderValue("time_zone")
	if err != nil {
		return nil, err
	}
	loc.TimeZone = -tz / 15.0
	if loc.Elevation, err = readHeaderValue("site_elevation"); err != nil {
		return nil, err
	}
	// units line carries no information we use
	scanner.Scan()

	var directNormal, diffuseHorizontal []float64
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, &series.FormatError{Input: line,
				Err: fmt.Errorf("data line needs at least 2 fields")}
		}
		dir, err := strconv.ParseFloat(fields[len(fields)-2], 64)
		if err != nil {
			return nil, &series.FormatError{Input: line, Err: err}
		}
		dif, err := strconv.ParseFloat(fields[len(fields)-1], 64)
		if err != nil {
			return nil, &series.FormatError{Input: line, Err: err}
		}
		directNormal = append(directNormal, dir)
		diffuseHorizontal = append(diffuseHorizontal, dif)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read wea file: %w", err)
	}

	return FromValues(loc, directNormal, diffuseHorizontal, timestep, isLeapYear)
}

// fileHeader renders the five fixed header lines plus the units line.
func (w *Wea) fileHeader() string {
	return fmt.Sprintf("place %s\n", w.Location.City) +
		fmt.Sprintf("latitude %.2f\n", w.Location.Latitude) +
		fmt.Sprintf("longitude %.2f\n", -w.Location.Longitude) +
		fmt.Sprintf("time_zone %d\n", int(-w.Location.TimeZone*15)) +
		fmt.Sprintf("site_elevation %.1f\n", w.Location.Elevation) +
		"weather_data_file_units 1\n"
}

// WriteFile writes the WEA text file. With a nil hoys slice the full year is
// dumped; otherwise only the requested hour-of-year values are written, and
// any hour with no corresponding sample is skipped with a logged warning
// rather than failing the write. When writeHours is set, a sidecar file with
// an .hrs suffix lists the written hours as one comma-joined line.
//
// The returned path carries the .wea suffix, appended when missing.
func (w *Wea) WriteFile(path string, hoys []float64, writeHours bool) (string, error) {
	if !strings.HasSuffix(strings.ToLower(path), ".wea") {
		path += ".wea"
	}

	fullYear := hoys == nil
	if fullYear {
		hoys = w.HOYs()
	}

	var sb strings.Builder
	sb.WriteString(w.fileHeader())
	if fullYear {
		for i := 0; i < w.directNormal.Len(); i++ {
			dt := w.directNormal.Datetime(i)
			fmt.Fprintf(&sb, "%d %d %.3f %d %d\n", dt.Month, dt.Day, dt.FloatHour(),
				int(w.directNormal.Value(i)), int(w.diffuseHorizontal.Value(i)))
		}
	} else {
		for _, hoy := range hoys {
			i := int(hoy * float64(w.timestep))
			if i < 0 || i >= w.directNormal.Len() {
				log.Warnf("wea data for hour of year %g is not available, skipping", hoy)
				continue
			}
			dt := w.directNormal.Datetime(i)
			fmt.Fprintf(&sb, "%d %d %.3f %d %d\n", dt.Month, dt.Day, dt.FloatHour(),
				int(w.directNormal.Value(i)), int(w.diffuseHorizontal.Value(i)))
		}
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return "", fmt.Errorf("write wea file: %w", err)
	}

	if writeHours {
		parts := make([]string, len(hoys))
		for i, h := range hoys {
			parts[i] = strconv.FormatFloat(h, 'g', -1, 64)
		}
		hrsPath := path[:len(path)-4] + ".hrs"
		if err := os.WriteFile(hrsPath, []byte(strings.Join(parts, ",")+"\n"), 0o644); err != nil {
			return "", fmt.Errorf("write hours sidecar: %w", err)
		}
	}
	return path, nil
}
