package series

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/solarsim/wea/pkg/caltime"
	"github.com/solarsim/wea/pkg/quantity"
)

func TestNewHeader(t *testing.T) {
	h, err := NewHeader(quantity.DirectNormalIrradiance, "W/m2", caltime.Annual(1, false), nil)
	if err != nil {
		t.Fatalf("NewHeader() error = %v", err)
	}
	if h.Unit() != "W/m2" {
		t.Errorf("Unit() = %q, want W/m2", h.Unit())
	}
	if h.Metadata() == nil {
		t.Error("Metadata() should never be nil")
	}

	_, err = NewHeader(quantity.DirectNormalIrradiance, "C", caltime.Annual(1, false), nil)
	var ierr *quantity.InvalidUnitError
	if !errors.As(err, &ierr) {
		t.Fatalf("NewHeader() with illegal unit = %v, want *InvalidUnitError", err)
	}

	// An empty unit is always legal.
	if _, err := NewHeader(quantity.Temperature, "", caltime.Annual(1, false), nil); err != nil {
		t.Errorf("NewHeader() with empty unit error = %v", err)
	}
}

func TestSetQuantityAndUnit(t *testing.T) {
	h, err := NewHeader(quantity.Temperature, "C", caltime.Annual(1, false), nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := h.SetQuantityAndUnit(quantity.WindSpeed, "C"); err == nil {
		t.Fatal("SetQuantityAndUnit should reject an illegal pairing")
	}
	// A rejected change leaves the header untouched.
	if h.Quantity() != quantity.Temperature || h.Unit() != "C" {
		t.Error("header changed after rejected SetQuantityAndUnit")
	}
	if err := h.SetQuantityAndUnit(quantity.WindSpeed, "m/s"); err != nil {
		t.Fatalf("SetQuantityAndUnit() error = %v", err)
	}
	if h.Quantity() != quantity.WindSpeed || h.Unit() != "m/s" {
		t.Error("header not updated after accepted SetQuantityAndUnit")
	}
}

func TestHeaderStringParseRoundTrip(t *testing.T) {
	h, err := NewHeader(quantity.DirectNormalIrradiance, "W/m2", caltime.Annual(2, true),
		map[string]any{"city": "Golden"})
	if err != nil {
		t.Fatal(err)
	}
	s := h.String()
	want := `Direct Normal Irradiance(W/m2)|1/1 to 12/31 between 0 to 23 @2*|{"city":"Golden"}`
	if s != want {
		t.Fatalf("String() = %q, want %q", s, want)
	}

	back, err := ParseHeader(s)
	if err != nil {
		t.Fatalf("ParseHeader() error = %v", err)
	}
	if back.Quantity() != quantity.DirectNormalIrradiance {
		t.Error("round-tripped quantity mismatch")
	}
	if back.Unit() != "W/m2" {
		t.Errorf("round-tripped unit = %q", back.Unit())
	}
	if !back.Period().IsLeapYear || back.Period().Timestep != 2 {
		t.Errorf("round-tripped period = %+v", back.Period())
	}
	if back.Metadata()["city"] != "Golden" {
		t.Errorf("round-tripped metadata = %v", back.Metadata())
	}
}

func TestParseHeaderErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"wrong segment count", "Temperature(C)|1/1 to 12/31 between 0 to 23 @1"},
		{"malformed quantity segment", "Temperature|1/1 to 12/31 between 0 to 23 @1|{}"},
		{"unknown quantity", "Frobnication(C)|1/1 to 12/31 between 0 to 23 @1|{}"},
		{"illegal unit", "Temperature(W/m2)|1/1 to 12/31 between 0 to 23 @1|{}"},
		{"bad period", "Temperature(C)|whenever|{}"},
		{"bad metadata", "Temperature(C)|1/1 to 12/31 between 0 to 23 @1|not json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHeader(tt.in)
			var ferr *FormatError
			if !errors.As(err, &ferr) {
				t.Fatalf("ParseHeader(%q) = %v, want *FormatError", tt.in, err)
			}
		})
	}
}

func TestHeaderDuplicate(t *testing.T) {
	h, err := NewHeader(quantity.Temperature, "C", caltime.Annual(1, false),
		map[string]any{"source": "epw"})
	if err != nil {
		t.Fatal(err)
	}
	dup := h.Duplicate()
	dup.Metadata()["source"] = "tmy"
	if h.Metadata()["source"] != "epw" {
		t.Error("Duplicate() metadata aliases the original")
	}
}

func TestHeaderJSONRoundTrip(t *testing.T) {
	h, err := NewHeader(quantity.GlobalHorizontalIrradiance, "W/m2", caltime.Annual(4, false),
		map[string]any{"station": "725650"})
	if err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(h)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var back Header
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back.Quantity() != quantity.GlobalHorizontalIrradiance || back.Unit() != "W/m2" {
		t.Error("JSON round trip lost quantity or unit")
	}
	if back.Period().Timestep != 4 {
		t.Errorf("JSON round trip period = %+v", back.Period())
	}

	// Restoring must re-run validation.
	bad := []byte(`{"quantity":"Temperature","unit":"W/m2","analysis_period":` +
		`{"st_month":1,"st_day":1,"st_hour":0,"end_month":12,"end_day":31,"end_hour":23,"timestep":1},"metadata":{}}`)
	if err := json.Unmarshal(bad, &back); err == nil {
		t.Error("Unmarshal accepted an illegal quantity/unit pairing")
	}
}
