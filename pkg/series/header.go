// Package series holds timestamped annual samples and the metadata header
// that keeps them physically meaningful: every series carries exactly one
// header binding a quantity, a unit, an analysis window and free-form
// annotations.
package series

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/solarsim/wea/pkg/caltime"
	"github.com/solarsim/wea/pkg/quantity"
)

// Header binds a quantity, a unit, an analysis period and metadata to a
// series. A constructed header always satisfies the invariant that its unit
// is either empty or legal for its quantity; the setters re-validate before
// committing.
type Header struct {
	quantity *quantity.Quantity
	unit     string
	period   caltime.AnalysisPeriod
	metadata map[string]any
}

// NewHeader validates and builds a header. A declared unit that is not legal
// for the quantity fails with an InvalidUnitError.
func NewHeader(q *quantity.Quantity, unit string, period caltime.AnalysisPeriod, metadata map[string]any) (*Header, error) {
	if q == nil {
		return nil, fmt.Errorf("header requires a quantity")
	}
	if err := q.CheckUnit(unit); err != nil {
		return nil, err
	}
	if metadata == nil {
		metadata = map[string]any{}
	}
	return &Header{quantity: q, unit: unit, period: period, metadata: metadata}, nil
}

// Quantity returns the bound quantity definition.
func (h *Header) Quantity() *quantity.Quantity { return h.quantity }

// Unit returns the bound unit, empty when none was declared.
func (h *Header) Unit() string { return h.unit }

// Period returns the analysis window.
func (h *Header) Period() caltime.AnalysisPeriod { return h.period }

// Metadata returns the header's annotations.
func (h *Header) Metadata() map[string]any { return h.metadata }

// SetQuantityAndUnit replaces the quantity and unit together. Setting them
// independently could pass through a transiently invalid pairing; this is the
// only sanctioned way to change either.
func (h *Header) SetQuantityAndUnit(q *quantity.Quantity, unit string) error {
	if q == nil {
		return fmt.Errorf("header requires a quantity")
	}
	if err := q.CheckUnit(unit); err != nil {
		return err
	}
	h.quantity = q
	h.unit = unit
	return nil
}

// SetPeriod replaces the analysis window.
func (h *Header) SetPeriod(period caltime.AnalysisPeriod) {
	h.period = period
}

// Duplicate returns a structurally independent copy: metadata deep-copied,
// analysis period reconstructed from its canonical string form.
func (h *Header) Duplicate() *Header {
	period, err := caltime.ParsePeriod(h.period.String())
	if err != nil {
		// The canonical form of a validated period always parses.
		period = h.period
	}
	metadata := make(map[string]any, len(h.metadata))
	for k, v := range h.metadata {
		metadata[k] = v
	}
	return &Header{quantity: h.quantity, unit: h.unit, period: period, metadata: metadata}
}

// String renders the compact text form "Quantity(Unit)|AnalysisPeriod|Metadata".
func (h *Header) String() string {
	meta, _ := json.Marshal(h.metadata)
	return fmt.Sprintf("%s(%s)|%s|%s", h.quantity.Name, h.unit, h.period, meta)
}

// ParseHeader reconstructs a header from its compact text form. Any failure
// to split or resolve the three segments is reported as a FormatError
// wrapping the cause.
func ParseHeader(s string) (*Header, error) {
	parts := strings.Split(s, "|")
	if len(parts) != 3 {
		return nil, &FormatError{Input: s,
			Err: fmt.Errorf("expected 3 pipe-delimited segments, got %d", len(parts))}
	}

	qseg := strings.TrimSpace(parts[0])
	open := strings.Index(qseg, "(")
	if open < 0 || !strings.HasSuffix(qseg, ")") {
		return nil, &FormatError{Input: s,
			Err: fmt.Errorf("quantity segment %q is not of the form Name(Unit)", qseg)}
	}
	name := qseg[:open]
	unit := strings.TrimSuffix(qseg[open+1:], ")")

	q, err := quantity.Lookup(name)
	if err != nil {
		return nil, &FormatError{Input: s, Err: err}
	}

	period, err := caltime.ParsePeriod(parts[1])
	if err != nil {
		return nil, &FormatError{Input: s, Err: err}
	}

	metadata := map[string]any{}
	if meta := strings.TrimSpace(parts[2]); meta != "" {
		if err := json.Unmarshal([]byte(meta), &metadata); err != nil {
			return nil, &FormatError{Input: s, Err: err}
		}
	}

	h, err := NewHeader(q, unit, period, metadata)
	if err != nil {
		return nil, &FormatError{Input: s, Err: err}
	}
	return h, nil
}

type headerJSON struct {
	Quantity       string                 `json:"quantity"`
	Unit           string                 `json:"unit"`
	AnalysisPeriod caltime.AnalysisPeriod `json:"analysis_period"`
	Metadata       map[string]any         `json:"metadata"`
}

// MarshalJSON serializes exactly the four header fields.
func (h *Header) MarshalJSON() ([]byte, error) {
	return json.Marshal(headerJSON{
		Quantity:       h.quantity.Name,
		Unit:           h.unit,
		AnalysisPeriod: h.period,
		Metadata:       h.metadata,
	})
}

// UnmarshalJSON restores a header, re-running construction validation.
func (h *Header) UnmarshalJSON(data []byte) error {
	var raw headerJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	q, err := quantity.Lookup(raw.Quantity)
	if err != nil {
		return err
	}
	built, err := NewHeader(q, raw.Unit, raw.AnalysisPeriod, raw.Metadata)
	if err != nil {
		return err
	}
	*h = *built
	return nil
}
