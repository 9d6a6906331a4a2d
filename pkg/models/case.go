package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// MetricRecord is one searchable metric of a report.
type MetricRecord struct {
	SID    string `json:"sid"` // Lookup key, unique within a report's metrics file
	Topic  string `json:"topic"`
	Metric string `json:"metric"`
}

// CodeEntry groups the metrics filed under one disclosure code.
type CodeEntry struct {
	Metrics []MetricRecord `json:"metrics"`
}

// CodeGroup is the top level of a metrics file: reports/metric/{cid}.json
// holds a JSON array of these.
type CodeGroup struct {
	Codes []CodeEntry `json:"codes"`
}

// Case is one labeled QA example.
type Case struct {
	SID   string `json:"sid"`
	CID   string `json:"cid"`   // Document short code, e.g. "tsmc"
	Value Scalar `json:"value"` // Empty when the metric cannot be quantified
	Unit  Scalar `json:"unit"`
}

// Scalar is a case value or unit exactly as it was labeled.
// Missing fields, null and NaN all collapse to the empty Scalar, so nothing
// downstream has to sniff for NaN.
type Scalar struct {
	text  string
	valid bool
}

// NewScalar wraps a string value.
func NewScalar(s string) Scalar {
	return Scalar{text: s, valid: true}
}

// ScalarFromFloat formats f the way a labeler would read it; NaN yields the
// empty Scalar.
func ScalarFromFloat(f float64) Scalar {
	if math.IsNaN(f) {
		return Scalar{}
	}
	return Scalar{text: strconv.FormatFloat(f, 'f', -1, 64), valid: true}
}

// String returns the labeled text, or "" when empty.
func (s Scalar) String() string {
	return s.text
}

// IsEmpty reports whether no value was labeled.
func (s Scalar) IsEmpty() bool {
	return !s.valid
}

// UnmarshalJSON keeps numbers as their literal text so "12.50" is not
// reformatted to "12.5".
func (s *Scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = Scalar{}
		return nil
	}

	switch data[0] {
	case '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = NewScalar(str)
	case '{', '[':
		return fmt.Errorf("scalar value expected, got %s", data)
	default:
		// numbers and true/false
		*s = NewScalar(string(data))
	}
	return nil
}

// MarshalJSON writes the empty Scalar as null and everything else as a string.
func (s Scalar) MarshalJSON() ([]byte, error) {
	if !s.valid {
		return []byte("null"), nil
	}
	return json.Marshal(s.text)
}
