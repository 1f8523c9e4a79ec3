package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Payload is a decoded JSON object body that remembers which keys the client sent.
// Numbers may arrive as JSON numbers or numeric strings.
type Payload map[string]json.RawMessage

var nullLiteral = []byte("null")

// Has reports whether key was present in the body, even with a null value.
func (p Payload) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// IsBlank reports whether key is absent, null or an empty string.
func (p Payload) IsBlank(key string) bool {
	raw, ok := p[key]
	if !ok {
		return true
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, nullLiteral) {
		return true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s) == ""
	}
	return false
}

// Missing returns the keys that are blank, in the order given.
func (p Payload) Missing(keys ...string) []string {
	var missing []string
	for _, key := range keys {
		if p.IsBlank(key) {
			missing = append(missing, key)
		}
	}
	return missing
}

// String returns nil for null. Numbers are accepted and rendered as text.
func (p Payload) String(key string) (*string, error) {
	raw, ok := p[key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), nullLiteral) {
		return nil, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return &s, nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		s = n.String()
		return &s, nil
	}

	return nil, fmt.Errorf("%s must be a string", key)
}

// Int returns nil for blank values. Fractions are truncated.
func (p Payload) Int(key string) (*int, error) {
	if p.IsBlank(key) {
		return nil, nil
	}

	text, err := p.numberText(key)
	if err != nil {
		return nil, err
	}

	if n, err := strconv.Atoi(text); err == nil {
		if n < math.MinInt32 || n > math.MaxInt32 {
			return nil, fmt.Errorf("%s is out of range", key)
		}
		return &n, nil
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt32 {
		return nil, fmt.Errorf("%s must be an integer", key)
	}
	n := int(f)
	return &n, nil
}

// Decimal returns an invalid NullDecimal for blank values, rounded to two places otherwise.
func (p Payload) Decimal(key string) (decimal.NullDecimal, error) {
	if p.IsBlank(key) {
		return decimal.NullDecimal{}, nil
	}

	text, err := p.numberText(key)
	if err != nil {
		return decimal.NullDecimal{}, err
	}

	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("%s must be a number", key)
	}
	return decimal.NewNullDecimal(d.Round(2)), nil
}

// Time returns nil for blank values.
func (p Payload) Time(key string) (*time.Time, error) {
	if p.IsBlank(key) {
		return nil, nil
	}

	s, err := p.String(key)
	if err != nil || s == nil {
		return nil, fmt.Errorf("%s must be a date", key)
	}

	t, err := ParseDate(*s)
	if err != nil {
		return nil, fmt.Errorf("%s must be a date", key)
	}
	return &t, nil
}

func (p Payload) numberText(key string) (string, error) {
	raw := bytes.TrimSpace(p[key])

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s), nil
	}

	return "", fmt.Errorf("%s must be a number", key)
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate accepts ISO-8601 timestamps and plain dates. Values without a zone are UTC.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}
