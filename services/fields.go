package services

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"motolog-api/utils"
)

// The merge helpers copy one key of a request body onto a record.
// Absent keys leave the destination untouched. On NOT NULL columns a blank
// value also leaves it untouched, while on nullable columns null or "" clears it.

func mergeRequiredTime(body utils.Payload, key string, dst *time.Time) error {
	if body.IsBlank(key) {
		return nil
	}
	t, err := body.Time(key)
	if err != nil {
		return invalidField(key, err)
	}
	*dst = *t
	return nil
}

func mergeRequiredKilometers(body utils.Payload, key string, dst *int) error {
	if body.IsBlank(key) {
		return nil
	}
	km, err := body.Int(key)
	if err != nil {
		return invalidField(key, err)
	}
	if !utils.IsValidKilometers(*km) {
		return &ValidationError{Fields: []string{key}, Message: key + " must not be negative"}
	}
	*dst = *km
	return nil
}

func mergeRequiredString(body utils.Payload, key string, dst *string) error {
	if body.IsBlank(key) {
		return nil
	}
	s, err := body.String(key)
	if err != nil {
		return invalidField(key, err)
	}
	*dst = strings.TrimSpace(*s)
	return nil
}

func mergeEnum[T ~string](body utils.Payload, key string, allowed []string, dst *T) error {
	if body.IsBlank(key) {
		return nil
	}
	s, err := body.String(key)
	if err != nil {
		return invalidField(key, err)
	}
	if !utils.IsOneOf(*s, allowed) {
		return invalidType(key, *s, allowed)
	}
	*dst = T(*s)
	return nil
}

func mergeOptionalString(body utils.Payload, key string, dst **string) error {
	if !body.Has(key) {
		return nil
	}
	s, err := body.String(key)
	if err != nil {
		return invalidField(key, err)
	}
	if s != nil && *s == "" {
		s = nil
	}
	*dst = s
	return nil
}

func mergeOptionalInt(body utils.Payload, key string, dst **int) error {
	if !body.Has(key) {
		return nil
	}
	n, err := body.Int(key)
	if err != nil {
		return invalidField(key, err)
	}
	*dst = n
	return nil
}

func mergeOptionalDecimal(body utils.Payload, key string, dst *decimal.NullDecimal) error {
	if !body.Has(key) {
		return nil
	}
	d, err := body.Decimal(key)
	if err != nil {
		return invalidField(key, err)
	}
	*dst = d
	return nil
}
