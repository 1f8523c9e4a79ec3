// Package repositories wraps the gorm queries behind each table.
package repositories

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup by id matches no row.
// Controllers translate it into a 404 response.
var ErrNotFound = errors.New("record not found")

// ErrConflict is returned when a unique value is already taken.
var ErrConflict = errors.New("conflict")

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
