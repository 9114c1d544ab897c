package employee

import (
	"errors"

	employeeerrors "go-northwind/internal/employee/errors"

	"gorm.io/gorm"
)

// mapSessionError turns a missing row into the domain NotFound error.
// Anything else is storage-level and goes back to the caller untouched.
func mapSessionError(err error, id int) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.NotFound(id)
	}

	return err
}
