package employeeerrors

import "go-northwind/internal/shared/apperror"

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
	)
	ErrNilSessionFactory = apperror.New(
		apperror.CodeInvalidInput,
		"Session factory is required",
	)
)

// NotFound reports a missing employee record. It matches ErrEmployeeNotFound
// under errors.Is.
func NotFound(id int) *apperror.AppError {
	return apperror.Newf(apperror.CodeNotFound, "Employee with id %d not found", id)
}
