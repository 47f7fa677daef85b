package errs

import "errors"

// Sentinels shared by the command and query layers. Use cases mark concrete
// failures with these so handlers can map them without importing infra.
var (
	ErrValidation              = errors.New("validation failed")
	ErrNotFound                = errors.New("not found")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
