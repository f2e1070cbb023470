package cli

// Error codes for structured error responses.
// These codes are stable and can be relied upon by scripts.
const (
	ErrConfigInvalid = "CONFIG_INVALID"

	ErrFileNotFound   = "FILE_NOT_FOUND"
	ErrFileReadError  = "FILE_READ_ERROR"
	ErrFileWriteError = "FILE_WRITE_ERROR"

	ErrDatabaseError = "DATABASE_ERROR"

	ErrInvalidInput    = "INVALID_INPUT"
	ErrMissingArgument = "MISSING_ARGUMENT"

	ErrBlockNotFound = "BLOCK_NOT_FOUND"
)

// Warning codes.
const (
	WarnStructureChanged = "STRUCTURE_CHANGED"
	WarnHistoryDisabled  = "HISTORY_DISABLED"
)
