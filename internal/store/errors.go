package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRunNotFound is returned when a query targets a resolution run
	// (identified by its id) that does not exist in the archive.
	ErrRunNotFound = errors.New("resolution run was not found")

	// ErrRunNotSaved is returned when an INSERT of a run record completes
	// without error but the number of affected rows is zero, indicating
	// that nothing was actually persisted.
	ErrRunNotSaved = errors.New("resolution run was not saved")

	// ErrHistoryEntryNotFound is returned when a history lookup targets an
	// id that does not exist in the local history database.
	ErrHistoryEntryNotFound = errors.New("history entry was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan run record row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan run record rows")
)
