package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassificator decides whether a failed database operation is worth
// retrying. Implementations are driver-specific.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// ErrorClassification says whether a failed operation should be attempted
// again or abandoned.
type ErrorClassification int

const (
	// NonRetryable is the default for unrecognised errors. Constraint
	// violations, data exceptions, and syntax errors fail the same way on
	// every attempt.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient conditions such as dropped connections and
	// deadlock rollbacks.
	Retryable
)

// PostgresErrorClassifier maps pgx driver errors onto the retry decision by
// their PostgreSQL error code.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify reports whether err looks transient. Anything that is not a
// *pgconn.PgError, including nil, is NonRetryable.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifyPgCode(pgErr.Code)
	}

	return NonRetryable
}

// classifyPgCode treats class 08 connection exceptions and class 40
// transaction rollbacks as transient, along with 57P03 cannot-connect-now.
// Everything else, notably class 23 constraint violations and class 42
// syntax errors, repeats identically on retry and is non-retryable. The full
// code list lives at
// https://www.postgresql.org/docs/current/errcodes-appendix.html.
func classifyPgCode(code string) ErrorClassification {
	switch code {
	case pgerrcode.ConnectionException, // class 08
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.TransactionRollback, // class 40
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected,
		pgerrcode.CannotConnectNow: // 57P03
		return Retryable
	}

	return NonRetryable
}
