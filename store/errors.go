package store

import (
    "database/sql"
    "errors"
    "fmt"
    "github.com/lib/pq"
)

// ErrNotFound is returned when a lookup by id matches nothing.
var ErrNotFound = errors.New("not found")

// storageErr wraps a driver failure with the failing operation so the
// detail can be logged while handlers report a generic message.
func storageErr(op string, err error) error {
    if errors.Is(err, sql.ErrNoRows) {
        return ErrNotFound
    }
    return fmt.Errorf("%s: %w", op, err)
}

// IsForeignKeyViolation reports whether err is a referential-integrity
// failure, e.g. telemetry submitted for a bus id that does not exist.
func IsForeignKeyViolation(err error) bool {
    var pqErr *pq.Error
    return errors.As(err, &pqErr) && pqErr.Code == "23503"
}
