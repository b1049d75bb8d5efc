package store

import (
    "database/sql/driver"
    "testing"
    "time"
    "github.com/DATA-DOG/go-sqlmock"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
    t.Helper()
    db, mock, err := sqlmock.New()
    if err != nil {
        t.Fatalf("opening sqlmock: %v", err)
    }
    t.Cleanup(func() { db.Close() })
    return &Store{db: db}, mock
}

// timeWithin matches a time argument within tolerance of want.
type timeWithin struct {
    want time.Time
    tol  time.Duration
}

func (m timeWithin) Match(v driver.Value) bool {
    ts, ok := v.(time.Time)
    if !ok {
        return false
    }
    d := ts.Sub(m.want)
    if d < 0 {
        d = -d
    }
    return d <= m.tol
}
