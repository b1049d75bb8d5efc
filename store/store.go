package store

import (
    "context"
    "database/sql"
    "fmt"
    "log"
    "time"
    _ "github.com/lib/pq"
)

const (
    maxOpenConns    = 25
    maxIdleConns    = 5
    connMaxLifetime = 5 * time.Minute
    retryDelay      = 5 * time.Second
)

// Store owns the PostgreSQL connection pool. Every query in the service
// goes through it; nothing else holds a database handle.
type Store struct {
    db *sql.DB
}

// Open connects to PostgreSQL and verifies the connection.
func Open(dsn string) (*Store, error) {
    db, err := sql.Open("postgres", dsn)
    if err != nil {
        return nil, fmt.Errorf("error opening PostgreSQL database: %v", err)
    }

    db.SetMaxOpenConns(maxOpenConns)
    db.SetMaxIdleConns(maxIdleConns)
    db.SetConnMaxLifetime(connMaxLifetime)

    ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
    defer cancel()

    if err := db.PingContext(ctx); err != nil {
        db.Close()
        return nil, fmt.Errorf("error connecting to PostgreSQL database: %v", err)
    }

    return &Store{db: db}, nil
}

// OpenWithRetry attempts to connect to PostgreSQL with retries.
func OpenWithRetry(dsn string, maxRetries int) (*Store, error) {
    var err error
    for i := 0; i < maxRetries; i++ {
        var s *Store
        s, err = Open(dsn)
        if err == nil {
            return s, nil
        }
        log.Printf("Failed to connect to PostgreSQL (attempt %d/%d): %v", i+1, maxRetries, err)
        time.Sleep(retryDelay)
    }
    return nil, fmt.Errorf("failed to connect to PostgreSQL after %d attempts: %v", maxRetries, err)
}

func (s *Store) Close() {
    if err := s.db.Close(); err != nil {
        log.Printf("Error closing PostgreSQL connection: %v", err)
    }
}

// Ping reports storage connectivity for health checks.
func (s *Store) Ping(ctx context.Context) error {
    ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
    defer cancel()
    return s.db.PingContext(ctx)
}

// WithTransaction runs fn inside one transaction, rolling back on error
// or panic. The route upsert is the only caller that spans multiple
// statements.
func (s *Store) WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
    tx, err := s.db.BeginTx(ctx, nil)
    if err != nil {
        return err
    }

    defer func() {
        if p := recover(); p != nil {
            tx.Rollback()
            panic(p)
        }
    }()

    if err := fn(tx); err != nil {
        tx.Rollback()
        return err
    }

    return tx.Commit()
}
