package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/wsei-dev/university-records/internal/config"
)

// Store wraps access to the in-memory SQLite database.
type Store struct {
	DB *sql.DB

	// pinned holds one connection open for the whole process lifetime; a
	// mode=memory database is destroyed when its last connection closes.
	pinned *sql.Conn
}

// NewStore opens the database and verifies connectivity. Foreign key
// enforcement and a busy timeout are enabled through driver pragmas; the
// default DSN uses mode=memory with a shared cache so every pooled
// connection sees the same database.
func NewStore(ctx context.Context, cfg config.StoreConfig, logger *zap.Logger) (*Store, error) {
	// _txlock=immediate makes concurrent check-then-write transactions
	// queue instead of deadlocking on lock upgrade.
	dsn := fmt.Sprintf("%s&_txlock=immediate&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", cfg.DSN)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	pinned, err := db.Conn(ctx)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pin sqlite connection: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = pinned.Close()
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	logger.Info("opened sqlite store", zap.String("dsn", cfg.DSN))
	return &Store{DB: db, pinned: pinned}, nil
}

// Close releases the database handle.
func (s *Store) Close() {
	if s == nil {
		return
	}
	if s.pinned != nil {
		_ = s.pinned.Close()
	}
	if s.DB != nil {
		_ = s.DB.Close()
	}
}

// Handle returns the underlying sql.DB.
func (s *Store) Handle() *sql.DB {
	if s == nil {
		return nil
	}
	return s.DB
}
