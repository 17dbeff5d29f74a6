package ledger

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// SQLiteStore keeps blocks in the ledger_blocks table of a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens, or creates, the database at path and ensures the
// schema exists.
func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("empty sqlite database path")
	}
	if path != MemoryPath {
		parent := filepath.Dir(path)
		if parent != "" && parent != "." {
			if err := os.MkdirAll(parent, 0o755); err != nil {
				return nil, err
			}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// An in-memory database lives as long as its single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	for _, pragma := range []string{
		`PRAGMA busy_timeout = 5000;`,
		`PRAGMA journal_mode = WAL;`,
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := ensureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func ensureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS ledger_blocks (
    idx        INTEGER PRIMARY KEY,
    ts         INTEGER NOT NULL,
    prev_hash  TEXT NOT NULL,
    hash       TEXT NOT NULL,
    run_id     TEXT NOT NULL,
    run_json   TEXT NOT NULL
)`)
	return err
}

func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save inserts b. Saving an index twice fails.
func (s *SQLiteStore) Save(ctx context.Context, b Block) error {
	run, err := json.Marshal(b.Run)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO ledger_blocks (idx, ts, prev_hash, hash, run_id, run_json)
VALUES (?, ?, ?, ?, ?, ?)
`, b.Index, b.Timestamp, b.PrevHash, b.Hash, b.Run.ID, string(run))
	return err
}

// Load returns every block ordered by index.
func (s *SQLiteStore) Load(ctx context.Context) ([]Block, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT idx, ts, prev_hash, hash, run_json
FROM ledger_blocks
ORDER BY idx ASC
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blocks []Block
	for rows.Next() {
		var (
			b   Block
			run string
		)
		if err := rows.Scan(&b.Index, &b.Timestamp, &b.PrevHash, &b.Hash, &run); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(run), &b.Run); err != nil {
			return nil, fmt.Errorf("decode run of block %d: %w", b.Index, err)
		}
		blocks = append(blocks, b)
	}
	return blocks, rows.Err()
}
