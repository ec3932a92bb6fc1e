package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/leetlens/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/leetlens/internal/core/domain"
	"github.com/custodia-labs/leetlens/internal/core/ports/driven"
)

// Store is a SQLite-based storage that hands out store interfaces
// through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store in the specified data directory.
// If dataDir is empty, defaults to ~/.leetlens/data/catalog.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".leetlens", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "catalog.db")

	// WAL lets the file watcher refresh the cache while a search reads it.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// CatalogStore returns a CatalogStore interface backed by this store.
func (s *Store) CatalogStore() *CatalogStore {
	return &CatalogStore{store: s}
}

// migrate runs all pending up migrations in version order.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_catalog.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Catalog Store ====================

// CatalogStore implements driven.CatalogStore.
type CatalogStore struct {
	store *Store
}

var _ driven.CatalogStore = (*CatalogStore)(nil)

// Load returns the cached catalog in its original order.
// An empty cache yields an empty slice.
func (c *CatalogStore) Load(ctx context.Context) ([]domain.Problem, error) {
	rows, err := c.store.db.QueryContext(ctx, `
		SELECT title, description, url, difficulty, topics, is_premium, is_sql
		FROM problems ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("querying problems: %w", err)
	}
	defer rows.Close()

	problems := []domain.Problem{}
	for rows.Next() {
		p, err := scanProblem(rows)
		if err != nil {
			return nil, err
		}
		problems = append(problems, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating problems: %w", err)
	}
	return problems, nil
}

// Save replaces the cached catalog in a single transaction.
func (c *CatalogStore) Save(ctx context.Context, problems []domain.Problem) (err error) {
	tx, err := c.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM problems"); err != nil {
		return fmt.Errorf("clearing problems: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO problems (position, title, description, url, difficulty, topics, is_premium, is_sql)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i := range problems {
		p := &problems[i]
		topics, mErr := marshalTopics(p.Topics)
		if mErr != nil {
			err = mErr
			return err
		}
		if _, err = stmt.ExecContext(ctx, i, p.Title, p.Description, p.URL,
			string(p.Difficulty), topics, p.IsPremium, p.IsSQL); err != nil {
			return fmt.Errorf("inserting problem %q: %w", p.Title, err)
		}
	}

	if _, err = tx.ExecContext(ctx, `
		INSERT INTO catalog_meta (id, count, updated_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET count = excluded.count, updated_at = excluded.updated_at
	`, len(problems), time.Now().UTC()); err != nil {
		return fmt.Errorf("updating catalog metadata: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing catalog: %w", err)
	}
	return nil
}

// Count returns the number of cached problems.
func (c *CatalogStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := c.store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM problems").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting problems: %w", err)
	}
	return n, nil
}

// UpdatedAt returns when the cache was last written.
// Returns domain.ErrNotFound if it never was.
func (c *CatalogStore) UpdatedAt(ctx context.Context) (time.Time, error) {
	var updated sql.NullTime
	err := c.store.db.QueryRowContext(ctx, "SELECT updated_at FROM catalog_meta WHERE id = 1").Scan(&updated)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, domain.ErrNotFound
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("reading catalog metadata: %w", err)
	}
	return updated.Time, nil
}

// ==================== Helper Functions ====================

func scanProblem(rows *sql.Rows) (domain.Problem, error) {
	var p domain.Problem
	var difficulty, topics string
	if err := rows.Scan(&p.Title, &p.Description, &p.URL, &difficulty, &topics,
		&p.IsPremium, &p.IsSQL); err != nil {
		return domain.Problem{}, fmt.Errorf("scanning problem: %w", err)
	}
	p.Difficulty = domain.Difficulty(difficulty)

	if err := json.Unmarshal([]byte(topics), &p.Topics); err != nil {
		return domain.Problem{}, fmt.Errorf("unmarshalling topics for %q: %w", p.Title, err)
	}
	return p, nil
}

// marshalTopics stores nil topics as an empty list.
func marshalTopics(topics []string) (string, error) {
	if topics == nil {
		topics = []string{}
	}
	data, err := json.Marshal(topics)
	if err != nil {
		return "", fmt.Errorf("marshalling topics: %w", err)
	}
	return string(data), nil
}
