// Package storage is the SQLite persistence layer: progress records,
// coaching exchange logs, PDF download logs and achievements.
package storage

import (
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store wraps a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database in dataDir and applies pending
// migrations. Pass ":memory:" as dataDir for an in-memory database
// (used by tests).
func Open(dataDir string) (*Store, error) {
	var dsn string
	if dataDir == ":memory:" {
		dsn = ":memory:"
	} else {
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
		dsn = filepath.Join(dataDir, "storylab.db")
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	// Single connection avoids "database is locked" errors.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting journal mode: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}

		version, err := parseMigrationVersion(entry.Name())
		if err != nil {
			return err
		}

		var applied int
		if err := s.db.QueryRow("SELECT COUNT(*) FROM schema_version WHERE version = ?", version).Scan(&applied); err != nil {
			return fmt.Errorf("checking migration %d: %w", version, err)
		}
		if applied > 0 {
			continue
		}

		content, err := migrationsFS.ReadFile("migrations/" + entry.Name())
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", entry.Name(), err)
		}

		tx, err := s.db.Begin()
		if err != nil {
			return fmt.Errorf("beginning transaction for migration %d: %w", version, err)
		}
		if _, err := tx.Exec(string(content)); err != nil {
			tx.Rollback()
			return fmt.Errorf("applying migration %d: %w", version, err)
		}
		if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", version); err != nil {
			tx.Rollback()
			return fmt.Errorf("recording migration %d: %w", version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing migration %d: %w", version, err)
		}
	}
	return nil
}

func parseMigrationVersion(filename string) (int, error) {
	var version int
	if _, err := fmt.Sscanf(filename, "%d_", &version); err != nil {
		return 0, fmt.Errorf("parsing migration version from %q: %w", filename, err)
	}
	return version, nil
}

// --- Progress ---

// GetProgress returns the stored value for (profileID, key), or
// ErrNotFound when no record exists.
func (s *Store) GetProgress(profileID, key string) (string, error) {
	var value string
	err := s.db.QueryRow(
		"SELECT step_ids FROM progress WHERE profile_id = ? AND record_key = ?",
		profileID, key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// SetProgress writes the value for (profileID, key), replacing any
// previous record.
func (s *Store) SetProgress(profileID, key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO progress (profile_id, record_key, step_ids, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(profile_id, record_key) DO UPDATE SET
			step_ids = excluded.step_ids,
			updated_at = excluded.updated_at`,
		profileID, key, value, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// DeleteProgress removes the record for (profileID, key). Deleting a
// missing record is not an error.
func (s *Store) DeleteProgress(profileID, key string) error {
	_, err := s.db.Exec(
		"DELETE FROM progress WHERE profile_id = ? AND record_key = ?",
		profileID, key,
	)
	return err
}

// --- Exchanges ---

func (s *Store) SaveExchange(e Exchange) error {
	_, err := s.db.Exec(`
		INSERT INTO exchanges (id, profile_id, context_label, user_text, reply, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.ProfileID, e.ContextLabel, e.UserText, e.Reply,
		e.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// ListExchanges returns the most recent exchanges for a profile,
// newest first.
func (s *Store) ListExchanges(profileID string, limit int) ([]Exchange, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(`
		SELECT id, profile_id, context_label, user_text, reply, created_at
		FROM exchanges WHERE profile_id = ?
		ORDER BY created_at DESC LIMIT ?`, profileID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Exchange
	for rows.Next() {
		var e Exchange
		var createdAt string
		if err := rows.Scan(&e.ID, &e.ProfileID, &e.ContextLabel, &e.UserText, &e.Reply, &createdAt); err != nil {
			return nil, err
		}
		if e.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("parsing created_at for exchange %s: %w", e.ID, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// --- PDF downloads ---

func (s *Store) SaveDownload(d Download) error {
	_, err := s.db.Exec(`
		INSERT INTO pdf_downloads (id, profile_id, module_id, variant, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		d.ID, d.ProfileID, d.ModuleID, d.Variant,
		d.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// ListDownloads returns the most recent downloads for a profile,
// newest first.
func (s *Store) ListDownloads(profileID string, limit int) ([]Download, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(`
		SELECT id, profile_id, module_id, variant, created_at
		FROM pdf_downloads WHERE profile_id = ?
		ORDER BY created_at DESC LIMIT ?`, profileID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Download
	for rows.Next() {
		var d Download
		var createdAt string
		if err := rows.Scan(&d.ID, &d.ProfileID, &d.ModuleID, &d.Variant, &createdAt); err != nil {
			return nil, err
		}
		if d.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("parsing created_at for download %s: %w", d.ID, err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// --- Achievements ---

// AwardAchievement inserts the achievement if it has not been earned
// yet and reports whether this call awarded it.
func (s *Store) AwardAchievement(a Achievement) (bool, error) {
	res, err := s.db.Exec(`
		INSERT OR IGNORE INTO achievements (id, profile_id, kind, module_id, earned_at)
		VALUES (?, ?, ?, ?, ?)`,
		a.ID, a.ProfileID, a.Kind, a.ModuleID,
		a.EarnedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListAchievements returns all achievements for a profile, newest first.
func (s *Store) ListAchievements(profileID string) ([]Achievement, error) {
	rows, err := s.db.Query(`
		SELECT id, profile_id, kind, module_id, earned_at
		FROM achievements WHERE profile_id = ?
		ORDER BY earned_at DESC`, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Achievement
	for rows.Next() {
		var a Achievement
		var earnedAt string
		if err := rows.Scan(&a.ID, &a.ProfileID, &a.Kind, &a.ModuleID, &earnedAt); err != nil {
			return nil, err
		}
		if a.EarnedAt, err = time.Parse(time.RFC3339, earnedAt); err != nil {
			return nil, fmt.Errorf("parsing earned_at for achievement %s: %w", a.ID, err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
