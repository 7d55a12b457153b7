// Package store provides SQLite-backed persistence for expenses, categories,
// budgets and saving goals.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tapsave/tapsave/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

var (
	// ErrNotFound is returned when no row has the requested ID.
	ErrNotFound = errors.New("not found")
	// ErrExists is returned when adding a category whose name is taken.
	ErrExists = errors.New("already exists")
	// ErrDefaultCategory is returned when deleting a built-in category.
	ErrDefaultCategory = errors.New("default categories cannot be deleted")
)

// timeLayout is fixed-width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store is the tapsave database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at dbPath and seeds the default categories.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	s := &Store{db: db}
	if err := s.seedCategories(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("seeding categories: %w", err)
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) seedCategories() error {
	for _, c := range model.DefaultCategories() {
		_, err := s.db.Exec(`INSERT OR IGNORE INTO categories (name, icon, color, is_default)
			VALUES (?, ?, ?, 1)`, c.Name, c.Icon, c.Color)
		if err != nil {
			return err
		}
	}
	return nil
}

// ListCategories returns all categories ordered by name.
func (s *Store) ListCategories() ([]model.CategoryInfo, error) {
	rows, err := s.db.Query("SELECT name, icon, color, is_default FROM categories ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var cats []model.CategoryInfo
	for rows.Next() {
		var c model.CategoryInfo
		var isDefault int
		if err := rows.Scan(&c.Name, &c.Icon, &c.Color, &isDefault); err != nil {
			return nil, err
		}
		c.IsDefault = isDefault != 0
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

// AddCategory stores a user category. Names are unique ignoring case.
func (s *Store) AddCategory(c model.CategoryInfo) error {
	res, err := s.db.Exec(`INSERT OR IGNORE INTO categories (name, icon, color, is_default)
		VALUES (?, ?, ?, 0)`, c.Name, c.Icon, c.Color)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("category %q: %w", c.Name, ErrExists)
	}
	return nil
}

// DeleteCategory removes a user category. Its expenses and budgets become uncategorized.
func (s *Store) DeleteCategory(name string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var isDefault int
	err = tx.QueryRow("SELECT is_default FROM categories WHERE name = ?", name).Scan(&isDefault)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("category %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return err
	}
	if isDefault != 0 {
		return fmt.Errorf("category %q: %w", name, ErrDefaultCategory)
	}

	if _, err := tx.Exec("DELETE FROM categories WHERE name = ?", name); err != nil {
		return err
	}
	if _, err := tx.Exec("UPDATE expenses SET category = NULL WHERE category = ? COLLATE NOCASE", name); err != nil {
		return err
	}
	if _, err := tx.Exec("UPDATE budgets SET category = NULL WHERE category = ? COLLATE NOCASE", name); err != nil {
		return err
	}
	return tx.Commit()
}

// FileInfo holds the tracked mtime and size for an imported file.
type FileInfo struct {
	MtimeNs   int64
	SizeBytes int64
}

// GetTrackedImports returns a map of file_path -> FileInfo for all imported files.
func (s *Store) GetTrackedImports() (map[string]FileInfo, error) {
	rows, err := s.db.Query("SELECT file_path, mtime_ns, size_bytes FROM import_tracker")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	result := make(map[string]FileInfo)
	for rows.Next() {
		var path string
		var fi FileInfo
		if err := rows.Scan(&path, &fi.MtimeNs, &fi.SizeBytes); err != nil {
			return nil, err
		}
		result[path] = fi
	}
	return result, rows.Err()
}

// SaveImported replaces every expense previously imported from path with
// expenses and records the file's mtime and size in one transaction.
func (s *Store) SaveImported(path string, expenses []model.Expense, mtimeNs, sizeBytes int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM expenses WHERE source_file = ?", path); err != nil {
		return err
	}

	now := formatTime(time.Now())
	for _, e := range expenses {
		if err := insertExpense(tx, e, path, now); err != nil {
			return err
		}
	}

	_, err = tx.Exec(`INSERT OR REPLACE INTO import_tracker (file_path, mtime_ns, size_bytes, expenses, imported_at)
		VALUES (?, ?, ?, ?, ?)`, path, mtimeNs, sizeBytes, len(expenses), now)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.Local(), nil
}

func nullCategory(c model.Category) sql.NullString {
	name, ok := c.Name()
	return sql.NullString{String: name, Valid: ok}
}

func categoryFrom(ns sql.NullString) model.Category {
	if !ns.Valid {
		return model.Uncategorized
	}
	return model.Labeled(ns.String)
}
