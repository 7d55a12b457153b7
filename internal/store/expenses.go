package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tapsave/tapsave/internal/model"
)

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// AddExpense stores e, assigning a new ID when it has none, and returns the stored expense.
func (s *Store) AddExpense(e model.Expense) (model.Expense, error) {
	if e.Amount < 0 {
		return model.Expense{}, fmt.Errorf("%w: %v is negative", model.ErrInvalidAmount, e.Amount)
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Date.IsZero() {
		e.Date = time.Now()
	}
	if err := insertExpense(s.db, e, "", formatTime(time.Now())); err != nil {
		return model.Expense{}, fmt.Errorf("saving expense: %w", err)
	}
	return e, nil
}

func insertExpense(x execer, e model.Expense, sourceFile, createdAt string) error {
	cents, err := model.ToCents(e.Amount)
	if err != nil {
		return err
	}
	source := sql.NullString{String: sourceFile, Valid: sourceFile != ""}
	_, err = x.Exec(`INSERT OR REPLACE INTO expenses
		(id, amount_cents, spent_at, notes, category, source_file, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, cents, formatTime(e.Date), e.Notes,
		nullCategory(e.Category), source, createdAt,
	)
	return err
}

// ListExpenses returns every expense, newest first.
func (s *Store) ListExpenses() ([]model.Expense, error) {
	rows, err := s.db.Query(`SELECT id, amount_cents, spent_at, notes, category
		FROM expenses ORDER BY spent_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var expenses []model.Expense
	for rows.Next() {
		var (
			e        model.Expense
			cents    int64
			spentAt  string
			category sql.NullString
		)
		if err := rows.Scan(&e.ID, &cents, &spentAt, &e.Notes, &category); err != nil {
			return nil, err
		}
		e.Amount = model.FromCents(cents)
		e.Category = categoryFrom(category)
		if e.Date, err = parseTime(spentAt); err != nil {
			return nil, fmt.Errorf("expense %s: %w", e.ID, err)
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

// DeleteExpense removes one expense.
func (s *Store) DeleteExpense(id string) error {
	res, err := s.db.Exec("DELETE FROM expenses WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("expense %s: %w", id, ErrNotFound)
	}
	return nil
}

// ExpenseCount returns the number of stored expenses.
func (s *Store) ExpenseCount() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM expenses").Scan(&count)
	return count, err
}
