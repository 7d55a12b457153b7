package store

import (
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/tapsave/tapsave/internal/model"
)

// SaveBudget inserts or replaces a budget, assigning an ID when it has none.
func (s *Store) SaveBudget(b model.Budget) (model.Budget, error) {
	if b.Amount < 0 {
		return model.Budget{}, fmt.Errorf("%w: %v is negative", model.ErrInvalidAmount, b.Amount)
	}
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.StartDate.IsZero() {
		b.StartDate = time.Now()
	}
	cents, err := model.ToCents(b.Amount)
	if err != nil {
		return model.Budget{}, err
	}
	_, err = s.db.Exec(`INSERT OR REPLACE INTO budgets (id, amount_cents, period, category, start_date)
		VALUES (?, ?, ?, ?, ?)`,
		b.ID, cents, b.Period.String(), nullCategory(b.Category), formatTime(b.StartDate),
	)
	if err != nil {
		return model.Budget{}, fmt.Errorf("saving budget: %w", err)
	}
	return b, nil
}

// ListBudgets returns all budgets, oldest first.
func (s *Store) ListBudgets() ([]model.Budget, error) {
	rows, err := s.db.Query(`SELECT id, amount_cents, period, category, start_date
		FROM budgets ORDER BY start_date, id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var budgets []model.Budget
	for rows.Next() {
		var (
			b         model.Budget
			cents     int64
			period    string
			category  sql.NullString
			startDate string
		)
		if err := rows.Scan(&b.ID, &cents, &period, &category, &startDate); err != nil {
			return nil, err
		}
		b.Amount = model.FromCents(cents)
		b.Category = categoryFrom(category)
		if b.Period, err = model.ParsePeriod(period); err != nil {
			return nil, fmt.Errorf("budget %s: %w", b.ID, err)
		}
		if b.StartDate, err = parseTime(startDate); err != nil {
			return nil, fmt.Errorf("budget %s: %w", b.ID, err)
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

// DeleteBudget removes one budget.
func (s *Store) DeleteBudget(id string) error {
	return s.deleteByID("budgets", "budget", id)
}

// SaveGoal inserts or replaces a saving goal, assigning an ID when it has none.
func (s *Store) SaveGoal(g model.SavingGoal) (model.SavingGoal, error) {
	if g.TargetAmount < 0 || g.CurrentAmount < 0 {
		return model.SavingGoal{}, fmt.Errorf("%w: goal amounts must not be negative", model.ErrInvalidAmount)
	}
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = time.Now()
	}
	if err := upsertGoal(s.db, g); err != nil {
		return model.SavingGoal{}, fmt.Errorf("saving goal: %w", err)
	}
	return g, nil
}

func upsertGoal(x execer, g model.SavingGoal) error {
	var deadline sql.NullString
	if g.Deadline != nil {
		deadline = sql.NullString{String: formatTime(*g.Deadline), Valid: true}
	}
	target, err := model.ToCents(g.TargetAmount)
	if err != nil {
		return err
	}
	current, err := model.ToCents(g.CurrentAmount)
	if err != nil {
		return err
	}
	completed := 0
	if g.Completed {
		completed = 1
	}
	_, err = x.Exec(`INSERT OR REPLACE INTO goals
		(id, name, target_cents, current_cents, deadline, icon, color, notes, created_at, completed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		g.ID, g.Name, target, current, deadline,
		g.Icon, g.Color, g.Notes, formatTime(g.CreatedAt), completed,
	)
	return err
}

const goalColumns = `id, name, target_cents, current_cents, deadline, icon, color, notes, created_at, completed`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGoal(r rowScanner) (model.SavingGoal, error) {
	var (
		g               model.SavingGoal
		target, current int64
		deadline        sql.NullString
		createdAt       string
		completed       int
	)
	err := r.Scan(&g.ID, &g.Name, &target, &current, &deadline, &g.Icon, &g.Color, &g.Notes, &createdAt, &completed)
	if err != nil {
		return model.SavingGoal{}, err
	}
	g.TargetAmount = model.FromCents(target)
	g.CurrentAmount = model.FromCents(current)
	g.Completed = completed != 0
	if deadline.Valid {
		d, err := parseTime(deadline.String)
		if err != nil {
			return model.SavingGoal{}, fmt.Errorf("goal %s: %w", g.ID, err)
		}
		g.Deadline = &d
	}
	if g.CreatedAt, err = parseTime(createdAt); err != nil {
		return model.SavingGoal{}, fmt.Errorf("goal %s: %w", g.ID, err)
	}
	return g, nil
}

// ListGoals returns all saving goals, oldest first.
func (s *Store) ListGoals() ([]model.SavingGoal, error) {
	rows, err := s.db.Query("SELECT " + goalColumns + " FROM goals ORDER BY created_at, id")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var goals []model.SavingGoal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

// Contribute adds amount to a goal's saved total and marks it completed once
// the target is reached. It returns the updated goal.
func (s *Store) Contribute(id string, amount float64) (model.SavingGoal, error) {
	if amount < 0 {
		return model.SavingGoal{}, fmt.Errorf("%w: %v is negative", model.ErrInvalidAmount, amount)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return model.SavingGoal{}, err
	}
	defer func() { _ = tx.Rollback() }()

	g, err := scanGoal(tx.QueryRow("SELECT "+goalColumns+" FROM goals WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.SavingGoal{}, fmt.Errorf("goal %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return model.SavingGoal{}, err
	}

	current, err := model.ToCents(g.CurrentAmount)
	if err != nil {
		return model.SavingGoal{}, err
	}
	added, err := model.ToCents(amount)
	if err != nil {
		return model.SavingGoal{}, err
	}
	if current > math.MaxInt64-added {
		return model.SavingGoal{}, fmt.Errorf("%w: contribution overflows goal %s", model.ErrInvalidAmount, id)
	}
	g.CurrentAmount = model.FromCents(current + added)
	if g.TargetAmount > 0 && g.CurrentAmount >= g.TargetAmount {
		g.Completed = true
	}
	if err := upsertGoal(tx, g); err != nil {
		return model.SavingGoal{}, err
	}
	return g, tx.Commit()
}

// DeleteGoal removes one saving goal.
func (s *Store) DeleteGoal(id string) error {
	return s.deleteByID("goals", "goal", id)
}

func (s *Store) deleteByID(table, kind, id string) error {
	res, err := s.db.Exec("DELETE FROM "+table+" WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
	}
	return nil
}
