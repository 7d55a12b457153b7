package model

import (
	"math"
	"time"
)

// SavingGoal is a target amount with running contributions.
type SavingGoal struct {
	ID            string
	Name          string
	TargetAmount  float64
	CurrentAmount float64
	Deadline      *time.Time
	Icon          string
	Color         string
	Notes         string
	CreatedAt     time.Time
	Completed     bool
}

// Progress returns CurrentAmount / TargetAmount capped at 1, or 0 for a non-positive target.
func (g SavingGoal) Progress() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	return math.Min(g.CurrentAmount/g.TargetAmount, 1)
}

// Remaining returns how much is left to save, never negative.
func (g SavingGoal) Remaining() float64 {
	return math.Max(g.TargetAmount-g.CurrentAmount, 0)
}

// IsOverdue reports whether an incomplete goal is past its deadline.
func (g SavingGoal) IsOverdue(now time.Time) bool {
	if g.Deadline == nil {
		return false
	}
	return !g.Completed && now.After(*g.Deadline)
}

// DaysRemaining returns whole days until the deadline. ok is false when there is none.
func (g SavingGoal) DaysRemaining(now time.Time) (days int, ok bool) {
	if g.Deadline == nil {
		return 0, false
	}
	return int(g.Deadline.Sub(now).Hours() / 24), true
}

// GoalSummary totals a set of saving goals.
type GoalSummary struct {
	Count           int
	Completed       int
	TotalSaved      float64
	TotalTarget     float64
	OverallProgress float64
}
