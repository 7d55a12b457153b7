package pipeline

import (
	"math"
	"testing"
	"time"

	"github.com/tapsave/tapsave/internal/model"
)

const eps = 1e-9

// localDate returns noon on the given local calendar day.
func localDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d.Add(12 * time.Hour)
}

func expense(amount float64, date time.Time, category string) model.Expense {
	return model.Expense{Amount: amount, Date: date, Category: model.Labeled(category)}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < eps
}
