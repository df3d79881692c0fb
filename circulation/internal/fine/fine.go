// Package fine computes late-return fines from loan dates.
package fine

import (
	"time"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/shopspring/decimal"
)

const day = 24 * time.Hour

// DaysBetween counts whole calendar days from `from` to `to` on UTC dates.
func DaysBetween(from, to time.Time) int {
	return int(model.Date(to).Sub(model.Date(from)) / day)
}

// DaysLate is the number of days the loan is (or was) kept past its due date as of today.
func DaysLate(loan model.Loan, today time.Time) int {
	end := today
	if loan.DateIn != nil {
		end = *loan.DateIn
	}
	if n := DaysBetween(loan.DueDate, end); n > 0 {
		return n
	}
	return 0
}

// Compute returns the fine owed on loan, rounded to cents.
func Compute(loan model.Loan, today time.Time) decimal.Decimal {
	return decimal.NewFromInt(int64(DaysLate(loan, today))).Mul(model.DailyFineRate).Round(2)
}

// Overdue reports whether the loan is open past due or was closed late.
func Overdue(loan model.Loan, today time.Time) bool {
	return DaysLate(loan, today) > 0
}
