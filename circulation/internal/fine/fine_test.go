package fine_test

import (
	"testing"
	"time"

	"github.com/Astemirdum/library-circulation/circulation/internal/fine"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr(t time.Time) *time.Time { return &t }

func TestCompute(t *testing.T) {
	t.Parallel()
	today := date(2024, 2, 1)
	tests := []struct {
		name     string
		loan     model.Loan
		want     string
		daysLate int
	}{
		{
			name:     "returned five days late",
			loan:     model.Loan{DateOut: date(2024, 1, 1), DueDate: date(2024, 1, 15), DateIn: ptr(date(2024, 1, 20))},
			want:     "1.25",
			daysLate: 5,
		},
		{
			name: "returned on due date",
			loan: model.Loan{DateOut: date(2024, 1, 1), DueDate: date(2024, 1, 15), DateIn: ptr(date(2024, 1, 15))},
			want: "0",
		},
		{
			name: "returned early",
			loan: model.Loan{DateOut: date(2024, 1, 1), DueDate: date(2024, 1, 15), DateIn: ptr(date(2024, 1, 3))},
			want: "0",
		},
		{
			name:     "open and overdue accrues until today",
			loan:     model.Loan{DateOut: date(2024, 1, 1), DueDate: date(2024, 1, 15)},
			want:     "4.25",
			daysLate: 17,
		},
		{
			name: "open and not yet due",
			loan: model.Loan{DateOut: date(2024, 1, 25), DueDate: date(2024, 2, 8)},
			want: "0",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := fine.Compute(tt.loan, today)
			require.Equal(t, tt.want, got.String())
			require.Equal(t, tt.daysLate, fine.DaysLate(tt.loan, today))
			require.Equal(t, tt.daysLate > 0, fine.Overdue(tt.loan, today))
		})
	}
}

func TestCompute_Idempotent(t *testing.T) {
	t.Parallel()
	loan := model.Loan{DateOut: date(2024, 1, 1), DueDate: date(2024, 1, 15), DateIn: ptr(date(2024, 1, 20))}
	first := fine.Compute(loan, date(2024, 3, 1))
	second := fine.Compute(loan, date(2024, 6, 1))
	require.True(t, first.Equal(second), "closed loan fine must not depend on today")
}

func TestDaysBetween_NormalizesTimeZones(t *testing.T) {
	t.Parallel()
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata not available")
	}
	// 2024-03-10 is the US spring-forward day; late evening local time is already the next UTC day.
	from := time.Date(2024, 3, 9, 12, 0, 0, 0, ny)
	to := time.Date(2024, 3, 11, 12, 0, 0, 0, ny)
	require.Equal(t, 2, fine.DaysBetween(from, to))

	lateEvening := time.Date(2024, 3, 10, 21, 0, 0, 0, ny)
	require.Equal(t, 2, fine.DaysBetween(from, lateEvening))
}
