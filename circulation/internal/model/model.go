package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	LoanPeriodDays = 14
	MaxOpenLoans   = 3
	SearchLimit    = 50
)

// DailyFineRate is charged per late calendar day.
var DailyFineRate = decimal.RequireFromString("0.25")

// Date truncates t to its UTC calendar date.
func Date(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func DueDate(dateOut time.Time) time.Time {
	return Date(dateOut).AddDate(0, 0, LoanPeriodDays)
}

type Item struct {
	ISBN    string   `json:"isbn" db:"isbn"`
	Title   string   `json:"title" db:"title"`
	Authors []string `json:"authors" db:"authors"`
}

type ItemSearchResult struct {
	ISBN       string   `json:"isbn" db:"isbn"`
	Title      string   `json:"title" db:"title"`
	Authors    []string `json:"authors" db:"authors"`
	CheckedOut bool     `json:"checkedOut" db:"checked_out"`
}

type Borrower struct {
	CardID  string `json:"cardId" db:"card_id"`
	SSN     string `json:"ssn" db:"ssn"`
	Name    string `json:"name" db:"name"`
	Address string `json:"address" db:"address"`
	Phone   string `json:"phone" db:"phone_number"`
}

type CreateBorrowerRequest struct {
	SSN     string `json:"ssn" validate:"required,ssn"`
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
	Phone   string `json:"phone"`
}

type CheckOutRequest struct {
	ISBN   string `json:"isbn" validate:"required,isbn13"`
	CardID string `json:"cardId" validate:"required,len=8"`
}

type CheckInRequest struct {
	ISBN string `json:"isbn" validate:"required,isbn13"`
}

type Loan struct {
	ID      int        `json:"id" db:"id"`
	ISBN    string     `json:"isbn" db:"isbn"`
	CardID  string     `json:"cardId" db:"card_id"`
	DateOut time.Time  `json:"dateOut" db:"date_out"`
	DueDate time.Time  `json:"dueDate" db:"due_date"`
	DateIn  *time.Time `json:"dateIn,omitempty" db:"date_in"`
}

func (l Loan) Open() bool {
	return l.DateIn == nil
}

type OpenLoan struct {
	ID      int       `json:"id" db:"id"`
	ISBN    string    `json:"isbn" db:"isbn"`
	Title   string    `json:"title" db:"title"`
	CardID  string    `json:"cardId" db:"card_id"`
	DateOut time.Time `json:"dateOut" db:"date_out"`
	DueDate time.Time `json:"dueDate" db:"due_date"`
}

type LoanView struct {
	ID           int        `json:"id" db:"id"`
	ISBN         string     `json:"isbn" db:"isbn"`
	Title        string     `json:"title" db:"title"`
	CardID       string     `json:"cardId" db:"card_id"`
	BorrowerName string     `json:"borrowerName" db:"borrower_name"`
	DateOut      time.Time  `json:"dateOut" db:"date_out"`
	DueDate      time.Time  `json:"dueDate" db:"due_date"`
	DateIn       *time.Time `json:"dateIn,omitempty" db:"date_in"`
}

type CheckIn struct {
	Loan Loan            `json:"loan"`
	Fine decimal.Decimal `json:"fine"`
}

type Fine struct {
	LoanID int             `json:"loanId" db:"loan_id"`
	Amount decimal.Decimal `json:"amount" db:"amount"`
	Paid   bool            `json:"paid" db:"paid"`
}

// FineLoan is a fine together with the dates its amount is derived from.
type FineLoan struct {
	LoanID  int             `db:"loan_id"`
	Amount  decimal.Decimal `db:"amount"`
	Paid    bool            `db:"paid"`
	DateOut time.Time       `db:"date_out"`
	DueDate time.Time       `db:"due_date"`
	DateIn  *time.Time      `db:"date_in"`
}

func (f FineLoan) Loan() Loan {
	return Loan{ID: f.LoanID, DateOut: f.DateOut, DueDate: f.DueDate, DateIn: f.DateIn}
}

type BorrowerFine struct {
	LoanID           int             `json:"loanId" db:"loan_id"`
	Amount           decimal.Decimal `json:"amount" db:"amount"`
	Paid             bool            `json:"paid" db:"paid"`
	ISBN             string          `json:"isbn" db:"isbn"`
	Title            string          `json:"title" db:"title"`
	DateOut          time.Time       `json:"dateOut" db:"date_out"`
	DueDate          time.Time       `json:"dueDate" db:"due_date"`
	DateIn           *time.Time      `json:"dateIn,omitempty" db:"date_in"`
	TotalOutstanding decimal.Decimal `json:"totalOutstanding" db:"total_outstanding"`
}

type FineTotal struct {
	CardID string          `json:"cardId" db:"card_id"`
	Total  decimal.Decimal `json:"total" db:"total"`
}

type SweepResult struct {
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
}

type Payment struct {
	CardID string          `json:"cardId"`
	Fines  int             `json:"fines"`
	Amount decimal.Decimal `json:"amount"`
}

type Catalog struct {
	Books     []Item
	Borrowers []Borrower
}

type ImportStats struct {
	Books       int `json:"books"`
	Authors     int `json:"authors"`
	BookAuthors int `json:"bookAuthors"`
	Borrowers   int `json:"borrowers"`
}
