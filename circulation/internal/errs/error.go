package errs

import (
	"errors"
)

// Business-rule denials. They are returned to the caller as is and never retried.
var (
	ErrItemNotFound      = errors.New("item not found")
	ErrBorrowerNotFound  = errors.New("borrower not found")
	ErrItemAlreadyOut    = errors.New("item is already checked out")
	ErrUnpaidFines       = errors.New("borrower has unpaid fines")
	ErrLoanLimitExceeded = errors.New("borrower has reached the loan limit")
	ErrNoActiveLoan      = errors.New("no active loan found for this item")
	ErrLoanStillOpen     = errors.New("cannot pay fines for items that are still checked out")
	ErrDuplicateIdentity = errors.New("borrower already has a card")
	ErrFormatOverflow    = errors.New("card id numbers exhausted")
)

// Infrastructure failures.
var (
	ErrNotFound = errors.New("not found")
	// ErrConflict means the transaction kept losing serialization races; the caller may retry.
	ErrConflict = errors.New("concurrent update conflict, retry later")
	ErrTimeout  = errors.New("store lock wait timeout, retry later")
)

var denials = []error{
	ErrItemNotFound, ErrBorrowerNotFound, ErrItemAlreadyOut, ErrUnpaidFines, ErrLoanLimitExceeded,
	ErrNoActiveLoan, ErrLoanStillOpen, ErrDuplicateIdentity, ErrFormatOverflow,
}

func IsDenial(err error) bool {
	for _, d := range denials {
		if errors.Is(err, d) {
			return true
		}
	}
	return false
}

func IsRetryable(err error) bool {
	return errors.Is(err, ErrConflict) || errors.Is(err, ErrTimeout)
}
