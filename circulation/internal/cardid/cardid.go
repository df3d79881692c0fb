// Package cardid implements the borrower card identifier scheme: a two letter
// prefix followed by a zero padded six digit number, e.g. ID000042.
package cardid

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
)

const (
	Prefix = "ID"
	Digits = 6
	Max    = 999999
)

// Pattern matches identifiers issued under the scheme; usable as a postgres regex too.
const Pattern = `^ID[0-9]{6}$`

var re = regexp.MustCompile(Pattern)

func Format(n int) (string, error) {
	if n < 1 || n > Max {
		return "", errs.ErrFormatOverflow
	}
	return fmt.Sprintf("%s%0*d", Prefix, Digits, n), nil
}

// Parse returns the numeric part of id, ok is false for ids outside the scheme.
func Parse(id string) (n int, ok bool) {
	if !re.MatchString(id) {
		return 0, false
	}
	n, err := strconv.Atoi(id[len(Prefix):])
	if err != nil {
		return 0, false
	}
	return n, true
}
