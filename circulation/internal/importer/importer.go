// Package importer reads the library's source CSV exports into a model.Catalog.
package importer

import (
	"bufio"
	"encoding/csv"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/Astemirdum/library-circulation/circulation/internal/cardid"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
)

// detectDelimiter picks tab when the header has more tabs than commas.
func detectDelimiter(line string) rune {
	if strings.Count(line, "\t") > strings.Count(line, ",") {
		return '\t'
	}
	return ','
}

func newReader(r io.Reader) (*csv.Reader, error) {
	br := bufio.NewReader(r)
	first, err := br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if strings.TrimSpace(first) == "" {
		return nil, errors.New("empty input")
	}
	cr := csv.NewReader(io.MultiReader(strings.NewReader(first), br))
	cr.Comma = detectDelimiter(first)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	// a tab counts as leading space, so trimming would swallow empty TSV fields
	cr.TrimLeadingSpace = cr.Comma != '\t'
	return cr, nil
}

type header map[string]int

func readHeader(cr *csv.Reader) (header, error) {
	row, err := cr.Read()
	if err != nil {
		return nil, errors.Wrap(err, "header")
	}
	h := make(header, len(row))
	for i, name := range row {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, ok := h[name]; !ok {
			h[name] = i
		}
	}
	return h, nil
}

// col returns the index of the first present name.
func (h header) col(names ...string) (int, bool) {
	for _, n := range names {
		if i, ok := h[n]; ok {
			return i, true
		}
	}
	return 0, false
}

func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// NormalizeAuthor collapses runs of whitespace inside a name.
func NormalizeAuthor(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// ReadBooks merges rows per ISBN: the first title wins and authors are de-duplicated in order.
func ReadBooks(r io.Reader) ([]model.Item, error) {
	cr, err := newReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "books")
	}
	h, err := readHeader(cr)
	if err != nil {
		return nil, errors.Wrap(err, "books")
	}
	isbn13Col, has13 := h.col("isbn13")
	isbn10Col, has10 := h.col("isbn10", "isbn")
	titleCol, hasTitle := h.col("title")
	authorCol, hasAuthor := h.col("author", "authors")
	if !(has13 || has10) || !hasTitle || !hasAuthor {
		return nil, errors.New("books: columns ISBN10 or ISBN13, Title, Author are required")
	}
	if !has13 {
		isbn13Col = -1
	}
	if !has10 {
		isbn10Col = -1
	}

	var (
		books []model.Item
		index = map[string]int{}
	)
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "books line %d", line)
		}

		isbn, ok := ISBN13(field(row, isbn13Col), field(row, isbn10Col))
		if !ok {
			continue
		}
		i, seen := index[isbn]
		if !seen {
			i = len(books)
			index[isbn] = i
			books = append(books, model.Item{ISBN: isbn, Title: field(row, titleCol), Authors: []string{}})
		}
		for _, a := range strings.Split(field(row, authorCol), ",") {
			a = NormalizeAuthor(a)
			if a != "" && !contains(books[i].Authors, a) {
				books[i].Authors = append(books[i].Authors, a)
			}
		}
	}
	return books, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// ISBN13 prefers a valid 13 digit value and otherwise converts the ISBN-10.
func ISBN13(isbn13, isbn10 string) (string, bool) {
	if d := digits(isbn13); len(d) == 13 {
		return d, true
	}
	d := digits(isbn10)
	if d == "" {
		return "", false
	}
	if len(d) < 10 {
		d = strings.Repeat("0", 10-len(d)) + d
	}
	if len(d) != 10 {
		return "", false
	}
	body := "978" + d[:9]
	return body + string(rune('0'+checkDigit13(body))), true
}

// digits drops separators; a trailing X check character is kept as a digit placeholder.
func digits(s string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(s) {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == 'X':
			b.WriteRune('0')
		}
	}
	return b.String()
}

func checkDigit13(body string) int {
	sum := 0
	for i, r := range body {
		n := int(r - '0')
		if i%2 == 1 {
			n *= 3
		}
		sum += n
	}
	return (10 - sum%10) % 10
}

// ReadBorrowers joins first and last name and the address parts. Rows whose card id
// is outside the issued scheme are skipped and counted.
func ReadBorrowers(r io.Reader) (borrowers []model.Borrower, skipped int, err error) {
	cr, err := newReader(r)
	if err != nil {
		return nil, 0, errors.Wrap(err, "borrowers")
	}
	h, err := readHeader(cr)
	if err != nil {
		return nil, 0, errors.Wrap(err, "borrowers")
	}

	cols := map[string][]string{
		"id":         {"id0000id", "id", "card_id"},
		"ssn":        {"ssn"},
		"first_name": {"first_name"},
		"last_name":  {"last_name"},
		"address":    {"address"},
		"city":       {"city"},
		"state":      {"state"},
		"phone":      {"phone"},
	}
	idx := make(map[string]int, len(cols))
	for key, names := range cols {
		i, ok := h.col(names...)
		if !ok {
			return nil, 0, errors.New("borrowers: columns id, ssn, first_name, last_name, address, city, state, phone are required")
		}
		idx[key] = i
	}

	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, skipped, errors.Wrapf(err, "borrowers line %d", line)
		}
		id := strings.ToUpper(field(row, idx["id"]))
		if id == "" {
			continue
		}
		if _, ok := cardid.Parse(id); !ok {
			skipped++
			continue
		}
		borrowers = append(borrowers, model.Borrower{
			CardID:  id,
			SSN:     field(row, idx["ssn"]),
			Name:    joinNonEmpty(" ", field(row, idx["first_name"]), field(row, idx["last_name"])),
			Address: joinNonEmpty(", ", field(row, idx["address"]), field(row, idx["city"]), field(row, idx["state"])),
			Phone:   field(row, idx["phone"]),
		})
	}
	return borrowers, skipped, nil
}

func joinNonEmpty(sep string, parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
