package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
)

func TestISBN13(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name           string
		isbn13, isbn10 string
		want           string
		ok             bool
	}{
		{name: "isbn13 wins", isbn13: "978-0-19-515344-6", isbn10: "0195153448", want: "9780195153446", ok: true},
		{name: "from isbn10", isbn10: "0195153448", want: "9780195153446", ok: true},
		{name: "lost leading zero", isbn10: "195153448", want: "9780195153446", ok: true},
		{name: "x check digit", isbn10: "080442957X", want: "9780804429573", ok: true},
		{name: "empty", ok: false},
		{name: "too long", isbn10: "12345678901", ok: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ISBN13(tt.isbn13, tt.isbn10)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestReadBooks(t *testing.T) {
	t.Parallel()
	const tsv = "ISBN10\tISBN13\tTitle\tAuthor\n" +
		"0195153448\t9780195153446\tClassical Mythology\tMark P.  O. Morford,Robert J. Lenardon\n" +
		"0195153448\t9780195153446\tDuplicate Title\tMark P. O. Morford\n" +
		"\t\tNo Isbn\tNobody\n" +
		"0002005018\t\tClara Callan\tRichard Bruce Wright\n"

	books, err := ReadBooks(strings.NewReader(tsv))
	require.NoError(t, err)
	require.Equal(t, []model.Item{
		{ISBN: "9780195153446", Title: "Classical Mythology", Authors: []string{"Mark P. O. Morford", "Robert J. Lenardon"}},
		{ISBN: "9780002005012", Title: "Clara Callan", Authors: []string{"Richard Bruce Wright"}},
	}, books)
}

func TestReadBooks_EmptyTabFieldsKeepColumns(t *testing.T) {
	t.Parallel()
	const tsv = "ISBN10\tISBN13\tTitle\tAuthor\n" +
		"0002005018\t\tClara Callan\tRichard Bruce Wright\n" +
		"\t9780060973292\tDecision in Normandy\tCarlo D'Este\n"

	books, err := ReadBooks(strings.NewReader(tsv))
	require.NoError(t, err)
	require.Equal(t, []model.Item{
		{ISBN: "9780002005012", Title: "Clara Callan", Authors: []string{"Richard Bruce Wright"}},
		{ISBN: "9780060973292", Title: "Decision in Normandy", Authors: []string{"Carlo D'Este"}},
	}, books)
}

func TestReadBooks_CommaLeadingSpace(t *testing.T) {
	t.Parallel()
	books, err := ReadBooks(strings.NewReader("isbn10, title, author\n0195153448, Classical Mythology, \"Morford, Lenardon\"\n"))
	require.NoError(t, err)
	require.Equal(t, []model.Item{
		{ISBN: "9780195153446", Title: "Classical Mythology", Authors: []string{"Morford", "Lenardon"}},
	}, books)
}

func TestReadBooks_CommaAndMissingColumns(t *testing.T) {
	t.Parallel()
	books, err := ReadBooks(strings.NewReader("isbn10,title,author\n0195153448,Classical Mythology,\"Morford, Lenardon\"\n"))
	require.NoError(t, err)
	require.Len(t, books, 1)
	require.Equal(t, []string{"Morford", "Lenardon"}, books[0].Authors)

	_, err = ReadBooks(strings.NewReader("isbn10,title\n0195153448,x\n"))
	require.Error(t, err)

	_, err = ReadBooks(strings.NewReader(""))
	require.Error(t, err)
}

func TestReadBorrowers(t *testing.T) {
	t.Parallel()
	const csv = "ID0000id,ssn,first_name,last_name,email,address,city,state,phone\n" +
		"ID000001,850-47-3740,Emma,Nelson,e@x.org,4677 Park Ave,Dallas,TX,(469) 555-0101\n" +
		"BAD,111-11-1111,No,Card,n@x.org,1 Main,Austin,TX,\n" +
		"id000002,478-59-4113,Ada,,a@x.org,12 Oak St,,TX,\n"

	got, skipped, err := ReadBorrowers(strings.NewReader(csv))
	require.NoError(t, err)
	require.Equal(t, 1, skipped)
	require.Equal(t, []model.Borrower{
		{CardID: "ID000001", SSN: "850-47-3740", Name: "Emma Nelson", Address: "4677 Park Ave, Dallas, TX", Phone: "(469) 555-0101"},
		{CardID: "ID000002", SSN: "478-59-4113", Name: "Ada", Address: "12 Oak St, TX"},
	}, got)
}

func TestNormalizeAuthor(t *testing.T) {
	t.Parallel()
	require.Equal(t, "J. R. R. Tolkien", NormalizeAuthor("  J. R.\tR.   Tolkien "))
}
