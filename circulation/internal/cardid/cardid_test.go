package cardid_test

import (
	"testing"

	"github.com/Astemirdum/library-circulation/circulation/internal/cardid"
	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		n       int
		want    string
		wantErr error
	}{
		{name: "first", n: 1, want: "ID000001"},
		{name: "padded", n: 42, want: "ID000042"},
		{name: "last", n: 999999, want: "ID999999"},
		{name: "overflow", n: 1000000, wantErr: errs.ErrFormatOverflow},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := cardid.Format(tt.n)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Len(t, got, 8)
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()
	n, ok := cardid.Parse("ID001000")
	require.True(t, ok)
	require.Equal(t, 1000, n)

	for _, bad := range []string{"", "ID12345", "ID1234567", "XX000001", "id000001", "ID00000a"} {
		_, ok := cardid.Parse(bad)
		require.False(t, ok, bad)
	}
}

func TestFormat_RejectsZero(t *testing.T) {
	t.Parallel()
	_, err := cardid.Format(0)
	require.ErrorIs(t, err, errs.ErrFormatOverflow)
}
