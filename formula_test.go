package tidyxl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTranslateFormula(t *testing.T) {
	for _, tc := range []struct {
		text       string
		dRow, dCol int
		want       string
	}{
		// Row-relative references shift; absolute rows stay put.
		{"B1+C$2", 1, 0, "B2+C$2"},
		{"B1+C$2", 2, 1, "C3+D$2"},
		{"$A$1*2", 5, 5, "$A$1*2"},
		{"SUM(A1:B2)", 1, 1, "SUM(B2:C3)"},
		{"SUM(A1,B2)", 1, 0, "SUM(A2,B3)"},
		{"IF(A1>0,\"yes\",\"no\")", 1, 0, "IF(A2>0,\"yes\",\"no\")"},
		{"(A1+A2)*$B$1", 0, 1, "(B1+B2)*$B$1"},
		{"Sheet2!A1+B1", 1, 0, "Sheet2!A2+B2"},
		// References into other workbooks are opaque.
		{"[1]Sheet1!A1+B1", 1, 0, "[1]Sheet1!A1+B2"},
		// Whole-column and whole-row spans pass through unchanged.
		{"SUM(A:A)", 1, 1, "SUM(A:A)"},
		{"SUM(1:1)", 1, 1, "SUM(1:1)"},
		{"1+2", 3, 3, "1+2"},
	} {
		require.Equal(t, tc.want, translateFormula(tc.text, tc.dRow, tc.dCol), tc.text)
	}
}

func TestParseRangeRef(t *testing.T) {
	r, err := parseRangeRef("A1:B3")
	require.NoError(t, err)
	require.Equal(t, rangeRef{from: Address{1, 1}, to: Address{3, 2}}, r)

	r, err = parseRangeRef("C7")
	require.NoError(t, err)
	require.Equal(t, rangeRef{from: Address{7, 3}, to: Address{7, 3}}, r)

	_, err = parseRangeRef("nope")
	require.Error(t, err)
}

func TestRangeRefContains(t *testing.T) {
	r, err := parseRangeRef("B2:D4")
	require.NoError(t, err)
	require.True(t, r.contains(Address{2, 2}))
	require.True(t, r.contains(Address{4, 4}))
	require.True(t, r.contains(Address{3, 3}))
	require.False(t, r.contains(Address{1, 2}))
	require.False(t, r.contains(Address{3, 5}))
}

func TestSharedGroupResolution(t *testing.T) {
	groups := newGroupRegistry()
	groups.registerShared(0, Address{1, 1}, "B1+C$2", "A1:A3")

	text, ok := groups.sharedAt(0, Address{1, 1})
	require.True(t, ok)
	require.Equal(t, "B1+C$2", text)

	text, ok = groups.sharedAt(0, Address{2, 1})
	require.True(t, ok)
	require.Equal(t, "B2+C$2", text)

	text, ok = groups.sharedAt(0, Address{3, 1})
	require.True(t, ok)
	require.Equal(t, "B3+C$2", text)

	_, ok = groups.sharedAt(7, Address{2, 1})
	require.False(t, ok)
}

func TestArrayGroupResolution(t *testing.T) {
	groups := newGroupRegistry()
	overlap := groups.registerArray(Address{1, 1}, "SUM(B1:B3)", "A1:A3")
	require.False(t, overlap)

	// Array formula text applies verbatim to every member.
	for row := 1; row <= 3; row++ {
		group, ok := groups.arrayAt(Address{Row: row, Col: 1})
		require.True(t, ok)
		require.Equal(t, "SUM(B1:B3)", group.text)
	}

	_, ok := groups.arrayAt(Address{4, 1})
	require.False(t, ok)
}

func TestArrayGroupOverlapFirstWins(t *testing.T) {
	groups := newGroupRegistry()
	require.False(t, groups.registerArray(Address{1, 1}, "first", "A1:B2"))
	require.True(t, groups.registerArray(Address{2, 2}, "second", "B2:C3"))

	group, ok := groups.arrayAt(Address{2, 2})
	require.True(t, ok)
	require.Equal(t, "first", group.text)

	group, ok = groups.arrayAt(Address{3, 3})
	require.True(t, ok)
	require.Equal(t, "second", group.text)
}
