package tidyxl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsDateFormat(t *testing.T) {
	for _, tc := range []struct {
		format string
		want   bool
	}{
		{"yyyy-mm-dd", true},
		{"0.0%", false},
		{"h:m:s", true},
		{"£#,##0;[Red]-£#,##0", false},
		{"general", false},
		{"", false},
		{"mm-dd-yy", true},
		{"d-mmm-yy", true},
		{"h:mm am/pm", true},
		{"[h]:mm:ss", true},
		{"mm:ss", true},
		{"#,##0.00", false},
		{"0.00e+00", false},
		{"@", false},
		{`"today: "yyyy`, true},
		// Date letters inside literals or escapes are not date codes.
		{`"ymdhs"0.0`, false},
		{`0.0\d`, false},
		{`0.0_d`, false},
		// Only the first section counts.
		{`0.00;yyyy`, false},
		{`yyyy;0.00`, true},
		// Bracketed colors and conditions never count.
		{"[Red]0.00", false},
		{"[$USD-409]#,##0", false},
		{"YYYY/MM/DD", true},
	} {
		require.Equal(t, tc.want, IsDateFormat(tc.format), tc.format)
	}
}

func TestDateTokensMinuteVsMonth(t *testing.T) {
	// m after an hour token is a minute.
	require.Equal(t, []dateToken{tokHour, tokMinute, tokSecond}, dateTokens("h:m:s"))
	require.Equal(t, []dateToken{tokHour, tokMinute}, dateTokens("hh:mm"))
	// m before a second token is a minute.
	require.Equal(t, []dateToken{tokMinute, tokSecond}, dateTokens("mm:ss"))
	// m on its own is a month.
	require.Equal(t, []dateToken{tokYear, tokMonth, tokDay}, dateTokens("yyyy-mm-dd"))
	require.Equal(t, []dateToken{tokMonth, tokYear}, dateTokens("mmm-yy"))
	// Elapsed-time brackets are time codes.
	require.Equal(t, []dateToken{tokElapsed, tokMinute, tokSecond}, dateTokens("[h]:mm:ss"))
}

func TestFirstFormatSection(t *testing.T) {
	require.Equal(t, "0.00", firstFormatSection("0.00;[Red]-0.00;0;@"))
	require.Equal(t, `"a;b"0`, firstFormatSection(`"a;b"0;yyyy`))
	require.Equal(t, `0\;0`, firstFormatSection(`0\;0;@`))
	require.Equal(t, "yyyy", firstFormatSection("yyyy"))
}
