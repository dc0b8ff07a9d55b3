package tidyxl

import (
	"fmt"
	"strconv"
)

// Address is a 1-based (row, column) position within one sheet.
type Address struct {
	Row int
	Col int
}

// ParseAddress decodes an A1-style reference: a column letter run in
// bijective base 26 (A=1 .. Z=26, AA=27) followed by a row digit run.
func ParseAddress(s string) (Address, error) {
	col := 0
	i := 0
	for ; i < len(s); i++ {
		c := s[i]
		if c < 'A' || c > 'Z' {
			break
		}
		col = col*26 + int(c-'A') + 1
	}
	if col == 0 || i == len(s) {
		return Address{}, fmt.Errorf("%q: %w", s, ErrMalformedAddress)
	}

	row := 0
	for ; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return Address{}, fmt.Errorf("%q: %w", s, ErrMalformedAddress)
		}
		row = row*10 + int(c-'0')
	}
	if row == 0 {
		return Address{}, fmt.Errorf("%q: %w", s, ErrMalformedAddress)
	}

	return Address{Row: row, Col: col}, nil
}

func (a Address) String() string {
	return columnName(a.Col) + strconv.Itoa(a.Row)
}

func columnName(col int) string {
	var buf [8]byte
	i := len(buf)
	for col > 0 {
		col--
		i--
		buf[i] = byte('A' + col%26)
		col /= 26
	}
	return string(buf[i:])
}

// translateRef shifts the relative components of a single A1-style
// reference, which may carry independent $ markers on its column and
// row parts. Absolute components are copied unchanged. The reference
// is returned as-is with an error when it is not a plain cell address
// or when the shift would move it off the sheet.
func translateRef(ref string, dRow, dCol int) (string, error) {
	i := 0
	colAbs := false
	if i < len(ref) && ref[i] == '$' {
		colAbs = true
		i++
	}
	colStart := i
	for i < len(ref) && ref[i] >= 'A' && ref[i] <= 'Z' {
		i++
	}
	if i == colStart {
		return ref, fmt.Errorf("%q: %w", ref, ErrMalformedAddress)
	}
	colPart := ref[colStart:i]

	rowAbs := false
	if i < len(ref) && ref[i] == '$' {
		rowAbs = true
		i++
	}
	rowStart := i
	for i < len(ref) && ref[i] >= '0' && ref[i] <= '9' {
		i++
	}
	if i == rowStart || i != len(ref) {
		return ref, fmt.Errorf("%q: %w", ref, ErrMalformedAddress)
	}
	row, err := strconv.Atoi(ref[rowStart:])
	if err != nil {
		return ref, fmt.Errorf("%q: %w", ref, ErrMalformedAddress)
	}

	col := 0
	for j := 0; j < len(colPart); j++ {
		col = col*26 + int(colPart[j]-'A') + 1
	}

	if !colAbs {
		col += dCol
	}
	if !rowAbs {
		row += dRow
	}
	if col < 1 || row < 1 {
		return ref, fmt.Errorf("%q: shifted off sheet: %w", ref, ErrMalformedAddress)
	}

	var out string
	if colAbs {
		out += "$"
	}
	out += columnName(col)
	if rowAbs {
		out += "$"
	}
	out += strconv.Itoa(row)
	return out, nil
}
