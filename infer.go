package tidyxl

import "strconv"

// inferValue fills exactly one typed value field of cell from its raw
// type code, cached content and resolved number format. It never
// fails hard: content that does not decode falls back to a safe
// default, and the problem is reported as a diagnostic message
// (empty when the cell decoded cleanly).
func inferValue(cell *Cell, format string, date1904 bool, sst sharedStrings) string {
	switch cell.Type {
	case "b":
		switch cell.Content {
		case "1":
			cell.DataType = TypeLogical
			cell.Logical = ptr(true)
		case "0":
			cell.DataType = TypeLogical
			cell.Logical = ptr(false)
		default:
			cell.DataType = TypeCharacter
			cell.Character = ptr(cell.Content)
			return ErrInvalidBool.Error() + ": " + cell.Content
		}
	case "e":
		cell.DataType = TypeError
		cell.Error = ptr(cell.Content)
	case "s":
		idx, err := strconv.Atoi(cell.Content)
		if err != nil {
			cell.DataType = TypeBlank
			return ErrMissingStringIndex.Error() + ": " + cell.Content
		}
		text, err := sst.get(idx)
		if err != nil {
			// The raw index stays in Content so nothing is lost.
			cell.DataType = TypeBlank
			return ErrMissingStringIndex.Error() + ": " + cell.Content
		}
		cell.DataType = TypeCharacter
		cell.Character = ptr(text)
	case "str":
		// Cached result of a string formula: numbers still surface as
		// numeric (or date, when the format says so).
		setNumericOrCharacter(cell, format, date1904)
	case "inlineStr":
		cell.DataType = TypeCharacter
		cell.Character = ptr(cell.Content)
	default:
		if cell.Content == "" {
			cell.DataType = TypeBlank
			return ""
		}
		if setNumericOrCharacter(cell, format, date1904); cell.DataType == TypeCharacter {
			return "expected number, got: " + cell.Content
		}
	}
	return ""
}

// setNumericOrCharacter decodes content as a number, as a date when
// the number format denotes one, and keeps the raw text otherwise.
func setNumericOrCharacter(cell *Cell, format string, date1904 bool) {
	n, err := strconv.ParseFloat(cell.Content, 64)
	if err != nil {
		cell.DataType = TypeCharacter
		cell.Character = ptr(cell.Content)
		return
	}
	if IsDateFormat(format) {
		d := timeFromSerial(n, date1904)
		cell.DataType = TypeDate
		cell.Date = &d
		return
	}
	cell.DataType = TypeNumeric
	cell.Numeric = &n
}

func ptr[T any](v T) *T {
	return &v
}
