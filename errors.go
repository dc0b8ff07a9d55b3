package tidyxl

import "errors"

var (
	ErrWorkbookRelsNotExist = errors.New("parse xlsx file failed: xl/_rels/workbook.xml.rels doesn't exist")
	ErrWorkbookNotExist     = errors.New("parse xlsx file failed: xl/workbook.xml doesn't exist")
	ErrSheetNotFound        = errors.New("sheet not found")
	ErrIncorrectSheet       = errors.New("incorrect sheet")
	ErrMalformedAddress     = errors.New("malformed cell address")
	ErrMissingStringIndex   = errors.New("shared string index out of range")
	ErrFormatIndex          = errors.New("format index out of range")
	ErrInvalidBool          = errors.New("invalid value in bool cell")
)
