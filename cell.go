package tidyxl

import "time"

// DataType is the canonical type of a cell value. Exactly the
// matching value field of Cell is populated; for Blank none is.
type DataType string

const (
	TypeError     DataType = "error"
	TypeLogical   DataType = "logical"
	TypeNumeric   DataType = "numeric"
	TypeDate      DataType = "date"
	TypeCharacter DataType = "character"
	TypeBlank     DataType = "blank"
)

// Cell is one extracted cell. The column set and its optionality are
// a compatibility contract with downstream consumers of tidyxl
// output: do not rename or widen.
type Cell struct {
	Sheet   string `json:"sheet"`
	Address string `json:"address"`
	Row     int    `json:"row"`
	Col     int    `json:"col"`

	// Content is the raw cached value as read, before type inference.
	Content string `json:"content,omitempty"`

	// Formula text as stored, with shared formulas rewritten for this
	// cell. FormulaType is "array" for array formulas; a shared
	// formula is implied by FormulaGroup being set. FormulaRef is the
	// declared extent, present on group anchors only.
	Formula      string `json:"formula,omitempty"`
	FormulaType  string `json:"formula_type,omitempty"`
	FormulaRef   string `json:"formula_ref,omitempty"`
	FormulaGroup *int   `json:"formula_group,omitempty"`

	// Type is the raw cell type letter from the file (b, e, s, str,
	// inlineStr; empty means implicit numeric).
	Type     string   `json:"type,omitempty"`
	DataType DataType `json:"data_type"`

	Error     *string    `json:"error,omitempty"`
	Logical   *bool      `json:"logical,omitempty"`
	Numeric   *float64   `json:"numeric,omitempty"`
	Date      *time.Time `json:"date,omitempty"`
	Character *string    `json:"character,omitempty"`

	Comment *string `json:"comment,omitempty"`

	Height float64 `json:"height"`
	Width  float64 `json:"width"`

	// StyleFormat is always present, id 0 being the workbook default
	// style. LocalFormatID is present only when the cell carries a
	// local formatting override.
	StyleFormat   int  `json:"style_format"`
	LocalFormatID *int `json:"local_format_id,omitempty"`
}

// Diag is a non-fatal, cell-local problem recorded during a sheet
// pass. Diagnostics ride on the sheet result, not on cells, so the
// cell column contract stays fixed.
type Diag struct {
	Address string `json:"address,omitempty"`
	Msg     string `json:"msg"`
}

// SheetCells is the result of extracting one sheet. Err is set when
// the sheet failed mid-pass; Cells then holds the records produced up
// to the failure point.
type SheetCells struct {
	Name  string `json:"name"`
	Cells []Cell `json:"cells"`
	Diags []Diag `json:"diags,omitempty"`
	Err   error  `json:"-"`
}
