package tidyxl

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Excel's standard dimensions, used when the sheet declares none.
const (
	standardRowHeight = 15.0
	standardColWidth  = 8.43
)

type xmlRow struct {
	R  int     `xml:"r,attr"`
	Ht float64 `xml:"ht,attr"`
	C  []xmlC  `xml:"c"`
}

type xmlC struct {
	R  string `xml:"r,attr"`
	S  *int   `xml:"s,attr"`
	T  string `xml:"t,attr"`
	F  *xmlF  `xml:"f"`
	V  string `xml:"v"`
	IS *struct {
		T string `xml:"t"`
		R []struct {
			T string `xml:"t"`
		} `xml:"r"`
	} `xml:"is"`
}

type xmlF struct {
	Content string `xml:",chardata"`
	T       string `xml:"t,attr"`
	Ref     string `xml:"ref,attr"`
	Si      *int   `xml:"si,attr"`
}

type xmlCols struct {
	Col []struct {
		Min   int     `xml:"min,attr"`
		Max   int     `xml:"max,attr"`
		Width float64 `xml:"width,attr"`
	} `xml:"col"`
}

func (c *xmlCols) width(col int, fallback float64) float64 {
	for _, entry := range c.Col {
		if col >= entry.Min && col <= entry.Max && entry.Width > 0 {
			return entry.Width
		}
	}
	return fallback
}

// pendingMember is a cell that referenced a shared formula group
// before its anchor was seen; it is resolved in the finishing pass.
type pendingMember struct {
	record int
	group  int
	addr   Address
}

// extractSheet runs the single ordered pass over one worksheet part.
// Cell-local problems degrade to defaults plus a diagnostic;
// structural corruption fails the sheet, keeping the records produced
// so far.
func (w *Workbook) extractSheet(file *zip.File, name string) SheetCells {
	result := SheetCells{Name: name}

	reader, err := file.Open()
	if err != nil {
		result.Err = fmt.Errorf("open worksheet %s: %w", name, err)
		return result
	}
	defer reader.Close()

	comments := w.sheetComments(file.Name)

	decoder := xml.NewDecoder(reader)
	groups := newGroupRegistry()
	var pending []pendingMember
	var cols xmlCols
	rowHeight := standardRowHeight
	colWidth := standardColWidth

	for {
		t, err := decoder.Token()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				result.Err = fmt.Errorf("sheet %s: %v: %w", name, err, ErrIncorrectSheet)
			}
			break
		}

		start, ok := t.(xml.StartElement)
		if !ok {
			continue
		}
		switch start.Name.Local {
		case "worksheet", "sheetData":
			//
		case "sheetFormatPr":
			for _, attr := range start.Attr {
				switch attr.Name.Local {
				case "defaultRowHeight":
					if h, err := strconv.ParseFloat(attr.Value, 64); err == nil {
						rowHeight = h
					}
				case "defaultColWidth":
					if cw, err := strconv.ParseFloat(attr.Value, 64); err == nil {
						colWidth = cw
					}
				}
			}
			_ = decoder.Skip()
		case "cols":
			if err := decoder.DecodeElement(&cols, &start); err != nil {
				result.Err = fmt.Errorf("sheet %s: %v: %w", name, err, ErrIncorrectSheet)
				return result
			}
		case "row":
			var row xmlRow
			if err := decoder.DecodeElement(&row, &start); err != nil {
				result.Err = fmt.Errorf("sheet %s: %v: %w", name, err, ErrIncorrectSheet)
				return result
			}
			if err := w.extractRow(&result, &row, &cols, rowHeight, colWidth, groups, &pending, comments); err != nil {
				result.Err = err
				return result
			}
		default:
			_ = decoder.Skip()
		}
	}

	finishSheet(&result, groups, pending)
	return result
}

func (w *Workbook) extractRow(result *SheetCells, row *xmlRow, cols *xmlCols, defaultHeight, defaultWidth float64,
	groups *groupRegistry, pending *[]pendingMember, comments map[string]string) error {

	height := defaultHeight
	if row.Ht > 0 {
		height = row.Ht
	}

	for i := range row.C {
		node := &row.C[i]
		if node.R == "" {
			return fmt.Errorf("sheet %s: cell without address in row %d: %w", result.Name, row.R, ErrIncorrectSheet)
		}
		addr, err := ParseAddress(node.R)
		if err != nil {
			return fmt.Errorf("sheet %s: %v: %w", result.Name, err, ErrIncorrectSheet)
		}

		cell := Cell{
			Sheet:   result.Name,
			Address: node.R,
			Row:     addr.Row,
			Col:     addr.Col,
			Content: node.V,
			Type:    node.T,
			Height:  height,
			Width:   cols.width(addr.Col, defaultWidth),
		}

		localID, hasLocal := 0, false
		if node.S != nil {
			localID, hasLocal = *node.S, true
		}
		style, local, format, diag := w.styles.resolve(localID, hasLocal)
		cell.StyleFormat = style
		cell.LocalFormatID = local
		if diag != "" {
			result.Diags = append(result.Diags, Diag{Address: node.R, Msg: diag})
		}

		if node.T == "inlineStr" && node.IS != nil {
			cell.Content = node.IS.T
			for _, r := range node.IS.R {
				cell.Content += r.T
			}
		}

		if diag := inferValue(&cell, format, w.date1904, w.sharedStrings); diag != "" {
			result.Diags = append(result.Diags, Diag{Address: node.R, Msg: diag})
		}

		if text, ok := comments[node.R]; ok {
			cell.Comment = ptr(text)
		}

		resolveFormula(result, &cell, node, addr, groups, pending)
		result.Cells = append(result.Cells, cell)
	}
	return nil
}

// resolveFormula routes a cell's formula node through the group
// registry: shared anchors and members, array anchors, and ordinary
// formulas. Members seen before their anchor are buffered.
func resolveFormula(result *SheetCells, cell *Cell, node *xmlC, addr Address,
	groups *groupRegistry, pending *[]pendingMember) {

	if node.F == nil {
		return
	}
	f := node.F

	switch f.T {
	case "array":
		cell.Formula = f.Content
		cell.FormulaType = "array"
		cell.FormulaRef = f.Ref
		if f.Ref != "" {
			if overlap := groups.registerArray(addr, f.Content, f.Ref); overlap {
				result.Diags = append(result.Diags, Diag{
					Address: node.R,
					Msg:     "array formula range " + f.Ref + " overlaps an earlier one",
				})
			}
		}
	case "shared":
		if f.Si == nil {
			cell.Formula = f.Content
			return
		}
		cell.FormulaGroup = ptr(*f.Si)
		if f.Content != "" {
			groups.registerShared(*f.Si, addr, f.Content, f.Ref)
			cell.Formula = f.Content
			cell.FormulaRef = f.Ref
			return
		}
		if text, ok := groups.sharedAt(*f.Si, addr); ok {
			cell.Formula = text
			return
		}
		*pending = append(*pending, pendingMember{
			record: len(result.Cells),
			group:  *f.Si,
			addr:   addr,
		})
	default:
		cell.Formula = f.Content
	}
}

// finishSheet resolves the buffered forward references and propagates
// array formula text to the member cells of each declared range. A
// group id never registered by end of sheet leaves its members
// formula-less, with a diagnostic.
func finishSheet(result *SheetCells, groups *groupRegistry, pending []pendingMember) {
	for _, p := range pending {
		text, ok := groups.sharedAt(p.group, p.addr)
		if !ok {
			cell := &result.Cells[p.record]
			cell.FormulaGroup = nil
			result.Diags = append(result.Diags, Diag{
				Address: cell.Address,
				Msg:     "shared formula group " + strconv.Itoa(p.group) + " was never registered",
			})
			continue
		}
		result.Cells[p.record].Formula = text
	}

	for i := range result.Cells {
		cell := &result.Cells[i]
		if cell.Formula != "" || cell.FormulaGroup != nil {
			continue
		}
		if group, ok := groups.arrayAt(Address{Row: cell.Row, Col: cell.Col}); ok {
			cell.Formula = group.text
			cell.FormulaType = "array"
		}
	}
}
