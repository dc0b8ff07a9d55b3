package tidyxl

import (
	"encoding/xml"
	"io"
)

// styleSheet holds the two-tier format tables: localXfs (cellXfs) are
// cell-level overrides, each pointing at a base style in styleXfs
// (cellStyleXfs) through its xfId. Custom number formats live in
// numFormats; ids at or below builtinNumFormatsCount are builtin.
type styleSheet struct {
	numFormats map[int]string
	localXfs   []xf
	styleXfs   []xf
}

type xf struct {
	numFmtID int
	xfID     int
}

type xmlStyleSheet struct {
	XMLName xml.Name `xml:"styleSheet"`
	NumFmts struct {
		NumFmt []struct {
			NumFmtID   int    `xml:"numFmtId,attr"`
			FormatCode string `xml:"formatCode,attr"`
		} `xml:"numFmt"`
	} `xml:"numFmts"`
	CellStyleXfs struct {
		Xf []xmlXf `xml:"xf"`
	} `xml:"cellStyleXfs"`
	CellXfs struct {
		Xf []xmlXf `xml:"xf"`
	} `xml:"cellXfs"`
}

type xmlXf struct {
	NumFmtID int `xml:"numFmtId,attr"`
	XfID     int `xml:"xfId,attr"`
}

func readStyleSheet(reader io.Reader) (*styleSheet, error) {
	data := &xmlStyleSheet{}
	err := xml.NewDecoder(reader).Decode(data)
	if err != nil {
		return nil, err
	}

	result := &styleSheet{
		numFormats: make(map[int]string, len(data.NumFmts.NumFmt)),
	}
	for _, f := range data.NumFmts.NumFmt {
		if f.NumFmtID > builtinNumFormatsCount {
			result.numFormats[f.NumFmtID] = f.FormatCode
		}
	}
	for _, x := range data.CellStyleXfs.Xf {
		result.styleXfs = append(result.styleXfs, xf{numFmtID: x.NumFmtID, xfID: x.XfID})
	}
	for _, x := range data.CellXfs.Xf {
		result.localXfs = append(result.localXfs, xf{numFmtID: x.NumFmtID, xfID: x.XfID})
	}
	return result, nil
}

func (s *styleSheet) formatCode(numFmtID int) string {
	if code, ok := s.numFormats[numFmtID]; ok {
		return code
	}
	if numFmtID >= 0 && numFmtID < len(builtinNumFormats) && builtinNumFormats[numFmtID] != "" {
		return builtinNumFormats[numFmtID]
	}
	return "general"
}

// resolve maps a cell's local format reference (the s attribute,
// hasLocal false when absent) to the style format id, the optional
// local format id and the effective number format code. An
// out-of-range id degrades to the defaults and reports a diagnostic
// instead of failing the sheet.
func (s *styleSheet) resolve(localID int, hasLocal bool) (style int, local *int, code string, diag string) {
	if !hasLocal {
		localID = 0
	}
	if localID < 0 || localID >= len(s.localXfs) {
		if hasLocal {
			return 0, nil, "general", ErrFormatIndex.Error()
		}
		return 0, nil, "general", ""
	}

	x := s.localXfs[localID]
	if hasLocal {
		local = ptr(localID)
	}
	return x.xfID, local, s.formatCode(x.numFmtID), ""
}
