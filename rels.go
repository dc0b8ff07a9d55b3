package tidyxl

// Relationship parts: xl/_rels/workbook.xml.rels maps sheet ids to
// worksheet paths, xl/worksheets/_rels/sheetN.xml.rels maps a sheet
// to its comments part.

import (
	"encoding/xml"
	"io"
)

const (
	relTypeWorksheet = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet"
	relTypeComments  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/comments"
)

func readRels(reader io.Reader) (*relationships, error) {
	decoder := xml.NewDecoder(reader)
	data := &relationships{}
	err := decoder.Decode(data)
	if err != nil {
		return nil, err
	}
	return data, nil
}

type relationships struct {
	XMLName      xml.Name `xml:"Relationships"`
	Relationship []struct {
		ID     string `xml:"Id,attr"`
		Type   string `xml:"Type,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}
