package tidyxl

import (
	"encoding/xml"
	"io"
)

type xmlComments struct {
	XMLName     xml.Name `xml:"comments"`
	CommentList struct {
		Comment []struct {
			Ref  string `xml:"ref,attr"`
			Text struct {
				T string `xml:"t"`
				R []struct {
					T string `xml:"t"`
				} `xml:"r"`
			} `xml:"text"`
		} `xml:"comment"`
	} `xml:"commentList"`
}

// readComments builds the per-sheet comment map keyed by A1 address.
// Rich-text runs are concatenated to plain text.
func readComments(reader io.Reader) (map[string]string, error) {
	data := &xmlComments{}
	err := xml.NewDecoder(reader).Decode(data)
	if err != nil {
		return nil, err
	}

	result := make(map[string]string, len(data.CommentList.Comment))
	for _, c := range data.CommentList.Comment {
		text := c.Text.T
		for _, r := range c.Text.R {
			text += r.T
		}
		result[c.Ref] = text
	}
	return result, nil
}
