package tidyxl

// Builtin format table taken from https://github.com/tealeg/xlsx

import "strings"

const builtinNumFormatsCount = 163

var builtinNumFormats = []string{
	0:  "general",
	1:  "0",
	2:  "0.00",
	3:  "#,##0",
	4:  "#,##0.00",
	9:  "0%",
	10: "0.00%",
	11: "0.00e+00",
	12: "# ?/?",
	13: "# ??/??",
	14: "mm-dd-yy",
	15: "d-mmm-yy",
	16: "d-mmm",
	17: "mmm-yy",
	18: "h:mm am/pm",
	19: "h:mm:ss am/pm",
	20: "h:mm",
	21: "h:mm:ss",
	22: "m/d/yy h:mm",
	37: "#,##0 ;(#,##0)",
	38: "#,##0 ;[red](#,##0)",
	39: "#,##0.00;(#,##0.00)",
	40: "#,##0.00;[red](#,##0.00)",
	41: `_(* #,##0_);_(* \(#,##0\);_(* "-"_);_(@_)`,
	42: `_("$"* #,##0_);_("$* \(#,##0\);_("$"* "-"_);_(@_)`,
	43: `_(* #,##0.00_);_(* \(#,##0.00\);_(* "-"??_);_(@_)`,
	44: `_("$"* #,##0.00_);_("$"* \(#,##0.00\);_("$"* "-"??_);_(@_)`,
	45: "mm:ss",
	46: "[h]:mm:ss",
	47: "mmss.0",
	48: "##0.0e+0",
	49: "@",
}

type dateToken int

const (
	tokYear dateToken = iota
	tokMonth
	tokDay
	tokHour
	tokMinute
	tokSecond
	tokElapsed
)

// IsDateFormat reports whether a number format string denotes a date
// or time when applied to a numeric value. Only the first of up to
// four ;-separated sections matters: Excel applies it to positive,
// hence date-valued, content.
func IsDateFormat(format string) bool {
	return len(dateTokens(firstFormatSection(format))) > 0
}

// firstFormatSection cuts the format at the first ; that is outside
// double-quoted literals and not backslash-escaped.
func firstFormatSection(format string) string {
	for i := 0; i < len(format); i++ {
		switch format[i] {
		case ';':
			return format[:i]
		case '\\':
			i++
		case '"':
			end := strings.IndexByte(format[i+1:], '"')
			if end == -1 {
				return format
			}
			i += end + 1
		}
	}
	return format
}

// dateTokens scans one format section for date/time code letters,
// skipping quoted literals, escaped characters and bracketed sections
// other than the elapsed-time forms [h], [m], [s]. The meaning of m
// is context-sensitive: it is a minute next to an earlier hour token
// or a later second token, a month otherwise.
func dateTokens(section string) []dateToken {
	var toks []dateToken
	sawHour := false
	for i := 0; i < len(section); i++ {
		switch c := section[i]; c {
		case '"':
			end := strings.IndexByte(section[i+1:], '"')
			if end == -1 {
				return toks
			}
			i += end + 1
		case '\\', '_', '*':
			i++
		case '[':
			end := strings.IndexByte(section[i:], ']')
			if end == -1 {
				return toks
			}
			switch strings.ToLower(section[i+1 : i+end]) {
			case "h", "hh":
				toks = append(toks, tokElapsed)
				sawHour = true
			case "m", "mm", "s", "ss":
				toks = append(toks, tokElapsed)
			}
			i += end
		default:
			switch c | 0x20 {
			case 'y':
				toks = append(toks, tokYear)
			case 'd':
				toks = append(toks, tokDay)
			case 'h':
				toks = append(toks, tokHour)
				sawHour = true
			case 's':
				toks = append(toks, tokSecond)
			case 'm':
				end := endOfLetterRun(section, i)
				if sawHour || secondTokenFollows(section, end) {
					toks = append(toks, tokMinute)
				} else {
					toks = append(toks, tokMonth)
				}
				i = end - 1
				continue
			default:
				continue
			}
			i = endOfLetterRun(section, i) - 1
		}
	}
	return toks
}

// endOfLetterRun treats a repeated code letter (yyyy, mm) as one token.
func endOfLetterRun(s string, start int) int {
	i := start + 1
	for i < len(s) && s[i]|0x20 == s[start]|0x20 {
		i++
	}
	return i
}

// secondTokenFollows looks for an s/ss token later in the section,
// before any hour token, with the same skipping rules as dateTokens.
func secondTokenFollows(section string, from int) bool {
	for i := from; i < len(section); i++ {
		switch c := section[i]; c {
		case '"':
			end := strings.IndexByte(section[i+1:], '"')
			if end == -1 {
				return false
			}
			i += end + 1
		case '\\', '_', '*':
			i++
		case '[':
			end := strings.IndexByte(section[i:], ']')
			if end == -1 {
				return false
			}
			switch strings.ToLower(section[i+1 : i+end]) {
			case "s", "ss":
				return true
			case "h", "hh":
				return false
			}
			i += end
		default:
			switch c | 0x20 {
			case 's':
				return true
			case 'h':
				return false
			}
		}
	}
	return false
}
