package tidyxl

import (
	"strings"

	"github.com/xuri/efp"
)

// formulaGroup is one shared or array formula group: the anchor cell
// carries the stored formula text and the declared member range,
// other member cells only point back at it. Groups live for a single
// sheet pass.
type formulaGroup struct {
	id     int
	anchor Address
	text   string
	ref    rangeRef
}

type rangeRef struct {
	from, to Address
}

// parseRangeRef decodes "A1:B3" or a single-cell "A1" extent.
func parseRangeRef(s string) (rangeRef, error) {
	from, to, found := strings.Cut(s, ":")
	a, err := ParseAddress(from)
	if err != nil {
		return rangeRef{}, err
	}
	if !found {
		return rangeRef{from: a, to: a}, nil
	}
	b, err := ParseAddress(to)
	if err != nil {
		return rangeRef{}, err
	}
	return rangeRef{from: a, to: b}, nil
}

func (r rangeRef) contains(a Address) bool {
	return a.Row >= r.from.Row && a.Row <= r.to.Row &&
		a.Col >= r.from.Col && a.Col <= r.to.Col
}

func (r rangeRef) overlaps(o rangeRef) bool {
	return r.from.Row <= o.to.Row && o.from.Row <= r.to.Row &&
		r.from.Col <= o.to.Col && o.from.Col <= r.to.Col
}

// groupRegistry accumulates the formula groups seen while scanning
// one sheet. Shared groups are keyed by their si id; array groups are
// kept in registration order so the first registered wins when
// malformed input declares overlapping ranges.
type groupRegistry struct {
	shared map[int]*formulaGroup
	arrays []*formulaGroup
}

func newGroupRegistry() *groupRegistry {
	return &groupRegistry{shared: make(map[int]*formulaGroup)}
}

func (g *groupRegistry) registerShared(id int, anchor Address, text, ref string) {
	group := &formulaGroup{id: id, anchor: anchor, text: text}
	if r, err := parseRangeRef(ref); err == nil {
		group.ref = r
	} else {
		group.ref = rangeRef{from: anchor, to: anchor}
	}
	g.shared[id] = group
}

// registerArray reports whether the new range overlaps an already
// registered one.
func (g *groupRegistry) registerArray(anchor Address, text, ref string) bool {
	group := &formulaGroup{anchor: anchor, text: text}
	r, err := parseRangeRef(ref)
	if err != nil {
		r = rangeRef{from: anchor, to: anchor}
	}
	group.ref = r

	overlap := false
	for _, a := range g.arrays {
		if a.ref.overlaps(r) {
			overlap = true
			break
		}
	}
	g.arrays = append(g.arrays, group)
	return overlap
}

// sharedAt resolves the formula text for a member cell of a shared
// group: the anchor text with every relative reference shifted by the
// member's offset from the anchor.
func (g *groupRegistry) sharedAt(id int, addr Address) (string, bool) {
	group, ok := g.shared[id]
	if !ok {
		return "", false
	}
	if addr == group.anchor {
		return group.text, true
	}
	return translateFormula(group.text, addr.Row-group.anchor.Row, addr.Col-group.anchor.Col), true
}

// arrayAt finds the first registered array group covering addr. Its
// formula text applies verbatim, with no address rewriting.
func (g *groupRegistry) arrayAt(addr Address) (*formulaGroup, bool) {
	for _, a := range g.arrays {
		if a.ref.contains(addr) {
			return a, true
		}
	}
	return nil, false
}

// translateFormula shifts the relative cell and range references of a
// formula by (dRow, dCol). The formula is tokenized with efp; only
// range operands are touched, everything else is printed back as-is.
func translateFormula(text string, dRow, dCol int) string {
	ps := efp.ExcelParser()
	tokens := ps.Parse(text)
	if tokens == nil {
		return text
	}

	var b strings.Builder
	for _, token := range tokens {
		switch {
		case token.TType == efp.TokenTypeFunction && token.TSubType == efp.TokenSubTypeStart:
			b.WriteString(token.TValue)
			b.WriteByte('(')
		case token.TType == efp.TokenTypeFunction && token.TSubType == efp.TokenSubTypeStop:
			b.WriteByte(')')
		case token.TType == efp.TokenTypeSubexpression && token.TSubType == efp.TokenSubTypeStart:
			b.WriteByte('(')
		case token.TType == efp.TokenTypeSubexpression && token.TSubType == efp.TokenSubTypeStop:
			b.WriteByte(')')
		case token.TType == efp.TokenTypeArgument:
			b.WriteByte(',')
		case token.TType == efp.TokenTypeOperand && token.TSubType == efp.TokenSubTypeText:
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(token.TValue, `"`, `""`))
			b.WriteByte('"')
		case token.TType == efp.TokenTypeOperand && token.TSubType == efp.TokenSubTypeRange:
			b.WriteString(translateRangeToken(token.TValue, dRow, dCol))
		default:
			b.WriteString(token.TValue)
		}
	}
	return b.String()
}

// translateRangeToken shifts one range operand. References into other
// workbooks (a bracketed workbook index before the sheet name) are
// opaque and pass through verbatim, as do row-only and column-only
// spans that do not parse as cell addresses.
func translateRangeToken(ref string, dRow, dCol int) string {
	prefix := ""
	cells := ref
	if bang := strings.LastIndexByte(ref, '!'); bang != -1 {
		if strings.IndexByte(ref[:bang], '[') != -1 {
			return ref
		}
		prefix = ref[:bang+1]
		cells = ref[bang+1:]
	}

	from, to, isRange := strings.Cut(cells, ":")
	shifted, err := translateRef(from, dRow, dCol)
	if err != nil {
		return ref
	}
	if !isRange {
		return prefix + shifted
	}
	shiftedTo, err := translateRef(to, dRow, dCol)
	if err != nil {
		return ref
	}
	return prefix + shifted + ":" + shiftedTo
}
