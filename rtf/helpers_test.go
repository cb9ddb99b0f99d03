package rtf

import (
	"slices"
	"unicode/utf8"
)

// fakeDoc tracks paragraph lengths only.
type fakeDoc struct {
	paras   []int
	cur     Position
	applied []fakeSpan
}

type fakeSpan struct {
	start, end Position
	attrs      *AttrSet
	style      uint16
}

func newFakeDoc() *fakeDoc {
	return &fakeDoc{paras: []int{0}}
}

func (d *fakeDoc) Position() Position {
	return d.cur
}

func (d *fakeDoc) Move(forward bool) {
	if forward {
		switch {
		case d.cur.Offset < d.paras[d.cur.Node]:
			d.cur.Offset++
		case d.cur.Node+1 < len(d.paras):
			d.cur = Position{Node: d.cur.Node + 1}
		}
		return
	}
	switch {
	case d.cur.Offset > 0:
		d.cur.Offset--
	case d.cur.Node > 0:
		d.cur = Position{Node: d.cur.Node - 1, Offset: d.paras[d.cur.Node-1]}
	}
}

func (d *fakeDoc) IsParagraphEnd(p Position) bool {
	return p.Node >= 0 && p.Node < len(d.paras) && p.Offset == d.paras[p.Node]
}

func (d *fakeDoc) PrevParagraphEnd(p Position) Position {
	if p.Node <= 0 || p.Node > len(d.paras) {
		return Position{}
	}
	return Position{Node: p.Node - 1, Offset: d.paras[p.Node-1]}
}

func (d *fakeDoc) InsertText(text string) {
	n := utf8.RuneCountInString(text)
	d.paras[d.cur.Node] += n
	d.cur.Offset += n
}

func (d *fakeDoc) InsertParagraph() {
	rest := d.paras[d.cur.Node] - d.cur.Offset
	d.paras[d.cur.Node] = d.cur.Offset
	d.paras = slices.Insert(d.paras, d.cur.Node+1, rest)
	d.cur = Position{Node: d.cur.Node + 1}
}

func (d *fakeDoc) ApplyAttributes(start, end Position, attrs *AttrSet, style uint16) {
	d.applied = append(d.applied, fakeSpan{start: start, end: end, attrs: attrs.Clone(), style: style})
}

// newTestParser returns parser ready for driving scopes directly, without
// token source.
func newTestParser(opts Options) (*Parser, *fakeDoc) {
	d := newFakeDoc()
	p := NewParser(nil, d, nil, opts, nil)
	p.fonts = make(FontTable)
	p.styles = make(StyleTable)
	p.buildWhichTable()
	return p, d
}

// group opens nested group, lets set fill its values, inserts text and
// closes the group.
func group(p *Parser, d *fakeDoc, text string, set func(*AttrSet)) {
	p.pendingGroup = true
	s := p.attrScope()
	if set != nil {
		set(s.Attrs)
	}
	d.InsertText(text)
	p.groupEnd()
}

func put(w Which, v Value) func(*AttrSet) {
	return func(s *AttrSet) { s.Put(w, v) }
}
