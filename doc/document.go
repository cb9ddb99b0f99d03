// Package doc is an in-memory text model receiving parsed RTF: paragraphs of
// plain text and attribute spans over them.
package doc

import (
	"maps"
	"slices"
	"strings"

	"go.uber.org/zap"

	"rtfc/rtf"
)

var _ rtf.Document = (*Document)(nil)

// Span is a committed attribute assignment over [Start, End).
type Span struct {
	Start rtf.Position
	End   rtf.Position
	Style uint16
	Attrs map[rtf.Which]rtf.Value
}

// Whiches returns span attribute ids in ascending order.
func (s *Span) Whiches() []rtf.Which {
	return slices.Sorted(maps.Keys(s.Attrs))
}

// Document keeps paragraphs as rune slices so positions count characters.
type Document struct {
	log   *zap.Logger
	paras [][]rune
	cur   rtf.Position
	spans []Span
}

// New returns document with single empty paragraph and cursor at its start.
func New(log *zap.Logger) *Document {
	if log == nil {
		log = zap.NewNop()
	}
	return &Document{
		log:   log.Named("doc"),
		paras: [][]rune{nil},
	}
}

func (d *Document) Position() rtf.Position {
	return d.cur
}

func (d *Document) Move(forward bool) {
	if forward {
		switch {
		case d.cur.Offset < len(d.paras[d.cur.Node]):
			d.cur.Offset++
		case d.cur.Node+1 < len(d.paras):
			d.cur = rtf.Position{Node: d.cur.Node + 1}
		}
		return
	}
	switch {
	case d.cur.Offset > 0:
		d.cur.Offset--
	case d.cur.Node > 0:
		d.cur = rtf.Position{Node: d.cur.Node - 1, Offset: len(d.paras[d.cur.Node-1])}
	}
}

func (d *Document) IsParagraphEnd(p rtf.Position) bool {
	if p.Node < 0 || p.Node >= len(d.paras) {
		return false
	}
	return p.Offset == len(d.paras[p.Node])
}

func (d *Document) PrevParagraphEnd(p rtf.Position) rtf.Position {
	if p.Node <= 0 || p.Node > len(d.paras) {
		return rtf.Position{}
	}
	return rtf.Position{Node: p.Node - 1, Offset: len(d.paras[p.Node-1])}
}

// InsertText inserts text at cursor and moves cursor after it.
func (d *Document) InsertText(text string) {
	if text == "" {
		return
	}
	r := []rune(text)
	para := d.paras[d.cur.Node]
	d.paras[d.cur.Node] = append(para[:d.cur.Offset:d.cur.Offset], append(r, para[d.cur.Offset:]...)...)
	d.cur.Offset += len(r)
}

// InsertParagraph breaks paragraph at cursor, cursor moves to the start of
// the new paragraph.
func (d *Document) InsertParagraph() {
	para := d.paras[d.cur.Node]
	head := para[:d.cur.Offset:d.cur.Offset]
	tail := append([]rune(nil), para[d.cur.Offset:]...)

	d.paras[d.cur.Node] = head
	d.paras = append(d.paras, nil)
	copy(d.paras[d.cur.Node+2:], d.paras[d.cur.Node+1:])
	d.paras[d.cur.Node+1] = tail
	d.cur = rtf.Position{Node: d.cur.Node + 1}
}

// ApplyAttributes records values set directly in attrs.
func (d *Document) ApplyAttributes(start, end rtf.Position, attrs *rtf.AttrSet, style uint16) {
	span := Span{Start: start, End: end, Style: style, Attrs: make(map[rtf.Which]rtf.Value, attrs.Count())}
	for _, w := range attrs.Whiches() {
		v, _ := attrs.Get(w)
		span.Attrs[w] = v
	}
	if end.Before(start) {
		d.log.Warn("Span ends before it starts", zap.Stringer("start", start), zap.Stringer("end", end))
	}
	d.spans = append(d.spans, span)
}

// Spans returns committed spans in commit order.
func (d *Document) Spans() []Span {
	return d.spans
}

// Paragraphs returns paragraph texts.
func (d *Document) Paragraphs() []string {
	out := make([]string, len(d.paras))
	for i, p := range d.paras {
		out[i] = string(p)
	}
	return out
}

func (d *Document) Text() string {
	return strings.Join(d.Paragraphs(), "\n")
}

// SpansAt returns spans covering character at p.
func (d *Document) SpansAt(p rtf.Position) []Span {
	var out []Span
	for _, s := range d.spans {
		if !p.Before(s.Start) && p.Before(s.End) {
			out = append(out, s)
		}
	}
	return out
}
