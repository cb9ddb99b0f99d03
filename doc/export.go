package doc

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"

	"github.com/beevik/etree"

	"rtfc/rtf"
	"rtfc/utils/debug"
)

// Tables are resource tables read from the same source, exported next to
// the text when present.
type Tables struct {
	Fonts  rtf.FontTable
	Colors rtf.ColorTable
	Styles rtf.StyleTable
}

// WriteText writes paragraphs one per line.
func (d *Document) WriteText(w io.Writer) error {
	for _, p := range d.Paragraphs() {
		if _, err := io.WriteString(w, p+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// XML builds XML representation of the document.
func (d *Document) XML(tables *Tables) *etree.Document {
	out := etree.NewDocument()
	out.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	out.WriteSettings = etree.WriteSettings{
		CanonicalText:    true,
		CanonicalAttrVal: true,
	}

	root := out.CreateElement("document")
	if tables != nil {
		writeTablesXML(root, tables)
	}

	paras := root.CreateElement("paragraphs")
	for i, p := range d.Paragraphs() {
		el := paras.CreateElement("p")
		el.CreateAttr("index", strconv.Itoa(i))
		el.SetText(p)
	}

	spans := root.CreateElement("spans")
	for _, s := range d.spans {
		el := spans.CreateElement("span")
		el.CreateAttr("start", s.Start.String())
		el.CreateAttr("end", s.End.String())
		if s.Style != 0 {
			el.CreateAttr("style", strconv.Itoa(int(s.Style)))
		}
		for _, w := range s.Whiches() {
			a := el.CreateElement("attr")
			a.CreateAttr("name", w.String())
			a.CreateAttr("value", fmt.Sprint(s.Attrs[w]))
		}
	}
	out.Indent(2)
	return out
}

func writeTablesXML(root *etree.Element, tables *Tables) {
	if len(tables.Fonts) > 0 {
		fonts := root.CreateElement("fonts")
		for _, id := range slices.Sorted(maps.Keys(tables.Fonts)) {
			f := tables.Fonts[id]
			el := fonts.CreateElement("font")
			el.CreateAttr("id", strconv.Itoa(id))
			el.CreateAttr("name", f.Name)
			el.CreateAttr("family", f.Family.String())
			el.CreateAttr("pitch", f.Pitch.String())
			if f.Charset >= 0 {
				el.CreateAttr("charset", strconv.Itoa(f.Charset))
			}
		}
	}
	if len(tables.Colors) > 0 {
		colors := root.CreateElement("colors")
		for i, c := range tables.Colors {
			el := colors.CreateElement("color")
			el.CreateAttr("index", strconv.Itoa(i))
			el.CreateAttr("value", c.String())
		}
	}
	if len(tables.Styles) > 0 {
		styles := root.CreateElement("styles")
		for _, id := range slices.Sorted(maps.Keys(tables.Styles)) {
			s := tables.Styles[id]
			el := styles.CreateElement("style")
			el.CreateAttr("id", strconv.Itoa(int(id)))
			el.CreateAttr("name", s.Name)
			if s.BasedOn != 0 {
				el.CreateAttr("based-on", strconv.Itoa(int(s.BasedOn)))
			}
			if s.Character {
				el.CreateAttr("character", "true")
			}
			if s.OutlineLevel >= 0 {
				el.CreateAttr("outline-level", strconv.Itoa(s.OutlineLevel))
			}
		}
	}
}

// WriteXML writes XML representation of the document.
func (d *Document) WriteXML(w io.Writer, tables *Tables) error {
	_, err := d.XML(tables).WriteTo(w)
	return err
}

func (d *Document) tree() *debug.TreeWriter {
	tw := debug.NewTreeWriter()
	tw.Line(0, "document")
	tw.Line(1, "paragraphs: %d", len(d.paras))
	for i, p := range d.Paragraphs() {
		tw.TextBlock(2, strconv.Itoa(i), p)
	}
	tw.Line(1, "spans: %d", len(d.spans))
	for _, s := range d.spans {
		tw.Line(2, "[%s, %s) style=%d", s.Start, s.End, s.Style)
		for _, w := range s.Whiches() {
			tw.Field(3, w.String(), s.Attrs[w])
		}
	}
	return tw
}

// Tree returns indented dump of paragraphs and spans.
func (d *Document) Tree() string {
	return d.tree().String()
}

func (d *Document) WriteTree(w io.Writer) error {
	_, err := d.tree().WriteTo(w)
	return err
}
