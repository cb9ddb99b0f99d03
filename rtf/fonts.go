package rtf

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"

	"rtfc/rtf/token"
)

// Font is a font table entry.
type Font struct {
	ID     int
	Name   string
	Family FontFamily
	Pitch  FontPitch
	// Charset is raw \fcharset value, -1 when not given.
	Charset  int
	Encoding encoding.Encoding
}

// Attr returns attribute value referencing f.
func (f *Font) Attr() FontAttr {
	return FontAttr{Name: f.Name, Family: f.Family, Pitch: f.Pitch, Charset: f.Charset}
}

// FontTable is keyed by font number.
type FontTable map[int]*Font

// trimEntry strips surrounding blanks and the terminating ';' of table
// entry text.
func trimEntry(s string) string {
	s = strings.Trim(s, " ")
	return strings.TrimSuffix(s, ";")
}

func (p *Parser) newFont() *Font {
	return &Font{Charset: -1, Encoding: p.docEncoding}
}

// fontAttr returns value for font id, falling back to the pool default font
// for ids missing from the table.
func (p *Parser) fontAttr(id int) FontAttr {
	if f, ok := p.fonts[id]; ok {
		return f.Attr()
	}
	fa, _ := p.pool.Default(WhichFont).(FontAttr)
	return FontAttr{Name: fa.Name, Family: fa.Family, Pitch: fa.Pitch, Charset: -1}
}

func (p *Parser) setDefaultFont(id int) {
	p.pool.SetDefault(WhichFont, p.fontAttr(id))
}

func isFontSubgroup(tok token.Token) bool {
	return tok.Is(token.WordPanose) || tok.Is(token.WordFname) ||
		tok.Is(token.WordFontEmb) || tok.Is(token.WordFontFile)
}

// readFontTable consumes \fonttbl group leaving its closing brace unread.
func (p *Parser) readFontTable(ctx context.Context) {
	var (
		depth       = 1
		font        = p.newFont()
		id, insID   int
		name, alt   string
		isAlt       bool
		entryClosed bool
	)
	p.src.SetEncoding(p.docEncoding)

	for depth > 0 && p.working(ctx) {
		entryClosed = false
		tok := p.src.Next()
		switch tok.Kind {
		case token.GroupClose:
			isAlt = false
			depth--
			entryClosed = true
			insID = id
		case token.GroupOpen:
			if !p.nestedGroup(isFontSubgroup) {
				depth++
			}
		case token.Text:
			if text := trimEntry(tok.Text); text != "" {
				if isAlt {
					alt = text
				} else {
					name = text
				}
			}
		case token.Control:
			switch tok.Word {
			case token.WordFroman:
				font.Family = FontFamilyRoman
			case token.WordFswiss:
				font.Family = FontFamilySwiss
			case token.WordFmodern:
				font.Family = FontFamilyModern
			case token.WordFscript:
				font.Family = FontFamilyScript
			case token.WordFdecor:
				font.Family = FontFamilyDecorative
			case token.WordFtech:
				font.Charset = symbolCharset
				font.Encoding = Symbol
				font.Family = FontFamilyUnknown
			case token.WordFnil:
				font.Family = FontFamilyUnknown
			case token.WordFcharset:
				if tok.ValueOr(-1) == -1 {
					break
				}
				font.Charset = tok.Value
				enc := CharsetEncoding(tok.Value)
				if enc == nil {
					p.log.Debug("Unknown font charset, keeping document encoding", zap.Int("charset", tok.Value))
					break
				}
				font.Encoding = enc
				// names of symbol fonts are still written in document encoding
				if IsSymbol(enc) {
					enc = p.docEncoding
				}
				p.src.SetEncoding(enc)
			case token.WordFprq:
				switch tok.Value {
				case 1:
					font.Pitch = FontPitchFixed
				case 2:
					font.Pitch = FontPitchVariable
				}
			case token.WordF:
				entryClosed = true
				insID = id
				id = tok.ValueOr(0)
			case token.WordFalt:
				isAlt = true
			}
		}

		if entryClosed && depth <= 1 && name != "" {
			if alt != "" {
				name += ";" + alt
			}
			font.ID = insID
			font.Name = name
			if _, ok := p.fonts[insID]; ok {
				p.log.Debug("Font redefined", zap.Int("id", insID), zap.String("name", name))
			}
			p.fonts[insID] = font

			font = p.newFont()
			name, alt = "", ""
			p.src.SetEncoding(p.docEncoding)
		}
	}
	p.src.Unread(1)
	p.src.SetEncoding(p.docEncoding)

	p.log.Debug("Font table read", zap.Int("fonts", len(p.fonts)))

	if p.opts.NewDocument && p.working(ctx) {
		p.setDefaultFont(p.deff)
	}
}
