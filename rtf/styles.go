package rtf

import (
	"context"

	"go.uber.org/zap"

	"rtfc/rtf/token"
)

// Style is a style sheet entry.
type Style struct {
	ID      uint16
	Name    string
	BasedOn uint16
	Next    uint16
	// OutlineLevel is -1 when not given.
	OutlineLevel int
	Character    bool
	Attrs        *AttrSet
}

// StyleTable is keyed by style number.
type StyleTable map[uint16]*Style

func (p *Parser) newStyle() *Style {
	s := &Style{OutlineLevel: -1, Attrs: NewAttrSet(nil)}
	s.Attrs.PutAll(p.rtfDefaults)
	return s
}

func isStyleSubgroup(tok token.Token) bool {
	return tok.Is(token.WordPn)
}

// readStyleTable consumes \stylesheet group leaving its closing brace unread.
func (p *Parser) readStyleTable(ctx context.Context) {
	var (
		depth = 1
		style = p.newStyle()
		id    uint16
		hasID bool
	)

	for depth > 0 && p.working(ctx) {
		tok := p.src.Next()
		switch tok.Kind {
		case token.GroupClose:
			depth--
		case token.GroupOpen:
			if !p.nestedGroup(isStyleSubgroup) {
				depth++
			}
		case token.Text:
			if !hasID {
				break
			}
			style.ID = id
			style.Name = trimEntry(tok.Text)
			p.styles[id] = style

			style = p.newStyle()
			id, hasID = 0, false
		case token.Control:
			switch tok.Word {
			case token.WordSBasedOn:
				style.BasedOn = uint16(tok.ValueOr(0))
			case token.WordSNext:
				style.Next = uint16(tok.ValueOr(0))
			case token.WordOutlineLevel, token.WordSOutlvl:
				style.OutlineLevel = tok.ValueOr(0)
			case token.WordS, token.WordDS, token.WordTS:
				id, hasID = uint16(tok.ValueOr(0)), true
				style.Character = false
			case token.WordCS:
				id, hasID = uint16(tok.ValueOr(0)), true
				style.Character = true
			default:
				if tok.Class.IsAttribute() {
					p.readStyleAttrs(ctx, tok, style)
				}
			}
		}
	}
	p.src.Unread(1)

	p.log.Debug("Style sheet read", zap.Int("styles", len(p.styles)))
}

// readStyleAttrs reads attribute run into style, making sure the table reader
// moves forward even when nothing was consumed.
func (p *Parser) readStyleAttrs(ctx context.Context, tok token.Token, style *Style) {
	if tok.SwgDef && p.src.Prev(1).Kind != token.IgnoreFlag {
		return
	}
	entering := p.src.Index()
	p.readAttrs(ctx, tok, style.Attrs, nil)
	if p.src.Index() < entering {
		p.log.Warn("Style attributes were not consumed, skipping token", zap.Stringer("token", tok))
		p.src.Skip(1)
	}
}
