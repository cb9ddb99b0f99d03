package rtf

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"rtfc/rtf/token"
)

// ColorTable holds colors in declaration order. RTF color number N refers to
// entry N, counting from 0.
type ColorTable []Color

// At returns color referenced by RTF color number n.
func (t ColorTable) At(n int) (Color, bool) {
	if n < 0 || n >= len(t) {
		return Color{}, false
	}
	return t[n], true
}

// readColorTable consumes \colortbl group leaving its closing brace unread.
func (p *Parser) readColorTable(ctx context.Context) {
	var r, g, b uint8 = 0xff, 0xff, 0xff

	for {
		tok := p.src.Next()
		if tok.Kind == token.GroupClose || !p.working(ctx) {
			break
		}
		switch {
		case tok.Is(token.WordRed):
			r = uint8(tok.Value)
		case tok.Is(token.WordGreen):
			g = uint8(tok.Value)
		case tok.Is(token.WordBlue):
			b = uint8(tok.Value)
		case tok.Kind == token.Text:
			for range strings.Count(tok.Text, ";") {
				c := Color{R: r, G: g, B: b}
				if len(p.colors) == 0 && r == 0xff && g == 0xff && b == 0xff {
					c = ColorAuto
				}
				p.colors = append(p.colors, c)
				r, g, b = 0, 0, 0
			}
		}
	}
	p.src.Unread(1)

	p.log.Debug("Color table read", zap.Int("colors", len(p.colors)))
}
