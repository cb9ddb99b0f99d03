package rtf

import (
	"context"

	"go.uber.org/zap"

	"rtfc/rtf/token"
)

// Escapement values used for \super and \sub.
const (
	escSuper = 33
	escProp  = 58
)

// isAttrToken reports whether tok continues attribute run. Style numbers end
// the run when there is no scope to assign them to.
func isAttrToken(tok token.Token, style *uint16) bool {
	if tok.Kind != token.Control || !tok.Class.IsAttribute() {
		return false
	}
	if style == nil && (tok.Is(token.WordS) || tok.Is(token.WordCS)) {
		return false
	}
	return true
}

// readAttrs applies tok and all attribute tokens directly following it to set.
// First token which is not an attribute is pushed back. Style is nil when
// reading into style sheet entries.
func (p *Parser) readAttrs(ctx context.Context, tok token.Token, set *AttrSet, style *uint16) {
	var tab TabStop
	for first := true; p.working(ctx); first = false {
		if !first {
			tok = p.src.Next()
			if tok.SwgDef {
				p.src.Unread(1)
				return
			}
		}
		if !isAttrToken(tok, style) {
			p.src.Unread(1)
			return
		}
		p.applyAttr(tok, set, style, &tab)
	}
}

// put stores value unless the pool does not know the attribute.
func (p *Parser) put(set *AttrSet, w Which, v Value) {
	if _, ok := p.whichSet[w]; ok {
		set.Put(w, v)
	}
}

// effective returns value in effect for set: its own, inherited or default.
func (p *Parser) effective(set *AttrSet, w Which) Value {
	if v, ok := set.Lookup(w); ok {
		return v
	}
	return p.pool.Default(w)
}

// resetAttrs returns ids to pool defaults. Ids which would inherit a
// different value get the default explicitly.
func (p *Parser) resetAttrs(set *AttrSet, whiches []Which) {
	for _, w := range whiches {
		def := p.pool.Default(w)
		if v, ok := set.Parent().Lookup(w); ok && !EqualValues(v, def) {
			set.Put(w, def)
			continue
		}
		set.Clear(w)
	}
}

func flag(tok token.Token) bool {
	return tok.ValueOr(1) != 0
}

func (p *Parser) applyAttr(tok token.Token, set *AttrSet, style *uint16, tab *TabStop) {
	switch tok.Word {
	case token.WordPlain:
		p.resetAttrs(set, p.whichChar)
	case token.WordPard:
		p.resetAttrs(set, p.whichPara)
		if style != nil {
			*style = 0
		}
	case token.WordS:
		*style = uint16(max(tok.ValueOr(0), 0))
	case token.WordCS:
		// character styles are not tracked in scopes

	case token.WordB:
		p.put(set, WhichWeight, choose(flag(tok), WeightBold, WeightNormal))
	case token.WordI:
		p.put(set, WhichPosture, choose(flag(tok), PostureItalic, PostureNormal))
	case token.WordUl:
		p.put(set, WhichUnderline, choose(flag(tok), UnderlineSingle, UnderlineNone))
	case token.WordUld:
		p.put(set, WhichUnderline, choose(flag(tok), UnderlineDotted, UnderlineNone))
	case token.WordUldb:
		p.put(set, WhichUnderline, choose(flag(tok), UnderlineDouble, UnderlineNone))
	case token.WordUlw:
		p.put(set, WhichUnderline, choose(flag(tok), UnderlineWords, UnderlineNone))
	case token.WordUlnone:
		p.put(set, WhichUnderline, UnderlineNone)
	case token.WordStrike:
		p.put(set, WhichStrikeout, choose(flag(tok), StrikeoutSingle, StrikeoutNone))
	case token.WordStrikeD:
		p.put(set, WhichStrikeout, choose(flag(tok), StrikeoutDouble, StrikeoutNone))
	case token.WordFs:
		p.put(set, WhichFontHeight, FontHeight(tok.ValueOr(24)))
	case token.WordF:
		id := tok.ValueOr(0)
		p.put(set, WhichFont, p.fontAttr(id))
		// decoding follows the font of body text only
		if f, ok := p.fonts[id]; ok && style != nil && f.Encoding != nil && !IsSymbol(f.Encoding) {
			p.src.SetEncoding(f.Encoding)
		}
	case token.WordCf:
		if c, ok := p.colors.At(tok.ValueOr(0)); ok {
			p.put(set, WhichColor, c)
		}
	case token.WordCb, token.WordHighlight:
		if c, ok := p.colors.At(tok.ValueOr(0)); ok {
			p.put(set, WhichBgColor, c)
		}
	case token.WordLang, token.WordLangFE:
		tag, ok := LanguageTag(tok.ValueOr(0))
		if !ok {
			p.log.Debug("Unknown language id", zap.Int("lcid", tok.Value))
			break
		}
		p.put(set, choose(tok.Word == token.WordLang, WhichLanguage, WhichLanguageFE), tag)
	case token.WordCaps:
		p.put(set, WhichCaseMap, choose(flag(tok), CaseMapUpper, CaseMapNone))
	case token.WordScaps:
		p.put(set, WhichCaseMap, choose(flag(tok), CaseMapSmallCaps, CaseMapNone))
	case token.WordSuper:
		p.put(set, WhichEscapement, Escapement{Offset: escSuper, Prop: escProp})
	case token.WordSub:
		p.put(set, WhichEscapement, Escapement{Offset: -escSuper, Prop: escProp})
	case token.WordNoSupersub:
		p.put(set, WhichEscapement, Escapement{Prop: 100})
	case token.WordUp, token.WordDn:
		h, _ := p.effective(set, WhichFontHeight).(FontHeight)
		if h <= 0 {
			h = 24
		}
		off := tok.ValueOr(6) * 100 / int(h)
		if tok.Word == token.WordDn {
			off = -off
		}
		p.put(set, WhichEscapement, Escapement{Offset: off, Prop: 100})
	case token.WordV:
		p.put(set, WhichHidden, flag(tok))
	case token.WordExpnd:
		// quarter points
		p.put(set, WhichKerning, Kerning(tok.ValueOr(0)*5))
	case token.WordExpndTw:
		p.put(set, WhichKerning, Kerning(tok.ValueOr(0)))
	case token.WordOutl:
		p.put(set, WhichContour, flag(tok))
	case token.WordShad:
		p.put(set, WhichShadowed, flag(tok))

	case token.WordQl:
		p.put(set, WhichAdjust, AdjustLeft)
	case token.WordQr:
		p.put(set, WhichAdjust, AdjustRight)
	case token.WordQc:
		p.put(set, WhichAdjust, AdjustCenter)
	case token.WordQj:
		p.put(set, WhichAdjust, AdjustBlock)
	case token.WordLi, token.WordRi, token.WordFi:
		lr, _ := p.effective(set, WhichLRSpace).(LRSpace)
		switch tok.Word {
		case token.WordLi:
			lr.Left = tok.ValueOr(0)
		case token.WordRi:
			lr.Right = tok.ValueOr(0)
		default:
			lr.FirstLine = tok.ValueOr(0)
		}
		p.put(set, WhichLRSpace, lr)
	case token.WordSb, token.WordSa:
		ul, _ := p.effective(set, WhichULSpace).(ULSpace)
		if tok.Word == token.WordSb {
			ul.Before = tok.ValueOr(0)
		} else {
			ul.After = tok.ValueOr(0)
		}
		p.put(set, WhichULSpace, ul)
	case token.WordSl:
		ls, _ := p.effective(set, WhichLineSpacing).(LineSpacing)
		ls.Value = tok.ValueOr(0)
		p.put(set, WhichLineSpacing, ls)
	case token.WordSlMult:
		ls, _ := p.effective(set, WhichLineSpacing).(LineSpacing)
		ls.Multiple = tok.ValueOr(0) == 1
		p.put(set, WhichLineSpacing, ls)
	case token.WordKeep:
		p.put(set, WhichSplit, !flag(tok))
	case token.WordKeepN:
		p.put(set, WhichKeep, flag(tok))
	case token.WordOutlineLevel:
		p.put(set, WhichOutlineLevel, OutlineLevel(tok.ValueOr(0)+1))
	case token.WordRtlPar:
		p.put(set, WhichDirection, DirectionRTL)
	case token.WordLtrPar:
		p.put(set, WhichDirection, DirectionLTR)
	case token.WordHyphPar:
		p.put(set, WhichHyphenZone, flag(tok))

	case token.WordTqr:
		tab.Align = TabAlignRight
	case token.WordTqc:
		tab.Align = TabAlignCenter
	case token.WordTqDec:
		tab.Align = TabAlignDecimal
	case token.WordTlDot:
		tab.Leader = '.'
	case token.WordTlHyph:
		tab.Leader = '-'
	case token.WordTlUl:
		tab.Leader = '_'
	case token.WordTlTh:
		tab.Leader = '='
	case token.WordTx, token.WordTb:
		tab.Pos = tok.ValueOr(0)
		tab.Bar = tok.Word == token.WordTb
		stops, _ := p.effective(set, WhichTabStops).(TabStops)
		p.put(set, WhichTabStops, stops.with(*tab))
		*tab = TabStop{}

	default:
		// borders and writer extensions have no attribute here
		p.log.Debug("Attribute ignored", zap.Stringer("token", tok))
	}
}

func choose[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}
