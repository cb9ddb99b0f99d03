// Package rtf turns stream of RTF tokens into nested formatting scopes and
// commits the minimal set of attribute assignments to a document.
package rtf

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"rtfc/rtf/token"
)

// DefaultMaxChildren limits number of closed scopes kept under one open scope
// before it is split.
const DefaultMaxChildren = 50

var (
	ErrNoInsertPosition = errors.New("no document to insert into")
	ErrUnbalancedGroup  = errors.New("unbalanced group")
	ErrUnexpectedEOF    = errors.New("unexpected end of input inside group")
)

// Options controls parsing session.
type Options struct {
	// DefaultEncoding decodes text until the document selects its own.
	DefaultEncoding encoding.Encoding
	// CheckStyleAttr drops scope values already provided by the scope style.
	CheckStyleAttr bool
	MaxChildren    int
	// NewDocument allows header words to change pool defaults.
	NewDocument bool
}

// Parser drives one RTF parsing session.
type Parser struct {
	src  TokenSource
	doc  Document
	pool Pool
	opts Options
	log  *zap.Logger

	fonts  FontTable
	colors ColorTable
	styles StyleTable

	stack        []*Scope
	flush        []*Scope
	pendingGroup bool

	whichPara   []Which
	whichChar   []Which
	whichAll    []Which
	whichSet    map[Which]struct{}
	rtfDefaults *AttrSet

	docEncoding encoding.Encoding
	deff        int
	defTabSet   bool

	err error
}

// NewParser returns parser reading from src into doc. Pool may be nil, then
// MapPool defaults are used.
func NewParser(src TokenSource, doc Document, pool Pool, opts Options, log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	if pool == nil {
		pool = NewMapPool()
	}
	if opts.DefaultEncoding == nil {
		opts.DefaultEncoding = charmap.Windows1252
	}
	if opts.MaxChildren < 2 {
		opts.MaxChildren = DefaultMaxChildren
	}
	return &Parser{
		src:  src,
		doc:  doc,
		pool: pool,
		opts: opts,
		log:  log.Named("rtf"),
	}
}

// Fonts returns font table of the last parsing session.
func (p *Parser) Fonts() FontTable {
	return p.fonts
}

// Colors returns color table of the last parsing session.
func (p *Parser) Colors() ColorTable {
	return p.colors
}

// Styles returns style sheet of the last parsing session.
func (p *Parser) Styles() StyleTable {
	return p.styles
}

// Parse reads all tokens and commits formatting to the document.
func (p *Parser) Parse(ctx context.Context) error {
	if p.doc == nil {
		return ErrNoInsertPosition
	}
	p.reset()

	for p.working(ctx) {
		p.dispatch(ctx, p.src.Next())
	}

	if p.err != nil {
		return p.err
	}
	if err := p.src.Err(); err != nil {
		return fmt.Errorf("unable to read tokens: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	p.setAllAttrOfStack()

	p.log.Debug("Parsing done",
		zap.Int("fonts", len(p.fonts)),
		zap.Int("colors", len(p.colors)),
		zap.Int("styles", len(p.styles)))
	return nil
}

func (p *Parser) reset() {
	p.fonts = make(FontTable)
	p.colors = nil
	p.styles = make(StyleTable)
	p.stack = nil
	p.flush = nil
	p.pendingGroup = false
	p.defTabSet = false
	p.deff = 0
	p.err = nil

	p.buildWhichTable()

	p.docEncoding = p.opts.DefaultEncoding
	p.src.SetEncoding(p.docEncoding)
}

func (p *Parser) buildWhichTable() {
	p.whichPara = p.pool.WhichIDs(CategoryParagraph)
	p.whichChar = p.pool.WhichIDs(CategoryCharacter)
	p.whichAll = append(append([]Which(nil), p.whichPara...), p.whichChar...)

	p.whichSet = make(map[Which]struct{}, len(p.whichAll))
	for _, w := range p.whichAll {
		p.whichSet[w] = struct{}{}
	}

	p.rtfDefaults = NewAttrSet(nil)
	if _, ok := p.whichSet[WhichHyphenZone]; ok {
		if p.opts.NewDocument {
			p.pool.SetDefault(WhichHyphenZone, false)
		} else {
			p.rtfDefaults.Put(WhichHyphenZone, false)
		}
	}
}

func (p *Parser) working(ctx context.Context) bool {
	return p.err == nil && ctx.Err() == nil && p.src.Working()
}

func (p *Parser) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

func (p *Parser) setDefaultTab(tw int) {
	p.pool.SetDefault(WhichDefaultTab, tw)
	p.defTabSet = true
}

func (p *Parser) setDocEncoding(enc encoding.Encoding) {
	p.docEncoding = enc
	p.src.SetEncoding(enc)
}

func (p *Parser) insertText(text string) {
	p.doc.InsertText(text)
	p.applyFlushList(false)
}

// skipIgnored skips group introduced by {\* when the current token is not
// understood.
func (p *Parser) skipIgnored(tok token.Token) {
	if p.src.Prev(1).Kind == token.IgnoreFlag && p.src.Prev(2).Kind == token.GroupOpen {
		p.log.Debug("Skipping ignorable group", zap.Stringer("token", tok))
		p.src.SkipGroup()
	}
}

// nestedGroup handles group opened inside a table. Ignorable groups of
// unknown words, or of words matched by skip, are consumed completely and
// true is returned. Otherwise tokens are pushed back and the caller counts
// the group as open.
func (p *Parser) nestedGroup(skip func(token.Token) bool) bool {
	if tok := p.src.Next(); tok.Kind != token.IgnoreFlag {
		p.src.Unread(1)
		return false
	}
	if tok := p.src.Next(); tok.Kind != token.Unknown && !skip(tok) {
		p.src.Unread(2)
		return false
	}
	p.src.SkipGroup()
	if tok := p.src.Next(); tok.Kind != token.GroupClose {
		p.fail(fmt.Errorf("%w: %s after ignorable group", ErrUnbalancedGroup, tok))
	}
	return true
}

// readSwgGroup reads writer extension group {\*\word ...} into the current
// scope as a whole. Extension words are honoured only after \*.
func (p *Parser) readSwgGroup(ctx context.Context, tok token.Token) {
	if p.src.Prev(1).Kind != token.IgnoreFlag {
		return
	}
	unit := p.src.Prev(2).Kind == token.GroupOpen && p.pendingGroup
	if unit {
		p.pendingGroup = false
	}
	s := p.attrScope()
	p.readAttrs(ctx, tok, s.Attrs, &s.StyleID)
	if !unit {
		return
	}
	p.src.SkipGroup()
	if next := p.src.Next(); next.Kind != token.GroupClose {
		p.src.Unread(1)
	}
}

var specialChars = map[token.Word]string{
	token.WordLine:      "\n",
	token.WordTab:       "\t",
	token.WordSubEntry:  ":",
	token.WordEmdash:    "\u2014",
	token.WordEndash:    "\u2013",
	token.WordBullet:    "\u2022",
	token.WordLQuote:    "\u2018",
	token.WordRQuote:    "\u2019",
	token.WordLDblQuote: "\u201c",
	token.WordRDblQuote: "\u201d",
}

func (p *Parser) dispatch(ctx context.Context, tok token.Token) {
	switch tok.Kind {
	case token.EOF, token.IgnoreFlag:
	case token.GroupOpen:
		if p.pendingGroup {
			p.openScope()
		}
		p.pendingGroup = true
	case token.GroupClose:
		if !p.pendingGroup {
			p.groupEnd()
		}
		p.pendingGroup = false
	case token.Text:
		p.insertText(tok.Text)
	case token.Unknown:
		p.skipIgnored(tok)
	case token.Control:
		p.dispatchControl(ctx, tok)
	}
}

func (p *Parser) dispatchControl(ctx context.Context, tok token.Token) {
	switch tok.Class {
	case token.ClassSpecial:
		switch tok.Word {
		case token.WordPar, token.WordSect:
			p.doc.InsertParagraph()
		case token.WordPage:
		default:
			p.insertText(specialChars[tok.Word])
		}

	case token.ClassDocument:
		p.readDocumentWord(tok)

	case token.ClassDestination:
		switch tok.Word {
		case token.WordColorTbl:
			p.readColorTable(ctx)
		case token.WordFontTbl:
			p.readFontTable(ctx)
		case token.WordStyleSheet:
			p.readStyleTable(ctx)
		case token.WordPict, token.WordInfo, token.WordSwgPrtData, token.WordField,
			token.WordAtnID, token.WordAnnotation, token.WordBkmkStart, token.WordBkmkEnd,
			token.WordBkmkKey, token.WordXe, token.WordTc, token.WordNextFile, token.WordTemplate:
			p.log.Debug("Skipping group", zap.Stringer("token", tok))
			p.src.SkipGroup()
		default:
			p.skipIgnored(tok)
		}

	case token.ClassParFmt, token.ClassChrFmt, token.ClassBorder, token.ClassTabStop:
		if tok.SwgDef {
			p.readSwgGroup(ctx, tok)
			return
		}
		s := p.attrScope()
		p.readAttrs(ctx, tok, s.Attrs, &s.StyleID)

	default:
		p.skipIgnored(tok)
	}
}

// readDocumentWord handles words of the document header.
func (p *Parser) readDocumentWord(tok token.Token) {
	switch tok.Word {
	case token.WordAnsi:
		p.setDocEncoding(charmap.Windows1252)
	case token.WordMac:
		p.setDocEncoding(charmap.Macintosh)
	case token.WordPc:
		p.setDocEncoding(charmap.CodePage437)
	case token.WordPca:
		p.setDocEncoding(charmap.CodePage850)
	case token.WordAnsiCpg:
		enc, err := CodePageEncoding(tok.ValueOr(0))
		if err != nil {
			p.log.Warn("Unable to select document encoding, keeping current one", zap.Error(err))
			return
		}
		p.setDocEncoding(enc)
	case token.WordDeff:
		if !p.opts.NewDocument {
			return
		}
		if len(p.fonts) > 0 {
			p.setDefaultFont(tok.ValueOr(0))
		} else {
			// applied after font table is read
			p.deff = tok.ValueOr(0)
		}
	case token.WordDefTab:
		if p.opts.NewDocument {
			p.setDefaultTab(tok.ValueOr(720))
		}
	case token.WordDefLang, token.WordDefLangFE:
		if !p.opts.NewDocument {
			return
		}
		tag, ok := LanguageTag(tok.ValueOr(0))
		if !ok {
			p.log.Debug("Unknown default language id", zap.Int("lcid", tok.Value))
			return
		}
		p.pool.SetDefault(choose(tok.Word == token.WordDefLang, WhichLanguage, WhichLanguageFE), tag)
	}
}
