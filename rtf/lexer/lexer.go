// Package lexer splits RTF source into classified tokens.
package lexer

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"rtfc/rtf"
	"rtfc/rtf/token"
)

// number of tokens kept for stepping back
const historySize = 64

const (
	maxWordLen  = 32
	maxParamLen = 10
)

var _ rtf.TokenSource = (*Lexer)(nil)

// Lexer produces tokens from RTF source. Text is decoded with the encoding
// currently selected by the parser.
type Lexer struct {
	r   *bufio.Reader
	log *zap.Logger
	enc encoding.Encoding

	hist    []token.Token
	base    int // absolute index of hist[0]
	cur     int // absolute index of the next token
	pending *token.Token

	depth   int
	uc      int
	ucStack []int

	err error
}

// New returns lexer reading from r. When enc is nil windows-1252 is used.
func New(r io.Reader, enc encoding.Encoding, log *zap.Logger) *Lexer {
	if log == nil {
		log = zap.NewNop()
	}
	if enc == nil {
		enc = charmap.Windows1252
	}
	return &Lexer{
		r:   bufio.NewReader(r),
		log: log.Named("lexer"),
		enc: enc,
		uc:  1,
	}
}

func (l *Lexer) SetEncoding(enc encoding.Encoding) {
	if enc != nil {
		l.enc = enc
	}
}

func (l *Lexer) Encoding() encoding.Encoding {
	return l.enc
}

func (l *Lexer) Err() error {
	return l.err
}

// Working is false after reading failed or end of input was returned.
func (l *Lexer) Working() bool {
	if l.err != nil {
		return false
	}
	end := l.base + len(l.hist)
	return !(l.cur == end && end > 0 && l.hist[len(l.hist)-1].Kind == token.EOF)
}

func (l *Lexer) Index() int {
	return l.cur - 1
}

func (l *Lexer) Next() token.Token {
	if l.cur < l.base+len(l.hist) {
		t := l.hist[l.cur-l.base]
		l.cur++
		return t
	}

	t := l.scan()
	l.hist = append(l.hist, t)
	l.cur++
	if len(l.hist) > 2*historySize {
		drop := len(l.hist) - historySize
		l.hist = append(l.hist[:0], l.hist[drop:]...)
		l.base += drop
	}
	return t
}

// Unread steps back at most to the oldest remembered token.
func (l *Lexer) Unread(n int) {
	l.cur = max(l.cur-n, l.base)
}

func (l *Lexer) Skip(n int) {
	for range n {
		l.Next()
	}
}

// Prev returns token n positions before the last returned one, zero token
// when it is not remembered.
func (l *Lexer) Prev(n int) token.Token {
	i := l.cur - 1 - n
	if i < l.base || i >= l.base+len(l.hist) {
		return token.Token{}
	}
	return l.hist[i-l.base]
}

func (l *Lexer) SkipGroup() {
	depth := 1
	for {
		t := l.Next()
		switch t.Kind {
		case token.GroupOpen:
			depth++
		case token.GroupClose:
			if depth--; depth == 0 {
				l.Unread(1)
				return
			}
		case token.EOF:
			l.Unread(1)
			return
		}
	}
}

// text accumulates run of text: raw bytes waiting for decoding and already
// decoded characters.
type text struct {
	raw []byte
	sb  strings.Builder
}

func (t *text) empty() bool {
	return len(t.raw) == 0 && t.sb.Len() == 0
}

func (l *Lexer) flushRaw(t *text) {
	if len(t.raw) == 0 {
		return
	}
	out, err := l.enc.NewDecoder().Bytes(t.raw)
	if err != nil {
		l.log.Debug("Unable to decode text, using bytes as is", zap.Error(err))
		out = t.raw
	}
	t.sb.Write(out)
	t.raw = t.raw[:0]
}

func (l *Lexer) textToken(t *text) token.Token {
	l.flushRaw(t)
	return token.Token{Kind: token.Text, Text: t.sb.String()}
}

func (l *Lexer) readErr(err error) {
	if l.err != nil {
		return
	}
	switch {
	case !errors.Is(err, io.EOF):
		l.err = err
	case l.depth > 0:
		l.err = rtf.ErrUnexpectedEOF
	}
}

func (l *Lexer) scan() token.Token {
	if l.pending != nil {
		t := *l.pending
		l.pending = nil
		return t
	}

	var txt text
	for {
		c, err := l.r.ReadByte()
		if err != nil {
			l.readErr(err)
			if !txt.empty() {
				return l.textToken(&txt)
			}
			return token.Token{Kind: token.EOF}
		}

		switch c {
		case '{', '}':
			if !txt.empty() {
				_ = l.r.UnreadByte()
				return l.textToken(&txt)
			}
			return l.group(c)
		case '\r', '\n':
		case '\\':
			tok, ok := l.escape(&txt)
			if !ok {
				continue
			}
			if !txt.empty() {
				l.pending = &tok
				return l.textToken(&txt)
			}
			return tok
		default:
			txt.raw = append(txt.raw, c)
		}
	}
}

func (l *Lexer) group(c byte) token.Token {
	if c == '{' {
		l.depth++
		l.ucStack = append(l.ucStack, l.uc)
		return token.Token{Kind: token.GroupOpen}
	}
	l.depth--
	if n := len(l.ucStack); n > 0 {
		l.uc = l.ucStack[n-1]
		l.ucStack = l.ucStack[:n-1]
	}
	return token.Token{Kind: token.GroupClose}
}

// escape handles sequence after backslash. Characters are added to t and ok
// is false, control words are returned as tokens.
func (l *Lexer) escape(t *text) (tok token.Token, ok bool) {
	c, err := l.r.ReadByte()
	if err != nil {
		l.readErr(err)
		return token.Token{}, false
	}

	switch {
	case c == '\'':
		if b, ok := l.hexByte(); ok {
			t.raw = append(t.raw, b)
		}
		return token.Token{}, false
	case c == '\\' || c == '{' || c == '}':
		l.flushRaw(t)
		t.sb.WriteByte(c)
		return token.Token{}, false
	case c == '~':
		l.flushRaw(t)
		t.sb.WriteRune('\u00a0')
		return token.Token{}, false
	case c == '_':
		l.flushRaw(t)
		t.sb.WriteRune('\u2011')
		return token.Token{}, false
	case c == '-':
		l.flushRaw(t)
		t.sb.WriteRune('\u00ad')
		return token.Token{}, false
	case c == '*':
		return token.Token{Kind: token.IgnoreFlag}, true
	case c == '\r' || c == '\n':
		return token.Classify("par", 0, false), true
	case c == ':':
		return token.Classify("subentry", 0, false), true
	case isLetter(c):
	default:
		return token.Classify(string(c), 0, false), true
	}

	word, param, hasParam := l.word(c)
	switch word {
	case "u":
		l.flushRaw(t)
		r := rune(param)
		if r < 0 {
			r += 0x10000
		}
		t.sb.WriteRune(r)
		l.skipFallback(l.uc)
		return token.Token{}, false
	case "uc":
		l.uc = max(param, 0)
		return token.Token{}, false
	case "bin":
		if _, err := l.r.Discard(max(param, 0)); err != nil {
			l.readErr(err)
		}
		return token.Token{}, false
	}
	return token.Classify(word, param, hasParam), true
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func hexValue(c byte) (byte, bool) {
	switch {
	case isDigit(c):
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func (l *Lexer) hexByte() (byte, bool) {
	var v byte
	for range 2 {
		c, err := l.r.ReadByte()
		if err != nil {
			l.readErr(err)
			return 0, false
		}
		h, ok := hexValue(c)
		if !ok {
			_ = l.r.UnreadByte()
			return 0, false
		}
		v = v<<4 | h
	}
	return v, true
}

// word reads control word starting with first, its optional numeric
// parameter and the delimiting space.
func (l *Lexer) word(first byte) (word string, param int, hasParam bool) {
	var sb strings.Builder
	sb.WriteByte(first)
	for sb.Len() < maxWordLen {
		c, err := l.r.ReadByte()
		if err != nil {
			l.readErr(err)
			return sb.String(), 0, false
		}
		if !isLetter(c) {
			_ = l.r.UnreadByte()
			break
		}
		sb.WriteByte(c)
	}
	word = sb.String()

	neg := false
	if b, err := l.r.Peek(2); err == nil && b[0] == '-' && isDigit(b[1]) {
		neg = true
		_, _ = l.r.ReadByte()
	}
	for n := 0; n < maxParamLen; n++ {
		c, err := l.r.ReadByte()
		if err != nil {
			l.readErr(err)
			break
		}
		if !isDigit(c) {
			_ = l.r.UnreadByte()
			break
		}
		hasParam = true
		param = param*10 + int(c-'0')
	}
	if neg {
		param = -param
	}

	if c, err := l.r.ReadByte(); err == nil && c != ' ' {
		_ = l.r.UnreadByte()
	}
	return word, param, hasParam
}

// skipFallback skips n characters written for readers not supporting \u.
func (l *Lexer) skipFallback(n int) {
	for n > 0 {
		c, err := l.r.ReadByte()
		if err != nil {
			l.readErr(err)
			return
		}
		switch {
		case c == '{' || c == '}':
			_ = l.r.UnreadByte()
			return
		case c == '\r' || c == '\n':
			continue
		case c == '\\':
			next, err := l.r.ReadByte()
			if err != nil {
				l.readErr(err)
				return
			}
			switch {
			case next == '\'':
				l.hexByte()
			case isLetter(next):
				l.word(next)
			}
		}
		n--
	}
}
