package rtf

import (
	"fmt"

	"golang.org/x/text/encoding"

	"rtfc/rtf/token"
)

// Position addresses a place in the document: paragraph index and character
// offset inside it.
type Position struct {
	Node   int
	Offset int
}

// Before reports whether p precedes o in document order.
func (p Position) Before(o Position) bool {
	return p.Node < o.Node || (p.Node == o.Node && p.Offset < o.Offset)
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Node, p.Offset)
}

// TokenSource supplies classified tokens.
type TokenSource interface {
	// Next returns next token, EOF token when input is exhausted.
	Next() token.Token
	// Unread steps back n tokens so they are returned by Next again.
	Unread(n int)
	// Skip steps forward n tokens.
	Skip(n int)
	// SkipGroup consumes tokens up to the close brace of the current group
	// leaving that brace to be read next.
	SkipGroup()
	// Prev returns n-th token before the last returned one (Prev(0) is the
	// last returned token).
	Prev(n int) token.Token
	// Index is a monotonic position of the last returned token.
	Index() int
	Working() bool
	Err() error
	SetEncoding(enc encoding.Encoding)
	Encoding() encoding.Encoding
}

// Document is the host text model receiving text and formatting.
type Document interface {
	// Position returns current insertion position.
	Position() Position
	// Move steps insertion position one character forward or back, crossing
	// paragraph boundaries.
	Move(forward bool)
	IsParagraphEnd(p Position) bool
	// PrevParagraphEnd returns end position of the paragraph preceding the
	// one p is in.
	PrevParagraphEnd(p Position) Position
	InsertText(text string)
	InsertParagraph()
	ApplyAttributes(start, end Position, attrs *AttrSet, style uint16)
}

// Pool supplies default attribute values and the attribute ids in use.
type Pool interface {
	Default(w Which) Value
	SetDefault(w Which, v Value)
	WhichIDs(c Category) []Which
}
