// Package token classifies RTF tokens once, so consumers can match on
// explicit kinds and classes instead of numeric masks.
package token

import (
	"fmt"
	"strconv"
)

// Kind is the lexical kind of a token.
type Kind int

const (
	EOF Kind = iota
	GroupOpen
	GroupClose
	IgnoreFlag // \*
	Text
	Control
	Unknown // control word not present in keyword table
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case GroupOpen:
		return "{"
	case GroupClose:
		return "}"
	case IgnoreFlag:
		return `\*`
	case Text:
		return "text"
	case Control:
		return "control"
	case Unknown:
		return "unknown"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Class groups control words by what consumes them.
type Class int

const (
	ClassNone Class = iota
	ClassSpecial
	ClassDocument
	ClassDestination
	ClassFont
	ClassColor
	ClassStyle
	ClassParFmt
	ClassChrFmt
	ClassBorder
	ClassTabStop
)

var classNames = [...]string{
	ClassNone:        "none",
	ClassSpecial:     "special",
	ClassDocument:    "document",
	ClassDestination: "destination",
	ClassFont:        "font",
	ClassColor:       "color",
	ClassStyle:       "style",
	ClassParFmt:      "parfmt",
	ClassChrFmt:      "chrfmt",
	ClassBorder:      "border",
	ClassTabStop:     "tabstop",
}

func (c Class) String() string {
	if c >= 0 && int(c) < len(classNames) {
		return classNames[c]
	}
	return "Class(" + strconv.Itoa(int(c)) + ")"
}

// IsAttribute reports whether words of this class are formatting attributes.
func (c Class) IsAttribute() bool {
	switch c {
	case ClassParFmt, ClassChrFmt, ClassBorder, ClassTabStop:
		return true
	}
	return false
}

// Token is a single classified lexical unit.
type Token struct {
	Kind  Kind
	Word  Word
	Class Class
	// SwgDef marks writer extensions honoured only inside {\* ...} groups.
	SwgDef   bool
	Value    int
	HasValue bool
	// Text holds decoded text for Text tokens and the control word name for
	// Control and Unknown tokens.
	Text string
}

// ValueOr returns numeric parameter or def when the word had none.
func (t Token) ValueOr(def int) int {
	if t.HasValue {
		return t.Value
	}
	return def
}

// Is reports whether token is the control word w.
func (t Token) Is(w Word) bool {
	return t.Kind == Control && t.Word == w
}

func (t Token) String() string {
	switch t.Kind {
	case Control, Unknown:
		if t.HasValue {
			return fmt.Sprintf(`\%s%d`, t.Text, t.Value)
		}
		return `\` + t.Text
	case Text:
		return strconv.Quote(t.Text)
	}
	return t.Kind.String()
}
