package token

import (
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		value    int
		hasValue bool
		kind     Kind
		word     Word
		class    Class
		swgDef   bool
	}{
		{"b", 0, true, Control, WordB, ClassChrFmt, false},
		{"par", 0, false, Control, WordPar, ClassSpecial, false},
		{"fonttbl", 0, false, Control, WordFontTbl, ClassDestination, false},
		{"qc", 0, false, Control, WordQc, ClassParFmt, false},
		{"tx", 720, true, Control, WordTx, ClassTabStop, false},
		{"pgdscno", 3, true, Control, WordPgDscNo, ClassParFmt, true},
		{"nope", 1, true, Unknown, WordNone, ClassNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := Classify(tt.name, tt.value, tt.hasValue)
			if tok.Kind != tt.kind || tok.Word != tt.word || tok.Class != tt.class || tok.SwgDef != tt.swgDef {
				t.Errorf("Classify(%q) = %+v", tt.name, tok)
			}
			if tok.Text != tt.name || tok.Value != tt.value || tok.HasValue != tt.hasValue {
				t.Errorf("Classify(%q) lost name or parameter: %+v", tt.name, tok)
			}
		})
	}
}

func TestKeywords_UniqueWords(t *testing.T) {
	for name, kw := range keywords {
		if kw.word == WordNone {
			t.Errorf("%q has no word", name)
		}
		if got := kw.word.String(); got != name {
			t.Errorf("word of %q maps back to %q", name, got)
		}
	}
	if Word(-1).String() != "none" {
		t.Errorf("Word(-1).String() = %q, want none", Word(-1).String())
	}
}

func TestToken_String(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{Classify("b", 0, true), `\b0`},
		{Classify("par", 0, false), `\par`},
		{Classify("nope", 7, true), `\nope7`},
		{Token{Kind: Text, Text: "a\tb"}, `"a\tb"`},
		{Token{Kind: GroupOpen}, "{"},
		{Token{Kind: GroupClose}, "}"},
		{Token{Kind: IgnoreFlag}, `\*`},
		{Token{}, "EOF"},
		{Token{Kind: Kind(42)}, "Kind(42)"},
	}
	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestToken_ValueOr(t *testing.T) {
	if got := Classify("fs", 32, true).ValueOr(24); got != 32 {
		t.Errorf("ValueOr() = %d, want 32", got)
	}
	if got := Classify("fs", 0, false).ValueOr(24); got != 24 {
		t.Errorf("ValueOr() = %d, want 24", got)
	}
	if got := Classify("b", 0, true).ValueOr(1); got != 0 {
		t.Errorf("ValueOr() = %d, want explicit 0", got)
	}
}

func TestToken_Is(t *testing.T) {
	if !Classify("b", 0, false).Is(WordB) {
		t.Error(`\b is not WordB`)
	}
	if Classify("i", 0, false).Is(WordB) {
		t.Error(`\i is WordB`)
	}
	if (Token{Kind: Unknown}).Is(WordNone) {
		t.Error("unknown token matches WordNone")
	}
}

func TestClass(t *testing.T) {
	tests := []struct {
		class Class
		name  string
		attr  bool
	}{
		{ClassNone, "none", false},
		{ClassSpecial, "special", false},
		{ClassDestination, "destination", false},
		{ClassParFmt, "parfmt", true},
		{ClassChrFmt, "chrfmt", true},
		{ClassBorder, "border", true},
		{ClassTabStop, "tabstop", true},
		{Class(99), "Class(99)", false},
	}
	for _, tt := range tests {
		if got := tt.class.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
		if got := tt.class.IsAttribute(); got != tt.attr {
			t.Errorf("%s.IsAttribute() = %v, want %v", tt.name, got, tt.attr)
		}
	}
}
