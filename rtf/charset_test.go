package rtf

import (
	"testing"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/language"
)

func TestCharsetEncoding(t *testing.T) {
	tests := []struct {
		code int
		in   []byte
		want string
	}{
		{0, []byte{0xe9}, "é"},
		{204, []byte{0xcf, 0xf0, 0xe8}, "При"},
		{161, []byte{0xe1}, "α"},
		{238, []byte{0xb9}, "ą"},
		{2, []byte{0x41}, "\uf041"},
	}
	for _, tt := range tests {
		enc := CharsetEncoding(tt.code)
		if enc == nil {
			t.Errorf("CharsetEncoding(%d) = nil", tt.code)
			continue
		}
		got, err := enc.NewDecoder().Bytes(tt.in)
		if err != nil {
			t.Errorf("decode with charset %d: %v", tt.code, err)
			continue
		}
		if string(got) != tt.want {
			t.Errorf("charset %d decoded %q, want %q", tt.code, got, tt.want)
		}
	}

	if enc := CharsetEncoding(42); enc != nil {
		t.Errorf("CharsetEncoding(42) = %v, want nil", enc)
	}
}

func TestCodePageEncoding(t *testing.T) {
	tests := []struct {
		cp   int
		in   []byte
		want string
	}{
		{1251, []byte{0xcf}, "П"},
		{1252, []byte{0x80}, "€"},
		{866, []byte{0x8f}, "П"},
		{437, []byte{0x82}, "é"},
		{20866, []byte{0xf0}, "П"},
		{65001, []byte("П"), "П"},
	}
	for _, tt := range tests {
		enc, err := CodePageEncoding(tt.cp)
		if err != nil {
			t.Errorf("CodePageEncoding(%d) error = %v", tt.cp, err)
			continue
		}
		got, err := enc.NewDecoder().Bytes(tt.in)
		if err != nil {
			t.Errorf("decode with code page %d: %v", tt.cp, err)
			continue
		}
		if string(got) != tt.want {
			t.Errorf("code page %d decoded %q, want %q", tt.cp, got, tt.want)
		}
	}

	if _, err := CodePageEncoding(1); err == nil {
		t.Error("Expected error for unknown code page")
	}
}

func TestSymbolEncoding(t *testing.T) {
	if !IsSymbol(Symbol) || IsSymbol(charmap.Windows1252) {
		t.Fatal("IsSymbol() misclassified encodings")
	}

	dec, err := Symbol.NewDecoder().String("\x41\xb7")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if dec != "\uf041\uf0b7" {
		t.Errorf("decoded %q", dec)
	}

	enc, err := Symbol.NewEncoder().String(dec + "B")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if enc != "\x41\xb7B" {
		t.Errorf("encoded %q", enc)
	}

	if _, err := Symbol.NewEncoder().String("П"); err == nil {
		t.Error("Expected error encoding character outside of symbol range")
	}
}

func TestLanguageTag(t *testing.T) {
	tests := []struct {
		lcid int
		want language.Tag
		ok   bool
	}{
		{1033, language.AmericanEnglish, true},
		{1049, language.MustParse("ru-RU"), true},
		{2057, language.BritishEnglish, true},
		{1024, language.Und, true},
		{9999, language.Und, false},
	}
	for _, tt := range tests {
		got, ok := LanguageTag(tt.lcid)
		if ok != tt.ok || got != tt.want {
			t.Errorf("LanguageTag(%d) = %v, %v, want %v, %v", tt.lcid, got, ok, tt.want, tt.ok)
		}
	}
}
