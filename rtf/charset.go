package rtf

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/transform"
)

// Windows charset code used by symbol fonts.
const symbolCharset = 2

// Symbol is encoding of symbol fonts. Bytes are mapped into the private use
// area at U+F000, the way office suites keep symbol glyphs apart from text.
var Symbol encoding.Encoding = symbolEncoding{}

type symbolEncoding struct{}

func (symbolEncoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: symbolDecoder{}}
}

func (symbolEncoding) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: symbolEncoder{}}
}

func (symbolEncoding) String() string { return "symbol" }

type symbolDecoder struct{ transform.NopResetter }

func (symbolDecoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r := rune(0xf000) + rune(src[nSrc])
		if nDst+utf8.RuneLen(r) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc++
	}
	return nDst, nSrc, nil
}

type symbolEncoder struct{ transform.NopResetter }

func (symbolEncoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		switch {
		case r >= 0xf000 && r <= 0xf0ff:
			dst[nDst] = byte(r - 0xf000)
		case r < 0x100:
			dst[nDst] = byte(r)
		default:
			return nDst, nSrc, encoding.ErrInvalidUTF8
		}
		nDst++
		nSrc += size
	}
	return nDst, nSrc, nil
}

// IsSymbol reports whether enc is the symbol font encoding.
func IsSymbol(enc encoding.Encoding) bool {
	_, ok := enc.(symbolEncoding)
	return ok
}

// CharsetEncoding maps Windows charset code (\fcharset) to text encoding.
// Returns nil for codes without a usable encoding.
func CharsetEncoding(code int) encoding.Encoding {
	switch code {
	case 0:
		return charmap.Windows1252
	case symbolCharset:
		return Symbol
	case 77:
		return charmap.Macintosh
	case 128:
		return japanese.ShiftJIS
	case 129:
		return korean.EUCKR
	case 134:
		return simplifiedchinese.GBK
	case 136:
		return traditionalchinese.Big5
	case 161:
		return charmap.Windows1253
	case 162:
		return charmap.Windows1254
	case 163:
		return charmap.Windows1258
	case 177:
		return charmap.Windows1255
	case 178:
		return charmap.Windows1256
	case 186:
		return charmap.Windows1257
	case 204:
		return charmap.Windows1251
	case 222:
		return charmap.Windows874
	case 238:
		return charmap.Windows1250
	case 254:
		return charmap.CodePage437
	case 255:
		return charmap.CodePage850
	}
	return nil
}

var codePageLabels = map[int]string{
	874:   "windows-874",
	932:   "shift_jis",
	936:   "gbk",
	949:   "euc-kr",
	950:   "big5",
	10000: "macintosh",
	20866: "koi8-r",
	21866: "koi8-u",
	28591: "iso-8859-1",
	28592: "iso-8859-2",
	28595: "iso-8859-5",
	65001: "utf-8",
}

// CodePageEncoding maps Windows code page number (\ansicpg) to text encoding.
func CodePageEncoding(cp int) (encoding.Encoding, error) {
	label, ok := codePageLabels[cp]
	if !ok {
		label = fmt.Sprintf("windows-%d", cp)
	}
	if enc, _ := charset.Lookup(label); enc != nil {
		return enc, nil
	}
	// OEM code pages are not known to html charset tables
	if enc, err := ianaindex.IANA.Encoding(fmt.Sprintf("IBM%03d", cp)); err == nil && enc != nil {
		return enc, nil
	}
	return nil, fmt.Errorf("unsupported code page %d", cp)
}
