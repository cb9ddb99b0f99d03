package token

// Word identifies a known control word.
type Word int

const (
	WordNone Word = iota

	// special characters and breaks
	WordPar
	WordSect
	WordPage
	WordLine
	WordTab
	WordSubEntry
	WordEmdash
	WordEndash
	WordBullet
	WordLQuote
	WordRQuote
	WordLDblQuote
	WordRDblQuote

	// document header
	WordRtf
	WordAnsi
	WordMac
	WordPc
	WordPca
	WordAnsiCpg
	WordDeff
	WordDefTab
	WordDefLang
	WordDefLangFE

	// destinations
	WordFontTbl
	WordColorTbl
	WordStyleSheet
	WordInfo
	WordPict
	WordField
	WordAtnID
	WordAnnotation
	WordBkmkStart
	WordBkmkEnd
	WordBkmkKey
	WordXe
	WordTc
	WordNextFile
	WordTemplate
	WordSwgPrtData
	WordPanose
	WordFname
	WordFontEmb
	WordFontFile
	WordPn
	WordFalt

	// font table
	WordFroman
	WordFswiss
	WordFmodern
	WordFscript
	WordFdecor
	WordFtech
	WordFnil
	WordFcharset
	WordFprq

	// color table
	WordRed
	WordGreen
	WordBlue

	// style sheet
	WordS
	WordCS
	WordDS
	WordTS
	WordSBasedOn
	WordSNext
	WordSOutlvl

	// character formatting
	WordPlain
	WordF
	WordB
	WordI
	WordUl
	WordUld
	WordUldb
	WordUlw
	WordUlnone
	WordStrike
	WordStrikeD
	WordFs
	WordCf
	WordCb
	WordHighlight
	WordLang
	WordLangFE
	WordCaps
	WordScaps
	WordSuper
	WordSub
	WordNoSupersub
	WordUp
	WordDn
	WordV
	WordExpnd
	WordExpndTw
	WordOutl
	WordShad

	// paragraph formatting
	WordPard
	WordQl
	WordQr
	WordQc
	WordQj
	WordLi
	WordRi
	WordFi
	WordSb
	WordSa
	WordSl
	WordSlMult
	WordKeep
	WordKeepN
	WordOutlineLevel
	WordRtlPar
	WordLtrPar
	WordHyphPar

	// tab stops
	WordTqr
	WordTqc
	WordTqDec
	WordTlDot
	WordTlHyph
	WordTlUl
	WordTlTh
	WordTx
	WordTb

	// borders
	WordBrdrT
	WordBrdrB
	WordBrdrL
	WordBrdrR
	WordBrdrS
	WordBrdrW
	WordBrsp

	// writer extensions, honoured only after \*
	WordPgDscNo
	WordPgBrk
	WordShadow
)

type keyword struct {
	word   Word
	class  Class
	swgDef bool
}

var keywords = map[string]keyword{
	"par":       {WordPar, ClassSpecial, false},
	"sect":      {WordSect, ClassSpecial, false},
	"page":      {WordPage, ClassSpecial, false},
	"line":      {WordLine, ClassSpecial, false},
	"tab":       {WordTab, ClassSpecial, false},
	"subentry":  {WordSubEntry, ClassSpecial, false},
	"emdash":    {WordEmdash, ClassSpecial, false},
	"endash":    {WordEndash, ClassSpecial, false},
	"bullet":    {WordBullet, ClassSpecial, false},
	"lquote":    {WordLQuote, ClassSpecial, false},
	"rquote":    {WordRQuote, ClassSpecial, false},
	"ldblquote": {WordLDblQuote, ClassSpecial, false},
	"rdblquote": {WordRDblQuote, ClassSpecial, false},

	"rtf":       {WordRtf, ClassDocument, false},
	"ansi":      {WordAnsi, ClassDocument, false},
	"mac":       {WordMac, ClassDocument, false},
	"pc":        {WordPc, ClassDocument, false},
	"pca":       {WordPca, ClassDocument, false},
	"ansicpg":   {WordAnsiCpg, ClassDocument, false},
	"deff":      {WordDeff, ClassDocument, false},
	"deftab":    {WordDefTab, ClassDocument, false},
	"deflang":   {WordDefLang, ClassDocument, false},
	"deflangfe": {WordDefLangFE, ClassDocument, false},

	"fonttbl":    {WordFontTbl, ClassDestination, false},
	"colortbl":   {WordColorTbl, ClassDestination, false},
	"stylesheet": {WordStyleSheet, ClassDestination, false},
	"info":       {WordInfo, ClassDestination, false},
	"pict":       {WordPict, ClassDestination, false},
	"field":      {WordField, ClassDestination, false},
	"atnid":      {WordAtnID, ClassDestination, false},
	"annotation": {WordAnnotation, ClassDestination, false},
	"bkmkstart":  {WordBkmkStart, ClassDestination, false},
	"bkmkend":    {WordBkmkEnd, ClassDestination, false},
	"bkmkkey":    {WordBkmkKey, ClassDestination, false},
	"xe":         {WordXe, ClassDestination, false},
	"tc":         {WordTc, ClassDestination, false},
	"nextfile":   {WordNextFile, ClassDestination, false},
	"template":   {WordTemplate, ClassDestination, false},
	"prtdata":    {WordSwgPrtData, ClassDestination, false},
	"panose":     {WordPanose, ClassDestination, false},
	"fname":      {WordFname, ClassDestination, false},
	"fontemb":    {WordFontEmb, ClassDestination, false},
	"fontfile":   {WordFontFile, ClassDestination, false},
	"pn":         {WordPn, ClassDestination, false},
	"falt":       {WordFalt, ClassFont, false},

	"froman":   {WordFroman, ClassFont, false},
	"fswiss":   {WordFswiss, ClassFont, false},
	"fmodern":  {WordFmodern, ClassFont, false},
	"fscript":  {WordFscript, ClassFont, false},
	"fdecor":   {WordFdecor, ClassFont, false},
	"ftech":    {WordFtech, ClassFont, false},
	"fnil":     {WordFnil, ClassFont, false},
	"fcharset": {WordFcharset, ClassFont, false},
	"fprq":     {WordFprq, ClassFont, false},

	"red":   {WordRed, ClassColor, false},
	"green": {WordGreen, ClassColor, false},
	"blue":  {WordBlue, ClassColor, false},

	"s":        {WordS, ClassParFmt, false},
	"cs":       {WordCS, ClassChrFmt, false},
	"ds":       {WordDS, ClassStyle, false},
	"ts":       {WordTS, ClassStyle, false},
	"sbasedon": {WordSBasedOn, ClassStyle, false},
	"snext":    {WordSNext, ClassStyle, false},
	"soutlvl":  {WordSOutlvl, ClassStyle, false},

	"plain":      {WordPlain, ClassChrFmt, false},
	"f":          {WordF, ClassChrFmt, false},
	"b":          {WordB, ClassChrFmt, false},
	"i":          {WordI, ClassChrFmt, false},
	"ul":         {WordUl, ClassChrFmt, false},
	"uld":        {WordUld, ClassChrFmt, false},
	"uldb":       {WordUldb, ClassChrFmt, false},
	"ulw":        {WordUlw, ClassChrFmt, false},
	"ulnone":     {WordUlnone, ClassChrFmt, false},
	"strike":     {WordStrike, ClassChrFmt, false},
	"striked":    {WordStrikeD, ClassChrFmt, false},
	"fs":         {WordFs, ClassChrFmt, false},
	"cf":         {WordCf, ClassChrFmt, false},
	"cb":         {WordCb, ClassChrFmt, false},
	"highlight":  {WordHighlight, ClassChrFmt, false},
	"lang":       {WordLang, ClassChrFmt, false},
	"langfe":     {WordLangFE, ClassChrFmt, false},
	"caps":       {WordCaps, ClassChrFmt, false},
	"scaps":      {WordScaps, ClassChrFmt, false},
	"super":      {WordSuper, ClassChrFmt, false},
	"sub":        {WordSub, ClassChrFmt, false},
	"nosupersub": {WordNoSupersub, ClassChrFmt, false},
	"up":         {WordUp, ClassChrFmt, false},
	"dn":         {WordDn, ClassChrFmt, false},
	"v":          {WordV, ClassChrFmt, false},
	"expnd":      {WordExpnd, ClassChrFmt, false},
	"expndtw":    {WordExpndTw, ClassChrFmt, false},
	"outl":       {WordOutl, ClassChrFmt, false},
	"shad":       {WordShad, ClassChrFmt, false},

	"pard":         {WordPard, ClassParFmt, false},
	"ql":           {WordQl, ClassParFmt, false},
	"qr":           {WordQr, ClassParFmt, false},
	"qc":           {WordQc, ClassParFmt, false},
	"qj":           {WordQj, ClassParFmt, false},
	"li":           {WordLi, ClassParFmt, false},
	"ri":           {WordRi, ClassParFmt, false},
	"fi":           {WordFi, ClassParFmt, false},
	"sb":           {WordSb, ClassParFmt, false},
	"sa":           {WordSa, ClassParFmt, false},
	"sl":           {WordSl, ClassParFmt, false},
	"slmult":       {WordSlMult, ClassParFmt, false},
	"keep":         {WordKeep, ClassParFmt, false},
	"keepn":        {WordKeepN, ClassParFmt, false},
	"outlinelevel": {WordOutlineLevel, ClassParFmt, false},
	"rtlpar":       {WordRtlPar, ClassParFmt, false},
	"ltrpar":       {WordLtrPar, ClassParFmt, false},
	"hyphpar":      {WordHyphPar, ClassParFmt, false},

	"tqr":    {WordTqr, ClassTabStop, false},
	"tqc":    {WordTqc, ClassTabStop, false},
	"tqdec":  {WordTqDec, ClassTabStop, false},
	"tldot":  {WordTlDot, ClassTabStop, false},
	"tlhyph": {WordTlHyph, ClassTabStop, false},
	"tlul":   {WordTlUl, ClassTabStop, false},
	"tlth":   {WordTlTh, ClassTabStop, false},
	"tx":     {WordTx, ClassTabStop, false},
	"tb":     {WordTb, ClassTabStop, false},

	"brdrt": {WordBrdrT, ClassBorder, false},
	"brdrb": {WordBrdrB, ClassBorder, false},
	"brdrl": {WordBrdrL, ClassBorder, false},
	"brdrr": {WordBrdrR, ClassBorder, false},
	"brdrs": {WordBrdrS, ClassBorder, false},
	"brdrw": {WordBrdrW, ClassBorder, false},
	"brsp":  {WordBrsp, ClassBorder, false},

	"pgdscno": {WordPgDscNo, ClassParFmt, true},
	"pgbrk":   {WordPgBrk, ClassParFmt, true},
	"shadow":  {WordShadow, ClassBorder, true},
}

var wordNames = func() map[Word]string {
	m := make(map[Word]string, len(keywords))
	for name, kw := range keywords {
		m[kw.word] = name
	}
	return m
}()

// Classify builds token for control word name with optional parameter.
// Words missing from keyword table produce Unknown tokens.
func Classify(name string, value int, hasValue bool) Token {
	tok := Token{Kind: Unknown, Text: name, Value: value, HasValue: hasValue}
	if kw, ok := keywords[name]; ok {
		tok.Kind = Control
		tok.Word = kw.word
		tok.Class = kw.class
		tok.SwgDef = kw.swgDef
	}
	return tok
}

func (w Word) String() string {
	if name, ok := wordNames[w]; ok {
		return name
	}
	return "none"
}
