package rtf

import (
	"fmt"
	"slices"
	"strings"
)

// Attribute value types. The document model decides what they look like.

type Weight int

const (
	WeightNormal Weight = iota
	WeightBold
)

type Posture int

const (
	PostureNormal Posture = iota
	PostureItalic
)

type Underline int

const (
	UnderlineNone Underline = iota
	UnderlineSingle
	UnderlineDouble
	UnderlineDotted
	UnderlineWords
)

type Strikeout int

const (
	StrikeoutNone Strikeout = iota
	StrikeoutSingle
	StrikeoutDouble
)

type CaseMap int

const (
	CaseMapNone CaseMap = iota
	CaseMapUpper
	CaseMapSmallCaps
)

type Adjust int

const (
	AdjustLeft Adjust = iota
	AdjustRight
	AdjustCenter
	AdjustBlock
)

type Direction int

const (
	DirectionLTR Direction = iota
	DirectionRTL
)

// FontHeight is measured in half points, as RTF writes it.
type FontHeight int

// Kerning is character spacing in twips.
type Kerning int

// OutlineLevel 0 means body text.
type OutlineLevel int

// Escapement describes super/subscript: offset in percent of font height
// (positive raises), Prop is relative size in percent.
type Escapement struct {
	Offset int
	Prop   int
}

// LRSpace holds paragraph indents in twips.
type LRSpace struct {
	Left      int
	Right     int
	FirstLine int
}

// ULSpace holds paragraph spacing in twips.
type ULSpace struct {
	Before int
	After  int
}

// LineSpacing in twips, Multiple selects proportional spacing.
type LineSpacing struct {
	Value    int
	Multiple bool
}

type TabAlign int

const (
	TabAlignLeft TabAlign = iota
	TabAlignRight
	TabAlignCenter
	TabAlignDecimal
)

type TabStop struct {
	Pos    int
	Align  TabAlign
	Leader rune
	Bar    bool
}

// TabStops is ordered by position.
type TabStops []TabStop

func (t TabStops) Equal(other Value) bool {
	o, ok := other.(TabStops)
	return ok && slices.Equal(t, o)
}

// with returns copy with ts inserted, replacing a stop at the same position.
func (t TabStops) with(ts TabStop) TabStops {
	out := make(TabStops, 0, len(t)+1)
	for _, s := range t {
		if s.Pos != ts.Pos {
			out = append(out, s)
		}
	}
	out = append(out, ts)
	slices.SortFunc(out, func(a, b TabStop) int { return a.Pos - b.Pos })
	return out
}

// Color is an RGB triple or the symbolic automatic color.
type Color struct {
	R, G, B uint8
	Auto    bool
}

// ColorAuto lets the document pick the color.
var ColorAuto = Color{Auto: true}

func (c Color) String() string {
	if c.Auto {
		return "auto"
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// FontAttr is the font attribute value resolved from the font table.
type FontAttr struct {
	Name    string
	Family  FontFamily
	Pitch   FontPitch
	Charset int
}

func (w Weight) String() string {
	return choose(w == WeightBold, "bold", "normal")
}

func (p Posture) String() string {
	return choose(p == PostureItalic, "italic", "normal")
}

var underlineNames = [...]string{"none", "single", "double", "dotted", "words"}

func (u Underline) String() string {
	if u >= 0 && int(u) < len(underlineNames) {
		return underlineNames[u]
	}
	return fmt.Sprintf("Underline(%d)", int(u))
}

var strikeoutNames = [...]string{"none", "single", "double"}

func (s Strikeout) String() string {
	if s >= 0 && int(s) < len(strikeoutNames) {
		return strikeoutNames[s]
	}
	return fmt.Sprintf("Strikeout(%d)", int(s))
}

var caseMapNames = [...]string{"none", "upper", "small-caps"}

func (c CaseMap) String() string {
	if c >= 0 && int(c) < len(caseMapNames) {
		return caseMapNames[c]
	}
	return fmt.Sprintf("CaseMap(%d)", int(c))
}

var adjustNames = [...]string{"left", "right", "center", "block"}

func (a Adjust) String() string {
	if a >= 0 && int(a) < len(adjustNames) {
		return adjustNames[a]
	}
	return fmt.Sprintf("Adjust(%d)", int(a))
}

func (d Direction) String() string {
	return choose(d == DirectionRTL, "rtl", "ltr")
}

func (e Escapement) String() string {
	return fmt.Sprintf("%d%%/%d%%", e.Offset, e.Prop)
}

func (s LRSpace) String() string {
	return fmt.Sprintf("left=%d right=%d first=%d", s.Left, s.Right, s.FirstLine)
}

func (s ULSpace) String() string {
	return fmt.Sprintf("before=%d after=%d", s.Before, s.After)
}

func (s LineSpacing) String() string {
	if s.Multiple {
		return fmt.Sprintf("%d multiple", s.Value)
	}
	return fmt.Sprintf("%d", s.Value)
}

func (t TabStops) String() string {
	var sb strings.Builder
	for i, s := range t {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", s.Pos)
		if s.Bar {
			sb.WriteString("|")
		}
	}
	return sb.String()
}

func (f FontAttr) String() string {
	return fmt.Sprintf("%s (%s, %s)", f.Name, f.Family, f.Pitch)
}
