package rtf

import (
	"golang.org/x/text/language"
)

var (
	paragraphWhiches = []Which{
		WhichAdjust, WhichLRSpace, WhichULSpace, WhichLineSpacing, WhichTabStops,
		WhichKeep, WhichSplit, WhichOutlineLevel, WhichDirection, WhichHyphenZone,
	}
	characterWhiches = []Which{
		WhichWeight, WhichPosture, WhichUnderline, WhichStrikeout, WhichFontHeight,
		WhichFont, WhichColor, WhichBgColor, WhichLanguage, WhichLanguageFE,
		WhichCaseMap, WhichEscapement, WhichHidden, WhichKerning, WhichContour,
		WhichShadowed,
	}
)

// MapPool is a simple Pool keeping defaults in a map.
type MapPool struct {
	defaults map[Which]Value
}

// NewMapPool returns pool with defaults for every known attribute.
func NewMapPool() *MapPool {
	return &MapPool{defaults: map[Which]Value{
		WhichAdjust:       AdjustLeft,
		WhichLRSpace:      LRSpace{},
		WhichULSpace:      ULSpace{},
		WhichLineSpacing:  LineSpacing{},
		WhichTabStops:     TabStops(nil),
		WhichKeep:         false,
		WhichSplit:        true,
		WhichOutlineLevel: OutlineLevel(0),
		WhichDirection:    DirectionLTR,
		WhichHyphenZone:   false,
		WhichWeight:       WeightNormal,
		WhichPosture:      PostureNormal,
		WhichUnderline:    UnderlineNone,
		WhichStrikeout:    StrikeoutNone,
		WhichFontHeight:   FontHeight(24),
		WhichFont:         FontAttr{Name: "Times New Roman", Family: FontFamilyRoman, Pitch: FontPitchVariable},
		WhichColor:        ColorAuto,
		WhichBgColor:      ColorAuto,
		WhichLanguage:     language.Und,
		WhichLanguageFE:   language.Und,
		WhichCaseMap:      CaseMapNone,
		WhichEscapement:   Escapement{Prop: 100},
		WhichHidden:       false,
		WhichKerning:      Kerning(0),
		WhichContour:      false,
		WhichShadowed:     false,
		WhichDefaultTab:   720,
	}}
}

func (p *MapPool) Default(w Which) Value {
	return p.defaults[w]
}

func (p *MapPool) SetDefault(w Which, v Value) {
	p.defaults[w] = v
}

func (p *MapPool) WhichIDs(c Category) []Which {
	switch c {
	case CategoryParagraph:
		return paragraphWhiches
	case CategoryCharacter:
		return characterWhiches
	}
	return nil
}
