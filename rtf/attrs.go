package rtf

import (
	"maps"
	"slices"
)

// Which is a stable identifier of a single attribute kind.
type Which uint16

const (
	WhichNone Which = iota

	// paragraph level
	WhichAdjust
	WhichLRSpace
	WhichULSpace
	WhichLineSpacing
	WhichTabStops
	WhichKeep
	WhichSplit
	WhichOutlineLevel
	WhichDirection
	WhichHyphenZone

	// character level
	WhichWeight
	WhichPosture
	WhichUnderline
	WhichStrikeout
	WhichFontHeight
	WhichFont
	WhichColor
	WhichBgColor
	WhichLanguage
	WhichLanguageFE
	WhichCaseMap
	WhichEscapement
	WhichHidden
	WhichKerning
	WhichContour
	WhichShadowed

	// document level, pool defaults only
	WhichDefaultTab
)

var whichNames = [...]string{
	WhichNone:         "none",
	WhichAdjust:       "adjust",
	WhichLRSpace:      "lr-space",
	WhichULSpace:      "ul-space",
	WhichLineSpacing:  "line-spacing",
	WhichTabStops:     "tab-stops",
	WhichKeep:         "keep",
	WhichSplit:        "split",
	WhichOutlineLevel: "outline-level",
	WhichDirection:    "direction",
	WhichHyphenZone:   "hyphen-zone",
	WhichWeight:       "weight",
	WhichPosture:      "posture",
	WhichUnderline:    "underline",
	WhichStrikeout:    "strikeout",
	WhichFontHeight:   "font-height",
	WhichFont:         "font",
	WhichColor:        "color",
	WhichBgColor:      "bg-color",
	WhichLanguage:     "language",
	WhichLanguageFE:   "language-fe",
	WhichCaseMap:      "case-map",
	WhichEscapement:   "escapement",
	WhichHidden:       "hidden",
	WhichKerning:      "kerning",
	WhichContour:      "contour",
	WhichShadowed:     "shadowed",
	WhichDefaultTab:   "default-tab",
}

func (w Which) String() string {
	if int(w) < len(whichNames) {
		return whichNames[w]
	}
	return "unknown"
}

// Category splits which ids into paragraph and character level.
type Category int

const (
	CategoryParagraph Category = iota
	CategoryCharacter
)

// Value is an attribute value. Values are compared with == unless they
// implement Equaler.
type Value any

// Equaler is implemented by values which are not comparable with ==.
type Equaler interface {
	Equal(other Value) bool
}

// EqualValues compares two attribute values.
func EqualValues(a, b Value) bool {
	if e, ok := a.(Equaler); ok {
		return e.Equal(b)
	}
	if _, ok := b.(Equaler); ok {
		return false
	}
	return a == b
}

// AttrSet is a sparse collection of attribute values. Unset ids inherit from
// parent collection.
type AttrSet struct {
	items  map[Which]Value
	parent *AttrSet
}

// NewAttrSet returns empty collection with given parent (may be nil).
func NewAttrSet(parent *AttrSet) *AttrSet {
	return &AttrSet{items: make(map[Which]Value), parent: parent}
}

// NewChild returns empty collection inheriting from s.
func (s *AttrSet) NewChild() *AttrSet {
	return NewAttrSet(s)
}

// Parent returns collection s inherits from.
func (s *AttrSet) Parent() *AttrSet {
	return s.parent
}

// SetParent changes inheritance link.
func (s *AttrSet) SetParent(parent *AttrSet) {
	s.parent = parent
}

// Get returns value set directly in s.
func (s *AttrSet) Get(w Which) (Value, bool) {
	v, ok := s.items[w]
	return v, ok
}

// Lookup returns value set in s or closest ancestor.
func (s *AttrSet) Lookup(w Which) (Value, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if v, ok := cur.items[w]; ok {
			return v, true
		}
	}
	return nil, false
}

// Has reports whether w is set directly in s.
func (s *AttrSet) Has(w Which) bool {
	_, ok := s.items[w]
	return ok
}

func (s *AttrSet) Put(w Which, v Value) {
	s.items[w] = v
}

// PutAll copies every value set directly in other, overriding.
func (s *AttrSet) PutAll(other *AttrSet) {
	maps.Copy(s.items, other.items)
}

func (s *AttrSet) Clear(w Which) {
	delete(s.items, w)
}

// Count returns number of values set directly in s.
func (s *AttrSet) Count() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Whiches returns ids set directly in s in ascending order.
func (s *AttrSet) Whiches() []Which {
	return slices.Sorted(maps.Keys(s.items))
}

// Differentiate removes every id which is set in other.
func (s *AttrSet) Differentiate(other *AttrSet) {
	for w := range other.items {
		delete(s.items, w)
	}
}

// Clone returns copy of s sharing the same parent.
func (s *AttrSet) Clone() *AttrSet {
	return &AttrSet{items: maps.Clone(s.items), parent: s.parent}
}

// Equal reports whether both collections set the same ids to equal values.
// Parents are not compared.
func (s *AttrSet) Equal(other *AttrSet) bool {
	if s.Count() != other.Count() {
		return false
	}
	for w, v := range s.items {
		ov, ok := other.items[w]
		if !ok || !EqualValues(v, ov) {
			return false
		}
	}
	return true
}
