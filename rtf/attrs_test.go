package rtf

import (
	"slices"
	"testing"
)

func TestAttrSet_Inheritance(t *testing.T) {
	parent := NewAttrSet(nil)
	parent.Put(WhichWeight, WeightBold)
	child := parent.NewChild()
	child.Put(WhichPosture, PostureItalic)

	if _, ok := child.Get(WhichWeight); ok {
		t.Error("Get() must not look into parent")
	}
	if v, ok := child.Lookup(WhichWeight); !ok || v != WeightBold {
		t.Errorf("Lookup(weight) = %v, %v, want bold", v, ok)
	}
	if _, ok := child.Lookup(WhichColor); ok {
		t.Error("Lookup(color) found value nobody set")
	}
	if child.Count() != 1 || child.Parent() != parent {
		t.Errorf("Count() = %d, Parent() = %p", child.Count(), child.Parent())
	}

	child.SetParent(nil)
	if _, ok := child.Lookup(WhichWeight); ok {
		t.Error("Lookup() used detached parent")
	}
}

func TestAttrSet_Operations(t *testing.T) {
	a := NewAttrSet(nil)
	a.Put(WhichWeight, WeightBold)
	a.Put(WhichFontHeight, FontHeight(32))
	a.Put(WhichAdjust, AdjustCenter)

	if got, want := a.Whiches(), []Which{WhichAdjust, WhichWeight, WhichFontHeight}; !slices.Equal(got, want) {
		t.Errorf("Whiches() = %v, want %v", got, want)
	}

	b := a.Clone()
	if !a.Equal(b) {
		t.Error("clone differs from original")
	}
	b.Put(WhichWeight, WeightNormal)
	if a.Equal(b) {
		t.Error("Equal() ignored different value")
	}
	if v, _ := a.Get(WhichWeight); v != WeightBold {
		t.Error("changing clone changed original")
	}

	other := NewAttrSet(nil)
	other.Put(WhichWeight, WeightNormal)
	other.Put(WhichColor, ColorAuto)
	a.Differentiate(other)
	if a.Has(WhichWeight) || a.Count() != 2 {
		t.Errorf("after Differentiate() left %v", a.Whiches())
	}

	a.PutAll(other)
	if v, _ := a.Get(WhichWeight); v != WeightNormal || !a.Has(WhichColor) {
		t.Errorf("after PutAll() left %v", a.Whiches())
	}

	a.Clear(WhichColor)
	if a.Has(WhichColor) {
		t.Error("Clear() kept value")
	}

	var nilSet *AttrSet
	if nilSet.Count() != 0 {
		t.Error("nil set is not empty")
	}
}

func TestEqualValues(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"same enum", WeightBold, WeightBold, true},
		{"different enum", WeightBold, WeightNormal, false},
		{"different types", Weight(1), Posture(1), false},
		{"struct", LRSpace{Left: 10}, LRSpace{Left: 10}, true},
		{"colors", Color{R: 1}, Color{R: 1}, true},
		{"auto and black", ColorAuto, Color{}, false},
		{"tab stops", TabStops{{Pos: 720}}, TabStops{{Pos: 720}}, true},
		{"tab stops differ", TabStops{{Pos: 720}}, TabStops{{Pos: 720, Bar: true}}, false},
		{"tab stops and nil", TabStops{}, nil, false},
		{"nil and tab stops", nil, TabStops{}, false},
		{"nil tab stops", TabStops(nil), TabStops{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EqualValues(tt.a, tt.b); got != tt.want {
				t.Errorf("EqualValues(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestTabStops_With(t *testing.T) {
	var stops TabStops
	stops = stops.with(TabStop{Pos: 1440})
	stops = stops.with(TabStop{Pos: 720, Align: TabAlignRight})
	stops = stops.with(TabStop{Pos: 1440, Leader: '.'})

	want := TabStops{{Pos: 720, Align: TabAlignRight}, {Pos: 1440, Leader: '.'}}
	if !slices.Equal(stops, want) {
		t.Errorf("stops = %+v, want %+v", stops, want)
	}
	if got := stops.String(); got != "720 1440" {
		t.Errorf("String() = %q", got)
	}
}

func TestValueStrings(t *testing.T) {
	tests := []struct {
		v    any
		want string
	}{
		{WhichWeight, "weight"},
		{WhichBgColor, "bg-color"},
		{Which(200), "unknown"},
		{WeightBold, "bold"},
		{PostureItalic, "italic"},
		{UnderlineWords, "words"},
		{Underline(9), "Underline(9)"},
		{StrikeoutDouble, "double"},
		{CaseMapSmallCaps, "small-caps"},
		{AdjustBlock, "block"},
		{DirectionRTL, "rtl"},
		{ColorAuto, "auto"},
		{Color{R: 255, B: 16}, "#ff0010"},
		{Escapement{Offset: -33, Prop: 58}, "-33%/58%"},
		{LineSpacing{Value: 240, Multiple: true}, "240 multiple"},
		{FontAttr{Name: "Arial", Family: FontFamilySwiss, Pitch: FontPitchVariable}, "Arial (swiss, variable)"},
		{Position{Node: 2, Offset: 5}, "2:5"},
	}
	for _, tt := range tests {
		if got := tt.v.(interface{ String() string }).String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestPosition_Before(t *testing.T) {
	tests := []struct {
		a, b Position
		want bool
	}{
		{pos(0, 1), pos(0, 2), true},
		{pos(0, 2), pos(0, 2), false},
		{pos(0, 9), pos(1, 0), true},
		{pos(1, 0), pos(0, 9), false},
	}
	for _, tt := range tests {
		if got := tt.a.Before(tt.b); got != tt.want {
			t.Errorf("%s.Before(%s) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
