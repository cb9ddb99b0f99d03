package rtf

import (
	"rtfc/utils/debug"
)

// Scope is the formatting contribution of one RTF group.
type Scope struct {
	Attrs   *AttrSet
	Start   Position
	End     Position
	StyleID uint16

	children []*Scope
}

// newRootScope starts scope with no enclosing group at pos.
func newRootScope(pos Position) *Scope {
	return &Scope{Attrs: NewAttrSet(nil), Start: pos, End: pos}
}

// newScopeFrom starts scope at pos inheriting from src. When copyAttrs is set
// values of src are copied as well.
func newScopeFrom(src *Scope, pos Position, copyAttrs bool) *Scope {
	s := &Scope{
		Attrs:   src.Attrs.NewChild(),
		Start:   pos,
		End:     pos,
		StyleID: src.StyleID,
	}
	if copyAttrs {
		s.Attrs.PutAll(src.Attrs)
	}
	return s
}

// seed puts values from defaults not already set in scope.
func (s *Scope) seed(defaults *AttrSet) {
	for _, w := range defaults.Whiches() {
		if !s.Attrs.Has(w) {
			v, _ := defaults.Get(w)
			s.Attrs.Put(w, v)
		}
	}
}

// Children returns closed scopes nested in s in document order.
func (s *Scope) Children() []*Scope {
	return s.children
}

func (s *Scope) add(c *Scope) {
	s.children = append(s.children, c)
}

// Empty reports whether scope carries no information.
func (s *Scope) Empty() bool {
	return s.Attrs.Count() == 0 && s.StyleID == 0 && len(s.children) == 0
}

// DropChildren releases the whole subtree. Nodes are collected breadth first
// and released from the most distant, so depth of the tree does not matter.
func (s *Scope) DropChildren() {
	if len(s.children) == 0 {
		return
	}
	var order []*Scope
	queue := []*Scope{s}
	for len(queue) > 0 {
		front := queue[0]
		queue = queue[1:]
		if len(front.children) > 0 {
			queue = append(queue, front.children...)
			order = append(order, front)
		}
	}
	for i := len(order) - 1; i >= 0; i-- {
		order[i].children = nil
	}
}

// Dump writes scope subtree for debugging.
func (s *Scope) Dump(tw *debug.TreeWriter, depth int) {
	type item struct {
		s     *Scope
		depth int
	}
	stack := []item{{s, depth}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		tw.Line(it.depth, "scope [%s, %s) style=%d", it.s.Start, it.s.End, it.s.StyleID)
		for _, w := range it.s.Attrs.Whiches() {
			v, _ := it.s.Attrs.Get(w)
			tw.Field(it.depth+1, w.String(), v)
		}
		for i := len(it.s.children) - 1; i >= 0; i-- {
			stack = append(stack, item{it.s.children[i], it.depth + 1})
		}
	}
}
