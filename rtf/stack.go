package rtf

import (
	"go.uber.org/zap"
)

// top returns innermost open scope or nil.
func (p *Parser) top() *Scope {
	if len(p.stack) == 0 {
		return nil
	}
	return p.stack[len(p.stack)-1]
}

// openScope pushes scope for the group which was opened last.
func (p *Parser) openScope() *Scope {
	var s *Scope
	if cur := p.top(); cur != nil {
		s = newScopeFrom(cur, p.doc.Position(), false)
	} else {
		s = newRootScope(p.doc.Position())
	}
	s.seed(p.rtfDefaults)

	p.stack = append(p.stack, s)
	p.pendingGroup = false
	return s
}

func (p *Parser) pop() *Scope {
	s := p.stack[len(p.stack)-1]
	p.stack[len(p.stack)-1] = nil
	p.stack = p.stack[:len(p.stack)-1]
	return s
}

// attach hands resolved scopes to their parent or, for outermost scopes, to
// the flush list.
func (p *Parser) attach(cur *Scope, scopes ...*Scope) {
	if cur != nil {
		for _, s := range scopes {
			cur.add(s)
		}
		return
	}
	p.flush = append(p.flush, scopes...)
}

// groupEnd closes the innermost scope, resolving its range and moving it to
// the enclosing scope.
func (p *Parser) groupEnd() {
	if len(p.stack) == 0 {
		return
	}
	defer func() { p.pendingGroup = false }()

	old := p.pop()
	cur := p.top()

	pos := p.doc.Position()
	if len(old.children) == 0 &&
		((old.Attrs.Count() == 0 && old.StyleID == 0) || old.Start == pos) {
		return
	}

	// only values different from the enclosing scope are kept
	if cur != nil && old.Attrs.Count() > 0 {
		for _, w := range old.Attrs.Whiches() {
			v, _ := old.Attrs.Get(w)
			if pv, ok := cur.Attrs.Get(w); ok && EqualValues(v, pv) {
				old.Attrs.Clear(w)
			}
		}
		if old.Empty() {
			return
		}
	}

	// at the beginning of a paragraph attributes belong to the end of the
	// previous one
	crsrBack := pos.Offset == 0
	if crsrBack {
		p.doc.Move(false)
		moved := p.doc.Position()
		crsrBack = moved.Node != pos.Node
		pos = moved
	}

	if old.Start.Node < pos.Node || (old.Start.Node == pos.Node && old.Start.Offset <= pos.Offset) {
		if !crsrBack && old.Start.Node != pos.Node && p.splitAtParagraph(old, cur, pos) {
			return
		}

		old.End = pos
		if p.opts.CheckStyleAttr && cur == nil {
			p.clearStyleAttr(old)
		}

		if cur != nil {
			cur.add(old)
			if len(cur.children) > p.opts.MaxChildren {
				if crsrBack {
					p.doc.Move(true)
					crsrBack = false
				}
				p.reopen(cur)
			}
		} else {
			p.flush = append(p.flush, old)
		}
	}

	if crsrBack {
		p.doc.Move(true)
	}
}

// splitAtParagraph cuts scope spanning paragraph boundary into the part up to
// the previous paragraph end and the part inside the current paragraph, which
// keeps only character level values. Reports false when there is nothing to
// split.
func (p *Parser) splitAtParagraph(old, cur *Scope, pos Position) bool {
	tail := newScopeFrom(old, pos, true)
	tail.Attrs.SetParent(old.Attrs.Parent())
	for _, w := range p.whichPara {
		if tail.Attrs.Count() == 0 {
			break
		}
		tail.Attrs.Clear(w)
	}
	tail.seed(p.rtfDefaults)

	if tail.Attrs.Count() == old.Attrs.Count() {
		return false
	}
	tail.StyleID = 0

	old.End = p.doc.PrevParagraphEnd(pos)
	tail.Start = Position{Node: pos.Node}

	if p.opts.CheckStyleAttr {
		p.clearStyleAttr(old)
		p.clearStyleAttr(tail)
	}
	p.attach(cur, old, tail)
	return true
}

// attrScope returns scope attribute words go to. When text was inserted since
// the scope started, the scope is closed at the cursor and continued by a
// fresh one, so new values apply from the cursor on.
func (p *Parser) attrScope() *Scope {
	if p.pendingGroup || len(p.stack) == 0 {
		return p.openScope()
	}
	cur := p.top()
	pos := p.doc.Position()
	switch {
	case cur.Start == pos:
		return cur
	case cur.Empty():
		cur.Start, cur.End = pos, pos
		return cur
	}
	return p.restart(cur)
}

// reopen closes scope with too many children early.
func (p *Parser) reopen(cur *Scope) {
	p.log.Debug("Splitting long scope",
		zap.Int("children", len(cur.children)), zap.Stringer("start", cur.Start))
	p.restart(cur)
}

// restart closes innermost scope cur at the cursor and continues it with a
// fresh scope carrying the same values.
func (p *Parser) restart(cur *Scope) *Scope {
	next := newScopeFrom(cur, p.doc.Position(), true)
	next.seed(p.rtfDefaults)

	p.groupEnd()

	if parent := p.top(); parent != nil {
		next.Attrs.SetParent(parent.Attrs)
	} else {
		next.Attrs.SetParent(nil)
	}
	p.stack = append(p.stack, next)
	return next
}

// clearStyleAttr drops values which the referenced style or the pool already
// provide.
func (p *Parser) clearStyleAttr(s *Scope) {
	style, known := p.styles[s.StyleID]
	if !p.opts.CheckStyleAttr || s.Attrs.Count() == 0 || !known {
		for _, w := range p.whichAll {
			if v, ok := s.Attrs.Get(w); ok && EqualValues(v, p.pool.Default(w)) {
				s.Attrs.Clear(w)
			}
		}
		return
	}

	for _, w := range p.whichAll {
		v, ok := s.Attrs.Get(w)
		if !ok {
			continue
		}
		if sv, set := style.Attrs.Lookup(w); set {
			if EqualValues(v, sv) {
				s.Attrs.Clear(w)
			}
		} else if EqualValues(v, p.pool.Default(w)) {
			s.Attrs.Clear(w)
		}
	}
}
