package rtf

import (
	"go.uber.org/zap"

	"rtfc/utils/debug"
)

// setAttrSet compresses scope tree and hands every non empty node to the
// document in document order.
func (p *Parser) setAttrSet(root *Scope) {
	if !p.defTabSet {
		p.setDefaultTab(720)
	}

	compress(p.doc, root)

	if ce := p.log.Check(zap.DebugLevel, "Committing scope tree"); ce != nil {
		tw := debug.NewTreeWriter()
		root.Dump(tw, 0)
		ce.Write(zap.String("tree", tw.String()))
	}

	stack := []*Scope{root}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if s.Attrs.Count() > 0 || s.StyleID != 0 {
			p.doc.ApplyAttributes(s.Start, s.End, s.Attrs, s.StyleID)
		}
		for i := len(s.children) - 1; i >= 0; i-- {
			stack = append(stack, s.children[i])
		}
	}
}

// applyFlushList commits scopes closed while no group was open, last added
// first.
func (p *Parser) applyFlushList(drop bool) {
	for n := len(p.flush); n > 0; n-- {
		s := p.flush[n-1]
		p.setAttrSet(s)
		if drop {
			s.DropChildren()
		}
		p.flush[n-1] = nil
		p.flush = p.flush[:n-1]
	}
}

// setAllAttrOfStack closes every open scope and commits everything.
func (p *Parser) setAllAttrOfStack() {
	for len(p.stack) > 0 {
		p.groupEnd()
	}
	p.applyFlushList(true)
}
