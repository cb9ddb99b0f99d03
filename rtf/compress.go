package rtf

// contiguous reports whether range starting at next directly follows range
// ending at last. Range starting a paragraph follows the end of the previous
// one.
func contiguous(doc Document, last, next Position) bool {
	if next.Offset == 0 {
		return last.Node+1 == next.Node && doc.IsParagraphEnd(last)
	}
	return last == next
}

// compress moves values shared by all children of s up to s when children
// cover the whole range of s without gaps. Children are compressed first.
func compress(doc Document, s *Scope) {
	if len(s.children) == 0 {
		return
	}
	for _, c := range s.children {
		compress(doc, c)
	}

	first := s.children[0]
	if first.Attrs.Count() == 0 || first.Start != s.Start {
		return
	}

	merge := first.Attrs.Clone()
	last := first.End
	for _, c := range s.children[1:] {
		if !contiguous(doc, last, c.Start) {
			return
		}
		for _, w := range merge.Whiches() {
			mv, _ := merge.Get(w)
			if cv, ok := c.Attrs.Get(w); !ok || !EqualValues(cv, mv) {
				merge.Clear(w)
			}
		}
		if merge.Count() == 0 {
			return
		}
		last = c.End
	}
	if last != s.End {
		return
	}

	s.Attrs.PutAll(merge)
	kept := s.children[:0]
	for _, c := range s.children {
		c.Attrs.Differentiate(merge)
		if !c.Empty() {
			kept = append(kept, c)
		}
	}
	clear(s.children[len(kept):])
	s.children = kept
}
