package fact

// RemoveOccurrences removes exactly one occurrence of each target fact from
// the multiset (the effect required by ConsumeOne/ConsumeMany/Replace*), and
// keeps the presence set consistent (contract C1).
//
// For each target it swap-removes the first matching position — copying the
// tail element into the vacated slot and shrinking the slice — then keeps
// scanning from that same slot, because the tail element swapped in may
// itself be a second copy of the target. As soon as a second match is
// observed the scan stops: that single bit of information (did at least one
// more copy survive?) is all presence-set bookkeeping needs. Because only
// one copy is removed per target, telling "zero, one, or two or more"
// occurrences apart is enough to keep the presence set exact however many
// duplicates of the same fact value the multiset holds.
func (m *Multiset[F]) RemoveOccurrences(targets []F) {
	for _, target := range targets {
		removed := 0
		sawAnother := false
		i := 0
		for i < len(m.items) {
			if m.items[i].FactEqual(target) {
				removed++
				if removed == 1 {
					last := len(m.items) - 1
					m.items[i] = m.items[last]
					m.items = m.items[:last]
					continue // re-check index i: the swapped-in tail may match too
				}
				sawAnother = true
				break
			}
			i++
		}
		if removed == 1 && !sawAnother {
			m.presence.Remove(target)
		}
	}
}

// ReplaceFirstUnique overwrites the first occurrence of from with to in
// place, preserving position (unlike remove-then-append) so traces stay
// easy to read. It drops from from the presence set only if no other
// occurrence remained, and always adds to.
func (m *Multiset[F]) ReplaceFirstUnique(from, to F) {
	idx := -1
	count := 0
	for i, it := range m.items {
		if it.FactEqual(from) {
			count++
			if idx == -1 {
				idx = i
			}
			if count == 2 {
				break
			}
		}
	}
	if idx >= 0 {
		m.items[idx] = to
	}
	if count == 1 {
		m.presence.Remove(from)
	}
	m.presence.Put(to)
}

// AppendWithCache pushes t onto the tail and adds it to the presence set.
func (m *Multiset[F]) AppendWithCache(t F) {
	m.items = append(m.items, t)
	m.presence.Put(t)
}
