// Package fact defines the opaque fact type the solver operates over, and
// the multiset + presence-set storage the engine mutates.
package fact

import (
	"github.com/zyedidia/generic/hashset"
)

// Fact is the capability a caller's value must provide to be rewritten by
// the solver: a hash and a value-equality test. The engine never inspects
// a fact's interior; only a caller's inference function does that.
type Fact interface {
	FactHash() uint64
	FactEqual(other Fact) bool
}

func eq[F Fact](a, b F) bool {
	return a.FactEqual(b)
}

func hash[F Fact](f F) uint64 {
	return f.FactHash()
}

// NewPresenceSet returns an empty presence set for fact type F, using the
// same hashset.New(0, eqFunc, hashFunc) construction style as a generic
// hash-set helper built over a hashable element constraint.
func NewPresenceSet[F Fact]() *hashset.Set[F] {
	return hashset.New[F](0, eq[F], hash[F])
}

// PresenceView is the read-only window onto a presence set handed to a
// caller's inference function. It answers "does at least one occurrence of
// f exist in the multiset?" (invariant I1) without exposing Put/Remove.
type PresenceView[F Fact] struct {
	set *hashset.Set[F]
}

// Has reports whether at least one occurrence of f is present.
func (p PresenceView[F]) Has(f F) bool {
	return p.set.Has(f)
}

// Multiset holds the current facts as an ordered, duplicate-preserving
// sequence, paired with a presence set kept consistent with it (I1) by the
// mutation primitives in primitives.go. Order is incidental: removal uses
// swap-with-tail, so positions are ephemeral and must not be relied upon by
// callers across iterations.
type Multiset[F Fact] struct {
	items    []F
	presence *hashset.Set[F]
}

// New builds a multiset from an initial fact list, preserving duplicates
// and populating the presence set per I1.
func New[F Fact](initial []F) *Multiset[F] {
	m := &Multiset[F]{
		items:    append([]F(nil), initial...),
		presence: NewPresenceSet[F](),
	}
	for _, f := range initial {
		m.presence.Put(f)
	}
	return m
}

// Len returns the number of facts currently held, counting duplicates.
func (m *Multiset[F]) Len() int {
	return len(m.items)
}

// Snapshot returns a defensive copy of the current fact sequence, the form
// in which the driver both fingerprints and potentially returns a result.
func (m *Multiset[F]) Snapshot() []F {
	return append([]F(nil), m.items...)
}

// Presence returns a read-only view of the presence set for handing to a
// caller's inference function.
func (m *Multiset[F]) Presence() PresenceView[F] {
	return PresenceView[F]{set: m.presence}
}

// Has reports membership directly, for use by mutation primitives and
// tests without going through a PresenceView.
func (m *Multiset[F]) Has(f F) bool {
	return m.presence.Has(f)
}
