// Package verb defines the closed set of rewrite actions a caller's
// inference function may return, and the cache-aware constructors that let
// a rule avoid re-adding a fact whose value is already present.
//
// The six variants are exhaustive by design; adding a seventh requires
// changing this package, not extending it from outside.
package verb

import "github.com/atlasgurus/linsolve/fact"

// Kind discriminates the six Inference variants, in the closed
// enum-plus-struct idiom of a tagged union.
type Kind int8

const (
	// ConsumeOneKind removes one occurrence of Removed[0].
	ConsumeOneKind Kind = iota + 1
	// ConsumeManyKind removes one occurrence of each fact in Removed.
	ConsumeManyKind
	// ReplaceKind removes each fact in Removed and adds Added[0].
	ReplaceKind
	// ReplaceOneKind removes Removed[0] and adds Added[0], positionally.
	ReplaceOneKind
	// ReplaceManyKind removes each fact in Removed and adds each in Added.
	ReplaceManyKind
	// AddKind adds Added[0].
	AddKind
)

func (k Kind) String() string {
	switch k {
	case ConsumeOneKind:
		return "ConsumeOne"
	case ConsumeManyKind:
		return "ConsumeMany"
	case ReplaceKind:
		return "Replace"
	case ReplaceOneKind:
		return "ReplaceOne"
	case ReplaceManyKind:
		return "ReplaceMany"
	case AddKind:
		return "Add"
	default:
		return "Unknown"
	}
}

// Inference is the tagged union a caller's inference function returns. Only
// the fields relevant to Kind are populated; the engine applies it verbatim
// via the fact.Multiset mutation primitives.
type Inference[F fact.Fact] struct {
	Kind    Kind
	Removed []F
	Added   []F
}

// ConsumeOne removes one occurrence of f.
func ConsumeOne[F fact.Fact](f F) Inference[F] {
	return Inference[F]{Kind: ConsumeOneKind, Removed: []F{f}}
}

// ConsumeMany removes one occurrence of each fact in fs.
func ConsumeMany[F fact.Fact](fs []F) Inference[F] {
	return Inference[F]{Kind: ConsumeManyKind, Removed: fs}
}

// Replace removes each fact in fs and adds one occurrence of t.
func Replace[F fact.Fact](fs []F, t F) Inference[F] {
	return Inference[F]{Kind: ReplaceKind, Removed: fs, Added: []F{t}}
}

// ReplaceOne removes one occurrence of from and adds one occurrence of to,
// in from's former position.
func ReplaceOne[F fact.Fact](from, to F) Inference[F] {
	return Inference[F]{Kind: ReplaceOneKind, Removed: []F{from}, Added: []F{to}}
}

// ReplaceMany removes each fact in fs and adds each fact in ts.
func ReplaceMany[F fact.Fact](fs []F, ts []F) Inference[F] {
	return Inference[F]{Kind: ReplaceManyKind, Removed: fs, Added: ts}
}

// Add adds one occurrence of t.
func Add[F fact.Fact](t F) Inference[F] {
	return Inference[F]{Kind: AddKind, Added: []F{t}}
}

// presence is the minimal read interface the checked constructors need;
// fact.PresenceView and fact.Multiset both satisfy it.
type presence[F fact.Fact] interface {
	Has(F) bool
}

// ReplaceOneChecked applies a dedup-on-construct discipline: if to is
// already present, there is nothing new to add, so this degrades to
// ConsumeOne(from) rather than introducing a redundant duplicate of to.
func ReplaceOneChecked[F fact.Fact](from, to F, present presence[F]) Inference[F] {
	if present.Has(to) {
		return ConsumeOne(from)
	}
	return ReplaceOne(from, to)
}

// ReplaceChecked is Replace's cache-aware counterpart: if to already exists,
// fs are simply consumed (ConsumeMany) instead of replaced.
func ReplaceChecked[F fact.Fact](fs []F, to F, present presence[F]) Inference[F] {
	if present.Has(to) {
		return ConsumeMany(fs)
	}
	return Replace(fs, to)
}

// ReplaceManyChecked drops any t in ts that is already present before
// building a ReplaceMany, so rules never reintroduce a fact the presence
// set already reports as live.
func ReplaceManyChecked[F fact.Fact](fs []F, ts []F, present presence[F]) Inference[F] {
	filtered := make([]F, 0, len(ts))
	for _, t := range ts {
		if !present.Has(t) {
			filtered = append(filtered, t)
		}
	}
	return ReplaceMany(fs, filtered)
}
