// Package engine implements the fixpoint dispatch loop: it solicits
// inferences from a caller-supplied function, applies them to a fact
// multiset through fact's mutation primitives, and tracks the multiset's
// fingerprints to recognise when a deterministic rule set has entered a
// repeating cycle, returning the smallest multiset observed in it.
package engine

import (
	"fmt"
	"io"

	"github.com/atlasgurus/linsolve/fact"
	"github.com/atlasgurus/linsolve/fingerprint"
	"github.com/atlasgurus/linsolve/verb"
)

// Infer is the shape of a caller's inference function: given a read-only
// presence view and the current fact sequence, it returns at most one
// rewrite verb. Returning ok=false ends solving with the current multiset.
type Infer[F fact.Fact] func(presence fact.PresenceView[F], facts []F) (inf verb.Inference[F], ok bool)

type phase int8

const (
	solving phase = iota
	searchingMinimum
)

// IterationMetrics counts driver activity across one SolveMinimum call:
// plain fields reported with fmt, not routed through a logging dependency.
type IterationMetrics struct {
	Iterations        uint64
	PhaseTransitions  uint64
	FilterResets      uint64
	FinalMultisetSize int
}

// Report writes a one-line human-readable summary to w, mirroring
// cateng.CategoryEngine.PrintMetrics's plain fmt.Fprintf style.
func (m IterationMetrics) Report(w io.Writer) {
	fmt.Fprintf(w, "iterations=%d phaseTransitions=%d filterResets=%d finalSize=%d\n",
		m.Iterations, m.PhaseTransitions, m.FilterResets, m.FinalMultisetSize)
}

// SolveMinimum repeatedly applies infer to the fact multiset seeded from
// initial until infer returns nothing, or until a deterministic cycle is
// detected, in which case it returns the smallest multiset observed since
// cycle entry. It is reentrant: all state (the multiset, the presence set,
// the fingerprint filter, the phase) is local to this call, so infer may
// call SolveMinimum again (examples/magicsquare's Narrow directive does
// exactly this for bounded case-splitting).
func SolveMinimum[F fact.Fact](initial []F, infer Infer[F]) []F {
	facts, _ := SolveMinimumMetrics(initial, infer)
	return facts
}

// SolveMinimumMetrics is SolveMinimum plus the IterationMetrics collected
// along the way, for callers (such as cmd/linsolve -metrics) that want
// visibility into how much work a scenario took.
func SolveMinimumMetrics[F fact.Fact](initial []F, infer Infer[F]) ([]F, IterationMetrics) {
	ms := fact.New(initial)
	filt := fingerprint.NewFilter()
	st := solving
	var best []F
	var metrics IterationMetrics

	for {
		cur := ms.Snapshot()
		fp := fingerprint.Of(cur)
		metrics.Iterations++

		switch st {
		case solving:
			if filt.Contains(fp) {
				st = searchingMinimum
				best = cur
				filt = fingerprint.NewFilter()
				metrics.PhaseTransitions++
				metrics.FilterResets++
			}
		case searchingMinimum:
			if filt.Contains(fp) {
				result := cur
				if len(best) < len(cur) {
					result = best
				}
				metrics.FinalMultisetSize = len(result)
				return result, metrics
			}
			if len(cur) < len(best) {
				best = cur
				metrics.PhaseTransitions++
			}
		}

		filt.Insert(fp)

		inf, ok := infer(ms.Presence(), cur)
		if !ok {
			metrics.FinalMultisetSize = len(cur)
			return cur, metrics
		}
		apply(ms, inf)
	}
}

// apply mutates ms according to inf, via fact's mutation primitives. This
// is the only place a verb.Kind is interpreted; verb's own package never
// mutates a multiset.
func apply[F fact.Fact](ms *fact.Multiset[F], inf verb.Inference[F]) {
	switch inf.Kind {
	case verb.ConsumeOneKind, verb.ConsumeManyKind:
		ms.RemoveOccurrences(inf.Removed)
	case verb.ReplaceKind:
		ms.RemoveOccurrences(inf.Removed)
		ms.AppendWithCache(inf.Added[0])
	case verb.ReplaceManyKind:
		ms.RemoveOccurrences(inf.Removed)
		for _, t := range inf.Added {
			ms.AppendWithCache(t)
		}
	case verb.ReplaceOneKind:
		ms.ReplaceFirstUnique(inf.Removed[0], inf.Added[0])
	case verb.AddKind:
		ms.AppendWithCache(inf.Added[0])
	default:
		panic(fmt.Sprintf("engine: unknown inference kind %v", inf.Kind))
	}
}
