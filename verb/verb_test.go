package verb

import (
	"testing"

	"github.com/atlasgurus/linsolve/fact"
	"github.com/stretchr/testify/require"
)

type strFact string

func (s strFact) FactHash() uint64 {
	h := uint64(14695981039346656037)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= 1099511628211
	}
	return h
}

func (s strFact) FactEqual(other fact.Fact) bool {
	o, ok := other.(strFact)
	return ok && o == s
}

type fakePresence map[strFact]bool

func (f fakePresence) Has(x strFact) bool { return f[x] }

func TestConstructors(t *testing.T) {
	require.Equal(t, Inference[strFact]{Kind: ConsumeOneKind, Removed: []strFact{"a"}}, ConsumeOne[strFact]("a"))
	require.Equal(t, Inference[strFact]{Kind: ConsumeManyKind, Removed: []strFact{"a", "b"}}, ConsumeMany([]strFact{"a", "b"}))
	require.Equal(t, Inference[strFact]{Kind: ReplaceKind, Removed: []strFact{"a"}, Added: []strFact{"b"}}, Replace([]strFact{"a"}, strFact("b")))
	require.Equal(t, Inference[strFact]{Kind: ReplaceOneKind, Removed: []strFact{"a"}, Added: []strFact{"b"}}, ReplaceOne[strFact]("a", "b"))
	require.Equal(t, Inference[strFact]{Kind: ReplaceManyKind, Removed: []strFact{"a"}, Added: []strFact{"b", "c"}}, ReplaceMany([]strFact{"a"}, []strFact{"b", "c"}))
	require.Equal(t, Inference[strFact]{Kind: AddKind, Added: []strFact{"a"}}, Add[strFact]("a"))
}

func TestKindString(t *testing.T) {
	require.Equal(t, "ConsumeOne", ConsumeOneKind.String())
	require.Equal(t, "Add", AddKind.String())
	require.Equal(t, "Unknown", Kind(99).String())
}

func TestReplaceOneCheckedDegradesToConsumeWhenTargetPresent(t *testing.T) {
	present := fakePresence{"b": true}
	got := ReplaceOneChecked[strFact]("a", "b", present)
	require.Equal(t, ConsumeOne[strFact]("a"), got)
}

func TestReplaceOneCheckedReplacesWhenTargetAbsent(t *testing.T) {
	present := fakePresence{}
	got := ReplaceOneChecked[strFact]("a", "b", present)
	require.Equal(t, ReplaceOne[strFact]("a", "b"), got)
}

func TestReplaceCheckedDegradesToConsumeMany(t *testing.T) {
	present := fakePresence{"z": true}
	got := ReplaceChecked([]strFact{"a", "b"}, strFact("z"), present)
	require.Equal(t, ConsumeMany([]strFact{"a", "b"}), got)
}

func TestReplaceManyCheckedFiltersPresentTargets(t *testing.T) {
	present := fakePresence{"x": true}
	got := ReplaceManyChecked([]strFact{"a"}, []strFact{"x", "y"}, present)
	require.Equal(t, ReplaceMany([]strFact{"a"}, []strFact{"y"}), got)
}

func TestReplaceManyWithDuplicateAddedFact(t *testing.T) {
	// ReplaceMany([x], [x, x]) is a valid boundary case: a rule legitimately
	// wanting two copies of x in the result. Nothing here deduplicates it.
	got := ReplaceMany([]strFact{"x"}, []strFact{"x", "x"})
	require.Equal(t, []strFact{"x", "x"}, got.Added)
}
