package fingerprint

import (
	"fmt"
	"testing"

	"github.com/atlasgurus/linsolve/fact"
	"github.com/stretchr/testify/require"
)

type intFact int

func (i intFact) FactHash() uint64 { return uint64(i) }
func (i intFact) FactEqual(o fact.Fact) bool {
	oi, ok := o.(intFact)
	return ok && oi == i
}

func TestOfIsOrderSensitive(t *testing.T) {
	a := Of([]intFact{1, 2, 3})
	b := Of([]intFact{3, 2, 1})
	require.NotEqual(t, a, b)
}

func TestOfIsDeterministic(t *testing.T) {
	items := []intFact{1, 2, 3}
	require.Equal(t, Of(items), Of(items))
}

func TestFilterNoFalseNegatives(t *testing.T) {
	f := NewFilter()
	var fps []uint64
	for i := 0; i < 5000; i++ {
		fp := Of([]intFact{intFact(i)})
		f.Insert(fp)
		fps = append(fps, fp)
	}
	for i, fp := range fps {
		require.True(t, f.Contains(fp), "fingerprint %d must never false-negative", i)
	}
}

func TestFilterGrowsUnderLoad(t *testing.T) {
	f := NewFilter()
	initial := f.nbits
	for i := 0; i < 10000; i++ {
		f.Insert(Of([]intFact{intFact(i)}))
	}
	require.Greater(t, f.nbits, initial)
}

func TestFilterAbsentFingerprintUsuallyNotContained(t *testing.T) {
	f := NewFilter()
	for i := 0; i < 100; i++ {
		f.Insert(Of([]intFact{intFact(i)}))
	}
	falsePositives := 0
	for i := 100; i < 1100; i++ {
		if f.Contains(Of([]intFact{intFact(i)})) {
			falsePositives++
		}
	}
	require.Less(t, falsePositives, 100, fmt.Sprintf("false positive rate too high: %d/1000", falsePositives))
}
