package treemap

import (
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/btree"
)

// differential test: the same operation sequence is applied to a
// treemap.Map and to a B-tree map serving as oracle, and the observable
// behavior must match at every step.
func TestDifferentialAgainstBTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treemap")
	defer teardown()
	//
	m := New[int, int]()
	oracle := btree.NewMap[int, int](8)
	rng := rand.New(rand.NewSource(0xfeed))

	for step := range 5000 {
		k := rng.Intn(800)
		switch rng.Intn(4) {
		case 0: // delete
			deleted := m.Delete(k)
			_, oracleDeleted := oracle.Delete(k)
			require.Equal(t, oracleDeleted, deleted, "step %d: delete(%d)", step, k)
		case 1: // lookup
			v, err := m.At(k)
			ov, ok := oracle.Get(k)
			if ok {
				require.NoError(t, err, "step %d: at(%d)", step, k)
				require.Equal(t, ov, v, "step %d: at(%d)", step, k)
			} else {
				require.ErrorIs(t, err, ErrKeyNotFound, "step %d: at(%d)", step, k)
			}
		default: // insert
			_, added := m.Insert(k, step)
			_, replaced := oracle.Set(k, step)
			require.Equal(t, !replaced, added, "step %d: insert(%d)", step, k)
			if replaced {
				// treemap keeps the old value on duplicate insert,
				// realign the oracle
				v, err := m.At(k)
				require.NoError(t, err)
				oracle.Set(k, v)
			}
		}
		require.Equal(t, oracle.Len(), m.Len(), "step %d: size", step)
	}

	wantKeys := oracle.Keys()
	require.Equal(t, wantKeys, m.Keys(), "final key order")
	for _, k := range wantKeys {
		v, err := m.At(k)
		require.NoError(t, err)
		ov, _ := oracle.Get(k)
		require.Equal(t, ov, v, "final value for key %d", k)
	}
}

// the ordered walk of the map must match the oracle's scan after heavy
// churn that exercises both splice cases of deletion
func TestDifferentialOrderedWalk(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treemap")
	defer teardown()
	//
	m := New[int, int]()
	oracle := btree.NewMap[int, int](8)
	rng := rand.New(rand.NewSource(0xbeef))

	for k := range 512 {
		m.Insert(k, k)
		oracle.Set(k, k)
	}
	for range 400 {
		k := rng.Intn(512)
		m.Delete(k)
		oracle.Delete(k)
	}
	var got []int
	for k := range m.All() {
		got = append(got, k)
	}
	require.Equal(t, oracle.Keys(), got, "ordered walk diverges from oracle")
}
