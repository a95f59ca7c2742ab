package treemap

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestMapScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treemap")
	defer teardown()
	//
	m := New[int, string]()
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9, 2, 6} {
		_, added := m.Insert(k, strconv.Itoa(k))
		if !added {
			t.Fatalf("insert of fresh key %d reported not added", k)
		}
	}
	if m.Len() != 9 || m.IsEmpty() {
		t.Fatalf("unexpected size %d", m.Len())
	}
	keys := m.Keys()
	for i, want := range []int{1, 2, 3, 4, 5, 6, 7, 8, 9} {
		if keys[i] != want {
			t.Fatalf("keys = %v", keys)
		}
	}
	// erase key 5, which has two children in this shape
	if err := m.Erase(m.Find(5)); err != nil {
		t.Fatalf("erase failed: %v", err)
	}
	if !m.Find(5).AtEnd() {
		t.Fatalf("find(5) after erase is not past-the-end")
	}
	keys = m.Keys()
	if len(keys) != 8 {
		t.Fatalf("keys after erase = %v", keys)
	}
	for i, want := range []int{1, 2, 3, 4, 6, 7, 8, 9} {
		if keys[i] != want {
			t.Fatalf("keys after erase = %v", keys)
		}
	}
}

func TestAtOnEmptyMap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treemap")
	defer teardown()
	//
	m := New[string, int]()
	if _, err := m.At("anything"); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
	if err := m.SetAt("anything", 1); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound from SetAt, got %v", err)
	}
}

func TestRefCreatesDefaultEntry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treemap")
	defer teardown()
	//
	m := New[string, int]()
	ref := m.Ref("hits")
	if *ref != 0 {
		t.Fatalf("fresh entry not default-initialized: %d", *ref)
	}
	*ref += 41
	*ref++
	v, err := m.At("hits")
	if err != nil {
		t.Fatalf("At after Ref failed: %v", err)
	}
	if v != 42 {
		t.Fatalf("value through ref = %d, want 42", v)
	}
	if m.Ref("hits") != ref {
		t.Fatalf("Ref handed out a second address for the same key")
	}
}

// a Ref address must survive mutations of other keys: node memory hosts
// the same key for its whole lifetime
func TestRefSurvivesUnrelatedMutation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treemap")
	defer teardown()
	//
	m := New[int, string]()
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9, 2, 6} {
		m.Insert(k, strconv.Itoa(k))
	}
	ref := m.Ref(6)
	if err := m.Erase(m.Find(5)); err != nil { // splices 6 into 5's slot
		t.Fatalf("erase failed: %v", err)
	}
	m.Delete(1)
	m.Insert(10, "10")
	if *ref != "6" {
		t.Fatalf("ref disturbed by unrelated mutations: %q", *ref)
	}
	*ref = "six"
	if v, _ := m.At(6); v != "six" {
		t.Fatalf("write through ref not visible: %q", v)
	}
}

func TestInsertDuplicate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treemap")
	defer teardown()
	//
	m := New[int, string]()
	m.Insert(1, "first")
	it, added := m.Insert(1, "second")
	if added {
		t.Fatalf("duplicate insert reported as added")
	}
	if v, _ := it.Value(); v != "first" {
		t.Fatalf("duplicate insert overwrote value: %q", v)
	}
	if m.Len() != 1 {
		t.Fatalf("duplicate insert changed size to %d", m.Len())
	}
}

func TestSetAt(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treemap")
	defer teardown()
	//
	m := New[int, string]()
	m.Insert(1, "old")
	if err := m.SetAt(1, "new"); err != nil {
		t.Fatalf("SetAt failed: %v", err)
	}
	if v, _ := m.At(1); v != "new" {
		t.Fatalf("SetAt did not overwrite: %q", v)
	}
}

func TestCountAndDelete(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treemap")
	defer teardown()
	//
	m := New[int, string]()
	m.Insert(7, "seven")
	if m.Count(7) != 1 || m.Count(8) != 0 {
		t.Fatalf("count broken")
	}
	if !m.Delete(7) || m.Delete(7) {
		t.Fatalf("delete-by-key broken")
	}
	if m.Count(7) != 0 || m.Len() != 0 {
		t.Fatalf("delete left residue")
	}
}

func TestCloneIndependence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treemap")
	defer teardown()
	//
	m := New[int, string]()
	for k := 1; k <= 5; k++ {
		m.Insert(k, "orig")
	}
	c := m.Clone()
	c.Insert(6, "copy")
	c.Delete(1)
	c.SetAt(2, "changed")
	if m.Len() != 5 || m.Count(6) != 0 || m.Count(1) != 1 {
		t.Fatalf("mutating the clone disturbed the original")
	}
	if v, _ := m.At(2); v != "orig" {
		t.Fatalf("value mutation leaked into original: %q", v)
	}
}

func TestAssign(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treemap")
	defer teardown()
	//
	src := New[int, string]()
	src.Insert(1, "one")
	src.Insert(2, "two")
	dst := New[int, string]()
	dst.Insert(9, "nine")
	dst.Assign(src)
	if dst.Len() != 2 || dst.Count(9) != 0 {
		t.Fatalf("assign did not replace contents")
	}
	src.Delete(1)
	if dst.Count(1) != 1 {
		t.Fatalf("assigned map shares structure with source")
	}
	dst.Assign(dst) // self-assignment must be harmless
	if dst.Len() != 2 {
		t.Fatalf("self-assignment disturbed the map")
	}
}

func TestClear(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treemap")
	defer teardown()
	//
	m := New[int, int]()
	for k := range 100 {
		m.Insert(k, k)
	}
	m.Clear()
	if !m.IsEmpty() || !m.Begin().Equal(m.End()) {
		t.Fatalf("map not empty after Clear")
	}
	m.Insert(1, 1)
	if m.Len() != 1 {
		t.Fatalf("map unusable after Clear")
	}
}

func TestEachAndAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treemap")
	defer teardown()
	//
	m := New[int, int]()
	for _, k := range []int{3, 1, 2} {
		m.Insert(k, k*10)
	}
	var each []int
	err := m.Each(func(k, v int) error {
		each = append(each, k)
		return nil
	})
	if err != nil {
		t.Fatalf("Each failed: %v", err)
	}
	var all []int
	for k, v := range m.All() {
		if v != k*10 {
			t.Fatalf("All yields wrong value %d for key %d", v, k)
		}
		all = append(all, k)
	}
	for i, want := range []int{1, 2, 3} {
		if each[i] != want || all[i] != want {
			t.Fatalf("each=%v all=%v", each, all)
		}
	}
	sentinel := errors.New("stop")
	count := 0
	err = m.Each(func(k, v int) error {
		count++
		if k == 2 {
			return sentinel
		}
		return nil
	})
	if !errors.Is(err, sentinel) || count != 2 {
		t.Fatalf("Each did not stop at callback error (count=%d, err=%v)", count, err)
	}
}

func TestNewFuncCustomOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treemap")
	defer teardown()
	//
	// case-insensitive keys: equivalence is derived from the predicate
	m := NewFunc[string, int](func(a, b string) bool {
		return strings.ToLower(a) < strings.ToLower(b)
	})
	m.Insert("Hello", 1)
	_, added := m.Insert("hello", 2)
	if added {
		t.Fatalf("equivalent key inserted twice")
	}
	if v, err := m.At("HELLO"); err != nil || v != 1 {
		t.Fatalf("equivalent lookup failed: %d, %v", v, err)
	}
}

func TestMap2Dot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treemap")
	defer teardown()
	//
	m := New[int, string]()
	for _, k := range []int{2, 1, 3} {
		m.Insert(k, "")
	}
	var sb strings.Builder
	Map2Dot(m, &sb)
	out := sb.String()
	if !strings.HasPrefix(out, "strict digraph {") || !strings.Contains(out, "->") {
		t.Fatalf("unexpected DOT output:\n%s", out)
	}
}
