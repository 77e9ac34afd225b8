package ordset

import (
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func fromValues(t *testing.T, values ...int) *Set[int] {
	t.Helper()
	s := New[int]()
	for _, v := range values {
		it, _, err := s.Insert(v)
		if err != nil {
			t.Fatalf("insert %d failed: %v", v, err)
		}
		it.Close()
	}
	return s
}

func TestZeroValueSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordset")
	defer teardown()

	var s Set[int]
	if !s.IsEmpty() || s.Len() != 0 {
		t.Fatalf("expected zero value set to be empty, has len=%d", s.Len())
	}
	if !s.Begin().Equal(s.End()) {
		t.Fatalf("expected Begin() == End() for empty set")
	}
	if err := s.Check(); err != nil {
		t.Fatalf("expected empty set to be valid, got %v", err)
	}
	if _, ok, _ := s.Insert(1); !ok {
		t.Fatalf("expected insert into zero value set to succeed")
	}
	if s.Len() != 1 || !s.Contains(1) {
		t.Fatalf("unexpected state after insert: len=%d", s.Len())
	}
}

func TestNewWithConfigRejectsNegativeLimit(t *testing.T) {
	_, err := NewWithConfig[int](Config{Allocator: &CountingAllocator{Limit: -1}})
	if err == nil {
		t.Fatalf("expected invalid config error, got nil")
	}
}

func TestInsertYieldsIncreasingSequence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordset")
	defer teardown()
	//
	s := fromValues(t, 8, 3, 10, 1, 6, 14, 4, 7, 13, 3, 8, 1)
	want := []int{1, 3, 4, 6, 7, 8, 10, 13, 14}
	if got := s.Values(); !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if s.Len() != len(want) {
		t.Fatalf("expected len=%d, got %d", len(want), s.Len())
	}
	var walked []int
	it := s.Begin()
	defer it.Close()
	for end := s.End(); !it.Equal(end); it.Next() {
		walked = append(walked, it.Value())
	}
	if !slices.Equal(walked, want) {
		t.Fatalf("iterator walk: expected %v, got %v", want, walked)
	}
	back := slices.Collect(s.Backward())
	slices.Reverse(back)
	if !slices.Equal(back, want) {
		t.Fatalf("backward walk: expected reverse of %v, got %v", want, back)
	}
	if err := s.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestInsertDuplicateReturnsExisting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordset")
	defer teardown()

	s := fromValues(t, 5, 2, 9)
	first := s.Find(2)
	defer first.Close()
	it, inserted, err := s.Insert(2)
	if err != nil {
		t.Fatal(err)
	}
	defer it.Close()
	if inserted {
		t.Fatalf("expected duplicate insert to report false")
	}
	if !it.Equal(first) || it.Value() != 2 {
		t.Fatalf("expected duplicate insert to return the existing element")
	}
	if s.Len() != 3 {
		t.Fatalf("expected len=3 after duplicate insert, got %d", s.Len())
	}
}

func TestFindAndContains(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordset")
	defer teardown()

	s := fromValues(t, 4, 2, 6)
	if it := s.Find(6); it.AtEnd() || it.Value() != 6 {
		t.Fatalf("expected to find 6")
	}
	if it := s.Find(5); !it.AtEnd() {
		t.Fatalf("expected Find(5) to return End()")
	}
	if s.Contains(5) || !s.Contains(4) {
		t.Fatalf("Contains reports wrong membership")
	}
	empty := New[int]()
	if !empty.Find(1).AtEnd() {
		t.Fatalf("expected Find on empty set to return End()")
	}
}

func TestBoundsOnOddNumbers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordset")
	defer teardown()

	s := fromValues(t, 1, 3, 5, 7)
	lower := map[int]int{0: 1, 2: 3, 3: 3, 4: 5, 7: 7}
	for v, want := range lower {
		if got := s.LowerBound(v); got.Value() != want {
			t.Errorf("LowerBound(%d): expected %d, got %d", v, want, got.Value())
		}
	}
	if !s.LowerBound(8).AtEnd() {
		t.Errorf("LowerBound(8): expected End()")
	}
	upper := map[int]int{0: 1, 2: 3, 3: 5, 6: 7}
	for v, want := range upper {
		if got := s.UpperBound(v); got.Value() != want {
			t.Errorf("UpperBound(%d): expected %d, got %d", v, want, got.Value())
		}
	}
	if !s.UpperBound(7).AtEnd() {
		t.Errorf("UpperBound(7): expected End()")
	}
	empty := New[int]()
	if !empty.LowerBound(1).AtEnd() || !empty.UpperBound(1).AtEnd() {
		t.Errorf("expected bounds on empty set to be End()")
	}
}

func TestEraseValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordset")
	defer teardown()

	s := fromValues(t, 50, 30, 70, 20, 40, 60, 80)
	if n := s.EraseValue(45); n != 0 {
		t.Fatalf("expected to erase nothing, erased %d", n)
	}
	if n := s.EraseValue(50); n != 1 {
		t.Fatalf("expected to erase root, erased %d", n)
	}
	want := []int{20, 30, 40, 60, 70, 80}
	if got := s.Values(); !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for _, v := range want {
		if s.EraseValue(v) != 1 {
			t.Fatalf("expected to erase %d", v)
		}
		if err := s.Check(); err != nil {
			t.Fatalf("after erasing %d: %v", v, err)
		}
	}
	if !s.IsEmpty() {
		t.Fatalf("expected set to be empty, has %d elements", s.Len())
	}
	if _, ok, _ := s.Insert(1); !ok || s.Len() != 1 {
		t.Fatalf("expected set to be usable after erasing everything")
	}
}

func TestEraseReturnsSuccessor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordset")
	defer teardown()

	s := fromValues(t, 2, 1, 3)
	it := s.Find(3)
	next := s.Erase(it)
	if !next.AtEnd() {
		t.Fatalf("expected successor of maximum to be End()")
	}
	it = s.Begin()
	next = s.Erase(it)
	if next.Value() != 2 {
		t.Fatalf("expected successor of 1 to be 2, got %d", next.Value())
	}
	empty := New[int]()
	end := empty.End()
	if !empty.Erase(end).AtEnd() {
		t.Fatalf("expected Erase on empty set to return End()")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordset")
	defer teardown()

	s := fromValues(t, 5, 2, 8, 1, 9, 7)
	c, err := s.Clone()
	if err != nil {
		t.Fatal(err)
	}
	c.EraseValue(5)
	c.EraseValue(1)
	c.Insert(6)
	c.Insert(10)
	if got, want := s.Values(), []int{1, 2, 5, 7, 8, 9}; !slices.Equal(got, want) {
		t.Fatalf("original changed: expected %v, got %v", want, got)
	}
	if got, want := c.Values(), []int{2, 6, 7, 8, 9, 10}; !slices.Equal(got, want) {
		t.Fatalf("copy: expected %v, got %v", want, got)
	}
	if err := c.Check(); err != nil {
		t.Fatal(err)
	}
	if err := s.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestAssignReplacesContents(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordset")
	defer teardown()

	s := fromValues(t, 1, 2, 3)
	other := fromValues(t, 7, 8)
	old := s.Find(2)
	end := s.End()
	if err := s.Assign(other); err != nil {
		t.Fatal(err)
	}
	if got, want := s.Values(), []int{7, 8}; !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if old.Valid() {
		t.Fatalf("expected iterator on replaced element to be singular")
	}
	if !end.Equal(s.End()) {
		t.Fatalf("expected end iterator to survive assignment")
	}
	if err := s.Assign(s); err != nil {
		t.Fatalf("self assignment failed: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("expected self assignment to be a no-op, len=%d", s.Len())
	}
}

func TestSwapKeepsEndIteratorsWithTheirSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordset")
	defer teardown()

	a := fromValues(t, 1, 2, 3)
	b := fromValues(t, 10, 20)
	aEnd := a.End()
	two := a.Find(2)
	Swap(a, b)
	if !aEnd.Equal(a.End()) {
		t.Fatalf("expected end iterator of a to still be a.End() after swap")
	}
	if got, want := a.Values(), []int{10, 20}; !slices.Equal(got, want) {
		t.Fatalf("a: expected %v, got %v", want, got)
	}
	if got, want := b.Values(), []int{1, 2, 3}; !slices.Equal(got, want) {
		t.Fatalf("b: expected %v, got %v", want, got)
	}
	if two.Value() != 2 {
		t.Fatalf("expected iterator to follow its element")
	}
	two.Next()
	two.Next()
	if !two.Equal(b.End()) {
		t.Fatalf("expected element iterator to reach end of b")
	}
	if err := a.Check(); err != nil {
		t.Fatal(err)
	}
	if err := b.Check(); err != nil {
		t.Fatal(err)
	}
	empty := New[int]()
	a.Swap(empty)
	if !a.IsEmpty() || empty.Len() != 2 {
		t.Fatalf("swap with empty set: len(a)=%d len(empty)=%d", a.Len(), empty.Len())
	}
}

func TestClearAndClose(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordset")
	defer teardown()

	s := fromValues(t, 3, 1, 2)
	one := s.Find(1)
	end := s.End()
	s.Clear()
	if one.Valid() {
		t.Fatalf("expected iterator to be singular after Clear")
	}
	if !end.AtEnd() {
		t.Fatalf("expected end iterator to survive Clear")
	}
	s.Insert(4)
	s.Close()
	if end.Valid() {
		t.Fatalf("expected end iterator to be singular after Close")
	}
	if !s.IsEmpty() {
		t.Fatalf("expected set to be empty after Close")
	}
}

func TestStrings(t *testing.T) {
	s := New[string]()
	for _, w := range []string{"pear", "apple", "fig", "apple"} {
		s.Insert(w)
	}
	if got, want := s.Values(), []string{"apple", "fig", "pear"}; !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
