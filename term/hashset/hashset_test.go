package hashset

import "testing"

func TestAddDedups(t *testing.T) {
	s := New[string]()
	s.Add("a")
	s.Add("a")
	s.Add("b")
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestOf(t *testing.T) {
	s := Of(1, 2, 2, 3)
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
}

func TestUnion(t *testing.T) {
	a := Of(1, 2)
	b := Of(2, 3)
	u := a.Union(b)
	if u.Len() != 3 {
		t.Errorf("Len() = %d, want 3", u.Len())
	}
}

func TestEqualIgnoresOrder(t *testing.T) {
	a := Of("x", "y", "z")
	b := Of("z", "x", "y")
	if !a.Equal(b) {
		t.Error("sets with same members in different order should be equal")
	}
}

func TestEqualDetectsDifference(t *testing.T) {
	a := Of("x", "y")
	b := Of("x", "z")
	if a.Equal(b) {
		t.Error("sets with different members should not be equal")
	}
}

func TestSliceValuedSet(t *testing.T) {
	// Rep produces []A values, which are not comparable in Go; hashset
	// must still be able to dedup them by content.
	s := New[[]int]()
	s.Add([]int{1, 2})
	s.Add([]int{1, 2})
	s.Add([]int{2, 1})
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}
