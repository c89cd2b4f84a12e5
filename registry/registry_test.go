package registry

import "testing"

func TestAllocatorDistinctIDs(t *testing.T) {
	a := NewAllocator()
	id1 := a.Next()
	id2 := a.Next()
	if id1 == id2 {
		t.Error("two allocations returned the same id")
	}
}

func TestAllocatorMonotonic(t *testing.T) {
	a := NewAllocator()
	var last ID
	for i := 0; i < 10; i++ {
		id := a.Next()
		if id <= last {
			t.Fatalf("id %d did not increase past %d", id, last)
		}
		last = id
	}
}

func TestRecursionSlotsBindAndLookup(t *testing.T) {
	a := NewAllocator()
	slots := NewRecursionSlots()
	id := a.Next()
	if _, ok := slots.Lookup(id); ok {
		t.Error("lookup succeeded before bind")
	}
	if err := slots.Bind(id, "body"); err != nil {
		t.Fatalf("bind failed: %v", err)
	}
	v, ok := slots.Lookup(id)
	if !ok || v != "body" {
		t.Errorf("lookup returned (%v, %v), want (\"body\", true)", v, ok)
	}
}

func TestRecursionSlotsDoubleBind(t *testing.T) {
	a := NewAllocator()
	slots := NewRecursionSlots()
	id := a.Next()
	if err := slots.Bind(id, "first"); err != nil {
		t.Fatalf("first bind failed: %v", err)
	}
	if err := slots.Bind(id, "second"); err != ErrAlreadyBound {
		t.Errorf("second bind returned %v, want ErrAlreadyBound", err)
	}
}
