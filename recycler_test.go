package gridview

import "testing"

func TestRecycler(t *testing.T) {
	r := NewRecycler[string]()
	if _, ok := r.Reuse(0); ok {
		t.Fatal("Reuse() on an empty pool succeeded")
	}

	r.Recycle(0, "a")
	r.Recycle(0, "b")
	r.Recycle(1, "x")

	if got := r.Len(0); got != 2 {
		t.Errorf("Len(0) = %d, want 2", got)
	}
	for _, want := range []string{"b", "a"} {
		got, ok := r.Reuse(0)
		if !ok || got != want {
			t.Errorf("Reuse(0) = %q, %t, want %q, true", got, ok, want)
		}
	}
	if _, ok := r.Reuse(0); ok {
		t.Error("Reuse(0) succeeded on a drained pool")
	}
	if got, ok := r.Reuse(1); !ok || got != "x" {
		t.Errorf("Reuse(1) = %q, %t, want %q, true", got, ok, "x")
	}

	r.Recycle(2, "y")
	r.Clear()
	if r.Len(2) != 0 {
		t.Errorf("Len(2) after Clear() = %d, want 0", r.Len(2))
	}
}

func TestRecyclerZeroValue(t *testing.T) {
	var r Recycler[int]
	r.Recycle(3, 7)
	if got, ok := r.Reuse(3); !ok || got != 7 {
		t.Errorf("Reuse(3) = %d, %t, want 7, true", got, ok)
	}
}
