package gridview

// Recycler pools views that scrolled out of the grid so they can be handed
// back for positions of the same view type. The most recently recycled view
// is reused first.
type Recycler[T any] struct {
	pools map[int][]T
}

// NewRecycler returns an empty recycler.
func NewRecycler[T any]() *Recycler[T] {
	return &Recycler[T]{pools: make(map[int][]T)}
}

// Reuse pops a view of the given type. The second return value is false when
// the pool for that type is empty.
func (r *Recycler[T]) Reuse(viewType int) (T, bool) {
	var zero T
	pool := r.pools[viewType]
	if len(pool) == 0 {
		return zero, false
	}
	view := pool[len(pool)-1]
	pool[len(pool)-1] = zero
	r.pools[viewType] = pool[:len(pool)-1]
	return view, true
}

// Recycle pushes a view onto the pool of its type.
func (r *Recycler[T]) Recycle(viewType int, view T) {
	if r.pools == nil {
		r.pools = make(map[int][]T)
	}
	r.pools[viewType] = append(r.pools[viewType], view)
}

// Len returns the number of pooled views of the given type.
func (r *Recycler[T]) Len(viewType int) int {
	return len(r.pools[viewType])
}

// Clear drops every pooled view.
func (r *Recycler[T]) Clear() {
	clear(r.pools)
}
