package gridview

// AxisSizer describes one axis of the grid. Index 0 is the header and is
// always rendered outside the scrolling body.
type AxisSizer interface {
	Count() int
	Size(index int) int
}

// AxisWindow is the visible range of body indices along one axis.
type AxisWindow struct {
	// StartIndex is the first visible body index, in [1, count-1].
	StartIndex int
	// StartOffset is how far StartIndex is already scrolled under the header.
	StartOffset int
	// BodyCount is the number of fully or partially visible body indices.
	BodyCount int
	// Scroll is the achievable scroll value for this window.
	Scroll int
}

// LayoutAxis moves the window seed, which was computed for seed.Scroll, to the
// requested scroll. A seed whose start lies outside the axis is discarded
// along with its Scroll, and the walk restarts from index 1 at scroll 0.
// Callers pass that same first window after an invalidation. The returned
// window always lies within the axis: when the request runs past the
// content, the window is pulled back so the last index ends at the
// viewport's trailing edge, and Scroll reports the corrected value.
func LayoutAxis(sizer AxisSizer, seed AxisWindow, visibleSize, newScroll int) AxisWindow {
	newScroll = max(0, newScroll)

	count := sizer.Count()
	if count <= 1 {
		return AxisWindow{StartIndex: 1}
	}

	w := seed
	if w.StartIndex < 1 || w.StartIndex >= count || w.StartOffset < 0 || w.StartOffset >= sizer.Size(w.StartIndex) {
		// The seed does not belong to this axis.
		w = AxisWindow{StartIndex: 1}
	}

	distance := newScroll - w.Scroll
	if distance > 0 {
		for distance > 0 && w.StartIndex < count {
			remaining := sizer.Size(w.StartIndex) - w.StartOffset
			if distance >= remaining {
				w.StartOffset = 0
				w.StartIndex++
				distance -= remaining
			} else {
				w.StartOffset += distance
				distance = 0
			}
		}
		// StartIndex may now equal count.
	} else if distance < 0 {
		absorbed := min(-distance, w.StartOffset)
		w.StartOffset -= absorbed
		distance += absorbed
		for distance < 0 && w.StartIndex > 1 {
			w.StartIndex--
			size := sizer.Size(w.StartIndex)
			if -distance >= size {
				distance += size
			} else {
				w.StartOffset = size + distance
				distance = 0
			}
		}
	}
	w.Scroll = newScroll - distance

	header := sizer.Size(0)
	space := visibleSize - header + w.StartOffset
	for i := w.StartIndex; i < count && space > 0; i++ {
		space -= sizer.Size(i)
	}

	// Trailing space left over: push the window back until it is filled or
	// the first body index is reached.
	for {
		if space > 0 {
			n := min(w.StartOffset, space)
			w.StartOffset -= n
			space -= n
			w.Scroll -= n
		}
		if space <= 0 || w.StartIndex <= 1 {
			break
		}
		w.StartIndex--
		size := sizer.Size(w.StartIndex)
		n := min(size, space)
		w.StartOffset = size - n
		space -= n
		w.Scroll -= n
	}

	// Ran past the last index with no room to pull back, which happens when
	// the viewport is no larger than the header. Rest on the last cell of the
	// last index.
	if w.StartIndex >= count {
		w.StartIndex = count - 1
		w.StartOffset = sizer.Size(count-1) - 1
		w.Scroll--
	}
	if w.StartIndex == 1 {
		w.Scroll = w.StartOffset
	}

	w.BodyCount = bodyCount(sizer, w.StartIndex, w.StartOffset, visibleSize-header)
	return w
}

// bodyCount counts the indices from start that are at least partly visible in
// the given extent when start is scrolled by offset.
func bodyCount(sizer AxisSizer, start, offset, extent int) int {
	count := sizer.Count()
	last := start
	space := extent + offset
	for i := start; i < count && space > 0; i++ {
		space -= sizer.Size(i)
		last = i
	}
	return last - start + 1
}

// AxisExtent returns the summed size of the body indices of an axis.
func AxisExtent(sizer AxisSizer) int {
	var extent int
	for i := 1; i < sizer.Count(); i++ {
		extent += sizer.Size(i)
	}
	return extent
}

// rowAxis and colAxis adapt a data source to AxisSizer. A nil source is an
// empty axis.
type rowAxis struct{ source DataSource }

func (a rowAxis) Count() int {
	if a.source == nil {
		return 0
	}
	return a.source.RowCount()
}

func (a rowAxis) Size(index int) int {
	return a.source.RowHeight(index)
}

type colAxis struct{ source DataSource }

func (a colAxis) Count() int {
	if a.source == nil {
		return 0
	}
	return a.source.ColCount()
}

func (a colAxis) Size(index int) int {
	return a.source.ColWidth(index)
}
