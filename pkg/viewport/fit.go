// Package viewport decides which contiguous run of the roster is
// visible. Two layouts share one rule: a page never exceeds its frame
// budget, and the budget must cover the edge indicators that mark
// truncation.
package viewport

// Slice is the visible 1-based inclusive range plus truncation flags
// for either edge. Start 0 (with End 0) means nothing is visible.
type Slice struct {
	Start      int
	End        int
	MoreBefore bool
	MoreAfter  bool
}

// Empty reports whether the slice selects no items.
func (s Slice) Empty() bool { return s.Start == 0 || s.End < s.Start }

// Len is the number of selected items.
func (s Slice) Len() int {
	if s.Empty() {
		return 0
	}
	return s.End - s.Start + 1
}

// Rows describes the vertical layout: how many rows one page holds and
// how many pages the roster needs.
type Rows struct {
	PerPage    int
	TotalPages int
	Paginated  bool
}

// FitRows sizes the vertical list. configuredMax <= 0 means no
// configured cap, leaving availableHeight as the only bound; the result
// is always at least one row per page.
func FitRows(total, configuredMax, availableHeight int) Rows {
	perPage := availableHeight
	if configuredMax > 0 && configuredMax < perPage {
		perPage = configuredMax
	}
	if perPage < 1 {
		perPage = 1
	}
	r := Rows{PerPage: perPage}
	if total <= 0 {
		return r
	}
	if total <= perPage {
		r.TotalPages = 1
		return r
	}
	r.Paginated = true
	r.TotalPages = (total + perPage - 1) / perPage
	return r
}

// Page returns the slice visible on the given page, clamped into the
// valid page range. An empty roster yields an empty slice.
func (r Rows) Page(page, total int) Slice {
	if total <= 0 || r.PerPage < 1 {
		return Slice{}
	}
	if page < 1 {
		page = 1
	}
	if r.TotalPages > 0 && page > r.TotalPages {
		page = r.TotalPages
	}
	start := (page-1)*r.PerPage + 1
	end := page * r.PerPage
	if end > total {
		end = total
	}
	return Slice{
		Start:      start,
		End:        end,
		MoreBefore: start > 1,
		MoreAfter:  end < total,
	}
}

// Constraints is the width budget for the horizontal strip. Separator
// is charged between adjacent items; LeftIndicator and RightIndicator
// are reserved only while the corresponding edge actually truncates.
type Constraints struct {
	Frame          int
	Separator      int
	LeftIndicator  int
	RightIndicator int
}

// ForwardFit greedily fills a page from start rightwards. An item wider
// than the whole frame still occupies its own page; it is squeezed by
// the renderer, never dropped.
func ForwardFit(widths []int, c Constraints, start int) Slice {
	n := len(widths)
	if n == 0 {
		return Slice{}
	}
	if start < 1 {
		start = 1
	}
	if start > n {
		start = n
	}

	running := 0
	if start > 1 {
		running = c.LeftIndicator
	}
	end := start - 1
	for i := start; i <= n; i++ {
		need := widths[i-1]
		if i > start {
			need += c.Separator
		}
		reserve := 0
		if i < n {
			reserve = c.RightIndicator
		}
		if running+need+reserve > c.Frame {
			break
		}
		running += need
		end = i
	}
	if end < start {
		end = start
	}
	return Slice{
		Start:      start,
		End:        end,
		MoreBefore: start > 1,
		MoreAfter:  end < n,
	}
}

// BackwardFit computes where the page preceding currentStart begins.
// The walk mirrors ForwardFit in reverse: separators are charged for
// every index but the first one taken (the target), the right indicator
// is reserved unconditionally because the page navigated away from is
// always after this one, and the left indicator is reserved while
// indices remain before the candidate. The returned start is chosen so
// a forward fit from it selects exactly the walked set.
func BackwardFit(widths []int, c Constraints, currentStart int) int {
	n := len(widths)
	if n == 0 || currentStart <= 1 {
		return 1
	}
	target := currentStart - 1
	if target > n {
		target = n
	}

	running := c.RightIndicator
	start := target
	for i := target; i >= 1; i-- {
		need := widths[i-1]
		if i < target {
			need += c.Separator
		}
		reserve := 0
		if i > 1 {
			reserve = c.LeftIndicator
		}
		if running+need+reserve > c.Frame {
			break
		}
		running += need
		start = i
	}

	// The round trip must hold: a forward fit from the answer has to end
	// on target, or paging back and forward again would skip items. The
	// greedy walk can land one page too early when a wide item blocked
	// the reverse direction but a narrow one extends the forward fit, so
	// shrink the page until forward agrees.
	for start < target && ForwardFit(widths, c, start).End > target {
		start++
	}
	return start
}
