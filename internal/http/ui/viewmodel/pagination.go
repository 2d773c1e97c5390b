package viewmodel

// Pager is the page position of one panel for one request. Current and
// Total are 1-based and Current never leaves [1, Total].
type Pager struct {
	Current int
	Total   int
}

// NewPager clamps current into [1, total]. A total below 1 is treated as 1.
func NewPager(current, total int) Pager {
	total = max(total, 1)
	return Pager{Current: min(max(current, 1), total), Total: total}
}

// Advance moves by direction (-1 or +1). It returns the moved pager and
// true, or the unchanged pager and false when the move would leave the range.
func (p Pager) Advance(direction int) (Pager, bool) {
	next := p.Current + direction
	if direction == 0 || next < 1 || next > p.Total {
		return p, false
	}
	p.Current = next
	return p, true
}

// HasPrev reports whether a previous page exists.
func (p Pager) HasPrev() bool {
	_, ok := p.Advance(-1)
	return ok
}

// HasNext reports whether a following page exists.
func (p Pager) HasNext() bool {
	_, ok := p.Advance(1)
	return ok
}

// Pagination contains pagination metadata for list views.
type Pagination struct {
	Pager
	PageSize   int
	StartIndex int
	EndIndex   int
	PrevURL    string
	NextURL    string
}
