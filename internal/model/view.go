package model

// View is a read-only window over a shared record slice. Filtering
// produces a new View holding only row indexes, so narrowing a
// selection never copies record data.
type View struct {
	base []Record
	idx  []int
}

// NewView wraps records in a view covering every row.
func NewView(records []Record) View {
	idx := make([]int, len(records))
	for i := range records {
		idx[i] = i
	}
	return View{base: records, idx: idx}
}

// Len returns the number of rows visible through the view.
func (v View) Len() int { return len(v.idx) }

// At returns the i-th visible record.
func (v View) At(i int) Record { return v.base[v.idx[i]] }

// Where returns a narrowed view containing the rows for which keep
// returns true. The underlying records are shared, not copied.
func (v View) Where(keep func(Record) bool) View {
	idx := make([]int, 0, len(v.idx))
	for _, j := range v.idx {
		if keep(v.base[j]) {
			idx = append(idx, j)
		}
	}
	return View{base: v.base, idx: idx}
}

// Records materializes the visible rows into a fresh slice.
func (v View) Records() []Record {
	out := make([]Record, len(v.idx))
	for i, j := range v.idx {
		out[i] = v.base[j]
	}
	return out
}
