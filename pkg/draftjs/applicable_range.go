package draftjs

// ApplicableRange names an inclusive span of character indexes.
// It is used for both inline styles (Name is the style) and
// entity ranges (Name is the entity key).
type ApplicableRange struct {
	Name  string
	Start int
	End   int
}

// NewApplicableRange converts the wire offset/length pair.
// A zero length yields a range that covers no index.
func NewApplicableRange(name string, offset, length int) *ApplicableRange {
	return &ApplicableRange{Name: name, Start: offset, End: offset + length - 1}
}

func (r *ApplicableRange) Offset() int {
	return r.Start
}

func (r *ApplicableRange) Length() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start + 1
}

func (r *ApplicableRange) Covers(index int) bool {
	return index >= r.Start && index <= r.End
}
