package entity

// PageState is the pagination controller state derived from RenderState.
type PageState int

const (
	// PageEmpty means nothing has been realized yet.
	PageEmpty PageState = iota
	// PagePartial means some but not all filtered records are realized.
	PagePartial
	// PageComplete means every filtered record is realized.
	PageComplete
)

// String returns the state name.
func (s PageState) String() string {
	switch s {
	case PagePartial:
		return "partial"
	case PageComplete:
		return "complete"
	default:
		return "empty"
	}
}

// Batch is a group of records realized in one pagination step.
type Batch struct {
	Start    int       // Index of the first record in the filtered view.
	Items    []Product // Realized records.
	Promoted bool      // Items form the promoted group.
}

// End returns the index after the last record of the batch.
func (b Batch) End() int {
	return b.Start + len(b.Items)
}

// RenderState is a snapshot of the session's working copy.
type RenderState struct {
	AllProducts   []Product
	Filtered      []Product
	RenderedCount int
	State         PageState
}

// NoResults reports the explicit empty-result terminal state.
func (r RenderState) NoResults() bool {
	return len(r.Filtered) == 0
}

// Rendered returns the realized prefix of the filtered view.
func (r RenderState) Rendered() []Product {
	return r.Filtered[:r.RenderedCount]
}
