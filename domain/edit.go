package domain

// EditOutcome distinguishes an in-place update from the fallback
// insert performed when the target id was never recorded.
type EditOutcome int

const (
	EditUpdated EditOutcome = iota
	EditInserted
)

func (o EditOutcome) String() string {
	switch o {
	case EditUpdated:
		return "updated"
	case EditInserted:
		return "inserted"
	default:
		return "unknown"
	}
}

// EditResult is the tagged result of an edit attempt.
type EditResult struct {
	Outcome EditOutcome
	Message Message
}
