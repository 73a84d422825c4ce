package domain

// SubmitCommand carries a new message to record.
type SubmitCommand struct {
	Sender    string
	Content   string
	MessageID string
}

// EditCommand carries a content replacement for an already recorded id.
type EditCommand struct {
	MessageID  string
	NewContent string
}
