package api

// SaveMessageRequest is the wire shape of POST /save_message.
// The original client calls the message content "query".
type SaveMessageRequest struct {
	Sender    string `json:"sender"`
	Query     string `json:"query"`
	MessageID string `json:"message_id"`
}

// EditMessageRequest is the wire shape of POST /edit_message.
type EditMessageRequest struct {
	MessageID  string `json:"message_id"`
	NewContent string `json:"new_content"`
}

type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
