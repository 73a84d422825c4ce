// Package domain contains core concepts of the message log.
// Records are append-mostly: the only mutation is marking a
// previously recorded message as edited.
package domain

import (
	"time"
)

// TimestampLayout is the at-rest timestamp format, local clock.
const TimestampLayout = "2006-01-02 15:04:05"

const (
	// EditedPrefix marks edited content so provenance stays visible.
	EditedPrefix = "(EDITED) "
	// EditedSender labels the fallback record created when an edit
	// targets an id that was never appended.
	EditedSender = "Edited Message"
)

// Message is a single recorded entry of the log.
// ID is the caller-supplied external identifier; it may be empty.
type Message struct {
	ID        string `json:"message_id,omitempty"`
	Sender    string `json:"sender"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// Stamp formats a wall-clock instant in the at-rest layout.
func Stamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
