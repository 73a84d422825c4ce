//go:generate go run go.uber.org/mock/mockgen -source=journal.go -destination=../mocks/mock_journal.go -package=mocks
// Package audit keeps the operator-facing side channel for edit
// operations. The log store only carries the latest content plus the
// edited marker; the journal is where the fact of each edit lands.
package audit

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"msglog/domain"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IJournal interface {
	RecordEdit(messageID string, outcome domain.EditOutcome) error
	Entries() ([]EditEntry, error)
}

// EditEntry is one journaled edit operation. It never carries message
// content, only the fact that the edit happened and how it resolved.
type EditEntry struct {
	EntryID   string    `json:"entry_id"`
	MessageID string    `json:"message_id"`
	Outcome   string    `json:"outcome"`
	At        time.Time `json:"at"`
}

type Journal struct {
	db  *badger.DB
	log *slog.Logger
	now func() time.Time
}

func NewJournal(db *badger.DB, log *slog.Logger) *Journal {
	return &Journal{db: db, log: log, now: time.Now}
}

// RecordEdit persists one edit event.
// The key is formatted as "edit:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding (lexicographical order).
//  2. Prevent collisions if two edits land at the same nanosecond.
func (j *Journal) RecordEdit(messageID string, outcome domain.EditOutcome) error {
	at := j.now().UTC()
	entry := EditEntry{
		EntryID:   uuid.New().String(),
		MessageID: messageID,
		Outcome:   outcome.String(),
		At:        at,
	}
	key := fmt.Sprintf("edit:%019d:%s", at.UnixNano(), entry.EntryID)
	bytes, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return j.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// Entries returns all journaled edits in chronological order.
func (j *Journal) Entries() ([]EditEntry, error) {
	var entries []EditEntry
	err := j.db.View(func(txn *badger.Txn) error {
		prefix := []byte("edit:")
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			err := item.Value(func(value []byte) error {
				var entry EditEntry
				if err := json.Unmarshal(value, &entry); err != nil {
					return fmt.Errorf("unmarshal failed: %w", err)
				}
				entries = append(entries, entry)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}
