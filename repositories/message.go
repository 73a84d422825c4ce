//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"msglog/domain"
	"msglog/errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/samber/lo"
)

type IMessageRepository interface {
	LoadAll() ([]domain.Message, error)
	Append(sender, content, id string) (domain.Message, error)
	EditByID(id, newContent string) (domain.EditResult, error)
}

// MessageRepository is the single source of truth for the durable log.
// The whole collection lives in one pretty-printed JSON file; every
// mutation is a full read-modify-write under the mutex.
type MessageRepository struct {
	path        string
	log         *slog.Logger
	strictEdits bool

	mu      sync.Mutex
	corrupt bool
	now     func() time.Time
}

func NewMessageRepository(path string, log *slog.Logger, strictEdits bool) *MessageRepository {
	return &MessageRepository{
		path:        path,
		log:         log,
		strictEdits: strictEdits,
		now:         time.Now,
	}
}

// Init creates the containing directory and seeds an absent or
// zero-length file with an empty collection.
func (r *MessageRepository) Init() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}
	info, err := os.Stat(r.path)
	if err == nil && info.Size() > 0 {
		return nil
	}
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("checking log file: %w", err)
	}
	return r.persistLocked([]domain.Message{})
}

// LoadAll returns the full log in insertion order. An absent or empty
// file is a normal cold start and yields an empty sequence. A file
// that exists but cannot be parsed is recovered as empty with a
// warning; the broken bytes are quarantined before the next overwrite.
func (r *MessageRepository) LoadAll() ([]domain.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadLocked()
}

func (r *MessageRepository) loadLocked() ([]domain.Message, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		r.corrupt = false
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading log file: %w", err)
	}
	if len(data) == 0 {
		r.corrupt = false
		return nil, nil
	}

	var messages []domain.Message
	if err := json.Unmarshal(data, &messages); err != nil {
		r.corrupt = true
		r.log.Warn(errors.ErrCorruptStore.Error()+", recovering as empty", "error", err.Error())
		return nil, nil
	}
	r.corrupt = false
	return messages, nil
}

// Append records a new message stamped with the current local time.
// Existing records are never touched.
func (r *MessageRepository) Append(sender, content, id string) (domain.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	messages, err := r.loadLocked()
	if err != nil {
		return domain.Message{}, err
	}

	message := domain.Message{
		ID:        id,
		Sender:    sender,
		Content:   content,
		Timestamp: domain.Stamp(r.now()),
	}
	if err := r.persistLocked(append(messages, message)); err != nil {
		return domain.Message{}, err
	}
	return message, nil
}

// EditByID replaces the content of the first record matching id,
// marking it with the edited prefix and refreshing its timestamp.
// An unknown id falls back to appending a labeled record, unless the
// repository runs in strict mode.
func (r *MessageRepository) EditByID(id, newContent string) (domain.EditResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	messages, err := r.loadLocked()
	if err != nil {
		return domain.EditResult{}, err
	}

	_, index, found := lo.FindIndexOf(messages, func(m domain.Message) bool {
		return m.ID == id
	})
	if found {
		messages[index].Content = domain.EditedPrefix + newContent
		messages[index].Timestamp = domain.Stamp(r.now())
		if err := r.persistLocked(messages); err != nil {
			return domain.EditResult{}, err
		}
		return domain.EditResult{Outcome: domain.EditUpdated, Message: messages[index]}, nil
	}

	if r.strictEdits {
		return domain.EditResult{}, fmt.Errorf("%w: %s", errors.ErrMessageNotFound, id)
	}

	message := domain.Message{
		ID:        id,
		Sender:    domain.EditedSender,
		Content:   newContent,
		Timestamp: domain.Stamp(r.now()),
	}
	if err := r.persistLocked(append(messages, message)); err != nil {
		return domain.EditResult{}, err
	}
	return domain.EditResult{Outcome: domain.EditInserted, Message: message}, nil
}

// persistLocked overwrites the whole collection atomically: the new
// content is written to a temp file in the same directory and renamed
// over the old one, so a concurrent reader sees either the old or the
// new file, never a truncated mix.
func (r *MessageRepository) persistLocked(messages []domain.Message) error {
	if messages == nil {
		messages = []domain.Message{}
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	if r.corrupt {
		quarantine := fmt.Sprintf("%s.corrupt-%d", r.path, r.now().UnixNano())
		if err := os.Rename(r.path, quarantine); err != nil {
			return fmt.Errorf("quarantining corrupt log file: %w", err)
		}
		r.log.Warn("corrupt log file quarantined", "path", quarantine)
		r.corrupt = false
	}

	data, err := json.MarshalIndent(messages, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp log file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing temp log file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing temp log file: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing log file: %w", err)
	}
	return nil
}
