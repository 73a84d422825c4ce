//go:generate go run go.uber.org/mock/mockgen -source=log_service.go -destination=../mocks/mock_log_service.go -package=mocks
package services

import (
	"fmt"
	"log/slog"
	"msglog/audit"
	"msglog/domain"
	"msglog/errors"
	"msglog/repositories"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type ILogService interface {
	HealthCheck() string
	Submit(cmd domain.SubmitCommand) (domain.Message, error)
	SubmitEdit(cmd domain.EditCommand) (domain.EditResult, error)
	ListMessages() ([]domain.Message, error)
}

// LogService is the request/response boundary over the record store.
// Field validation happens here, before the store is touched.
type LogService struct {
	messageRepository repositories.IMessageRepository
	journal           audit.IJournal
	log               *slog.Logger
	requireMessageID  bool
}

func NewLogService(repo repositories.IMessageRepository, journal audit.IJournal, log *slog.Logger, requireMessageID bool) ILogService {
	return &LogService{
		messageRepository: repo,
		journal:           journal,
		log:               log,
		requireMessageID:  requireMessageID,
	}
}

type submitRequest struct {
	Sender  string `validate:"required"`
	Content string `validate:"required"`
}

type editRequest struct {
	MessageID  string `validate:"required"`
	NewContent string `validate:"required"`
}

// HealthCheck reports liveness without touching the store.
func (s *LogService) HealthCheck() string {
	return "OK"
}

// Submit validates the command and appends a new record.
func (s *LogService) Submit(cmd domain.SubmitCommand) (domain.Message, error) {
	req := submitRequest{
		Sender:  cmd.Sender,
		Content: cmd.Content,
	}
	if err := validate.Struct(req); err != nil {
		return domain.Message{}, fmt.Errorf("%w: %v", errors.ErrMissingField, err)
	}
	if s.requireMessageID && cmd.MessageID == "" {
		return domain.Message{}, fmt.Errorf("%w: message_id", errors.ErrMissingField)
	}

	message, err := s.messageRepository.Append(cmd.Sender, cmd.Content, cmd.MessageID)
	if err != nil {
		return domain.Message{}, err
	}
	// Content is deliberately kept out of the logs.
	s.log.Info("message logged", "sender", cmd.Sender)
	return message, nil
}

// SubmitEdit validates the command and replaces the content of the
// first record matching the id. Both outcomes, in-place update and
// fallback insert, are successes; the distinction goes to the journal.
func (s *LogService) SubmitEdit(cmd domain.EditCommand) (domain.EditResult, error) {
	req := editRequest{
		MessageID:  cmd.MessageID,
		NewContent: cmd.NewContent,
	}
	if err := validate.Struct(req); err != nil {
		return domain.EditResult{}, fmt.Errorf("%w: %v", errors.ErrMissingField, err)
	}

	result, err := s.messageRepository.EditByID(cmd.MessageID, cmd.NewContent)
	if err != nil {
		return domain.EditResult{}, err
	}

	if s.journal != nil {
		if err := s.journal.RecordEdit(cmd.MessageID, result.Outcome); err != nil {
			// The edit itself already persisted; losing a journal entry
			// must not fail the request.
			s.log.Error("journaling edit failed", "error", err.Error())
		}
	}
	s.log.Info("message edited", "message_id", cmd.MessageID, "outcome", result.Outcome.String())
	return result, nil
}

// ListMessages returns the full log in insertion order.
func (s *LogService) ListMessages() ([]domain.Message, error) {
	return s.messageRepository.LoadAll()
}
