package services

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	"msglog/domain"
	"msglog/errors"
	"msglog/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLogService_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIMessageRepository(ctrl)
	svc := NewLogService(mockRepo, nil, discardLogger(), false)

	t.Run("should append when sender and content are present", func(t *testing.T) {
		req := require.New(t)
		stored := domain.Message{ID: "m1", Sender: "alice", Content: "hello", Timestamp: "2025-03-14 09:26:53"}

		mockRepo.EXPECT().
			Append("alice", "hello", "m1").
			Return(stored, nil).
			Times(1)

		message, err := svc.Submit(domain.SubmitCommand{Sender: "alice", Content: "hello", MessageID: "m1"})

		req.NoError(err)
		req.Equal(stored, message)
	})

	t.Run("should reject an empty sender without touching the store", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Submit(domain.SubmitCommand{Sender: "", Content: "hello"})

		req.ErrorIs(err, errors.ErrMissingField)
	})

	t.Run("should reject empty content without touching the store", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Submit(domain.SubmitCommand{Sender: "alice", Content: ""})

		req.ErrorIs(err, errors.ErrMissingField)
	})

	t.Run("should propagate store failures", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().
			Append("alice", "hello", "").
			Return(domain.Message{}, fmt.Errorf("disk on fire")).
			Times(1)

		_, err := svc.Submit(domain.SubmitCommand{Sender: "alice", Content: "hello"})

		req.Error(err)
		req.NotErrorIs(err, errors.ErrMissingField)
	})
}

func TestLogService_Submit_Identified_Variant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIMessageRepository(ctrl)
	svc := NewLogService(mockRepo, nil, discardLogger(), true)

	t.Run("should reject a missing message id", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Submit(domain.SubmitCommand{Sender: "alice", Content: "hello"})

		req.ErrorIs(err, errors.ErrMissingField)
	})

	t.Run("should append when the message id is present", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().
			Append("alice", "hello", "m1").
			Return(domain.Message{ID: "m1"}, nil).
			Times(1)

		_, err := svc.Submit(domain.SubmitCommand{Sender: "alice", Content: "hello", MessageID: "m1"})

		req.NoError(err)
	})
}

func TestLogService_SubmitEdit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIMessageRepository(ctrl)
	mockJournal := mocks.NewMockIJournal(ctrl)
	svc := NewLogService(mockRepo, mockJournal, discardLogger(), false)

	t.Run("should journal an in-place update", func(t *testing.T) {
		req := require.New(t)
		updated := domain.EditResult{
			Outcome: domain.EditUpdated,
			Message: domain.Message{ID: "m1", Sender: "alice", Content: "(EDITED) hi"},
		}

		mockRepo.EXPECT().EditByID("m1", "hi").Return(updated, nil).Times(1)
		mockJournal.EXPECT().RecordEdit("m1", domain.EditUpdated).Return(nil).Times(1)

		result, err := svc.SubmitEdit(domain.EditCommand{MessageID: "m1", NewContent: "hi"})

		req.NoError(err)
		req.Equal(updated, result)
	})

	t.Run("should journal a fallback insert as a success", func(t *testing.T) {
		req := require.New(t)
		inserted := domain.EditResult{
			Outcome: domain.EditInserted,
			Message: domain.Message{ID: "m99", Sender: domain.EditedSender, Content: "hey"},
		}

		mockRepo.EXPECT().EditByID("m99", "hey").Return(inserted, nil).Times(1)
		mockJournal.EXPECT().RecordEdit("m99", domain.EditInserted).Return(nil).Times(1)

		result, err := svc.SubmitEdit(domain.EditCommand{MessageID: "m99", NewContent: "hey"})

		req.NoError(err)
		req.Equal(domain.EditInserted, result.Outcome)
	})

	t.Run("should reject missing fields without touching store or journal", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().EditByID(gomock.Any(), gomock.Any()).Times(0)
		mockJournal.EXPECT().RecordEdit(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.SubmitEdit(domain.EditCommand{MessageID: "m1", NewContent: ""})
		req.ErrorIs(err, errors.ErrMissingField)

		_, err = svc.SubmitEdit(domain.EditCommand{MessageID: "", NewContent: "hi"})
		req.ErrorIs(err, errors.ErrMissingField)
	})

	t.Run("should succeed even when journaling fails", func(t *testing.T) {
		req := require.New(t)
		updated := domain.EditResult{Outcome: domain.EditUpdated, Message: domain.Message{ID: "m1"}}

		mockRepo.EXPECT().EditByID("m1", "hi").Return(updated, nil).Times(1)
		mockJournal.EXPECT().RecordEdit("m1", domain.EditUpdated).Return(fmt.Errorf("journal down")).Times(1)

		_, err := svc.SubmitEdit(domain.EditCommand{MessageID: "m1", NewContent: "hi"})

		req.NoError(err)
	})

	t.Run("should propagate a strict-mode miss", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().
			EditByID("m99", "hey").
			Return(domain.EditResult{}, fmt.Errorf("%w: m99", errors.ErrMessageNotFound)).
			Times(1)
		mockJournal.EXPECT().RecordEdit(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.SubmitEdit(domain.EditCommand{MessageID: "m99", NewContent: "hey"})

		req.ErrorIs(err, errors.ErrMessageNotFound)
	})
}

func TestLogService_ListMessages_And_Health(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIMessageRepository(ctrl)
	svc := NewLogService(mockRepo, nil, discardLogger(), false)

	t.Run("should return the full log in insertion order", func(t *testing.T) {
		req := require.New(t)
		stored := []domain.Message{
			{Sender: "alice", Content: "hello"},
			{Sender: "bob", Content: "hi"},
		}

		mockRepo.EXPECT().LoadAll().Return(stored, nil).Times(1)

		messages, err := svc.ListMessages()

		req.NoError(err)
		req.Equal(stored, messages)
	})

	t.Run("should report health without any store access", func(t *testing.T) {
		req := require.New(t)
		req.Equal("OK", svc.HealthCheck())
	})
}
