package messages

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/pagination"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/validation"
)

// maxReplyLength bounds the admin reply body
const maxReplyLength = 5000

type messageService struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new message workflow service
func NewService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &messageService{
		repo:   repo,
		logger: logger,
	}
}

// SetStatus moves a message forward along the workflow.
// Same-status calls are idempotent: the current row is returned without an
// update, so updated_at is not bumped by the repeat call.
func (s *messageService) SetStatus(ctx context.Context, id int64, status Status) (*Message, error) {
	if !status.Valid() || status == StatusUnread {
		// Messages start unread; only forward targets are settable
		return nil, ErrInvalidStatus
	}

	msg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if msg.Status == status {
		return msg, nil
	}
	if status.Behind(msg.Status) {
		return nil, ErrInvalidTransition
	}

	updated, err := s.repo.UpdateStatus(ctx, id, msg.Status, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info("message status updated",
		"message", id,
		"from", msg.Status,
		"to", status)

	return updated, nil
}

// Reply persists an admin reply and flips the message to responded
func (s *messageService) Reply(ctx context.Context, id int64, body string) (*Message, error) {
	body = strings.TrimSpace(body)

	v := validation.New()
	if body == "" {
		v.Add("content", "reply content is required")
	}
	if len(body) > maxReplyLength {
		v.Add("content", fmt.Sprintf("must be at most %d characters", maxReplyLength))
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	// Existence check up front so absence surfaces as NotFound, not a
	// zero-row update
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	updated, err := s.repo.Reply(ctx, id, body)
	if err != nil {
		return nil, err
	}

	s.logger.Info("message replied",
		"message", id,
		"sender", updated.SenderID)

	return updated, nil
}

// GetByID retrieves a single message
func (s *messageService) GetByID(ctx context.Context, id int64) (*Message, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves a page of messages, optionally filtered by status
func (s *messageService) List(ctx context.Context, params ListParams) ([]*Message, pagination.Pagination, error) {
	if params.Status != "" && !params.Status.Valid() {
		return nil, pagination.Pagination{}, ErrInvalidStatus
	}

	params.Page, params.PerPage = pagination.Normalize(params.Page, params.PerPage)
	params.Search = strings.TrimSpace(params.Search)

	return s.repo.List(ctx, params)
}

// UnreadCount returns the number of unread messages
func (s *messageService) UnreadCount(ctx context.Context) (int, error) {
	return s.repo.UnreadCount(ctx)
}
