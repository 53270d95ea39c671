package moderation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/notifications"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/pagination"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/validation"
)

// maxNoteLength bounds the moderation note attached to a rejection
const maxNoteLength = 1000

type moderationService struct {
	repo     Repository
	notifier Notifier
	logger   *slog.Logger
}

// NewService creates a new moderation service
func NewService(repo Repository, notifier Notifier, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &moderationService{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

// Decide validates and persists a moderation decision, then notifies the author.
// The decision is authoritative once persisted: notification failure is logged
// and never rolls it back.
func (s *moderationService) Decide(ctx context.Context, req DecideRequest) (*Item, error) {
	if !req.ContentType.Valid() {
		return nil, ErrInvalidContentType
	}
	if !req.Decision.Valid() {
		return nil, ErrInvalidDecision
	}

	note := strings.TrimSpace(req.Note)
	v := validation.New()
	if note != "" && req.Decision != DecisionReject {
		v.Add("admin_note", "a moderation note is only accepted when rejecting")
	}
	if len(note) > maxNoteLength {
		v.Add("admin_note", fmt.Sprintf("must be at most %d characters", maxNoteLength))
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	item, err := s.repo.GetByID(ctx, req.ContentType, req.ItemID)
	if err != nil {
		return nil, err
	}

	if item.Status.Resolved() {
		return nil, ErrAlreadyResolved
	}

	target := req.Decision.TargetStatus()
	if !item.Status.CanTransitionTo(target) {
		return nil, ErrAlreadyResolved
	}

	var notePtr *string
	if req.Decision == DecisionReject && note != "" {
		notePtr = &note
	}

	updated, err := s.repo.UpdateStatus(ctx, req.ContentType, req.ItemID, item.Status, target, notePtr)
	if err != nil {
		return nil, err
	}

	s.logger.Info("moderation decision applied",
		"content_type", req.ContentType,
		"item", req.ItemID,
		"decision", req.Decision,
		"author", updated.AuthorID)

	s.dispatchNotification(ctx, updated, req.Decision, notePtr)

	return updated, nil
}

// dispatchNotification fires the author notification for a committed decision.
// Best-effort: the moderation state is authoritative and is not re-derived
// from notification success.
func (s *moderationService) dispatchNotification(ctx context.Context, item *Item, decision Decision, note *string) {
	if s.notifier == nil {
		return
	}

	kind := notificationKind(item.ContentType, decision)
	payload := notifications.Payload{
		SubjectID: item.ID,
		Title:     item.Title,
		Note:      note,
	}

	if _, err := s.notifier.Notify(ctx, item.AuthorID, kind, payload); err != nil {
		if errors.Is(err, notifications.ErrAlreadyDispatched) {
			return
		}
		s.logger.Error("failed to dispatch moderation notification",
			"error", err,
			"content_type", item.ContentType,
			"item", item.ID,
			"kind", kind)
	}
}

// notificationKind derives the notification kind from (contentType, decision)
func notificationKind(ct ContentType, decision Decision) notifications.Kind {
	switch {
	case ct == ContentTypePost && decision == DecisionApprove:
		return notifications.KindPostApproved
	case ct == ContentTypePost && decision == DecisionReject:
		return notifications.KindPostRejected
	case ct == ContentTypeComment && decision == DecisionApprove:
		return notifications.KindCommentApproved
	default:
		return notifications.KindCommentRejected
	}
}

// GetByID retrieves a single item
func (s *moderationService) GetByID(ctx context.Context, ct ContentType, id int64) (*Item, error) {
	if !ct.Valid() {
		return nil, ErrInvalidContentType
	}
	return s.repo.GetByID(ctx, ct, id)
}

// ListByStatus retrieves one status bucket's page of items
func (s *moderationService) ListByStatus(ctx context.Context, ct ContentType, status Status, params ListParams) ([]*Item, pagination.Pagination, error) {
	if !ct.Valid() {
		return nil, pagination.Pagination{}, ErrInvalidContentType
	}
	if !status.Valid() {
		return nil, pagination.Pagination{}, ErrInvalidStatus
	}

	params.Page, params.PerPage = pagination.Normalize(params.Page, params.PerPage)
	params.Search = strings.TrimSpace(params.Search)

	return s.repo.ListByStatus(ctx, ct, status, params)
}

// Delete permanently removes an item
func (s *moderationService) Delete(ctx context.Context, ct ContentType, id int64) error {
	if !ct.Valid() {
		return ErrInvalidContentType
	}

	if err := s.repo.Delete(ctx, ct, id); err != nil {
		return err
	}

	s.logger.Info("content item deleted",
		"content_type", ct,
		"item", id)

	return nil
}
