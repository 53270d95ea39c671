package notifications

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/pagination"
)

// Dispatcher persists notification records for moderation decisions.
// The moderation engine calls Notify exactly once per successful decision;
// the unique (recipient, kind, subject) constraint makes a replay a no-op,
// so persistence is at-most-once end to end.
type Dispatcher struct {
	repo    Repository
	mailer  Mailer
	baseURL string
	logger  *slog.Logger
}

// NewDispatcher creates a notification dispatcher.
// mailer may be nil, in which case no mail representation is produced.
func NewDispatcher(repo Repository, mailer Mailer, baseURL string, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		repo:    repo,
		mailer:  mailer,
		baseURL: baseURL,
		logger:  logger,
	}
}

// Notify creates the durable notification record for a moderation decision.
// Transient persistence failures are retried briefly; a duplicate dispatch
// returns ErrAlreadyDispatched without writing anything. Mail delivery is
// best-effort and never affects the persisted record.
func (d *Dispatcher) Notify(ctx context.Context, recipientID int64, kind Kind, payload Payload) (*Notification, error) {
	if !kind.Valid() {
		return nil, ErrInvalidKind
	}

	if payload.Message == "" {
		payload.Message = buildMessage(kind, payload.Title, payload.Note)
	}
	if !kind.rejected() {
		// Notes only accompany rejections
		payload.Note = nil
	}

	n := &Notification{
		ID:          uuid.New(),
		RecipientID: recipientID,
		Kind:        kind,
		Payload:     payload,
		CreatedAt:   time.Now().UTC(),
	}

	backoff := retry.WithMaxRetries(2, retry.NewConstant(100*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := d.repo.Create(ctx, n)
		if err == nil || errors.Is(err, ErrAlreadyDispatched) {
			return err
		}
		return retry.RetryableError(err)
	})
	if errors.Is(err, ErrAlreadyDispatched) {
		d.logger.Warn("duplicate notification dispatch suppressed",
			"recipient", recipientID,
			"kind", kind,
			"subject", payload.SubjectID)
		return nil, ErrAlreadyDispatched
	}
	if err != nil {
		return nil, fmt.Errorf("failed to persist notification: %w", err)
	}

	d.logger.Info("notification dispatched",
		"id", n.ID,
		"recipient", recipientID,
		"kind", kind,
		"subject", payload.SubjectID)

	if d.mailer != nil {
		mail := buildMail(d.baseURL, n)
		if err := d.mailer.Send(ctx, recipientID, mail); err != nil {
			d.logger.Error("failed to send notification mail",
				"error", err,
				"recipient", recipientID,
				"kind", kind)
		}
	}

	return n, nil
}

// ListForRecipient returns a recipient's notifications, newest first
func (d *Dispatcher) ListForRecipient(ctx context.Context, recipientID int64, page, perPage int) ([]*Notification, pagination.Pagination, error) {
	page, perPage = pagination.Normalize(page, perPage)
	return d.repo.ListForRecipient(ctx, recipientID, page, perPage)
}
