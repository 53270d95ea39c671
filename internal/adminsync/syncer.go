package adminsync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/messages"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/moderation"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/pagination"
)

// Syncer binds the session's bucket store to the moderation and message
// engines. It applies optimistic moves before the backing call resolves,
// merges canonical server rows on success and rolls the move back on
// failure. Engines never touch bucket state directly.
type Syncer struct {
	store      *BucketStore
	moderation moderation.Service
	messages   messages.Service
	inflight   *inflightGuard
	search     *Debouncer
	logger     *slog.Logger
}

// NewSyncer creates a syncer with the default search debounce window
func NewSyncer(store *BucketStore, modSvc moderation.Service, msgSvc messages.Service, logger *slog.Logger) *Syncer {
	return NewSyncerWithDebouncer(store, modSvc, msgSvc, NewDebouncer(DefaultSearchDebounce), logger)
}

// NewSyncerWithDebouncer creates a syncer with a custom debouncer, used by
// tests to drive a virtual clock.
func NewSyncerWithDebouncer(store *BucketStore, modSvc moderation.Service, msgSvc messages.Service, search *Debouncer, logger *slog.Logger) *Syncer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Syncer{
		store:      store,
		moderation: modSvc,
		messages:   msgSvc,
		inflight:   newInflightGuard(),
		search:     search,
		logger:     logger,
	}
}

// Store exposes the underlying bucket store for read-only projections
func (s *Syncer) Store() *BucketStore {
	return s.store
}

// ContentBucket names the cache bucket for a content status
func ContentBucket(ct moderation.ContentType, status moderation.Status) string {
	return fmt.Sprintf("%ss:%s", ct, status)
}

// MessageBucket names the cache bucket for a message status filter view
func MessageBucket(status messages.Status) string {
	if status == "" {
		return "messages:all"
	}
	return fmt.Sprintf("messages:%s", status)
}

func itemKey(ct moderation.ContentType, id int64) string {
	return fmt.Sprintf("%s:%d", ct, id)
}

func messageKey(id int64) string {
	return fmt.Sprintf("message:%d", id)
}

// LoadContent fetches one status bucket from the repository and rebuilds the cache
func (s *Syncer) LoadContent(ctx context.Context, ct moderation.ContentType, status moderation.Status, params moderation.ListParams) ([]*moderation.Item, pagination.Pagination, error) {
	items, meta, err := s.moderation.ListByStatus(ctx, ct, status, params)
	if err != nil {
		return nil, pagination.Pagination{}, err
	}

	entries := make([]Entry, len(items))
	for i, item := range items {
		entries[i] = Entry{Key: itemKey(ct, item.ID), Value: item}
	}
	s.store.Replace(ContentBucket(ct, status), entries, meta)

	return items, meta, nil
}

// LoadMessages fetches one message filter view and rebuilds the cache
func (s *Syncer) LoadMessages(ctx context.Context, params messages.ListParams) ([]*messages.Message, pagination.Pagination, error) {
	msgs, meta, err := s.messages.List(ctx, params)
	if err != nil {
		return nil, pagination.Pagination{}, err
	}

	entries := make([]Entry, len(msgs))
	for i, m := range msgs {
		entries[i] = Entry{Key: messageKey(m.ID), Value: m}
	}
	s.store.Replace(MessageBucket(params.Status), entries, meta)

	return msgs, meta, nil
}

// Decide issues a moderation decision with an optimistic bucket move.
// The item leaves the pending bucket immediately; on success the canonical
// row replaces the optimistic entry, on failure the move is rolled back.
// A conflict additionally marks the pending bucket stale for refetch.
func (s *Syncer) Decide(ctx context.Context, ct moderation.ContentType, id int64, decision moderation.Decision, note string) (*moderation.Item, error) {
	key := itemKey(ct, id)
	if err := s.inflight.Begin(key); err != nil {
		return nil, err
	}
	defer s.inflight.End(key)

	from := ContentBucket(ct, moderation.StatusPending)
	to := ContentBucket(ct, decision.TargetStatus())

	token, moveErr := s.store.OptimisticMove(key, from, to)
	if moveErr != nil {
		// Item not cached locally; the decision still proceeds
		s.logger.Debug("decide without optimistic move",
			"key", key,
			"reason", moveErr)
	}

	item, err := s.moderation.Decide(ctx, moderation.DecideRequest{
		ContentType: ct,
		ItemID:      id,
		Decision:    decision,
		Note:        note,
	})
	if err != nil {
		if token != nil {
			s.store.Rollback(token)
		}
		if errors.Is(err, moderation.ErrAlreadyResolved) || errors.Is(err, moderation.ErrItemNotFound) {
			// Stale cache, not a user-facing failure; the caller refetches
			s.store.MarkStale(from)
		}
		return nil, err
	}

	if token != nil {
		s.store.Confirm(token, item)
	}

	return item, nil
}

// SetMessageStatus updates a message's workflow status with an optimistic
// move between filter views.
func (s *Syncer) SetMessageStatus(ctx context.Context, id int64, status messages.Status) (*messages.Message, error) {
	return s.messageMutation(ctx, id, status, func(ctx context.Context) (*messages.Message, error) {
		return s.messages.SetStatus(ctx, id, status)
	})
}

// ReplyMessage replies to a message with an optimistic move to the
// responded view.
func (s *Syncer) ReplyMessage(ctx context.Context, id int64, body string) (*messages.Message, error) {
	return s.messageMutation(ctx, id, messages.StatusResponded, func(ctx context.Context) (*messages.Message, error) {
		return s.messages.Reply(ctx, id, body)
	})
}

func (s *Syncer) messageMutation(ctx context.Context, id int64, target messages.Status, op func(context.Context) (*messages.Message, error)) (*messages.Message, error) {
	key := messageKey(id)
	if err := s.inflight.Begin(key); err != nil {
		return nil, err
	}
	defer s.inflight.End(key)

	var token *UndoToken
	from, cached := s.store.FindBucket(key)
	to := MessageBucket(target)
	if cached && from != to {
		var moveErr error
		token, moveErr = s.store.OptimisticMove(key, from, to)
		if moveErr != nil {
			s.logger.Debug("message mutation without optimistic move",
				"key", key,
				"reason", moveErr)
		}
	}

	msg, err := op(ctx)
	if err != nil {
		if token != nil {
			s.store.Rollback(token)
		}
		if errors.Is(err, messages.ErrMessageNotFound) && cached {
			s.store.MarkStale(from)
		}
		return nil, err
	}

	if token != nil {
		s.store.Confirm(token, msg)
	}

	return msg, nil
}

// SearchContent schedules a debounced bucket refetch for a free-text search.
// Rapid successive calls collapse into one backing fetch.
func (s *Syncer) SearchContent(ctx context.Context, ct moderation.ContentType, status moderation.Status, params moderation.ListParams) {
	s.search.Schedule(func() {
		if _, _, err := s.LoadContent(ctx, ct, status, params); err != nil {
			s.logger.Error("debounced content search failed",
				"error", err,
				"content_type", ct,
				"status", status)
		}
	})
}

// SearchMessages schedules a debounced message refetch for a free-text search
func (s *Syncer) SearchMessages(ctx context.Context, params messages.ListParams) {
	s.search.Schedule(func() {
		if _, _, err := s.LoadMessages(ctx, params); err != nil {
			s.logger.Error("debounced message search failed", "error", err)
		}
	})
}

// Project applies a pure, client-local filter over a cached bucket's page.
// No repository call is made.
func (s *Syncer) Project(bucket string, keep func(Entry) bool) []Entry {
	b, ok := s.store.Bucket(bucket)
	if !ok {
		return nil
	}

	out := make([]Entry, 0, len(b.Items))
	for _, e := range b.Items {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}
