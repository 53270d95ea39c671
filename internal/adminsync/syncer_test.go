package adminsync

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/messages"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/moderation"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/pagination"
)

type fakeModerationService struct {
	mu         sync.Mutex
	decideFn   func(req moderation.DecideRequest) (*moderation.Item, error)
	listFn     func(params moderation.ListParams) ([]*moderation.Item, pagination.Pagination, error)
	listCalls  []moderation.ListParams
	decideGate chan struct{}
}

func (f *fakeModerationService) Decide(ctx context.Context, req moderation.DecideRequest) (*moderation.Item, error) {
	if f.decideGate != nil {
		<-f.decideGate
	}
	return f.decideFn(req)
}

func (f *fakeModerationService) GetByID(ctx context.Context, ct moderation.ContentType, id int64) (*moderation.Item, error) {
	return nil, moderation.ErrItemNotFound
}

func (f *fakeModerationService) ListByStatus(ctx context.Context, ct moderation.ContentType, status moderation.Status, params moderation.ListParams) ([]*moderation.Item, pagination.Pagination, error) {
	f.mu.Lock()
	f.listCalls = append(f.listCalls, params)
	f.mu.Unlock()
	if f.listFn != nil {
		return f.listFn(params)
	}
	return nil, pagination.New(params.Page, params.PerPage, 0), nil
}

func (f *fakeModerationService) Delete(ctx context.Context, ct moderation.ContentType, id int64) error {
	return nil
}

type fakeMessageService struct {
	setStatusFn func(id int64, status messages.Status) (*messages.Message, error)
	replyFn     func(id int64, body string) (*messages.Message, error)
	listFn      func(params messages.ListParams) ([]*messages.Message, pagination.Pagination, error)
}

func (f *fakeMessageService) SetStatus(ctx context.Context, id int64, status messages.Status) (*messages.Message, error) {
	return f.setStatusFn(id, status)
}

func (f *fakeMessageService) Reply(ctx context.Context, id int64, body string) (*messages.Message, error) {
	return f.replyFn(id, body)
}

func (f *fakeMessageService) GetByID(ctx context.Context, id int64) (*messages.Message, error) {
	return nil, messages.ErrMessageNotFound
}

func (f *fakeMessageService) List(ctx context.Context, params messages.ListParams) ([]*messages.Message, pagination.Pagination, error) {
	if f.listFn != nil {
		return f.listFn(params)
	}
	return nil, pagination.New(params.Page, params.PerPage, 0), nil
}

func (f *fakeMessageService) UnreadCount(ctx context.Context) (int, error) {
	return 0, nil
}

func modItem(id int64, status moderation.Status) *moderation.Item {
	return &moderation.Item{
		ID:          id,
		ContentType: moderation.ContentTypePost,
		AuthorID:    42,
		Title:       "post",
		Status:      status,
	}
}

func TestLoadContentRebuildsBucket(t *testing.T) {
	mod := &fakeModerationService{
		listFn: func(params moderation.ListParams) ([]*moderation.Item, pagination.Pagination, error) {
			return []*moderation.Item{modItem(1, moderation.StatusPending), modItem(2, moderation.StatusPending)},
				pagination.New(params.Page, params.PerPage, 2), nil
		},
	}
	s := NewSyncer(NewBucketStore(nil), mod, &fakeMessageService{}, nil)

	items, meta, err := s.LoadContent(context.Background(), moderation.ContentTypePost, moderation.StatusPending, moderation.ListParams{Page: 1, PerPage: 15})
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 || meta.Total != 2 {
		t.Fatalf("items = %d, total = %d, want 2/2", len(items), meta.Total)
	}

	bucket, ok := s.Store().Bucket(ContentBucket(moderation.ContentTypePost, moderation.StatusPending))
	if !ok {
		t.Fatal("bucket not built")
	}
	if bucket.Items[0].Key != "post:1" {
		t.Errorf("first key = %q, want post:1", bucket.Items[0].Key)
	}
}

func TestDecideConfirmsCanonicalRow(t *testing.T) {
	canonical := modItem(1, moderation.StatusApproved)
	mod := &fakeModerationService{
		decideFn: func(req moderation.DecideRequest) (*moderation.Item, error) {
			return canonical, nil
		},
	}
	store := NewBucketStore(nil)
	store.Replace(ContentBucket(moderation.ContentTypePost, moderation.StatusPending),
		[]Entry{{Key: "post:1", Value: modItem(1, moderation.StatusPending)}}, pagination.New(1, 15, 1))
	store.Replace(ContentBucket(moderation.ContentTypePost, moderation.StatusApproved),
		nil, pagination.New(1, 15, 0))
	s := NewSyncer(store, mod, &fakeMessageService{}, nil)

	item, err := s.Decide(context.Background(), moderation.ContentTypePost, 1, moderation.DecisionApprove, "")
	if err != nil {
		t.Fatal(err)
	}
	if item != canonical {
		t.Error("canonical row not returned")
	}

	approved, _ := store.Bucket(ContentBucket(moderation.ContentTypePost, moderation.StatusApproved))
	if len(approved.Items) != 1 || approved.Items[0].Value != canonical {
		t.Errorf("approved bucket = %+v, want the canonical row", approved.Items)
	}
	if store.Len(ContentBucket(moderation.ContentTypePost, moderation.StatusPending)) != 0 {
		t.Error("item still in pending bucket")
	}
}

func TestDecideConflictRollsBackAndMarksStale(t *testing.T) {
	mod := &fakeModerationService{
		decideFn: func(req moderation.DecideRequest) (*moderation.Item, error) {
			return nil, moderation.ErrAlreadyResolved
		},
	}
	store := NewBucketStore(nil)
	pendingBucket := ContentBucket(moderation.ContentTypePost, moderation.StatusPending)
	store.Replace(pendingBucket,
		[]Entry{{Key: "post:1", Value: modItem(1, moderation.StatusPending)}}, pagination.New(1, 15, 1))
	before, _ := store.Bucket(pendingBucket)
	s := NewSyncer(store, mod, &fakeMessageService{}, nil)

	_, err := s.Decide(context.Background(), moderation.ContentTypePost, 1, moderation.DecisionApprove, "")
	if !errors.Is(err, moderation.ErrAlreadyResolved) {
		t.Fatalf("err = %v, want ErrAlreadyResolved", err)
	}

	after, _ := store.Bucket(pendingBucket)
	if !reflect.DeepEqual(before, after) {
		t.Errorf("pending bucket after rollback = %+v, want %+v", after, before)
	}
	if !store.IsStale(pendingBucket) {
		t.Error("conflict did not mark the pending bucket stale")
	}
}

func TestDecideRejectsConcurrentOperationOnSameItem(t *testing.T) {
	gate := make(chan struct{})
	mod := &fakeModerationService{
		decideGate: gate,
		decideFn: func(req moderation.DecideRequest) (*moderation.Item, error) {
			return modItem(1, moderation.StatusApproved), nil
		},
	}
	s := NewSyncer(NewBucketStore(nil), mod, &fakeMessageService{}, nil)

	firstDone := make(chan error, 1)
	go func() {
		_, err := s.Decide(context.Background(), moderation.ContentTypePost, 1, moderation.DecisionApprove, "")
		firstDone <- err
	}()

	// Wait until the first call holds the key, then race a second one
	deadline := time.After(time.Second)
	for {
		if err := s.inflight.Begin("post:1"); errors.Is(err, ErrOperationInFlight) {
			break
		}
		s.inflight.End("post:1")
		select {
		case <-deadline:
			t.Fatal("first decide never claimed the key")
		default:
			time.Sleep(time.Millisecond)
		}
	}

	if _, err := s.Decide(context.Background(), moderation.ContentTypePost, 1, moderation.DecisionReject, ""); !errors.Is(err, ErrOperationInFlight) {
		t.Errorf("second decide err = %v, want ErrOperationInFlight", err)
	}

	close(gate)
	if err := <-firstDone; err != nil {
		t.Errorf("first decide: %v", err)
	}
}

func TestSetMessageStatusDecrementsUnreadView(t *testing.T) {
	read := &messages.Message{ID: 1, Status: messages.StatusRead}
	msgs := &fakeMessageService{
		setStatusFn: func(id int64, status messages.Status) (*messages.Message, error) {
			return read, nil
		},
	}
	store := NewBucketStore(nil)
	store.Replace(MessageBucket(messages.StatusUnread),
		[]Entry{
			{Key: "message:1", Value: &messages.Message{ID: 1, Status: messages.StatusUnread}},
			{Key: "message:2", Value: &messages.Message{ID: 2, Status: messages.StatusUnread}},
		}, pagination.New(1, 15, 2))
	s := NewSyncer(store, &fakeModerationService{}, msgs, nil)

	msg, err := s.SetMessageStatus(context.Background(), 1, messages.StatusRead)
	if err != nil {
		t.Fatal(err)
	}
	if msg != read {
		t.Error("canonical row not returned")
	}

	unread, _ := store.Bucket(MessageBucket(messages.StatusUnread))
	if len(unread.Items) != 1 || unread.Meta.Total != 1 {
		t.Errorf("unread view = %d items, total %d, want 1/1", len(unread.Items), unread.Meta.Total)
	}
	readView, _ := store.Bucket(MessageBucket(messages.StatusRead))
	if len(readView.Items) != 1 || readView.Items[0].Value != read {
		t.Errorf("read view = %+v, want the canonical row", readView.Items)
	}
}

func TestReplyMessageFailureRollsBack(t *testing.T) {
	msgs := &fakeMessageService{
		replyFn: func(id int64, body string) (*messages.Message, error) {
			return nil, messages.ErrMessageNotFound
		},
	}
	store := NewBucketStore(nil)
	unreadBucket := MessageBucket(messages.StatusUnread)
	store.Replace(unreadBucket,
		[]Entry{{Key: "message:1", Value: &messages.Message{ID: 1, Status: messages.StatusUnread}}},
		pagination.New(1, 15, 1))
	before, _ := store.Bucket(unreadBucket)
	s := NewSyncer(store, &fakeModerationService{}, msgs, nil)

	_, err := s.ReplyMessage(context.Background(), 1, "hello")
	if !errors.Is(err, messages.ErrMessageNotFound) {
		t.Fatalf("err = %v, want ErrMessageNotFound", err)
	}

	after, _ := store.Bucket(unreadBucket)
	if !reflect.DeepEqual(before, after) {
		t.Errorf("bucket after rollback = %+v, want %+v", after, before)
	}
	if !store.IsStale(unreadBucket) {
		t.Error("vanished message did not mark the view stale")
	}
}

func TestSearchContentCollapsesIntoOneFetch(t *testing.T) {
	mod := &fakeModerationService{}
	clock := &manualClock{}
	s := NewSyncerWithDebouncer(NewBucketStore(nil), mod, &fakeMessageService{},
		NewDebouncerWithTimer(DefaultSearchDebounce, clock.factory), nil)
	ctx := context.Background()

	for _, q := range []string{"a", "ab", "abc"} {
		s.SearchContent(ctx, moderation.ContentTypePost, moderation.StatusPending, moderation.ListParams{Page: 1, PerPage: 15, Search: q})
	}
	clock.fireAll()

	mod.mu.Lock()
	defer mod.mu.Unlock()
	if len(mod.listCalls) != 1 {
		t.Fatalf("backing fetches = %d, want 1", len(mod.listCalls))
	}
	if mod.listCalls[0].Search != "abc" {
		t.Errorf("fetched search = %q, want the last keystroke", mod.listCalls[0].Search)
	}
}

func TestProjectFiltersLocally(t *testing.T) {
	mod := &fakeModerationService{}
	store := NewBucketStore(nil)
	store.Replace("posts:pending", []Entry{
		{Key: "post:1", Value: modItem(1, moderation.StatusPending)},
		{Key: "post:2", Value: modItem(2, moderation.StatusPending)},
	}, pagination.New(1, 15, 2))
	s := NewSyncer(store, mod, &fakeMessageService{}, nil)

	kept := s.Project("posts:pending", func(e Entry) bool {
		return e.Key == "post:2"
	})
	if len(kept) != 1 || kept[0].Key != "post:2" {
		t.Errorf("projection = %+v, want only post:2", kept)
	}

	// A projection never touches the backing service
	mod.mu.Lock()
	defer mod.mu.Unlock()
	if len(mod.listCalls) != 0 {
		t.Errorf("projection triggered %d backing calls", len(mod.listCalls))
	}
}
