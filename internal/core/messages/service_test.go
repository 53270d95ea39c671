package messages

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/pagination"
	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/validation"
)

type stubRepo struct {
	msgs        map[int64]*Message
	updateCalls int
	replyCalls  int
	afterGet    func() // runs after GetByID, to interleave a concurrent write
}

func newStubRepo(msgs ...*Message) *stubRepo {
	r := &stubRepo{msgs: make(map[int64]*Message)}
	for _, m := range msgs {
		r.msgs[m.ID] = m
	}
	return r
}

func (r *stubRepo) GetByID(ctx context.Context, id int64) (*Message, error) {
	m, ok := r.msgs[id]
	if !ok {
		return nil, ErrMessageNotFound
	}
	cp := *m
	if r.afterGet != nil {
		after := r.afterGet
		r.afterGet = nil
		after()
	}
	return &cp, nil
}

func (r *stubRepo) UpdateStatus(ctx context.Context, id int64, from, to Status) (*Message, error) {
	r.updateCalls++
	m, ok := r.msgs[id]
	if !ok {
		return nil, ErrMessageNotFound
	}
	if m.Status != from {
		// Compare-and-set failed; resolve like the SQL repository does
		if m.Status == to {
			cp := *m
			return &cp, nil
		}
		return nil, ErrInvalidTransition
	}
	m.Status = to
	m.UpdatedAt = time.Now().UTC()
	cp := *m
	return &cp, nil
}

func (r *stubRepo) Reply(ctx context.Context, id int64, body string) (*Message, error) {
	r.replyCalls++
	m, ok := r.msgs[id]
	if !ok {
		return nil, ErrMessageNotFound
	}
	m.AdminReply = &body
	m.Status = StatusResponded
	m.UpdatedAt = time.Now().UTC()
	cp := *m
	return &cp, nil
}

func (r *stubRepo) List(ctx context.Context, params ListParams) ([]*Message, pagination.Pagination, error) {
	var out []*Message
	for _, m := range r.msgs {
		if params.Status != "" && m.Status != params.Status {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	return out, pagination.New(params.Page, params.PerPage, len(out)), nil
}

func (r *stubRepo) UnreadCount(ctx context.Context) (int, error) {
	n := 0
	for _, m := range r.msgs {
		if m.Status == StatusUnread {
			n++
		}
	}
	return n, nil
}

func unreadMessage(id int64) *Message {
	return &Message{
		ID:        id,
		SenderID:  7,
		Subject:   "help",
		Content:   "something is wrong",
		Status:    StatusUnread,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}

func TestSetStatusWalksForward(t *testing.T) {
	repo := newStubRepo(unreadMessage(1))
	svc := NewService(repo, nil)
	ctx := context.Background()

	msg, err := svc.SetStatus(ctx, 1, StatusRead)
	if err != nil {
		t.Fatalf("unread -> read: %v", err)
	}
	if msg.Status != StatusRead {
		t.Errorf("status = %q, want %q", msg.Status, StatusRead)
	}

	msg, err = svc.SetStatus(ctx, 1, StatusResponded)
	if err != nil {
		t.Fatalf("read -> responded: %v", err)
	}
	if msg.Status != StatusResponded {
		t.Errorf("status = %q, want %q", msg.Status, StatusResponded)
	}
}

func TestSetStatusSameStatusIsIdempotent(t *testing.T) {
	repo := newStubRepo(unreadMessage(1))
	svc := NewService(repo, nil)
	ctx := context.Background()

	first, err := svc.SetStatus(ctx, 1, StatusRead)
	if err != nil {
		t.Fatal(err)
	}

	second, err := svc.SetStatus(ctx, 1, StatusRead)
	if err != nil {
		t.Fatalf("repeat set: %v", err)
	}
	if repo.updateCalls != 1 {
		t.Errorf("updateCalls = %d, want 1 (repeat must not write)", repo.updateCalls)
	}
	if !second.UpdatedAt.Equal(first.UpdatedAt) {
		t.Error("repeat set bumped updated_at")
	}
}

func TestSetStatusRejectsBackwardMoves(t *testing.T) {
	msg := unreadMessage(1)
	msg.Status = StatusResponded
	svc := NewService(newStubRepo(msg), nil)

	for _, target := range []Status{StatusRead} {
		if _, err := svc.SetStatus(context.Background(), 1, target); !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("responded -> %s: err = %v, want ErrInvalidTransition", target, err)
		}
	}
}

func TestSetStatusRejectsUnreadTarget(t *testing.T) {
	svc := NewService(newStubRepo(unreadMessage(1)), nil)

	if _, err := svc.SetStatus(context.Background(), 1, StatusUnread); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("err = %v, want ErrInvalidStatus", err)
	}
	if _, err := svc.SetStatus(context.Background(), 1, "archived"); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("err = %v, want ErrInvalidStatus", err)
	}
}

func TestSetStatusLosesRaceToConcurrentReply(t *testing.T) {
	repo := newStubRepo(unreadMessage(1))
	svc := NewService(repo, nil)

	// Another session replies between this session's read and its update
	repo.afterGet = func() {
		reply := "handled already"
		repo.msgs[1].Status = StatusResponded
		repo.msgs[1].AdminReply = &reply
	}

	_, err := svc.SetStatus(context.Background(), 1, StatusRead)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
	if repo.msgs[1].Status != StatusResponded {
		t.Errorf("status = %q, the losing write must not demote responded", repo.msgs[1].Status)
	}
}

func TestSetStatusConcurrentSameTargetIsNoOp(t *testing.T) {
	repo := newStubRepo(unreadMessage(1))
	svc := NewService(repo, nil)

	// Another session lands the identical transition first
	repo.afterGet = func() {
		repo.msgs[1].Status = StatusRead
	}

	msg, err := svc.SetStatus(context.Background(), 1, StatusRead)
	if err != nil {
		t.Fatalf("racing the same transition should succeed: %v", err)
	}
	if msg.Status != StatusRead {
		t.Errorf("status = %q, want %q", msg.Status, StatusRead)
	}
}

func TestSetStatusUnknownMessage(t *testing.T) {
	svc := NewService(newStubRepo(), nil)

	if _, err := svc.SetStatus(context.Background(), 9, StatusRead); !errors.Is(err, ErrMessageNotFound) {
		t.Errorf("err = %v, want ErrMessageNotFound", err)
	}
}

func TestReplyMarksResponded(t *testing.T) {
	repo := newStubRepo(unreadMessage(1))
	svc := NewService(repo, nil)

	msg, err := svc.Reply(context.Background(), 1, "  we are on it  ")
	if err != nil {
		t.Fatal(err)
	}
	if msg.Status != StatusResponded {
		t.Errorf("status = %q, want %q", msg.Status, StatusResponded)
	}
	if msg.AdminReply == nil || *msg.AdminReply != "we are on it" {
		t.Errorf("AdminReply = %v, want trimmed reply", msg.AdminReply)
	}
}

func TestReplyRequiresContent(t *testing.T) {
	repo := newStubRepo(unreadMessage(1))
	svc := NewService(repo, nil)

	_, err := svc.Reply(context.Background(), 1, "   ")
	ve, ok := validation.AsError(err)
	if !ok {
		t.Fatalf("err = %v, want validation error", err)
	}
	if _, present := ve.Fields["content"]; !present {
		t.Errorf("fields = %v, want content message", ve.Fields)
	}
	if repo.replyCalls != 0 {
		t.Error("invalid reply reached the repository")
	}
}

func TestReplyUnknownMessage(t *testing.T) {
	svc := NewService(newStubRepo(), nil)

	if _, err := svc.Reply(context.Background(), 9, "hello"); !errors.Is(err, ErrMessageNotFound) {
		t.Errorf("err = %v, want ErrMessageNotFound", err)
	}
}

func TestListRejectsUnknownStatusFilter(t *testing.T) {
	svc := NewService(newStubRepo(), nil)

	if _, _, err := svc.List(context.Background(), ListParams{Status: "archived"}); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("err = %v, want ErrInvalidStatus", err)
	}
}
