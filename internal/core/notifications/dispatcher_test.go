package notifications

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/pagination"
)

type stubRepo struct {
	created    []*Notification
	seen       map[string]bool
	failsLeft  int
	createErrs int
}

func newStubRepo() *stubRepo {
	return &stubRepo{seen: make(map[string]bool)}
}

func (r *stubRepo) Create(ctx context.Context, n *Notification) error {
	if r.failsLeft > 0 {
		r.failsLeft--
		r.createErrs++
		return errors.New("connection reset")
	}
	key := fmt.Sprintf("%d/%s/%d", n.RecipientID, n.Kind, n.Payload.SubjectID)
	if r.seen[key] {
		return ErrAlreadyDispatched
	}
	r.seen[key] = true
	r.created = append(r.created, n)
	return nil
}

func (r *stubRepo) ListForRecipient(ctx context.Context, recipientID int64, page, perPage int) ([]*Notification, pagination.Pagination, error) {
	var out []*Notification
	for _, n := range r.created {
		if n.RecipientID == recipientID {
			out = append(out, n)
		}
	}
	return out, pagination.New(page, perPage, len(out)), nil
}

type captureMailer struct {
	sent []*MailMessage
	err  error
}

func (m *captureMailer) Send(ctx context.Context, recipientID int64, mail *MailMessage) error {
	m.sent = append(m.sent, mail)
	return m.err
}

func TestNotifyPersistsOnce(t *testing.T) {
	repo := newStubRepo()
	d := NewDispatcher(repo, nil, "http://app.test", nil)
	ctx := context.Background()

	n, err := d.Notify(ctx, 42, KindPostApproved, Payload{SubjectID: 7, Title: "hello"})
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.NotEqual(t, "", n.ID.String())

	// A replay of the same decision is suppressed, not duplicated
	_, err = d.Notify(ctx, 42, KindPostApproved, Payload{SubjectID: 7, Title: "hello"})
	assert.ErrorIs(t, err, ErrAlreadyDispatched)
	assert.Len(t, repo.created, 1)
}

func TestNotifyRetriesTransientFailures(t *testing.T) {
	repo := newStubRepo()
	repo.failsLeft = 2
	d := NewDispatcher(repo, nil, "http://app.test", nil)

	n, err := d.Notify(context.Background(), 42, KindCommentApproved, Payload{SubjectID: 3, Title: "nice"})
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, 2, repo.createErrs)
	assert.Len(t, repo.created, 1)
}

func TestNotifyGivesUpAfterRetries(t *testing.T) {
	repo := newStubRepo()
	repo.failsLeft = 10
	d := NewDispatcher(repo, nil, "http://app.test", nil)

	_, err := d.Notify(context.Background(), 42, KindPostApproved, Payload{SubjectID: 1})
	require.Error(t, err)
	assert.Empty(t, repo.created)
}

func TestNotifyRejectsUnknownKind(t *testing.T) {
	d := NewDispatcher(newStubRepo(), nil, "http://app.test", nil)

	_, err := d.Notify(context.Background(), 42, "post_escalated", Payload{SubjectID: 1})
	assert.ErrorIs(t, err, ErrInvalidKind)
}

func TestNotifyRendersMessage(t *testing.T) {
	repo := newStubRepo()
	d := NewDispatcher(repo, nil, "http://app.test", nil)
	note := "duplicate content"

	n, err := d.Notify(context.Background(), 42, KindPostRejected, Payload{SubjectID: 7, Title: "my post", Note: &note})
	require.NoError(t, err)
	assert.Equal(t, `Your post "my post" has been rejected. Reason: duplicate content`, n.Payload.Message)
}

func TestNotifyDropsNoteOnApproval(t *testing.T) {
	repo := newStubRepo()
	d := NewDispatcher(repo, nil, "http://app.test", nil)
	note := "leftover note"

	n, err := d.Notify(context.Background(), 42, KindPostApproved, Payload{SubjectID: 7, Title: "my post", Note: &note})
	require.NoError(t, err)
	assert.Nil(t, n.Payload.Note)
}

func TestNotifySendsMail(t *testing.T) {
	mailer := &captureMailer{}
	d := NewDispatcher(newStubRepo(), mailer, "http://app.test", nil)
	note := "needs sources"

	_, err := d.Notify(context.Background(), 42, KindPostRejected, Payload{SubjectID: 7, Title: "my post", Note: &note})
	require.NoError(t, err)

	require.Len(t, mailer.sent, 1)
	mail := mailer.sent[0]
	assert.Equal(t, "Your post has been rejected", mail.Subject)
	assert.Equal(t, "Edit Post", mail.ActionText)
	assert.Equal(t, "http://app.test/posts/7/edit", mail.ActionURL)
	assert.Contains(t, mail.Lines, "Reason: needs sources")
}

func TestNotifyMailFailureDoesNotFailDispatch(t *testing.T) {
	repo := newStubRepo()
	mailer := &captureMailer{err: errors.New("smtp down")}
	d := NewDispatcher(repo, mailer, "http://app.test", nil)

	n, err := d.Notify(context.Background(), 42, KindPostApproved, Payload{SubjectID: 7, Title: "post"})
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Len(t, repo.created, 1)
}

func TestListForRecipient(t *testing.T) {
	repo := newStubRepo()
	d := NewDispatcher(repo, nil, "http://app.test", nil)
	ctx := context.Background()

	_, err := d.Notify(ctx, 42, KindPostApproved, Payload{SubjectID: 1, Title: "a"})
	require.NoError(t, err)
	_, err = d.Notify(ctx, 42, KindCommentRejected, Payload{SubjectID: 2, Title: "b"})
	require.NoError(t, err)
	_, err = d.Notify(ctx, 99, KindPostApproved, Payload{SubjectID: 3, Title: "c"})
	require.NoError(t, err)

	list, meta, err := d.ListForRecipient(ctx, 42, 1, 10)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, 2, meta.Total)
}
