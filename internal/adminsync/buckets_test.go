package adminsync

import (
	"errors"
	"reflect"
	"testing"

	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/pagination"
)

func seedStore() *BucketStore {
	s := NewBucketStore(nil)
	s.Replace("posts:pending", []Entry{
		{Key: "post:1", Value: "one"},
		{Key: "post:2", Value: "two"},
		{Key: "post:3", Value: "three"},
	}, pagination.New(1, 15, 3))
	s.Replace("posts:approved", []Entry{
		{Key: "post:9", Value: "nine"},
	}, pagination.New(1, 15, 1))
	return s
}

func TestOptimisticMoveMovesAtomically(t *testing.T) {
	s := seedStore()

	token, err := s.OptimisticMove("post:2", "posts:pending", "posts:approved")
	if err != nil {
		t.Fatal(err)
	}

	if name, _ := s.FindBucket("post:2"); name != "posts:approved" {
		t.Errorf("post:2 in bucket %q, want posts:approved", name)
	}
	if s.Len("posts:pending") != 2 {
		t.Errorf("pending len = %d, want 2", s.Len("posts:pending"))
	}

	approved, _ := s.Bucket("posts:approved")
	if approved.Items[0].Key != "post:2" {
		t.Errorf("moved item not prepended, first key = %q", approved.Items[0].Key)
	}
	if approved.Meta.Total != 2 {
		t.Errorf("approved total = %d, want 2", approved.Meta.Total)
	}

	pending, _ := s.Bucket("posts:pending")
	if pending.Meta.Total != 2 {
		t.Errorf("pending total = %d, want 2", pending.Meta.Total)
	}

	if token.FromIndex != 1 || token.Item.Key != "post:2" {
		t.Errorf("token = %+v, want index 1 for post:2", token)
	}
}

func TestRollbackRestoresExactState(t *testing.T) {
	s := seedStore()

	before := map[string]Bucket{}
	for _, name := range []string{"posts:pending", "posts:approved"} {
		b, _ := s.Bucket(name)
		before[name] = b
	}

	token, err := s.OptimisticMove("post:2", "posts:pending", "posts:approved")
	if err != nil {
		t.Fatal(err)
	}
	s.Rollback(token)

	for _, name := range []string{"posts:pending", "posts:approved"} {
		after, _ := s.Bucket(name)
		if !reflect.DeepEqual(before[name], after) {
			t.Errorf("bucket %q after rollback = %+v, want %+v", name, after, before[name])
		}
	}
}

func TestOptimisticMoveIntoMissingBucketCreatesIt(t *testing.T) {
	s := seedStore()

	if _, err := s.OptimisticMove("post:1", "posts:pending", "posts:rejected"); err != nil {
		t.Fatal(err)
	}
	if name, _ := s.FindBucket("post:1"); name != "posts:rejected" {
		t.Errorf("post:1 in bucket %q, want posts:rejected", name)
	}
}

func TestOptimisticMoveErrors(t *testing.T) {
	s := seedStore()

	if _, err := s.OptimisticMove("post:1", "comments:pending", "comments:approved"); !errors.Is(err, ErrBucketNotFound) {
		t.Errorf("err = %v, want ErrBucketNotFound", err)
	}
	if _, err := s.OptimisticMove("post:42", "posts:pending", "posts:approved"); !errors.Is(err, ErrNotInBucket) {
		t.Errorf("err = %v, want ErrNotInBucket", err)
	}
}

func TestConfirmSwapsCanonicalValue(t *testing.T) {
	s := seedStore()

	token, err := s.OptimisticMove("post:2", "posts:pending", "posts:approved")
	if err != nil {
		t.Fatal(err)
	}
	s.Confirm(token, "two-canonical")

	approved, _ := s.Bucket("posts:approved")
	if approved.Items[0].Value != "two-canonical" {
		t.Errorf("value = %v, want canonical replacement", approved.Items[0].Value)
	}
}

func TestReplaceClearsStaleFlag(t *testing.T) {
	s := seedStore()

	s.MarkStale("posts:pending")
	if !s.IsStale("posts:pending") {
		t.Fatal("bucket not marked stale")
	}

	s.Replace("posts:pending", nil, pagination.New(1, 15, 0))
	if s.IsStale("posts:pending") {
		t.Error("refetch did not clear stale flag")
	}
}

func TestBucketReturnsCopy(t *testing.T) {
	s := seedStore()

	b, _ := s.Bucket("posts:pending")
	b.Items[0].Value = "mutated"

	fresh, _ := s.Bucket("posts:pending")
	if fresh.Items[0].Value != "one" {
		t.Error("mutating the returned bucket leaked into the store")
	}
}

func TestMetaAdjustments(t *testing.T) {
	m := pagination.New(1, 15, 3)

	shrunk := shrinkMeta(m)
	if shrunk.Total != 2 || shrunk.To != 2 {
		t.Errorf("shrinkMeta = %+v, want total 2, to 2", shrunk)
	}

	grown := growMeta(m)
	if grown.Total != 4 || grown.To != 4 {
		t.Errorf("growMeta = %+v, want total 4, to 4", grown)
	}

	empty := shrinkMeta(pagination.New(1, 15, 0))
	if empty.Total != 0 || empty.To != 0 || empty.From != 0 {
		t.Errorf("shrinkMeta on empty = %+v, want zeros", empty)
	}
}
