package adminsync

import (
	"log/slog"
	"sync"

	"github.com/SochesdaThoeun/mindspeak-sys/internal/core/pagination"
)

// Entry is one cached list element, keyed so it can be moved between buckets
type Entry struct {
	Key   string
	Value any
}

// Bucket is one status partition of a cached list plus its pagination
type Bucket struct {
	Items []Entry
	Meta  pagination.Pagination
}

// UndoToken captures the pre-mutation snapshot of an optimistic move.
// Applying it restores the exact prior state, so rollback is a direct
// restore rather than a recomputation.
type UndoToken struct {
	Key       string
	From      string
	To        string
	FromIndex int
	Item      Entry
	FromMeta  pagination.Pagination
	ToMeta    pagination.Pagination
}

// BucketStore is the session-scoped mirror of the admin's status-bucket
// lists. It is read-mostly and possibly stale; repository responses rebuild
// it and it is never treated as source of truth. All mutation goes through
// the store, so the single mutex is the only coordination needed.
type BucketStore struct {
	mu      sync.RWMutex
	buckets map[string]*Bucket
	stale   map[string]bool
	logger  *slog.Logger
}

// NewBucketStore creates an empty bucket store
func NewBucketStore(logger *slog.Logger) *BucketStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &BucketStore{
		buckets: make(map[string]*Bucket),
		stale:   make(map[string]bool),
		logger:  logger,
	}
}

// Replace rebuilds a bucket from a repository response and clears its stale flag
func (s *BucketStore) Replace(name string, items []Entry, meta pagination.Pagination) {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make([]Entry, len(items))
	copy(copied, items)
	s.buckets[name] = &Bucket{Items: copied, Meta: meta}
	delete(s.stale, name)

	s.logger.Debug("bucket replaced",
		"bucket", name,
		"items", len(items),
		"total", meta.Total)
}

// Bucket returns a copy of the named bucket, so callers can project
// (filter, sort) over it without holding the lock or mutating shared state.
func (s *BucketStore) Bucket(name string) (Bucket, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.buckets[name]
	if !ok {
		return Bucket{}, false
	}

	items := make([]Entry, len(b.Items))
	copy(items, b.Items)
	return Bucket{Items: items, Meta: b.Meta}, true
}

// Len returns the number of cached items in a bucket
func (s *BucketStore) Len(name string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if b, ok := s.buckets[name]; ok {
		return len(b.Items)
	}
	return 0
}

// FindBucket returns the name of the bucket currently holding the key.
// An item belongs to at most one bucket at a time.
func (s *BucketStore) FindBucket(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for name, b := range s.buckets {
		for _, e := range b.Items {
			if e.Key == key {
				return name, true
			}
		}
	}
	return "", false
}

// OptimisticMove removes the item from the source bucket and prepends it to
// the target bucket before the backing call resolves. The returned token
// snapshots the pre-mutation state for a deterministic rollback. The move is
// atomic: callers never observe the item in both buckets or neither.
func (s *BucketStore) OptimisticMove(key, from, to string) (*UndoToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	src, ok := s.buckets[from]
	if !ok {
		return nil, ErrBucketNotFound
	}

	idx := -1
	for i, e := range src.Items {
		if e.Key == key {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrNotInBucket
	}

	dst, ok := s.buckets[to]
	if !ok {
		dst = &Bucket{}
		s.buckets[to] = dst
	}

	token := &UndoToken{
		Key:       key,
		From:      from,
		To:        to,
		FromIndex: idx,
		Item:      src.Items[idx],
		FromMeta:  src.Meta,
		ToMeta:    dst.Meta,
	}

	src.Items = append(src.Items[:idx], src.Items[idx+1:]...)
	src.Meta = shrinkMeta(src.Meta)
	dst.Items = append([]Entry{token.Item}, dst.Items...)
	dst.Meta = growMeta(dst.Meta)

	s.logger.Debug("optimistic move applied",
		"key", key,
		"from", from,
		"to", to)

	return token, nil
}

// Confirm replaces the optimistically moved entry with the canonical server
// object, in case the server normalized fields.
func (s *BucketStore) Confirm(token *UndoToken, canonical any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dst, ok := s.buckets[token.To]
	if !ok {
		return
	}

	for i, e := range dst.Items {
		if e.Key == token.Key {
			dst.Items[i].Value = canonical
			break
		}
	}

	s.logger.Debug("optimistic move confirmed",
		"key", token.Key,
		"bucket", token.To)
}

// Rollback reverses an optimistic move, restoring the item to its original
// position and both buckets' metadata to their pre-move snapshots.
func (s *BucketStore) Rollback(token *UndoToken) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if dst, ok := s.buckets[token.To]; ok {
		for i, e := range dst.Items {
			if e.Key == token.Key {
				dst.Items = append(dst.Items[:i], dst.Items[i+1:]...)
				break
			}
		}
		dst.Meta = token.ToMeta
	}

	if src, ok := s.buckets[token.From]; ok {
		idx := token.FromIndex
		if idx > len(src.Items) {
			idx = len(src.Items)
		}
		src.Items = append(src.Items[:idx], append([]Entry{token.Item}, src.Items[idx:]...)...)
		src.Meta = token.FromMeta
	}

	s.logger.Debug("optimistic move rolled back",
		"key", token.Key,
		"from", token.From,
		"to", token.To)
}

// MarkStale flags a bucket for refetch after a conflict revealed the cache is behind
func (s *BucketStore) MarkStale(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stale[name] = true
	s.logger.Debug("bucket marked stale", "bucket", name)
}

// IsStale reports whether a bucket needs a refetch
func (s *BucketStore) IsStale(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stale[name]
}

// shrinkMeta adjusts pagination after optimistically removing one item
func shrinkMeta(m pagination.Pagination) pagination.Pagination {
	if m.Total > 0 {
		m.Total--
	}
	if m.To > 0 {
		m.To--
	}
	if m.To < m.From {
		m.From = m.To
	}
	return m
}

// growMeta adjusts pagination after optimistically prepending one item
func growMeta(m pagination.Pagination) pagination.Pagination {
	m.Total++
	m.To++
	if m.From == 0 {
		m.From = 1
	}
	return m
}
