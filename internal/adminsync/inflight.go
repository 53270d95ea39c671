package adminsync

import "sync"

// inflightGuard serializes operations per item key. A second operation on an
// item already mid-flight is rejected rather than queued, so two concurrent
// optimistic moves can never corrupt bucket membership. Operations on
// different keys proceed independently.
type inflightGuard struct {
	mu   sync.Mutex
	keys map[string]struct{}
}

func newInflightGuard() *inflightGuard {
	return &inflightGuard{keys: make(map[string]struct{})}
}

// Begin claims the key, failing with ErrOperationInFlight if already claimed
func (g *inflightGuard) Begin(key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.keys[key]; busy {
		return ErrOperationInFlight
	}
	g.keys[key] = struct{}{}
	return nil
}

// End releases the key
func (g *inflightGuard) End(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.keys, key)
}
