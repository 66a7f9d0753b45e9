package memory

import (
	"context"
	"sync"
	"time"
)

// Revoker is an in-process token revocation list used when Redis is not configured.
type Revoker struct {
	mu      sync.Mutex
	entries map[string]time.Time
	now     func() time.Time
}

func NewRevoker() *Revoker {
	return &Revoker{entries: make(map[string]time.Time), now: time.Now}
}

func (r *Revoker) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for id, until := range r.entries {
		if !until.After(now) {
			delete(r.entries, id)
		}
	}
	r.entries[tokenID] = now.Add(ttl)
	return nil
}

func (r *Revoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	until, ok := r.entries[tokenID]
	return ok && until.After(r.now()), nil
}
