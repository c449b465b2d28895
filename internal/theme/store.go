package theme

import (
	"context"
	"net/http"
	"sync"
)

// Store persists the preference across mounts on one device or profile.
// Get reports ok=false when no explicit choice has been recorded.
type Store interface {
	Get(ctx context.Context) (t Theme, ok bool, err error)
	Set(ctx context.Context, t Theme) error
}

// MemoryStore is an in-process Store. The zero value is empty and ready to use.
type MemoryStore struct {
	mu     sync.Mutex
	value  Theme
	set    bool
	GetErr error // returned by Get when non-nil
	SetErr error // returned by Set when non-nil
	Writes int
}

// NewMemoryStore returns a MemoryStore, optionally pre-populated.
func NewMemoryStore(initial ...Theme) *MemoryStore {
	s := &MemoryStore{}
	if len(initial) > 0 {
		s.value, s.set = initial[0], true
	}
	return s
}

func (s *MemoryStore) Get(_ context.Context) (Theme, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.GetErr != nil {
		return "", false, s.GetErr
	}
	return s.value, s.set, nil
}

func (s *MemoryStore) Set(_ context.Context, t Theme) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SetErr != nil {
		return s.SetErr
	}
	s.value, s.set = t, true
	s.Writes++
	return nil
}

// Bind makes a MemoryStore its own Binder: every request shares it.
func (s *MemoryStore) Bind(http.ResponseWriter, *http.Request) Store { return s }

// Value returns the stored preference without going through Get.
func (s *MemoryStore) Value() (Theme, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, s.set
}
