package wizard

import "sync"

// SessionStore keeps per-session drafts. Implementations must be safe for
// concurrent use by independent sessions; a single session submits one input
// at a time.
type SessionStore interface {
	Get(id string) (*Draft, bool)
	Put(id string, draft *Draft)
	Delete(id string)
}

// MemorySessions is the in-process session store shared by both adapters.
type MemorySessions struct {
	mu     sync.Mutex
	drafts map[string]*Draft
}

// NewMemorySessions constructs an empty in-memory session store.
func NewMemorySessions() *MemorySessions {
	return &MemorySessions{drafts: make(map[string]*Draft)}
}

func (s *MemorySessions) Get(id string) (*Draft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[id]
	return d, ok
}

func (s *MemorySessions) Put(id string, draft *Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[id] = draft
}

func (s *MemorySessions) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, id)
}
