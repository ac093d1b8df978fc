package agreement

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionStore holds live drafts in memory, keyed by session id. The
// agreement number is document identity, not session identity: two drafts
// opened within the same second must not collide. A submitted draft is
// discarded; an abandoned one simply stops being touched.
type SessionStore struct {
	mu     sync.Mutex
	drafts map[string]*Draft
}

func NewSessionStore() *SessionStore {
	return &SessionStore{drafts: make(map[string]*Draft)}
}

// Create opens a new draft session.
func (s *SessionStore) Create(p DraftParams) *Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := NewDraft(uuid.NewString(), p, time.Now())
	s.drafts[d.ID] = d
	return d
}

// Update runs fn on the draft under the store lock. Edits are rejected while
// a submission is in flight.
func (s *SessionStore) Update(id string, fn func(*Draft) error) (DraftView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[id]
	if !ok {
		return DraftView{}, ErrDraftNotFound
	}
	if d.submitting {
		return DraftView{}, ErrDraftSubmitting
	}
	if err := fn(d); err != nil {
		return DraftView{}, err
	}
	return d.View(), nil
}

// Get returns the draft's current view.
func (s *SessionStore) Get(id string) (DraftView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[id]
	if !ok {
		return DraftView{}, ErrDraftNotFound
	}
	return d.View(), nil
}

// BeginSubmit marks the draft busy and hands it to the caller. Until
// FinishSubmit is called, all other operations on the draft are rejected.
func (s *SessionStore) BeginSubmit(id string) (*Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[id]
	if !ok {
		return nil, ErrDraftNotFound
	}
	if d.submitting {
		return nil, ErrDraftSubmitting
	}
	d.submitting = true
	return d, nil
}

// FinishSubmit ends a submission attempt. Success discards the draft; failure
// returns it to the editing state with all values retained.
func (s *SessionStore) FinishSubmit(id string, success bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[id]
	if !ok {
		return
	}
	if success {
		delete(s.drafts, id)
		return
	}
	d.submitting = false
}
