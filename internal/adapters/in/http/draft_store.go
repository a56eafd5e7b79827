package http

import (
	"sync"

	"orderdesk/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// draftSession pairs a draft with its own lock. The store mutex only
// guards the session map; mutations of a draft run under the session
// lock, so two requests against the same session cannot interleave.
type draftSession struct {
	mu    sync.Mutex
	draft *order.Draft
}

// DraftStore keeps the open draft sessions of the process in memory.
// Drafts are per-session scratch state, not part of the order collection,
// so they live here rather than behind the repository. Dropping a session
// is how a draft is cancelled.
type DraftStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*draftSession
}

// NewDraftStore creates an empty draft session store.
func NewDraftStore() *DraftStore {
	return &DraftStore{sessions: make(map[uuid.UUID]*draftSession)}
}

// Put registers a draft and returns its session key.
func (s *DraftStore) Put(draft *order.Draft) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New()
	s.sessions[id] = &draftSession{draft: draft}
	return id
}

// Acquire returns the draft for a session key with exclusive access to
// it. The caller must invoke the release function once done; until then
// other requests against the same session block.
func (s *DraftStore) Acquire(id uuid.UUID) (*order.Draft, func(), bool) {
	s.mu.Lock()
	session, ok := s.sessions[id]
	s.mu.Unlock()
	if !ok {
		return nil, nil, false
	}

	session.mu.Lock()
	return session.draft, session.mu.Unlock, true
}

// Delete drops a draft session. Deleting an unknown key is a no-op.
func (s *DraftStore) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
}
