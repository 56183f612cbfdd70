package conversation

import "sync"

// Registry tracks the in-flight session per chat. Sessions are transient:
// they exist from /start until completion or cancellation and are never
// persisted.
type Registry struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[int64]*Session),
	}
}

// Begin creates a fresh session for the chat, discarding any unfinished
// one. Last start wins; nothing is merged.
func (r *Registry) Begin(chatID int64) *Session {
	s := &Session{ChatID: chatID, Step: StepName}

	r.mu.Lock()
	r.sessions[chatID] = s
	r.mu.Unlock()
	return s
}

func (r *Registry) Lookup(chatID int64) (*Session, bool) {
	r.mu.Lock()
	s, ok := r.sessions[chatID]
	r.mu.Unlock()
	return s, ok
}

func (r *Registry) End(chatID int64) {
	r.mu.Lock()
	delete(r.sessions, chatID)
	r.mu.Unlock()
}
