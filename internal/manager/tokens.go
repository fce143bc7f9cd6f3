package manager

import (
	"sync"

	"github.com/google/uuid"
)

// deleteTokens gates deletion behind an explicit confirmation step.
// Each token is scoped to a single pending deletion: requesting
// deletion again replaces the previous token, and confirming consumes
// it, so a stale confirmation can never fire a second request.
type deleteTokens struct {
	mu      sync.Mutex
	pending map[string]string
}

func newDeleteTokens() *deleteTokens {
	return &deleteTokens{pending: make(map[string]string)}
}

// issue creates the confirmation token for one item, replacing any
// token from an earlier, unresolved delete attempt.
func (t *deleteTokens) issue(itemID string) string {
	token := uuid.New().String()

	t.mu.Lock()
	t.pending[itemID] = token
	t.mu.Unlock()

	return token
}

// consume validates and removes the pending token. It reports false
// when the token does not match the pending deletion for that item.
func (t *deleteTokens) consume(itemID, token string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	pending, ok := t.pending[itemID]
	if !ok || token == "" || pending != token {
		return false
	}
	delete(t.pending, itemID)
	return true
}

// cancel discards the pending token without issuing any request.
func (t *deleteTokens) cancel(itemID string) {
	t.mu.Lock()
	delete(t.pending, itemID)
	t.mu.Unlock()
}
