package history

import (
	"sync"

	"github.com/google/uuid"
)

// LinkedTransaction groups a run of buffer mutations into one undo
// step. It is created open and must be completed exactly once;
// Complete is safe to call more than once, only the first call has
// effect.
type LinkedTransaction struct {
	id       string
	provider *Provider

	mu        sync.Mutex
	completed bool
}

// ID returns the unique identifier of this transaction.
func (t *LinkedTransaction) ID() string {
	return t.id
}

// Complete closes the transaction. Safe to call multiple times.
func (t *LinkedTransaction) Complete() {
	t.mu.Lock()
	if t.completed {
		t.mu.Unlock()
		return
	}
	t.completed = true
	t.mu.Unlock()

	if t.provider != nil {
		t.provider.close(t.id)
	}
}

// IsCompleted reports whether Complete has been called.
func (t *LinkedTransaction) IsCompleted() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.completed
}

// Provider creates linked undo transactions and tracks which are
// still open. An open transaction left behind by an abnormal exit is
// visible via OpenCount until completed.
type Provider struct {
	mu   sync.Mutex
	open map[string]*LinkedTransaction
}

// NewProvider creates a transaction provider.
func NewProvider() *Provider {
	return &Provider{
		open: make(map[string]*LinkedTransaction),
	}
}

// CreateTransaction opens a new linked transaction.
func (p *Provider) CreateTransaction() *LinkedTransaction {
	t := &LinkedTransaction{
		id:       uuid.NewString(),
		provider: p,
	}

	p.mu.Lock()
	p.open[t.id] = t
	p.mu.Unlock()

	return t
}

// OpenCount returns the number of transactions not yet completed.
func (p *Provider) OpenCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.open)
}

// close removes a completed transaction from the open set.
func (p *Provider) close(id string) {
	p.mu.Lock()
	delete(p.open, id)
	p.mu.Unlock()
}
