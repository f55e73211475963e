package app

import "sync"

// PopupCenter tracks transient UI popups such as completion lists.
// It satisfies the engine's popup surface; escape dismisses everything
// at once.
type PopupCenter struct {
	mu     sync.Mutex
	active map[string]struct{}
}

// NewPopupCenter creates an empty popup registry.
func NewPopupCenter() *PopupCenter {
	return &PopupCenter{active: make(map[string]struct{})}
}

// Show marks a popup as visible.
func (p *PopupCenter) Show(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.active[id] = struct{}{}
}

// Dismiss hides one popup.
func (p *PopupCenter) Dismiss(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.active, id)
}

// IsAnyPopupActive reports whether any popup is visible.
func (p *PopupCenter) IsAnyPopupActive() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.active) > 0
}

// DismissAll hides every popup.
func (p *PopupCenter) DismissAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	clear(p.active)
}
