package nav

import "sync"

// Navigator is the imperative navigation-stack capability. Implementations
// are process-wide and single-writer; the command interpreter is the only
// caller.
type Navigator interface {
	Navigate(name string, params map[string]any)
	GoBack()
	Reset(name string)
}

// Handle is a set-once indirection over a Navigator. Calls before Bind are
// no-ops, matching the window before the navigation UI is ready.
type Handle struct {
	mu  sync.Mutex
	nav Navigator
}

// Bind installs the navigator. The first bind wins; later calls are ignored.
func (h *Handle) Bind(n Navigator) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.nav == nil {
		h.nav = n
	}
}

func (h *Handle) current() Navigator {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.nav
}

func (h *Handle) Navigate(name string, params map[string]any) {
	if n := h.current(); n != nil {
		n.Navigate(name, params)
	}
}

func (h *Handle) GoBack() {
	if n := h.current(); n != nil {
		n.GoBack()
	}
}

func (h *Handle) Reset(name string) {
	if n := h.current(); n != nil {
		n.Reset(name)
	}
}
