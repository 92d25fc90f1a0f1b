package nav

import "sync"

// Recorder is a Navigator backed by a plain name stack. The shell reads it
// to decide where "back" leads; commands write it from interpreter
// goroutines, hence the lock.
type Recorder struct {
	mu    sync.Mutex
	items []string
}

func (r *Recorder) Navigate(name string, params map[string]any) {
	_ = params
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) > 0 && r.items[len(r.items)-1] == name {
		return
	}
	r.items = append(r.items, name)
}

func (r *Recorder) GoBack() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) > 0 {
		r.items = r.items[:len(r.items)-1]
	}
}

func (r *Recorder) Reset(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = []string{name}
}

// Top returns the current entry, or "" when the stack is empty.
func (r *Recorder) Top() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return ""
	}
	return r.items[len(r.items)-1]
}

// Previous returns the entry under the top, or "" when there is none.
func (r *Recorder) Previous() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) < 2 {
		return ""
	}
	return r.items[len(r.items)-2]
}

func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}
