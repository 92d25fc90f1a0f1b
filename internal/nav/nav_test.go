package nav

import (
	"testing"

	"github.com/jask/storefront/internal/auth"
)

func TestRecorderNavigateAndBack(t *testing.T) {
	r := &Recorder{}
	r.Navigate("Home", nil)
	r.Navigate("Products", nil)
	r.Navigate("ProductDetail", nil)

	if r.Top() != "ProductDetail" {
		t.Errorf("top = %q", r.Top())
	}
	if r.Previous() != "Products" {
		t.Errorf("previous = %q", r.Previous())
	}

	r.GoBack()
	if r.Top() != "Products" {
		t.Errorf("top after back = %q", r.Top())
	}

	r.GoBack()
	r.GoBack()
	if r.Len() != 0 {
		t.Errorf("len = %d, want 0", r.Len())
	}
	// back on an empty stack is a no-op
	r.GoBack()
	if r.Top() != "" || r.Previous() != "" {
		t.Error("empty stack must report empty entries")
	}
}

func TestRecorderDedupsConsecutive(t *testing.T) {
	r := &Recorder{}
	r.Navigate("Home", nil)
	r.Navigate("Home", nil)
	if r.Len() != 1 {
		t.Errorf("len = %d, want 1", r.Len())
	}
	r.Navigate("Products", nil)
	r.Navigate("Home", nil)
	if r.Len() != 3 {
		t.Errorf("len = %d, want 3 (non-consecutive repeats are kept)", r.Len())
	}
}

func TestRecorderReset(t *testing.T) {
	r := &Recorder{}
	r.Navigate("Home", nil)
	r.Navigate("Products", nil)
	r.Reset("Home")
	if r.Len() != 1 || r.Top() != "Home" {
		t.Errorf("after reset: len=%d top=%q", r.Len(), r.Top())
	}
}

func TestHandleNoopBeforeBind(t *testing.T) {
	h := &Handle{}
	// none of these may panic
	h.Navigate("Home", nil)
	h.GoBack()
	h.Reset("Home")
}

func TestHandleFirstBindWins(t *testing.T) {
	first := &Recorder{}
	second := &Recorder{}
	h := &Handle{}
	h.Bind(first)
	h.Bind(second)

	h.Navigate("Home", nil)
	if first.Len() != 1 {
		t.Error("first navigator did not receive the call")
	}
	if second.Len() != 0 {
		t.Error("second bind must be ignored")
	}
}

func TestBuildNavigationFilters(t *testing.T) {
	full := auth.AuthorizationConfig{Permissions: []string{"home.view", "products.view"}}
	entries := BuildNavigation(full)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Screen != "Home" || entries[1].Screen != "Products" {
		t.Errorf("entries = %+v", entries)
	}

	homeOnly := auth.AuthorizationConfig{Permissions: []string{"home.view"}}
	entries = BuildNavigation(homeOnly)
	if len(entries) != 1 || entries[0].Screen != "Home" {
		t.Errorf("entries = %+v, want Home only", entries)
	}
}

func TestBuildPublicNavigationIsEmpty(t *testing.T) {
	if entries := BuildPublicNavigation(); len(entries) != 0 {
		t.Errorf("public navigation = %+v, want none (every entry is gated)", entries)
	}
}
