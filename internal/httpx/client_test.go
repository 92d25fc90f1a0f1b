package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(server.URL, zerolog.Nop())
}

func kindOf(t *testing.T, err error) ErrorKind {
	t.Helper()
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("got %T (%v), want *Error", err, err)
	}
	return apiErr.Kind
}

func TestGetJSONDecodesBody(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/products" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("X-Request-Id") == "" {
			t.Error("missing request id header")
		}
		w.Write([]byte(`{"total": 3}`))
	})

	var out struct {
		Total int `json:"total"`
	}
	if err := client.GetJSON(context.Background(), "/products", &out); err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if out.Total != 3 {
		t.Errorf("total = %d, want 3", out.Total)
	}
}

func TestPostJSONSendsBody(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		w.Write([]byte(`{"ok": true}`))
	})

	var out struct {
		OK bool `json:"ok"`
	}
	body := map[string]string{"username": "emilys"}
	if err := client.PostJSON(context.Background(), "/auth/login", body, &out); err != nil {
		t.Fatalf("PostJSON: %v", err)
	}
	if !out.OK {
		t.Error("response not decoded")
	}
}

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		status int
		kind   ErrorKind
	}{
		{400, KindBadRequest},
		{401, KindUnauthorized},
		{404, KindNotFound},
		{500, KindUnexpected},
		{503, KindUnexpected},
	}
	for _, tc := range cases {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		})
		err := client.GetJSON(context.Background(), "/x", nil)
		if err == nil {
			t.Fatalf("status %d: expected error", tc.status)
		}
		if kind := kindOf(t, err); kind != tc.kind {
			t.Errorf("status %d: kind = %v, want %v", tc.status, kind, tc.kind)
		}
	}
}

func TestConnectionFailureIsNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()
	client := New(server.URL, zerolog.Nop())

	err := client.GetJSON(context.Background(), "/x", nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if kind := kindOf(t, err); kind != KindNetwork {
		t.Errorf("kind = %v, want KindNetwork", kind)
	}
}

func TestMalformedBodyIsUnexpected(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})
	var out struct{}
	err := client.GetJSON(context.Background(), "/x", &out)
	if err == nil {
		t.Fatal("expected error")
	}
	if kind := kindOf(t, err); kind != KindUnexpected {
		t.Errorf("kind = %v, want KindUnexpected", kind)
	}
}

func TestErrorMessages(t *testing.T) {
	cases := []struct {
		err  *Error
		want string
	}{
		{&Error{Kind: KindBadRequest}, "bad request"},
		{&Error{Kind: KindUnauthorized}, "unauthorized"},
		{&Error{Kind: KindNotFound}, "not found"},
		{&Error{Kind: KindNetwork}, "network error"},
		{&Error{Kind: KindUnexpected, Message: "HTTP 500"}, "HTTP 500"},
		{&Error{Kind: KindUnexpected}, "unexpected error"},
	}
	for _, tc := range cases {
		if got := tc.err.Error(); got != tc.want {
			t.Errorf("Error() = %q, want %q", got, tc.want)
		}
	}
}
