// Package testutil provides a fake SmartHire backend for client tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"go.uber.org/goleak"

	"github.com/smarthire/smarthire_client/internal/clients"
	"github.com/smarthire/smarthire_client/internal/storage"
	rootservices "github.com/smarthire/smarthire_client/services"
)

// Recorded is one request captured by FakeAPI.
type Recorded struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// JSON decodes the captured body as an object.
func (r Recorded) JSON(t *testing.T) map[string]any {
	t.Helper()
	out := map[string]any{}
	if err := json.Unmarshal(r.Body, &out); err != nil {
		t.Fatalf("request body is not a JSON object: %v (%s)", err, r.Body)
	}
	return out
}

// FakeAPI is an httptest server routing /api/... with gorilla/mux and recording every request.
type FakeAPI struct {
	Server *httptest.Server
	Router *mux.Router

	mu       sync.Mutex
	requests []Recorded
}

// NewFakeAPI starts the server; it is closed on test cleanup.
func NewFakeAPI(t *testing.T) *FakeAPI {
	t.Helper()
	f := &FakeAPI{Router: mux.NewRouter()}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.requests = append(f.requests, Recorded{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   body,
		})
		f.mu.Unlock()
		r.Body = io.NopCloser(bytes.NewReader(body))
		f.Router.ServeHTTP(w, r)
	}))
	t.Cleanup(f.Server.Close)
	return f
}

// Handle answers method+path (a mux template relative to /api) with a fixed status and JSON body.
func (f *FakeAPI) Handle(method, path string, status int, body string) {
	f.HandleFunc(method, path, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	})
}

// HandleFunc registers a custom handler for method+path relative to /api.
func (f *FakeAPI) HandleFunc(method, path string, h http.HandlerFunc) {
	f.Router.HandleFunc("/api"+path, h).Methods(method)
}

// Requests returns a copy of everything received so far.
func (f *FakeAPI) Requests() []Recorded {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Recorded(nil), f.requests...)
}

// Only asserts exactly one request was received and returns it.
func (f *FakeAPI) Only(t *testing.T) Recorded {
	t.Helper()
	reqs := f.Requests()
	if len(reqs) != 1 {
		t.Fatalf("expected exactly one request, got %d: %#v", len(reqs), reqs)
	}
	return reqs[0]
}

// Config returns a client config pointing at the fake server.
func (f *FakeAPI) Config() rootservices.Config {
	return rootservices.Config{
		AppName:   "smarthire_client_test",
		BaseURL:   f.Server.URL + "/api",
		StorePath: ":memory:",
	}
}

// NewClient builds an APIClient against the fake server, closed on test cleanup.
func (f *FakeAPI) NewClient(t *testing.T, store storage.Store) *clients.APIClient {
	t.Helper()
	c := clients.NewAPIClient(f.Config(), store)
	t.Cleanup(c.Close)
	return c
}

// LeakOptions ignores idle keep-alive loops that the transport closes asynchronously.
func LeakOptions() []goleak.Option {
	return []goleak.Option{
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
	}
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
