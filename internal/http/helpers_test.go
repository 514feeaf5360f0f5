package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"mobilehut/internal/config"
	"mobilehut/internal/docstore"
	"mobilehut/internal/http/handlers"
	"mobilehut/internal/payments"
)

type fakeProvider struct {
	mu     sync.Mutex
	got    []payments.Intent
	secret string
	err    error
}

func (f *fakeProvider) CreateIntent(_ context.Context, in payments.Intent) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.got = append(f.got, in)
	return f.secret, f.err
}

type recordingPublisher struct {
	mu   sync.Mutex
	keys []string
}

func (p *recordingPublisher) PublishJSON(_ context.Context, key string, _ any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, key)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

type testEnv struct {
	app      *fiber.App
	store    *docstore.SQLite
	deps     *handlers.Deps
	provider *fakeProvider
	pub      *recordingPublisher
}

// newTestApp wires the real routes over an in-memory store.
func newTestApp(t *testing.T, requireAuth bool) *testEnv {
	t.Helper()
	store, err := docstore.OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close(context.Background()) })

	cfg := config.Config{
		AccessToken:  "test-secret",
		TokenTTL:     24 * time.Hour,
		Currency:     "usd",
		StoreTimeout: 5 * time.Second,
		RequireAuth:  requireAuth,
	}
	env := &testEnv{
		store:    store,
		provider: &fakeProvider{secret: "pi_123_secret_456"},
		pub:      &recordingPublisher{},
	}
	env.deps = handlers.NewDeps(store, cfg, env.provider, env.pub)

	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	app.Use(requestid.New())
	app.Use(handlers.StoreTimeout(cfg.StoreTimeout))
	handlers.Register(app, env.deps, cfg.RequireAuth)
	app.Use(handlers.NotFound)
	env.app = app
	return env
}

// do sends a request with an optional JSON body and returns status and raw body.
func (e *testEnv) do(t *testing.T, method, target string, body any, headers ...string) (int, []byte) {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rdr = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, rdr)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := e.app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	defer resp.Body.Close()
	out, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, out
}

func decode[T any](t *testing.T, b []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		t.Fatalf("decode %s: %v", string(b), err)
	}
	return v
}

func mustStatus(t *testing.T, got, want int, body []byte) {
	t.Helper()
	if got != want {
		t.Fatalf("expected %d, got %d; body=%s", want, got, string(body))
	}
}

type logEntry struct {
	Level  string         `json:"level"`
	Action string         `json:"action"`
	Email  string         `json:"email"`
	Status int            `json:"status"`
	Err    string         `json:"err"`
	Fields map[string]any `json:"fields"`
}

type lockedBuf struct {
	b  *bytes.Buffer
	mu *sync.Mutex
}

func (l *lockedBuf) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.Write(p)
}

func captureLogs(t *testing.T, fn func()) []logEntry {
	t.Helper()
	var buf bytes.Buffer
	var mu sync.Mutex
	oldW := log.Writer()
	oldFlags := log.Flags()
	log.SetOutput(&lockedBuf{b: &buf, mu: &mu})
	log.SetFlags(0)
	defer func() {
		log.SetOutput(oldW)
		log.SetFlags(oldFlags)
	}()

	fn()

	var entries []logEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var e logEntry
		if err := json.Unmarshal([]byte(line), &e); err == nil {
			entries = append(entries, e)
		}
	}
	return entries
}

func findAction(entries []logEntry, action string) *logEntry {
	for i := range entries {
		if entries[i].Action == action {
			return &entries[i]
		}
	}
	return nil
}

func httptestRaw(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}
