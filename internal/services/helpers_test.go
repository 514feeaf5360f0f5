package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"mobilehut/internal/docstore"
	"mobilehut/internal/payments"
)

func memstore(t *testing.T) *docstore.SQLite {
	t.Helper()
	s, err := docstore.OpenSQLite(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s
}

type fakeProvider struct {
	got    []payments.Intent
	secret string
	err    error
}

func (f *fakeProvider) CreateIntent(_ context.Context, in payments.Intent) (string, error) {
	f.got = append(f.got, in)
	return f.secret, f.err
}

type published struct {
	key string
	v   any
}

type recordingPublisher struct {
	mu   sync.Mutex
	msgs []published
	err  error
}

func (p *recordingPublisher) PublishJSON(_ context.Context, key string, v any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.msgs = append(p.msgs, published{key: key, v: v})
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

var errBroker = errors.New("broker down")
