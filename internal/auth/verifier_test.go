package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/gatehouse/backend/internal/password"
	"github.com/gatehouse/backend/internal/store"
)

type fakeQuerier struct {
	results  []store.Result
	err      error
	calls    int
	lastStmt string
	lastArgs []any
}

func (f *fakeQuerier) Query(_ context.Context, stmt string, args ...any) ([]store.Result, error) {
	f.calls++
	f.lastStmt = stmt
	f.lastArgs = args
	return f.results, f.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func userRow(t *testing.T, pass string) store.Object {
	t.Helper()
	hash, err := password.Hash(pass)
	if err != nil {
		t.Fatal(err)
	}
	return store.Object{
		"id":    "b6f1f3e0-0000-4000-8000-000000000001",
		"email": "a@b.com",
		"pass":  hash,
	}
}

func TestVerifyRejectsEmptyCredentialsBeforeStoreAccess(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		pass    string
		wantErr error
	}{
		{"empty email", "", "secret", ErrEmailRequired},
		{"whitespace email", "   ", "secret", ErrEmailRequired},
		{"empty password", "a@b.com", "", ErrPasswordRequired},
		{"whitespace password", "a@b.com", " \t ", ErrPasswordRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &fakeQuerier{}
			v := NewVerifier(store.NewNormalizer(q), discardLogger())

			_, err := v.Verify(context.Background(), tt.email, tt.pass)

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Verify() error = %v, want %v", err, tt.wantErr)
			}
			if q.calls != 0 {
				t.Errorf("store was queried %d times, want 0", q.calls)
			}
		})
	}
}

func TestVerifySuccess(t *testing.T) {
	row := userRow(t, "hunter2")
	q := &fakeQuerier{results: []store.Result{{Value: []store.Object{row}}}}
	v := NewVerifier(store.NewNormalizer(q), discardLogger())

	user, err := v.Verify(context.Background(), "a@b.com", "hunter2")
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}

	if id, _ := FieldString(user, "id"); id != "b6f1f3e0-0000-4000-8000-000000000001" {
		t.Errorf("user id = %q", id)
	}
	if q.lastStmt != userByEmailStmt {
		t.Errorf("statement = %q", q.lastStmt)
	}
	if len(q.lastArgs) != 1 || q.lastArgs[0] != "a@b.com" {
		t.Errorf("args = %v, want email only", q.lastArgs)
	}
}

func TestVerifyNoMatchIsIndistinguishable(t *testing.T) {
	row := userRow(t, "hunter2")

	tests := []struct {
		name    string
		results []store.Result
		pass    string
	}{
		{
			name:    "unknown email",
			results: []store.Result{{Value: []store.Object{}}},
			pass:    "hunter2",
		},
		{
			name:    "wrong password",
			results: []store.Result{{Value: []store.Object{row}}},
			pass:    "not-hunter2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &fakeQuerier{results: tt.results}
			v := NewVerifier(store.NewNormalizer(q), discardLogger())

			_, err := v.Verify(context.Background(), "a@b.com", tt.pass)

			if !errors.Is(err, ErrNoMatch) {
				t.Errorf("Verify() error = %v, want ErrNoMatch", err)
			}
		})
	}
}

func TestVerifyStoreFailures(t *testing.T) {
	tests := []struct {
		name    string
		results []store.Result
		err     error
	}{
		{
			name: "transport error",
			err:  errors.New("connection refused"),
		},
		{
			name:    "shape anomaly",
			results: []store.Result{{Value: "not rows"}},
		},
		{
			name:    "duplicate users",
			results: []store.Result{{Value: []store.Object{{"pass": "x"}, {"pass": "y"}}}},
		},
		{
			name:    "missing hash field",
			results: []store.Result{{Value: []store.Object{{"email": "a@b.com"}}}},
		},
		{
			name:    "malformed stored hash",
			results: []store.Result{{Value: []store.Object{{"pass": "plaintext-oops"}}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &fakeQuerier{results: tt.results, err: tt.err}
			v := NewVerifier(store.NewNormalizer(q), discardLogger())

			_, err := v.Verify(context.Background(), "a@b.com", "hunter2")

			if !errors.Is(err, ErrStoreRead) {
				t.Errorf("Verify() error = %v, want ErrStoreRead", err)
			}
		})
	}
}

func TestFieldString(t *testing.T) {
	obj := store.Object{
		"str":   "value",
		"int":   int64(42),
		"float": float64(7),
		"nil":   nil,
		"map":   map[string]any{},
	}

	tests := []struct {
		key  string
		want string
		ok   bool
	}{
		{"str", "value", true},
		{"int", "42", true},
		{"float", "7", true},
		{"nil", "", false},
		{"map", "", false},
		{"absent", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := FieldString(obj, tt.key)
			if got != tt.want || ok != tt.ok {
				t.Errorf("FieldString(%q) = %q, %v; want %q, %v", tt.key, got, ok, tt.want, tt.ok)
			}
		})
	}
}
