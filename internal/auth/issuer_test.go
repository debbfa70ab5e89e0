package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gatehouse/backend/internal/store"
)

func TestIssueCreatesOneSessionRow(t *testing.T) {
	q := &fakeQuerier{results: []store.Result{{Value: []store.Object{{"token": "x"}}}}}
	issuer := NewIssuer(store.NewNormalizer(q), discardLogger(), 7*24*time.Hour)

	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return issuedAt }

	token, err := issuer.Issue(context.Background(), "user-1", "203.0.113.9")
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	if len(token) != 36 {
		t.Errorf("token length = %d, want 36 (uuid)", len(token))
	}
	if q.calls != 1 {
		t.Fatalf("insert ran %d times, want 1", q.calls)
	}
	if q.lastStmt != createSessionStmt {
		t.Errorf("statement = %q", q.lastStmt)
	}
	if len(q.lastArgs) != 5 {
		t.Fatalf("args = %v, want 5", q.lastArgs)
	}
	if q.lastArgs[0] != token {
		t.Errorf("inserted token %v does not match returned token %q", q.lastArgs[0], token)
	}
	if q.lastArgs[1] != "user-1" || q.lastArgs[2] != "203.0.113.9" {
		t.Errorf("user/address args = %v", q.lastArgs[1:3])
	}
	if got := q.lastArgs[3].(time.Time); !got.Equal(issuedAt) {
		t.Errorf("issued_at = %v, want %v", got, issuedAt)
	}
	if got := q.lastArgs[4].(time.Time); !got.Equal(issuedAt.Add(7*24*time.Hour)) {
		t.Errorf("expires_at = %v", got)
	}
}

func TestIssueDistinctTokens(t *testing.T) {
	q := &fakeQuerier{results: []store.Result{{Value: []store.Object{{"token": "x"}}}}}
	issuer := NewIssuer(store.NewNormalizer(q), discardLogger(), time.Hour)

	a, err := issuer.Issue(context.Background(), "user-1", "::1")
	if err != nil {
		t.Fatal(err)
	}
	b, err := issuer.Issue(context.Background(), "user-1", "::1")
	if err != nil {
		t.Fatal(err)
	}

	if a == b {
		t.Error("two sessions share a token")
	}
}

func TestIssueStoreWriteFailure(t *testing.T) {
	tests := []struct {
		name    string
		results []store.Result
		err     error
	}{
		{"transport error", nil, errors.New("broken pipe")},
		{"statement error", []store.Result{{Err: errors.New("constraint violation")}}, nil},
		{"no row returned", []store.Result{{Value: []store.Object{}}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &fakeQuerier{results: tt.results, err: tt.err}
			issuer := NewIssuer(store.NewNormalizer(q), discardLogger(), time.Hour)

			if _, err := issuer.Issue(context.Background(), "user-1", "::1"); !errors.Is(err, ErrStoreWrite) {
				t.Errorf("Issue() error = %v, want ErrStoreWrite", err)
			}
		})
	}
}
