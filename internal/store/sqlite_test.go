package store

import (
	"context"
	"testing"
	"time"

	"github.com/luxebid/luxebid/internal/logging"
	"github.com/luxebid/luxebid/pkg/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	st, err := NewSQLiteStore(":memory:", logging.Discard())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := st.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestSessionRoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	sess := &model.Session{
		User:      &model.User{ID: 5, Email: "kay@example.com", Name: "Kay", Role: model.RoleBuyer},
		Token:     "tok-1",
		Refresh:   "ref-1",
		CreatedAt: time.Now().UTC(),
	}
	if err := st.SaveSession(ctx, sess); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := st.LoadSession(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded == nil {
		t.Fatal("loaded session is nil")
	}
	if loaded.Token != "tok-1" || loaded.Refresh != "ref-1" {
		t.Errorf("tokens = %q, %q", loaded.Token, loaded.Refresh)
	}
	if loaded.User == nil || loaded.User.Email != "kay@example.com" {
		t.Errorf("user = %+v", loaded.User)
	}
}

func TestSaveSessionReplaces(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	first := &model.Session{User: &model.User{ID: 1, Email: "a@example.com"}, Token: "tok-a", CreatedAt: time.Now()}
	second := &model.Session{User: &model.User{ID: 2, Email: "b@example.com"}, Token: "tok-b", CreatedAt: time.Now()}

	if err := st.SaveSession(ctx, first); err != nil {
		t.Fatalf("save first: %v", err)
	}
	if err := st.SaveSession(ctx, second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	loaded, err := st.LoadSession(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Token != "tok-b" || loaded.User.ID != 2 {
		t.Errorf("loaded = %+v; saving must replace the single session row", loaded)
	}
}

func TestDeleteSession(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	// Deleting with nothing stored is fine.
	if err := st.DeleteSession(ctx); err != nil {
		t.Fatalf("delete empty: %v", err)
	}

	sess := &model.Session{User: &model.User{ID: 1, Email: "a@example.com"}, Token: "tok", CreatedAt: time.Now()}
	if err := st.SaveSession(ctx, sess); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := st.DeleteSession(ctx); err != nil {
		t.Fatalf("delete: %v", err)
	}

	loaded, err := st.LoadSession(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded != nil {
		t.Errorf("loaded = %+v, want nil after delete", loaded)
	}
}

func TestHandoffWriteOnceReadOnce(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	if err := st.PutHandoff(ctx, HandoffPendingOTPEmail, "kay@example.com"); err != nil {
		t.Fatalf("put: %v", err)
	}

	value, ok, err := st.TakeHandoff(ctx, HandoffPendingOTPEmail)
	if err != nil {
		t.Fatalf("take: %v", err)
	}
	if !ok || value != "kay@example.com" {
		t.Errorf("take = %q, %v", value, ok)
	}

	// A second take finds nothing: the value is consumed.
	_, ok, err = st.TakeHandoff(ctx, HandoffPendingOTPEmail)
	if err != nil {
		t.Fatalf("second take: %v", err)
	}
	if ok {
		t.Error("hand-off value survived consumption")
	}
}

func TestHandoffMissingKey(t *testing.T) {
	st := newTestStore(t)

	_, ok, err := st.TakeHandoff(context.Background(), HandoffResetEmail)
	if err != nil {
		t.Fatalf("take: %v", err)
	}
	if ok {
		t.Error("found a value for a key never written")
	}
}

func TestHandoffOverwrite(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	if err := st.PutHandoff(ctx, HandoffResetEmail, "old@example.com"); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := st.PutHandoff(ctx, HandoffResetEmail, "new@example.com"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	value, ok, err := st.TakeHandoff(ctx, HandoffResetEmail)
	if err != nil {
		t.Fatalf("take: %v", err)
	}
	if !ok || value != "new@example.com" {
		t.Errorf("take = %q, %v; want latest value", value, ok)
	}
}
