package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/behruz-py/audiokitob-islom-bot/internal/domain"
)

// fakeAdminStore is an in-memory store.AdminStore with a switchable failure.
type fakeAdminStore struct {
	admins map[int64]string
	err    error
}

func newFakeAdminStore() *fakeAdminStore {
	return &fakeAdminStore{admins: make(map[int64]string)}
}

func (f *fakeAdminStore) UpsertAdmin(_ context.Context, id int64, name string) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.admins[id]; !ok {
		f.admins[id] = name
	}
	return nil
}

func (f *fakeAdminStore) ListAdmins(_ context.Context) ([]*domain.Admin, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.Admin, 0, len(f.admins))
	for id, name := range f.admins {
		out = append(out, &domain.Admin{ID: id, Name: name})
	}
	return out, nil
}

func (f *fakeAdminStore) DeleteAdmin(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	delete(f.admins, id)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestIsAdmin_StaticAllowlist(t *testing.T) {
	fs := newFakeAdminStore()
	a := New([]int64{100, 200}, fs, testLogger())
	ctx := context.Background()

	assert.True(t, a.IsAdmin(ctx, 100))
	assert.True(t, a.IsAdmin(ctx, 200))
	assert.False(t, a.IsAdmin(ctx, 300))
}

func TestIsAdmin_DatabaseGrant(t *testing.T) {
	fs := newFakeAdminStore()
	fs.admins[300] = "Yangi admin"
	a := New([]int64{100}, fs, testLogger())
	ctx := context.Background()

	assert.True(t, a.IsAdmin(ctx, 300))

	// A grant added after construction takes effect immediately.
	fs.admins[400] = "Keyingi admin"
	assert.True(t, a.IsAdmin(ctx, 400))
}

func TestIsAdmin_DatabaseFailureFallsBackToStatic(t *testing.T) {
	fs := newFakeAdminStore()
	fs.admins[300] = "DB admin"
	fs.err = errors.New("database is locked")
	a := New([]int64{100}, fs, testLogger())
	ctx := context.Background()

	// Static members stay admins through the outage.
	assert.True(t, a.IsAdmin(ctx, 100))
	// Database-only members are not resolvable while the store is down.
	assert.False(t, a.IsAdmin(ctx, 300))
	assert.False(t, a.IsAdmin(ctx, 999))
}

func TestStaticIDs_Sorted(t *testing.T) {
	a := New([]int64{300, 100, 200}, newFakeAdminStore(), testLogger())
	assert.Equal(t, []int64{100, 200, 300}, a.StaticIDs())
}

func TestSaveAdmins_Reconciles(t *testing.T) {
	fs := newFakeAdminStore()
	fs.admins[1] = "Qoladi"
	fs.admins[2] = "Ketadi"
	a := New(nil, fs, testLogger())
	ctx := context.Background()

	err := a.SaveAdmins(ctx, map[int64]string{
		1: "Qoladi",
		3: "Keladi",
	})
	require.NoError(t, err)

	assert.Equal(t, map[int64]string{1: "Qoladi", 3: "Keladi"}, fs.admins)
}

func TestSaveAdmins_NoChangesIsNoop(t *testing.T) {
	fs := newFakeAdminStore()
	fs.admins[1] = "A"
	a := New(nil, fs, testLogger())

	require.NoError(t, a.SaveAdmins(context.Background(), map[int64]string{1: "A"}))
	assert.Equal(t, map[int64]string{1: "A"}, fs.admins)
}

func TestLoadAdmins(t *testing.T) {
	fs := newFakeAdminStore()
	fs.admins[1] = "A"
	fs.admins[2] = "B"
	a := New(nil, fs, testLogger())

	got, err := a.LoadAdmins(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[1].Name)
	assert.Equal(t, "B", got[2].Name)
}
