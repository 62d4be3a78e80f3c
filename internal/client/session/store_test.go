package session

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/dmitrijs2005/planandgo/internal/client/models"
	"github.com/stretchr/testify/require"
)

func openSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	s, db, err := Open(context.Background(), filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return s
}

func stores(t *testing.T) map[string]Store {
	return map[string]Store{
		"memory": NewMemoryStore(),
		"sqlite": openSQLite(t),
	}
}

func TestStore_EmptySession(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			a, err := s.AccessToken(ctx)
			require.NoError(t, err)
			require.Empty(t, a)

			r, err := s.RefreshToken(ctx)
			require.NoError(t, err)
			require.Empty(t, r)

			u, err := s.User(ctx)
			require.NoError(t, err)
			require.True(t, u.IsZero())
		})
	}
}

func TestStore_Lifecycle(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			user := models.UserProfile(`{"id":1,"username":"alice"}`)

			require.NoError(t, s.SetTokens(ctx, "A1", "R1"))
			require.NoError(t, s.SetUser(ctx, user))

			require.NoError(t, s.SetAccessToken(ctx, "A2"))
			a, _ := s.AccessToken(ctx)
			r, _ := s.RefreshToken(ctx)
			require.Equal(t, "A2", a)
			require.Equal(t, "R1", r)

			u, err := s.User(ctx)
			require.NoError(t, err)
			require.JSONEq(t, string(user), string(u))

			require.NoError(t, s.ClearTokens(ctx))
			a, _ = s.AccessToken(ctx)
			r, _ = s.RefreshToken(ctx)
			require.Empty(t, a)
			require.Empty(t, r)
			u, _ = s.User(ctx)
			require.False(t, u.IsZero(), "ClearTokens keeps the profile")

			require.NoError(t, s.SetTokens(ctx, "A3", "R3"))
			require.NoError(t, s.Clear(ctx))
			a, _ = s.AccessToken(ctx)
			r, _ = s.RefreshToken(ctx)
			u, _ = s.User(ctx)
			require.Empty(t, a)
			require.Empty(t, r)
			require.True(t, u.IsZero())
		})
	}
}

func TestStore_ConcurrentWritersLastWriteWins(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			var wg sync.WaitGroup
			for i := 0; i < 8; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					require.NoError(t, s.SetAccessToken(ctx, "A"))
				}()
			}
			wg.Wait()

			a, err := s.AccessToken(ctx)
			require.NoError(t, err)
			require.Equal(t, "A", a)
		})
	}
}

func TestSQLiteStore_UsesMobileKeys(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "state.db")
	s, db, err := Open(ctx, dsn)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, s.SetTokens(ctx, "A1", "R1"))
	require.NoError(t, s.SetUser(ctx, models.UserProfile(`{"username":"alice"}`)))

	rows, err := db.QueryContext(ctx, `SELECT key, value FROM metadata ORDER BY key`)
	require.NoError(t, err)
	defer rows.Close()

	got := map[string]string{}
	for rows.Next() {
		var k string
		var v []byte
		require.NoError(t, rows.Scan(&k, &v))
		got[k] = string(v)
	}
	require.NoError(t, rows.Err())
	require.Equal(t, map[string]string{
		"accessToken":  "A1",
		"refreshToken": "R1",
		"user":         `{"username":"alice"}`,
	}, got)
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "state.db")

	s, db, err := Open(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, s.SetTokens(ctx, "A1", "R1"))
	require.NoError(t, db.Close())

	s, db, err = Open(ctx, dsn)
	require.NoError(t, err)
	defer db.Close()

	a, err := s.AccessToken(ctx)
	require.NoError(t, err)
	require.Equal(t, "A1", a)
}

func TestSQLiteStore_SetZeroUserDeletesKey(t *testing.T) {
	s := openSQLite(t)
	ctx := context.Background()

	require.NoError(t, s.SetUser(ctx, models.UserProfile(`{"id":1}`)))
	require.NoError(t, s.SetUser(ctx, nil))

	u, err := s.User(ctx)
	require.NoError(t, err)
	require.Nil(t, u)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	ctx := context.Background()
	_, db, err := Open(ctx, filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(ctx, db))
}
