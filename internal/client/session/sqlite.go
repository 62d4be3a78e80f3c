package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/planandgo/internal/client/migrations"
	"github.com/dmitrijs2005/planandgo/internal/client/models"
	"github.com/dmitrijs2005/planandgo/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/planandgo/internal/common"
	"github.com/dmitrijs2005/planandgo/internal/dbx"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

// SQLiteStore persists the session in the metadata table of the local state
// database under the keys accessToken, refreshToken and user.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Open opens (creating if needed) the state database at dsn, applies the
// embedded migrations and returns a store over it. Close the returned
// *sql.DB when done.
func Open(ctx context.Context, dsn string) (*SQLiteStore, *sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open state db: %w", err)
	}
	// One connection: SQLite serialises writers anyway, and ":memory:" DSNs
	// are per-connection.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migrate state db: %w", err)
	}

	return NewSQLiteStore(db), db, nil
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}

func (s *SQLiteStore) repo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

func (s *SQLiteStore) getString(ctx context.Context, key string) (string, error) {
	v, err := s.repo(s.db).Get(ctx, key)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (s *SQLiteStore) AccessToken(ctx context.Context) (string, error) {
	return s.getString(ctx, common.AccessTokenKey)
}

func (s *SQLiteStore) RefreshToken(ctx context.Context) (string, error) {
	return s.getString(ctx, common.RefreshTokenKey)
}

func (s *SQLiteStore) User(ctx context.Context) (models.UserProfile, error) {
	v, err := s.repo(s.db).Get(ctx, common.UserKey)
	if err != nil {
		return nil, err
	}
	if len(v) == 0 {
		return nil, nil
	}
	return models.UserProfile(v), nil
}

func (s *SQLiteStore) SetTokens(ctx context.Context, access, refresh string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := s.repo(tx)
		if err := r.Set(ctx, common.AccessTokenKey, []byte(access)); err != nil {
			return err
		}
		return r.Set(ctx, common.RefreshTokenKey, []byte(refresh))
	})
}

func (s *SQLiteStore) SetAccessToken(ctx context.Context, access string) error {
	return s.repo(s.db).Set(ctx, common.AccessTokenKey, []byte(access))
}

func (s *SQLiteStore) SetUser(ctx context.Context, u models.UserProfile) error {
	if u.IsZero() {
		return s.repo(s.db).Delete(ctx, common.UserKey)
	}
	return s.repo(s.db).Set(ctx, common.UserKey, []byte(u))
}

func (s *SQLiteStore) ClearTokens(ctx context.Context) error {
	return s.repo(s.db).Delete(ctx, common.AccessTokenKey, common.RefreshTokenKey)
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	return s.repo(s.db).Delete(ctx, common.AccessTokenKey, common.RefreshTokenKey, common.UserKey)
}
