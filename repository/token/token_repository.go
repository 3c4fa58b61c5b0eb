package token

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/rakapradana/place-review/model"
)

type SQL struct {
	conn *sqlx.DB
}

// TokenRepository persists the 1:1 user↔token binding. user_id carries a
// unique constraint so concurrent first logins converge on a single token.
type TokenRepository interface {
	Create(ctx context.Context, req *model.AuthTokenEntity) error
	GetByUser(ctx context.Context, userID uint64) (*model.AuthTokenEntity, error)
	GetByToken(ctx context.Context, token string) (*model.AuthTokenEntity, error)
}

func NewTokenRepository(conn *sqlx.DB) TokenRepository {
	return &SQL{conn: conn}
}

const (
	insertTokenQuery   = `INSERT INTO auth_token (token, user_id, created_at) VALUES (?, ?, NOW())`
	getTokenByUser     = `SELECT token, user_id, created_at FROM auth_token WHERE user_id = ?`
	getTokenByTokenKey = `SELECT token, user_id, created_at FROM auth_token WHERE token = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.AuthTokenEntity) error {
	_, err := s.conn.ExecContext(ctx, insertTokenQuery, data.Token, data.UserID)
	return err
}

func (s *SQL) GetByUser(ctx context.Context, userID uint64) (*model.AuthTokenEntity, error) {
	var entity model.AuthTokenEntity
	if err := s.conn.QueryRowxContext(ctx, getTokenByUser, userID).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) GetByToken(ctx context.Context, token string) (*model.AuthTokenEntity, error) {
	var entity model.AuthTokenEntity
	if err := s.conn.QueryRowxContext(ctx, getTokenByTokenKey, token).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}
