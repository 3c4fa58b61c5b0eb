package review

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/rakapradana/place-review/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ReviewRepository interface {
	CreateTx(ctx context.Context, tx *sqlx.Tx, req *model.ReviewEntity) (*model.ReviewEntity, error)
	GetResponseByID(ctx context.Context, id uint64) (*model.ReviewResponse, error)
	ListByPlace(ctx context.Context, placeID, requestingUserID uint64) ([]model.ReviewResponse, error)
}

func NewReviewRepository(conn *sqlx.DB) ReviewRepository {
	return &SQL{conn: conn}
}

const (
	insertReviewQuery = `INSERT INTO review (place_id, user_id, rating, text, created_at) VALUES (?, ?, ?, ?, NOW())`

	// Reviewer name is joined at read time so a renamed user shows up
	// correctly on old reviews.
	getReviewResponseByID = `SELECT r.id, r.rating, r.text, u.name AS user_name, r.created_at
FROM review r
JOIN user u ON u.id = r.user_id
WHERE r.id = ?`

	listReviewsByPlace = `SELECT r.id, r.rating, r.text, u.name AS user_name, r.created_at
FROM review r
JOIN user u ON u.id = r.user_id
WHERE r.place_id = ?
ORDER BY (r.user_id = ?) DESC, r.created_at DESC, r.id DESC`
)

func (s *SQL) CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.ReviewEntity) (*model.ReviewEntity, error) {
	result, err := tx.ExecContext(ctx, insertReviewQuery, data.PlaceID, data.UserID, data.Rating, data.Text)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) GetResponseByID(ctx context.Context, id uint64) (*model.ReviewResponse, error) {
	var res model.ReviewResponse
	if err := s.conn.QueryRowxContext(ctx, getReviewResponseByID, id).StructScan(&res); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &res, nil
}

// ListByPlace returns the place's reviews with the requesting user's own
// reviews first, newest-first inside each group.
func (s *SQL) ListByPlace(ctx context.Context, placeID, requestingUserID uint64) ([]model.ReviewResponse, error) {
	rows, err := s.conn.QueryxContext(ctx, listReviewsByPlace, placeID, requestingUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ReviewResponse, 0)
	for rows.Next() {
		var it model.ReviewResponse
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
