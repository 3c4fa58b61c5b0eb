package place

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/rakapradana/place-review/model"
)

type SQL struct {
	conn *sqlx.DB
}

type PlaceRepository interface {
	GetByID(ctx context.Context, id uint64) (*model.PlaceEntity, error)
	GetByNameAddressTx(ctx context.Context, tx *sqlx.Tx, name, address string) (*model.PlaceEntity, error)
	GetByNameAddressForUpdateTx(ctx context.Context, tx *sqlx.Tx, name, address string) (*model.PlaceEntity, error)
	CreateTx(ctx context.Context, tx *sqlx.Tx, req *model.PlaceEntity) (*model.PlaceEntity, error)
	Search(ctx context.Context, filter *model.PlaceSearchFilter) ([]model.PlaceListItem, error)
	GetAggregate(ctx context.Context, placeID uint64) (float64, int64, error)
}

func NewPlaceRepository(conn *sqlx.DB) PlaceRepository {
	return &SQL{conn: conn}
}

const (
	insertPlaceQuery      = `INSERT INTO place (name, address, category) VALUES (?, ?, ?)`
	getPlaceByID          = `SELECT id, name, address, category FROM place WHERE id = ?`
	getPlaceByNameAddress = `SELECT id, name, address, category FROM place WHERE name = ? AND address = ?`
	// Locking read: after a duplicate-key conflict the retry must see the
	// row the winning transaction committed, which a snapshot read cannot.
	// Kept off the first lookup, where locking an absent row gap-locks the
	// unique index and deadlocks concurrent inserts of the same pair.
	getPlaceByNameAddressLocked = getPlaceByNameAddress + ` FOR UPDATE`

	searchPlacesBase = `SELECT p.id, p.name, p.address, p.category,
COALESCE(AVG(r.rating), 0) AS average_rating,
COUNT(r.id) AS review_count
FROM place p
LEFT JOIN review r ON r.place_id = p.id
WHERE true`

	placeAggregateQuery = `SELECT COALESCE(AVG(rating), 0) AS average_rating, COUNT(id) AS review_count FROM review WHERE place_id = ?`
)

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.PlaceEntity, error) {
	var entity model.PlaceEntity
	if err := s.conn.QueryRowxContext(ctx, getPlaceByID, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) GetByNameAddressTx(ctx context.Context, tx *sqlx.Tx, name, address string) (*model.PlaceEntity, error) {
	return getByNameAddress(ctx, tx, getPlaceByNameAddress, name, address)
}

func (s *SQL) GetByNameAddressForUpdateTx(ctx context.Context, tx *sqlx.Tx, name, address string) (*model.PlaceEntity, error) {
	return getByNameAddress(ctx, tx, getPlaceByNameAddressLocked, name, address)
}

func getByNameAddress(ctx context.Context, tx *sqlx.Tx, query, name, address string) (*model.PlaceEntity, error) {
	var entity model.PlaceEntity
	if err := tx.QueryRowxContext(ctx, query, name, address).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.PlaceEntity) (*model.PlaceEntity, error) {
	result, err := tx.ExecContext(ctx, insertPlaceQuery, data.Name, data.Address, data.Category)
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

// Search aggregates each place's reviews and applies the optional filters.
// Ranking with a name filter: exact matches, then prefix matches, then other
// substring matches, alphabetical inside each tier. Without a name filter the
// result is plain alphabetical.
func (s *SQL) Search(ctx context.Context, filter *model.PlaceSearchFilter) ([]model.PlaceListItem, error) {
	query := searchPlacesBase
	args := make([]any, 0, 6)

	name := strings.TrimSpace(filter.Name)
	if name != "" {
		query += " AND LOWER(p.name) LIKE ?"
		args = append(args, "%"+escapeLike(strings.ToLower(name))+"%")
	}
	if filter.Category != "" {
		query += " AND LOWER(p.category) = LOWER(?)"
		args = append(args, filter.Category)
	}

	query += " GROUP BY p.id, p.name, p.address, p.category"

	if filter.HasMinRating {
		// Places with no reviews never pass the rating filter, even at 0.
		query += " HAVING review_count > 0 AND average_rating >= ?"
		args = append(args, filter.MinRating)
	}

	if name != "" {
		query += ` ORDER BY CASE
WHEN LOWER(p.name) = ? THEN 0
WHEN LOWER(p.name) LIKE ? THEN 1
ELSE 2 END, p.name ASC`
		args = append(args, strings.ToLower(name), escapeLike(strings.ToLower(name))+"%")
	} else {
		query += " ORDER BY p.name ASC"
	}

	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.PlaceListItem, 0)
	for rows.Next() {
		var it model.PlaceListItem
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *SQL) GetAggregate(ctx context.Context, placeID uint64) (float64, int64, error) {
	var agg struct {
		AverageRating float64 `db:"average_rating"`
		ReviewCount   int64   `db:"review_count"`
	}
	if err := s.conn.QueryRowxContext(ctx, placeAggregateQuery, placeID).StructScan(&agg); err != nil {
		return 0, 0, err
	}
	return agg.AverageRating, agg.ReviewCount, nil
}

// escapeLike neutralizes LIKE wildcards in user input so they match literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
