package place_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"github.com/rakapradana/place-review/model"
	placerepo "github.com/rakapradana/place-review/repository/place"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "mysql"), mock
}

func searchColumns() []string {
	return []string{"id", "name", "address", "category", "average_rating", "review_count"}
}

func TestPlaceRepository_Search_NoFilters(t *testing.T) {
	db, dbmock := newMockDB(t)
	repo := placerepo.NewPlaceRepository(db)

	query := `SELECT p.id, p.name, p.address, p.category,
COALESCE(AVG(r.rating), 0) AS average_rating,
COUNT(r.id) AS review_count
FROM place p
LEFT JOIN review r ON r.place_id = p.id
WHERE true GROUP BY p.id, p.name, p.address, p.category ORDER BY p.name ASC`

	dbmock.ExpectQuery(regexp.QuoteMeta(query)).
		WillReturnRows(sqlmock.NewRows(searchColumns()).
			AddRow(2, "Anand Clinic", "Park St", "doctor", 0.0, 0).
			AddRow(1, "Star Cafe", "MG Road", "restaurant", 4.0, 2))

	items, err := repo.Search(context.Background(), &model.PlaceSearchFilter{})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("Search() returned %d items, want 2", len(items))
	}
	if items[0].Name != "Anand Clinic" || items[0].AverageRating != 0.0 {
		t.Fatalf("Search() first item = %+v", items[0])
	}
	if items[1].AverageRating != 4.0 || items[1].ReviewCount != 2 {
		t.Fatalf("Search() second item = %+v", items[1])
	}

	if err := dbmock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPlaceRepository_Search_NameAndMinRating(t *testing.T) {
	db, dbmock := newMockDB(t)
	repo := placerepo.NewPlaceRepository(db)

	query := `SELECT p.id, p.name, p.address, p.category,
COALESCE(AVG(r.rating), 0) AS average_rating,
COUNT(r.id) AS review_count
FROM place p
LEFT JOIN review r ON r.place_id = p.id
WHERE true AND LOWER(p.name) LIKE ? GROUP BY p.id, p.name, p.address, p.category HAVING review_count > 0 AND average_rating >= ? ORDER BY CASE
WHEN LOWER(p.name) = ? THEN 0
WHEN LOWER(p.name) LIKE ? THEN 1
ELSE 2 END, p.name ASC`

	dbmock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs("%star%", 4.0, "star", "star%").
		WillReturnRows(sqlmock.NewRows(searchColumns()).
			AddRow(3, "Star", "Main Sq", "restaurant", 4.5, 4).
			AddRow(1, "Star Cafe", "MG Road", "restaurant", 4.0, 2).
			AddRow(5, "Great Star Diner", "5th Ave", "restaurant", 4.2, 3))

	items, err := repo.Search(context.Background(), &model.PlaceSearchFilter{
		Name:         "Star",
		MinRating:    4.0,
		HasMinRating: true,
	})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("Search() returned %d items, want 3", len(items))
	}
	if items[0].Name != "Star" {
		t.Fatalf("Search() first item = %q, want exact match ranked first", items[0].Name)
	}

	if err := dbmock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPlaceRepository_GetByID_NotFound(t *testing.T) {
	db, dbmock := newMockDB(t)
	repo := placerepo.NewPlaceRepository(db)

	dbmock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, address, category FROM place WHERE id = ?`)).
		WithArgs(uint64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "address", "category"}))

	place, err := repo.GetByID(context.Background(), 99)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if place != nil {
		t.Fatalf("GetByID() = %+v, want nil for missing row", place)
	}

	if err := dbmock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

// The plain lookup must not lock: a locking read on an absent (name, address)
// gap-locks the unique index, and two transactions racing to create the same
// place would then deadlock on insert. Only the retry after a duplicate-key
// loss locks, so it sees the winner's committed row.
func TestPlaceRepository_GetByNameAddress_LockingOnlyOnRetry(t *testing.T) {
	db, dbmock := newMockDB(t)
	repo := placerepo.NewPlaceRepository(db)

	dbmock.ExpectBegin()
	dbmock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, address, category FROM place WHERE name = ? AND address = ?`) + `$`).
		WithArgs("Star Cafe", "MG Road").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "address", "category"}))
	dbmock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, address, category FROM place WHERE name = ? AND address = ? FOR UPDATE`)).
		WithArgs("Star Cafe", "MG Road").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "address", "category"}).
			AddRow(11, "Star Cafe", "MG Road", "restaurant"))

	tx, err := db.Beginx()
	if err != nil {
		t.Fatalf("Beginx() error = %v", err)
	}

	place, err := repo.GetByNameAddressTx(context.Background(), tx, "Star Cafe", "MG Road")
	if err != nil {
		t.Fatalf("GetByNameAddressTx() error = %v", err)
	}
	if place != nil {
		t.Fatalf("GetByNameAddressTx() = %+v, want nil for missing row", place)
	}

	place, err = repo.GetByNameAddressForUpdateTx(context.Background(), tx, "Star Cafe", "MG Road")
	if err != nil {
		t.Fatalf("GetByNameAddressForUpdateTx() error = %v", err)
	}
	if place == nil || place.ID != 11 {
		t.Fatalf("GetByNameAddressForUpdateTx() = %+v, want place 11", place)
	}

	if err := dbmock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPlaceRepository_GetAggregate(t *testing.T) {
	db, dbmock := newMockDB(t)
	repo := placerepo.NewPlaceRepository(db)

	dbmock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(AVG(rating), 0) AS average_rating, COUNT(id) AS review_count FROM review WHERE place_id = ?`)).
		WithArgs(uint64(11)).
		WillReturnRows(sqlmock.NewRows([]string{"average_rating", "review_count"}).AddRow(4.0, 2))

	avg, count, err := repo.GetAggregate(context.Background(), 11)
	if err != nil {
		t.Fatalf("GetAggregate() error = %v", err)
	}
	if avg != 4.0 || count != 2 {
		t.Fatalf("GetAggregate() = (%v, %v), want (4.0, 2)", avg, count)
	}

	if err := dbmock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
