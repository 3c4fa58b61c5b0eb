package main

import (
	"database/sql"
	"fmt"
	"math/rand"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/rakapradana/place-review/cmd/config"
	"github.com/rakapradana/place-review/utils/logger"
)

// Populates the database with sample users, places, and reviews for local
// development. Safe to run repeatedly; existing rows are reused.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	if err := seed(db); err != nil {
		logger.Fatal("err seed data", zap.Error(err))
	}

	logger.Info("sample data populated")
}

type placeSpec struct {
	name, address, category string
}

var placeSpecs = []placeSpec{
	{"Star Cafe", "MG Road, Bangalore", "restaurant"},
	{"Health Plus Clinic", "Indiranagar, Bangalore", "doctor"},
	{"Book World", "Brigade Road, Bangalore", "shop"},
	{"Daily Mart", "HSR Layout, Bangalore", "shop"},
	{"Tasty Bites", "Koramangala, Bangalore", "restaurant"},
}

var reviewTexts = []string{
	"Great service and friendly staff.",
	"Average experience, could be better.",
	"Loved it! Highly recommend.",
	"Not satisfied with the quality.",
	"Good value for money.",
}

func seed(db *sqlx.DB) error {
	// Fixed seed keeps repeated runs producing the same sample data.
	rng := rand.New(rand.NewSource(42))

	passwordHash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	userIDs := make([]uint64, 0, 10)
	for i := 0; i < 10; i++ {
		phone := fmt.Sprintf("900000000%d", i)
		id, err := getOrCreateUser(db, fmt.Sprintf("User %d", i), phone, string(passwordHash))
		if err != nil {
			return err
		}
		userIDs = append(userIDs, id)
	}

	placeIDs := make([]uint64, 0, len(placeSpecs))
	for _, spec := range placeSpecs {
		id, err := getOrCreatePlace(db, spec)
		if err != nil {
			return err
		}
		placeIDs = append(placeIDs, id)
	}

	for _, placeID := range placeIDs {
		for _, userID := range userIDs {
			if rng.Float64() >= 0.7 {
				continue
			}
			rating := rng.Intn(5) + 1
			text := reviewTexts[rng.Intn(len(reviewTexts))]
			createdAt := time.Now().AddDate(0, 0, -rng.Intn(61))
			if err := createReviewOnce(db, placeID, userID, rating, text, createdAt); err != nil {
				return err
			}
		}
	}

	return nil
}

func getOrCreateUser(db *sqlx.DB, name, phone, passwordHash string) (uint64, error) {
	var id uint64
	err := db.Get(&id, `SELECT id FROM user WHERE phone = ?`, phone)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, err
	}

	res, err := db.Exec(
		`INSERT INTO user (name, phone, password_hash, is_active, created_at) VALUES (?, ?, ?, true, NOW())`,
		name, phone, passwordHash,
	)
	if err != nil {
		return 0, err
	}
	lastID, err := res.LastInsertId()
	return uint64(lastID), err
}

func getOrCreatePlace(db *sqlx.DB, spec placeSpec) (uint64, error) {
	var id uint64
	err := db.Get(&id, `SELECT id FROM place WHERE name = ? AND address = ?`, spec.name, spec.address)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, err
	}

	res, err := db.Exec(
		`INSERT INTO place (name, address, category) VALUES (?, ?, ?)`,
		spec.name, spec.address, spec.category,
	)
	if err != nil {
		return 0, err
	}
	lastID, err := res.LastInsertId()
	return uint64(lastID), err
}

// createReviewOnce inserts at most one seeded review per (place, user) pair,
// backdated so detail pages show a spread of ages.
func createReviewOnce(db *sqlx.DB, placeID, userID uint64, rating int, text string, createdAt time.Time) error {
	var existing uint64
	err := db.Get(&existing, `SELECT id FROM review WHERE place_id = ? AND user_id = ? LIMIT 1`, placeID, userID)
	if err == nil {
		return nil
	}
	if err != sql.ErrNoRows {
		return err
	}

	_, err = db.Exec(
		`INSERT INTO review (place_id, user_id, rating, text, created_at) VALUES (?, ?, ?, ?, ?)`,
		placeID, userID, rating, text, createdAt,
	)
	return err
}
