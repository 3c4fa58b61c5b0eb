package health

import (
	"context"

	"github.com/jmoiron/sqlx"

	redisrepo "github.com/rakapradana/place-review/repository/redis"
)

type HealthApp interface {
	Check(ctx context.Context) map[string]string
}

type healthAppImpl struct {
	db        *sqlx.DB
	redisRepo redisrepo.Repository
}

func NewHealthApp(db *sqlx.DB, redisRepo redisrepo.Repository) HealthApp {
	return &healthAppImpl{db: db, redisRepo: redisRepo}
}

// Check pings the backing stores and reports per-dependency status.
func (s *healthAppImpl) Check(ctx context.Context) map[string]string {
	status := map[string]string{
		"database": "ok",
		"redis":    "ok",
	}

	if err := s.db.PingContext(ctx); err != nil {
		status["database"] = err.Error()
	}
	if err := s.redisRepo.Ping(ctx); err != nil {
		status["redis"] = err.Error()
	}

	return status
}
