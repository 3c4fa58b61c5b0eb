package review

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/rakapradana/place-review/constant"
	"github.com/rakapradana/place-review/model"
	placerepo "github.com/rakapradana/place-review/repository/place"
	reviewrepo "github.com/rakapradana/place-review/repository/review"
	"github.com/rakapradana/place-review/repository/sqlerr"
	txrepo "github.com/rakapradana/place-review/repository/tx"
	"github.com/rakapradana/place-review/thirdparty/rabbitmq"
	"github.com/rakapradana/place-review/utils/errors"
	"github.com/rakapradana/place-review/utils/logger"
)

type ReviewApp interface {
	AddReview(ctx context.Context, userID uint64, req *model.AddReviewRequest) (*model.ReviewResponse, error)
}

type reviewAppImpl struct {
	txRepo     txrepo.TxRepository
	placeRepo  placerepo.PlaceRepository
	reviewRepo reviewrepo.ReviewRepository
	publisher  *rabbitmq.Publisher
}

func NewReviewApp(txRepo txrepo.TxRepository, placeRepo placerepo.PlaceRepository, reviewRepo reviewrepo.ReviewRepository, publisher *rabbitmq.Publisher) ReviewApp {
	return &reviewAppImpl{txRepo: txRepo, placeRepo: placeRepo, reviewRepo: reviewRepo, publisher: publisher}
}

// AddReview records a rating for a place, creating the place on first
// mention of its trimmed (name, address) pair. Place resolution and the
// review insert share one transaction.
func (s *reviewAppImpl) AddReview(ctx context.Context, userID uint64, req *model.AddReviewRequest) (*model.ReviewResponse, error) {
	placeName := strings.TrimSpace(req.PlaceName)
	placeAddress := strings.TrimSpace(req.PlaceAddress)
	if placeName == "" || placeAddress == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	if req.Rating < constant.RatingMin || req.Rating > constant.RatingMax {
		return nil, errors.SetCustomError(constant.ErrInvalidRating)
	}

	category, ok := constant.NormalizeCategory(req.Category)
	if !ok {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[AddReview] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	place, err := s.getOrCreatePlaceTx(ctx, tx, placeName, placeAddress, category)
	if err != nil {
		logger.Error("[AddReview] get or create place", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	reviewEntity := &model.ReviewEntity{
		PlaceID: place.ID,
		UserID:  userID,
		Rating:  req.Rating,
		Text:    req.Text,
	}
	reviewEntity, err = s.reviewRepo.CreateTx(ctx, tx, reviewEntity)
	if err != nil {
		logger.Error("[AddReview] insert review", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[AddReview] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	// Read back through the user join so the response carries the
	// reviewer's current display name.
	res, err := s.reviewRepo.GetResponseByID(ctx, reviewEntity.ID)
	if err != nil || res == nil {
		logger.Error("[AddReview] read back review", zap.Uint64("review_id", reviewEntity.ID))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if s.publisher != nil {
		msg := rabbitmq.ReviewCreatedMessage{
			ReviewID:  res.ID,
			PlaceID:   place.ID,
			UserID:    userID,
			Rating:    res.Rating,
			CreatedAt: res.CreatedAt,
		}
		if err := s.publisher.PublishReviewCreated(msg); err != nil {
			logger.Error("[AddReview] publish review created", zap.String("error", err.Error()))
		}
	}

	return res, nil
}

// getOrCreatePlaceTx resolves a place by its exact (name, address) pair,
// inserting it when absent. The first lookup is a plain consistent read; a
// locking read on a missing row would gap-lock the unique index and two
// concurrent first mentions of the same pair would deadlock on insert. A
// duplicate-key failure means a concurrent request created the pair first;
// the winner's row is re-fetched with a locking read, which is the only way
// to see past this transaction's snapshot.
func (s *reviewAppImpl) getOrCreatePlaceTx(ctx context.Context, tx *sqlx.Tx, name, address, category string) (*model.PlaceEntity, error) {
	place, err := s.placeRepo.GetByNameAddressTx(ctx, tx, name, address)
	if err != nil {
		return nil, err
	}
	if place != nil {
		return place, nil
	}

	place, err = s.placeRepo.CreateTx(ctx, tx, &model.PlaceEntity{
		Name:     name,
		Address:  address,
		Category: category,
	})
	if err == nil {
		return place, nil
	}
	if !sqlerr.IsDuplicateEntry(err) {
		return nil, err
	}

	place, err = s.placeRepo.GetByNameAddressForUpdateTx(ctx, tx, name, address)
	if err != nil {
		return nil, err
	}
	if place == nil {
		return nil, fmt.Errorf("place insert conflicted but (%q, %q) not found", name, address)
	}
	return place, nil
}
