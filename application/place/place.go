package place

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/rakapradana/place-review/constant"
	"github.com/rakapradana/place-review/model"
	placerepo "github.com/rakapradana/place-review/repository/place"
	reviewrepo "github.com/rakapradana/place-review/repository/review"
	"github.com/rakapradana/place-review/utils/errors"
	"github.com/rakapradana/place-review/utils/logger"
)

type PlaceApp interface {
	Search(ctx context.Context, name, minRating, category string) (*model.PlaceSearchResponse, error)
	GetPlaceDetail(ctx context.Context, placeID, requestingUserID uint64) (*model.PlaceDetail, error)
}

type placeAppImpl struct {
	placeRepo  placerepo.PlaceRepository
	reviewRepo reviewrepo.ReviewRepository
}

func NewPlaceApp(placeRepo placerepo.PlaceRepository, reviewRepo reviewrepo.ReviewRepository) PlaceApp {
	return &placeAppImpl{placeRepo: placeRepo, reviewRepo: reviewRepo}
}

// Search filters places by name substring, minimum average rating, and
// category. Filters arrive as raw query-param strings; an unparseable
// min_rating is skipped rather than rejected, so search stays tolerant of
// malformed clients.
func (s *placeAppImpl) Search(ctx context.Context, name, minRating, category string) (*model.PlaceSearchResponse, error) {
	filter := &model.PlaceSearchFilter{Name: name}

	if minRating != "" {
		if v, err := strconv.ParseFloat(minRating, 64); err == nil {
			filter.MinRating = v
			filter.HasMinRating = true
		}
	}

	// Unknown categories are still applied; they simply match nothing.
	filter.Category = category

	items, err := s.placeRepo.Search(ctx, filter)
	if err != nil {
		logger.Error("[Search] err placeRepo.Search", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.PlaceSearchResponse{Items: items}, nil
}

// GetPlaceDetail returns one place with its aggregate rating and reviews,
// the requesting user's own reviews first.
func (s *placeAppImpl) GetPlaceDetail(ctx context.Context, placeID, requestingUserID uint64) (*model.PlaceDetail, error) {
	place, err := s.placeRepo.GetByID(ctx, placeID)
	if err != nil {
		logger.Error("[GetPlaceDetail] err placeRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if place == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	avg, count, err := s.placeRepo.GetAggregate(ctx, placeID)
	if err != nil {
		logger.Error("[GetPlaceDetail] err placeRepo.GetAggregate", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	reviews, err := s.reviewRepo.ListByPlace(ctx, placeID, requestingUserID)
	if err != nil {
		logger.Error("[GetPlaceDetail] err reviewRepo.ListByPlace", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.PlaceDetail{
		ID:            place.ID,
		Name:          place.Name,
		Address:       place.Address,
		Category:      place.Category,
		AverageRating: avg,
		ReviewCount:   count,
		Reviews:       reviews,
	}, nil
}
