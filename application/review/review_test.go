package review_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/mock"

	appreview "github.com/rakapradana/place-review/application/review"
	"github.com/rakapradana/place-review/constant"
	placemocks "github.com/rakapradana/place-review/mocks/repository/place"
	reviewmocks "github.com/rakapradana/place-review/mocks/repository/review"
	txmocks "github.com/rakapradana/place-review/mocks/repository/tx"
	"github.com/rakapradana/place-review/model"
	cerr "github.com/rakapradana/place-review/utils/errors"
)

func duplicateEntryErr() error {
	return &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
}

func TestReviewApp_AddReview(t *testing.T) {
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	type fields struct {
		txRepo     *txmocks.TxRepository
		placeRepo  *placemocks.PlaceRepository
		reviewRepo *reviewmocks.ReviewRepository
	}
	type args struct {
		ctx    context.Context
		userID uint64
		req    *model.AddReviewRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.ReviewResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: review for a new place, trimmed input, default category",
			fields: fields{
				txRepo:     txmocks.NewTxRepository(t),
				placeRepo:  placemocks.NewPlaceRepository(t),
				reviewRepo: reviewmocks.NewReviewRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 7,
				req: &model.AddReviewRequest{
					PlaceName:    "  Star Cafe ",
					PlaceAddress: " MG Road  ",
					Rating:       5,
					Text:         "great coffee",
				},
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, nil).Once()
				f.txRepo.On("CommitTx", mock.Anything).Return(nil).Once()

				f.placeRepo.
					On("GetByNameAddressTx", mock.Anything, mock.Anything, "Star Cafe", "MG Road").
					Return(nil, nil).
					Once()

				f.placeRepo.
					On("CreateTx", mock.Anything, mock.Anything, mock.MatchedBy(func(ent *model.PlaceEntity) bool {
						return ent.Name == "Star Cafe" && ent.Address == "MG Road" && ent.Category == "other"
					})).
					Return(&model.PlaceEntity{ID: 11, Name: "Star Cafe", Address: "MG Road", Category: "other"}, nil).
					Once()

				f.reviewRepo.
					On("CreateTx", mock.Anything, mock.Anything, mock.MatchedBy(func(ent *model.ReviewEntity) bool {
						return ent.PlaceID == 11 && ent.UserID == 7 && ent.Rating == 5 && ent.Text == "great coffee"
					})).
					Return(&model.ReviewEntity{ID: 21, PlaceID: 11, UserID: 7, Rating: 5, Text: "great coffee"}, nil).
					Once()

				f.reviewRepo.
					On("GetResponseByID", mock.Anything, uint64(21)).
					Return(&model.ReviewResponse{
						ID:        21,
						Rating:    5,
						Text:      "great coffee",
						UserName:  "Test User",
						CreatedAt: createdAt,
					}, nil).
					Once()
			},
			want: &model.ReviewResponse{
				ID:        21,
				Rating:    5,
				Text:      "great coffee",
				UserName:  "Test User",
				CreatedAt: createdAt,
			},
		},
		{
			name: "success: second review reuses the existing place",
			fields: fields{
				txRepo:     txmocks.NewTxRepository(t),
				placeRepo:  placemocks.NewPlaceRepository(t),
				reviewRepo: reviewmocks.NewReviewRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 8,
				req: &model.AddReviewRequest{
					PlaceName:    "Star Cafe",
					PlaceAddress: "MG Road",
					Rating:       3,
				},
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, nil).Once()
				f.txRepo.On("CommitTx", mock.Anything).Return(nil).Once()

				f.placeRepo.
					On("GetByNameAddressTx", mock.Anything, mock.Anything, "Star Cafe", "MG Road").
					Return(&model.PlaceEntity{ID: 11, Name: "Star Cafe", Address: "MG Road", Category: "other"}, nil).
					Once()

				f.reviewRepo.
					On("CreateTx", mock.Anything, mock.Anything, mock.MatchedBy(func(ent *model.ReviewEntity) bool {
						return ent.PlaceID == 11 && ent.UserID == 8 && ent.Rating == 3 && ent.Text == ""
					})).
					Return(&model.ReviewEntity{ID: 22, PlaceID: 11, UserID: 8, Rating: 3}, nil).
					Once()

				f.reviewRepo.
					On("GetResponseByID", mock.Anything, uint64(22)).
					Return(&model.ReviewResponse{ID: 22, Rating: 3, UserName: "Other User", CreatedAt: createdAt}, nil).
					Once()
			},
			want: &model.ReviewResponse{ID: 22, Rating: 3, UserName: "Other User", CreatedAt: createdAt},
		},
		{
			name: "success: lost place insert race falls back to the winner's row",
			fields: fields{
				txRepo:     txmocks.NewTxRepository(t),
				placeRepo:  placemocks.NewPlaceRepository(t),
				reviewRepo: reviewmocks.NewReviewRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 7,
				req: &model.AddReviewRequest{
					PlaceName:    "Star Cafe",
					PlaceAddress: "MG Road",
					Rating:       4,
				},
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, nil).Once()
				f.txRepo.On("CommitTx", mock.Anything).Return(nil).Once()

				f.placeRepo.
					On("GetByNameAddressTx", mock.Anything, mock.Anything, "Star Cafe", "MG Road").
					Return(nil, nil).
					Once()

				f.placeRepo.
					On("CreateTx", mock.Anything, mock.Anything, mock.AnythingOfType("*model.PlaceEntity")).
					Return(nil, duplicateEntryErr()).
					Once()

				// Only the retry after the lost insert may take a locking read.
				f.placeRepo.
					On("GetByNameAddressForUpdateTx", mock.Anything, mock.Anything, "Star Cafe", "MG Road").
					Return(&model.PlaceEntity{ID: 11, Name: "Star Cafe", Address: "MG Road", Category: "other"}, nil).
					Once()

				f.reviewRepo.
					On("CreateTx", mock.Anything, mock.Anything, mock.MatchedBy(func(ent *model.ReviewEntity) bool {
						return ent.PlaceID == 11
					})).
					Return(&model.ReviewEntity{ID: 23, PlaceID: 11, UserID: 7, Rating: 4}, nil).
					Once()

				f.reviewRepo.
					On("GetResponseByID", mock.Anything, uint64(23)).
					Return(&model.ReviewResponse{ID: 23, Rating: 4, UserName: "Test User", CreatedAt: createdAt}, nil).
					Once()
			},
			want: &model.ReviewResponse{ID: 23, Rating: 4, UserName: "Test User", CreatedAt: createdAt},
		},
		{
			name: "error: rating below range",
			fields: fields{
				txRepo:     txmocks.NewTxRepository(t),
				placeRepo:  placemocks.NewPlaceRepository(t),
				reviewRepo: reviewmocks.NewReviewRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 7,
				req: &model.AddReviewRequest{
					PlaceName:    "Star Cafe",
					PlaceAddress: "MG Road",
					Rating:       0,
				},
			},
			wantErr: true,
			errCode: constant.ErrInvalidRating,
		},
		{
			name: "error: rating above range",
			fields: fields{
				txRepo:     txmocks.NewTxRepository(t),
				placeRepo:  placemocks.NewPlaceRepository(t),
				reviewRepo: reviewmocks.NewReviewRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 7,
				req: &model.AddReviewRequest{
					PlaceName:    "Star Cafe",
					PlaceAddress: "MG Road",
					Rating:       6,
				},
			},
			wantErr: true,
			errCode: constant.ErrInvalidRating,
		},
		{
			name: "error: unknown non-blank category is rejected",
			fields: fields{
				txRepo:     txmocks.NewTxRepository(t),
				placeRepo:  placemocks.NewPlaceRepository(t),
				reviewRepo: reviewmocks.NewReviewRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 7,
				req: &model.AddReviewRequest{
					PlaceName:    "Star Cafe",
					PlaceAddress: "MG Road",
					Rating:       5,
					Category:     "gymnasium",
				},
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: place name blank after trimming",
			fields: fields{
				txRepo:     txmocks.NewTxRepository(t),
				placeRepo:  placemocks.NewPlaceRepository(t),
				reviewRepo: reviewmocks.NewReviewRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 7,
				req: &model.AddReviewRequest{
					PlaceName:    "   ",
					PlaceAddress: "MG Road",
					Rating:       5,
				},
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: commit fails",
			fields: fields{
				txRepo:     txmocks.NewTxRepository(t),
				placeRepo:  placemocks.NewPlaceRepository(t),
				reviewRepo: reviewmocks.NewReviewRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 7,
				req: &model.AddReviewRequest{
					PlaceName:    "Star Cafe",
					PlaceAddress: "MG Road",
					Rating:       5,
				},
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, nil).Once()
				f.txRepo.On("CommitTx", mock.Anything).Return(errors.New("commit failed")).Once()
				f.txRepo.On("RollbackTx", mock.Anything).Return(nil).Once()

				f.placeRepo.
					On("GetByNameAddressTx", mock.Anything, mock.Anything, "Star Cafe", "MG Road").
					Return(&model.PlaceEntity{ID: 11}, nil).
					Once()

				f.reviewRepo.
					On("CreateTx", mock.Anything, mock.Anything, mock.AnythingOfType("*model.ReviewEntity")).
					Return(&model.ReviewEntity{ID: 24, PlaceID: 11, UserID: 7, Rating: 5}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appreview.NewReviewApp(tt.fields.txRepo, tt.fields.placeRepo, tt.fields.reviewRepo, nil)

			got, err := app.AddReview(tt.args.ctx, tt.args.userID, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AddReview() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("AddReview() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
