package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	authapp "github.com/rakapradana/place-review/application/auth"
	healthapp "github.com/rakapradana/place-review/application/health"
	placeapp "github.com/rakapradana/place-review/application/place"
	reviewapp "github.com/rakapradana/place-review/application/review"
	"github.com/rakapradana/place-review/constant"
	"github.com/rakapradana/place-review/model"
	utilsContext "github.com/rakapradana/place-review/utils/context"
	"github.com/rakapradana/place-review/utils/errors"
	validatorx "github.com/rakapradana/place-review/utils/validator"
)

type RestHandler struct {
	AuthApp   authapp.AuthApp
	ReviewApp reviewapp.ReviewApp
	PlaceApp  placeapp.PlaceApp
	HealthApp healthapp.HealthApp
}

func NewTransport(authApp authapp.AuthApp, reviewApp reviewapp.ReviewApp, placeApp placeapp.PlaceApp, healthApp healthapp.HealthApp, internalAPIKey string) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		AuthApp:   authApp,
		ReviewApp: reviewApp,
		PlaceApp:  placeApp,
		HealthApp: healthApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/api/auth/register/", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/api/auth/login/", rh.Login).Methods(http.MethodPost)

	// Protected routes
	mux.HandleFunc("/api/reviews/add/", rh.AddReview).Methods(http.MethodPost)
	mux.HandleFunc("/api/places/search/", rh.SearchPlaces).Methods(http.MethodGet)
	mux.HandleFunc("/api/places/{id:[0-9]+}/", rh.PlaceDetail).Methods(http.MethodGet)

	// Internal routes, guarded by static API key instead of user tokens
	internal := mux.PathPrefix("/internal").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/health", rh.Health).Methods(http.MethodGet)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(authApp))

	return mux
}

// Register handler
// @Summary Register user
// @Description Register a new user with name, phone and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 201 {object} model.RegisterResponse
// @Failure 400 {object} errorResponse
// @Router /api/auth/register/ [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetValidationError(validatorx.FieldErrors(err)))
		return
	}

	res, err := s.AuthApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, res)
}

// Login handler
// @Summary Login user
// @Description Login with phone and password, returns the user's opaque token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} errorResponse
// @Router /api/auth/login/ [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetValidationError(validatorx.FieldErrors(err)))
		return
	}

	res, err := s.AuthApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// AddReview handler
// @Summary Add a review
// @Description Rate a place by name and address, creating the place on first mention
// @Tags Reviews
// @Accept json
// @Produce json
// @Param request body model.AddReviewRequest true "Add Review Request"
// @Success 201 {object} model.ReviewResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Security BearerAuth
// @Router /api/reviews/add/ [post]
func (s *RestHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.AddReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetValidationError(validatorx.FieldErrors(err)))
		return
	}

	res, err := s.ReviewApp.AddReview(ctx, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, res)
}

// SearchPlaces handler
// @Summary Search places
// @Description Filter places by name substring, minimum average rating and category
// @Tags Places
// @Produce json
// @Param name query string false "Name substring"
// @Param min_rating query string false "Minimum average rating"
// @Param category query string false "Category"
// @Success 200 {object} model.PlaceSearchResponse
// @Failure 401 {object} errorResponse
// @Security BearerAuth
// @Router /api/places/search/ [get]
func (s *RestHandler) SearchPlaces(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q := r.URL.Query()
	res, err := s.PlaceApp.Search(ctx, q.Get("name"), q.Get("min_rating"), q.Get("category"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// PlaceDetail handler
// @Summary Place detail
// @Description One place with its reviews, the requesting user's own reviews first
// @Tags Places
// @Produce json
// @Param id path int true "Place ID"
// @Success 200 {object} model.PlaceDetail
// @Failure 401 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Security BearerAuth
// @Router /api/places/{id}/ [get]
func (s *RestHandler) PlaceDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	placeID, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrNotFound))
		return
	}

	res, err := s.PlaceApp.GetPlaceDetail(ctx, placeID, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// Health handler for internal monitoring
func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.HealthApp.Check(r.Context()))
}
