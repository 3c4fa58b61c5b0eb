package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/rakapradana/place-review/constant"
	"github.com/rakapradana/place-review/model"
	redisrepo "github.com/rakapradana/place-review/repository/redis"
	"github.com/rakapradana/place-review/repository/sqlerr"
	tokenrepo "github.com/rakapradana/place-review/repository/token"
	userrepo "github.com/rakapradana/place-review/repository/user"
	"github.com/rakapradana/place-review/utils/errors"
	"github.com/rakapradana/place-review/utils/logger"
)

type AuthApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	ResolveToken(ctx context.Context, token string) (uint64, error)
}

type AuthAppImpl struct {
	userRepo  userrepo.UserRepository
	tokenRepo tokenrepo.TokenRepository
	redisRepo redisrepo.Repository
}

func NewAuthApp(userRepo userrepo.UserRepository, tokenRepo tokenrepo.TokenRepository, redisRepo redisrepo.Repository) AuthApp {
	return &AuthAppImpl{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		redisRepo: redisRepo,
	}
}

// dummyHash is compared against when the phone is unknown, so a failed login
// costs one bcrypt comparison whether or not the phone is registered.
var dummyHash = func() []byte {
	h, err := bcrypt.GenerateFromPassword([]byte("timing-equalizer"), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("bcrypt dummy hash: %v", err))
	}
	return h
}()

func (s *AuthAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error) {
	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Phone: req.Phone})
	if err != nil {
		logger.Error("[Register] err userRepo.Get phone", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		return nil, errors.SetCustomError(constant.ErrPhoneExists)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[Register] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	userEntity := &model.UserEntity{
		Name:         req.Name,
		Phone:        req.Phone,
		PasswordHash: string(hashedPassword),
		IsActive:     true,
	}

	userEntity, err = s.userRepo.Create(ctx, userEntity)
	if err != nil {
		// Lost a race against a concurrent registration on the same phone.
		if sqlerr.IsDuplicateEntry(err) {
			return nil, errors.SetCustomError(constant.ErrPhoneExists)
		}
		logger.Error("[Register] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.RegisterResponse{
		ID:    userEntity.ID,
		Name:  userEntity.Name,
		Phone: userEntity.Phone,
	}, nil
}

func (s *AuthAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Phone: req.Phone})
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if user == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(req.Password))
		return nil, errors.SetCustomError(constant.ErrInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidCredentials)
	}

	if !user.IsActive {
		return nil, errors.SetCustomError(constant.ErrInvalidCredentials)
	}

	token, err := s.issueToken(ctx, user.ID)
	if err != nil {
		logger.Error("[Login] err issueToken", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{Token: token}, nil
}

// issueToken returns the user's existing token, creating one on first login.
// The unique constraint on auth_token.user_id makes concurrent first logins
// converge on a single token.
func (s *AuthAppImpl) issueToken(ctx context.Context, userID uint64) (string, error) {
	existing, err := s.tokenRepo.GetByUser(ctx, userID)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return existing.Token, nil
	}

	token, err := generateToken()
	if err != nil {
		return "", err
	}

	if err := s.tokenRepo.Create(ctx, &model.AuthTokenEntity{Token: token, UserID: userID}); err != nil {
		if sqlerr.IsDuplicateEntry(err) {
			existing, err = s.tokenRepo.GetByUser(ctx, userID)
			if err != nil {
				return "", err
			}
			if existing == nil {
				return "", fmt.Errorf("token insert conflicted but no token found for user %d", userID)
			}
			return existing.Token, nil
		}
		return "", err
	}

	if err := s.redisRepo.SetUserIDByToken(ctx, token, userID); err != nil {
		logger.Warn("[issueToken] err redis SetUserIDByToken", zap.String("error", err.Error()))
	}

	return token, nil
}

// ResolveToken maps a bearer token back to an active user id. The Redis
// cache is consulted first; misses and cache errors fall through to the
// auth_token table.
func (s *AuthAppImpl) ResolveToken(ctx context.Context, token string) (uint64, error) {
	if token == "" {
		return 0, errors.SetCustomError(constant.ErrUnauthorize)
	}

	userID, found, err := s.redisRepo.GetUserIDByToken(ctx, token)
	if err != nil {
		logger.Warn("[ResolveToken] err redis GetUserIDByToken", zap.String("error", err.Error()))
	}
	if found {
		return s.requireActiveUser(ctx, userID)
	}

	binding, err := s.tokenRepo.GetByToken(ctx, token)
	if err != nil {
		logger.Error("[ResolveToken] err tokenRepo.GetByToken", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	if binding == nil {
		return 0, errors.SetCustomError(constant.ErrUnauthorize)
	}

	if err := s.redisRepo.SetUserIDByToken(ctx, token, binding.UserID); err != nil {
		logger.Warn("[ResolveToken] err redis SetUserIDByToken", zap.String("error", err.Error()))
	}

	return s.requireActiveUser(ctx, binding.UserID)
}

func (s *AuthAppImpl) requireActiveUser(ctx context.Context, userID uint64) (uint64, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[ResolveToken] err userRepo.Get", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil || !user.IsActive {
		return 0, errors.SetCustomError(constant.ErrUnauthorize)
	}
	return user.ID, nil
}

// generateToken produces a 40-char hex token from 20 bytes of
// crypto/rand output.
func generateToken() (string, error) {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
