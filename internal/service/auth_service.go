package service

import (
	"context"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"pocket-pm-be/internal/dto"
	"pocket-pm-be/internal/entity"
	"pocket-pm-be/internal/pkg/apperrors"
	"pocket-pm-be/internal/repository/memory"
	"pocket-pm-be/internal/repository/unitofwork"
)

const accessTokenExpiry = 24 * time.Hour

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.RefreshResponse, error)
	Logout(ctx context.Context, req *dto.LogoutRequest) error
	Profile(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error)
}

type authService struct {
	uowFactory  unitofwork.RepositoryFactory
	sessionRepo *memory.SessionRepository
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, sessionRepo *memory.SessionRepository) IAuthService {
	return &authService{
		uowFactory:  uowFactory,
		sessionRepo: sessionRepo,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewConflict("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	return &dto.RegisterResponse{Id: user.Id, Email: user.Email}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NewUnauthorized("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.NewUnauthorized("invalid credentials")
	}

	accessToken, err := signAccessToken(user.Id)
	if err != nil {
		return nil, err
	}

	res := &dto.LoginResponse{AccessToken: accessToken}

	// Refresh tokens only for "remember me" logins
	if req.RememberMe {
		refreshToken := uuid.New().String()
		s.sessionRepo.Save(&memory.RefreshSession{
			Token:     refreshToken,
			UserId:    user.Id,
			IssuedAt:  time.Now(),
			IpAddress: ipAddress,
			UserAgent: userAgent,
		})
		res.RefreshToken = refreshToken
	}

	return res, nil
}

func (s *authService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.RefreshResponse, error) {
	session, found := s.sessionRepo.Get(req.RefreshToken)
	if !found {
		return nil, apperrors.NewUnauthorized("invalid or expired refresh session")
	}

	accessToken, err := signAccessToken(session.UserId)
	if err != nil {
		return nil, err
	}

	return &dto.RefreshResponse{AccessToken: accessToken}, nil
}

func (s *authService) Logout(ctx context.Context, req *dto.LogoutRequest) error {
	s.sessionRepo.Delete(req.RefreshToken)
	return nil
}

func (s *authService) Profile(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindById(ctx, userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NewNotFound("user")
	}

	return &dto.ProfileResponse{
		Id:        user.Id,
		Email:     user.Email,
		FullName:  user.FullName,
		CreatedAt: user.CreatedAt,
	}, nil
}

func signAccessToken(userId uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userId.String(),
		"exp":     time.Now().Add(accessTokenExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}
	return token.SignedString([]byte(secret))
}
