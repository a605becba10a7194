package usecase

import (
	"context"
	"errors"

	"makespace/internal/pkg/config"
	"makespace/internal/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type LoginResult struct {
	AccessToken string
	Role        string
}

// AuthUseCase authenticates the configured admin account. There is no user
// store: credentials come from the environment and the catalog management
// endpoints are the only protected surface.
type AuthUseCase interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

// TokenValidator is what the auth middleware needs from the token layer.
type TokenValidator interface {
	ValidateToken(token string) (role string, err error)
}

type authUseCaseImpl struct {
	admin  config.AdminConfig
	jwtSvc *jwt.Service
}

func NewAuthUseCase(cfg config.Config, jwtSvc *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		admin:  cfg.Admin,
		jwtSvc: jwtSvc,
	}
}

func (u *authUseCaseImpl) Login(_ context.Context, email, password string) (*LoginResult, error) {
	if email != u.admin.Email {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := u.jwtSvc.GenerateToken(email, jwt.RoleAdmin)
	if err != nil {
		return nil, err
	}
	return &LoginResult{AccessToken: token, Role: jwt.RoleAdmin}, nil
}

type jwtTokenValidator struct {
	jwtSvc *jwt.Service
}

func NewTokenValidator(jwtSvc *jwt.Service) TokenValidator {
	return &jwtTokenValidator{jwtSvc: jwtSvc}
}

func (v *jwtTokenValidator) ValidateToken(token string) (string, error) {
	claims, err := v.jwtSvc.ValidateToken(token)
	if err != nil {
		return "", err
	}
	return claims.Role, nil
}
