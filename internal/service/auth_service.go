package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/tmohagan/portfolio-api/internal/apperrors"
	"github.com/tmohagan/portfolio-api/internal/config"
	"github.com/tmohagan/portfolio-api/internal/models"
	"github.com/tmohagan/portfolio-api/internal/repository"
)

// AuthService issues and verifies the stateless session token. There is no
// server-side revocation: logout only clears the cookie, so a token that was
// copied elsewhere stays cryptographically valid until its natural expiry.
type AuthService interface {
	Register(ctx context.Context, username, password, confirmPassword string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, string, error)
	VerifyToken(tokenString string) (*models.SessionClaims, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (s *authService) Register(ctx context.Context, username, password, confirmPassword string) (*models.User, error) {
	if password != confirmPassword {
		return nil, fmt.Errorf("passwords do not match: %w", apperrors.ErrValidation)
	}

	user := &models.User{
		Username: username,
	}

	// Username uniqueness is enforced by the database constraint; the
	// repository surfaces a violation as ErrConflict.
	if err := s.userRepo.CreateUser(ctx, user, password); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	user, err := s.userRepo.VerifyPassword(ctx, username, password)
	if err != nil {
		return nil, "", err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("could not generate token: %w", err)
	}

	return user, token, nil
}

func (s *authService) generateToken(user *models.User) (string, error) {
	// jti makes every issued token distinct, even within the same second.
	claims := jwt.MapClaims{
		"username": user.Username,
		"userId":   user.UserID,
		"jti":      uuid.New().String(),
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(s.cfg.TokenDuration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("could not sign token: %w", err)
	}

	return tokenString, nil
}

// VerifyToken returns typed failures only; a malformed, forged or expired
// token never propagates as anything other than ErrInvalidToken.
func (s *authService) VerifyToken(tokenString string) (*models.SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperrors.ErrInvalidToken
	}

	username, ok1 := claims["username"].(string)
	userID, ok2 := claims["userId"].(string)
	if !ok1 || !ok2 {
		return nil, apperrors.ErrInvalidToken
	}

	return &models.SessionClaims{
		UserID:   userID,
		Username: username,
	}, nil
}
