package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"

	"revenueBack/internal/models"
	"revenueBack/internal/storage"
)

const tokenTTL = 24 * time.Hour

type AuthService struct {
	Store     storage.Storage
	JWTSecret string
}

// Login checks the credentials and issues a signed token. Stored
// passwords are bcrypt hashes; the in-memory demo seed keeps them in
// plain text, so a direct comparison is the fallback.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	user, err := s.Store.GetUserByUsername(ctx, req.Username)
	if errors.Is(err, models.ErrUserNotFound) {
		return models.LoginResponse{}, models.ErrInvalidCredentials
	}
	if err != nil {
		return models.LoginResponse{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		if user.Password != req.Password {
			return models.LoginResponse{}, models.ErrInvalidCredentials
		}
	}

	token, err := s.issueToken(user)
	if err != nil {
		return models.LoginResponse{}, err
	}
	return models.LoginResponse{User: user.WithoutPassword(), Token: token}, nil
}

func (s *AuthService) issueToken(user models.User) (string, error) {
	claims := models.Claims{
		UserID: user.ID,
		Role:   user.Role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(tokenTTL).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.JWTSecret))
}
