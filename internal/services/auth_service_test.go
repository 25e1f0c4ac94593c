package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/golang-jwt/jwt"

	"revenueBack/internal/models"
	"revenueBack/internal/storage"
)

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc := &AuthService{Store: storage.NewMemoryStore(), JWTSecret: "test-secret"}

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := svc.Login(ctx, models.LoginRequest{Username: "admin1", Password: "password123"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.User.Password != "" {
			t.Fatal("expected the password to be stripped from the response")
		}
		if resp.User.Role != models.RoleAdmin {
			t.Fatalf("expected admin role, got %s", resp.User.Role)
		}

		claims := &models.Claims{}
		token, err := jwt.ParseWithClaims(resp.Token, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte("test-secret"), nil
		})
		if err != nil || !token.Valid {
			t.Fatalf("expected a valid token, got %v", err)
		}
		if claims.Role != models.RoleAdmin || claims.UserID != resp.User.ID {
			t.Fatalf("unexpected claims %+v", claims)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, models.LoginRequest{Username: "admin1", Password: "wrong"})
		if err != models.ErrInvalidCredentials {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Login(ctx, models.LoginRequest{Username: "ghost", Password: "password123"})
		if err != models.ErrInvalidCredentials {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}
