package services

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"revenueBack/internal/models"
	"revenueBack/internal/storage"
)

type UserService struct {
	Store storage.Storage
}

func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.Store.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i] = users[i].WithoutPassword()
	}
	return users, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id string) (models.User, error) {
	user, err := s.Store.GetUser(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	return user.WithoutPassword(), nil
}

func (s *UserService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	user.Password = string(hashed)

	created, err := s.Store.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, err
	}
	return created.WithoutPassword(), nil
}

func (s *UserService) UpdateUser(ctx context.Context, id string, updates models.UserUpdate) (models.User, error) {
	if updates.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*updates.Password), bcrypt.DefaultCost)
		if err != nil {
			return models.User{}, err
		}
		h := string(hashed)
		updates.Password = &h
	}

	updated, err := s.Store.UpdateUser(ctx, id, updates)
	if err != nil {
		return models.User{}, err
	}
	return updated.WithoutPassword(), nil
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	deleted, err := s.Store.DeleteUser(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return models.ErrUserNotFound
	}
	return nil
}
