package service

import (
	"context"

	"github.com/TituxMetal/epicweb-notes-app/internal/logger"
	"github.com/TituxMetal/epicweb-notes-app/internal/store"
	"github.com/TituxMetal/epicweb-notes-app/models"
)

type userService struct {
	users store.UserRepository

	logger *logger.Logger
}

func NewUserService(users store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		users:  users,
		logger: logger,
	}
}

func (s *userService) FindByUsername(ctx context.Context, username string) (models.User, error) {
	user, err := s.users.FindUserByUsername(ctx, username)
	if err != nil {
		return models.User{}, mapStoreError(err)
	}

	return user, nil
}

func (s *userService) Search(ctx context.Context, query string) ([]models.User, error) {
	return s.users.SearchUsers(ctx, query)
}

func (s *userService) GetImage(ctx context.Context, imageID string) (models.UserImage, error) {
	image, err := s.users.GetUserImage(ctx, imageID)
	if err != nil {
		return models.UserImage{}, mapStoreError(err)
	}

	return image, nil
}
