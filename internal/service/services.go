package service

import (
	"github.com/TituxMetal/epicweb-notes-app/internal/logger"
	"github.com/TituxMetal/epicweb-notes-app/internal/store"
)

type Services struct {
	NoteService NoteService
	UserService UserService
}

func NewServices(repositories *store.Repositories, logger *logger.Logger) *Services {
	return &Services{
		NoteService: NewNoteService(repositories.NoteRepository, logger),
		UserService: NewUserService(repositories.UserRepository, logger),
	}
}
