package service

import (
	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
)

type Services struct {
	AuthService    AuthService
	SessionService SessionService
	BlogService    BlogService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, logger),
		SessionService: NewSessionService(storages.SessionRepository, storages.UserRepository, cfg, logger),
		BlogService:    NewBlogService(storages.PostRepository, storages.CommentRepository, logger),
	}
}
