package api

import (
	"github.com/GeyBee/skincare-saas/internal"
	"github.com/GeyBee/skincare-saas/internal/auth"
	"github.com/GeyBee/skincare-saas/internal/storage"
)

type App interface {
	Logger() internal.Logger
	Users() storage.UserRepository
	Profiles() storage.ProfileRepository
	CheckIns() storage.CheckInRepository
	Photos() storage.PhotoRepository
	Auth() auth.Provider
	UploadDir() string
}

type app struct {
	logger    internal.Logger
	repos     storage.Repositories
	provider  auth.Provider
	uploadDir string
}

func NewApp(logger internal.Logger, repos storage.Repositories, provider auth.Provider, uploadDir string) App {
	return &app{logger: logger, repos: repos, provider: provider, uploadDir: uploadDir}
}

func (a *app) Logger() internal.Logger             { return a.logger }
func (a *app) Users() storage.UserRepository       { return a.repos }
func (a *app) Profiles() storage.ProfileRepository { return a.repos }
func (a *app) CheckIns() storage.CheckInRepository { return a.repos }
func (a *app) Photos() storage.PhotoRepository     { return a.repos }
func (a *app) Auth() auth.Provider                 { return a.provider }
func (a *app) UploadDir() string                   { return a.uploadDir }
