package handler

import "github.com/sukhraj1322/short-video-platform/internal/service"

type Handlers struct {
	Auth     *AuthHandler
	Video    *VideoHandler
	User     *UserHandler
	Activity *ActivityHandler
	Settings *SettingsHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:     NewAuthHandler(services.Auth),
		Video:    NewVideoHandler(services.Video, services.Ingest, services.Playback),
		User:     NewUserHandler(services.Video, services.Analytics),
		Activity: NewActivityHandler(services.Activity),
		Settings: NewSettingsHandler(services.Settings),
	}
}
