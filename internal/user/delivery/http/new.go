package http

import (
	"taskmate/config"
	"taskmate/internal/user"
	"taskmate/pkg/log"
)

type handler struct {
	l       log.Logger
	uc      user.UseCase
	authCfg config.AuthConfig
}

// New creates a new HTTP handler for accounts and authentication.
func New(l log.Logger, uc user.UseCase, authCfg config.AuthConfig) *handler {
	return &handler{
		l:       l,
		uc:      uc,
		authCfg: authCfg,
	}
}
