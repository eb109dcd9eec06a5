package middleware

import (
	"taskmate/config"
	"taskmate/pkg/log"
	"taskmate/pkg/scope"
)

// Middleware bundles the cross-cutting gin middlewares.
type Middleware struct {
	l          log.Logger
	jwtManager *scope.Manager
	authCfg    config.AuthConfig
	corsCfg    config.CORSConfig
}

func New(l log.Logger, jwtManager *scope.Manager, authCfg config.AuthConfig, corsCfg config.CORSConfig) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		authCfg:    authCfg,
		corsCfg:    corsCfg,
	}
}
