package handler

import (
	"github.com/usiverse/userd/internal/config"
	"github.com/usiverse/userd/internal/handler/http"
	"github.com/usiverse/userd/internal/logger"
	"github.com/usiverse/userd/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}, nil
}
