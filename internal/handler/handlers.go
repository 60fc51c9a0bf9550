package handler

import (
	"github.com/amevide998/contact-management/internal/config"
	"github.com/amevide998/contact-management/internal/handler/http"
	"github.com/amevide998/contact-management/internal/logger"
	"github.com/amevide998/contact-management/internal/service"
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
