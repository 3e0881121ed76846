package service

import (
	"github.com/usiverse/userd/internal/config"
	"github.com/usiverse/userd/internal/logger"
)

type appInfoService struct {
	appName    string
	appVersion string

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Name == "" {
		return nil, ErrAppNameIsNotSpecified
	}
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appName:    cfg.Name,
		appVersion: cfg.Version,
		logger:     logger,
	}, nil
}

func (s *appInfoService) Name() string {
	return s.appName
}

func (s *appInfoService) Version() string {
	return s.appVersion
}
