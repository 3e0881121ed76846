package service

import (
	"github.com/usiverse/userd/internal/config"
	"github.com/usiverse/userd/internal/crypto"
	"github.com/usiverse/userd/internal/logger"
	"github.com/usiverse/userd/internal/store"
)

type Services struct {
	AccountDirectory AccountDirectory
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, hasher crypto.PasswordHasher, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AccountDirectory: NewAccountDirectory(storages.AccountRepository, hasher, logger),
		AppInfoService:   appInfo,
	}, nil
}
