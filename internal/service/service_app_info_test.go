package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usiverse/userd/internal/config"
	"github.com/usiverse/userd/internal/logger"
)

func TestNewAppInfoService_Success(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Name: "userd", Version: "1.0.0"}, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, "userd", svc.Name())
	assert.Equal(t, "1.0.0", svc.Version())
}

func TestNewAppInfoService_EmptyName_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAppNameIsNotSpecified))
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Name: "userd"}, logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}
