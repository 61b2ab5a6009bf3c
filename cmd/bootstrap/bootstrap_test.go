package bootstrap

import (
	"testing"

	"local-services-marketplace/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	require.Equal(t, logrus.DebugLevel, NewLogger(config.AppConfig{LogLevel: "debug"}).GetLevel())
	require.Equal(t, logrus.WarnLevel, NewLogger(config.AppConfig{LogLevel: "WARN"}).GetLevel())
	require.Equal(t, logrus.InfoLevel, NewLogger(config.AppConfig{LogLevel: "loud"}).GetLevel())

	_, ok := NewLogger(config.AppConfig{}).Formatter.(*logrus.JSONFormatter)
	require.True(t, ok)
}
