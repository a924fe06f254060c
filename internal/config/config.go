package config

import (
	"time"

	"github.com/genricoloni/mprisence/internal/domain"
	"go.uber.org/zap"
)

// AppConfig holds application configuration
type AppConfig struct {
	env    Env
	filter domain.FilterConfig
}

// NewAppConfig loads the filter file named by env and builds the configuration
func NewAppConfig(logger *zap.Logger, env Env) (*AppConfig, error) {
	filter, err := LoadFilter(env.ConfigPath)
	if err != nil {
		return nil, err
	}

	logger.Info("Configuration loaded",
		zap.Uint64("appID", env.AppID),
		zap.String("configPath", env.ConfigPath),
		zap.Duration("pollInterval", env.PollInterval),
		zap.String("metricsAddr", env.MetricsAddr),
		zap.Bool("useWhitelist", filter.UseWhitelist),
		zap.Int("whitelistKeywords", len(filter.KeywordWhitelist)),
		zap.Bool("playNoURL", filter.PlayNoURL),
		zap.Bool("useArtistBlacklist", filter.UseArtistBlacklist),
		zap.Bool("emboldenTitles", filter.EmboldenTitles))

	return &AppConfig{env: env, filter: filter}, nil
}

// GetFilter returns the content filter settings
func (c *AppConfig) GetFilter() domain.FilterConfig {
	return c.filter
}

// GetAppID returns the Discord application ID
func (c *AppConfig) GetAppID() uint64 {
	return c.env.AppID
}

// GetLargeImage returns the asset key shown as the large image
func (c *AppConfig) GetLargeImage() string {
	return c.env.LargeImage
}

// GetLargeText returns the hover text of the large image
func (c *AppConfig) GetLargeText() string {
	return c.env.LargeText
}

// GetPollInterval returns the delay between two ticks
func (c *AppConfig) GetPollInterval() time.Duration {
	return c.env.PollInterval
}

// GetMetricsAddr returns the metrics listen address, empty when disabled
func (c *AppConfig) GetMetricsAddr() string {
	return c.env.MetricsAddr
}
