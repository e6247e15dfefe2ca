package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MarkAnthonyMontano/sis-superadmin-backend/internal/config"
	"github.com/MarkAnthonyMontano/sis-superadmin-backend/internal/domain"
)

// SettingsSource is the store the cache reads through to, normally the
// repository.
type SettingsSource interface {
	GetInstitutionSettings() (*domain.InstitutionSettings, error)
}

// SettingsCache keeps the institution branding row in redis for a short TTL.
// Redis being down must never fail a reset, so every cache error falls back
// to the source.
type SettingsCache struct {
	cfg    *config.Config
	source SettingsSource
	rdb    *redis.Client
}

const settingsShortTermKey = "settings:short_term"

func NewSettingsCache(cfg *config.Config, source SettingsSource, rdb *redis.Client) *SettingsCache {
	return &SettingsCache{
		cfg:    cfg,
		source: source,
		rdb:    rdb,
	}
}

func (c *SettingsCache) GetInstitutionSettings() (*domain.InstitutionSettings, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(c.cfg.Redis.OperationTimeout)*time.Second)
	defer cancel()

	if shortTerm, err := c.rdb.Get(ctx, settingsShortTermKey).Result(); err == nil {
		return &domain.InstitutionSettings{ShortTerm: shortTerm}, nil
	}

	settings, err := c.source.GetInstitutionSettings()
	if err != nil {
		return nil, err
	}

	// best effort; a failed write just means the next read hits the database
	_ = c.rdb.Set(ctx, settingsShortTermKey, settings.ShortTerm, time.Duration(c.cfg.Redis.SettingsCacheTTL)*time.Second).Err()

	return settings, nil
}
