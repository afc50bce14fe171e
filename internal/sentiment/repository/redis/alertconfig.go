package redis

import (
	"context"
	"encoding/json"

	"github.com/friendsofgo/errors"

	"moodmeter-srv/internal/model"
	pkgRedis "moodmeter-srv/pkg/redis"
)

type configRepo struct {
	client pkgRedis.IRedis
}

func (r *configRepo) SetAlert(ctx context.Context, key string, cfg model.AlertConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "marshal alert config")
	}
	// No TTL: alert configuration is an explicit operator setting.
	if err := r.client.Set(ctx, alertKeyPrefix+key, string(data), 0); err != nil {
		return errors.Wrap(err, "store alert config")
	}
	return nil
}

func (r *configRepo) GetAlert(ctx context.Context, key string) (model.AlertConfig, error) {
	raw, err := r.client.Get(ctx, alertKeyPrefix+key)
	if err != nil {
		if errors.Is(err, pkgRedis.ErrKeyNotFound) {
			return model.DefaultAlertConfig(), nil
		}
		return model.DefaultAlertConfig(), errors.Wrap(err, "read alert config")
	}
	var cfg model.AlertConfig
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return model.DefaultAlertConfig(), errors.Wrap(err, "parse alert config")
	}
	return cfg, nil
}
