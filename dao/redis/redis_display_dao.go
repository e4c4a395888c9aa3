package redis

import (
	"encoding/json"
	"errors"
	"fmt"

	"uv-dashboard/db"
	"uv-dashboard/models"
)

// DISPLAY_KEY_V1 holds the last applied UV display snapshot.
const DISPLAY_KEY_V1 = "uv_display_v1:current"

// RedisDisplayDAO stores the dashboard's UV display through a RedisClient.
type RedisDisplayDAO struct {
	client db.RedisClient
}

// NewRedisDisplayDAO initializes a RedisDisplayDAO with the Redis client.
func NewRedisDisplayDAO(client db.RedisClient) *RedisDisplayDAO {
	return &RedisDisplayDAO{client: client}
}

// SetDisplay replaces the stored snapshot.
func (dao *RedisDisplayDAO) SetDisplay(d *models.UVDisplay) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to marshal display for %s: %w", d.Location.Key, err)
	}
	if err := dao.client.Set(DISPLAY_KEY_V1, string(data)); err != nil {
		return fmt.Errorf("failed to set display in redis: %w", err)
	}
	return nil
}

// GetDisplay returns the stored snapshot, or nil when nothing has been applied yet.
func (dao *RedisDisplayDAO) GetDisplay() (*models.UVDisplay, error) {
	str, err := dao.client.Get(DISPLAY_KEY_V1)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get display from redis: %w", err)
	}
	var d models.UVDisplay
	if err := json.Unmarshal([]byte(str), &d); err != nil {
		return nil, fmt.Errorf("failed to unmarshal display JSON: %w", err)
	}
	return &d, nil
}
