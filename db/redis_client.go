package db

import (
	"errors"
)

// ErrKeyNotFound is returned by Get when the key does not exist.
var ErrKeyNotFound = errors.New("key not found")

// RedisClient defines the key/value operations the DAOs rely on
type RedisClient interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Ping() error
	Close() error
}
