package redis

import "github.com/friendsofgo/errors"

var (
	ErrHostRequired = errors.New("redis: host is required")
	ErrInvalidPort  = errors.New("redis: invalid port")
	ErrKeyNotFound  = errors.New("redis: key not found")
)
