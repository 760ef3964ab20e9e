package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the go-redis surface the repositories depend on.
// redis.UniversalClient covers single, cluster and sentinel clients alike,
// and miniredis-backed clients satisfy it in tests.
type Client interface {
	redis.UniversalClient
}
