// Package redis wraps the go-redis client so set storage can run against a
// single node, a cluster, or a sentinel-managed primary behind one interface.
package redis

import (
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/armor-builder/internal/errors"
)

// Deployment modes accepted by Connect
const (
	ModeSingle   = "single"
	ModeCluster  = "cluster"
	ModeSentinel = "sentinel"
)

// Options tunes the connection pool shared by every mode
type Options struct {
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	UseTLS          bool
	ReadOnly        bool // cluster mode only: route reads to replicas
}

// Connect builds the client for mode. addrs is the node address in single
// mode, the seed nodes in cluster mode and the sentinels in sentinel mode.
// Redis connects lazily, so no network traffic happens here.
func Connect(mode string, addrs []string, masterName string, opts *Options) (Client, error) {
	switch mode {
	case "", ModeSingle:
		if len(addrs) != 1 {
			return nil, errors.InvalidArgumentf("redis: single mode takes exactly one address, got %d", len(addrs))
		}
		return NewClient(addrs[0], opts)
	case ModeCluster:
		return NewClusterClient(addrs, opts)
	case ModeSentinel:
		return NewFailoverClient(masterName, addrs, opts)
	default:
		return nil, errors.InvalidArgumentf("redis: unknown mode %q", mode).
			WithMeta("mode", mode)
	}
}

// NewClient creates a client for a single instance
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.InvalidArgument("redis: endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	redisOpts := &redis.Options{
		Addr:            endpoint,
		MinIdleConns:    opts.MinIdleConns,
		PoolSize:        opts.PoolSize,
		ConnMaxIdleTime: opts.ConnMaxIdleTime,
		MaxRetries:      opts.MaxRetries,
	}
	if opts.UseTLS {
		redisOpts.TLSConfig = tlsConfig()
	}

	return redis.NewClient(redisOpts), nil
}

// NewClusterClient creates a client for cluster mode.
// Set keys carry no hash tag, so the SaveAll transaction needs every key on one slot
// owner; cluster mode is only safe for deployments with a single shard.
func NewClusterClient(endpoints []string, opts *Options) (Client, error) {
	if len(endpoints) == 0 {
		return nil, errors.InvalidArgument("redis: at least one endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	clusterOpts := &redis.ClusterOptions{
		Addrs:           endpoints,
		MinIdleConns:    opts.MinIdleConns,
		PoolSize:        opts.PoolSize,
		ConnMaxIdleTime: opts.ConnMaxIdleTime,
		MaxRetries:      opts.MaxRetries,
		ReadOnly:        opts.ReadOnly,
	}
	if opts.UseTLS {
		clusterOpts.TLSConfig = tlsConfig()
	}

	return redis.NewClusterClient(clusterOpts), nil
}

// NewFailoverClient creates a client that follows the primary named masterName through Sentinel
func NewFailoverClient(masterName string, sentinelAddrs []string, opts *Options) (Client, error) {
	if masterName == "" {
		return nil, errors.InvalidArgument("redis: master name is required")
	}
	if len(sentinelAddrs) == 0 {
		return nil, errors.InvalidArgument("redis: at least one sentinel address is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	failoverOpts := &redis.FailoverOptions{
		MasterName:      masterName,
		SentinelAddrs:   sentinelAddrs,
		MinIdleConns:    opts.MinIdleConns,
		PoolSize:        opts.PoolSize,
		ConnMaxIdleTime: opts.ConnMaxIdleTime,
		MaxRetries:      opts.MaxRetries,
	}
	if opts.UseTLS {
		failoverOpts.TLSConfig = tlsConfig()
	}

	return redis.NewFailoverClient(failoverOpts), nil
}

func tlsConfig() *tls.Config {
	return &tls.Config{
		InsecureSkipVerify: true, // #nosec G402 // self-signed certs on managed instances
	}
}
