package ratelimit

import (
	"github.com/0xPolygonHermez/zkevm-node/config/types"
)

// Backends
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config is the rate limiter configuration
type Config struct {
	// Enabled turns on the limiter on the claim endpoint
	Enabled bool `mapstructure:"Enabled"`
	// Backend is either "memory" or "redis"
	Backend string `mapstructure:"Backend"`
	// Requests is the number of requests allowed per client and command in one window
	Requests int `mapstructure:"Requests"`
	// Window is the length of a fixed window
	Window types.Duration `mapstructure:"Window"`
	// MaxKeys bounds the number of clients tracked by the memory backend
	MaxKeys int `mapstructure:"MaxKeys"`
	// FailClosed rejects requests when the backend cannot be reached
	FailClosed bool `mapstructure:"FailClosed"`

	Redis RedisConfig `mapstructure:"Redis"`
}

// RedisConfig stores the redis connection configs
type RedisConfig struct {
	// If this is true, will use ClusterClient
	IsClusterMode bool `mapstructure:"IsClusterMode"`

	// Host:Port address
	Addrs []string `mapstructure:"Addrs"`

	// Username for ACL
	Username string `mapstructure:"Username"`

	// Password for ACL
	Password string `mapstructure:"Password"`

	// DB index
	DB int `mapstructure:"DB"`

	// KeyPrefix is prepended to every counter key
	KeyPrefix string `mapstructure:"KeyPrefix"`
}
