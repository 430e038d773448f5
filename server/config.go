package server

import (
	"github.com/0xPolygonHermez/zkevm-node/config/types"
)

// Config struct
type Config struct {
	// GRPCPort is TCP port to listen by gRPC health server
	GRPCPort string `mapstructure:"GRPCPort"`
	// HTTPPort is TCP port to listen by HTTP/REST server
	HTTPPort string `mapstructure:"HTTPPort"`
	// ReadTimeout is the maximum duration for reading the entire request
	ReadTimeout types.Duration `mapstructure:"ReadTimeout"`
	// WriteTimeout covers the CSV fetches and the L1 read of one request
	WriteTimeout types.Duration `mapstructure:"WriteTimeout"`
}
