package allocation

import (
	"github.com/0xPolygonHermez/zkevm-node/config/types"
)

// Config holds the allocation sources. Entry i of every list belongs to the same distributor deployment.
type Config struct {
	// AllEligiblePaths are the CSV tables with every eligible address and its amount
	AllEligiblePaths []string `mapstructure:"AllEligiblePaths"`
	// L1EligiblePaths are the CSV tables listing the L1 contracts whose allocation is claimed through their L2 alias
	L1EligiblePaths []string `mapstructure:"L1EligiblePaths"`
	// Timeout bounds each remote CSV fetch
	Timeout types.Duration `mapstructure:"Timeout"`
}
