package claimctrl

import (
	"github.com/ethereum/go-ethereum/common"
)

// Config is the claim controller configuration
type Config struct {
	// TreeCacheSize is the number of merkle trees kept in memory, 0 disables the cache
	TreeCacheSize int `mapstructure:"TreeCacheSize"`
	// L2TxGasLimit is the gas limit of the L2 transaction requested from L1
	L2TxGasLimit uint64 `mapstructure:"L2TxGasLimit"`
	// L2GasPerPubdataByteLimit is the gas per pubdata byte of the L2 transaction requested from L1
	L2GasPerPubdataByteLimit uint64 `mapstructure:"L2GasPerPubdataByteLimit"`
}

// Network holds the contracts of one L1/L2 deployment
type Network struct {
	L2ChainID        uint64
	BridgehubAddr    common.Address
	DistributorAddrs []common.Address
	L2TokenAddr      common.Address
	DefaultL1RPC     string
}
