package config

import (
	"github.com/0xPolygonHermez/zkevm-node/log"
	"github.com/ethereum/go-ethereum/common"
	"github.com/zkairdrop/claim-service/utils/gerror"
)

// NetworkConfig is the configuration struct for the different environments
type NetworkConfig struct {
	// L2ChainID is the chain id of the L2 holding the distributors
	L2ChainID uint64
	// BridgehubAddr is the L1 bridgehub receiving the direct L2 transaction requests
	BridgehubAddr common.Address
	// L2MerkleDistributorAddrs are paired, in order, with the allocation lists
	L2MerkleDistributorAddrs []common.Address
	// L2TokenAddr is the airdropped token on L2
	L2TokenAddr common.Address
	// L1URL is the L1 JSON-RPC endpoint used when neither the request nor Etherman sets one
	L1URL string
}

const (
	mainnet = "mainnet"
	local   = "local"
)

//nolint:gomnd
var (
	mainnetConfig = NetworkConfig{
		L2ChainID:                324, // zkSync Era
		BridgehubAddr:            common.HexToAddress("0x303a465B659cBB0ab36eE643eA362c509EEb5213"),
		L2MerkleDistributorAddrs: []common.Address{common.HexToAddress("0x66Fd4FC8FA52c9bec2AbA368047A0b27e24ecfe4")},
		L2TokenAddr:              common.HexToAddress("0x5A7d6b2F92C77FAD6CCaBd7EE0624E64907Eaf3E"),
		L1URL:                    "https://ethereum-rpc.publicnode.com",
	}
	localConfig = NetworkConfig{
		L2ChainID:                270,
		BridgehubAddr:            common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"),
		L2MerkleDistributorAddrs: []common.Address{common.HexToAddress("0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512")},
		L2TokenAddr:              common.HexToAddress("0x9fE46736679d2D9a65F0992F2272dE9f3c7fa6e0"),
		L1URL:                    "http://localhost:8545",
	}
)

func (cfg *Config) loadNetworkConfig(network string) error {
	switch network {
	case mainnet:
		log.Debug("Mainnet network selected")
		cfg.NetworkConfig = mainnetConfig
	case local:
		log.Debug("Local network selected")
		cfg.NetworkConfig = localConfig
	default:
		log.Errorf("unknown network %s", network)
		return gerror.ErrNetworkNotRegister
	}
	return nil
}
