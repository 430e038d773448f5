package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/0xPolygonHermez/zkevm-node/log"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zkairdrop/claim-service/ratelimit"
	"github.com/zkairdrop/claim-service/utils/gerror"
)

func init() {
	log.Init(log.Config{
		Level:   "debug",
		Outputs: []string{"stdout"},
	})
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", mainnet)
	require.NoError(t, err)

	assert.Equal(t, []string{"./airdrop-allocations.csv"}, cfg.Allocation.AllEligiblePaths)
	assert.Equal(t, []string{"./l1_eligibility_list.csv"}, cfg.Allocation.L1EligiblePaths)
	assert.Equal(t, 30*time.Second, cfg.Allocation.Timeout.Duration)
	assert.Equal(t, uint64(2097152), cfg.ClaimController.L2TxGasLimit)
	assert.Equal(t, uint64(800), cfg.ClaimController.L2GasPerPubdataByteLimit)
	assert.Equal(t, 16, cfg.ClaimController.TreeCacheSize)
	assert.Equal(t, "8080", cfg.Server.HTTPPort)
	assert.Equal(t, "9090", cfg.Server.GRPCPort)
	assert.Equal(t, time.Minute, cfg.Server.WriteTimeout.Duration)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, ratelimit.BackendMemory, cfg.RateLimit.Backend)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window.Duration)
	assert.Equal(t, []string{"localhost:6379"}, cfg.RateLimit.Redis.Addrs)

	assert.Equal(t, uint64(324), cfg.L2ChainID)
	assert.Equal(t, common.HexToAddress("0x303a465B659cBB0ab36eE643eA362c509EEb5213"), cfg.BridgehubAddr)
	assert.Equal(t, []common.Address{common.HexToAddress("0x66Fd4FC8FA52c9bec2AbA368047A0b27e24ecfe4")}, cfg.L2MerkleDistributorAddrs)

	network := cfg.ClaimNetwork()
	assert.Equal(t, mainnetConfig.L1URL, network.DefaultL1RPC)
	assert.Equal(t, cfg.L2MerkleDistributorAddrs, network.DistributorAddrs)
}

func TestLoadNetworkErrors(t *testing.T) {
	_, err := Load("", "")
	require.Error(t, err)

	_, err = Load("", "moonnet")
	require.ErrorIs(t, err, gerror.ErrNetworkNotRegister)

	path := writeConfig(t, `
[NetworkConfig]
L2ChainID = 270
`)
	_, err = Load(path, mainnet)
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[Allocation]
AllEligiblePaths = ["https://cdn.example/a.csv", "https://cdn.example/b.csv"]
L1EligiblePaths = ["https://cdn.example/a_l1.csv", "https://cdn.example/b_l1.csv"]

[Etherman]
L1URL = "http://my-node:8545"

[NetworkConfig]
L2ChainID = 270
BridgehubAddr = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
L2MerkleDistributorAddrs = ["0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512", "0x9fE46736679d2D9a65F0992F2272dE9f3c7fa6e0"]
L2TokenAddr = "0x9fE46736679d2D9a65F0992F2272dE9f3c7fa6e0"
L1URL = "http://localhost:8545"
`)
	cfg, err := Load(path, "")
	require.NoError(t, err)

	assert.Len(t, cfg.Allocation.AllEligiblePaths, 2)
	assert.Len(t, cfg.L2MerkleDistributorAddrs, 2)
	assert.Equal(t, uint64(270), cfg.L2ChainID)
	// values missing from the file keep their defaults
	assert.Equal(t, "8080", cfg.Server.HTTPPort)
	assert.Equal(t, "http://my-node:8545", cfg.ClaimNetwork().DefaultL1RPC)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("AIRDROP_CLAIM_SERVER_HTTPPORT", "9999")
	t.Setenv("AIRDROP_CLAIM_ALLOCATION_ALLELIGIBLEPATHS", "a.csv,b.csv")
	t.Setenv("AIRDROP_CLAIM_RATELIMIT_ENABLED", "true")

	cfg, err := Load("", local)
	require.NoError(t, err)
	assert.Equal(t, "9999", cfg.Server.HTTPPort)
	assert.Equal(t, []string{"a.csv", "b.csv"}, cfg.Allocation.AllEligiblePaths)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, uint64(270), cfg.L2ChainID)
}

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}
