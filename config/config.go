package config

import (
	"bytes"
	"errors"
	"strings"

	"github.com/0xPolygonHermez/zkevm-node/log"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"github.com/zkairdrop/claim-service/allocation"
	"github.com/zkairdrop/claim-service/claimctrl"
	"github.com/zkairdrop/claim-service/etherman"
	"github.com/zkairdrop/claim-service/metrics"
	"github.com/zkairdrop/claim-service/ratelimit"
	"github.com/zkairdrop/claim-service/server"
)

const envPrefix = "AIRDROP_CLAIM"

// Config struct
type Config struct {
	Log             log.Config
	Allocation      allocation.Config
	Etherman        etherman.Config
	ClaimController claimctrl.Config
	Server          server.Config
	Metrics         metrics.Config
	RateLimit       ratelimit.Config
	NetworkConfig
}

// Load loads the configuration
func Load(configFilePath string, network string) (*Config, error) {
	var cfg Config
	v := viper.New()
	v.SetConfigType("toml")

	err := v.ReadConfig(bytes.NewBuffer([]byte(DefaultValues)))
	if err != nil {
		return nil, err
	}
	if configFilePath != "" {
		v.SetConfigFile(configFilePath)
		err = v.MergeInConfig()
		if err != nil {
			log.Errorf("error reading config file %s: %v", configFilePath, err)
			return nil, err
		}
	}
	v.AutomaticEnv()
	replacer := strings.NewReplacer(".", "_")
	v.SetEnvKeyReplacer(replacer)
	v.SetEnvPrefix(envPrefix)

	decodeHooks := []viper.DecoderConfigOption{
		// this allows arrays to be decoded from env var separated by ",", example: AIRDROP_CLAIM_ALLOCATION_ALLELIGIBLEPATHS="a.csv,b.csv"
		viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)),
	}
	err = v.Unmarshal(&cfg, decodeHooks...)
	if err != nil {
		return nil, err
	}

	if v.IsSet("NetworkConfig") && network != "" {
		return nil, errors.New("Network details are provided in the config file (the [NetworkConfig] section) and as a flag (the --network or -n). Configure it only once and try again please.")
	}
	if !v.IsSet("NetworkConfig") && network == "" {
		return nil, errors.New("Network details are not provided. Please configure the [NetworkConfig] section in your config file, or provide a --network flag.")
	}
	if !v.IsSet("NetworkConfig") && network != "" {
		err = cfg.loadNetworkConfig(network)
		if err != nil {
			return nil, err
		}
	}

	return &cfg, nil
}

// ClaimNetwork returns the contracts the claim controller works with.
// The Etherman L1URL, when set, overrides the network default endpoint.
func (cfg *Config) ClaimNetwork() claimctrl.Network {
	l1URL := cfg.Etherman.L1URL
	if l1URL == "" {
		l1URL = cfg.NetworkConfig.L1URL
	}
	return claimctrl.Network{
		L2ChainID:        cfg.NetworkConfig.L2ChainID,
		BridgehubAddr:    cfg.NetworkConfig.BridgehubAddr,
		DistributorAddrs: cfg.NetworkConfig.L2MerkleDistributorAddrs,
		L2TokenAddr:      cfg.NetworkConfig.L2TokenAddr,
		DefaultL1RPC:     l1URL,
	}
}
