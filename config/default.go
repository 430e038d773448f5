package config

// DefaultValues is the default configuration
const DefaultValues = `
[Log]
Level = "info"
Outputs = ["stderr"]

[Allocation]
AllEligiblePaths = ["./airdrop-allocations.csv"]
L1EligiblePaths = ["./l1_eligibility_list.csv"]
Timeout = "30s"

[Etherman]
L1URL = ""

[ClaimController]
TreeCacheSize = 16
L2TxGasLimit = 2097152
L2GasPerPubdataByteLimit = 800

[Server]
GRPCPort = "9090"
HTTPPort = "8080"
ReadTimeout = "5s"
WriteTimeout = "60s"

[Metrics]
Enabled = false
Port = "9091"
Endpoint = "/metrics"
Env = "mainnet"

[RateLimit]
Enabled = false
Backend = "memory"
Requests = 60
Window = "1m"
MaxKeys = 10000
FailClosed = false
    [RateLimit.Redis]
    IsClusterMode = false
    Addrs = ["localhost:6379"]
    Username = ""
    Password = ""
    DB = 0
    KeyPrefix = "airdrop_claim:ratelimit:"
`
