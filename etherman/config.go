package etherman

// Config represents the configuration of the etherman
type Config struct {
	// L1URL is the default L1 JSON-RPC endpoint, used when a request carries none
	L1URL string `mapstructure:"L1URL"`
}
