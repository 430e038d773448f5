package metrics

const (
	defaultMetricsEndpoint = "/metrics"
)

// Metric types
const (
	typeCounter   = "counter"
	typeHistogram = "histogram"
)

// Metric names and labels
const (
	prefix   = "airdrop_claim_"
	labelEnv = "env"

	prefixRequest        = prefix + "request_"
	metricRequestCount   = prefixRequest + "count"
	metricRequestLatency = prefixRequest + "latency_ms"
	labelMethod          = "method"
	labelIsSuccess       = "is_success"

	prefixClaim              = prefix + "claim_"
	metricClaimResolveCount  = prefixClaim + "resolve_count"
	metricClaimMatchedCount  = prefixClaim + "matched_allocations"
	metricUpstreamQueryCount = prefixClaim + "upstream_query_count"
	labelFlow                = "flow"
	labelResult              = "result"

	prefixTree             = prefix + "tree_"
	metricTreeBuildCount   = prefixTree + "build_count"
	metricTreeBuildLatency = prefixTree + "build_latency_ms"
	metricTreeLeafCount    = prefixTree + "leaf_count"

	prefixRateLimit         = prefix + "ratelimit_"
	metricRateLimitRejected = prefixRateLimit + "rejected_count"
)
