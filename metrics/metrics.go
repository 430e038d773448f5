package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Claim resolution results
const (
	ResultEligible   = "eligible"
	ResultIneligible = "ineligible"
	ResultError      = "error"
)

// env labels every sample, it is guarded by mutex
var env string

func getEnv() string {
	mutex.RLock()
	defer mutex.RUnlock()
	return env
}

func initMetrics(r prometheus.Registerer, environment string) {
	mutex.Lock()
	env = environment
	if !initialized {
		registerer = r
		counters = make(map[string]*prometheus.CounterVec)
		histograms = make(map[string]*prometheus.HistogramVec)
		initialized = true
	}
	mutex.Unlock()

	registerCounter(prometheus.CounterOpts{Name: metricRequestCount}, labelEnv, labelMethod, labelIsSuccess)
	registerHistogram(prometheus.HistogramOpts{Name: metricRequestLatency}, labelEnv, labelMethod, labelIsSuccess)
	registerCounter(prometheus.CounterOpts{Name: metricClaimResolveCount}, labelEnv, labelFlow, labelResult)
	registerHistogram(prometheus.HistogramOpts{Name: metricClaimMatchedCount, Buckets: prometheus.LinearBuckets(0, 1, 5)}, labelEnv, labelFlow) //nolint:gomnd
	registerCounter(prometheus.CounterOpts{Name: metricUpstreamQueryCount}, labelEnv, labelIsSuccess)
	registerCounter(prometheus.CounterOpts{Name: metricTreeBuildCount}, labelEnv)
	registerHistogram(prometheus.HistogramOpts{Name: metricTreeBuildLatency}, labelEnv)
	registerHistogram(prometheus.HistogramOpts{Name: metricTreeLeafCount, Buckets: prometheus.ExponentialBuckets(1, 10, 8)}, labelEnv) //nolint:gomnd
	registerCounter(prometheus.CounterOpts{Name: metricRateLimitRejected}, labelEnv, labelMethod)
}

// RecordRequest increments the request count for the method
func RecordRequest(method string, isSuccess bool) {
	counterInc(metricRequestCount, map[string]string{labelEnv: getEnv(), labelMethod: method, labelIsSuccess: strconv.FormatBool(isSuccess)})
}

// RecordRequestLatency records the latency histogram in milliseconds
func RecordRequestLatency(method string, latency time.Duration, isSuccess bool) {
	histogramObserve(metricRequestLatency, float64(latency.Milliseconds()), map[string]string{labelEnv: getEnv(), labelMethod: method, labelIsSuccess: strconv.FormatBool(isSuccess)})
}

// RecordClaimResolution records the outcome of one eligibility lookup.
// flow is either "l1" or "l2", matched is the number of distributors that hold the address
func RecordClaimResolution(flow, result string, matched int) {
	counterInc(metricClaimResolveCount, map[string]string{labelEnv: getEnv(), labelFlow: flow, labelResult: result})
	if result == ResultEligible {
		histogramObserve(metricClaimMatchedCount, float64(matched), map[string]string{labelEnv: getEnv(), labelFlow: flow})
	}
}

// RecordUpstreamQuery counts the bridgehub reads
func RecordUpstreamQuery(isSuccess bool) {
	counterInc(metricUpstreamQueryCount, map[string]string{labelEnv: getEnv(), labelIsSuccess: strconv.FormatBool(isSuccess)})
}

// RecordTreeBuild records one merkle tree construction
func RecordTreeBuild(leaves int, dur time.Duration) {
	labels := map[string]string{labelEnv: getEnv()}
	counterInc(metricTreeBuildCount, labels)
	histogramObserve(metricTreeBuildLatency, float64(dur.Milliseconds()), labels)
	histogramObserve(metricTreeLeafCount, float64(leaves), labels)
}

// RecordRateLimited counts the requests rejected by the rate limiter
func RecordRateLimited(method string) {
	counterInc(metricRateLimitRejected, map[string]string{labelEnv: getEnv(), labelMethod: method})
}
