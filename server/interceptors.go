package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/0xPolygonHermez/zkevm-node/log"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/zkairdrop/claim-service/metrics"
	"github.com/zkairdrop/claim-service/ratelimit"
	"github.com/zkairdrop/claim-service/utils/gerror"
)

const headerRequestID = "X-Request-Id"

// NewRequestLogMiddleware logs every request with its outcome and processing time
func NewRequestLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		requestID := c.GetHeader(headerRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(headerRequestID, requestID)

		// Actual process of the request
		c.Next()

		log.WithFields("requestID", requestID, "clientIP", c.ClientIP()).
			Infof("method[%v %v] command[%v] status[%v] err[%v] processTime[%v]",
				c.Request.Method, c.FullPath(), c.GetString(contextKeyCommand), c.Writer.Status(), c.Errors.Last(), time.Since(startTime).String())
	}
}

// NewRequestMetricsMiddleware records the request metrics to prometheus
func NewRequestMetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		// Actual process of the request
		c.Next()

		method := c.GetString(contextKeyCommand)
		if method == "" {
			method = c.FullPath()
		}
		isSuccess := c.Writer.Status() < http.StatusBadRequest
		metrics.RecordRequest(method, isSuccess)
		metrics.RecordRequestLatency(method, time.Since(startTime), isSuccess)
	}
}

// NewRateLimitMiddleware limits the requests of one client on one route. A nil limiter disables it.
func NewRateLimitMiddleware(limiter ratelimit.Limiter, cfg ratelimit.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil || cfg.Requests <= 0 {
			c.Next()
			return
		}
		key := "ip:" + c.ClientIP() + ":route:" + c.FullPath()
		decision, err := limiter.Allow(c.Request.Context(), key, cfg.Requests, cfg.Window.Duration)
		if err != nil {
			log.Warnf("rate limiter unavailable: %v", err)
			if cfg.FailClosed {
				rejectRateLimited(c)
				return
			}
			c.Next()
			return
		}
		writeRateLimitHeaders(c, decision)
		if !decision.Allowed {
			rejectRateLimited(c)
			return
		}
		c.Next()
	}
}

func rejectRateLimited(c *gin.Context) {
	metrics.RecordRateLimited(c.FullPath())
	_ = c.Error(gerror.ErrRateLimited)
	c.AbortWithStatusJSON(gerror.HTTPStatus(gerror.ErrRateLimited), ErrorResponse{Error: gerror.ErrRateLimited.Error()})
}

func writeRateLimitHeaders(c *gin.Context, decision ratelimit.Decision) {
	if decision.Limit > 0 {
		c.Header("RateLimit-Limit", strconv.Itoa(decision.Limit))
	}
	if decision.Remaining >= 0 {
		c.Header("RateLimit-Remaining", strconv.Itoa(decision.Remaining))
	}
	if !decision.ResetAt.IsZero() {
		c.Header("RateLimit-Reset", strconv.FormatInt(decision.ResetAt.Unix(), 10))
		if !decision.Allowed {
			retryAfter := int64(time.Until(decision.ResetAt).Seconds())
			if retryAfter < 0 {
				retryAfter = 0
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
		}
	}
}
