package v1

import (
	"net/http"
	"strconv"

	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sethvargo/go-limiter"
)

// RequestIDHeader carries the per-request identifier.
const RequestIDHeader = "X-Request-ID"

// RequestID assigns a UUID to every request that does not already carry one.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		ctx.Set(RequestIDHeader, id)
		ctx.Header(RequestIDHeader, id)
		ctx.Next()
	}
}

// RateLimit takes one token per request from the bucket of the matched route.
// Requests over the limit are answered with 429.
func RateLimit(store limiter.Store, log logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		key := ctx.FullPath()
		if key == "" {
			key = ctx.Request.URL.Path
		}

		limit, remaining, reset, ok, err := store.Take(ctx.Request.Context(), key)
		if err != nil {
			log.Error("Rate limiter failed for ", key, ": ", err)
			respondError(ctx, http.StatusInternalServerError, "rate limiter unavailable")
			return
		}

		ctx.Header("X-RateLimit-Limit", strconv.FormatUint(limit, 10))
		ctx.Header("X-RateLimit-Remaining", strconv.FormatUint(remaining, 10))
		ctx.Header("X-RateLimit-Reset", strconv.FormatUint(reset, 10))

		if !ok {
			log.Warn("Rate limit exceeded for ", key)
			respondError(ctx, http.StatusTooManyRequests, "too many requests")
			return
		}
		ctx.Next()
	}
}

// BodyLimit caps the request body size.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxBytes)
		ctx.Next()
	}
}
