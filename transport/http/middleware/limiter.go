package middleware

import (
	"errors"
	"flightbook/shared"
	"flightbook/shared/cache"
	"flightbook/shared/constant"
	"flightbook/transport/http/response"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit = "limiter"
	unknownAgent      = "unknown"
)

// RateLimit is a fixed-window counter per client kept in Redis. A cache outage lets requests through.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	limiter := a.config.App.RateLimiter

	return func(next http.Handler) http.Handler {
		if !limiter.Enable {
			return next
		}

		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			ctx := request.Context()
			cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, clientIP(request), userAgent(request))

			var count int

			err := a.cache.Get(ctx, cacheKey, &count)

			switch {
			case err == nil:
				count++
			case errors.Is(err, cache.Nil):
				count = 1
			default:
				log.Warn().Err(err).Msg("rate limiter cache unavailable")
				next.ServeHTTP(writer, request)

				return
			}

			if count > limiter.MaxRequests {
				response.WithRequestLimitExceeded(writer)

				return
			}

			if err = a.cache.Save(ctx, cacheKey, count, limiter.WindowSeconds); err != nil {
				log.Warn().Err(err).Msg("rate limiter failed to save counter")
			}

			writer.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(limiter.MaxRequests))
			writer.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, limiter.MaxRequests-count)))
			writer.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(limiter.WindowSeconds))

			next.ServeHTTP(writer, request)
		})
	}
}

func userAgent(request *http.Request) string {
	if ua := request.Header.Get(constant.RequestHeaderUserAgent); ua != "" {
		return ua
	}

	return unknownAgent
}

// clientIP prefers the first X-Forwarded-For hop, then X-Real-IP, then the socket address.
func clientIP(request *http.Request) string {
	if xff := request.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		first, _, _ := strings.Cut(xff, ",")

		return strings.TrimSpace(first)
	}

	if xri := request.Header.Get(constant.RequestHeaderRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}

	if host, _, err := net.SplitHostPort(request.RemoteAddr); err == nil {
		return host
	}

	return request.RemoteAddr
}
