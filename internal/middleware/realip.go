package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"
)

// ClientIPKey carries the resolved client network origin through the context.
const ClientIPKey contextKey = "clientIP"

// WithRealIP resolves the client's network origin from proxy headers with a
// fallback to the connection address. The value is an opaque best-effort
// string, not a resolved location.
func WithRealIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), ClientIPKey, resolveClientIP(r))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func resolveClientIP(r *http.Request) string {
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}

	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		// first hop is the originating client
		parts := strings.Split(fwd, ",")
		if ip := strings.TrimSpace(parts[0]); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// ClientIPFromContext returns the resolved origin, or "" when the middleware
// did not run.
func ClientIPFromContext(ctx context.Context) string {
	ip, _ := ctx.Value(ClientIPKey).(string)
	return ip
}
