package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// corsMaxAge is how long a browser may cache a preflight response.
const corsMaxAge = 10 * time.Minute

// SecurityConfig controls the security headers, CORS policy, and the
// magnitude cap the compute API enforces per request.
type SecurityConfig struct {
	// EnableCORS turns on Access-Control-* response headers.
	EnableCORS bool
	// AllowedOrigins is checked against the request's Origin header. A
	// single "*" entry allows any origin.
	AllowedOrigins []string
	// AllowedMethods is advertised in Access-Control-Allow-Methods.
	AllowedMethods []string
	// MaxLimbs rejects any compute request whose parsed operands or result
	// would exceed this many 32-bit limbs, the HTTP analogue of the CLI's
	// --max-limbs flag.
	MaxLimbs int
}

// DefaultSecurityConfig returns the security policy applied when the
// server is started without overrides: CORS open to any origin for
// read-only GET requests, and a one-million-limb cap (roughly a
// 32-million-bit magnitude) on any single operand or result.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		EnableCORS:     true,
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		MaxLimbs:       1_000_000,
	}
}

// SecurityMiddleware sets standard security headers on every response,
// handles CORS (including OPTIONS preflight), and otherwise delegates to
// next.
func SecurityMiddleware(cfg SecurityConfig, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		w.Header().Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		if cfg.EnableCORS {
			if origin := allowedOrigin(cfg, r.Header.Get("Origin")); origin != "" {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", strings.Join(cfg.AllowedMethods, ", "))
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
				w.Header().Set("Access-Control-Max-Age", strconv.Itoa(int(corsMaxAge.Seconds())))
			}
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next(w, r)
	}
}

// allowedOrigin returns the Access-Control-Allow-Origin value to send for
// origin, or "" if origin is not permitted by cfg.
func allowedOrigin(cfg SecurityConfig, origin string) string {
	for _, allowed := range cfg.AllowedOrigins {
		if allowed == "*" {
			return "*"
		}
		if allowed == origin && origin != "" {
			return origin
		}
	}
	return ""
}
