package http

import (
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/allisson/authtokens/internal/config"
)

const corsMaxAge = 12 * time.Hour

// newCORSMiddleware returns nil when CORS is disabled or leaves no usable origin.
// "*" allows every origin. Anything else must be an http(s) origin.
func newCORSMiddleware(cfg *config.Config, logger *slog.Logger) gin.HandlerFunc {
	if !cfg.CORSEnabled {
		return nil
	}

	origins, allowAll := parseOrigins(cfg.CORSAllowOrigins, logger)
	if !allowAll && len(origins) == 0 {
		logger.Warn("CORS enabled but no valid origins configured, CORS will not be applied")
		return nil
	}

	logger.Info("CORS enabled", slog.Bool("allow_all_origins", allowAll), slog.Any("origins", origins))

	return cors.New(corsConfig(origins, allowAll))
}

func corsConfig(origins []string, allowAll bool) cors.Config {
	// The token API is called with explicit values in the body, never with cookies.
	return cors.Config{
		AllowAllOrigins:  allowAll,
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "DELETE"},
		AllowHeaders:     []string{"Content-Type", "X-Request-Id"},
		ExposeHeaders:    []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           corsMaxAge,
	}
}

// parseOrigins splits a comma-separated origin list. Blank entries are dropped and
// malformed ones are logged and skipped.
func parseOrigins(raw string, logger *slog.Logger) (origins []string, allowAll bool) {
	for _, part := range strings.Split(raw, ",") {
		origin := strings.TrimRight(strings.TrimSpace(part), "/")
		switch {
		case origin == "":
			continue
		case origin == "*":
			return nil, true
		case !isHTTPOrigin(origin):
			logger.Warn("ignoring invalid CORS origin", slog.String("origin", origin))
			continue
		}
		origins = append(origins, origin)
	}
	return origins, false
}

func isHTTPOrigin(origin string) bool {
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && (u.Path == "" || u.Path == "/")
}
