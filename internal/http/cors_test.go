package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/allisson/authtokens/internal/config"
)

func TestParseOrigins(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		want     []string
		allowAll bool
	}{
		{"empty", "", nil, false},
		{"single", "https://app.example.com", []string{"https://app.example.com"}, false},
		{
			"trims whitespace and trailing slash",
			" https://app.example.com/ , http://localhost:3000 ",
			[]string{"https://app.example.com", "http://localhost:3000"},
			false,
		},
		{"drops blanks", "https://app.example.com,,", []string{"https://app.example.com"}, false},
		{
			"skips malformed",
			"app.example.com,ftp://files.example.com,https://ok.example.com/path,https://ok.example.com",
			[]string{"https://ok.example.com"},
			false,
		},
		{"wildcard", "https://app.example.com,*", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origins, allowAll := parseOrigins(tt.raw, discardLogger())
			assert.Equal(t, tt.want, origins)
			assert.Equal(t, tt.allowAll, allowAll)
		})
	}
}

func TestNewCORSMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.Config
		wantNil bool
	}{
		{"disabled", &config.Config{CORSEnabled: false, CORSAllowOrigins: "https://app.example.com"}, true},
		{"no origins", &config.Config{CORSEnabled: true}, true},
		{"only invalid origins", &config.Config{CORSEnabled: true, CORSAllowOrigins: "not-an-origin"}, true},
		{"origins", &config.Config{CORSEnabled: true, CORSAllowOrigins: "https://app.example.com"}, false},
		{"wildcard", &config.Config{CORSEnabled: true, CORSAllowOrigins: "*"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			middleware := newCORSMiddleware(tt.cfg, discardLogger())
			assert.Equal(t, tt.wantNil, middleware == nil)
		})
	}
}

func TestCORSConfig(t *testing.T) {
	cfg := corsConfig([]string{"https://app.example.com"}, false)

	assert.False(t, cfg.AllowCredentials)
	assert.ElementsMatch(t, []string{"GET", "POST", "DELETE"}, cfg.AllowMethods)
	assert.Contains(t, cfg.ExposeHeaders, "X-Request-Id")
	assert.Equal(t, corsMaxAge, cfg.MaxAge)
	assert.NoError(t, cfg.Validate())
}

func serveWithCORS(cfg *config.Config, req *http.Request) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	if middleware := newCORSMiddleware(cfg, discardLogger()); middleware != nil {
		router.Use(middleware)
	}
	router.POST("/v1/tokens/validate", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"valid": true})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCORS_Requests(t *testing.T) {
	enabled := &config.Config{CORSEnabled: true, CORSAllowOrigins: "https://app.example.com"}

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/tokens/validate", nil)
		req.Header.Set("Origin", "https://app.example.com")

		w := serveWithCORS(enabled, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("foreign origin rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/tokens/validate", nil)
		req.Header.Set("Origin", "https://evil.example.com")

		w := serveWithCORS(enabled, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/tokens/validate", nil)
		req.Header.Set("Origin", "https://app.example.com")
		req.Header.Set("Access-Control-Request-Method", "POST")

		w := serveWithCORS(enabled, req)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
	})

	t.Run("disabled adds no headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/tokens/validate", nil)
		req.Header.Set("Origin", "https://app.example.com")

		w := serveWithCORS(&config.Config{}, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("wildcard", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/tokens/validate", nil)
		req.Header.Set("Origin", "https://anything.example.com")

		w := serveWithCORS(&config.Config{CORSEnabled: true, CORSAllowOrigins: "*"}, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}
