package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/tripstats/internal/pkg/models"
	"github.com/piresc/tripstats/internal/utils"
)

const (
	APIKeyHeader = "X-API-Key"

	// Context key holding the name of the caller whose key matched
	ContextKeyCaller = "api_caller"
)

// APIKeys maps a caller name to the key it presents
type APIKeys map[string]string

// APIKeysFromConfig builds the key table for internal routes
func APIKeysFromConfig(cfg models.APIKeyConfig) APIKeys {
	return APIKeys{
		"scheduler": cfg.Scheduler,
		"admin":     cfg.Admin,
	}
}

// ValidateAPIKey accepts requests whose X-API-Key matches the key of one of the allowed callers
func ValidateAPIKey(keys APIKeys, allowedCallers ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.UnauthorizedResponse(c, "API key is required")
			}

			for _, caller := range allowedCallers {
				expected := keys[caller]
				if expected == "" {
					continue
				}
				if subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) == 1 {
					c.Set(ContextKeyCaller, caller)
					return next(c)
				}
			}

			return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid API key")
		}
	}
}
