package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Astemirdum/e-library/pkg/auth"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/time/rate"
)

const (
	AuthorizationHeader = "Authorization"
	bearer              = "Bearer "
)

type TokenParser interface {
	Parse(tokenStr string) (*auth.Claims, error)
}

// ProfileLoader resolves a token profile to the current one, failing for
// users that no longer exist or were deactivated.
type ProfileLoader func(ctx context.Context, p auth.Profile) (auth.Profile, error)

// JwtAuthentication accepts the token from the Authorization header
// or from the jwt cookie and stores the profile in the request context.
// A non-nil load replaces the token profile with the stored one.
func JwtAuthentication(tp TokenParser, load ProfileLoader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var tokenStr string
			if authorization := c.Request().Header.Get(AuthorizationHeader); authorization != "" {
				if !strings.HasPrefix(authorization, bearer) {
					return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Authorization Header")
				}
				tokenStr = strings.TrimPrefix(authorization, bearer)
			} else if cookie, err := c.Cookie(auth.CookieName); err == nil {
				tokenStr = cookie.Value
			}
			if tokenStr == "" || tokenStr == "loggedout" {
				return echo.NewHTTPError(http.StatusUnauthorized, "You are not logged in! Please log in to get access.")
			}

			claims, err := tp.Parse(tokenStr)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}

			req := c.Request()
			p := claims.Profile
			if load != nil {
				if p, err = load(req.Context(), p); err != nil {
					return err
				}
			}
			c.SetRequest(req.WithContext(auth.SetAuthContext(req.Context(), p)))
			return next(c)
		}
	}
}

func RestrictTo(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := auth.FromContext(c.Request().Context())
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "You are not logged in! Please log in to get access.")
			}
			for _, role := range roles {
				if p.Role == role {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "You do not have permission to perform this action")
		}
	}
}

func NewRateLimiter(rps rate.Limit) echo.MiddlewareFunc {
	return middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rps))
}

func RequestLoggerConfig(log *zap.Logger) middleware.RequestLoggerConfig {
	log = log.Named("echo")
	return middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		HandleError:  true,
		LogError:     true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := zapcore.InfoLevel
			if v.Error != nil {
				level = zapcore.ErrorLevel
			}
			log.Log(level, "request",
				zap.String("URI", v.URI),
				zap.String("Method", v.Method),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.Error(v.Error),
				zap.String("request_id", v.RequestID),
			)
			return nil
		},
	}
}
