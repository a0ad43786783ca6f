package middleware

import (
	"context"

	"internhub/core/constants"
	"internhub/core/errors"
	"internhub/core/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TokenBlacklist is the part of the cache the middleware needs.
type TokenBlacklist interface {
	IsTokenBlacklisted(ctx context.Context, token string) (bool, error)
}

type Middleware struct {
	blacklist TokenBlacklist
}

func NewMiddleware(blacklist TokenBlacklist) *Middleware {
	return &Middleware{blacklist: blacklist}
}

// AuthMiddleware rejects requests without a valid, non-revoked access token
// and stores the token data on the echo context.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := utils.GetTokenFromHeader(c.Request().Header.Get("Authorization"))
			if err != nil {
				return echo.NewHTTPError(401, errors.NewAppError(errors.ErrUnauthorized, "unauthorized", err))
			}

			tokenData, err := utils.ValidateAndParseToken(token)
			if err != nil {
				return echo.NewHTTPError(401, err)
			}
			if tokenData.Scope != constants.ScopeTokenAccess {
				return echo.NewHTTPError(401, errors.NewAppError(errors.ErrUnauthorized, "wrong token scope", nil))
			}

			if m.blacklist != nil {
				blacklisted, err := m.blacklist.IsTokenBlacklisted(c.Request().Context(), token)
				if err == nil && blacklisted {
					return echo.NewHTTPError(401, errors.NewAppError(errors.ErrUnauthorized, "token revoked", nil))
				}
			}

			c.Set(constants.ContextTokenData, tokenData)
			c.Set(constants.ContextUserID, tokenData.UserID)
			return next(c)
		}
	}
}

// UserID reads the authenticated user from the echo context.
func UserID(c echo.Context) (uuid.UUID, error) {
	id, ok := c.Get(constants.ContextUserID).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "no authenticated user in context", nil)
	}
	return id, nil
}
