package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/storekit/commerce-api/internal/core/ports"
)

// Auth validates the bearer JWT, rejects revoked tokens, and injects the
// caller identity into context. A token is accepted only while its jti is
// still live in the token store; once logout removes it the same JWT is
// never revalidated.
func Auth(jwtSecret string, tokens ports.TokenStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			jti, _ := claims["jti"].(string)
			if jti == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			live, err := tokens.IsLive(c.Request().Context(), jti)
			if err != nil {
				return err
			}
			if !live {
				return echo.NewHTTPError(http.StatusUnauthorized, "token revoked")
			}

			c.Set("user_id", claims["sub"])
			c.Set("email", claims["email"])

			return next(c)
		}
	}
}
