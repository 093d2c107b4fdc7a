package middleware

import (
	"context"
	"crypto/rsa"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/binahub/building-service/internal/utils"
)

// TokenIssuer identifies the identity provider that signs access tokens.
const TokenIssuer = "BinaHub"

type contextKey string

const (
	ContextKeyPrincipal = contextKey("principal")

	// Cookie name follows the __Host- prefix rule (no Domain attribute allowed)
	AccessTokenCookieName = "__Host-accessToken"
)

// AuthMiddleware guards member endpoints. The JWT comes from
// Authorization: Bearer when present, otherwise from the access-token
// cookie. The `sub` claim is the caller principal and lands in the request
// context under ContextKeyPrincipal.
func AuthMiddleware(pub *rsa.PublicKey) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, err := extractAccessToken(r)
			if err != nil {
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, err.Error(), nil,
				)
				return
			}

			principal, vErr := validateToken(tokenStr, pub)
			if vErr != nil {
				if errors.Is(vErr, jwt.ErrTokenExpired) {
					utils.RespondErrorWithCode(
						w, http.StatusUnauthorized, utils.ErrCodeTokenExpired, "Token expired", vErr,
					)
					return
				}
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid token", vErr,
				)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyPrincipal, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// validateToken checks signature, expiry, issuer and subject, and returns
// the caller principal.
func validateToken(tokenString string, publicKey *rsa.PublicKey) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return "", errors.New("unexpected signing method")
		}
		return publicKey, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token claims")
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return "", errors.New("missing expiration claim")
	}
	if time.Unix(int64(exp), 0).Before(time.Now()) {
		return "", jwt.ErrTokenExpired
	}

	iss, ok := claims["iss"].(string)
	if !ok {
		return "", errors.New("missing issuer claim")
	}
	if iss != TokenIssuer {
		return "", errors.New("invalid token issuer")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("missing subject claim")
	}
	return sub, nil
}

// helper: prefer the Bearer header, fall back to the cookie
func extractAccessToken(r *http.Request) (string, error) {
	if h := r.Header.Get("Authorization"); h != "" {
		if !strings.HasPrefix(h, "Bearer ") {
			return "", errors.New("malformed Authorization header")
		}
		return strings.TrimPrefix(h, "Bearer "), nil
	}

	c, err := r.Cookie(AccessTokenCookieName)
	if err != nil || c.Value == "" {
		return "", errors.New("missing access token")
	}
	return c.Value, nil
}

// PrincipalFromContext returns the authenticated caller principal, or ""
// when the request did not pass AuthMiddleware.
func PrincipalFromContext(ctx context.Context) string {
	principal, _ := ctx.Value(ContextKeyPrincipal).(string)
	return principal
}
