package middleware

import (
	"crypto/rand"
	"crypto/rsa"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, key *rsa.PrivateKey, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}

func newAuthFixture(t *testing.T) (*rsa.PrivateKey, http.Handler, *string) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	var seenPrincipal string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenPrincipal = PrincipalFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	return key, AuthMiddleware(&key.PublicKey)(next), &seenPrincipal
}

func TestAuthMiddleware(t *testing.T) {
	key, handler, seenPrincipal := newAuthFixture(t)

	validClaims := func() jwt.MapClaims {
		return jwt.MapClaims{
			"sub": "user-42",
			"iss": TokenIssuer,
			"exp": time.Now().Add(time.Hour).Unix(),
		}
	}

	t.Run("BearerTokenPasses", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, key, validClaims()))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "user-42", *seenPrincipal)
	})

	t.Run("CookieFallbackPasses", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
		req.AddCookie(&http.Cookie{Name: AccessTokenCookieName, Value: signToken(t, key, validClaims())})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("MissingTokenFails", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("ExpiredTokenFails", func(t *testing.T) {
		claims := validClaims()
		claims["exp"] = time.Now().Add(-time.Minute).Unix()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, key, claims))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("WrongIssuerFails", func(t *testing.T) {
		claims := validClaims()
		claims["iss"] = "somebody-else"
		req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, key, claims))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("WrongKeyFails", func(t *testing.T) {
		otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, otherKey, validClaims()))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("HMACTokenIsRejected", func(t *testing.T) {
		// alg confusion: a symmetric token signed with the public key bytes
		// must not verify.
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, validClaims())
		signed, err := token.SignedString([]byte("shared-secret"))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
