package middleware

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gcn-portal/internal/domain"
	jwtinfra "github.com/gcn-portal/internal/infrastructure/jwt"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	err error
}

func (s stubResolver) Resolve(_ context.Context, c *jwtinfra.Claims) (domain.Identity, error) {
	if s.err != nil {
		return domain.Identity{}, s.err
	}
	return domain.Identity{Sub: c.Subject, SubIss: c.SubIss(), Groups: c.Groups}, nil
}

func okHandler(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }

// newTestVerifier generates a fresh RSA key pair and returns a verifier for
// it along with a function that signs tokens with the private half.
func newTestVerifier(t *testing.T) (*jwtinfra.Verifier, func(sub string, exp time.Time) string) {
	t.Helper()
	privKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	sign := func(sub string, exp time.Time) string {
		s, err := jwt.NewWithClaims(jwt.SigningMethodRS256, jwtinfra.Claims{
			Groups: []string{"g1"},
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   sub,
				Issuer:    "iss",
				ExpiresAt: jwt.NewNumericDate(exp),
			},
		}).SignedString(privKey)
		require.NoError(t, err)
		return s
	}
	return jwtinfra.NewVerifierFromKey(&privKey.PublicKey, ""), sign
}

func TestAuth_MissingHeader(t *testing.T) {
	v, _ := newTestVerifier(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	Auth(v, stubResolver{})(http.HandlerFunc(okHandler)).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.JSONEq(t, `{"error":"not signed in"}`, rr.Body.String())
}

func TestAuth_BadToken(t *testing.T) {
	v, _ := newTestVerifier(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	rr := httptest.NewRecorder()
	Auth(v, stubResolver{})(http.HandlerFunc(okHandler)).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestAuth_ExpiredToken(t *testing.T) {
	v, sign := newTestVerifier(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+sign("sub-1", time.Now().Add(-time.Minute)))
	rr := httptest.NewRecorder()
	Auth(v, stubResolver{})(http.HandlerFunc(okHandler)).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestAuth_ValidToken_InjectsIdentity(t *testing.T) {
	v, sign := newTestVerifier(t)

	var got domain.Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ok bool
		got, ok = IdentityFromContext(r.Context())
		require.True(t, ok)
		w.WriteHeader(http.StatusOK)
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+sign("sub-1", time.Now().Add(time.Hour)))
	rr := httptest.NewRecorder()
	Auth(v, stubResolver{})(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "sub-1", got.Sub)
	assert.Equal(t, "sub-1_iss", got.SubIss)
	assert.Equal(t, []string{"g1"}, got.Groups)
}

func TestAuth_ResolverErrors(t *testing.T) {
	v, sign := newTestVerifier(t)
	tests := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("refresh: %w", domain.ErrUpstream), http.StatusBadGateway},
		{fmt.Errorf("no subject: %w", domain.ErrForbidden), http.StatusForbidden},
		{errors.New("other"), http.StatusForbidden},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+sign("sub-1", time.Now().Add(time.Hour)))
		rr := httptest.NewRecorder()
		Auth(v, stubResolver{err: tt.err})(http.HandlerFunc(okHandler)).ServeHTTP(rr, req)
		assert.Equal(t, tt.code, rr.Code, tt.err.Error())
	}
}

func TestIdentityFromContext_Empty(t *testing.T) {
	_, ok := IdentityFromContext(context.Background())
	assert.False(t, ok)
	_, ok = IdentityFromContext(WithIdentity(context.Background(), domain.Identity{}))
	assert.False(t, ok)
}
