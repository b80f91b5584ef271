package jwtinfra

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"os"

	"github.com/gcn-portal/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

// Claims holds the identity-provider token fields the portal reads.
type Claims struct {
	Email    string   `json:"email"`
	Username string   `json:"cognito:username"`
	Groups   []string `json:"cognito:groups"`
	jwt.RegisteredClaims
}

// SubIss is the per-issuer identity key: sub + "_" + iss.
func (c *Claims) SubIss() string {
	return c.Subject + "_" + c.Issuer
}

// Verifier checks RS256 bearer tokens issued by the identity provider.
type Verifier struct {
	publicKey *rsa.PublicKey
	opts      []jwt.ParserOption
}

func NewVerifier(cfg *config.Config) (*Verifier, error) {
	pubBytes, err := os.ReadFile(cfg.JWTPublicKeyPath)
	if err != nil {
		return nil, fmt.Errorf("read public key: %w", err)
	}
	pubKey, err := jwt.ParseRSAPublicKeyFromPEM(pubBytes)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}
	return NewVerifierFromKey(pubKey, cfg.JWTIssuer), nil
}

// NewVerifierFromKey builds a Verifier for an already-parsed key. An empty
// issuer accepts tokens from any issuer.
func NewVerifierFromKey(pub *rsa.PublicKey, issuer string) *Verifier {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	return &Verifier{publicKey: pub, opts: opts}
}

func (v *Verifier) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return v.publicKey, nil
	}, v.opts...)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}
	return claims, nil
}
