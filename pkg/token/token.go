package token

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/linskybing/tracker-go/pkg/types"
)

const (
	AudienceSession       = "session"
	AudiencePasswordReset = "password_reset"
)

var ErrInvalidToken = errors.New("invalid token")

var (
	signingKey []byte
	issuer     string
)

// Init sets the signing key and issuer used by Issue and Parse.
func Init(secret, iss string) {
	signingKey = []byte(secret)
	issuer = iss
}

// Issue signs an HS256 token for userID scoped to audience.
var Issue = func(userID uint, audience string, ttl time.Duration, fingerprint string) (string, error) {
	now := time.Now()
	claims := &types.Claims{
		UserID:      userID,
		Fingerprint: fingerprint,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			Audience:  jwt.ClaimStrings{audience},
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse validates signature, expiry, issuer and audience. Any failure is
// reported as ErrInvalidToken wrapping the parser's reason.
func Parse(tokenStr, audience string) (*types.Claims, error) {
	claims := &types.Claims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims,
		func(t *jwt.Token) (interface{}, error) {
			return signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(audience),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	sub, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || uint(sub) != claims.UserID || claims.UserID == 0 {
		return nil, fmt.Errorf("%w: subject mismatch", ErrInvalidToken)
	}
	return claims, nil
}

// Fingerprint derives a short digest of a password hash. Embedding it in a
// reset token ties the token to the password it was issued against.
func Fingerprint(passwordHash string) string {
	sum := sha256.Sum256([]byte(passwordHash))
	return hex.EncodeToString(sum[:8])
}
