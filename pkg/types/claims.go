package types

import "github.com/golang-jwt/jwt/v5"

// Claims is the payload of every token the service signs. Fingerprint is
// only set on password reset tokens.
type Claims struct {
	UserID      uint   `json:"uid"`
	Fingerprint string `json:"pwd,omitempty"`
	jwt.RegisteredClaims
}
