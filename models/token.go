package models

import "github.com/golang-jwt/jwt/v5"

// Token is an API credential for protectconfd's destructive routes.
//
// The embedded [jwt.Token] and [jwt.RegisteredClaims] cover signing and
// standard claim access. SignedString carries the compact form sent in the
// Authorization header, and Client caches the subject claim (the operator or
// automation identity the token was minted for) after a successful parse.
// None of the fields serialize to JSON; only the compact string ever leaves
// the process.
type Token struct {
	*jwt.Token `json:"-"`
	jwt.RegisteredClaims

	SignedString string `json:"-"`
	Client       string `json:"-"`
}

// GetClient returns the caller identity from the subject claim.
func (t *Token) GetClient() (string, error) {
	return t.GetSubject()
}

// String returns the compact JWS serialization, implementing [fmt.Stringer].
func (t *Token) String() string {
	return t.SignedString
}
