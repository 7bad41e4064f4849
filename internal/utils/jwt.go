package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/pimmuno/protectconf/models"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateAPIToken mints a signed HMAC-SHA256 JWT for a protectconfd API
// caller. The client identity (operator or automation name) goes into the
// subject claim and the token expires tokenDuration from now. All four
// parameters are required.
func GenerateAPIToken(issuer, client string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || client == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("token issuer, client, duration and sign key are all required")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   client,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("signing API token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, Client: client}, nil
}

// ValidateAndParseAPIToken verifies a compact token string against the sign
// key and the expected issuer. Only HMAC-signed tokens are accepted, and a
// token without a subject claim is rejected even when otherwise valid. On
// success the returned Token carries the caller identity in Client.
func ValidateAndParseAPIToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Token{}, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("parsing API token: %w", err)
	}

	client, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("reading token subject: %w", err)
	}
	if client == "" {
		return models.Token{}, errors.New("token has no subject claim")
	}

	return models.Token{Token: token, Client: client}, nil
}
