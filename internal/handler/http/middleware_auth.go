package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/pimmuno/protectconf/internal/logger"
	"github.com/pimmuno/protectconf/internal/utils"

	"github.com/golang-jwt/jwt/v5"
)

// withAuth guards destructive routes with bearer-token authentication.
//
// Auth is optional for the daemon as a whole: with no token sign key
// configured the middleware passes everything through, so a protectconfd on
// a trusted host needs no token handling. With a key configured, the token
// from the Authorization header must validate against the daemon's sign key
// and issuer; the caller identity from its subject claim is then stored
// under [utils.ClientCtxKey] so downstream handlers can log who asked.
// Missing, malformed, expired, or otherwise invalid credentials answer 401.
func (h *Handler) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.auth.TokenSignKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		header := r.Header.Get("Authorization")
		if header == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := bearerToken(header)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		token, err := utils.ValidateAndParseAPIToken(tokenString, h.auth.TokenSignKey, h.auth.TokenIssuer)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				log.Err(err).Msg("rejected expired token")
				http.Error(w, "token expired", http.StatusUnauthorized)
				return
			}

			log.Err(err).Msg("rejected invalid token")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), utils.ClientCtxKey, token.Client)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerToken splits "<scheme> <token>" and returns the token part.
// [ErrInvalidAuthorizationHeader] flags a header without a scheme separator;
// [ErrEmptyToken] flags a scheme with nothing after it.
func bearerToken(header string) (string, error) {
	_, token, found := strings.Cut(header, " ")
	if !found {
		return "", ErrInvalidAuthorizationHeader
	}
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}
