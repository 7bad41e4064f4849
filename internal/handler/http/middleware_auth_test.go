package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pimmuno/protectconf/internal/logger"
	"github.com/pimmuno/protectconf/internal/settings"
	"github.com/pimmuno/protectconf/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ──────────────────────────────────────────────────────────────

const (
	testSignKey = "unit-test-sign-key"
	testIssuer  = "protectconfd-test"
)

// newAuthTestHandler builds a Handler with authentication enabled.
func newAuthTestHandler() *Handler {
	return &Handler{
		auth: settings.Auth{
			TokenSignKey:  testSignKey,
			TokenIssuer:   testIssuer,
			TokenDuration: time.Hour,
		},
		logger: logger.Nop(),
	}
}

// mintToken signs a token for the given client, valid for an hour.
func mintToken(t *testing.T, client string) string {
	t.Helper()

	token, err := utils.GenerateAPIToken(testIssuer, client, time.Hour, testSignKey)
	require.NoError(t, err)
	return token.SignedString
}

// runAuthMiddleware sends one request through withAuth and reports whether
// the wrapped handler ran, plus the caller identity it observed.
func runAuthMiddleware(h *Handler, authHeader string) (rec *httptest.ResponseRecorder, nextCalled bool, client string) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		client, _ = utils.GetClientFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodDelete, "/api/runs/run-1", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	rec = httptest.NewRecorder()
	h.withAuth(next).ServeHTTP(rec, req)
	return rec, nextCalled, client
}

// ── disabled auth ────────────────────────────────────────────────────────

// TestWithAuth_DisabledPassesThrough verifies that without a configured sign
// key the middleware forwards every request untouched.
func TestWithAuth_DisabledPassesThrough(t *testing.T) {
	h := &Handler{auth: settings.Auth{}, logger: logger.Nop()}

	rec, nextCalled, client := runAuthMiddleware(h, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, nextCalled)
	assert.Empty(t, client)
}

// ── enabled auth rejections ──────────────────────────────────────────────

// TestWithAuth_Rejections verifies the 401 paths for missing or malformed
// credentials.
func TestWithAuth_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
		wantInBody string
	}{
		{
			name:       "missing header",
			authHeader: "",
			wantInBody: ErrEmptyAuthorizationHeader.Error(),
		},
		{
			name:       "header without token",
			authHeader: "Bearer",
			wantInBody: ErrInvalidAuthorizationHeader.Error(),
		},
		{
			name:       "empty token value",
			authHeader: "Bearer ",
			wantInBody: ErrEmptyToken.Error(),
		},
		{
			name:       "garbage token",
			authHeader: "Bearer not.a.jwt",
			wantInBody: http.StatusText(http.StatusUnauthorized),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newAuthTestHandler()

			rec, nextCalled, _ := runAuthMiddleware(h, tt.authHeader)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, nextCalled)
			assert.Contains(t, rec.Body.String(), tt.wantInBody)
		})
	}
}

// TestWithAuth_WrongSignKey verifies that a token signed with a different
// key is rejected.
func TestWithAuth_WrongSignKey(t *testing.T) {
	h := newAuthTestHandler()

	token, err := utils.GenerateAPIToken(testIssuer, "intruder", time.Hour, "some-other-key")
	require.NoError(t, err)

	rec, nextCalled, _ := runAuthMiddleware(h, "Bearer "+token.SignedString)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
}

// TestWithAuth_WrongIssuer verifies that a token from a different issuer is
// rejected even when the signature checks out.
func TestWithAuth_WrongIssuer(t *testing.T) {
	h := newAuthTestHandler()

	token, err := utils.GenerateAPIToken("some-other-service", "operator", time.Hour, testSignKey)
	require.NoError(t, err)

	rec, nextCalled, _ := runAuthMiddleware(h, "Bearer "+token.SignedString)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
}

// TestWithAuth_ExpiredToken verifies that expiry is reported explicitly.
func TestWithAuth_ExpiredToken(t *testing.T) {
	h := newAuthTestHandler()

	token, err := utils.GenerateAPIToken(testIssuer, "operator", -time.Minute, testSignKey)
	require.NoError(t, err)

	rec, nextCalled, _ := runAuthMiddleware(h, "Bearer "+token.SignedString)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
	assert.Contains(t, rec.Body.String(), "token expired")
}

// ── enabled auth success ─────────────────────────────────────────────────

// TestWithAuth_ValidToken verifies that a valid bearer token passes and the
// caller identity lands in the request context.
func TestWithAuth_ValidToken(t *testing.T) {
	h := newAuthTestHandler()

	rec, nextCalled, client := runAuthMiddleware(h, "Bearer "+mintToken(t, "release-bot"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, nextCalled)
	assert.Equal(t, "release-bot", client)
}
