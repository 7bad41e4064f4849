package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pimmuno/protectconf/internal/logger"
	"github.com/pimmuno/protectconf/internal/mock"
	"github.com/pimmuno/protectconf/internal/service"
	"github.com/pimmuno/protectconf/internal/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newHandlerWithAppInfo builds a Handler whose app info service reports the
// given version. All other service fields are left nil because
// getServerVersion does not use them.
func newHandlerWithAppInfo(t *testing.T, ctrl *gomock.Controller, version string) *Handler {
	t.Helper()

	appInfo := mock.NewMockAppInfoService(ctrl)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(version).AnyTimes()

	return NewHandler(
		&service.Services{AppInfo: appInfo},
		settings.Auth{},
		logger.Nop(),
	)
}

func TestGetServerVersion_ReportsBuildMetadata(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	const want = "1.2.3"
	h := newHandlerWithAppInfo(t, ctrl, want)

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()

	h.getServerVersion(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, want, rec.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
}

func TestGetServerVersion_VersionWithBuildMetadata(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	const want = "v2.0.0-beta+build.42"
	h := newHandlerWithAppInfo(t, ctrl, want)

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()

	h.getServerVersion(rec, req)

	assert.Equal(t, want, rec.Body.String())
}

func TestGetServerVersion_ThroughRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	const want = "3.0.0"
	h := newHandlerWithAppInfo(t, ctrl, want)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, want, rec.Body.String())
}
