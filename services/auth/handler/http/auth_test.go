package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/ghostlabs/ghostbank/internal/pkg/errors"
	"github.com/ghostlabs/ghostbank/internal/pkg/models"
	"github.com/ghostlabs/ghostbank/services/auth/mocks"
)

func setupAuthHandlerTest(t *testing.T) (*AuthHandler, *mocks.MockAuthUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockAuthUC(ctrl)
	return NewAuthHandler(mockUC), mockUC
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestStartLogin(t *testing.T) {
	handler, mockUC := setupAuthHandlerTest(t)

	mockUC.EXPECT().
		StartLogin(gomock.Any(), "alice").
		Return(&models.AuthStatus{Handle: "@alice", Stage: models.StageConnecting, BotHandle: "ghost_verify_bot"}, nil)

	c, rec := newJSONContext(http.MethodPost, "/auth/login", `{"handle":"alice"}`)
	require.NoError(t, handler.StartLogin(c))

	assert.Equal(t, http.StatusAccepted, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])

	data := response["data"].(map[string]interface{})
	assert.Equal(t, "CONNECTING", data["stage"])
	assert.Equal(t, "ghost_verify_bot", data["bot_handle"])
}

func TestStartLogin_ValidationError(t *testing.T) {
	handler, mockUC := setupAuthHandlerTest(t)

	mockUC.EXPECT().
		StartLogin(gomock.Any(), "").
		Return(nil, apperrors.NewValidationError("handle is required"))

	c, rec := newJSONContext(http.MethodPost, "/auth/login", `{"handle":""}`)
	require.NoError(t, handler.StartLogin(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStartLogin_BotUnreachable(t *testing.T) {
	handler, mockUC := setupAuthHandlerTest(t)

	mockUC.EXPECT().
		StartLogin(gomock.Any(), "alice").
		Return(nil, apperrors.ErrServiceUnavailable)

	c, rec := newJSONContext(http.MethodPost, "/auth/login", `{"handle":"alice"}`)
	require.NoError(t, handler.StartLogin(c))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestLoginStatus(t *testing.T) {
	handler, mockUC := setupAuthHandlerTest(t)

	mockUC.EXPECT().
		LoginStatus("alice").
		Return(&models.AuthStatus{Handle: "@alice", Stage: models.StageOtp}, nil)

	c, rec := newJSONContext(http.MethodGet, "/auth/status?handle=alice", "")
	require.NoError(t, handler.LoginStatus(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginStatus_MissingHandle(t *testing.T) {
	handler, _ := setupAuthHandlerTest(t)

	c, rec := newJSONContext(http.MethodGet, "/auth/status", "")
	require.NoError(t, handler.LoginStatus(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginStatus_UnknownAttempt(t *testing.T) {
	handler, mockUC := setupAuthHandlerTest(t)

	mockUC.EXPECT().LoginStatus("ghost").Return(nil, apperrors.ErrNotFound)

	c, rec := newJSONContext(http.MethodGet, "/auth/status?handle=ghost", "")
	require.NoError(t, handler.LoginStatus(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestVerifyCode(t *testing.T) {
	handler, mockUC := setupAuthHandlerTest(t)

	mockUC.EXPECT().
		VerifyCode(gomock.Any(), "alice", "123456").
		Return(&models.AuthResponse{Token: "jwt-token", Handle: "alice"}, nil)

	c, rec := newJSONContext(http.MethodPost, "/auth/verify", `{"handle":"alice","code":"123456"}`)
	require.NoError(t, handler.VerifyCode(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "jwt-token", data["token"])
}

func TestVerifyCode_Incorrect(t *testing.T) {
	handler, mockUC := setupAuthHandlerTest(t)

	mockUC.EXPECT().
		VerifyCode(gomock.Any(), "alice", "000000").
		Return(nil, apperrors.NewValidationError("incorrect code"))

	c, rec := newJSONContext(http.MethodPost, "/auth/verify", `{"handle":"alice","code":"000000"}`)
	require.NoError(t, handler.VerifyCode(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCancel(t *testing.T) {
	handler, mockUC := setupAuthHandlerTest(t)

	mockUC.EXPECT().Cancel("alice").Return(nil)

	c, rec := newJSONContext(http.MethodPost, "/auth/cancel", `{"handle":"alice"}`)
	require.NoError(t, handler.Cancel(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRestoreSession(t *testing.T) {
	handler, mockUC := setupAuthHandlerTest(t)

	mockUC.EXPECT().
		RestoreSession(gomock.Any()).
		Return(&models.User{Handle: "alice"}, nil)

	c, rec := newJSONContext(http.MethodGet, "/auth/session", "")
	require.NoError(t, handler.RestoreSession(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRestoreSession_NothingStored(t *testing.T) {
	handler, mockUC := setupAuthHandlerTest(t)

	mockUC.EXPECT().RestoreSession(gomock.Any()).Return(nil, apperrors.ErrNotFound)

	c, rec := newJSONContext(http.MethodGet, "/auth/session", "")
	require.NoError(t, handler.RestoreSession(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLogout(t *testing.T) {
	handler, mockUC := setupAuthHandlerTest(t)

	mockUC.EXPECT().Logout(gomock.Any()).Return(nil)

	c, rec := newJSONContext(http.MethodPost, "/auth/logout", "")
	require.NoError(t, handler.Logout(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBotIdentity(t *testing.T) {
	handler, mockUC := setupAuthHandlerTest(t)

	mockUC.EXPECT().
		BotIdentity(gomock.Any()).
		Return(&models.BotIdentity{Handle: "ghost_verify_bot"}, nil)

	c, rec := newJSONContext(http.MethodGet, "/auth/bot", "")
	require.NoError(t, handler.BotIdentity(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}
