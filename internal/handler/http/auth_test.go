package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/amevide998/contact-management/internal/service"
	"github.com/amevide998/contact-management/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_Success(t *testing.T) {
	auth := authenticatedAs(testToken, testUser)
	auth.loginFn = func(ctx context.Context, request models.LoginUserRequest) (models.TokenResponse, error) {
		assert.Equal(t, "hdscode", request.Username)
		assert.Equal(t, "rahasia", request.Password)
		return models.TokenResponse{Token: testToken, ExpiredAt: 1700000000000}, nil
	}

	h := newTestHandler(&service.Services{AuthService: auth})

	response, env := doRequest(t, h, http.MethodPost, "/api/auth/login",
		`{"username":"hdscode","password":"rahasia"}`, false)

	require.Equal(t, http.StatusOK, response.StatusCode)
	require.Empty(t, env.Errors)

	var token models.TokenResponse
	require.NoError(t, json.Unmarshal(env.Data, &token))
	assert.Equal(t, testToken, token.Token)
	assert.Equal(t, int64(1700000000000), token.ExpiredAt)
}

func TestLogin_BadCredentials(t *testing.T) {
	h := newTestHandler(&service.Services{})

	response, env := doRequest(t, h, http.MethodPost, "/api/auth/login",
		`{"username":"hdscode","password":"salah"}`, false)

	require.Equal(t, http.StatusUnauthorized, response.StatusCode)
	assert.Equal(t, "username and password doesn't match", env.Errors)
	assert.Nil(t, env.Data)
}

func TestLogin_InvalidJSON(t *testing.T) {
	h := newTestHandler(&service.Services{})

	response, env := doRequest(t, h, http.MethodPost, "/api/auth/login", `{broken`, false)

	require.Equal(t, http.StatusBadRequest, response.StatusCode)
	assert.Equal(t, "invalid request body", env.Errors)
}

func TestLogout_Success(t *testing.T) {
	var revoked models.User

	auth := authenticatedAs(testToken, testUser)
	auth.logoutFn = func(ctx context.Context, user models.User) error {
		revoked = user
		return nil
	}

	h := newTestHandler(&service.Services{AuthService: auth})

	response, env := doRequest(t, h, http.MethodDelete, "/api/auth/logout", "", true)

	require.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, `"Ok"`, string(env.Data))
	assert.Equal(t, "hdscode", revoked.Username)
}

func TestLogout_WithoutToken(t *testing.T) {
	h := newTestHandler(&service.Services{AuthService: authenticatedAs(testToken, testUser)})

	response, env := doRequest(t, h, http.MethodDelete, "/api/auth/logout", "", false)

	require.Equal(t, http.StatusUnauthorized, response.StatusCode)
	assert.Equal(t, "unauthorized", env.Errors)
}
