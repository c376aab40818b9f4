package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authdto "gymdesk/internal/application/auth/dto"
	"gymdesk/internal/interfaces/http/handlers/testutil"
	"gymdesk/internal/shared/errors"
)

type mockLoginUC struct {
	result *authdto.LoginResponse
	err    error
}

func (m *mockLoginUC) Execute(ctx context.Context, req authdto.LoginRequest) (*authdto.LoginResponse, error) {
	return m.result, m.err
}

func TestLogin_Success(t *testing.T) {
	handler := NewAuthHandler(&mockLoginUC{result: &authdto.LoginResponse{
		AccessToken: "token-123",
		TokenType:   "Bearer",
		ExpiresIn:   3600,
		Name:        "Admin",
		Email:       "admin@example.com",
	}})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/auth/login", authdto.LoginRequest{
		Email:    "admin@example.com",
		Password: "secret",
	})

	handler.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	var login authdto.LoginResponse
	require.NoError(t, json.Unmarshal(resp.Data, &login))
	assert.Equal(t, "token-123", login.AccessToken)
	assert.Equal(t, "Bearer", login.TokenType)
}

func TestLogin_InvalidBody(t *testing.T) {
	handler := NewAuthHandler(&mockLoginUC{})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email": "admin@example.com",
	})

	handler.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	handler := NewAuthHandler(&mockLoginUC{
		err: errors.NewUnauthorizedError("invalid email or password"),
	})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/auth/login", authdto.LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong",
	})

	handler.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, string(errors.ErrorTypeUnauthorized), resp.Error.Type)
}
