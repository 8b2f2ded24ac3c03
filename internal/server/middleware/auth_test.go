package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testTokenValidator is a test implementation of TokenValidator for unit tests.
type testTokenValidator struct {
	validTokens map[string]uuid.UUID
}

func newTestTokenValidator() *testTokenValidator {
	return &testTokenValidator{validTokens: make(map[string]uuid.UUID)}
}

func (v *testTokenValidator) addValidToken(token string, userID uuid.UUID) {
	v.validTokens[token] = userID
}

func (v *testTokenValidator) ValidateToken(tokenString string) (UserIDGetter, error) {
	userID, ok := v.validTokens[tokenString]
	if !ok {
		return nil, fmt.Errorf("invalid token")
	}
	return &testClaims{userID: userID}, nil
}

type testClaims struct {
	userID uuid.UUID
}

func (c *testClaims) GetUserID() uuid.UUID {
	return c.userID
}

func serveWithAuth(validator TokenValidator, authHeader string) (*httptest.ResponseRecorder, bool, uuid.UUID) {
	called := false
	var contextUserID uuid.UUID
	handler := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		called = true
		contextUserID, _ = GetUserID(r)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/export", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	AuthMiddleware(validator)(handler).ServeHTTP(w, req)
	return w, called, contextUserID
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	validator := newTestTokenValidator()
	userID := uuid.New()
	validator.addValidToken("valid-test-token-123", userID)

	w, called, contextUserID := serveWithAuth(validator, "Bearer valid-test-token-123")

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, contextUserID)
}

func TestAuthMiddleware_CaseInsensitiveScheme(t *testing.T) {
	validator := newTestTokenValidator()
	validator.addValidToken("tok", uuid.New())

	for _, header := range []string{"bearer tok", "BEARER tok", "Bearer   tok"} {
		_, called, _ := serveWithAuth(validator, header)
		assert.True(t, called, "header %q", header)
	}
}

func TestAuthMiddleware_Rejected(t *testing.T) {
	validator := newTestTokenValidator()
	validator.addValidToken("tok", uuid.New())

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"no scheme", "tok"},
		{"basic scheme", "Basic dXNlcjpwYXNz"},
		{"bearer without token", "Bearer"},
		{"extra parts", "Bearer tok extra"},
		{"unknown token", "Bearer nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, called, _ := serveWithAuth(validator, tt.header)

			assert.False(t, called)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Contains(t, w.Header().Get("WWW-Authenticate"), "Bearer")

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "Unauthorized", body["error"])
		})
	}
}

func TestGetUserID_Success(t *testing.T) {
	userID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithUserID(req.Context(), userID))

	got, err := GetUserID(req)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestGetUserID_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	got, err := GetUserID(req)
	require.Error(t, err)
	assert.Equal(t, uuid.Nil, got)
}

func TestGetUserID_InvalidType(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), userIDKey, "not-a-uuid"))

	_, err := GetUserID(req)
	assert.Error(t, err)
}
