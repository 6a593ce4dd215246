// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pocketvision/ledger/internal/application/adapter"
	domainerror "github.com/pocketvision/ledger/internal/domain/error"
)

// stubTokenService accepts a single known access token.
type stubTokenService struct {
	validToken string
	userID     uuid.UUID
}

func (s *stubTokenService) GenerateTokenPair(_ context.Context, _ uuid.UUID, _ string) (*adapter.TokenPair, error) {
	return nil, errors.New("not implemented")
}

func (s *stubTokenService) ValidateAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	if token != s.validToken {
		return nil, domainerror.ErrInvalidToken
	}
	return &adapter.TokenClaims{UserID: s.userID, Email: "lan@example.com"}, nil
}

func (s *stubTokenService) ValidateRefreshToken(_ context.Context, _ string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not implemented")
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	userID := uuid.New()
	tokens := &stubTokenService{validToken: "valid-token", userID: userID}

	newEngine := func() *gin.Engine {
		engine := gin.New()
		engine.GET("/protected", NewAuthMiddleware(tokens).Authenticate(), func(c *gin.Context) {
			id, ok := GetUserIDFromContext(c)
			if !ok {
				c.Status(http.StatusInternalServerError)
				return
			}
			c.String(http.StatusOK, id.String())
		})
		return engine
	}

	request := func(t *testing.T, authHeader string) *httptest.ResponseRecorder {
		t.Helper()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		recorder := httptest.NewRecorder()
		newEngine().ServeHTTP(recorder, req)
		return recorder
	}

	t.Run("valid token reaches the handler with the user ID", func(t *testing.T) {
		recorder := request(t, "Bearer valid-token")
		if recorder.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
		}
		if recorder.Body.String() != userID.String() {
			t.Errorf("expected user ID %s in context, got %s", userID, recorder.Body.String())
		}
	})

	t.Run("scheme comparison is case-insensitive", func(t *testing.T) {
		recorder := request(t, "bearer valid-token")
		if recorder.Code != http.StatusOK {
			t.Errorf("expected 200 for lowercase scheme, got %d", recorder.Code)
		}
	})

	t.Run("rejections", func(t *testing.T) {
		tests := []struct {
			name       string
			authHeader string
			wantCode   domainerror.AuthErrorCode
		}{
			{"missing header", "", domainerror.ErrCodeMissingToken},
			{"wrong scheme", "Token valid-token", domainerror.ErrCodeInvalidToken},
			{"empty token", "Bearer ", domainerror.ErrCodeMissingToken},
			{"unknown token", "Bearer forged-token", domainerror.ErrCodeInvalidToken},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				recorder := request(t, tt.authHeader)
				if recorder.Code != http.StatusUnauthorized {
					t.Fatalf("expected 401, got %d", recorder.Code)
				}
				if !strings.Contains(recorder.Body.String(), string(tt.wantCode)) {
					t.Errorf("expected error code %s, got body %s", tt.wantCode, recorder.Body.String())
				}
			})
		}
	})
}
