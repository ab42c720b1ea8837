package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/pegword-api/internal/domain"
	"github.com/phrazzld/pegword-api/internal/service"
	"github.com/phrazzld/pegword-api/internal/service/auth"
	"github.com/phrazzld/pegword-api/internal/store"
)

func TestRegisterHandler(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		h := NewAuthHandler(&mockUserService{
			registerFn: func(ctx context.Context, email, password string) (*domain.User, error) {
				return &domain.User{ID: userID, Email: email}, nil
			},
		}, &mockJWTService{})

		r := newJSONRequest(t, http.MethodPost, "/api/auth/register",
			RegisterRequest{Email: "alice@example.com", Password: "a long enough password"},
			uuid.Nil, nil)
		rec := httptest.NewRecorder()
		h.Register(rec, r)

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp AuthResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, userID, resp.UserID)
		assert.Equal(t, "access-token", resp.AccessToken)
		assert.Equal(t, "refresh-token", resp.RefreshToken)
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()
		h := NewAuthHandler(&mockUserService{
			registerFn: func(ctx context.Context, email, password string) (*domain.User, error) {
				return nil, store.ErrEmailExists
			},
		}, &mockJWTService{})

		r := newJSONRequest(t, http.MethodPost, "/api/auth/register",
			RegisterRequest{Email: "alice@example.com", Password: "a long enough password"},
			uuid.Nil, nil)
		rec := httptest.NewRecorder()
		h.Register(rec, r)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("short password rejected before the service", func(t *testing.T) {
		t.Parallel()
		h := NewAuthHandler(&mockUserService{}, &mockJWTService{})

		r := newJSONRequest(t, http.MethodPost, "/api/auth/register",
			RegisterRequest{Email: "alice@example.com", Password: "short"},
			uuid.Nil, nil)
		rec := httptest.NewRecorder()
		h.Register(rec, r)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()
		h := NewAuthHandler(&mockUserService{}, &mockJWTService{})

		r := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{"))
		rec := httptest.NewRecorder()
		h.Register(rec, r)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLoginHandler(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		h := NewAuthHandler(&mockUserService{
			authenticateFn: func(ctx context.Context, email, password string) (*domain.User, error) {
				return &domain.User{ID: userID, Email: email}, nil
			},
		}, &mockJWTService{})

		r := newJSONRequest(t, http.MethodPost, "/api/auth/login",
			LoginRequest{Email: "alice@example.com", Password: "a long enough password"},
			uuid.Nil, nil)
		rec := httptest.NewRecorder()
		h.Login(rec, r)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp AuthResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, userID, resp.UserID)
	})

	t.Run("bad credentials", func(t *testing.T) {
		t.Parallel()
		h := NewAuthHandler(&mockUserService{
			authenticateFn: func(ctx context.Context, email, password string) (*domain.User, error) {
				return nil, service.ErrInvalidCredentials
			},
		}, &mockJWTService{})

		r := newJSONRequest(t, http.MethodPost, "/api/auth/login",
			LoginRequest{Email: "alice@example.com", Password: "wrong"},
			uuid.Nil, nil)
		rec := httptest.NewRecorder()
		h.Login(rec, r)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRefreshHandler(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		h := NewAuthHandler(&mockUserService{
			getUserFn: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
				return &domain.User{ID: id}, nil
			},
		}, &mockJWTService{
			validateRefreshFn: func(ctx context.Context, token string) (*auth.Claims, error) {
				return &auth.Claims{UserID: userID, TokenType: "refresh"}, nil
			},
		})

		r := newJSONRequest(t, http.MethodPost, "/api/auth/refresh",
			RefreshTokenRequest{RefreshToken: "some-refresh-token"},
			uuid.Nil, nil)
		rec := httptest.NewRecorder()
		h.Refresh(rec, r)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp AuthResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, userID, resp.UserID)
	})

	t.Run("expired refresh token", func(t *testing.T) {
		t.Parallel()
		h := NewAuthHandler(&mockUserService{}, &mockJWTService{
			validateRefreshFn: func(ctx context.Context, token string) (*auth.Claims, error) {
				return nil, auth.ErrExpiredRefreshToken
			},
		})

		r := newJSONRequest(t, http.MethodPost, "/api/auth/refresh",
			RefreshTokenRequest{RefreshToken: "stale"},
			uuid.Nil, nil)
		rec := httptest.NewRecorder()
		h.Refresh(rec, r)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("deleted user", func(t *testing.T) {
		t.Parallel()
		h := NewAuthHandler(&mockUserService{
			getUserFn: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
				return nil, store.ErrUserNotFound
			},
		}, &mockJWTService{
			validateRefreshFn: func(ctx context.Context, token string) (*auth.Claims, error) {
				return &auth.Claims{UserID: userID, TokenType: "refresh"}, nil
			},
		})

		r := newJSONRequest(t, http.MethodPost, "/api/auth/refresh",
			RefreshTokenRequest{RefreshToken: "orphaned"},
			uuid.Nil, nil)
		rec := httptest.NewRecorder()
		h.Refresh(rec, r)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
