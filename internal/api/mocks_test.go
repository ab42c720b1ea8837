package api

import (
	"context"

	"github.com/google/uuid"

	"github.com/phrazzld/pegword-api/internal/domain"
	"github.com/phrazzld/pegword-api/internal/service"
	"github.com/phrazzld/pegword-api/internal/service/auth"
)

// Hand-rolled service fakes for handler tests. Each method delegates to an
// optional function field, so tests stub only what they exercise.

type mockUserService struct {
	registerFn     func(ctx context.Context, email, password string) (*domain.User, error)
	authenticateFn func(ctx context.Context, email, password string) (*domain.User, error)
	getUserFn      func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (m *mockUserService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	return m.registerFn(ctx, email, password)
}

func (m *mockUserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	return m.authenticateFn(ctx, email, password)
}

func (m *mockUserService) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return m.getUserFn(ctx, id)
}

type mockJWTService struct {
	generateFn        func(ctx context.Context, userID uuid.UUID) (string, error)
	validateFn        func(ctx context.Context, token string) (*auth.Claims, error)
	generateRefreshFn func(ctx context.Context, userID uuid.UUID) (string, error)
	validateRefreshFn func(ctx context.Context, token string) (*auth.Claims, error)
}

func (m *mockJWTService) GenerateToken(ctx context.Context, userID uuid.UUID) (string, error) {
	if m.generateFn != nil {
		return m.generateFn(ctx, userID)
	}
	return "access-token", nil
}

func (m *mockJWTService) ValidateToken(ctx context.Context, token string) (*auth.Claims, error) {
	return m.validateFn(ctx, token)
}

func (m *mockJWTService) GenerateRefreshToken(ctx context.Context, userID uuid.UUID) (string, error) {
	if m.generateRefreshFn != nil {
		return m.generateRefreshFn(ctx, userID)
	}
	return "refresh-token", nil
}

func (m *mockJWTService) ValidateRefreshToken(ctx context.Context, token string) (*auth.Claims, error) {
	return m.validateRefreshFn(ctx, token)
}

type mockWorkspaceService struct {
	createFn func(ctx context.Context, userID uuid.UUID, name string) (*domain.Workspace, error)
	getFn    func(ctx context.Context, userID, workspaceID uuid.UUID) (*domain.Workspace, error)
	listFn   func(ctx context.Context, userID uuid.UUID) ([]*domain.Workspace, error)
	renameFn func(ctx context.Context, userID, workspaceID uuid.UUID, name string) (*domain.Workspace, error)
	deleteFn func(ctx context.Context, userID, workspaceID uuid.UUID) error
}

func (m *mockWorkspaceService) Create(ctx context.Context, userID uuid.UUID, name string) (*domain.Workspace, error) {
	return m.createFn(ctx, userID, name)
}

func (m *mockWorkspaceService) Get(ctx context.Context, userID, workspaceID uuid.UUID) (*domain.Workspace, error) {
	return m.getFn(ctx, userID, workspaceID)
}

func (m *mockWorkspaceService) List(ctx context.Context, userID uuid.UUID) ([]*domain.Workspace, error) {
	return m.listFn(ctx, userID)
}

func (m *mockWorkspaceService) Rename(ctx context.Context, userID, workspaceID uuid.UUID, name string) (*domain.Workspace, error) {
	return m.renameFn(ctx, userID, workspaceID, name)
}

func (m *mockWorkspaceService) Delete(ctx context.Context, userID, workspaceID uuid.UUID) error {
	return m.deleteFn(ctx, userID, workspaceID)
}

type mockEntryService struct {
	setWordFn func(ctx context.Context, userID, workspaceID uuid.UUID, key, word string) (*domain.WordEntry, error)
	listFn    func(ctx context.Context, userID, workspaceID uuid.UUID) ([]*domain.WordEntry, error)
	reviewFn  func(ctx context.Context, userID, workspaceID uuid.UUID) ([]service.ReviewItem, error)
}

func (m *mockEntryService) SetWord(ctx context.Context, userID, workspaceID uuid.UUID, key, word string) (*domain.WordEntry, error) {
	return m.setWordFn(ctx, userID, workspaceID, key, word)
}

func (m *mockEntryService) List(ctx context.Context, userID, workspaceID uuid.UUID) ([]*domain.WordEntry, error) {
	return m.listFn(ctx, userID, workspaceID)
}

func (m *mockEntryService) Review(ctx context.Context, userID, workspaceID uuid.UUID) ([]service.ReviewItem, error) {
	return m.reviewFn(ctx, userID, workspaceID)
}

type mockSuggestionService struct {
	suggestFn func(ctx context.Context, userID, workspaceID uuid.UUID, key string) ([]string, error)
}

func (m *mockSuggestionService) Suggest(ctx context.Context, userID, workspaceID uuid.UUID, key string) ([]string, error) {
	return m.suggestFn(ctx, userID, workspaceID, key)
}

type mockTransferService struct {
	exportFn func(ctx context.Context, userID, workspaceID uuid.UUID) (string, error)
	importFn func(ctx context.Context, userID, workspaceID uuid.UUID, payload string) (*service.ImportResult, error)
}

func (m *mockTransferService) Export(ctx context.Context, userID, workspaceID uuid.UUID) (string, error) {
	return m.exportFn(ctx, userID, workspaceID)
}

func (m *mockTransferService) Import(ctx context.Context, userID, workspaceID uuid.UUID, payload string) (*service.ImportResult, error) {
	return m.importFn(ctx, userID, workspaceID, payload)
}
