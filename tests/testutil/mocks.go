package testutil

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/prateek/brandpost-api/internal/models"
	"github.com/prateek/brandpost-api/internal/oauth"
	"github.com/prateek/brandpost-api/internal/pipeline"
	"github.com/prateek/brandpost-api/internal/services"
	"github.com/prateek/brandpost-api/pkg/dto"
)

// MockAdminService mocks the AdminService
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) FindOrCreateFromOAuth(ctx context.Context, info *oauth.UserInfo) (*models.Admin, error) {
	args := m.Called(ctx, info)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Admin), args.Error(1)
}

func (m *MockAdminService) GetByID(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Admin), args.Error(1)
}

// MockTokenService mocks the TokenService
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) StoreRefreshToken(ctx context.Context, adminID uuid.UUID, tokenHash string, expiresAt time.Time) error {
	args := m.Called(ctx, adminID, tokenHash, expiresAt)
	return args.Error(0)
}

func (m *MockTokenService) ValidateRefreshToken(ctx context.Context, tokenHash string) (uuid.UUID, error) {
	args := m.Called(ctx, tokenHash)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockTokenService) RevokeRefreshToken(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)
	return args.Error(0)
}

func (m *MockTokenService) RevokeAllAdminTokens(ctx context.Context, adminID uuid.UUID) error {
	args := m.Called(ctx, adminID)
	return args.Error(0)
}

// MockTemplateService mocks the TemplateService
type MockTemplateService struct {
	mock.Mock
}

func (m *MockTemplateService) List(ctx context.Context, templateType, category string) ([]models.Template, error) {
	args := m.Called(ctx, templateType, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Template), args.Error(1)
}

func (m *MockTemplateService) GetByID(ctx context.Context, id uuid.UUID) (*models.Template, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Template), args.Error(1)
}

func (m *MockTemplateService) Create(ctx context.Context, req dto.CreateTemplateRequest) (*models.Template, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Template), args.Error(1)
}

func (m *MockTemplateService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateTemplateRequest) (*models.Template, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Template), args.Error(1)
}

func (m *MockTemplateService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTemplateSaver mocks the template save pipeline
type MockTemplateSaver struct {
	mock.Mock
}

func (m *MockTemplateSaver) SaveCreate(ctx context.Context, form *pipeline.TemplateForm) (dto.CreateTemplateRequest, error) {
	args := m.Called(ctx, form)
	return args.Get(0).(dto.CreateTemplateRequest), args.Error(1)
}

func (m *MockTemplateSaver) SaveUpdate(ctx context.Context, form *pipeline.TemplateForm) (dto.UpdateTemplateRequest, error) {
	args := m.Called(ctx, form)
	return args.Get(0).(dto.UpdateTemplateRequest), args.Error(1)
}

// MockCustomerService mocks the CustomerService
type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) List(ctx context.Context, search string, limit, offset int) ([]models.Customer, error) {
	args := m.Called(ctx, search, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Customer), args.Error(1)
}

func (m *MockCustomerService) GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

// MockOrderService mocks the OrderService
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) List(ctx context.Context, status string, limit, offset int) ([]models.Order, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderService) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

// MockNotificationService mocks the NotificationService
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) List(ctx context.Context, limit, offset int) ([]models.Notification, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (m *MockNotificationService) Create(ctx context.Context, title, body, imageURL, audience string) (*models.Notification, error) {
	args := m.Called(ctx, title, body, imageURL, audience)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Notification), args.Error(1)
}

func (m *MockNotificationService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMusicService mocks the MusicService
type MockMusicService struct {
	mock.Mock
}

func (m *MockMusicService) List(ctx context.Context, category string) ([]models.MusicAsset, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MusicAsset), args.Error(1)
}

func (m *MockMusicService) Create(ctx context.Context, name, url, category string, durationSeconds int) (*models.MusicAsset, error) {
	args := m.Called(ctx, name, url, category, durationSeconds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MusicAsset), args.Error(1)
}

func (m *MockMusicService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockWalletService mocks the WalletService
type MockWalletService struct {
	mock.Mock
}

func (m *MockWalletService) List(ctx context.Context, limit, offset int) ([]models.Wallet, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Wallet), args.Error(1)
}

func (m *MockWalletService) GetTransactions(ctx context.Context, customerID uuid.UUID) ([]models.WalletTransaction, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WalletTransaction), args.Error(1)
}

// MockReferralService mocks the ReferralService
type MockReferralService struct {
	mock.Mock
}

func (m *MockReferralService) List(ctx context.Context, status string, limit, offset int) ([]models.Referral, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Referral), args.Error(1)
}

// MockSupportService mocks the SupportService
type MockSupportService struct {
	mock.Mock
}

func (m *MockSupportService) List(ctx context.Context, status string, limit, offset int) ([]models.SupportTicket, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SupportTicket), args.Error(1)
}

func (m *MockSupportService) GetByID(ctx context.Context, id uuid.UUID) (*models.SupportTicket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SupportTicket), args.Error(1)
}

func (m *MockSupportService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.SupportTicket, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SupportTicket), args.Error(1)
}

// MockAssetUploader mocks the asset host client
type MockAssetUploader struct {
	mock.Mock
}

func (m *MockAssetUploader) Upload(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	args := m.Called(ctx, filename, contentType, data)
	return args.String(0), args.Error(1)
}

// MockOAuthProvider mocks an OAuth provider
type MockOAuthProvider struct {
	mock.Mock
}

func (m *MockOAuthProvider) GetConsentURL(state string) string {
	args := m.Called(state)
	return args.String(0)
}

func (m *MockOAuthProvider) ExchangeCode(ctx context.Context, code string) (*oauth.UserInfo, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth.UserInfo), args.Error(1)
}

func (m *MockOAuthProvider) Name() string {
	args := m.Called()
	return args.String(0)
}

// MockJWTService mocks the JWTService surface used by the auth handler
type MockJWTService struct {
	mock.Mock
}

func (m *MockJWTService) GenerateTokenPair(adminID uuid.UUID, email, role string) (*services.TokenPair, error) {
	args := m.Called(adminID, email, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.TokenPair), args.Error(1)
}

func (m *MockJWTService) ValidateRefreshToken(token string) (uuid.UUID, error) {
	args := m.Called(token)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockJWTService) RefreshExpiry() time.Duration {
	args := m.Called()
	return args.Get(0).(time.Duration)
}
