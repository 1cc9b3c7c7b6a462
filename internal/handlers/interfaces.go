package handlers

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/prateek/brandpost-api/internal/models"
	"github.com/prateek/brandpost-api/internal/oauth"
	"github.com/prateek/brandpost-api/internal/pipeline"
	"github.com/prateek/brandpost-api/internal/services"
	"github.com/prateek/brandpost-api/pkg/dto"
)

// AdminServiceInterface defines the methods used by handlers from AdminService
type AdminServiceInterface interface {
	FindOrCreateFromOAuth(ctx context.Context, info *oauth.UserInfo) (*models.Admin, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Admin, error)
}

// TokenServiceInterface defines the methods used by handlers from TokenService
type TokenServiceInterface interface {
	StoreRefreshToken(ctx context.Context, adminID uuid.UUID, tokenHash string, expiresAt time.Time) error
	ValidateRefreshToken(ctx context.Context, tokenHash string) (uuid.UUID, error)
	RevokeRefreshToken(ctx context.Context, tokenHash string) error
	RevokeAllAdminTokens(ctx context.Context, adminID uuid.UUID) error
}

// JWTServiceInterface defines the methods used by handlers from JWTService
type JWTServiceInterface interface {
	GenerateTokenPair(adminID uuid.UUID, email, role string) (*services.TokenPair, error)
	ValidateRefreshToken(token string) (uuid.UUID, error)
	RefreshExpiry() time.Duration
}

// TemplateServiceInterface defines the methods used by handlers from TemplateService
type TemplateServiceInterface interface {
	List(ctx context.Context, templateType, category string) ([]models.Template, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Template, error)
	Create(ctx context.Context, req dto.CreateTemplateRequest) (*models.Template, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateTemplateRequest) (*models.Template, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TemplateSaverInterface defines the save-pipeline entry points used by the
// template handler.
type TemplateSaverInterface interface {
	SaveCreate(ctx context.Context, form *pipeline.TemplateForm) (dto.CreateTemplateRequest, error)
	SaveUpdate(ctx context.Context, form *pipeline.TemplateForm) (dto.UpdateTemplateRequest, error)
}

// CustomerServiceInterface defines the methods used by handlers from CustomerService
type CustomerServiceInterface interface {
	List(ctx context.Context, search string, limit, offset int) ([]models.Customer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error)
}

// OrderServiceInterface defines the methods used by handlers from OrderService
type OrderServiceInterface interface {
	List(ctx context.Context, status string, limit, offset int) ([]models.Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
}

// NotificationServiceInterface defines the methods used by handlers from NotificationService
type NotificationServiceInterface interface {
	List(ctx context.Context, limit, offset int) ([]models.Notification, error)
	Create(ctx context.Context, title, body, imageURL, audience string) (*models.Notification, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// MusicServiceInterface defines the methods used by handlers from MusicService
type MusicServiceInterface interface {
	List(ctx context.Context, category string) ([]models.MusicAsset, error)
	Create(ctx context.Context, name, url, category string, durationSeconds int) (*models.MusicAsset, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// WalletServiceInterface defines the methods used by handlers from WalletService
type WalletServiceInterface interface {
	List(ctx context.Context, limit, offset int) ([]models.Wallet, error)
	GetTransactions(ctx context.Context, customerID uuid.UUID) ([]models.WalletTransaction, error)
}

// ReferralServiceInterface defines the methods used by handlers from ReferralService
type ReferralServiceInterface interface {
	List(ctx context.Context, status string, limit, offset int) ([]models.Referral, error)
}

// SupportServiceInterface defines the methods used by handlers from SupportService
type SupportServiceInterface interface {
	List(ctx context.Context, status string, limit, offset int) ([]models.SupportTicket, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.SupportTicket, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.SupportTicket, error)
}

// AssetUploaderInterface defines the asset-host edge used by the music handler.
type AssetUploaderInterface interface {
	Upload(ctx context.Context, filename, contentType string, data []byte) (string, error)
}
