package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/prateek/brandpost-api/internal/database"
	"github.com/prateek/brandpost-api/internal/models"
	"github.com/prateek/brandpost-api/internal/oauth"
)

type AdminService struct {
	db *database.DB
}

func NewAdminService(db *database.DB) *AdminService {
	return &AdminService{db: db}
}

// FindOrCreateFromOAuth upserts the admin on sign-in, refreshing the name
// and avatar the provider reports. New sign-ins default to the admin role;
// promotion to superadmin happens out of band.
func (s *AdminService) FindOrCreateFromOAuth(ctx context.Context, info *oauth.UserInfo) (*models.Admin, error) {
	var a models.Admin
	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO admins (email, name, avatar_url, provider, provider_id)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (provider, provider_id)
		DO UPDATE SET name = EXCLUDED.name, avatar_url = EXCLUDED.avatar_url, updated_at = NOW()
		RETURNING id, email, name, avatar_url, provider, provider_id, role, created_at, updated_at
	`, info.Email, info.Name, info.AvatarURL, info.Provider, info.ProviderID).Scan(
		&a.ID, &a.Email, &a.Name, &a.AvatarURL, &a.Provider, &a.ProviderID, &a.Role, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *AdminService) GetByID(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	var a models.Admin
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, email, name, avatar_url, provider, provider_id, role, created_at, updated_at
		FROM admins WHERE id = $1
	`, id).Scan(&a.ID, &a.Email, &a.Name, &a.AvatarURL, &a.Provider, &a.ProviderID, &a.Role, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
