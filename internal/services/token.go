package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/prateek/brandpost-api/internal/database"
)

type TokenService struct {
	db *database.DB
}

func NewTokenService(db *database.DB) *TokenService {
	return &TokenService{db: db}
}

func (s *TokenService) StoreRefreshToken(ctx context.Context, adminID uuid.UUID, tokenHash string, expiresAt time.Time) error {
	_, err := s.db.Pool.Exec(ctx, `
		INSERT INTO refresh_tokens (admin_id, token_hash, expires_at)
		VALUES ($1, $2, $3)
	`, adminID, tokenHash, expiresAt)
	return err
}

func (s *TokenService) ValidateRefreshToken(ctx context.Context, tokenHash string) (uuid.UUID, error) {
	var adminID uuid.UUID
	err := s.db.Pool.QueryRow(ctx, `
		SELECT admin_id FROM refresh_tokens
		WHERE token_hash = $1 AND expires_at > NOW()
	`, tokenHash).Scan(&adminID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("refresh token not found or expired: %w", err)
	}
	return adminID, nil
}

func (s *TokenService) RevokeRefreshToken(ctx context.Context, tokenHash string) error {
	_, err := s.db.Pool.Exec(ctx, `DELETE FROM refresh_tokens WHERE token_hash = $1`, tokenHash)
	return err
}

func (s *TokenService) RevokeAllAdminTokens(ctx context.Context, adminID uuid.UUID) error {
	_, err := s.db.Pool.Exec(ctx, `DELETE FROM refresh_tokens WHERE admin_id = $1`, adminID)
	return err
}

func (s *TokenService) CleanupExpired(ctx context.Context) error {
	_, err := s.db.Pool.Exec(ctx, `DELETE FROM refresh_tokens WHERE expires_at <= NOW()`)
	return err
}
