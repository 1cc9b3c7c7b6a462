package services

import (
	"context"

	"github.com/prateek/brandpost-api/internal/database"
	"github.com/prateek/brandpost-api/internal/models"
)

type ReferralService struct {
	db *database.DB
}

func NewReferralService(db *database.DB) *ReferralService {
	return &ReferralService{db: db}
}

func (s *ReferralService) List(ctx context.Context, status string, limit, offset int) ([]models.Referral, error) {
	if limit <= 0 || limit > 100 {
		limit = 25
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, referrer_id, referred_id, reward, status, created_at
		FROM referrals
		WHERE $1 = '' OR status = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, status, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var referrals []models.Referral
	for rows.Next() {
		var r models.Referral
		if err := rows.Scan(&r.ID, &r.ReferrerID, &r.ReferredID, &r.Reward, &r.Status, &r.CreatedAt); err != nil {
			return nil, err
		}
		referrals = append(referrals, r)
	}
	return referrals, rows.Err()
}
