package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/prateek/brandpost-api/internal/database"
	"github.com/prateek/brandpost-api/internal/models"
)

type MusicService struct {
	db *database.DB
}

func NewMusicService(db *database.DB) *MusicService {
	return &MusicService{db: db}
}

func (s *MusicService) List(ctx context.Context, category string) ([]models.MusicAsset, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, name, url, category, duration_seconds, created_at
		FROM music_assets
		WHERE $1 = '' OR category = $1
		ORDER BY created_at DESC
	`, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []models.MusicAsset
	for rows.Next() {
		var m models.MusicAsset
		if err := rows.Scan(&m.ID, &m.Name, &m.URL, &m.Category, &m.DurationSeconds, &m.CreatedAt); err != nil {
			return nil, err
		}
		assets = append(assets, m)
	}
	return assets, rows.Err()
}

func (s *MusicService) Create(ctx context.Context, name, url, category string, durationSeconds int) (*models.MusicAsset, error) {
	var cat *string
	if category != "" {
		cat = &category
	}
	var duration *int
	if durationSeconds > 0 {
		duration = &durationSeconds
	}

	var m models.MusicAsset
	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO music_assets (name, url, category, duration_seconds)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, url, category, duration_seconds, created_at
	`, name, url, cat, duration).Scan(&m.ID, &m.Name, &m.URL, &m.Category, &m.DurationSeconds, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *MusicService) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.Pool.Exec(ctx, `DELETE FROM music_assets WHERE id = $1`, id)
	return err
}
