package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/prateek/brandpost-api/internal/database"
	"github.com/prateek/brandpost-api/internal/models"
)

type NotificationService struct {
	db *database.DB
}

func NewNotificationService(db *database.DB) *NotificationService {
	return &NotificationService{db: db}
}

func (s *NotificationService) List(ctx context.Context, limit, offset int) ([]models.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 25
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, title, body, image_url, audience, sent_at, created_at
		FROM notifications
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.Title, &n.Body, &n.ImageURL, &n.Audience, &n.SentAt, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (s *NotificationService) Create(ctx context.Context, title, body, imageURL, audience string) (*models.Notification, error) {
	if audience == "" {
		audience = "all"
	}

	var n models.Notification
	var img *string
	if imageURL != "" {
		img = &imageURL
	}

	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO notifications (title, body, image_url, audience, sent_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, title, body, image_url, audience, sent_at, created_at
	`, title, body, img, audience).Scan(&n.ID, &n.Title, &n.Body, &n.ImageURL, &n.Audience, &n.SentAt, &n.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *NotificationService) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.Pool.Exec(ctx, `DELETE FROM notifications WHERE id = $1`, id)
	return err
}
