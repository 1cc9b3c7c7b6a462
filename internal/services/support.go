package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/prateek/brandpost-api/internal/database"
	"github.com/prateek/brandpost-api/internal/models"
)

type SupportService struct {
	db *database.DB
}

func NewSupportService(db *database.DB) *SupportService {
	return &SupportService{db: db}
}

func (s *SupportService) List(ctx context.Context, status string, limit, offset int) ([]models.SupportTicket, error) {
	if limit <= 0 || limit > 100 {
		limit = 25
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, customer_id, subject, message, status, created_at, updated_at
		FROM support_tickets
		WHERE $1 = '' OR status = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, status, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tickets []models.SupportTicket
	for rows.Next() {
		var t models.SupportTicket
		if err := rows.Scan(&t.ID, &t.CustomerID, &t.Subject, &t.Message, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

func (s *SupportService) GetByID(ctx context.Context, id uuid.UUID) (*models.SupportTicket, error) {
	var t models.SupportTicket
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, customer_id, subject, message, status, created_at, updated_at
		FROM support_tickets WHERE id = $1
	`, id).Scan(&t.ID, &t.CustomerID, &t.Subject, &t.Message, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *SupportService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.SupportTicket, error) {
	var t models.SupportTicket
	err := s.db.Pool.QueryRow(ctx, `
		UPDATE support_tickets SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, customer_id, subject, message, status, created_at, updated_at
	`, id, status).Scan(&t.ID, &t.CustomerID, &t.Subject, &t.Message, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
