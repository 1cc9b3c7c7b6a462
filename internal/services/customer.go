package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/prateek/brandpost-api/internal/database"
	"github.com/prateek/brandpost-api/internal/models"
)

type CustomerService struct {
	db *database.DB
}

func NewCustomerService(db *database.DB) *CustomerService {
	return &CustomerService{db: db}
}

func (s *CustomerService) List(ctx context.Context, search string, limit, offset int) ([]models.Customer, error) {
	if limit <= 0 || limit > 100 {
		limit = 25
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, name, email, phone, business_name, business_category, plan, created_at, updated_at
		FROM customers
		WHERE $1 = '' OR name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, search, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []models.Customer
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.BusinessName, &c.BusinessCategory, &c.Plan, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (s *CustomerService) GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	var c models.Customer
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, name, email, phone, business_name, business_category, plan, created_at, updated_at
		FROM customers WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.BusinessName, &c.BusinessCategory, &c.Plan, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
