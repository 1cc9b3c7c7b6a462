package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/prateek/brandpost-api/internal/database"
	"github.com/prateek/brandpost-api/internal/models"
	"github.com/prateek/brandpost-api/internal/oauth"
)

// Fixtures provides factory methods for creating test data
type Fixtures struct {
	db      *database.DB
	counter int
}

// NewFixtures creates a new fixtures factory
func NewFixtures(db *database.DB) *Fixtures {
	return &Fixtures{db: db}
}

// CreateAdmin creates a test admin with default values
func (f *Fixtures) CreateAdmin(t *testing.T, opts ...AdminOption) *models.Admin {
	t.Helper()
	f.counter++

	admin := &models.Admin{
		Email:      fmt.Sprintf("admin%d@example.com", f.counter),
		Name:       fmt.Sprintf("Test Admin %d", f.counter),
		Provider:   "google",
		ProviderID: fmt.Sprintf("provider-%d", f.counter),
		Role:       models.RoleAdmin,
	}

	for _, opt := range opts {
		opt(admin)
	}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO admins (email, name, avatar_url, provider, provider_id, role)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, email, name, avatar_url, provider, provider_id, role, created_at, updated_at
	`, admin.Email, admin.Name, admin.AvatarURL, admin.Provider, admin.ProviderID, admin.Role).Scan(
		&admin.ID, &admin.Email, &admin.Name, &admin.AvatarURL,
		&admin.Provider, &admin.ProviderID, &admin.Role, &admin.CreatedAt, &admin.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create admin: %v", err)
	}

	return admin
}

// AdminOption configures a test admin
type AdminOption func(*models.Admin)

// WithEmail sets the admin's email
func WithEmail(email string) AdminOption {
	return func(a *models.Admin) {
		a.Email = email
	}
}

// WithRole sets the admin's role
func WithRole(role string) AdminOption {
	return func(a *models.Admin) {
		a.Role = role
	}
}

// WithProvider sets the admin's OAuth provider
func WithProvider(provider, providerID string) AdminOption {
	return func(a *models.Admin) {
		a.Provider = provider
		a.ProviderID = providerID
	}
}

// CreateTemplate creates a test template with default values
func (f *Fixtures) CreateTemplate(t *testing.T, opts ...TemplateOption) *models.Template {
	t.Helper()
	f.counter++

	tpl := &models.Template{
		TemplateType: models.TemplateTypeStory,
		Category:     "festival",
		Title:        fmt.Sprintf("Test Template %d", f.counter),
		Items: []models.TemplateItem{
			{ImageURL: fmt.Sprintf("https://cdn.example.com/tpl-%d.png", f.counter)},
		},
	}

	for _, opt := range opts {
		opt(tpl)
	}

	items, err := json.Marshal(tpl.Items)
	if err != nil {
		t.Fatalf("failed to encode template items: %v", err)
	}

	ctx := context.Background()
	err = f.db.Pool.QueryRow(ctx, `
		INSERT INTO templates (template_type, category, title, is_pinned, items)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, tpl.TemplateType, tpl.Category, tpl.Title, tpl.IsPinned, items).Scan(
		&tpl.ID, &tpl.CreatedAt, &tpl.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create template: %v", err)
	}

	return tpl
}

// TemplateOption configures a test template
type TemplateOption func(*models.Template)

// WithTemplateType sets the template type
func WithTemplateType(templateType string) TemplateOption {
	return func(tpl *models.Template) {
		tpl.TemplateType = templateType
	}
}

// WithCategory sets the template category
func WithCategory(category string) TemplateOption {
	return func(tpl *models.Template) {
		tpl.Category = category
	}
}

// Pinned marks the template as pinned
func Pinned() TemplateOption {
	return func(tpl *models.Template) {
		tpl.IsPinned = true
	}
}

// WithItems sets the template items
func WithItems(items []models.TemplateItem) TemplateOption {
	return func(tpl *models.Template) {
		tpl.Items = items
	}
}

// CreateCustomer creates a test customer with default values
func (f *Fixtures) CreateCustomer(t *testing.T) *models.Customer {
	t.Helper()
	f.counter++

	customer := &models.Customer{
		Name: fmt.Sprintf("Test Customer %d", f.counter),
		Plan: "free",
	}
	email := fmt.Sprintf("customer%d@example.com", f.counter)
	customer.Email = &email

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO customers (name, email, plan)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, customer.Name, customer.Email, customer.Plan).Scan(
		&customer.ID, &customer.CreatedAt, &customer.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create customer: %v", err)
	}

	return customer
}

// CreateOrder creates a test order for the given customer
func (f *Fixtures) CreateOrder(t *testing.T, customer *models.Customer, status string) *models.Order {
	t.Helper()

	order := &models.Order{
		CustomerID: customer.ID,
		Plan:       "pro",
		Currency:   "INR",
		Status:     status,
	}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO orders (customer_id, plan, amount, currency, status)
		VALUES ($1, $2, 499.00, $3, $4)
		RETURNING id, amount, created_at, updated_at
	`, order.CustomerID, order.Plan, order.Currency, order.Status).Scan(
		&order.ID, &order.Amount, &order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create order: %v", err)
	}

	return order
}

// CreateSupportTicket creates a test support ticket
func (f *Fixtures) CreateSupportTicket(t *testing.T, customer *models.Customer, status string) *models.SupportTicket {
	t.Helper()
	f.counter++

	ticket := &models.SupportTicket{
		Subject: fmt.Sprintf("Issue %d", f.counter),
		Message: "Something is broken",
		Status:  status,
	}
	if customer != nil {
		ticket.CustomerID = &customer.ID
	}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO support_tickets (customer_id, subject, message, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, ticket.CustomerID, ticket.Subject, ticket.Message, ticket.Status).Scan(
		&ticket.ID, &ticket.CreatedAt, &ticket.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create support ticket: %v", err)
	}

	return ticket
}

// CreateRefreshToken creates a test refresh token
func (f *Fixtures) CreateRefreshToken(t *testing.T, adminID uuid.UUID, tokenHash string, expiresAt time.Time) {
	t.Helper()
	ctx := context.Background()

	_, err := f.db.Pool.Exec(ctx, `
		INSERT INTO refresh_tokens (admin_id, token_hash, expires_at)
		VALUES ($1, $2, $3)
	`, adminID, tokenHash, expiresAt)
	if err != nil {
		t.Fatalf("failed to create refresh token: %v", err)
	}
}

// OAuthUserInfo creates test OAuth user info
func OAuthUserInfo(email, name, provider, id string) *oauth.UserInfo {
	return &oauth.UserInfo{
		Email:      email,
		Name:       name,
		AvatarURL:  "https://example.com/avatar.png",
		ProviderID: id,
		Provider:   provider,
	}
}
