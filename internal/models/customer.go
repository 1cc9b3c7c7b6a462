package models

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Email            *string   `json:"email,omitempty"`
	Phone            *string   `json:"phone,omitempty"`
	BusinessName     *string   `json:"business_name,omitempty"`
	BusinessCategory *string   `json:"business_category,omitempty"`
	Plan             string    `json:"plan"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type Order struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Plan       string    `json:"plan"`
	Amount     string    `json:"amount"`
	Currency   string    `json:"currency"`
	Status     string    `json:"status"`
	PaymentRef *string   `json:"payment_ref,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Wallet struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Balance    string    `json:"balance"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type WalletTransaction struct {
	ID        uuid.UUID `json:"id"`
	WalletID  uuid.UUID `json:"wallet_id"`
	Amount    string    `json:"amount"`
	Kind      string    `json:"kind"`
	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Referral struct {
	ID         uuid.UUID `json:"id"`
	ReferrerID uuid.UUID `json:"referrer_id"`
	ReferredID uuid.UUID `json:"referred_id"`
	Reward     string    `json:"reward"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type SupportTicket struct {
	ID         uuid.UUID  `json:"id"`
	CustomerID *uuid.UUID `json:"customer_id,omitempty"`
	Subject    string     `json:"subject"`
	Message    string     `json:"message"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
