package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/prateek/brandpost-api/internal/database"
	"github.com/prateek/brandpost-api/internal/models"
)

type WalletService struct {
	db *database.DB
}

func NewWalletService(db *database.DB) *WalletService {
	return &WalletService{db: db}
}

func (s *WalletService) List(ctx context.Context, limit, offset int) ([]models.Wallet, error) {
	if limit <= 0 || limit > 100 {
		limit = 25
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, customer_id, balance, updated_at
		FROM wallets
		ORDER BY updated_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var wallets []models.Wallet
	for rows.Next() {
		var w models.Wallet
		if err := rows.Scan(&w.ID, &w.CustomerID, &w.Balance, &w.UpdatedAt); err != nil {
			return nil, err
		}
		wallets = append(wallets, w)
	}
	return wallets, rows.Err()
}

func (s *WalletService) GetTransactions(ctx context.Context, customerID uuid.UUID) ([]models.WalletTransaction, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT t.id, t.wallet_id, t.amount, t.kind, t.note, t.created_at
		FROM wallet_transactions t
		JOIN wallets w ON w.id = t.wallet_id
		WHERE w.customer_id = $1
		ORDER BY t.created_at DESC
	`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []models.WalletTransaction
	for rows.Next() {
		var t models.WalletTransaction
		if err := rows.Scan(&t.ID, &t.WalletID, &t.Amount, &t.Kind, &t.Note, &t.CreatedAt); err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}
