package database

import (
	"context"
	"fmt"
)

var migrations = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,

	`CREATE TABLE IF NOT EXISTS admins (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		email VARCHAR(255) UNIQUE NOT NULL,
		name VARCHAR(255) NOT NULL,
		avatar_url VARCHAR(500),
		provider VARCHAR(50) NOT NULL,
		provider_id VARCHAR(255) NOT NULL,
		role VARCHAR(50) NOT NULL DEFAULT 'admin',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		UNIQUE(provider, provider_id)
	)`,

	`CREATE TABLE IF NOT EXISTS refresh_tokens (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		admin_id UUID NOT NULL REFERENCES admins(id) ON DELETE CASCADE,
		token_hash VARCHAR(255) NOT NULL UNIQUE,
		expires_at TIMESTAMP WITH TIME ZONE NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS templates (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		template_type VARCHAR(20) NOT NULL,
		category VARCHAR(100) NOT NULL,
		title VARCHAR(255),
		subtitle VARCHAR(255),
		head_image_url VARCHAR(500),
		title_background_image_url VARCHAR(500),
		is_pinned BOOLEAN NOT NULL DEFAULT FALSE,
		edit_type VARCHAR(50),
		title_text TEXT,
		items JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS customers (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255),
		phone VARCHAR(50),
		business_name VARCHAR(255),
		business_category VARCHAR(100),
		plan VARCHAR(50) NOT NULL DEFAULT 'free',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS orders (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		customer_id UUID NOT NULL REFERENCES customers(id) ON DELETE CASCADE,
		plan VARCHAR(50) NOT NULL,
		amount NUMERIC(10,2) NOT NULL,
		currency VARCHAR(10) NOT NULL DEFAULT 'INR',
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		payment_ref VARCHAR(255),
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS notifications (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		title VARCHAR(255) NOT NULL,
		body TEXT NOT NULL,
		image_url VARCHAR(500),
		audience VARCHAR(50) NOT NULL DEFAULT 'all',
		sent_at TIMESTAMP WITH TIME ZONE,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS music_assets (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		url VARCHAR(500) NOT NULL,
		category VARCHAR(100),
		duration_seconds INTEGER,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS wallets (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		customer_id UUID NOT NULL UNIQUE REFERENCES customers(id) ON DELETE CASCADE,
		balance NUMERIC(10,2) NOT NULL DEFAULT 0,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS wallet_transactions (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		wallet_id UUID NOT NULL REFERENCES wallets(id) ON DELETE CASCADE,
		amount NUMERIC(10,2) NOT NULL,
		kind VARCHAR(20) NOT NULL,
		note VARCHAR(255),
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS referrals (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		referrer_id UUID NOT NULL REFERENCES customers(id) ON DELETE CASCADE,
		referred_id UUID NOT NULL REFERENCES customers(id) ON DELETE CASCADE,
		reward NUMERIC(10,2) NOT NULL DEFAULT 0,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		UNIQUE(referrer_id, referred_id)
	)`,

	`CREATE TABLE IF NOT EXISTS support_tickets (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		customer_id UUID REFERENCES customers(id) ON DELETE SET NULL,
		subject VARCHAR(255) NOT NULL,
		message TEXT NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'open',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_refresh_tokens_admin_id ON refresh_tokens(admin_id)`,
	`CREATE INDEX IF NOT EXISTS idx_templates_type_category ON templates(template_type, category)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_customer_id ON orders(customer_id)`,
	`CREATE INDEX IF NOT EXISTS idx_wallet_transactions_wallet_id ON wallet_transactions(wallet_id)`,
	`CREATE INDEX IF NOT EXISTS idx_referrals_referrer_id ON referrals(referrer_id)`,
	`CREATE INDEX IF NOT EXISTS idx_support_tickets_status ON support_tickets(status)`,
}

func (db *DB) Migrate(ctx context.Context) error {
	for i, migration := range migrations {
		if _, err := db.Pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
