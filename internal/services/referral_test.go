package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prateek/brandpost-api/internal/database"
)

func setupReferralService(t *testing.T) (*ReferralService, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	db := &database.DB{Pool: mock}
	return NewReferralService(db), mock
}

func TestReferralService_List(t *testing.T) {
	svc, mock := setupReferralService(t)
	ctx := context.Background()
	referrerID := uuid.New()
	referredID := uuid.New()
	now := time.Now()

	rows := pgxmock.NewRows([]string{"id", "referrer_id", "referred_id", "reward", "status", "created_at"}).
		AddRow(uuid.New(), referrerID, referredID, "25.00", "rewarded", now)

	mock.ExpectQuery(`SELECT .+ FROM referrals`).
		WithArgs("rewarded", 25, 0).
		WillReturnRows(rows)

	referrals, err := svc.List(ctx, "rewarded", 0, 0)

	require.NoError(t, err)
	require.Len(t, referrals, 1)
	assert.Equal(t, referrerID, referrals[0].ReferrerID)
	assert.Equal(t, "25.00", referrals[0].Reward)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReferralService_List_ClampsLimit(t *testing.T) {
	svc, mock := setupReferralService(t)
	ctx := context.Background()

	rows := pgxmock.NewRows([]string{"id", "referrer_id", "referred_id", "reward", "status", "created_at"})

	mock.ExpectQuery(`SELECT .+ FROM referrals`).
		WithArgs("", 25, 0).
		WillReturnRows(rows)

	referrals, err := svc.List(ctx, "", 500, -1)

	require.NoError(t, err)
	assert.Empty(t, referrals)
	assert.NoError(t, mock.ExpectationsWereMet())
}
