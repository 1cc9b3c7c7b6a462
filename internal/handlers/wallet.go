package handlers

import (
	"context"

	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"

	"github.com/prateek/brandpost-api/pkg/dto"
)

type WalletHandler struct {
	walletService   WalletServiceInterface
	referralService ReferralServiceInterface
}

func NewWalletHandler(walletService WalletServiceInterface, referralService ReferralServiceInterface) *WalletHandler {
	return &WalletHandler{
		walletService:   walletService,
		referralService: referralService,
	}
}

func (h *WalletHandler) List(c *drift.Context) {
	limit, offset := pageParams(c)

	wallets, err := h.walletService.List(context.Background(), limit, offset)
	if err != nil {
		c.InternalServerError("failed to list wallets")
		return
	}

	_ = c.JSON(200, dto.OK(wallets))
}

func (h *WalletHandler) GetTransactions(c *drift.Context) {
	customerID, err := uuid.Parse(c.Param("customerId"))
	if err != nil {
		c.BadRequest("invalid customer id")
		return
	}

	transactions, err := h.walletService.GetTransactions(context.Background(), customerID)
	if err != nil {
		c.InternalServerError("failed to list wallet transactions")
		return
	}

	_ = c.JSON(200, dto.OK(transactions))
}

func (h *WalletHandler) ListReferrals(c *drift.Context) {
	limit, offset := pageParams(c)

	referrals, err := h.referralService.List(context.Background(), c.QueryParam("status"), limit, offset)
	if err != nil {
		c.InternalServerError("failed to list referrals")
		return
	}

	_ = c.JSON(200, dto.OK(referrals))
}
