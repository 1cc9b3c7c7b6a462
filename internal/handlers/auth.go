package handlers

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"

	"github.com/prateek/brandpost-api/internal/config"
	"github.com/prateek/brandpost-api/internal/middleware"
	"github.com/prateek/brandpost-api/internal/oauth"
	"github.com/prateek/brandpost-api/internal/services"
	"github.com/prateek/brandpost-api/pkg/dto"
)

type AuthHandler struct {
	cfg          *config.Config
	provider     oauth.Provider
	adminService AdminServiceInterface
	tokenService TokenServiceInterface
	jwtService   JWTServiceInterface
	states       sync.Map
	authCodes    sync.Map
}

type stateData struct {
	expiresAt time.Time
}

type authCodeData struct {
	adminID   uuid.UUID
	expiresAt time.Time
}

func NewAuthHandler(
	cfg *config.Config,
	adminService AdminServiceInterface,
	tokenService TokenServiceInterface,
	jwtService JWTServiceInterface,
) *AuthHandler {
	h := &AuthHandler{
		cfg:          cfg,
		adminService: adminService,
		tokenService: tokenService,
		jwtService:   jwtService,
	}

	if cfg.Google.ClientID != "" {
		h.provider = oauth.NewGoogleProvider(cfg.Google)
	}

	go h.cleanupStates()

	return h
}

func (h *AuthHandler) cleanupStates() {
	ticker := time.NewTicker(1 * time.Minute)
	for range ticker.C {
		now := time.Now()
		h.states.Range(func(key, value interface{}) bool {
			if sd, ok := value.(stateData); ok && now.After(sd.expiresAt) {
				h.states.Delete(key)
			}
			return true
		})
		h.authCodes.Range(func(key, value interface{}) bool {
			if acd, ok := value.(authCodeData); ok && now.After(acd.expiresAt) {
				h.authCodes.Delete(key)
			}
			return true
		})
	}
}

func (h *AuthHandler) GetConsentURL(c *drift.Context) {
	if h.provider == nil {
		c.InternalServerError("sign-in is not configured")
		return
	}

	state, err := oauth.GenerateState()
	if err != nil {
		c.InternalServerError("failed to generate state")
		return
	}

	h.states.Store(state, stateData{expiresAt: time.Now().Add(10 * time.Minute)})

	_ = c.JSON(200, dto.OK(map[string]string{"url": h.provider.GetConsentURL(state)}))
}

func (h *AuthHandler) Callback(c *drift.Context) {
	if h.provider == nil {
		h.redirectWithError(c, "sign-in is not configured")
		return
	}

	state := c.QueryParam("state")
	if state == "" {
		h.redirectWithError(c, "missing state parameter")
		return
	}

	sd, ok := h.states.LoadAndDelete(state)
	if !ok {
		h.redirectWithError(c, "invalid or expired state")
		return
	}

	sdTyped, ok := sd.(stateData)
	if !ok || time.Now().After(sdTyped.expiresAt) {
		h.redirectWithError(c, "state expired")
		return
	}

	code := c.QueryParam("code")
	if code == "" {
		h.redirectWithError(c, "missing authorization code")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	userInfo, err := h.provider.ExchangeCode(ctx, code)
	if err != nil {
		h.redirectWithError(c, "failed to exchange code")
		return
	}

	admin, err := h.adminService.FindOrCreateFromOAuth(ctx, userInfo)
	if err != nil {
		h.redirectWithError(c, "failed to sign in")
		return
	}

	authCode, err := oauth.GenerateState()
	if err != nil {
		h.redirectWithError(c, "failed to generate auth code")
		return
	}

	h.authCodes.Store(authCode, authCodeData{
		adminID:   admin.ID,
		expiresAt: time.Now().Add(30 * time.Second),
	})

	redirectURL := fmt.Sprintf("%s?code=%s", h.cfg.FrontendCallbackURL, url.QueryEscape(authCode))
	h.renderCallbackPage(c, 200, redirectURL, "Signed in. Redirecting to the console...")
}

func (h *AuthHandler) ExchangeCode(c *drift.Context) {
	var req dto.ExchangeCodeRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Code == "" {
		c.BadRequest("code is required")
		return
	}

	acd, ok := h.authCodes.LoadAndDelete(req.Code)
	if !ok {
		c.Unauthorized("invalid or expired code")
		return
	}

	codeData, ok := acd.(authCodeData)
	if !ok || time.Now().After(codeData.expiresAt) {
		c.Unauthorized("code expired")
		return
	}

	ctx := context.Background()

	admin, err := h.adminService.GetByID(ctx, codeData.adminID)
	if err != nil {
		c.Unauthorized("admin not found")
		return
	}

	h.issueTokens(c, ctx, admin.ID, admin.Email, admin.Role)
}

func (h *AuthHandler) RefreshToken(c *drift.Context) {
	var req dto.RefreshTokenRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.RefreshToken == "" {
		c.BadRequest("refresh_token is required")
		return
	}

	adminID, err := h.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		c.Unauthorized("invalid refresh token")
		return
	}

	tokenHash := services.HashToken(req.RefreshToken)
	ctx := context.Background()

	storedAdminID, err := h.tokenService.ValidateRefreshToken(ctx, tokenHash)
	if err != nil || storedAdminID != adminID {
		c.Unauthorized("refresh token not found or expired")
		return
	}

	admin, err := h.adminService.GetByID(ctx, adminID)
	if err != nil {
		c.Unauthorized("admin not found")
		return
	}

	if err := h.tokenService.RevokeRefreshToken(ctx, tokenHash); err != nil {
		c.InternalServerError("failed to revoke old token")
		return
	}

	h.issueTokens(c, ctx, admin.ID, admin.Email, admin.Role)
}

func (h *AuthHandler) Logout(c *drift.Context) {
	var req dto.LogoutRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.RefreshToken != "" {
		tokenHash := services.HashToken(req.RefreshToken)
		_ = h.tokenService.RevokeRefreshToken(context.Background(), tokenHash)
	}

	_ = c.JSON(200, dto.OKMessage("logged out", nil))
}

func (h *AuthHandler) LogoutAll(c *drift.Context) {
	adminID := middleware.GetAdminID(c)
	if adminID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	if err := h.tokenService.RevokeAllAdminTokens(context.Background(), adminID); err != nil {
		c.InternalServerError("failed to revoke tokens")
		return
	}

	_ = c.JSON(200, dto.OKMessage("all sessions logged out", nil))
}

func (h *AuthHandler) issueTokens(c *drift.Context, ctx context.Context, adminID uuid.UUID, email, role string) {
	tokenPair, err := h.jwtService.GenerateTokenPair(adminID, email, role)
	if err != nil {
		c.InternalServerError("failed to generate tokens")
		return
	}

	tokenHash := services.HashToken(tokenPair.RefreshToken)
	expiresAt := time.Now().Add(h.jwtService.RefreshExpiry())
	if err := h.tokenService.StoreRefreshToken(ctx, adminID, tokenHash, expiresAt); err != nil {
		c.InternalServerError("failed to store refresh token")
		return
	}

	_ = c.JSON(200, dto.TokenResponse{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresIn:    tokenPair.ExpiresIn,
	})
}

func (h *AuthHandler) redirectWithError(c *drift.Context, errMsg string) {
	redirectURL := fmt.Sprintf("%s?error=%s", h.cfg.FrontendCallbackURL, url.QueryEscape(errMsg))
	h.renderCallbackPage(c, 400, redirectURL, errMsg)
}

func (h *AuthHandler) renderCallbackPage(c *drift.Context, status int, redirectURL, message string) {
	page := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta http-equiv="refresh" content="0;url=%s">
  <title>brandpost console</title>
</head>
<body>
  <p>%s</p>
  <p><a href="%s">Continue</a></p>
</body>
</html>`, redirectURL, message, redirectURL)

	_ = c.HTML(status, page)
}
