package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/prateek/brandpost-api/internal/middleware"
	"github.com/prateek/brandpost-api/internal/models"
	"github.com/prateek/brandpost-api/internal/services"
	"github.com/prateek/brandpost-api/pkg/dto"
	"github.com/prateek/brandpost-api/tests/testutil"
)

func setupSupportTest(t *testing.T) (*testutil.MockSupportService, *SupportHandler, *services.JWTService) {
	t.Helper()
	mockSupportService := new(testutil.MockSupportService)
	handler := NewSupportHandler(mockSupportService)
	jwtSvc := services.NewJWTService("test-secret-key", 15*time.Minute, 24*time.Hour)
	return mockSupportService, handler, jwtSvc
}

func TestSupportHandler_List_FilteredByStatus(t *testing.T) {
	mockSupportService, handler, jwtSvc := setupSupportTest(t)

	adminID := uuid.New()
	tickets := []models.SupportTicket{
		{ID: uuid.New(), Subject: "Export broken", Message: "The download button does nothing", Status: "open"},
	}

	mockSupportService.On("List", mock.Anything, "open", 25, 0).Return(tickets, nil)

	app := drift.New()
	app.Use(middleware.Auth(jwtSvc))
	app.Get("/support/tickets", handler.List)

	token := generateTestToken(t, jwtSvc, adminID, "admin@example.com", models.RoleAdmin)
	req := httptest.NewRequest(http.MethodGet, "/support/tickets?status=open", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Export broken")

	mockSupportService.AssertExpectations(t)
}

func TestSupportHandler_UpdateStatus_Success(t *testing.T) {
	mockSupportService, handler, jwtSvc := setupSupportTest(t)

	adminID := uuid.New()
	ticketID := uuid.New()
	ticket := &models.SupportTicket{ID: ticketID, Subject: "Export broken", Status: "resolved"}

	mockSupportService.On("UpdateStatus", mock.Anything, ticketID, "resolved").Return(ticket, nil)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Patch("/support/tickets/:id", handler.UpdateStatus)

	body, _ := json.Marshal(dto.UpdateTicketRequest{Status: "resolved"})

	token := generateTestToken(t, jwtSvc, adminID, "admin@example.com", models.RoleAdmin)
	req := httptest.NewRequest(http.MethodPatch, "/support/tickets/"+ticketID.String(), bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ticket updated")

	mockSupportService.AssertExpectations(t)
}

func TestSupportHandler_UpdateStatus_InvalidStatus(t *testing.T) {
	mockSupportService, handler, jwtSvc := setupSupportTest(t)

	adminID := uuid.New()
	ticketID := uuid.New()

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Patch("/support/tickets/:id", handler.UpdateStatus)

	body, _ := json.Marshal(dto.UpdateTicketRequest{Status: "escalated"})

	token := generateTestToken(t, jwtSvc, adminID, "admin@example.com", models.RoleAdmin)
	req := httptest.NewRequest(http.MethodPatch, "/support/tickets/"+ticketID.String(), bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockSupportService.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestSupportHandler_Get_NotFound(t *testing.T) {
	mockSupportService, handler, jwtSvc := setupSupportTest(t)

	adminID := uuid.New()
	ticketID := uuid.New()

	mockSupportService.On("GetByID", mock.Anything, ticketID).Return(nil, assert.AnError)

	app := drift.New()
	app.Use(middleware.Auth(jwtSvc))
	app.Get("/support/tickets/:id", handler.Get)

	token := generateTestToken(t, jwtSvc, adminID, "admin@example.com", models.RoleAdmin)
	req := httptest.NewRequest(http.MethodGet, "/support/tickets/"+ticketID.String(), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "ticket not found")
}
