package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cargomoz/backoffice/internal/auth"
	"github.com/cargomoz/backoffice/internal/domain"
	"github.com/cargomoz/backoffice/internal/statement"
)

type stubStatementService struct {
	stmt    *domain.Statement
	err     error
	lastReq statement.Request
}

func (s *stubStatementService) Generate(_ context.Context, req statement.Request) (*domain.Statement, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.stmt, nil
}

func sampleStatement(clientID uuid.UUID) *domain.Statement {
	d := decimal.RequireFromString
	return &domain.Statement{
		Client: domain.ClientInfo{
			ID:       clientID,
			Name:     "Transportes Beira Lda",
			Email:    "conta@transportesbeira.co.mz",
			Phone:    "+258 84 123 4567",
			Currency: domain.CurrencyMZN,
		},
		PeriodStart:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:      time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		OpeningBalance: d("1000"),
		FinalBalance:   d("1200"),
		Entries: []domain.LedgerEntry{
			{
				Date:           time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
				Kind:           domain.KindReceipt,
				DocumentNumber: "REC-1",
				Description:    "Payment received REC-1",
				Credit:         d("300"),
				Currency:       domain.CurrencyMZN,
				RunningBalance: d("700"),
			},
			{
				Date:           time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
				Kind:           domain.KindInvoice,
				DocumentNumber: "INV-1",
				Description:    "Freight services INV-1",
				Debit:          d("500"),
				Currency:       domain.CurrencyMZN,
				RunningBalance: d("1200"),
			},
		},
		Summary: domain.StatementSummary{
			TotalDebits:           d("500"),
			TotalCredits:          d("300"),
			PendingInvoicesAmount: d("350"),
		},
		GeneratedAt: time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC),
	}
}

func getStatement(t *testing.T, h *StatementHandler, target string) *httptest.ResponseRecorder {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/clients/{id}/statement", h.GetForClient)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var resp APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestGetStatementJSON(t *testing.T) {
	clientID := uuid.New()
	svc := &stubStatementService{stmt: sampleStatement(clientID)}
	h := NewStatementHandler(svc)

	target := fmt.Sprintf("/api/v1/clients/%s/statement?period_start=2025-06-01&period_end=2025-06-30", clientID)
	rec := getStatement(t, h, target)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	require.Nil(t, resp.Error)

	body, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var dto statementDTO
	require.NoError(t, json.Unmarshal(body, &dto))

	assert.Equal(t, clientID, dto.Client.ID)
	assert.Equal(t, "2025-06-01", dto.PeriodStart)
	assert.Equal(t, "2025-06-30", dto.PeriodEnd)
	require.Len(t, dto.Entries, 2)
	assert.Equal(t, "receipt", dto.Entries[0].Type)
	assert.Equal(t, "Receipt", dto.Entries[0].TypeLabel)
	assert.True(t, dto.Entries[0].Balance.Equal(decimal.RequireFromString("700")))
	assert.True(t, dto.Summary.InitialBalance.Equal(decimal.RequireFromString("1000")))
	assert.True(t, dto.Summary.FinalBalance.Equal(decimal.RequireFromString("1200")))
	assert.True(t, dto.Summary.PendingInvoicesAmount.Equal(decimal.RequireFromString("350")))

	assert.Equal(t, clientID, svc.lastReq.ClientID)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), svc.lastReq.PeriodStart)
}

func TestGetStatementValidation(t *testing.T) {
	clientID := uuid.New()

	tests := []struct {
		name      string
		query     string
		wantField string
	}{
		{"missing period_start", "period_end=2025-06-30", "period_start"},
		{"missing period_end", "period_start=2025-06-01", "period_end"},
		{"malformed date", "period_start=01/06/2025&period_end=2025-06-30", "period_start"},
		{"unknown currency", "period_start=2025-06-01&period_end=2025-06-30&currency=GBP", "currency"},
		{"unknown format", "period_start=2025-06-01&period_end=2025-06-30&format=csv", "format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewStatementHandler(&stubStatementService{stmt: sampleStatement(clientID)})
			target := fmt.Sprintf("/api/v1/clients/%s/statement?%s", clientID, tt.query)
			rec := getStatement(t, h, target)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			resp := decodeResponse(t, rec)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, "VALIDATION_FAILED", resp.Error.Code)
			assert.Contains(t, rec.Body.String(), tt.wantField)
		})
	}
}

func TestGetStatementBadClientID(t *testing.T) {
	h := NewStatementHandler(&stubStatementService{})
	rec := getStatement(t, h, "/api/v1/clients/not-a-uuid/statement?period_start=2025-06-01&period_end=2025-06-30")

	require.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "RESOURCE_NOT_FOUND", resp.Error.Code)
}

func TestGetStatementDomainErrors(t *testing.T) {
	clientID := uuid.New()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"client not found", domain.ErrClientNotFound, http.StatusNotFound, "CLIENT_NOT_FOUND"},
		{"invalid range", domain.ErrInvalidDateRange, http.StatusBadRequest, "INVALID_DATE_RANGE"},
		{"currency mismatch", domain.ErrCurrencyMismatch, http.StatusUnprocessableEntity, "CURRENCY_MISMATCH"},
		{"source down", domain.ErrSourceUnavailable, http.StatusServiceUnavailable, "SOURCE_UNAVAILABLE"},
		{"invariant violation", domain.ErrInvariantViolation, http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewStatementHandler(&stubStatementService{err: fmt.Errorf("Generate: %w", tt.err)})
			target := fmt.Sprintf("/api/v1/clients/%s/statement?period_start=2025-06-01&period_end=2025-06-30", clientID)
			rec := getStatement(t, h, target)

			require.Equal(t, tt.wantStatus, rec.Code)
			resp := decodeResponse(t, rec)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestGetStatementPDF(t *testing.T) {
	clientID := uuid.New()
	h := NewStatementHandler(&stubStatementService{stmt: sampleStatement(clientID)})

	target := fmt.Sprintf("/api/v1/clients/%s/statement?period_start=2025-06-01&period_end=2025-06-30&format=pdf", clientID)
	rec := getStatement(t, h, target)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "2025-06-30.pdf")
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF"), "body must be a PDF document")
}

func TestGetStatementXLSX(t *testing.T) {
	clientID := uuid.New()
	h := NewStatementHandler(&stubStatementService{stmt: sampleStatement(clientID)})

	target := fmt.Sprintf("/api/v1/clients/%s/statement?period_start=2025-06-01&period_end=2025-06-30&format=xlsx", clientID)
	rec := getStatement(t, h, target)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rec.Header().Get("Content-Type"))
	// XLSX files are zip archives.
	assert.True(t, strings.HasPrefix(rec.Body.String(), "PK"), "body must be a zip archive")
}

func TestGetStatementForPortal(t *testing.T) {
	clientID := uuid.New()
	svc := &stubStatementService{stmt: sampleStatement(clientID)}
	h := NewStatementHandler(svc)

	t.Run("with identity", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet,
			"/api/v1/portal/statement?period_start=2025-06-01&period_end=2025-06-30", nil)
		req = req.WithContext(auth.ContextWithClientID(req.Context(), clientID))

		rec := httptest.NewRecorder()
		h.GetForPortal(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, clientID, svc.lastReq.ClientID, "client id must come from the token")
	})

	t.Run("without identity", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet,
			"/api/v1/portal/statement?period_start=2025-06-01&period_end=2025-06-30", nil)

		rec := httptest.NewRecorder()
		h.GetForPortal(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		resp := decodeResponse(t, rec)
		assert.Equal(t, "MISSING_TOKEN", resp.Error.Code)
	})
}
