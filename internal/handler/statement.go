package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cargomoz/backoffice/internal/auth"
	"github.com/cargomoz/backoffice/internal/domain"
	"github.com/cargomoz/backoffice/internal/export"
	"github.com/cargomoz/backoffice/internal/logging"
	"github.com/cargomoz/backoffice/internal/metrics"
	"github.com/cargomoz/backoffice/internal/statement"
)

type statementService interface {
	Generate(ctx context.Context, req statement.Request) (*domain.Statement, error)
}

type StatementHandler struct {
	statements statementService
}

func NewStatementHandler(statements statementService) *StatementHandler {
	return &StatementHandler{statements: statements}
}

type statementQuery struct {
	PeriodStart string
	PeriodEnd   string
	Currency    string
	Format      string
}

func (q statementQuery) Validate() []FieldError {
	var errs []FieldError

	if q.PeriodStart == "" {
		errs = append(errs, FieldError{Field: "period_start", Message: "required"})
	} else if _, err := time.Parse(time.DateOnly, q.PeriodStart); err != nil {
		errs = append(errs, FieldError{Field: "period_start", Message: "must be a date in YYYY-MM-DD form"})
	}

	if q.PeriodEnd == "" {
		errs = append(errs, FieldError{Field: "period_end", Message: "required"})
	} else if _, err := time.Parse(time.DateOnly, q.PeriodEnd); err != nil {
		errs = append(errs, FieldError{Field: "period_end", Message: "must be a date in YYYY-MM-DD form"})
	}

	if q.Currency != "" && !domain.Currency(q.Currency).IsValid() {
		errs = append(errs, FieldError{Field: "currency", Message: "must be MZN, USD, EUR, or ZAR"})
	}

	switch q.Format {
	case "", "json", "pdf", "xlsx":
	default:
		errs = append(errs, FieldError{Field: "format", Message: "must be json, pdf, or xlsx"})
	}

	return errs
}

// GetForClient serves the staff route: client id in the path.
func (h *StatementHandler) GetForClient(w http.ResponseWriter, r *http.Request) {
	clientID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		RespondAppError(w, ErrResourceNotFound, nil)
		return
	}
	h.serve(w, r, clientID)
}

// GetForPortal serves the client-portal route: identity comes from the token.
func (h *StatementHandler) GetForPortal(w http.ResponseWriter, r *http.Request) {
	clientID, ok := auth.ClientIDFromContext(r.Context())
	if !ok {
		RespondAppError(w, ErrMissingToken, nil)
		return
	}
	h.serve(w, r, clientID)
}

func (h *StatementHandler) serve(w http.ResponseWriter, r *http.Request, clientID uuid.UUID) {
	log := logging.FromContext(r.Context())

	q := statementQuery{
		PeriodStart: r.URL.Query().Get("period_start"),
		PeriodEnd:   r.URL.Query().Get("period_end"),
		Currency:    r.URL.Query().Get("currency"),
		Format:      r.URL.Query().Get("format"),
	}
	if fields := q.Validate(); len(fields) > 0 {
		RespondValidationError(w, fields)
		return
	}

	periodStart, _ := time.Parse(time.DateOnly, q.PeriodStart)
	periodEnd, _ := time.Parse(time.DateOnly, q.PeriodEnd)

	stmt, err := h.statements.Generate(r.Context(), statement.Request{
		ClientID:    clientID,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Currency:    domain.Currency(q.Currency),
	})
	if err != nil {
		log.Warn("statement generation failed", "client_id", clientID, "error", err)
		RespondDomainError(w, err)
		return
	}

	switch q.Format {
	case "pdf":
		h.respondExport(w, r, stmt, "pdf", "application/pdf", export.StatementPDF)
	case "xlsx":
		h.respondExport(w, r, stmt, "xlsx",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", export.StatementXLSX)
	default:
		RespondSuccess(w, http.StatusOK, toStatementDTO(stmt))
	}
}

func (h *StatementHandler) respondExport(w http.ResponseWriter, r *http.Request, stmt *domain.Statement, format, contentType string, render func(*domain.Statement) ([]byte, error)) {
	data, err := render(stmt)
	if err != nil {
		metrics.ObserveStatementExport(format, metrics.ResultError)
		logging.FromContext(r.Context()).Error("statement export failed", "format", format, "error", err)
		RespondAppError(w, ErrInternalError, nil)
		return
	}
	metrics.ObserveStatementExport(format, metrics.ResultSuccess)

	filename := fmt.Sprintf("statement-%s-%s.%s",
		stmt.Client.ID, stmt.PeriodEnd.Format(time.DateOnly), format)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logging.FromContext(r.Context()).Error("failed to write export response", "error", err)
	}
}

type clientDTO struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	Currency string    `json:"currency"`
}

type entryDTO struct {
	Date           string          `json:"date"`
	Type           string          `json:"type"`
	TypeLabel      string          `json:"type_label"`
	DocumentNumber string          `json:"document_number"`
	Description    string          `json:"description"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	Balance        decimal.Decimal `json:"balance"`
}

type summaryDTO struct {
	InitialBalance        decimal.Decimal `json:"initial_balance"`
	TotalDebits           decimal.Decimal `json:"total_debits"`
	TotalCredits          decimal.Decimal `json:"total_credits"`
	FinalBalance          decimal.Decimal `json:"final_balance"`
	PendingInvoicesAmount decimal.Decimal `json:"pending_invoices_amount"`
}

type statementDTO struct {
	Client      clientDTO  `json:"client"`
	PeriodStart string     `json:"period_start"`
	PeriodEnd   string     `json:"period_end"`
	Entries     []entryDTO `json:"entries"`
	Summary     summaryDTO `json:"summary"`
	GeneratedAt time.Time  `json:"generated_at"`
}

func toStatementDTO(stmt *domain.Statement) statementDTO {
	entries := make([]entryDTO, 0, len(stmt.Entries))
	for _, e := range stmt.Entries {
		entries = append(entries, entryDTO{
			Date:           e.Date.Format(time.DateOnly),
			Type:           string(e.Kind),
			TypeLabel:      e.Kind.Label(),
			DocumentNumber: e.DocumentNumber,
			Description:    e.Description,
			Debit:          e.Debit,
			Credit:         e.Credit,
			Balance:        e.RunningBalance,
		})
	}

	return statementDTO{
		Client: clientDTO{
			ID:       stmt.Client.ID,
			Name:     stmt.Client.Name,
			Email:    stmt.Client.Email,
			Phone:    stmt.Client.Phone,
			Currency: string(stmt.Client.Currency),
		},
		PeriodStart: stmt.PeriodStart.Format(time.DateOnly),
		PeriodEnd:   stmt.PeriodEnd.Format(time.DateOnly),
		Entries:     entries,
		Summary: summaryDTO{
			InitialBalance:        stmt.OpeningBalance,
			TotalDebits:           stmt.Summary.TotalDebits,
			TotalCredits:          stmt.Summary.TotalCredits,
			FinalBalance:          stmt.FinalBalance,
			PendingInvoicesAmount: stmt.Summary.PendingInvoicesAmount,
		},
		GeneratedAt: stmt.GeneratedAt,
	}
}
