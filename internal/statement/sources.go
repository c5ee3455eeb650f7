package statement

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cargomoz/backoffice/internal/domain"
)

// A DocumentSource normalizes one document repository into ledger entries.
// Sources are pure read adapters: they only return finalized documents, and
// every query is bounded by the asOf cutoff so a document created after the
// snapshot instant can never leak into a statement.
type DocumentSource interface {
	Kind() domain.DocumentKind
	Fetch(ctx context.Context, clientID uuid.UUID, from, to time.Time, asOf time.Time) ([]domain.LedgerEntry, error)
}

type invoiceLister interface {
	ListFinalized(ctx context.Context, clientID uuid.UUID, from, to time.Time, asOf time.Time) ([]domain.Invoice, error)
}

type debitNoteLister interface {
	ListFinalized(ctx context.Context, clientID uuid.UUID, from, to time.Time, asOf time.Time) ([]domain.DebitNote, error)
}

type receiptLister interface {
	ListFinalized(ctx context.Context, clientID uuid.UUID, from, to time.Time, asOf time.Time) ([]domain.Receipt, error)
}

type creditNoteLister interface {
	ListFinalized(ctx context.Context, clientID uuid.UUID, from, to time.Time, asOf time.Time) ([]domain.CreditNote, error)
}

type InvoiceSource struct {
	invoices invoiceLister
}

func NewInvoiceSource(invoices invoiceLister) *InvoiceSource {
	return &InvoiceSource{invoices: invoices}
}

func (s *InvoiceSource) Kind() domain.DocumentKind { return domain.KindInvoice }

func (s *InvoiceSource) Fetch(ctx context.Context, clientID uuid.UUID, from, to time.Time, asOf time.Time) ([]domain.LedgerEntry, error) {
	docs, err := s.invoices.ListFinalized(ctx, clientID, from, to, asOf)
	if err != nil {
		return nil, fmt.Errorf("Fetch: %w", err)
	}
	entries := make([]domain.LedgerEntry, 0, len(docs))
	for i := range docs {
		entries = append(entries, NormalizeInvoice(&docs[i]))
	}
	return entries, nil
}

// NormalizeInvoice maps an invoice to a debit entry for its full total.
// Partial payments show up as receipt credits, never as a reduced debit.
func NormalizeInvoice(inv *domain.Invoice) domain.LedgerEntry {
	return domain.LedgerEntry{
		Date:           domain.DateOf(inv.IssueDate),
		Kind:           domain.KindInvoice,
		DocumentNumber: inv.Number,
		Description:    inv.Description,
		Debit:          inv.Total,
		Currency:       inv.Currency,
	}
}

type DebitNoteSource struct {
	notes debitNoteLister
}

func NewDebitNoteSource(notes debitNoteLister) *DebitNoteSource {
	return &DebitNoteSource{notes: notes}
}

func (s *DebitNoteSource) Kind() domain.DocumentKind { return domain.KindDebitNote }

func (s *DebitNoteSource) Fetch(ctx context.Context, clientID uuid.UUID, from, to time.Time, asOf time.Time) ([]domain.LedgerEntry, error) {
	docs, err := s.notes.ListFinalized(ctx, clientID, from, to, asOf)
	if err != nil {
		return nil, fmt.Errorf("Fetch: %w", err)
	}
	entries := make([]domain.LedgerEntry, 0, len(docs))
	for i := range docs {
		entries = append(entries, NormalizeDebitNote(&docs[i]))
	}
	return entries, nil
}

func NormalizeDebitNote(n *domain.DebitNote) domain.LedgerEntry {
	return domain.LedgerEntry{
		Date:           domain.DateOf(n.IssueDate),
		Kind:           domain.KindDebitNote,
		DocumentNumber: n.Number,
		Description:    n.Description,
		Debit:          n.Total,
		Currency:       n.Currency,
	}
}

type ReceiptSource struct {
	receipts receiptLister
}

func NewReceiptSource(receipts receiptLister) *ReceiptSource {
	return &ReceiptSource{receipts: receipts}
}

func (s *ReceiptSource) Kind() domain.DocumentKind { return domain.KindReceipt }

func (s *ReceiptSource) Fetch(ctx context.Context, clientID uuid.UUID, from, to time.Time, asOf time.Time) ([]domain.LedgerEntry, error) {
	docs, err := s.receipts.ListFinalized(ctx, clientID, from, to, asOf)
	if err != nil {
		return nil, fmt.Errorf("Fetch: %w", err)
	}
	entries := make([]domain.LedgerEntry, 0, len(docs))
	for i := range docs {
		entries = append(entries, NormalizeReceipt(&docs[i]))
	}
	return entries, nil
}

func NormalizeReceipt(rec *domain.Receipt) domain.LedgerEntry {
	return domain.LedgerEntry{
		Date:           domain.DateOf(rec.ReceiptDate),
		Kind:           domain.KindReceipt,
		DocumentNumber: rec.Number,
		Description:    rec.Description,
		Credit:         rec.Amount,
		Currency:       rec.Currency,
	}
}

type CreditNoteSource struct {
	notes creditNoteLister
}

func NewCreditNoteSource(notes creditNoteLister) *CreditNoteSource {
	return &CreditNoteSource{notes: notes}
}

func (s *CreditNoteSource) Kind() domain.DocumentKind { return domain.KindCreditNote }

func (s *CreditNoteSource) Fetch(ctx context.Context, clientID uuid.UUID, from, to time.Time, asOf time.Time) ([]domain.LedgerEntry, error) {
	docs, err := s.notes.ListFinalized(ctx, clientID, from, to, asOf)
	if err != nil {
		return nil, fmt.Errorf("Fetch: %w", err)
	}
	entries := make([]domain.LedgerEntry, 0, len(docs))
	for i := range docs {
		entries = append(entries, NormalizeCreditNote(&docs[i]))
	}
	return entries, nil
}

func NormalizeCreditNote(n *domain.CreditNote) domain.LedgerEntry {
	return domain.LedgerEntry{
		Date:           domain.DateOf(n.IssueDate),
		Kind:           domain.KindCreditNote,
		DocumentNumber: n.Number,
		Description:    n.Description,
		Credit:         n.Total,
		Currency:       n.Currency,
	}
}
