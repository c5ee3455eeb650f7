package statement_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cargomoz/backoffice/internal/clock"
	"github.com/cargomoz/backoffice/internal/domain"
	"github.com/cargomoz/backoffice/internal/repository"
	"github.com/cargomoz/backoffice/internal/statement"
	"github.com/cargomoz/backoffice/internal/testutil"
)

func TestStatementEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	d := decimal.RequireFromString
	mzn := domain.CurrencyMZN
	date := func(dd int) time.Time { return time.Date(2025, 6, dd, 0, 0, 0, 0, time.UTC) }

	client := testutil.SeedClient(t, db, "Moçambique Cargo SA", "financeiro@mozcargo.co.mz", mzn)

	// Pre-period history: a paid invoice carried into the opening balance,
	// less the receipt that settled it.
	old := testutil.SeedInvoice(t, db, client.ID, "INV-2025-0001", d("1500"), mzn,
		domain.InvoiceStatusPaid, time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC))
	testutil.MarkInvoicePaid(t, db, old.ID, d("1500"), domain.InvoiceStatusPaid)
	testutil.SeedReceipt(t, db, client.ID, "REC-2025-0001", d("500"), mzn,
		domain.ReceiptStatusConfirmed, time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC))

	// Period documents, one of each kind.
	inv := testutil.SeedInvoice(t, db, client.ID, "INV-2025-0002", d("800"), mzn,
		domain.InvoiceStatusPartiallyPaid, date(3))
	testutil.MarkInvoicePaid(t, db, inv.ID, d("300"), domain.InvoiceStatusPartiallyPaid)
	testutil.SeedDebitNote(t, db, client.ID, "DN-2025-0001", d("120"), mzn,
		domain.DebitNoteStatusIssued, date(3))
	testutil.SeedReceipt(t, db, client.ID, "REC-2025-0002", d("300"), mzn,
		domain.ReceiptStatusConfirmed, date(10))
	testutil.SeedCreditNote(t, db, client.ID, "CN-2025-0001", d("50"), mzn,
		domain.CreditNoteStatusConfirmed, date(20))

	// Non-finalized documents must never surface.
	testutil.SeedInvoice(t, db, client.ID, "INV-2025-0099", d("9999"), mzn,
		domain.InvoiceStatusDraft, date(5))
	testutil.SeedReceipt(t, db, client.ID, "REC-2025-0099", d("9999"), mzn,
		domain.ReceiptStatusVoided, date(5))
	testutil.SeedDebitNote(t, db, client.ID, "DN-2025-0099", d("9999"), mzn,
		domain.DebitNoteStatusCancelled, date(5))
	testutil.SeedCreditNote(t, db, client.ID, "CN-2025-0099", d("9999"), mzn,
		domain.CreditNoteStatusDraft, date(5))

	// Another client's documents must not bleed in.
	other := testutil.SeedClient(t, db, "Nacala Freight Lda", "conta@nacalafreight.co.mz", mzn)
	testutil.SeedInvoice(t, db, other.ID, "INV-2025-0500", d("7777"), mzn,
		domain.InvoiceStatusIssued, date(4))

	clients := repository.NewClientRepository(db)
	invoices := repository.NewInvoiceRepository(db)
	builder := statement.NewBuilder(
		statement.NewInvoiceSource(invoices),
		statement.NewDebitNoteSource(repository.NewDebitNoteRepository(db)),
		statement.NewReceiptSource(repository.NewReceiptRepository(db)),
		statement.NewCreditNoteSource(repository.NewCreditNoteRepository(db)),
	)
	// The cutoff must postdate the fixtures' created_at, so pin the clock to
	// a fresh instant rather than a date inside the period.
	generatedAt := time.Now().UTC()
	svc := statement.NewService(clients, builder, statement.NewSummarizer(invoices), clock.Fixed{T: generatedAt})

	stmt, err := svc.Generate(ctx, statement.Request{
		ClientID:    client.ID,
		PeriodStart: date(1),
		PeriodEnd:   date(30),
	})
	require.NoError(t, err)

	// Opening: 1500 invoiced - 500 received before June.
	assert.True(t, stmt.OpeningBalance.Equal(d("1000")), "opening: got %s", stmt.OpeningBalance)

	require.Len(t, stmt.Entries, 4)
	wantNumbers := []string{"INV-2025-0002", "DN-2025-0001", "REC-2025-0002", "CN-2025-0001"}
	for i, want := range wantNumbers {
		assert.Equal(t, want, stmt.Entries[i].DocumentNumber, "entry %d", i)
	}

	// 1000 + 800 + 120 - 300 - 50.
	assert.True(t, stmt.FinalBalance.Equal(d("1570")), "final: got %s", stmt.FinalBalance)
	assert.True(t, stmt.Entries[3].RunningBalance.Equal(stmt.FinalBalance))
	assert.True(t, stmt.Summary.TotalDebits.Equal(d("920")), "debits: got %s", stmt.Summary.TotalDebits)
	assert.True(t, stmt.Summary.TotalCredits.Equal(d("350")), "credits: got %s", stmt.Summary.TotalCredits)

	// Only INV-2025-0002 is still open: 800 total, 300 paid.
	assert.True(t, stmt.Summary.PendingInvoicesAmount.Equal(d("500")),
		"pending: got %s", stmt.Summary.PendingInvoicesAmount)

	assert.Equal(t, generatedAt, stmt.GeneratedAt)

	// Second run over unchanged data must reproduce the statement.
	again, err := svc.Generate(ctx, statement.Request{
		ClientID:    client.ID,
		PeriodStart: date(1),
		PeriodEnd:   date(30),
	})
	require.NoError(t, err)
	assert.Equal(t, stmt, again)
}

func TestStatementClientNotFoundIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := testutil.SetupTestDB(t)

	clients := repository.NewClientRepository(db)
	invoices := repository.NewInvoiceRepository(db)
	builder := statement.NewBuilder(
		statement.NewInvoiceSource(invoices),
		statement.NewDebitNoteSource(repository.NewDebitNoteRepository(db)),
		statement.NewReceiptSource(repository.NewReceiptRepository(db)),
		statement.NewCreditNoteSource(repository.NewCreditNoteRepository(db)),
	)
	svc := statement.NewService(clients, builder, statement.NewSummarizer(invoices), clock.Real{})

	_, err := svc.Generate(context.Background(), statement.Request{
		ClientID:    uuid.New(),
		PeriodStart: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	})
	require.ErrorIs(t, err, domain.ErrClientNotFound)
}
