// monthend generates account statements for every active client for one
// calendar month and writes the PDFs to an output directory. It is run from
// cron after the month closes.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"github.com/cargomoz/backoffice/internal/clock"
	"github.com/cargomoz/backoffice/internal/export"
	"github.com/cargomoz/backoffice/internal/logging"
	"github.com/cargomoz/backoffice/internal/repository"
	"github.com/cargomoz/backoffice/internal/statement"
)

var cli struct {
	DatabaseURL string   `help:"Postgres connection string." env:"DATABASE_URL" required:""`
	Month       string   `help:"Statement month in YYYY-MM form." arg:""`
	OutDir      string   `help:"Directory for generated PDFs." default:"./statements"`
	Workers     int      `help:"Parallel statement workers." env:"STATEMENT_WORKERS" default:"4"`
	Clients     []string `help:"Restrict the run to these client UUIDs." optional:""`
	LogLevel    string   `help:"Log level." env:"LOG_LEVEL" default:"info"`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("monthend"),
		kong.Description("Generate month-end client account statements."),
		kong.UsageOnError(),
	)
	kctx.FatalIfErrorf(run())
}

func run() error {
	logging.Init("cargomoz-monthend", cli.LogLevel, "production")
	ctx := context.Background()

	monthStart, err := time.Parse("2006-01", cli.Month)
	if err != nil {
		return fmt.Errorf("invalid month %q, want YYYY-MM: %w", cli.Month, err)
	}
	monthEnd := monthStart.AddDate(0, 1, -1)

	db, err := repository.Connect(cli.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	clients := repository.NewClientRepository(db)
	invoices := repository.NewInvoiceRepository(db)

	builder := statement.NewBuilder(
		statement.NewInvoiceSource(invoices),
		statement.NewDebitNoteSource(repository.NewDebitNoteRepository(db)),
		statement.NewReceiptSource(repository.NewReceiptRepository(db)),
		statement.NewCreditNoteSource(repository.NewCreditNoteRepository(db)),
	)
	svc := statement.NewService(clients, builder, statement.NewSummarizer(invoices), clock.Real{})

	clientIDs, err := resolveClientIDs(ctx, clients)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cli.OutDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	runner := statement.NewBatchRunner(svc, cli.Workers)
	results := runner.Run(ctx, clientIDs, monthStart, monthEnd)

	var failed int
	for _, res := range results {
		if res.Err != nil {
			failed++
			slog.Error("statement failed", "client_id", res.ClientID, "error", res.Err)
			continue
		}

		data, err := export.StatementPDF(res.Statement)
		if err != nil {
			failed++
			slog.Error("pdf render failed", "client_id", res.ClientID, "error", err)
			continue
		}

		name := fmt.Sprintf("statement-%s-%s.pdf", res.ClientID, cli.Month)
		if err := os.WriteFile(filepath.Join(cli.OutDir, name), data, 0o644); err != nil {
			failed++
			slog.Error("pdf write failed", "client_id", res.ClientID, "error", err)
			continue
		}
	}

	slog.Info("month-end run finished",
		"month", cli.Month,
		"clients", len(clientIDs),
		"failed", failed,
		"out_dir", cli.OutDir,
	)
	if failed > 0 {
		return fmt.Errorf("%d of %d statements failed", failed, len(clientIDs))
	}
	return nil
}

func resolveClientIDs(ctx context.Context, clients *repository.ClientRepository) ([]uuid.UUID, error) {
	if len(cli.Clients) == 0 {
		return clients.ListActiveIDs(ctx)
	}

	ids := make([]uuid.UUID, 0, len(cli.Clients))
	for _, raw := range cli.Clients {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid client id %q: %w", raw, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
