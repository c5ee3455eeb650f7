// Package export renders statements for the documents the back-office hands
// to clients. Both renderers consume only the public Statement shape.
package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/cargomoz/backoffice/internal/domain"
)

// StatementPDF renders a client account statement as a PDF document.
func StatementPDF(stmt *domain.Statement) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "B", 14)
	pdf.AddPage()

	pdf.Cell(0, 8, "Client Account Statement")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Client: %s", stmt.Client.Name))
	pdf.Ln(5)
	if stmt.Client.Email != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Email: %s", stmt.Client.Email))
		pdf.Ln(5)
	}
	if stmt.Client.Phone != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Phone: %s", stmt.Client.Phone))
		pdf.Ln(5)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Period: %s to %s",
		stmt.PeriodStart.Format(time.DateOnly), stmt.PeriodEnd.Format(time.DateOnly)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Currency: %s", stmt.Client.Currency))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", stmt.GeneratedAt.Format(time.RFC3339)))
	pdf.Ln(8)

	pdf.Cell(0, 6, fmt.Sprintf("Opening Balance: %s", stmt.OpeningBalance.StringFixed(2)))
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(20, 6, "Date", "1", 0, "C", false, 0, "")
	pdf.CellFormat(26, 6, "Document", "1", 0, "C", false, 0, "")
	pdf.CellFormat(24, 6, "Type", "1", 0, "C", false, 0, "")
	pdf.CellFormat(57, 6, "Description", "1", 0, "C", false, 0, "")
	pdf.CellFormat(21, 6, "Debit", "1", 0, "C", false, 0, "")
	pdf.CellFormat(21, 6, "Credit", "1", 0, "C", false, 0, "")
	pdf.CellFormat(21, 6, "Balance", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, e := range stmt.Entries {
		debit, credit := "", ""
		if e.Debit.IsPositive() {
			debit = e.Debit.StringFixed(2)
		}
		if e.Credit.IsPositive() {
			credit = e.Credit.StringFixed(2)
		}
		pdf.CellFormat(20, 6, e.Date.Format(time.DateOnly), "1", 0, "C", false, 0, "")
		pdf.CellFormat(26, 6, e.DocumentNumber, "1", 0, "L", false, 0, "")
		pdf.CellFormat(24, 6, e.Kind.Label(), "1", 0, "L", false, 0, "")
		pdf.CellFormat(57, 6, e.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(21, 6, debit, "1", 0, "R", false, 0, "")
		pdf.CellFormat(21, 6, credit, "1", 0, "R", false, 0, "")
		pdf.CellFormat(21, 6, e.RunningBalance.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.Cell(0, 6, fmt.Sprintf("Total Debits: %s", stmt.Summary.TotalDebits.StringFixed(2)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Total Credits: %s", stmt.Summary.TotalCredits.StringFixed(2)))
	pdf.Ln(5)
	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Final Balance: %s %s", stmt.FinalBalance.StringFixed(2), stmt.Client.Currency))
	pdf.Ln(8)

	if stmt.Summary.PendingInvoicesAmount.IsPositive() {
		pdf.SetFont("Arial", "I", 9)
		pdf.Cell(0, 6, fmt.Sprintf("Notice: %s %s in unpaid invoices is outstanding on this account.",
			stmt.Summary.PendingInvoicesAmount.StringFixed(2), stmt.Client.Currency))
		pdf.Ln(5)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("StatementPDF: %w", err)
	}
	return buf.Bytes(), nil
}
