package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/cargomoz/backoffice/internal/domain"
)

// StatementXLSX renders a client account statement as an XLSX workbook with
// a summary sheet and an entries sheet.
func StatementXLSX(stmt *domain.Statement) ([]byte, error) {
	f := excelize.NewFile()
	summarySheet := "summary"
	entriesSheet := "entries"
	f.SetSheetName("Sheet1", summarySheet)
	if _, err := f.NewSheet(entriesSheet); err != nil {
		return nil, fmt.Errorf("StatementXLSX: %w", err)
	}

	_ = f.SetCellValue(summarySheet, "A1", "Client Account Statement")
	_ = f.SetCellValue(summarySheet, "A3", "Client")
	_ = f.SetCellValue(summarySheet, "B3", stmt.Client.Name)
	_ = f.SetCellValue(summarySheet, "A4", "Email")
	_ = f.SetCellValue(summarySheet, "B4", stmt.Client.Email)
	_ = f.SetCellValue(summarySheet, "A5", "Phone")
	_ = f.SetCellValue(summarySheet, "B5", stmt.Client.Phone)
	_ = f.SetCellValue(summarySheet, "A6", "Period Start")
	_ = f.SetCellValue(summarySheet, "B6", stmt.PeriodStart.Format(time.DateOnly))
	_ = f.SetCellValue(summarySheet, "A7", "Period End")
	_ = f.SetCellValue(summarySheet, "B7", stmt.PeriodEnd.Format(time.DateOnly))
	_ = f.SetCellValue(summarySheet, "A8", "Currency")
	_ = f.SetCellValue(summarySheet, "B8", string(stmt.Client.Currency))
	_ = f.SetCellValue(summarySheet, "A9", "Opening Balance")
	_ = f.SetCellValue(summarySheet, "B9", stmt.OpeningBalance.StringFixed(2))
	_ = f.SetCellValue(summarySheet, "A10", "Total Debits")
	_ = f.SetCellValue(summarySheet, "B10", stmt.Summary.TotalDebits.StringFixed(2))
	_ = f.SetCellValue(summarySheet, "A11", "Total Credits")
	_ = f.SetCellValue(summarySheet, "B11", stmt.Summary.TotalCredits.StringFixed(2))
	_ = f.SetCellValue(summarySheet, "A12", "Final Balance")
	_ = f.SetCellValue(summarySheet, "B12", stmt.FinalBalance.StringFixed(2))
	_ = f.SetCellValue(summarySheet, "A13", "Pending Invoices")
	_ = f.SetCellValue(summarySheet, "B13", stmt.Summary.PendingInvoicesAmount.StringFixed(2))
	_ = f.SetCellValue(summarySheet, "A14", "Generated At")
	_ = f.SetCellValue(summarySheet, "B14", stmt.GeneratedAt.Format(time.RFC3339))

	headers := []string{"Date", "Document", "Type", "Description", "Debit", "Credit", "Balance"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(entriesSheet, cell, h)
	}
	for i, e := range stmt.Entries {
		row := i + 2
		_ = f.SetCellValue(entriesSheet, fmt.Sprintf("A%d", row), e.Date.Format(time.DateOnly))
		_ = f.SetCellValue(entriesSheet, fmt.Sprintf("B%d", row), e.DocumentNumber)
		_ = f.SetCellValue(entriesSheet, fmt.Sprintf("C%d", row), e.Kind.Label())
		_ = f.SetCellValue(entriesSheet, fmt.Sprintf("D%d", row), e.Description)
		_ = f.SetCellValue(entriesSheet, fmt.Sprintf("E%d", row), e.Debit.StringFixed(2))
		_ = f.SetCellValue(entriesSheet, fmt.Sprintf("F%d", row), e.Credit.StringFixed(2))
		_ = f.SetCellValue(entriesSheet, fmt.Sprintf("G%d", row), e.RunningBalance.StringFixed(2))
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("StatementXLSX: %w", err)
	}
	return buf.Bytes(), nil
}
