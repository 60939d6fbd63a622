package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"tableflip.dev/tabi/pkg/trip"
	"tableflip.dev/tabi/pkg/view"
)

const (
	ledgerSheet     = "Expenses"
	categoriesSheet = "Categories"
)

// WriteLedger saves the expense ledger as a workbook: the lines sorted by date
// with the source and converted totals, and a sheet of per-category sums.
func WriteLedger(path string, d *trip.Data) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), ledgerSheet); err != nil {
		return err
	}

	header := []any{"Date", "Category", "Item", "Method", "Note", "Amount (" + d.SourceCurrency + ")"}
	if err := f.SetSheetRow(ledgerSheet, "A1", &header); err != nil {
		return err
	}

	row := 2
	for _, e := range view.SortedExpenses(d) {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		line := []any{e.Date, e.Category, e.Name, e.Method, e.Note, e.Amount.InexactFloat64()}
		if err := f.SetSheetRow(ledgerSheet, cell, &line); err != nil {
			return fmt.Errorf("row %d: %w", row, err)
		}
		row++
	}

	totals := view.TotalExpense(d)
	summary := [][]any{
		{"", "", "Total", "", "", totals.Source.InexactFloat64()},
		{"", "", "Total (" + d.TargetCurrency + ")", "", "Rate " + d.ExchangeRate.String(), totals.Converted.InexactFloat64()},
	}
	for _, line := range summary {
		cell, err := excelize.CoordinatesToCellName(1, row+1)
		if err != nil {
			return err
		}
		line := line
		if err := f.SetSheetRow(ledgerSheet, cell, &line); err != nil {
			return err
		}
		row++
	}
	if err := f.SetColWidth(ledgerSheet, "A", "F", 18); err != nil {
		return err
	}

	if _, err := f.NewSheet(categoriesSheet); err != nil {
		return err
	}
	catHeader := []any{"Category", "Count", "Amount (" + d.SourceCurrency + ")"}
	if err := f.SetSheetRow(categoriesSheet, "A1", &catHeader); err != nil {
		return err
	}
	for i, c := range view.ExpensesByCategory(d) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		line := []any{c.Category, c.Count, c.Amount.InexactFloat64()}
		if err := f.SetSheetRow(categoriesSheet, cell, &line); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}
