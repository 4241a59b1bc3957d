package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/expense-ledger/backend/internal/integration/entrypoint/dto"
)

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// PrintJSON writes v as indented JSON.
func (f *OutputFormatter) PrintJSON(v any) error {
	enc := json.NewEncoder(f.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// PrintExpense writes one expense in the selected format.
func (f *OutputFormatter) PrintExpense(exp dto.ExpenseResponse) error {
	if f.Format == "json" {
		return f.PrintJSON(exp)
	}
	_, err := fmt.Fprintf(f.Writer, "#%d  %s  %10s  %s  %s\n",
		exp.ID, exp.Date, exp.Amount, exp.Category, exp.Justification)
	return err
}

// PrintMessage writes a plain confirmation line, or a message object in
// JSON mode.
func (f *OutputFormatter) PrintMessage(message string) error {
	if f.Format == "json" {
		return f.PrintJSON(dto.MessageResponse{Message: message})
	}
	_, err := fmt.Fprintln(f.Writer, message)
	return err
}

// PrintReport writes a range report in the selected format.
func (f *OutputFormatter) PrintReport(report dto.ReportResponse) error {
	if f.Format == "json" {
		return f.PrintJSON(report)
	}

	fmt.Fprintf(f.Writer, "Report %s .. %s (%d entries)\n",
		report.StartDate, report.EndDate, len(report.Entries))
	for _, exp := range report.Entries {
		fmt.Fprintf(f.Writer, "  #%d  %s  %10s  %s  %s\n",
			exp.ID, exp.Date, exp.Amount, exp.Category, exp.Justification)
	}

	fmt.Fprintln(f.Writer, "Totals by category:")
	for _, category := range sortedKeys(report.TotalsByCategory) {
		fmt.Fprintf(f.Writer, "  %-16s %10s\n", category, report.TotalsByCategory[category])
	}

	fmt.Fprintln(f.Writer, "Running total:")
	for _, point := range report.RunningTotal {
		fmt.Fprintf(f.Writer, "  %s  %10s\n", point.Date, point.Total)
	}
	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
