package cli

import (
	"github.com/spf13/cobra"

	"github.com/expense-ledger/backend/internal/application/usecase/report"
	"github.com/expense-ledger/backend/internal/integration/entrypoint/dto"
)

// NewReportCommand creates the report command.
func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "report <start-date> <end-date>",
		Short: "Summarize expenses in a date range",
		Long: `Summarize expenses in a date range, bounds inclusive.

The report lists the matching entries, exact per-category totals and the
running cumulative balance with one point per day.`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			output, err := s.Report.Execute(cmd.Context(), report.BuildReportInput{
				StartDate: args[0],
				EndDate:   args[1],
			})
			if err != nil {
				return err
			}

			formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			return formatter.PrintReport(dto.ToReportResponse(output.Report))
		},
	}
}
