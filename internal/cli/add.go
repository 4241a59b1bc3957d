package cli

import (
	"github.com/spf13/cobra"

	"github.com/expense-ledger/backend/internal/application/usecase/expense"
	"github.com/expense-ledger/backend/internal/integration/entrypoint/dto"
)

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	var justification string

	cmd := &cobra.Command{
		Use:   "add <date> <amount> <category>",
		Short: "Add an expense to the ledger",
		Long: `Add an expense to the ledger.

The date must be a calendar date in YYYY-MM-DD format. The amount is a
decimal number, positive for expenses and negative for refunds; it is
stored with two decimal places. The category is normalized to lowercase.`,
		Args:         cobra.ExactArgs(3),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			output, err := s.Add.Execute(cmd.Context(), expense.AddExpenseInput{
				Date:          args[0],
				Amount:        args[1],
				Category:      args[2],
				Justification: justification,
			})
			if err != nil {
				return err
			}

			formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			return formatter.PrintExpense(dto.ToExpenseResponse(output.Expense))
		},
	}

	cmd.Flags().StringVarP(&justification, "justification", "j", "", "free-text justification")

	return cmd
}
