package cli

import (
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/expense-ledger/backend/internal/application/usecase/expense"
	"github.com/expense-ledger/backend/internal/integration/entrypoint/dto"
)

// NewEditCommand creates the edit command.
func NewEditCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		date          string
		amount        string
		category      string
		justification string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an existing expense",
		Long: `Edit an existing expense.

Only the fields given as flags are changed; the rest keep their stored
values. Changed fields are validated with the same rules as add.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}

			input := expense.EditExpenseInput{ExpenseID: id}
			if cmd.Flags().Changed("date") {
				input.Date = &date
			}
			if cmd.Flags().Changed("amount") {
				input.Amount = &amount
			}
			if cmd.Flags().Changed("category") {
				input.Category = &category
			}
			if cmd.Flags().Changed("justification") {
				input.Justification = &justification
			}
			if input.Date == nil && input.Amount == nil && input.Category == nil && input.Justification == nil {
				return errors.New("nothing to edit: pass at least one of --date, --amount, --category, --justification")
			}

			s, err := openSession(rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			output, err := s.Edit.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			return formatter.PrintExpense(dto.ToExpenseResponse(output.Expense))
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "new date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&amount, "amount", "", "new amount")
	cmd.Flags().StringVar(&category, "category", "", "new category")
	cmd.Flags().StringVarP(&justification, "justification", "j", "", "new justification")

	return cmd
}
