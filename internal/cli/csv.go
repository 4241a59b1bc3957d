package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/expense-ledger/backend/internal/application/usecase/expense"
)

// NewLoadCommand creates the load command, appending a CSV file to the
// ledger. Rows are date,amount,category,justification with no header.
func NewLoadCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "load <file.csv>",
		Short:        "Append the contents of a CSV file to the ledger",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer file.Close()

			s, err := openSession(rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			output, err := s.Import.Execute(cmd.Context(), expense.ImportCSVInput{Reader: file})
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			return formatter.PrintMessage(fmt.Sprintf("loaded %d expenses", output.Imported))
		},
	}
}

// NewSaveCommand creates the save command, writing the ledger to a CSV file
// in the same format load expects.
func NewSaveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "save <file.csv>",
		Short:        "Save the ledger to a CSV file",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Create(args[0])
			if err != nil {
				return err
			}
			defer file.Close()

			s, err := openSession(rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			output, err := s.Export.Execute(cmd.Context(), expense.ExportCSVInput{Writer: file})
			if err != nil {
				return err
			}

			if err := file.Close(); err != nil {
				return err
			}

			formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			return formatter.PrintMessage(fmt.Sprintf("saved %d expenses", output.Exported))
		},
	}
}
