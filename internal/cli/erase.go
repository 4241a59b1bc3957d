package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

// NewEraseCommand creates the erase command.
func NewEraseCommand(rootOpts *RootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:          "erase",
		Short:        "Remove all expenses from the ledger",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to erase the ledger without --yes")
			}

			s, err := openSession(rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.Erase.Execute(cmd.Context()); err != nil {
				return err
			}

			formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			return formatter.PrintMessage("ledger erased")
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm erasing every expense")

	return cmd
}
