package cli

import (
	"github.com/spf13/cobra"
)

// NewProcessCommand serves every customer from the ledger and saves the
// updated history.
func NewProcessCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "process",
		Short: "Serve every customer in the ledger and save",
		Long: `Load the ledger, serve every queued customer with the counters taking
turns, print a receipt for each and write the history back to the ledger.

Example:
  checkout process --ledger ./customer_data.txt`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.close()

			s.handler.HandleProcess()
			return s.handler.HandleSave()
		},
	}
}

// NewDisplayCommand prints the queues built from the ledger. Nothing is saved.
func NewDisplayCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "display",
		Short:         "Show the counter queues built from the ledger",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.close()

			s.handler.HandleDisplay()
			return nil
		},
	}
}
