package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newOpsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List the operator types a rule can use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.newMapper()
			if err != nil {
				return err
			}

			for _, tag := range m.Dispatcher().Operators() {
				fmt.Fprintln(cmd.OutOrStdout(), tag)
			}

			return nil
		},
	}
}
