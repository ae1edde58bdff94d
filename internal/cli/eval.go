package cli

import (
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"json-mapper/internal/logging"
)

func newEvalCmd(a *app) *cobra.Command {
	var (
		in     inputFlags
		format string
		dump   bool
	)

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate a ruleset against a source document",
		Example: `  json-mapper eval -r article.yaml -s article.json
  cat article.json | json-mapper eval -r article.yaml -f yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.newMapper()
			if err != nil {
				return err
			}

			rs, source, ext, err := a.load(in, cmd.InOrStdin())
			if err != nil {
				return err
			}

			start := time.Now()
			target := m.Conversion(source, ext, rs)
			logging.LogDuration(logging.GetLogger("cli"), start, "eval")

			if dump {
				spew.Fdump(cmd.ErrOrStderr(), target)
			}

			if format == "" {
				format = a.cfg.Format
			}

			return writeDocument(cmd.OutOrStdout(), target, format, a.cfg.Indent)
		},
	}

	addInputFlags(cmd, &in)
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: json, yaml or toml")
	cmd.Flags().BoolVar(&dump, "dump", false, "dump the Go value of the result to stderr")

	return cmd
}
