package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"json-mapper/diagnostic"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func newExplainCmd(a *app) *cobra.Command {
	var in inputFlags

	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Evaluate a ruleset and report what happened to every field",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.newMapper()
			if err != nil {
				return err
			}

			rs, source, ext, err := a.load(in, cmd.InOrStdin())
			if err != nil {
				return err
			}

			target, diags := m.Dispatcher().Explain(source, ext, rs)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, headerStyle.Render("Target"))

			if err := writeDocument(out, target, "json", a.cfg.Indent); err != nil {
				return err
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("Diagnostics (%d)", diags.Len())))
			renderDiagnostics(out, diags)

			return nil
		},
	}

	addInputFlags(cmd, &in)

	return cmd
}

func renderDiagnostics(w io.Writer, diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		style := infoStyle
		if d.Severity == diagnostic.SeverityWarning {
			style = warningStyle
		}

		fmt.Fprintf(w, "  %s %s\n", style.Render(fmt.Sprintf("%-7s", d.Severity)), d.String())
	}
}
