// Package cli implements the json-mapper command line.
package cli

import (
	"io"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"json-mapper/internal/config"
	"json-mapper/internal/logging"
	"json-mapper/mapper"
	"json-mapper/rules"
)

type globalFlags struct {
	verbosity  int
	configPath string
	seed       uint64
}

type inputFlags struct {
	rules  string
	source string
	ext    string
}

// app carries state shared by every command of one invocation.
type app struct {
	flags globalFlags
	cfg   *config.Config
}

// NewRootCmd builds the json-mapper command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "json-mapper",
		Short: "Transform JSON documents with declarative mapping rules",
		Long: `json-mapper builds a target document from a source document and a
mapping ruleset. Each ruleset field is a select path, a list of source keys,
or a tagged operator such as switch, if, str-replace or moment-format.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.flags.configPath)
			if err != nil {
				return err
			}

			a.cfg = cfg

			verbosity := a.flags.verbosity
			if verbosity == 0 {
				verbosity = cfg.Verbosity
			}

			logging.SetupLogger(verbosity, cmd.ErrOrStderr())
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().CountVarP(&a.flags.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	root.PersistentFlags().StringVar(&a.flags.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/json-mapper/config.toml)")
	root.PersistentFlags().Uint64Var(&a.flags.seed, "seed", 0, "seed for randomized operators (0 picks a random seed)")

	root.AddCommand(newEvalCmd(a))
	root.AddCommand(newExplainCmd(a))
	root.AddCommand(newOpsCmd(a))

	return root
}

func addInputFlags(cmd *cobra.Command, in *inputFlags) {
	cmd.Flags().StringVarP(&in.rules, "rules", "r", "", "ruleset file (.json, .yaml, .toml); defaults to the configured ruleset")
	cmd.Flags().StringVarP(&in.source, "source", "s", "-", "source document, or - for stdin")
	cmd.Flags().StringVarP(&in.ext, "ext", "e", "", "extra attributes document merged over the result")
}

// newMapper builds a Mapper whose default ruleset comes from the config.
func (a *app) newMapper() (*mapper.Mapper, error) {
	var defaults rules.Ruleset

	if a.cfg.Rules != "" {
		rs, err := rules.LoadFile(a.cfg.Rules)
		if err != nil {
			return nil, err
		}

		defaults = rs
	}

	opts := []mapper.Option{
		mapper.WithLogger(logging.GetLogger("mapper")),
		mapper.WithClock(time.Now),
	}

	seed := a.flags.seed
	if seed == 0 {
		seed = a.cfg.Seed
	}

	if seed != 0 {
		opts = append(opts, mapper.WithRand(rand.New(rand.NewPCG(seed, seed))))
	}

	return mapper.New(defaults, opts...), nil
}

// load reads the ruleset, source and extra attributes named by in. A "-"
// document is read from stdin.
func (a *app) load(in inputFlags, stdin io.Reader) (rules.Ruleset, any, map[string]any, error) {
	var rs rules.Ruleset

	if in.rules != "" {
		loaded, err := rules.LoadFile(in.rules)
		if err != nil {
			return rules.Ruleset{}, nil, nil, err
		}

		rs = loaded
	}

	source, err := readDocument(in.source, stdin)
	if err != nil {
		return rules.Ruleset{}, nil, nil, err
	}

	var ext map[string]any

	if in.ext != "" {
		doc, err := readDocument(in.ext, stdin)
		if err != nil {
			return rules.Ruleset{}, nil, nil, err
		}

		m, ok := rules.Normalize(doc).(map[string]any)
		if !ok {
			return rules.Ruleset{}, nil, nil, errNotObject(in.ext)
		}

		ext = m
	}

	return rs, source, ext, nil
}
