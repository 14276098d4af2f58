package cmd

import (
	"context"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/c4finder/core"
	"github.com/katalvlaran/c4finder/cycles"
	"github.com/katalvlaran/c4finder/report"
)

// Execute is the entry point to running the CLI
func Execute(ctx context.Context, version string) {
	if err := NewRootCommand(ctx, version).Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCommand builds the c4finder command. The report goes to the
// command's output stream; logs go to logrus (stderr by default).
func NewRootCommand(ctx context.Context, version string) *cobra.Command {
	input := new(Input)
	var rootCmd = &cobra.Command{
		Use:          "c4finder",
		Short:        "List the distinct 4-cycles of a small undirected graph.",
		Args:         cobra.NoArgs,
		RunE:         newRunCommand(ctx, input),
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.Flags().StringVarP(&input.graphFile, "file", "f", "", "graph specification (.toml, .yaml); default is the built-in windmill graph")
	rootCmd.Flags().StringVarP(&input.method, "method", "m", cycles.MethodPermutations.String(), "enumeration method: permutations, orderings or common-neighbors")
	rootCmd.Flags().StringArrayVarP(&input.addEdges, "add-edge", "e", nil, "extra edge u:v added to the graph (repeatable)")
	rootCmd.Flags().BoolVar(&input.verify, "verify", false, "cross-check the result against the tr(A^4) cycle count")
	rootCmd.PersistentFlags().BoolVarP(&input.verbose, "verbose", "v", false, "verbose output")

	return rootCmd
}

func newRunCommand(ctx context.Context, input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if input.verbose {
			log.SetLevel(log.DebugLevel)
		}

		g, err := loadGraph(input)
		if err != nil {
			return err
		}
		method, err := input.Method()
		if err != nil {
			return err
		}

		log.WithFields(log.Fields{
			"vertices": g.Order(),
			"edges":    g.Size(),
			"method":   method,
		}).Info("searching for 4-cycles")

		set, err := cycles.Find(g,
			cycles.WithContext(ctx),
			cycles.WithMethod(method),
			cycles.WithOnCycle(func(c cycles.Cycle) error {
				log.Debugf("found %s", report.Line(g, c))
				return nil
			}),
		)
		if err != nil {
			return err
		}

		if input.verify {
			if err := cycles.Verify(g, set); err != nil {
				log.WithError(err).Warn("verification failed")
				return err
			}
			log.Debug("trace count agrees")
		}

		return report.Write(cmd.OutOrStdout(), g, set)
	}
}

// loadGraph resolves the specification, builds it and applies --add-edge.
func loadGraph(input *Input) (*core.Graph, error) {
	spec, err := input.Spec()
	if err != nil {
		return nil, err
	}
	log.Debugf("loading graph %q", spec.Name)

	g, err := spec.Graph()
	if err != nil {
		return nil, err
	}

	extra, err := input.ExtraEdges()
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 {
		return g, nil
	}
	log.Debugf("adding %d edge(s)", len(extra))
	g, err = g.WithEdges(extra...)
	if err != nil {
		return nil, errors.Wrap(err, "--add-edge")
	}

	return g, nil
}
