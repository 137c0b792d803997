package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"frame-transformer/internal/match"
	"frame-transformer/internal/resolve"
	"frame-transformer/internal/transform"
)

func newResolveCmd(a *app) *cobra.Command {
	var (
		from      string
		to        string
		producers []string
	)

	cmd := &cobra.Command{
		Use:   "resolve FILE",
		Short: "Find the chain of transforms between two frames",
		Long: `Find the shortest chain of transforms between two frames.

Links walked against their registered direction are marked (inverted).
--producer adds or replaces a dynamic transform for this query only and
may be repeated.

Examples:
  frame-transformer resolve robot.yaml --from map --to laser
  frame-transformer resolve robot.yaml --from body --to laser \
      --producer servo_low:servo_high=replay`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides, err := parseProducers(producers)
			if err != nil {
				return err
			}

			m, err := a.manager(args[0])
			if err != nil {
				return err
			}

			chain, err := m.TransformationChain(from, to, overrides)
			if err != nil {
				return withFrameHint(err, m.Conf(), from, to)
			}

			statics, dynamics := chain.Partition()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, chain)
			fmt.Fprintf(out, "static links: %d, dynamic links: %d\n", len(statics), len(dynamics))

			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "source frame")
	cmd.Flags().StringVar(&to, "to", "", "target frame")
	cmd.Flags().StringArrayVarP(&producers, "producer", "p", nil,
		"query-local dynamic transform as from:to=label (repeatable)")

	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

// parseProducers turns from:to=label flags into resolver overrides.
func parseProducers(values []string) (resolve.Producers, error) {
	if len(values) == 0 {
		return nil, nil
	}

	producers := make(resolve.Producers, len(values))

	for _, value := range values {
		edge, label, ok := strings.Cut(value, "=")
		if !ok || label == "" {
			return nil, fmt.Errorf("%w: producer %q must look like from:to=label", transform.ErrArgument, value)
		}

		from, to, ok := strings.Cut(edge, ":")
		if !ok {
			return nil, fmt.Errorf("%w: producer %q must look like from:to=label", transform.ErrArgument, value)
		}

		producers[resolve.Edge{From: from, To: to}] = label
	}

	return producers, nil
}

// withFrameHint appends close frame names to err when an endpoint is unknown.
func withFrameHint(err error, conf *transform.Configuration, names ...string) error {
	for _, name := range names {
		if conf.HasFrame(name) {
			continue
		}

		if hints := match.Suggest(name, conf.Frames(), 3); len(hints) > 0 {
			return fmt.Errorf("%w (did you mean %s?)", err, strings.Join(hints, ", "))
		}
	}

	return err
}
