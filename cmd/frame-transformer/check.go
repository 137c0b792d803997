package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"frame-transformer/internal/conffile"
	"frame-transformer/internal/transform"
	"frame-transformer/internal/watcher"
)

func newCheckCmd(a *app) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Validate a frame configuration file",
		Long: `Validate a frame configuration file and report every problem found.

Errors make the command fail. Warnings flag entries that load fine but are
probably mistakes, such as a frame pair defined twice or a misspelled frame.

Examples:
  frame-transformer check robot.yaml
  frame-transformer check robot.toml --watch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			err := a.check(cmd.OutOrStdout(), path)
			if !watch {
				return err
			}

			if err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "failed: %v\n", err)
			}

			return a.watch(cmd.Context(), cmd.OutOrStdout(), path)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-check the file every time it changes")

	return cmd
}

func (a *app) check(out io.Writer, path string) error {
	f, err := conffile.LoadFile(path)
	if err != nil {
		return err
	}

	diags := conffile.Validate(f)
	for _, d := range diags.All() {
		fmt.Fprintf(out, "%s: %s\n", d.Severity, d)
	}

	if diags.HasErrors() {
		return fmt.Errorf("%w: %s has %d error(s)", transform.ErrInvalidConfiguration, path, len(diags.Errors))
	}

	conf := transform.NewConfiguration(transform.WithLogger(a.logger))
	if err := conffile.Apply(f, conf); err != nil {
		return err
	}

	fmt.Fprintf(out, "%s: ok, %d frames, %d transforms, %d examples\n",
		path, len(conf.Frames()), conf.Len(), len(conf.ExampleTransforms()))

	return nil
}

// watch re-runs check on every change to path until ctx is done.
func (a *app) watch(ctx context.Context, out io.Writer, path string) error {
	w, err := watcher.New(watcher.Config{Path: path, Logger: a.logger})
	if err != nil {
		return err
	}

	defer func() { _ = w.Stop() }()

	changes, err := w.Start()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "watching %s\n", path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changes:
			if err := a.check(out, path); err != nil {
				fmt.Fprintf(out, "failed: %v\n", err)
			}
		}
	}
}
