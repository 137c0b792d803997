package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFramesCmd(a *app) *cobra.Command {
	var links bool

	cmd := &cobra.Command{
		Use:   "frames FILE",
		Short: "List the frames declared by a configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.manager(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			conf := m.Conf()

			for _, name := range conf.Frames() {
				fmt.Fprintln(out, name)

				if !links {
					continue
				}

				for _, tr := range conf.Transforms() {
					if tr.From() == name || tr.To() == name {
						fmt.Fprintf(out, "  %s\n", tr)
					}
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&links, "links", "l", false, "also list the transforms touching each frame")

	return cmd
}
