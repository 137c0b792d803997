package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"frame-transformer/internal/conffile"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func newDumpCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "Print the configuration as loaded",
		Long: `Load a configuration file and print it back in normalized form.

Axis/angle rotations are printed as quaternions and implicitly declared
frames are listed explicitly. --format debug prints the raw structure.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.manager(args[0])
			if err != nil {
				return err
			}

			f := conffile.Export(m.Conf())
			out := cmd.OutOrStdout()

			switch format {
			case "yaml", "toml":
				data, err := conffile.Marshal(f, formatByName(format))
				if err != nil {
					return err
				}

				_, err = out.Write(data)

				return err
			case "debug":
				dumpConfig.Fdump(out, f)
				return nil
			default:
				return fmt.Errorf("unknown format %q, expected yaml, toml or debug", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format: yaml, toml or debug")

	return cmd
}

func formatByName(name string) conffile.Format {
	if name == "toml" {
		return conffile.FormatTOML
	}

	return conffile.FormatYAML
}
