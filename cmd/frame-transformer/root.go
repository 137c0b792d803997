package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"frame-transformer/internal/resolve"
	"frame-transformer/internal/transform"
)

// app carries what every command needs once flags are parsed.
type app struct {
	viper        *viper.Viper
	settingsFile string
	settings     Settings
	logger       *logrus.Logger
}

var longRootCmdDescription = `frame-transformer works with declarative frame configurations: named
coordinate frames and the static, dynamic and example transforms linking
them. It checks configuration files and resolves the chain of transforms
between any two frames.
`

func newRootCmd() *cobra.Command {
	a := &app{viper: viper.New()}

	rootCmd := &cobra.Command{
		Use:           "frame-transformer",
		Short:         "Check frame configurations and resolve transformation chains",
		Long:          longRootCmdDescription,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(a.viper, a.settingsFile)
			if err != nil {
				return err
			}

			logger, err := newLogger(s, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			a.settings, a.logger = s, logger
			logger.WithField("max_seek_depth", s.MaxSeekDepth).Debug("settings loaded")

			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.settingsFile, "settings", "",
		"settings file (default: ./.frame-transformer.yaml if present)")
	flags.Int("max-seek-depth", 0,
		"maximum number of links in a resolved chain (default 50)")
	flags.String("log-level", "",
		"log level: panic, fatal, error, warning, info, debug or trace (default warning)")

	_ = a.viper.BindPFlag("max_seek_depth", flags.Lookup("max-seek-depth"))
	_ = a.viper.BindPFlag("log_level", flags.Lookup("log-level"))

	rootCmd.AddCommand(
		newCheckCmd(a),
		newFramesCmd(a),
		newResolveCmd(a),
		newDumpCmd(a),
	)

	return rootCmd
}

// manager loads path into a fresh resolve.Manager configured from settings.
func (a *app) manager(path string) (*resolve.Manager, error) {
	conf := transform.NewConfiguration(transform.WithLogger(a.logger))

	m := resolve.NewManager(conf,
		resolve.WithMaxSeekDepth(a.settings.MaxSeekDepth),
		resolve.WithLogger(a.logger),
	)

	if err := m.LoadConfiguration(path); err != nil {
		return nil, err
	}

	return m, nil
}
