package app

import (
	"github.com/spf13/cobra"

	"github.com/iburimskiy/particle-rings/internal/cli"
)

// Root is the interactive sketch with its subcommands attached.
func Root() *cobra.Command {
	var o cli.Options
	var audio, noDialog bool
	cmd := &cobra.Command{
		Use:           "particle-rings",
		Short:         "Interactive particle rings sampled from an image",
		Long:          "Packs particles onto concentric rings sampled from an image and lets the pointer push them around",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cli.LoadConfig(cmd, &o)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("audio") {
				cfg.Audio.Enabled = audio
			}
			if noDialog {
				cfg.Dialog = false
			}
			return run(cmd.Context(), cfg)
		},
	}
	cli.DefineFlags(cmd, &o)
	cmd.Flags().BoolVar(&audio, "audio", false, "play an ambient tone that follows particle displacement")
	cmd.Flags().BoolVar(&noDialog, "no-dialog", false, "never open the file dialog")

	cmd.AddCommand(cli.Layout(), cli.Version())
	return cmd
}
