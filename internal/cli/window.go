package cli

import (
	"github.com/faiface/beep"
	"github.com/ncruces/zenity"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/tank-cascade/internal/config"
	"github.com/iburimskiy/tank-cascade/internal/game"
	"github.com/iburimskiy/tank-cascade/internal/sound"
)

type windowOptions struct {
	sound   bool
	running bool
}

func newWindowCmd(root *rootOptions) *cobra.Command {
	opts := &windowOptions{}
	cmd := &cobra.Command{
		Use:   "window",
		Short: "Open the animated window (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runWindow(cmd, root, opts)
			if err != nil {
				// Launched from a desktop there is no terminal to read stderr.
				_ = zenity.Error(err.Error(), zenity.Title(config.WindowTitle), zenity.ErrorIcon)
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&opts.sound, "sound", false, "hum while liquid is flowing")
	cmd.Flags().BoolVar(&opts.running, "running", false, "start with the timer running")
	return cmd
}

func runWindow(cmd *cobra.Command, root *rootOptions, opts *windowOptions) error {
	logger := loggerFromContext(cmd.Context())

	sc, err := root.scene()
	if err != nil {
		return err
	}

	var player *sound.Player
	if opts.sound {
		tone := sound.NewFlowTone(beep.SampleRate(config.SampleRate), config.ToneBase, config.ToneHeated, config.ToneGain)
		player, err = sound.Start(tone)
		if err != nil {
			logger.Warn("sound disabled", "err", err)
			player = nil
		} else {
			defer player.Close()
		}
	}

	g, err := game.New(game.Options{
		Scene:   sc,
		Logger:  logger,
		Player:  player,
		Running: opts.running,
	})
	if err != nil {
		return err
	}
	logger.Debug("opening window", "title", sc.Title, "tanks", len(sc.Tanks), "interval", sc.TickInterval())
	return game.Run(g)
}
