package cli

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/spf13/cobra"

	"github.com/matt-g-everett/ledtween/stream"
)

// NewPlayCommand creates the play command.
func NewPlayCommand(rootOpts *RootOptions) *cobra.Command {
	var connectTimeout time.Duration

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Stream the configured scene to the strip",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, rootOpts, connectTimeout)
		},
	}

	cmd.Flags().DurationVar(&connectTimeout, "connect-timeout", 10*time.Second, "MQTT connect timeout")

	return cmd
}

func runPlay(cmd *cobra.Command, opts *RootOptions, connectTimeout time.Duration) error {
	logger := slog.Default()

	cfg, err := stream.LoadConfig(opts.ConfigPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}
	logger.Debug("config loaded", "path", opts.ConfigPath, "pixels", cfg.Stream.Pixels, "tracks", len(cfg.Scene.Tracks))

	client := stream.NewMQTTClient(cfg.Mqtt, logger, func(mqtt.Client) {
		logger.Info("connected", "broker", cfg.Mqtt.URL)
	})
	if err := stream.Connect(client, connectTimeout); err != nil {
		return WrapExitError(ExitFailure, "failed to connect", err)
	}
	defer client.Disconnect(250)

	streamer, err := stream.NewStreamer(cfg, stream.NewMQTTPublisher(client, cfg.Mqtt.QoS), logger)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to build scene", err)
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("streaming", "topic", cfg.Mqtt.Topic, "frameRate", cfg.Stream.FrameRate)
	if err := streamer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return WrapExitError(ExitFailure, "streamer error", err)
	}
	logger.Info("stopped")
	return nil
}
