// Command mudra is a webcam finger counter with voice feedback.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/speech"
)

var cfgFile string

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mudra",
		Short: "Real-time finger counting with voice feedback",
		Long: `mudra watches your webcam, counts the fingers you hold up (0-5),
recognizes a handful of static gestures, and announces count changes
out loud. Press 'q' in the video window to quit.`,
		SilenceUsage:      true,
		PersistentPreRunE: initConfig,
		RunE:              run,
	}

	flags := cmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/mudra/config.yaml)")

	flags.Int("camera", capture.DefaultDeviceID, "webcam device index")
	flags.Int("width", capture.DefaultWidth, "capture width in pixels")
	flags.Int("height", capture.DefaultHeight, "capture height in pixels")

	flags.Int("max-hands", 2, "maximum hands to track")
	flags.Float64("min-detection-confidence", 0.5, "minimum hand detection confidence")
	flags.Float64("min-tracking-confidence", 0.5, "minimum hand tracking confidence")

	flags.Int("rate", 175, "speech rate in words per minute")
	flags.Float64("volume", 0.9, "speech volume (0.0-1.0)")
	flags.String("voice", "", "synthesizer voice (empty for platform default)")
	flags.Bool("mute", false, "disable speech output")

	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console, json)")

	for _, name := range []string{
		"camera", "width", "height",
		"max-hands", "min-detection-confidence", "min-tracking-confidence",
		"rate", "volume", "voice", "mute",
		"log-level", "log-format",
	} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	return cmd
}

func initConfig(_ *cobra.Command, _ []string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("get home directory: %w", err)
		}
		viper.AddConfigPath(filepath.Join(home, ".config", "mudra"))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("MUDRA")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
		// No config file is fine; flags and defaults apply.
	}

	return setupLogging()
}

func setupLogging() error {
	var level slog.Level
	switch viper.GetString("log-level") {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("unknown log level %q", viper.GetString("log-level"))
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch viper.GetString("log-format") {
	case "console":
		handler = slog.NewTextHandler(os.Stderr, opts)
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		return fmt.Errorf("unknown log format %q", viper.GetString("log-format"))
	}

	slog.SetDefault(slog.New(handler))
	return nil
}

func run(cmd *cobra.Command, _ []string) error {
	fmt.Println("Mudra - Finger Counting with Voice Feedback")

	config := app.Config{
		Camera: capture.Config{
			DeviceID: viper.GetInt("camera"),
			Width:    viper.GetInt("width"),
			Height:   viper.GetInt("height"),
		},
		Detector: detector.Config{
			MaxHands:         viper.GetInt("max-hands"),
			MinDetectionConf: viper.GetFloat64("min-detection-confidence"),
			MinTrackingConf:  viper.GetFloat64("min-tracking-confidence"),
		},
		Speech: speech.Config{
			Rate:   viper.GetInt("rate"),
			Volume: viper.GetFloat64("volume"),
			Voice:  viper.GetString("voice"),
		},
		Mute: viper.GetBool("mute"),
	}

	return app.New(config).Run(cmd.Context())
}
