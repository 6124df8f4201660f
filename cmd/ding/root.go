// Package main provides the CLI entrypoint for ding.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"ding/internal/config"
	"ding/internal/notify"
	"ding/internal/sound"
	"ding/internal/tone"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

var (
	opts struct {
		frequency    float64
		length       int
		repeats      int
		delay        int
		priority     int
		data         string
		title        string
		configPath   string
		noSound      bool
		sampleConfig bool
		verbose      bool
	}
	logger *slog.Logger
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "ding",
	Short: "Terminal bell, modernized",
	Long: `ding plays a short beep and fans the alert out to configured
notification channels.

Append it to a long-running command to hear when the command is done:

  make build; ding

Pushover, webhook, desktop notification and custom sound channels are
enabled through the config file. Print a starting point with
--sample-config.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	Args:    cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()
		return validateFlags()
	},
	RunE: run,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Float64VarP(&opts.frequency, "frequency", "f", 1000,
		"Frequency of the beep in Hz")
	rootCmd.Flags().IntVarP(&opts.length, "length", "l", 200,
		"Length of the beep in milliseconds")
	rootCmd.Flags().IntVarP(&opts.repeats, "repeats", "r", 1,
		"Number of times to play the beep")
	rootCmd.Flags().IntVarP(&opts.delay, "delay", "d", 100,
		"Delay between repetitions in milliseconds")
	rootCmd.Flags().StringVarP(&opts.data, "data", "D", "Beep!",
		"Message to send to notification channels")
	rootCmd.Flags().StringVarP(&opts.title, "title", "t", "",
		"Title for notification channels")
	rootCmd.Flags().IntVarP(&opts.priority, "priority", "p", 0,
		"Notification priority (only sent when set)")
	rootCmd.Flags().BoolVar(&opts.noSound, "no-sound", false,
		"Skip the synthesized beep")
	rootCmd.Flags().StringVarP(&opts.configPath, "config", "c", "",
		"Path to config file (default: ~/.config/ding/config.yaml)")
	rootCmd.Flags().BoolVar(&opts.sampleConfig, "sample-config", false,
		"Print a sample config file and exit")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"Enable verbose logging")
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	logger = slog.New(handler)
	slog.SetDefault(logger)
}

func validateFlags() error {
	if opts.frequency <= 0 {
		return fmt.Errorf("frequency must be positive, got %v", opts.frequency)
	}
	if opts.length < 0 {
		return fmt.Errorf("length must not be negative, got %d", opts.length)
	}
	if opts.repeats < 0 {
		return fmt.Errorf("repeats must not be negative, got %d", opts.repeats)
	}
	if opts.delay < 0 {
		return fmt.Errorf("delay must not be negative, got %d", opts.delay)
	}
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	if opts.sampleConfig {
		fmt.Print(config.Sample)
		return nil
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx := cmd.Context()

	msg := notify.Message{
		Title: opts.title,
		Body:  opts.data,
	}
	if cmd.Flags().Changed("priority") {
		msg.Priority = &opts.priority
	}

	// Notifications go out while sound plays locally.
	wait := notify.NewDispatcher(buildNotifiers(cfg), logger).Send(ctx, msg)

	if cfg.Sound != nil {
		playConfiguredSound(ctx, cfg.Sound)
	}

	if !opts.noSound {
		runner := tone.NewRunner(tone.NewPlayer(logger), logger)
		runner.Run(tone.RepeatPlan{
			Tone: tone.ToneRequest{
				Frequency: opts.frequency,
				Duration:  time.Duration(opts.length) * time.Millisecond,
			},
			Repeats: opts.repeats,
			Delay:   time.Duration(opts.delay) * time.Millisecond,
		})
	}

	wait()
	return nil
}

// buildNotifiers assembles a notifier per configured section.
func buildNotifiers(cfg *config.Config) []notify.Notifier {
	var notifiers []notify.Notifier
	if cfg.Pushover != nil {
		notifiers = append(notifiers, notify.NewPushover(*cfg.Pushover))
	}
	if cfg.Webhook != nil {
		notifiers = append(notifiers, notify.NewWebhook(*cfg.Webhook))
	}
	if cfg.Desktop != nil {
		notifiers = append(notifiers, notify.NewDesktop(cfg.Desktop.AppName))
	}
	return notifiers
}

// playConfiguredSound plays the configured notification sound, URL
// before file. Failures are logged and do not stop the beep.
func playConfiguredSound(ctx context.Context, cfg *config.SoundConfig) {
	player := sound.NewPlayer(logger)
	switch {
	case cfg.URL != "":
		if err := player.PlayURL(ctx, cfg.URL); err != nil {
			logger.Warn("failed to play sound from URL", "url", cfg.URL, "error", err)
		}
	case cfg.File != "":
		if err := player.PlayFile(cfg.File); err != nil {
			logger.Warn("failed to play sound file", "path", cfg.File, "error", err)
		}
	}
}
