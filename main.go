package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bedtimecalc/internal/bedtime"
	"bedtimecalc/internal/config"
	"bedtimecalc/internal/model"
	"bedtimecalc/internal/tui"
	"bedtimecalc/internal/web"
)

const appVersion = "0.2.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath  string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:           "bedtimecalc",
		Short:         "Recommended bedtime calculator (CLI, terminal form or web)",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if ok, _ := cmd.Flags().GetBool("version"); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "bedtimecalc v%s\n", appVersion)
				return nil
			}

			cfg, err := config.Load(config.New(), configPath, cmd.Flags())
			if err != nil {
				return err
			}
			settings, err := cfg.Settings()
			if err != nil {
				return err
			}

			logger, err := newLogger(settings.Verbose)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			est := bedtime.New(loaderFor(settings.Model),
				bedtime.WithStyle(settings.Style),
				bedtime.WithLogger(logger),
			)

			switch {
			case settings.Port > 0:
				web.PrintListenAddrs(cmd.OutOrStdout(), settings.Port)
				return web.New(est, settings.Defaults, appVersion, logger).ListenAndServe(settings.Port)
			case interactive:
				return tui.Run(est, settings.Defaults, appVersion)
			}

			sess := bedtime.NewSession(est, settings.Defaults)
			res := sess.Result()
			printCLI(cmd.OutOrStdout(), sess)
			if !res.OK {
				return fmt.Errorf("calculate bedtime: %w", res.Err)
			}
			return nil
		},
	}

	cmd.Version = appVersion
	cmd.SetVersionTemplate("bedtimecalc v{{.Version}}\n")
	cmd.Flags().BoolP("version", "v", false, "Show version and exit")

	cmd.Flags().String("wake", bedtime.DefaultWake.String(), "Wake-up time HH:MM")
	cmd.Flags().Float64("sleep", bedtime.DefaultSleepHours, "Desired sleep in hours (4 to 12, step 0.25)")
	cmd.Flags().Int("coffee", bedtime.DefaultCaffeineCups, "Cups of coffee per day (1 to 20)")
	cmd.Flags().String("format", "24h", "Bedtime format: 24h or 12h")
	cmd.Flags().String("model", "", "Model artifact YAML (empty = bundled model)")
	cmd.Flags().Int("port", 0, "Run web form on this port (e.g. 8484)")
	cmd.Flags().Bool("verbose", false, "Enable debug logging")

	cmd.Flags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/bedtimecalc/config.yaml)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Open the interactive terminal form")

	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return logger, nil
}

// loaderFor picks the bundled model unless a file was configured.
func loaderFor(path string) model.Loader {
	if path == "" {
		return model.DefaultLoader
	}
	return model.FileLoader(path)
}

func printCLI(w io.Writer, sess *bedtime.Session) {
	res := sess.Result()
	fmt.Fprintf(w, "Wake up:  %s\n", sess.Wake())
	fmt.Fprintf(w, "Sleep:    %s\n", sess.SleepLabel())
	fmt.Fprintf(w, "Coffee:   %s\n\n", sess.CaffeineLabel())

	if !res.OK {
		color.New(color.FgRed, color.Bold).Fprintln(w, res.Title)
		fmt.Fprintln(w, res.Message)
		return
	}
	fmt.Fprintf(w, "%s ", res.Title)
	color.New(color.FgGreen, color.Bold).Fprint(w, res.Message)
	if res.PreviousDay {
		color.New(color.FgHiBlack).Fprint(w, " (the night before)")
	}
	fmt.Fprintln(w)
}
