package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kmacinski/gridos/internal/app"
	"github.com/kmacinski/gridos/internal/config"
	"github.com/kmacinski/gridos/internal/gateway"
	"github.com/kmacinski/gridos/internal/log"
	"github.com/kmacinski/gridos/internal/metrics"
	"github.com/kmacinski/gridos/internal/output"
	"github.com/kmacinski/gridos/internal/vfs"
	"github.com/spf13/cobra"
)

// cfg is loaded once per invocation by the root PersistentPreRunE
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "gridos",
	Short: "A simulated desktop OS in the terminal",
	Long: "Grid OS draws a windowed desktop in the terminal: a kernel terminal and a neural assistant " +
		"backed by a web-grounded AI model, a file explorer, a system monitor and the kernel log.",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runDesktop,
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	defer log.Close()
	if err := rootCmd.Execute(); err != nil {
		log.Close()
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
	rootCmd.PersistentFlags().String("config", "", "Config file (default $XDG_CONFIG_HOME/gridos/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-file", "", "Write diagnostic logs to this file (\"-\" for stderr)")
	rootCmd.PersistentFlags().String("format", "text", "Output format for subcommands: text, yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().Bool("no-boot", false, "Skip the boot sequence")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath(cmd))
		if err != nil {
			return err
		}
		cfg = loaded

		if level, _ := cmd.Flags().GetString("log-level"); level != "" {
			cfg.Log.Level = level
		}
		if file, _ := cmd.Flags().GetString("log-file"); file != "" {
			cfg.Log.File = file
		}
		if err := log.Init(&cfg.Log); err != nil {
			return fmt.Errorf("init logging: %w", err)
		}

		format, _ := cmd.Flags().GetString("format")
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f
		output.PrettyOutput, _ = cmd.Flags().GetBool("pretty")
		return nil
	}
}

func configPath(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path
	}
	return config.DefaultPath()
}

func newGateway() *gateway.Client {
	return gateway.NewClient(gateway.Config{
		BaseURL: cfg.Gateway.BaseURL,
		APIKey:  cfg.Gateway.APIKey,
		Model:   cfg.Gateway.Model,
		Timeout: cfg.Gateway.Timeout,
	})
}

func runDesktop(cmd *cobra.Command, args []string) error {
	// The desktop owns the terminal, so it always logs somewhere
	if cfg.Log.File == "" {
		cfg.Log.File = log.DefaultFile()
		if err := log.Init(&cfg.Log); err != nil {
			return fmt.Errorf("init logging: %w", err)
		}
	}
	logger := log.NewModuleLogger("cmd", "desktop")

	if noBoot, _ := cmd.Flags().GetBool("no-boot"); noBoot {
		cfg.Boot.Skip = true
	}

	desktop := app.New(cfg, newGateway(), metrics.NewRandomWalk(metrics.Initial, nil), vfs.DefaultTree())
	defer desktop.Cleanup()

	p := tea.NewProgram(desktop, tea.WithAltScreen(), tea.WithMouseCellMotion())
	desktop.SetProgram(p)

	if path := configPath(cmd); path != "" {
		if err := desktop.WatchConfig(path); err != nil {
			logger.Warn("Config hot reload disabled", "path", path, "error", err)
		}
	}

	logger.Info("Starting desktop", "version", Version, "model", cfg.Gateway.Model)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run desktop: %w", err)
	}
	return nil
}
