package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"ticketdesk/bridge"
)

var (
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "ticketdesk",
	Short: "Desktop host for the ticket UI",
	Long: `Ticketdesk runs the desktop shell for the ticket frontend: it serves the
embedded UI over loopback, exposes the command surface to it, and keeps at
most one window per ticket via the open-or-focus policy.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger based on verbose flag
		var err error
		if verbose {
			config := zap.NewDevelopmentConfig()
			config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
			logger, err = config.Build()
		} else {
			config := zap.NewProductionConfig()

			config.DisableCaller = true
			config.DisableStacktrace = true
			config.Encoding = "console"
			config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
			config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
			logger, err = config.Build()
		}
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		defer func() {
			_ = logger.Sync()
		}()

		cfg, err := LoadConfig()
		if err != nil {
			logger.Warn("falling back to default configuration", zap.Error(err))
		}
		return runApp(cfg, logger)
	},
}

var openCmd = &cobra.Command{
	Use:   "open <ticket-id>",
	Short: "Open or focus a ticket window in the running app",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("ticket id must be an unsigned 32-bit integer: %w", err)
		}

		payload, _ := json.Marshal(map[string]uint32{"ticket_id": uint32(id)})
		if _, err := bridge.NewClient().Invoke("open_ticket_window", payload); err != nil {
			return err
		}
		return nil
	},
}

var greetCmd = &cobra.Command{
	Use:   "greet <name>",
	Short: "Invoke the greet command in the running app",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		payload, _ := json.Marshal(map[string]string{"name": args[0]})
		result, err := bridge.NewClient().Invoke("greet", payload)
		if err != nil {
			return err
		}

		var msg string
		if err := json.Unmarshal(result, &msg); err != nil {
			return fmt.Errorf("unexpected greet result: %w", err)
		}
		fmt.Println(msg)
		return nil
	},
}

var quitCmd = &cobra.Command{
	Use:   "quit",
	Short: "Ask the running app to quit",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := bridge.NewClient().Invoke("quit", nil)
		return err
	},
}

func init() {
	// Allow launching from Finder/Explorer without Cobra's mousetrap warning.
	cobra.MousetrapHelpText = ""
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.AddCommand(openCmd, greetCmd, quitCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
