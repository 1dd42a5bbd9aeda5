package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aidar/turmas/internal/tui"
	"github.com/aidar/turmas/pkg/logging"
)

func newUICmd(v *viper.Viper) *cobra.Command {
	uiCmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			// The screen belongs to bubbletea, so logs go to a file
			logPath := v.GetString(keyLogFile)
			if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
				return fmt.Errorf("failed to create log directory: %w", err)
			}
			logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return fmt.Errorf("failed to open log file: %w", err)
			}
			defer logFile.Close()
			logger := logging.Setup(logFile, logging.FormatText, v.GetString(keyLogLevel))

			store, closeStore, err := openStore(ctx, v)
			if err != nil {
				return err
			}
			defer closeStore()

			logger.Info("starting terminal UI", "remote", v.GetString(keyServer) != "")

			program := tea.NewProgram(
				tui.New(ctx, store, logger),
				tea.WithAltScreen(),
				tea.WithContext(ctx),
			)
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("terminal UI failed: %w", err)
			}
			return nil
		},
	}

	uiCmd.Flags().String(keyLogFile, filepath.Join(os.TempDir(), "turmas.log"), "file the UI writes its log to")
	_ = v.BindPFlag(keyLogFile, uiCmd.Flags().Lookup(keyLogFile))

	return uiCmd
}
