package cmd

import (
	"log/slog"
	"os"

	"github.com/askwell/apiserver/config"
	"github.com/askwell/apiserver/internal/server"
	"github.com/spf13/cobra"
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Starts the askwell backend server",
	Long: `Starts the askwell backend server. Usage:

	askwell server
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.LoadConfig()

		srv, err := server.New(cmd.Context(), cfg)
		if err != nil {
			slog.Error("failed to start server", "error", err)
			os.Exit(1)
		}
		slog.Info("server listening", "port", cfg.ServerPort)
		if err := srv.Start(); err != nil {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
