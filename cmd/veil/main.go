package main

import (
	"os"

	"github.com/spf13/cobra"

	"veil/internal/interfaces/cli/admin"
	"veil/internal/interfaces/cli/migrate"
	"veil/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "veil",
		Short: "Veil - proxy platform control plane",
		Long:  `Veil is the administrative control plane for a proxy-service platform, with built-in server, migration tools, and administrative commands.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		admin.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
