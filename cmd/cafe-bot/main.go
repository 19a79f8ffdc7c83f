package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cafe-bot/internal/microservices/cafe/handlers"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "cafe-bot",
		Short:   "Backend for the shop's messaging bot: registration, feedback and orders",
		Version: handlers.Version,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(notifyCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), handlers.Version)
		},
	}
}
