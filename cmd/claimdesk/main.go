package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"claimdesk/internal/interfaces/cli/migrate"
	"claimdesk/internal/interfaces/cli/seed"
	"claimdesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "claimdesk",
		Short: "Customer claim tracking service",
		Long:  `claimdesk tracks customer claims through a configurable status workflow with auditing and role-based transitions.`,
	}

	rootCmd.AddCommand(server.NewCommand())
	rootCmd.AddCommand(migrate.NewCommand())
	rootCmd.AddCommand(seed.NewCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
