package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vendordesk-io/vendordesk/internal/interfaces/cli/migrate"
	"github.com/vendordesk-io/vendordesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vendordesk",
		Short: "VendorDesk - vendor management back office",
		Long:  `VendorDesk is the back-office service for managing translation vendors, their working scopes, and catalog system values.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
