package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SPXcz/meesign-server/cmd/meesign/ui"
	"github.com/SPXcz/meesign-server/internal/logging"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorMsg("%v", err))
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var server string
	var debug bool
	var plain bool

	cmd := &cobra.Command{
		Use:           "meesign",
		Short:         "MeeSign coordinator CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ui.Configure(plain)
			level := logging.LevelWarn
			if debug {
				level = logging.LevelDebug
			}
			return logging.Configure(level)
		},
	}

	cmd.PersistentFlags().StringVar(&server, "server", "", "Coordinator address (host:port)")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVar(&plain, "plain", false, "Disable styled output")

	creds := newCredentialStore()
	cmd.AddCommand(
		registerCmd(creds, &server),
		devicesCmd(creds, &server),
		groupsCmd(creds, &server),
		tasksCmd(creds, &server),
		signCmd(creds, &server),
		decryptCmd(creds, &server),
	)
	return cmd
}
