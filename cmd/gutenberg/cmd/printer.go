package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// printerCmd shows the IPP endpoint URL for printer setup.
var printerCmd = &cobra.Command{
	Use:   "printer",
	Short: "Show the IPP endpoint URL",
	Long: `Show the IPP endpoint URL.

Configure this URL into a printer or CUPS client, authenticating with
your username and print token.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		fmt.Println(client.PrinterURL())
		return nil
	},
}

// logoutCmd shows the OIDC logout URL.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Show the OIDC logout URL",
	Long: `Show the OIDC logout URL.

Logging out happens in the browser; open this URL to end the session.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		fmt.Println(client.LogoutURL())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(printerCmd)
	rootCmd.AddCommand(logoutCmd)
}
