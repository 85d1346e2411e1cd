package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gutenberg-print/gutenberg-go/internal/config"
)

var tokenSave bool

// tokenCmd groups token management commands.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage the print token",
}

// tokenResetCmd rotates the print token.
var tokenResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Rotate the print token",
	Long: `Rotate the print token.

The old token stops working immediately. Printers and saved
configurations using the old token must be updated. With --save the
new token is written to the user config file.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		token, err := client.ResetToken(cmd.Context())
		if err != nil {
			return err
		}

		if tokenSave {
			path, err := config.SaveToken(token)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "token saved to %s\n", path)
		}

		fmt.Println(token)
		return nil
	},
}

func init() {
	tokenResetCmd.Flags().BoolVar(&tokenSave, "save", false, "write the new token to the config file")
	tokenCmd.AddCommand(tokenResetCmd)
	rootCmd.AddCommand(tokenCmd)
}
