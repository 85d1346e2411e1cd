package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gutenberg-print/gutenberg-go/internal/cmd/output"
)

// whoamiCmd shows the signed-in user.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		user, err := client.Me(cmd.Context())
		if err != nil {
			return err
		}

		format := output.DetectFormat(cfg.Output)
		if format != output.FormatTable {
			return output.NewFormatter(format).Format(os.Stdout, user)
		}

		fmt.Printf("%s (%s) <%s>\n", user.DisplayName(), user.Username, user.Email)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
