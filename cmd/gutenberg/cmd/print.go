package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	gutenberg "github.com/gutenberg-print/gutenberg-go"
)

var (
	printName     string
	printCopies   int
	printTwoSided bool
	printColor    bool
	printConvert  bool
)

// printCmd submits a document to the print queue.
var printCmd = &cobra.Command{
	Use:   "print <file>",
	Short: "Submit a document to the print queue",
	Long: `Submit a document to the print queue.

The server accepts PDFs, images, and common office document formats.
With --convert the document is converted to PDF locally before upload,
which requires ImageMagick, Ghostscript, or unoconv depending on the
input format.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if printConvert {
			cfg.ConvertLocally = true
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		job, err := client.Print(cmd.Context(), args[0], gutenberg.PrintOptions{
			Name:           printName,
			Copies:         printCopies,
			TwoSided:       printTwoSided,
			Color:          printColor,
			ConvertLocally: cfg.ConvertLocally,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Job %d (%s) queued with status %s\n", job.ID, job.Name, job.Status)
		return nil
	},
}

func init() {
	printCmd.Flags().StringVar(&printName, "name", "", "job name (defaults to the file name)")
	printCmd.Flags().IntVarP(&printCopies, "copies", "n", 1, "number of copies")
	printCmd.Flags().BoolVar(&printTwoSided, "two-sided", false, "print on both sides of the paper")
	printCmd.Flags().BoolVar(&printColor, "color", false, "print in color instead of grayscale")
	printCmd.Flags().BoolVar(&printConvert, "convert", false, "convert to PDF locally before upload")
	rootCmd.AddCommand(printCmd)
}
