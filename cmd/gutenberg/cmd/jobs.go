package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gutenberg-print/gutenberg-go/internal/cmd/output"
	"github.com/gutenberg-print/gutenberg-go/pkg/constants"
	"github.com/gutenberg-print/gutenberg-go/pkg/errors"
)

// jobsCmd lists the user's print jobs.
var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List print jobs",
	Long:  `List the print jobs of the signed-in user, newest first.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		jobs, err := client.Jobs(cmd.Context())
		if err != nil {
			return err
		}

		format := output.DetectFormat(cfg.Output)
		if format != output.FormatTable {
			return output.NewFormatter(format).Format(os.Stdout, jobs)
		}

		data := output.Data{
			Headers: []string{"id", "name", "status", "pages", "copies", "created"},
		}
		for _, job := range jobs {
			data.Rows = append(data.Rows, []string{
				strconv.Itoa(job.ID),
				job.Name,
				job.Status.String(),
				strconv.Itoa(job.Pages),
				strconv.Itoa(job.Properties.Copies),
				job.CreatedAt.Format(constants.TimeFormatHuman),
			})
		}
		return output.NewFormatter(format).Format(os.Stdout, data)
	},
}

// jobsCancelCmd cancels a single print job.
var jobsCancelCmd = &cobra.Command{
	Use:   "cancel <job-id>",
	Short: "Cancel a print job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return errors.NewValidationError("job-id", args[0], "must be an integer")
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		if err := client.CancelJob(cmd.Context(), id); err != nil {
			if errors.IsNotFound(err) {
				return fmt.Errorf("job %d not found", id)
			}
			return err
		}

		fmt.Printf("Job %d canceled\n", id)
		return nil
	},
}

func init() {
	jobsCmd.AddCommand(jobsCancelCmd)
	rootCmd.AddCommand(jobsCmd)
}
