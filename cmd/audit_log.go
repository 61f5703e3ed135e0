package cmd

import (
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var auditLogLimit int

var auditLogCmd = &cobra.Command{
	Use:   "log",
	Short: "List recent issue/validate audit entries",
	Long: `Retrieves recent audit log entries from the server: every code
issuance and every validation attempt with its verdict.

This command requires an admin token (see 'wordseal admin token').`,
	Example: `  wordseal audit log --limit 20`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := getClient()
		if err != nil {
			return err
		}

		log.Debug().Msg("Fetching audit entries...")
		entries, err := cli.ListAudits(cmd.Context(), auditLogLimit)
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			log.Info().Msg("No audit entries found")
			return nil
		}
		log.Debug().Msgf("Retrieved %d audit entrie(s)", len(entries))

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{
			"Time", "Action", "Key", "Granted", "Reason", "Error",
		})

		bold := color.New(color.Bold).SprintFunc()
		faint := color.New(color.Faint).SprintFunc()
		green := color.New(color.FgGreen).SprintFunc()
		red := color.New(color.FgRed).SprintFunc()

		for _, entry := range entries {
			granted := red("no")
			if entry.Granted {
				granted = green("yes")
			}
			t.AppendRow(table.Row{
				entry.Time.Format(time.RFC3339),
				bold(entry.Action),
				entry.KeyID,
				granted,
				string(entry.Reason),
				faint(truncate(entry.Error, 48)),
			})
		}

		s := table.StyleRounded
		s.Format.Header = text.FormatDefault
		t.SetStyle(s)
		t.Render()
		return nil
	},
}

func init() {
	auditCmd.AddCommand(auditLogCmd)

	auditLogCmd.Flags().IntVar(&auditLogLimit, "limit", 50, "Maximum number of entries to fetch")
}
