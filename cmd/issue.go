package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mkuran/wordseal/internal/config"
	"github.com/mkuran/wordseal/internal/core"
)

var issueTargetFile string

var issueCmd = &cobra.Command{
	Use:   "issue",
	Short: "Request a fresh authorization code",
	Long: `Allocates the next key id for today and mints a 10-word code for it.

Modes:
  1. Remote (Default): Contacts the configured wordseal server.
  2. Standalone (--config): Loads a local config file and mints locally.`,
	Example: `  # Remote issue (uses WORDSEAL_ADDR)
  wordseal issue

  # Issue locally
  wordseal issue -f wordseal.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if issueTargetFile != "" {
			// if -f is passed, handle it locally
			log.Debug().Msg("Running 'issue' command in local mode")
			return issueCodeLocally(cmd)
		}
		// otherwise, expect to issue from remote server
		log.Debug().Msg("Running 'issue' command in remote mode")
		return issueCodeRemote(cmd)
	},
}

func init() {
	rootCmd.AddCommand(issueCmd)

	issueCmd.Flags().StringVarP(&issueTargetFile, "config", "f", "", "Mint locally using this config file")
}

func issueCodeRemote(cmd *cobra.Command) error {
	cli, err := getClient()
	if err != nil {
		return err
	}

	log.Info().Msgf("Requesting a code...")
	artifact, _, err := cli.IssueCode(cmd.Context())
	if err != nil {
		return err
	}

	printArtifact(artifact)
	return nil
}

func issueCodeLocally(cmd *cobra.Command) error {
	cfg, err := config.Load(issueTargetFile)
	if err != nil {
		return err
	}
	svc, auditor, err := buildService(cfg)
	if err != nil {
		return err
	}
	defer func() {
		_ = auditor.Close()
	}()

	result, err := svc.Issue(cmd.Context())
	if err != nil {
		return err
	}
	printArtifact(result.Artifact)
	return nil
}

func printArtifact(artifact *core.CodeArtifact) {
	bold := color.New(color.Bold).SprintFunc()
	faint := color.New(color.Faint).SprintfFunc()

	fmt.Println(bold(artifact.Words))
	fmt.Printf("key id %d, expires %s %s\n",
		artifact.KeyID,
		artifact.ExpiresAt.Format(time.RFC3339),
		faint("(%s from now)", time.Until(artifact.ExpiresAt).Round(time.Minute)),
	)
}
