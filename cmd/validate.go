package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mkuran/wordseal/internal/config"
	"github.com/mkuran/wordseal/internal/core"
	"github.com/mkuran/wordseal/internal/service"
)

var validateTargetFile string

var validateCmd = &cobra.Command{
	Use:   "validate <words...>",
	Short: "Validate an authorization code",
	Long: `Checks a presented 10-word code against the MAC oracle within the
configured TTL/tolerance window and reports the verdict.

Modes:
  1. Remote (Default): Contacts the configured wordseal server.
  2. Standalone (--config): Loads a local config file and validates locally.`,
	Example: `  wordseal validate word0005 word0000 word0016 ...
  wordseal validate -f wordseal.yaml "word0005 word0000 ..."`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		words := strings.Join(args, " ")

		var verdict *core.Verdict
		if validateTargetFile != "" {
			log.Debug().Msg("Running 'validate' command in local mode")
			cfg, err := config.Load(validateTargetFile)
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

			result, err := svc.Validate(cmd.Context(), service.ValidateRequest{Words: words})
			if err != nil {
				return err
			}
			verdict = &result.Verdict
		} else {
			log.Debug().Msg("Running 'validate' command in remote mode")
			cli, err := getClient()
			if err != nil {
				return err
			}
			v, _, err := cli.ValidateCode(cmd.Context(), words)
			if err != nil {
				return err
			}
			verdict = v
		}

		printVerdict(verdict)
		if !verdict.Valid {
			return fmt.Errorf("code rejected (%s)", verdict.Reason)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateTargetFile, "config", "f", "", "Validate locally using this config file")
}

func printVerdict(verdict *core.Verdict) {
	if verdict.Valid {
		ok := color.New(color.FgGreen, color.Bold).SprintFunc()
		fmt.Printf("%s key id %d, %d hour(s) old\n", ok("VALID"), verdict.KeyID, verdict.AgeHours)
		return
	}
	bad := color.New(color.FgRed, color.Bold).SprintFunc()
	fmt.Printf("%s %s\n", bad("INVALID"), verdict.Reason)
}
