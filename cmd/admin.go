package cmd

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
)

var (
	adminTokenKey string
	adminTokenTTL time.Duration
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administrative helpers",
}

// adminTokenCmd mints the JWT the /v1/admin routes expect. It needs the
// same signing key the server was configured with.
var adminTokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint an admin JWT for the audit endpoints",
	Example: `  wordseal admin token --signing-key $KEY
  WORDSEAL_AUTH_TOKEN=$(wordseal admin token --signing-key $KEY) wordseal audit log`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if adminTokenKey == "" {
			return fmt.Errorf("--signing-key is required")
		}

		now := time.Now()
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub":   "wordseal-admin",
			"roles": []string{"admin"},
			"iat":   now.Unix(),
			"exp":   now.Add(adminTokenTTL).Unix(),
		})
		signed, err := token.SignedString([]byte(adminTokenKey))
		if err != nil {
			return fmt.Errorf("signing token: %w", err)
		}

		fmt.Println(signed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(adminCmd)
	adminCmd.AddCommand(adminTokenCmd)

	adminTokenCmd.Flags().StringVar(&adminTokenKey, "signing-key", "", "The server's admin signing key")
	adminTokenCmd.Flags().DurationVar(&adminTokenTTL, "ttl", time.Hour, "Token lifetime")
}
