package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/passforge/passforge-go/internal/crypto"
)

func newTokenCmd(app *App) *cobra.Command {
	var (
		subject string
		expiry  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an operator token for the stats endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if expiry <= 0 {
				expiry = app.JWTExpiry
			}
			token, err := crypto.GenerateToken(subject, app.JWTSecret, expiry)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "who the token is issued to")
	cmd.Flags().DurationVar(&expiry, "expiry", 0, "token lifetime (default JWT_EXPIRY)")
	return cmd
}
