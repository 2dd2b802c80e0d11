// Package cli implements the passforge command line: one-shot generation,
// an interactive session and operator token issuing.
package cli

import (
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/passforge/passforge-go/internal/clipboard"
	"github.com/passforge/passforge-go/internal/service"
)

// App carries the dependencies shared by every command.
type App struct {
	In        io.Reader
	Out       io.Writer
	Service   *service.GeneratorService
	Clipboard clipboard.Clipboard
	JWTSecret string
	JWTExpiry time.Duration
}

func (a *App) in() io.Reader {
	if a.In == nil {
		return os.Stdin
	}
	return a.In
}

// NewRootCmd builds the passforge command tree.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "passforge",
		Short: "Generate random passwords and rate their strength",
		Long: `passforge draws passwords uniformly from the selected character classes
using a cryptographically secure source, and rates them by entropy.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	if app.Out != nil {
		root.SetOut(app.Out)
		root.SetErr(app.Out)
	}
	root.SetIn(app.in())

	root.AddCommand(
		newGenerateCmd(app),
		newInteractiveCmd(app),
		newTokenCmd(app),
	)
	return root
}
