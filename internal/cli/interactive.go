package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/session"
)

const interactiveHelp = `Commands:
  length <n>        set the password length
  toggle <class>    enable or disable upper, lower, digit or symbol
  generate          generate a password
  copy              copy the last password to the clipboard
  show              show the current settings
  help              show this help
  exit              leave`

// form is the state of the interactive input fields.
type form struct {
	length  string
	classes crypto.ClassSet
}

func newInteractiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i", "shell"},
		Short:   "Start an interactive generator session",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := session.New(app.Service, app.Clipboard)
			f := form{length: strconv.Itoa(app.Service.DefaultLength()), classes: crypto.AllClasses}
			return runInteractive(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), sess, f)
		},
	}
}

// runInteractive reads commands from r until exit or end of input. Errors are
// reported and the loop continues with its state unchanged.
func runInteractive(ctx context.Context, r io.Reader, w io.Writer, sess *session.Session, f form) error {
	scanner := bufio.NewScanner(r)

	fmt.Fprintln(w, "=== passforge (interactive mode) ===")
	fmt.Fprintln(w, "Type 'help' for a list of commands.")

	for {
		fmt.Fprint(w, "passforge> ")
		if !scanner.Scan() {
			fmt.Fprintln(w)
			return scanner.Err()
		}
		args := strings.Fields(scanner.Text())
		if len(args) == 0 {
			continue
		}

		switch strings.ToLower(args[0]) {
		case "help", "?":
			fmt.Fprintln(w, interactiveHelp)
		case "length", "l":
			if len(args) < 2 {
				fmt.Fprintln(w, "Usage: length <n>")
				continue
			}
			f.length = args[1]
		case "toggle", "t":
			if len(args) < 2 {
				fmt.Fprintln(w, "Usage: toggle <upper|lower|digit|symbol>")
				continue
			}
			c, err := crypto.ParseClass(args[1])
			if err != nil {
				printError(w, err)
				continue
			}
			f.classes = f.classes.Toggle(c)
			showForm(w, f)
		case "generate", "gen", "g":
			resp, err := sess.Generate(ctx, requestFor(&f.length, f.classes))
			if err != nil {
				printError(w, err)
				continue
			}
			printResult(w, resp)
		case "copy", "c":
			if err := sess.Copy(); err != nil {
				if errors.Is(err, session.ErrNothingToCopy) {
					printWarning(w, "No password to copy!")
				} else {
					printError(w, err)
				}
				continue
			}
			printSuccess(w, "Password copied to clipboard!")
		case "show", "s":
			showForm(w, f)
			if last, ok := sess.Last(); ok {
				printResult(w, last)
			}
		case "exit", "quit", "q":
			fmt.Fprintln(w, "Bye")
			return nil
		default:
			fmt.Fprintln(w, "Unknown command. Type 'help' for a list of commands.")
		}
	}
}

func showForm(w io.Writer, f form) {
	classes := f.classes.String()
	if classes == "" {
		classes = "(none)"
	}
	printInfo(w, fmt.Sprintf("length=%s classes=%s", f.length, classes))
}
