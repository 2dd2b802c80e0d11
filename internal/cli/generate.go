package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/session"
)

var ErrInvalidCount = errors.New("count must be at least 1")

type generateOptions struct {
	length  string
	upper   bool
	lower   bool
	digits  bool
	symbols bool
	count   int
	copy    bool
}

func (o generateOptions) classes() crypto.ClassSet {
	var set crypto.ClassSet
	if o.upper {
		set = set.With(crypto.ClassUpper)
	}
	if o.lower {
		set = set.With(crypto.ClassLower)
	}
	if o.digits {
		set = set.With(crypto.ClassDigit)
	}
	if o.symbols {
		set = set.With(crypto.ClassSymbol)
	}
	return set
}

func newGenerateCmd(app *App) *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen", "g"},
		Short:   "Generate one or more passwords",
		Example: `  passforge generate -l 16
  passforge generate --length 20 --symbols=false --count 5
  passforge generate --copy`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.count < 1 {
				return ErrInvalidCount
			}

			sess := session.New(app.Service, app.Clipboard)
			out := cmd.OutOrStdout()
			var length *string
			if cmd.Flags().Changed("length") {
				length = &opts.length
			}
			req := requestFor(length, opts.classes())

			for i := 0; i < opts.count; i++ {
				resp, err := sess.Generate(cmd.Context(), req)
				if err != nil {
					return err
				}
				printResult(out, resp)
			}

			if opts.copy {
				if err := sess.Copy(); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				printSuccess(out, "Password copied to clipboard!")
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.length, "length", "l", "", "password length (default from DEFAULT_LENGTH, 12)")
	f.BoolVar(&opts.upper, "upper", true, "include uppercase letters")
	f.BoolVar(&opts.lower, "lower", true, "include lowercase letters")
	f.BoolVar(&opts.digits, "digits", true, "include digits")
	f.BoolVar(&opts.symbols, "symbols", true, "include symbols")
	f.IntVarP(&opts.count, "count", "c", 1, "number of passwords to generate")
	f.BoolVar(&opts.copy, "copy", false, "copy the last generated password to the clipboard")

	return cmd
}
