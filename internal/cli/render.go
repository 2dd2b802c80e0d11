package cli

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
)

var labelColors = map[string]pterm.Color{
	string(crypto.Weak):       pterm.FgRed,
	string(crypto.Medium):     pterm.FgYellow,
	string(crypto.Strong):     pterm.FgGreen,
	string(crypto.VeryStrong): pterm.FgBlue,
}

// strengthLine renders "Strength: <label> (Entropy: <N> bits)" in the label's color.
func strengthLine(resp model.GenerateResponse) string {
	color, ok := labelColors[resp.Strength]
	if !ok {
		return resp.Display
	}
	return pterm.NewStyle(color, pterm.Bold).Sprint(resp.Display)
}

func printResult(w io.Writer, resp model.GenerateResponse) {
	fmt.Fprintln(w, resp.Password)
	fmt.Fprintln(w, strengthLine(resp))
}

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, pterm.Error.Sprint(err.Error()))
}

func printWarning(w io.Writer, msg string) {
	fmt.Fprintln(w, pterm.Warning.Sprint(msg))
}

func printSuccess(w io.Writer, msg string) {
	fmt.Fprintln(w, pterm.Success.Sprint(msg))
}

func printInfo(w io.Writer, msg string) {
	fmt.Fprintln(w, pterm.Info.Sprint(msg))
}

// requestFor turns a raw length field and a class set into a service request.
// A nil length leaves the choice to the service default.
func requestFor(length *string, classes crypto.ClassSet) model.GenerateRequest {
	flag := func(c crypto.CharacterClass) *bool {
		v := classes.Has(c)
		return &v
	}
	req := model.GenerateRequest{
		Uppercase: flag(crypto.ClassUpper),
		Lowercase: flag(crypto.ClassLower),
		Numbers:   flag(crypto.ClassDigit),
		Symbols:   flag(crypto.ClassSymbol),
		Source:    model.SourceCLI,
	}
	if length != nil {
		req.Length = model.NewLengthField(*length)
	}
	return req
}
