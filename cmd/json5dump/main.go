// Command json5dump tokenizes a JSON5 file and prints its flat token tree,
// either as indented JSON or as a colorized Go-value dump.
package main

import (
	"fmt"
	"io"
	"os"

	flags "github.com/jessevdk/go-flags"
	"github.com/k0kubun/pp/v3"
	"golang.org/x/term"

	"github.com/mtearle/json5tok/json5"
	"github.com/mtearle/json5tok/utils"
)

type options struct {
	MaxTokens int    `short:"n" long:"max-tokens" description:"token buffer capacity" default:"256"`
	Format    string `short:"f" long:"format" description:"output format" default:"json" choice:"json" choice:"pp"`
	Args      struct {
		File string `positional-arg-name:"file" description:"JSON5 file to tokenize (- for stdin)"`
	} `positional-args:"yes" required:"yes"`
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[options] file"
	if _, err := parser.Parse(); err != nil {
		os.Exit(1)
	}

	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, "json5dump:", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	src, err := readInput(opts.Args.File)
	if err != nil {
		return err
	}

	tokens := make([]json5.Token, opts.MaxTokens)
	result := json5.Parse(src, tokens)
	if result.Error {
		return fmt.Errorf("%s at line %d, pos %d: %s", result.Code, result.ErrorLine+1, result.ErrorPos, result.Message)
	}

	views := utils.TokenViews(result)
	switch opts.Format {
	case "pp":
		printer := pp.New()
		printer.SetColoringEnabled(term.IsTerminal(int(os.Stdout.Fd())))
		printer.Println(views)
	default:
		utils.PrettyPrint(views)
	}
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" || path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
