package main

import (
	"fmt"
	"os"
	"time"

	"dwarf/internal/compiler"
	"dwarf/internal/errors"
	"dwarf/internal/parser"
	"dwarf/internal/types"
	"dwarf/repl"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

var modelFlag = &cli.StringFlag{
	Name:    "model",
	Aliases: []string{"m"},
	Usage:   "domain model catalog (YAML)",
}

var tokensCommand = &cli.Command{
	Name:      "tokens",
	Usage:     "print the token stream of a file",
	ArgsUsage: "<file.dw>",
	Action: func(c *cli.Context) error {
		path, source, err := readSource(c)
		if err != nil {
			return err
		}

		result := parser.Parse(path, source)
		for _, lx := range result.Tokens {
			pos := errors.Locate(source, lx.Span.Start)
			fmt.Printf("%d:%d\t%s\t%s\n", pos.Line, pos.Column, lx.Token.Kind, lx.Token)
		}
		for _, e := range result.ScanErrors {
			fmt.Print(errors.NewErrorReporter(path, source).FormatError(errors.FromScanError(e)))
		}
		return nil
	},
}

var checkCommand = &cli.Command{
	Name:      "check",
	Usage:     "report diagnostics; lowers too when a model is given",
	ArgsUsage: "<file.dw>",
	Flags:     []cli.Flag{modelFlag},
	Action: func(c *cli.Context) error {
		model, err := loadModel(c.String("model"), false)
		if err != nil {
			return err
		}
		_, err = run(c, model, func(*compiler.Unit) {})
		return err
	},
}

var fmtCommand = &cli.Command{
	Name:      "fmt",
	Usage:     "print a file in canonical form",
	ArgsUsage: "<file.dw>",
	Action: func(c *cli.Context) error {
		path, source, err := readSource(c)
		if err != nil {
			return err
		}

		result := parser.Parse(path, source)
		if result.HasErrors() {
			fmt.Print(errors.NewErrorReporter(path, source).FormatAll(errors.FromParseResult(result)))
			return cli.Exit(color.RedString("%s has syntax errors", path), 1)
		}
		fmt.Print(result.File.String())
		return nil
	},
}

var lowerCommand = &cli.Command{
	Name:      "lower",
	Usage:     "lower a file into IR and print it",
	ArgsUsage: "<file.dw>",
	Flags:     []cli.Flag{modelFlag},
	Action: func(c *cli.Context) error {
		model, err := loadModel(c.String("model"), true)
		if err != nil {
			return err
		}
		_, err = run(c, model, func(unit *compiler.Unit) {
			fmt.Print(unit.Program())
		})
		return err
	},
}

var replCommand = &cli.Command{
	Name:  "repl",
	Usage: "read items line by line and print what they parse to",
	Flags: []cli.Flag{modelFlag},
	Action: func(c *cli.Context) error {
		model, err := loadModel(c.String("model"), false)
		if err != nil {
			return err
		}
		fmt.Println("Welcome to the dwarf REPL")
		return repl.Start(os.Stdin, os.Stdout, model)
	},
}

// run checks the file named by the first argument, prints diagnostics and
// calls onSuccess when no error was reported.
func run(c *cli.Context, model types.Catalog, onSuccess func(*compiler.Unit)) (*compiler.Unit, error) {
	path, source, err := readSource(c)
	if err != nil {
		return nil, err
	}

	startTime := time.Now()
	unit := compiler.Check(path, source, model)
	fmt.Print(unit.Report())

	formattedDuration := formatDuration(time.Since(startTime))
	if unit.Failed() {
		return unit, cli.Exit(color.RedString("Compilation failed after %s", formattedDuration), 1)
	}

	onSuccess(unit)
	color.Green("Successfully processed %s in %s", path, formattedDuration)
	return unit, nil
}

func readSource(c *cli.Context) (string, string, error) {
	if c.NArg() < 1 {
		return "", "", cli.Exit(fmt.Sprintf("Usage: dwarf %s <file.dw>", c.Command.Name), 1)
	}
	path := c.Args().First()

	source, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read file: %w", err)
	}
	return path, string(source), nil
}

// loadModel reads the catalog at path. With no path it returns nil, or an
// empty model when required is set.
func loadModel(path string, required bool) (types.Catalog, error) {
	if path == "" {
		if required {
			return types.NewModel("default"), nil
		}
		return nil, nil
	}
	model, err := types.LoadModel(path)
	if err != nil {
		return nil, err
	}
	return model, nil
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
