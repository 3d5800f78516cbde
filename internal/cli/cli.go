// Package cli handles command line interface logic
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/retroenv/gbdisasm/internal/options"
)

// supported commands.
const (
	Disasm = "disasm"
	Usage  = "usage"
	Info   = "info"
)

type arguments struct {
	Disasm disasmCmd `cmd:"" default:"withargs" help:"Disassemble ROM files (default command)."`
	Usage  usageCmd  `cmd:"" help:"Convert a binary usage dump into a usage file."`
	Info   infoCmd   `cmd:"" help:"Print the cartridge header details of ROM files."`
}

type disasmCmd struct {
	options.Program `embed:""`
}

type usageCmd struct {
	options.UsageConversion `embed:""`
}

type infoCmd struct {
	Files []string `arg:"" name:"rom" help:"ROM files to inspect."`
	Quiet bool     `short:"q" help:"Quiet mode."`
}

// Command contains the parsed command line.
type Command struct {
	Name string

	Program      options.Program
	Disassembler options.Disassembler
	Conversion   options.UsageConversion
	InfoFiles    []string
}

// ParseFlags parses the command line arguments and returns the selected
// command with its options.
func ParseFlags(args []string) (Command, error) {
	var parsed arguments
	parser, err := kong.New(&parsed,
		kong.Name("gbdisasm"),
		kong.Description("Game Boy ROM disassembler"),
		kong.UsageOnError(),
	)
	if err != nil {
		return Command{}, fmt.Errorf("creating command line parser: %w", err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		usageErr := &UsageError{err: err}
		var parseErr *kong.ParseError
		if errors.As(err, &parseErr) {
			usageErr.ctx = parseErr.Context
		}
		return Command{}, usageErr
	}

	switch ctx.Command() {
	case "usage <dump>":
		return Command{
			Name:       Usage,
			Conversion: parsed.Usage.UsageConversion,
		}, nil

	case "info <rom>":
		cmd := Command{
			Name:      Info,
			InfoFiles: parsed.Info.Files,
		}
		cmd.Program.Quiet = parsed.Info.Quiet
		return cmd, nil

	default:
		return newDisasmCommand(ctx, parsed.Disasm.Program)
	}
}

func newDisasmCommand(ctx *kong.Context, opts options.Program) (Command, error) {
	if opts.Input == "" && opts.Batch == "" {
		return Command{}, &UsageError{
			ctx: ctx,
			err: errors.New("no ROM file to disassemble given"),
		}
	}
	if opts.Input != "" && opts.Batch != "" {
		return Command{}, &UsageError{
			ctx: ctx,
			err: errors.New("a ROM file and a batch pattern can not be used together"),
		}
	}
	if opts.Jobs < 0 {
		return Command{}, fmt.Errorf("invalid number of jobs %d", opts.Jobs)
	}

	disasmOptions := options.NewDisassembler()
	disasmOptions.HexComments = !opts.NoHexComments
	disasmOptions.Jobs = opts.Jobs

	return Command{
		Name:         Disasm,
		Program:      opts,
		Disassembler: disasmOptions,
	}, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	ctx *kong.Context
	err error
}

func (e *UsageError) Error() string {
	return e.err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.err
}

// ShowUsage prints the help of the command that failed to parse.
func (e *UsageError) ShowUsage() {
	if e.ctx == nil {
		return
	}
	e.ctx.Stdout = os.Stderr
	_ = e.ctx.PrintUsage(false)
}
