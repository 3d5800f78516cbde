// Package pipeline orchestrates the disassembly workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/retroenv/gbdisasm/internal/disasm"
	"github.com/retroenv/gbdisasm/internal/loader"
	"github.com/retroenv/gbdisasm/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete disassembly workflow.
type Pipeline struct {
	logger *log.Logger
	loader *loader.Loader
}

// New creates a new disassembly pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
		loader: loader.New(),
	}
}

// Execute loads the input files and runs the disassembly.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, disasmOpts options.Disassembler, writer io.Writer) error {
	input, err := p.loader.Load(opts)
	if err != nil {
		return fmt.Errorf("loading input: %w", err)
	}
	return p.ExecuteWithInput(ctx, input, opts, disasmOpts, writer)
}

// ExecuteWithInput runs the disassembly for already loaded input data.
// This is useful for testing and programmatic usage where the ROM is already in memory.
func (p *Pipeline) ExecuteWithInput(ctx context.Context, input *loader.Input, opts options.Program,
	disasmOpts options.Disassembler, writer io.Writer) error {

	p.printInfo(opts, input)

	dis, err := disasm.New(p.logger, input.Image, input.Usage, input.Symbols, disasmOpts)
	if err != nil {
		return fmt.Errorf("creating disassembler: %w", err)
	}

	if err := dis.Process(ctx, writer); err != nil {
		return fmt.Errorf("disassembling: %w", err)
	}
	return nil
}

// printInfo prints information about the ROM being processed.
func (p *Pipeline) printInfo(opts options.Program, input *loader.Input) {
	if input.SkippedSymbolLines > 0 {
		p.logger.Warn("Skipped unreadable symbol file lines",
			log.String("file", opts.Symbols),
			log.Int("lines", input.SkippedSymbolLines))
	}
	if input.Image.Partial() {
		p.logger.Warn("Image ends with an incomplete bank that will not be disassembled",
			log.Int("size", input.Image.Len()))
	}

	if opts.Quiet {
		return
	}

	headers := input.Image.Headers()
	if len(headers) == 0 {
		p.logger.Info("Processing Game Boy ROM",
			log.String("file", opts.Input),
			log.Int("banks", input.Image.Banks()),
		)
		return
	}

	p.logger.Info("Processing Game Boy ROM",
		log.String("file", opts.Input),
		log.Int("banks", input.Image.Banks()),
		log.String("title", headers[0].Title),
		log.String("type", headers[0].CartridgeType),
	)
	for _, header := range headers[1:] {
		p.logger.Info("Additional game found", log.String("header", header.String()))
	}
}
