// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/retroenv/gbdisasm/internal/cartridge"
	"github.com/retroenv/gbdisasm/internal/options"
	"github.com/retroenv/gbdisasm/internal/pipeline"
	"github.com/retroenv/gbdisasm/internal/usage"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile handles the complete file processing workflow
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program, disasmOptions options.Disassembler) (err error) {
	writer, closeWriter, err := createWriter(opts.Output)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	defer func() {
		if closeErr := closeWriter(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing output: %w", closeErr)
		}
	}()

	p := pipeline.New(logger)
	if err := p.Execute(ctx, opts, disasmOptions, writer); err != nil {
		return fmt.Errorf("processing %s: %w", opts.Input, err)
	}
	return nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// GenerateOutputFilename generates output filename for a given input file
func GenerateOutputFilename(inputFile string) string {
	ext := filepath.Ext(inputFile)
	return inputFile[:len(inputFile)-len(ext)] + ".asm"
}

// ConvertUsage reads a binary usage dump and writes it as usage file.
func ConvertUsage(logger *log.Logger, opts options.UsageConversion) (err error) {
	dump, err := os.ReadFile(opts.Input)
	if err != nil {
		return fmt.Errorf("reading usage dump %s: %w", opts.Input, err)
	}

	writer, closeWriter, err := createWriter(opts.Output)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	defer func() {
		if closeErr := closeWriter(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing output: %w", closeErr)
		}
	}()

	ranges, counts := usage.Summarize(dump)
	if err := usage.WriteRanges(writer, ranges); err != nil {
		return err
	}

	logger.Info("Usage dump converted",
		log.String("file", opts.Input),
		log.Int("code", counts.Code),
		log.Int("data", counts.Data),
		log.Int("unknown", counts.Unknown),
	)
	return nil
}

// PrintInfo writes the cartridge headers of all files.
func PrintInfo(writer io.Writer, files []string) error {
	for _, file := range files {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("opening file %s: %w", file, err)
		}
		image, err := cartridge.Load(f)
		_ = f.Close()
		if err != nil {
			return fmt.Errorf("loading file %s: %w", file, err)
		}

		if _, err := fmt.Fprintf(writer, "%s: %d banks\n", file, image.Banks()); err != nil {
			return fmt.Errorf("writing info: %w", err)
		}
		for _, header := range image.Headers() {
			if _, err := fmt.Fprintf(writer, "  %s\n", header); err != nil {
				return fmt.Errorf("writing info: %w", err)
			}
		}
	}
	return nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, quiet bool, version, commit, date string) {
	if quiet {
		return
	}
	logger.Info("gbdisasm", log.String("version", buildinfo.Version(version, commit, date)))
}

// createWriter returns a buffered writer for the output file or stdout if no
// file name is set. The returned function flushes and closes the output.
func createWriter(output string) (io.Writer, func() error, error) {
	if output == "" {
		buffered := bufio.NewWriter(os.Stdout)
		return buffered, buffered.Flush, nil
	}

	file, err := os.Create(output)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file %s: %w", output, err)
	}
	buffered := bufio.NewWriter(file)
	closeFile := func() error {
		if err := buffered.Flush(); err != nil {
			_ = file.Close()
			return err
		}
		return file.Close()
	}
	return buffered, closeFile, nil
}
