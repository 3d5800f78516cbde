// Package main implements the main entry point for a Game Boy ROM disassembler
package main

import (
	"context"
	"errors"
	"os"

	"github.com/retroenv/gbdisasm/internal/cli"
	"github.com/retroenv/gbdisasm/internal/config"
	"github.com/retroenv/gbdisasm/internal/fileprocessor"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	cmd, err := cli.ParseFlags(os.Args[1:])
	if err != nil {
		logger := config.CreateLogger(cmd.Program.Flags)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			fileprocessor.PrintBanner(logger, false, version, commit, date)
			logger.Error(err.Error())
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(cmd.Program.Flags)
	fileprocessor.PrintBanner(logger, cmd.Program.Quiet, version, commit, date)

	switch cmd.Name {
	case cli.Usage:
		if err := fileprocessor.ConvertUsage(logger, cmd.Conversion); err != nil {
			logger.Fatal("Converting usage dump failed", log.Err(err))
		}

	case cli.Info:
		if err := fileprocessor.PrintInfo(os.Stdout, cmd.InfoFiles); err != nil {
			logger.Fatal("Reading ROM information failed", log.Err(err))
		}

	default:
		disassemble(ctx, logger, cmd)
	}
}

func disassemble(ctx context.Context, logger *log.Logger, cmd cli.Command) {
	opts := cmd.Program
	files, err := fileprocessor.GetFilesToProcess(&opts)
	if err != nil {
		logger.Fatal(err.Error())
	}

	for _, file := range files {
		opts.Input = file
		if opts.Batch != "" {
			opts.Output = fileprocessor.GenerateOutputFilename(file)
		}

		if err := fileprocessor.ProcessFile(ctx, logger, opts, cmd.Disassembler); err != nil {
			// Handle context cancellation (Ctrl+C) gracefully
			if errors.Is(err, context.Canceled) {
				logger.Info("Operation cancelled")
				return
			}
			logger.Error("Disassembling failed", log.String("file", file), log.Err(err))
			if opts.Batch == "" {
				os.Exit(1)
			}
		}
	}
}
