// Package disasm implements a static disassembler for banked Game Boy ROM images.
package disasm

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/retroenv/gbdisasm/internal/cartridge"
	"github.com/retroenv/gbdisasm/internal/consts"
	"github.com/retroenv/gbdisasm/internal/options"
	"github.com/retroenv/gbdisasm/internal/symbols"
	"github.com/retroenv/gbdisasm/internal/usage"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/sync/errgroup"
)

// Disasm implements a disassembler.
type Disasm struct {
	logger  *log.Logger
	options options.Disassembler

	image   *cartridge.Image
	usage   usage.Map
	symbols *symbols.Table
}

// New creates a new disassembler for the image. The usage map is optional,
// without it every byte is treated as unknown. All branch and pointer targets
// are discovered and merged with the hardware names and the user symbols
// before New returns, the label table does not change afterwards.
func New(logger *log.Logger, image *cartridge.Image, usageMap usage.Map,
	userSymbols []symbols.Entry, options options.Disassembler) (*Disasm, error) {

	if usageMap == nil {
		usageMap = usage.New(image.Len())
	}
	if len(usageMap) != image.Len() {
		return nil, fmt.Errorf("%w: usage covers %d bytes but image has %d bytes",
			usage.ErrFormat, len(usageMap), image.Len())
	}

	dis := &Disasm{
		logger:  logger,
		options: options,
		image:   image,
		usage:   usageMap,
	}

	targets, err := dis.findTargets()
	if err != nil {
		return nil, fmt.Errorf("finding branch targets: %w", err)
	}
	dis.symbols = symbols.Build(targets, consts.HardwareMap(), userSymbols)

	logger.Debug("Branch targets discovered",
		log.Int("targets", len(targets)),
		log.Int("labels", dis.symbols.Len()))
	return dis, nil
}

// Symbols returns the label table.
func (dis *Disasm) Symbols() *symbols.Table {
	return dis.symbols
}

// Process disassembles all complete banks of the image and writes them in
// bank order. Banks only depend on the frozen label table, they are rendered
// concurrently into separate buffers.
func (dis *Disasm) Process(ctx context.Context, writer io.Writer) error {
	banks := dis.image.Banks()
	buffers := make([]bytes.Buffer, banks)

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(dis.jobs())

	for bank := range banks {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := dis.writeBank(&buffers[bank], bank); err != nil {
				return fmt.Errorf("disassembling bank %d: %w", bank, err)
			}
			dis.logger.Debug("Bank disassembled", log.Int("bank", bank))
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	for bank := range buffers {
		if bank > 0 {
			if _, err := fmt.Fprintln(writer); err != nil {
				return fmt.Errorf("writing bank separator: %w", err)
			}
		}
		if _, err := buffers[bank].WriteTo(writer); err != nil {
			return fmt.Errorf("writing bank %d: %w", bank, err)
		}
	}
	return nil
}

func (dis *Disasm) jobs() int {
	if dis.options.Jobs > 0 {
		return dis.options.Jobs
	}
	return runtime.GOMAXPROCS(0)
}
