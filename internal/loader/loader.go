// Package loader handles ROM, usage and symbol file loading operations.
package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/retroenv/gbdisasm/internal/cartridge"
	"github.com/retroenv/gbdisasm/internal/options"
	"github.com/retroenv/gbdisasm/internal/symbols"
	"github.com/retroenv/gbdisasm/internal/usage"
)

// Input contains all data that a disassembly run is based on.
type Input struct {
	Image              *cartridge.Image
	Usage              usage.Map // nil if no usage file was given
	Symbols            []symbols.Entry
	SkippedSymbolLines int
}

// Loader handles loading the input files from disk.
type Loader struct{}

// New creates a new input loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the ROM image and the optional usage and symbol files.
func (l *Loader) Load(opts options.Program) (*Input, error) {
	romFile, err := os.Open(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("opening ROM file %s: %w", opts.Input, err)
	}
	defer func() { _ = romFile.Close() }()

	image, err := cartridge.Load(romFile)
	if err != nil {
		return nil, fmt.Errorf("loading ROM file %s: %w", opts.Input, err)
	}

	var usageReader, symbolReader io.Reader
	if opts.Usage != "" {
		file, err := os.Open(opts.Usage)
		if err != nil {
			return nil, fmt.Errorf("opening usage file %s: %w", opts.Usage, err)
		}
		defer func() { _ = file.Close() }()
		usageReader = file
	}
	if opts.Symbols != "" {
		file, err := os.Open(opts.Symbols)
		if err != nil {
			return nil, fmt.Errorf("opening symbol file %s: %w", opts.Symbols, err)
		}
		defer func() { _ = file.Close() }()
		symbolReader = file
	}

	return l.load(image, usageReader, symbolReader)
}

// LoadFromBytes builds the input from an in memory ROM image. The usage and
// symbol readers are optional and can be nil.
func (l *Loader) LoadFromBytes(rom []byte, usageReader, symbolReader io.Reader) (*Input, error) {
	image, err := cartridge.New(rom)
	if err != nil {
		return nil, fmt.Errorf("loading ROM image: %w", err)
	}
	return l.load(image, usageReader, symbolReader)
}

func (l *Loader) load(image *cartridge.Image, usageReader, symbolReader io.Reader) (*Input, error) {
	var err error
	input := &Input{
		Image: image,
	}

	if usageReader != nil {
		input.Usage, err = usage.Parse(usageReader, image.Len())
		if err != nil {
			return nil, fmt.Errorf("parsing usage file: %w", err)
		}
	}

	if symbolReader != nil {
		input.Symbols, input.SkippedSymbolLines, err = symbols.Read(symbolReader)
		if err != nil {
			return nil, fmt.Errorf("parsing symbol file: %w", err)
		}
	}

	return input, nil
}
