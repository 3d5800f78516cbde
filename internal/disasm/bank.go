package disasm

import (
	"fmt"
	"io"

	"github.com/retroenv/gbdisasm/internal/arch/sm83"
	"github.com/retroenv/gbdisasm/internal/banking"
	"github.com/retroenv/gbdisasm/internal/usage"
	"github.com/retroenv/gbdisasm/internal/writer"
)

// suspiciousMarker is appended to instructions that are likely data.
const suspiciousMarker = " ; **CHECK**"

// bankPrinter holds the state of a single pass over a bank.
type bankPrinter struct {
	dis  *Disasm
	out  *writer.Writer
	bank banking.Bank

	pending         []byte // data bytes not written yet
	afterTerminator bool   // previous instruction does not fall through
}

// writeBank writes the section header and the disassembly of a bank.
func (dis *Disasm) writeBank(w io.Writer, bank int) error {
	p := &bankPrinter{
		dis:  dis,
		out:  writer.New(w),
		bank: banking.Bank(bank),
	}

	if err := p.out.Section(bank); err != nil {
		return err
	}

	start := bank << banking.Shift
	end := start + banking.Size
	for location := start; location < end; {
		size, err := p.process(location)
		if err != nil {
			return err
		}
		location += size
	}

	return p.flush()
}

// process outputs the location and returns the number of bytes consumed.
func (p *bankPrinter) process(location int) (int, error) {
	if err := p.writeLabel(location); err != nil {
		return 0, err
	}
	p.afterTerminator = false

	switch {
	case p.dis.IsPointer(location):
		if err := p.flush(); err != nil {
			return 0, err
		}
		target, bank, err := p.dis.pointerTarget(location)
		if err != nil {
			return 0, err
		}
		if err := p.out.Word(p.dis.symbols.Text(bank, target)); err != nil {
			return 0, err
		}
		return 2, nil

	case p.dis.IsData(location):
		p.pending = append(p.pending, p.dis.image.Data()[location])
		return 1, nil

	default:
		if err := p.flush(); err != nil {
			return 0, err
		}
		return p.writeInstruction(location)
	}
}

func (p *bankPrinter) writeLabel(location int) error {
	_, address := banking.BankAddress(location)

	if name, ok := p.dis.symbols.Resolve(p.bank, address); ok {
		if err := p.flush(); err != nil {
			return err
		}
		return p.out.Label(name)
	}

	if p.afterTerminator {
		if err := p.flush(); err != nil {
			return err
		}
		return p.out.UnlabeledEntry(banking.Format(location))
	}
	return nil
}

func (p *bankPrinter) writeInstruction(location int) (int, error) {
	ins, err := p.dis.Decode(location)
	if err != nil {
		return 0, fmt.Errorf("decoding instruction at %s: %w", banking.Format(location), err)
	}

	text := ins.Text
	if ins.Size == 0 || sm83.Uncommon.Contains(ins.Opcode) {
		text += suspiciousMarker
	}
	size := max(ins.Size, 1)

	// bytes that were not seen executing get their encoding as comment
	var comment string
	if p.dis.options.HexComments && p.dis.usage.At(location) != usage.Code {
		comment = fmt.Sprintf("%s: db %s", banking.Format(location),
			writer.ByteList(p.dis.image.Bytes(location, size)))
	}
	if err := p.out.Code(text, comment); err != nil {
		return 0, err
	}

	if sm83.Terminators.Contains(ins.Opcode) {
		p.afterTerminator = true
		if err := p.out.Line(); err != nil {
			return 0, err
		}
	}
	return size, nil
}

// flush writes all pending data bytes.
func (p *bankPrinter) flush() error {
	if len(p.pending) == 0 {
		return nil
	}
	err := p.out.BundleDataWrites(p.pending)
	p.pending = p.pending[:0]
	return err
}
