package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/gbdisasm/internal/banking"
	"github.com/retroenv/gbdisasm/internal/loader"
	"github.com/retroenv/gbdisasm/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestNew(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	assert.NotNil(t, p)
	assert.NotNil(t, p.logger)
	assert.NotNil(t, p.loader)
}

func TestExecuteWithInput(t *testing.T) {
	rom := make([]byte, 2*banking.Size)
	copy(rom[0x100:], []byte{0x00, 0xC3, 0x50, 0x01}) // nop, jp $0150
	copy(rom[0x150:], []byte{0xF3, 0x18, 0xFE})       // di, jr to itself
	copy(rom[0x4000:], []byte{0xCD, 0x20, 0x40, 0xC9}) // call $4020, ret

	usageText := "00:0150..00:0152: Code\n01:4000..01:4003: Code\n"
	symbolText := "00:0150 Start\n01:4020 MyRoutine\nnot a symbol\n"

	input, err := loader.New().LoadFromBytes(rom, strings.NewReader(usageText), strings.NewReader(symbolText))
	assert.NoError(t, err)
	assert.Equal(t, 1, input.SkippedSymbolLines)

	p := New(log.NewTestLogger(t))
	var buf bytes.Buffer
	err = p.ExecuteWithInput(context.Background(), input, options.Program{}, options.NewDisassembler(), &buf)
	assert.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "SECTION \"Bank0\", ROM0[$0000]\n\n"))
	assert.True(t, strings.Contains(out, "\n\nSECTION \"Bank1\", ROMX[$4000], BANK[1]\n\n"))
	assert.True(t, strings.Contains(out, "Start:\n  di\nB00_0151:\n  jr B00_0151\n\n"), out)
	assert.True(t, strings.Contains(out, "  call MyRoutine\n  ret\n\n"), out)
	assert.True(t, strings.Contains(out, "MyRoutine:\n"))
	assert.True(t, strings.Contains(out, "; 00:0101: db $c3, $50, $01"), "unverified code has a hex comment")
}

func TestExecute(t *testing.T) {
	dir := t.TempDir()
	romPath := filepath.Join(dir, "game.gb")
	rom := make([]byte, banking.Size)
	rom[0] = 0xC9
	assert.NoError(t, os.WriteFile(romPath, rom, 0o600))

	opts := options.Program{}
	opts.Input = romPath
	opts.Quiet = true

	disasmOpts := options.NewDisassembler()
	disasmOpts.HexComments = false

	var buf bytes.Buffer
	p := New(log.NewTestLogger(t))
	assert.NoError(t, p.Execute(context.Background(), opts, disasmOpts, &buf))
	assert.True(t, strings.HasPrefix(buf.String(), "SECTION \"Bank0\", ROM0[$0000]\n\n  ret\n\n; ?? 00:0001:\n"))
}

func TestExecuteMissingFile(t *testing.T) {
	opts := options.Program{}
	opts.Input = filepath.Join(t.TempDir(), "missing.gb")

	p := New(log.NewTestLogger(t))
	err := p.Execute(context.Background(), opts, options.NewDisassembler(), &bytes.Buffer{})
	assert.ErrorContains(t, err, "loading input")
}
