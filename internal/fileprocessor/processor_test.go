package fileprocessor

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/gbdisasm/internal/banking"
	"github.com/retroenv/gbdisasm/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestGenerateOutputFilename(t *testing.T) {
	assert.Equal(t, "game.asm", GenerateOutputFilename("game.gb"))
	assert.Equal(t, filepath.Join("dir", "game.asm"), GenerateOutputFilename(filepath.Join("dir", "game.gbc")))
	assert.Equal(t, "game.asm", GenerateOutputFilename("game"))
}

func TestGetFilesToProcess(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.gb", "b.gb", "c.txt"} {
		assert.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}

	opts := &options.Program{}
	opts.Batch = filepath.Join(dir, "*.gb")
	files, err := GetFilesToProcess(opts)
	assert.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.gb"), filepath.Join(dir, "b.gb")}, files)

	opts = &options.Program{}
	opts.Input = "game.gb"
	files, err = GetFilesToProcess(opts)
	assert.NoError(t, err)
	assert.Equal(t, []string{"game.gb"}, files)
}

func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	rom := make([]byte, banking.Size)
	rom[0] = 0xC9
	romPath := filepath.Join(dir, "game.gb")
	assert.NoError(t, os.WriteFile(romPath, rom, 0o600))

	opts := options.Program{}
	opts.Input = romPath
	opts.Output = GenerateOutputFilename(romPath)
	opts.Quiet = true

	err := ProcessFile(context.Background(), log.NewTestLogger(t), opts, options.NewDisassembler())
	assert.NoError(t, err)

	out, err := os.ReadFile(opts.Output)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "SECTION \"Bank0\", ROM0[$0000]\n\n"))
}

func TestConvertUsage(t *testing.T) {
	dir := t.TempDir()
	dump := make([]byte, 0x10)
	dump[4] = 1
	dump[5] = 3
	dump[6] = 2
	dumpPath := filepath.Join(dir, "game.dump")
	assert.NoError(t, os.WriteFile(dumpPath, dump, 0o600))

	opts := options.UsageConversion{
		Input:  dumpPath,
		Output: filepath.Join(dir, "game.usage"),
	}
	assert.NoError(t, ConvertUsage(log.NewTestLogger(t), opts))

	out, err := os.ReadFile(opts.Output)
	assert.NoError(t, err)
	expected := "00:0000..00:0003: Unknown\n" +
		"00:0004..00:0005: Code\n" +
		"00:0006..00:0006: Data\n" +
		"00:0007..00:000f: Unknown\n"
	assert.Equal(t, expected, string(out))
}

func TestPrintInfo(t *testing.T) {
	dir := t.TempDir()
	romPath := filepath.Join(dir, "game.gb")
	assert.NoError(t, os.WriteFile(romPath, make([]byte, 2*banking.Size), 0o600))

	var buf bytes.Buffer
	assert.NoError(t, PrintInfo(&buf, []string{romPath}))
	assert.Equal(t, romPath+": 2 banks\n", buf.String())

	err := PrintInfo(&buf, []string{filepath.Join(dir, "missing.gb")})
	assert.ErrorContains(t, err, "opening file")
}
