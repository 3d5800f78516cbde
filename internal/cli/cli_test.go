package cli

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlagsDisasm(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		hexComments bool
		jobs        int
	}{
		{
			name:        "default flags",
			args:        []string{"game.gb"},
			hexComments: true,
		},
		{
			name: "nohexcomments flag",
			args: []string{"--nohexcomments", "game.gb"},
		},
		{
			name:        "jobs flag",
			args:        []string{"-j", "4", "game.gb"},
			hexComments: true,
			jobs:        4,
		},
		{
			name:        "explicit command",
			args:        []string{"disasm", "game.gb"},
			hexComments: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseFlags(tt.args)
			assert.NoError(t, err)
			assert.Equal(t, Disasm, cmd.Name)
			assert.Equal(t, "game.gb", cmd.Program.Input)
			assert.Equal(t, tt.hexComments, cmd.Disassembler.HexComments)
			assert.Equal(t, tt.jobs, cmd.Disassembler.Jobs)
		})
	}
}

func TestParseFlagsFiles(t *testing.T) {
	cmd, err := ParseFlags([]string{"-o", "out.asm", "-u", "game.usage", "--sym", "game.sym", "game.gb"})
	assert.NoError(t, err)
	assert.Equal(t, "out.asm", cmd.Program.Output)
	assert.Equal(t, "game.usage", cmd.Program.Usage)
	assert.Equal(t, "game.sym", cmd.Program.Symbols)
}

func TestParseFlagsBatch(t *testing.T) {
	cmd, err := ParseFlags([]string{"--batch", "*.gb"})
	assert.NoError(t, err)
	assert.Equal(t, Disasm, cmd.Name)
	assert.Equal(t, "*.gb", cmd.Program.Batch)
	assert.Equal(t, "", cmd.Program.Input)
}

func TestParseFlagsUsage(t *testing.T) {
	cmd, err := ParseFlags([]string{"usage", "-o", "game.usage", "game.dump"})
	assert.NoError(t, err)
	assert.Equal(t, Usage, cmd.Name)
	assert.Equal(t, "game.dump", cmd.Conversion.Input)
	assert.Equal(t, "game.usage", cmd.Conversion.Output)
}

func TestParseFlagsInfo(t *testing.T) {
	cmd, err := ParseFlags([]string{"info", "a.gb", "b.gb"})
	assert.NoError(t, err)
	assert.Equal(t, Info, cmd.Name)
	assert.Equal(t, []string{"a.gb", "b.gb"}, cmd.InfoFiles)
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantUsage bool
	}{
		{"no input", []string{}, true},
		{"input and batch", []string{"--batch", "*.gb", "game.gb"}, true},
		{"unknown flag", []string{"--unknown", "game.gb"}, true},
		{"negative jobs", []string{"--jobs=-1", "game.gb"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFlags(tt.args)
			assert.Error(t, err)

			var usageErr *UsageError
			assert.Equal(t, tt.wantUsage, errors.As(err, &usageErr))
		})
	}
}
