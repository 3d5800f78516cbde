// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input   string `arg:"" optional:"" name:"rom" help:"ROM file to disassemble."`
	Output  string `short:"o" help:"Output .asm file (default: stdout)."`
	Usage   string `short:"u" help:"Usage file with bb:aaaa..bb:aaaa: Kind lines."`
	Symbols string `short:"s" name:"sym" help:"Symbol file with bb:aaaa name lines."`
	Batch   string `help:"Batch process files matching pattern (e.g. *.gb)."`
}

// Flags contains behavior options.
type Flags struct {
	Jobs  int  `short:"j" help:"Number of banks to disassemble in parallel (default: number of CPUs)."`
	Debug bool `help:"Enable debug logging."`
	Quiet bool `short:"q" help:"Quiet mode."`
}

// OutputFlags contains output formatting options.
type OutputFlags struct {
	NoHexComments bool `name:"nohexcomments" help:"Omit the opcode bytes of unverified code in comments."`
}

// Program options of the disassembler.
type Program struct {
	Parameters  `embed:""`
	Flags       `embed:""`
	OutputFlags `embed:""`
}

// UsageConversion contains the options of the usage dump conversion.
type UsageConversion struct {
	Input  string `arg:"" name:"dump" help:"Binary usage dump, one flag byte per ROM byte."`
	Output string `short:"o" help:"Output usage file (default: stdout)."`
}

// Disassembler defines options to control the disassembler.
type Disassembler struct {
	HexComments bool // output opcode bytes of code that is not known to be code
	Jobs        int  // banks processed in parallel, 0 uses the number of CPUs
}

// NewDisassembler returns a new options instance with default options.
func NewDisassembler() Disassembler {
	return Disassembler{
		HexComments: true,
	}
}
