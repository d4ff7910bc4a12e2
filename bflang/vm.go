package bflang

import (
	"io"
	"os"
)

// VM executes one parsed program against a fresh tape. The tape and
// pointer are exclusively owned by the VM; the program tree is never
// mutated and may be shared between runs.
type VM struct {
	program []Instruction
	tape    []byte
	pointer int
	input   io.Reader
	output  io.Writer
}

func NewVM(program []Instruction, options *Options) *VM {
	var input io.Reader = os.Stdin
	var output io.Writer = os.Stdout
	length := DefaultTapeLength
	if options != nil {
		if options.Input != nil {
			input = options.Input
		}
		if options.Output != nil {
			output = options.Output
		}
		if options.TapeLength > 0 {
			length = options.TapeLength
		}
	}
	return &VM{
		program: program,
		tape:    make([]byte, length),
		input:   input,
		output:  output,
	}
}

// Tape returns the tape as it is now. After Run returns nil this is the
// final state of the program's memory.
func (v *VM) Tape() []byte {
	return v.tape
}

func (v *VM) Pointer() int {
	return v.pointer
}

// Run lexes, parses and executes source in one call, returning the
// final tape.
func Run(source string, options *Options) ([]byte, error) {
	vm := NewVM(Parse(Lex(source)), options)
	if err := vm.Run(); err != nil {
		return nil, err
	}
	return vm.Tape(), nil
}
