package bflang

import (
	"fmt"
	"io"
)

// Run executes the program to completion. Execution is synchronous and
// single-threaded; an input instruction blocks until one byte is
// available. The first input or output failure aborts the run, leaving
// the tape in whatever state it reached.
func (v *VM) Run() error {
	return v.exec(v.program)
}

func (v *VM) exec(instructions []Instruction) error {
	for i := range instructions {
		inst := &instructions[i]
		switch inst.Op {

		case OpAdd:
			v.tape[v.pointer] = addCell(v.tape[v.pointer], inst.Arg)

		case OpShift:
			v.pointer = shiftPointer(v.pointer, inst.Arg, len(v.tape))

		case OpOutput:
			if _, err := v.output.Write([]byte{v.tape[v.pointer]}); err != nil {
				return wrap(fmt.Errorf("write output: %w", err))
			}

		case OpInput:
			var buf [1]byte
			if _, err := io.ReadFull(v.input, buf[:]); err != nil {
				return wrap(fmt.Errorf("read input: %w", err))
			}
			v.tape[v.pointer] = buf[0]

		case OpLoop:
			for v.tape[v.pointer] != 0 {
				if err := v.exec(inst.Body); err != nil {
					return err
				}
			}

		}
	}
	return nil
}
