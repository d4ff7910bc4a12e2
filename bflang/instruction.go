package bflang

type Op uint8

const (
	OpAdd Op = iota + 1
	OpShift
	OpOutput
	OpInput
	OpLoop
)

// Instruction is one node of the parsed program tree. Arg holds the
// folded cell delta for OpAdd and the folded pointer offset for
// OpShift; the byte wraparound is applied at execution time, not at
// fold time. Body is set for OpLoop only and is exclusively owned by
// the loop.
type Instruction struct {
	Op   Op
	Arg  int
	Body []Instruction
}
